package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"blogbackend/middleware"
	"blogbackend/models"
	"blogbackend/utils"
)

type TeamController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewTeamController(db *gorm.DB, logger *log.Logger) *TeamController {
	return &TeamController{
		DB:     db,
		Logger: logger,
	}
}

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CreateTeam creates a team. Staff only; team names are not required to be
// unique, except that "Default" is reserved for the sentinel row.
func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if !user.IsStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Staff access required", nil)
	}

	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	team := models.Team{Name: req.Name}
	if err := team.ValidateName(); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if team.IsDefault() {
		return utils.ErrorResponse(c, fiber.StatusConflict, "The Default team is managed automatically", nil)
	}

	if err := tc.DB.Create(&team).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create team", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(team))
}

// GetTeams lists all teams.
func (tc *TeamController) GetTeams(c *fiber.Ctx) error {
	var teams []models.Team
	if err := tc.DB.Order("name").Find(&teams).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch teams", err)
	}
	return c.JSON(utils.SuccessResponse(teams))
}

// GetTeam returns one team with its members.
func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	var team models.Team
	if err := tc.DB.Preload("Members").First(&team, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(utils.SuccessResponse(team))
}

// DeleteTeam removes a team. Deletion is protected: a team that still has
// members is not deletable, and the Default team never is.
func (tc *TeamController) DeleteTeam(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if !user.IsStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Staff access required", nil)
	}

	var team models.Team
	if err := tc.DB.First(&team, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if team.IsDefault() {
		return utils.ErrorResponse(c, fiber.StatusConflict, "The Default team cannot be deleted", nil)
	}

	var memberCount int64
	if err := tc.DB.Model(&models.User{}).Where("team_id = ?", team.ID).Count(&memberCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to check team members", err)
	}
	if memberCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Team still has members", nil)
	}

	if err := tc.DB.Delete(&team).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete team", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
