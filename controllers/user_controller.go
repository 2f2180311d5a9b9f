package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"blogbackend/middleware"
	"blogbackend/models"
	"blogbackend/utils"
)

type UserController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewUserController(db *gorm.DB, logger *log.Logger) *UserController {
	return &UserController{
		DB:     db,
		Logger: logger,
	}
}

type AssignTeamRequest struct {
	TeamID uint `json:"team_id" validate:"required"`
}

// GetUsers lists accounts. Staff only.
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if !user.IsStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Staff access required", nil)
	}

	var users []models.User
	if err := uc.DB.Preload("Team").Order("email").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch users", err)
	}
	return c.JSON(utils.SuccessResponse(users))
}

// AssignTeam moves a user to another team. Team-scoped visibility of the
// user's posts follows immediately: the engine always evaluates against the
// author's current team.
func (uc *UserController) AssignTeam(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	if !actor.IsStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Staff access required", nil)
	}

	var req AssignTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var target models.User
	if err := uc.DB.First(&target, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	var team models.Team
	if err := uc.DB.First(&team, req.TeamID).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	target.TeamID = team.ID
	if err := uc.DB.Save(&target).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update user team", err)
	}

	target.Team = &team
	return c.JSON(utils.SuccessResponse(target))
}

// DeleteUser removes an account and, through the cascade constraints, every
// post, comment and like the user authored.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	if !actor.IsStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Staff access required", nil)
	}

	var target models.User
	if err := uc.DB.First(&target, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if target.ID == actor.ID {
		return utils.ErrorResponse(c, fiber.StatusConflict, "You cannot delete your own account", nil)
	}

	if err := uc.DB.Delete(&target).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete user", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
