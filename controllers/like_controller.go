package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"blogbackend/apperrors"
	"blogbackend/middleware"
	"blogbackend/models"
	"blogbackend/permissions"
	"blogbackend/utils"
)

type LikeController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewLikeController(db *gorm.DB, logger *log.Logger) *LikeController {
	return &LikeController{
		DB:     db,
		Logger: logger,
	}
}

// LikePost records a like for the authenticated actor. A user may like a post
// at most once: the application pre-check catches the common case and the
// unique index settles concurrent attempts, both reported as the same
// duplicate outcome.
func (lc *LikeController) LikePost(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	actor := permissions.ForUser(user)

	var post models.Post
	if err := lc.DB.Preload("Author.Team").First(&post, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !permissions.CanLikePost(&post, actor) {
		logrus.WithFields(logrus.Fields{
			"post_id": post.ID,
			"user_id": actor.UserID(),
		}).Warn("like denied")
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You cannot like this post", nil)
	}

	var existing models.Like
	if err := lc.DB.Where("user_id = ? AND post_id = ?", user.ID, post.ID).First(&existing).Error; err == nil {
		return utils.DomainErrorResponse(c,
			apperrors.NewValidationError("post", "you have already liked this post"))
	}

	like := models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}

	if err := lc.DB.Create(&like).Error; err != nil {
		if apperrors.IsDuplicate(err) {
			// Lost a race against a concurrent like from the same user.
			return utils.DomainErrorResponse(c,
				apperrors.NewValidationError("post", "you have already liked this post"))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to like post", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(like))
}

// UnlikePost removes the actor's like from a post. If no like exists the
// outcome is not-found, not a silent no-op.
func (lc *LikeController) UnlikePost(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	actor := permissions.ForUser(user)

	var like models.Like
	if err := lc.DB.Where("user_id = ? AND post_id = ?", user.ID, utils.ParseUint(c.Params("id"))).
		First(&like).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !permissions.CanUnlike(&like, actor) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You cannot remove this like", nil)
	}

	if err := lc.DB.Delete(&like).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to remove like", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetLikes returns a post's like count and whether the current actor liked it.
func (lc *LikeController) GetLikes(c *fiber.Ctx) error {
	actor := permissions.ForUser(middleware.CurrentUser(c))

	var post models.Post
	if err := lc.DB.Preload("Author.Team").First(&post, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !permissions.CanReadPost(&post, actor) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You do not have access to this post", nil)
	}

	var count int64
	if err := lc.DB.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&count).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count likes", err)
	}

	liked := false
	if actor.IsAuthenticated() {
		var like models.Like
		if err := lc.DB.Where("user_id = ? AND post_id = ?", actor.UserID(), post.ID).
			First(&like).Error; err == nil {
			liked = true
		}
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"post_id": post.ID,
		"count":   count,
		"liked":   liked,
	}))
}
