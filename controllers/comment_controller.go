package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"blogbackend/middleware"
	"blogbackend/models"
	"blogbackend/permissions"
	"blogbackend/utils"
)

type CommentController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewCommentController(db *gorm.DB, logger *log.Logger) *CommentController {
	return &CommentController{
		DB:     db,
		Logger: logger,
	}
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CreateComment adds a comment to a post. You must be able to read a post to
// comment on it; the comment's author is always the authenticated actor.
func (cc *CommentController) CreateComment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	actor := permissions.ForUser(user)

	var post models.Post
	if err := cc.DB.Preload("Author.Team").First(&post, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !permissions.CanCreateComment(&post, actor) {
		logrus.WithFields(logrus.Fields{
			"post_id": post.ID,
			"user_id": actor.UserID(),
		}).Warn("comment create denied")
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You cannot comment on this post", nil)
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	comment := models.Comment{
		UserID:  user.ID,
		PostID:  post.ID,
		Content: req.Content,
	}

	if err := comment.ValidateFields(); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := cc.DB.Create(&comment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create comment", err)
	}

	comment.User = *user
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(comment))
}

// GetComments lists a post's comments, newest first. Reading comments follows
// the post's read policy.
func (cc *CommentController) GetComments(c *fiber.Ctx) error {
	actor := permissions.ForUser(middleware.CurrentUser(c))

	var post models.Post
	if err := cc.DB.Preload("Author.Team").First(&post, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !permissions.CanReadPost(&post, actor) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You do not have access to this post", nil)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	var total int64
	if err := cc.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count comments", err)
	}

	var comments []models.Comment
	if err := cc.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch comments", err)
	}

	return c.JSON(utils.PaginatedResponse{
		Data:  comments,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// DeleteComment removes a comment. Allowed for the comment's author and for
// staff users.
func (cc *CommentController) DeleteComment(c *fiber.Ctx) error {
	actor := permissions.ForUser(middleware.CurrentUser(c))

	var comment models.Comment
	if err := cc.DB.First(&comment, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !permissions.CanDeleteComment(&comment, actor) {
		logrus.WithFields(logrus.Fields{
			"comment_id": comment.ID,
			"user_id":    actor.UserID(),
		}).Warn("comment delete denied")
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You cannot delete this comment", nil)
	}

	if err := cc.DB.Delete(&comment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete comment", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
