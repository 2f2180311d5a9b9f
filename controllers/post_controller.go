package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"blogbackend/middleware"
	"blogbackend/models"
	"blogbackend/permissions"
	"blogbackend/utils"
)

type PostController struct {
	DB     *gorm.DB
	Logger *log.Logger
}

func NewPostController(db *gorm.DB, logger *log.Logger) *PostController {
	return &PostController{
		DB:     db,
		Logger: logger,
	}
}

type CreatePostRequest struct {
	Title        string `json:"title" validate:"required,max=100"`
	Content      string `json:"content" validate:"required"`
	PrivacyRead  string `json:"privacy_read" validate:"omitempty,oneof=public authenticated team author"`
	PrivacyWrite string `json:"privacy_write" validate:"omitempty,oneof=authenticated team author"`
}

type UpdatePostRequest struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	PrivacyRead  *string `json:"privacy_read"`
	PrivacyWrite *string `json:"privacy_write"`
}

// PostListItem is the list-view shape: content is trimmed to an excerpt.
type PostListItem struct {
	ID           uint           `json:"id"`
	AuthorID     uint           `json:"author_id"`
	AuthorEmail  string         `json:"author_email"`
	Title        string         `json:"title"`
	Excerpt      string         `json:"excerpt"`
	PrivacyRead  models.Privacy `json:"privacy_read"`
	PrivacyWrite models.Privacy `json:"privacy_write"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// CreatePost creates a post authored by the authenticated user. The author is
// always the actor; an author field in the payload is never read.
func (pc *PostController) CreatePost(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	post := models.Post{
		AuthorID:     user.ID,
		Title:        req.Title,
		Content:      req.Content,
		PrivacyRead:  models.PrivacyPublic,
		PrivacyWrite: models.PrivacyAuthor,
	}
	if req.PrivacyRead != "" {
		post.PrivacyRead = models.Privacy(req.PrivacyRead)
	}
	if req.PrivacyWrite != "" {
		post.PrivacyWrite = models.Privacy(req.PrivacyWrite)
	}

	if err := post.ValidateFields(); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := pc.DB.Create(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create post", err)
	}

	post.Author = *user
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(post))
}

// GetPosts lists posts the actor may read. Denied posts are filtered out of
// the result set rather than reported as errors.
func (pc *PostController) GetPosts(c *fiber.Ctx) error {
	actor := permissions.ForUser(middleware.CurrentUser(c))

	// Pagination
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := pc.DB.Model(&models.Post{}).Preload("Author.Team")

	switch {
	case actor.IsSuperuser() || actor.IsStaff():
		// Staff and superusers see everything.
	case !actor.IsAuthenticated():
		query = query.Where("posts.privacy_read = ?", models.PrivacyPublic)
	default:
		// SQL mirror of CanReadPost, including the Default-team exclusion.
		sameTeamAuthors := `posts.author_id IN (
            SELECT u.id FROM users u
            JOIN teams t ON t.id = u.team_id
            WHERE u.team_id = ? AND t.name <> ?)`
		query = query.Where(
			"posts.privacy_read IN ? OR (posts.privacy_read = ? AND posts.author_id = ?) OR (posts.privacy_read = ? AND "+sameTeamAuthors+")",
			[]models.Privacy{models.PrivacyPublic, models.PrivacyAuthenticated},
			models.PrivacyAuthor, actor.UserID(),
			models.PrivacyTeam, actor.TeamID(), models.DefaultTeamName,
		)
	}

	// Optional filters
	if author := c.Query("author"); author != "" {
		query = query.Where("posts.author_id = ?", utils.ParseUint(author))
	}
	if team := c.Query("team"); team != "" {
		query = query.Where(`posts.author_id IN (
            SELECT u.id FROM users u JOIN teams t ON t.id = u.team_id WHERE t.name = ?)`, team)
	}
	if privacyRead := c.Query("privacy_read"); privacyRead != "" {
		query = query.Where("posts.privacy_read = ?", privacyRead)
	}
	if privacyWrite := c.Query("privacy_write"); privacyWrite != "" {
		query = query.Where("posts.privacy_write = ?", privacyWrite)
	}
	if from := c.Query("created_from"); from != "" {
		query = query.Where("posts.created_at >= ?", from)
	}
	if to := c.Query("created_to"); to != "" {
		query = query.Where("posts.created_at <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to count posts", err)
	}

	var posts []models.Post
	if err := query.Order("posts.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch posts", err)
	}

	items := make([]PostListItem, 0, len(posts))
	for i := range posts {
		items = append(items, PostListItem{
			ID:           posts[i].ID,
			AuthorID:     posts[i].AuthorID,
			AuthorEmail:  posts[i].Author.Email,
			Title:        posts[i].Title,
			Excerpt:      posts[i].Excerpt(),
			PrivacyRead:  posts[i].PrivacyRead,
			PrivacyWrite: posts[i].PrivacyWrite,
			CreatedAt:    posts[i].CreatedAt,
			UpdatedAt:    posts[i].UpdatedAt,
		})
	}

	return c.JSON(utils.PaginatedResponse{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetPost returns a single post if the actor may read it.
func (pc *PostController) GetPost(c *fiber.Ctx) error {
	actor := permissions.ForUser(middleware.CurrentUser(c))

	post, err := pc.loadPost(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !permissions.CanReadPost(post, actor) {
		pc.logDenied("read", post, actor)
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You do not have access to this post", nil)
	}

	return c.JSON(utils.SuccessResponse(post))
}

// UpdatePost edits a post if the actor may write it. created_at and the author
// are immutable; updated_at bumps on every successful mutation.
func (pc *PostController) UpdatePost(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	actor := permissions.ForUser(user)

	post, err := pc.loadPost(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !permissions.CanWritePost(post, actor) {
		pc.logDenied("update", post, actor)
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to edit this post", nil)
	}

	var req UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.PrivacyRead != nil {
		post.PrivacyRead = models.Privacy(*req.PrivacyRead)
	}
	if req.PrivacyWrite != nil {
		post.PrivacyWrite = models.Privacy(*req.PrivacyWrite)
	}

	if err := post.ValidateFields(); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if err := pc.DB.Save(post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update post", err)
	}

	return c.JSON(utils.SuccessResponse(post))
}

// DeletePost removes a post and, through the cascade constraints, every
// comment and like attached to it.
func (pc *PostController) DeletePost(c *fiber.Ctx) error {
	actor := permissions.ForUser(middleware.CurrentUser(c))

	post, err := pc.loadPost(c)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if !permissions.CanWritePost(post, actor) {
		pc.logDenied("delete", post, actor)
		return utils.ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to delete this post", nil)
	}

	if err := pc.DB.Delete(post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete post", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// loadPost fetches the target post with its author and the author's current
// team, which every permission decision needs.
func (pc *PostController) loadPost(c *fiber.Ctx) (*models.Post, error) {
	var post models.Post
	if err := pc.DB.Preload("Author.Team").First(&post, utils.ParseUint(c.Params("id"))).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (pc *PostController) logDenied(action string, post *models.Post, actor permissions.Actor) {
	logrus.WithFields(logrus.Fields{
		"action":  action,
		"post_id": post.ID,
		"user_id": actor.UserID(),
	}).Warn("post access denied")
}
