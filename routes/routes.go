package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	controller "blogbackend/controllers"
	"blogbackend/middleware"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authLogger := log.New(os.Stdout, "AUTH: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Auth routes group with logging and rate limiting on the credential
	// endpoints.
	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	auth.Post("/register", middleware.AuthRateLimiter(), controller.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), controller.Login)
	auth.Post("/refresh", controller.RefreshToken)

	// Protected auth endpoints (require valid JWT)
	protectedAuth := auth.Group("", middleware.Protected())
	protectedAuth.Post("/change-password", controller.ChangePassword)
	protectedAuth.Get("/me", controller.GetCurrentUser)

	authLogger.Println("Authentication routes initialized successfully")
}

func SetupAPIRoutes(app *fiber.App, db *gorm.DB) {
	postController := controller.NewPostController(db, log.New(os.Stdout, "POST: ", log.LstdFlags))
	commentController := controller.NewCommentController(db, log.New(os.Stdout, "COMMENT: ", log.LstdFlags))
	likeController := controller.NewLikeController(db, log.New(os.Stdout, "LIKE: ", log.LstdFlags))
	teamController := controller.NewTeamController(db, log.New(os.Stdout, "TEAM: ", log.LstdFlags))
	userController := controller.NewUserController(db, log.New(os.Stdout, "USER: ", log.LstdFlags))

	api := app.Group("/api/v1", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Post routes. Reads go through OptionalAuth so anonymous visitors can see
	// public posts; writes require authentication.
	post := api.Group("/posts")
	post.Get("/", middleware.OptionalAuth(), postController.GetPosts)
	post.Get("/:id", middleware.OptionalAuth(), postController.GetPost)
	post.Post("/", middleware.Protected(), postController.CreatePost)
	post.Put("/:id", middleware.Protected(), postController.UpdatePost)
	post.Delete("/:id", middleware.Protected(), postController.DeletePost)

	// Comment routes, nested under the post they belong to
	post.Get("/:id/comments", middleware.OptionalAuth(), commentController.GetComments)
	post.Post("/:id/comments", middleware.Protected(), commentController.CreateComment)
	api.Delete("/comments/:id", middleware.Protected(), commentController.DeleteComment)

	// Like routes
	post.Get("/:id/likes", middleware.OptionalAuth(), likeController.GetLikes)
	post.Post("/:id/like", middleware.Protected(), likeController.LikePost)
	post.Delete("/:id/like", middleware.Protected(), likeController.UnlikePost)

	// Team routes
	team := api.Group("/teams", middleware.Protected())
	team.Post("/", teamController.CreateTeam)
	team.Get("/", teamController.GetTeams)
	team.Get("/:id", teamController.GetTeam)
	team.Delete("/:id", teamController.DeleteTeam)

	// User administration routes
	user := api.Group("/users", middleware.Protected())
	user.Get("/", userController.GetUsers)
	user.Put("/:id/team", userController.AssignTeam)
	user.Delete("/:id", userController.DeleteUser)

	log.Println("API routes initialized successfully")
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Setup health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupAuthRoutes(app, db)
	SetupAPIRoutes(app, db)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
