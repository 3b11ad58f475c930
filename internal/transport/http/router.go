package http

import (
	"github.com/Dhruv-958/TaskMaster-Backend/internal/config"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/services"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/cache"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/db"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/transport/http/handlers"
	httpmw "github.com/Dhruv-958/TaskMaster-Backend/internal/transport/http/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *logger.Logger
	Config *config.Config
}

func SetupRoutes(app *fiber.App, cfg RouterConfig) {
	// Initialize repositories
	taskRepo := db.NewTaskRepository(cfg.DB, cfg.Logger)
	userRepo := db.NewUserRepository(cfg.DB, cfg.Logger)

	// Initialize services
	scorer := services.NewScoringClient(cfg.Config.Scoring.URL, cfg.Config.Scoring.Timeout, cfg.Logger)

	taskService := services.NewTaskService(services.TaskServiceConfig{
		Repository: taskRepo,
		Scorer:     scorer,
		Logger:     cfg.Logger,
		DailyLimit: cfg.Config.Quota.DailyTaskLimit,
	})

	userService := services.NewUserService(services.UserServiceConfig{
		UserRepo: userRepo,
		TaskRepo: taskRepo,
		Logger:   cfg.Logger,
	})

	authService := services.NewAuthService(services.AuthServiceConfig{
		UserRepo:  userRepo,
		Logger:    cfg.Logger,
		JWTSecret: cfg.Config.Auth.JWTSecret,
		TokenTTL:  cfg.Config.Auth.TokenTTL,
	})

	var leaderboardCache handlers.LeaderboardCache
	if cfg.Config.Features.EnableLeaderboardCache && cfg.Redis != nil {
		leaderboardCache = cache.NewLeaderboardCache(cfg.Redis, cfg.Config.Features.LeaderboardCacheTTL, cfg.Logger)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.Logger)
	taskHandler := handlers.NewTaskHandler(taskService, cfg.Logger)
	userHandler := handlers.NewUserHandler(userService, cfg.Logger, leaderboardCache)

	// API v1 routes
	api := app.Group("/api/v1")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/signin", authHandler.SignIn)

	// Admin-wide task listing (must be registered before the user-scoped
	// group so the admin key middleware applies only here)
	api.Get("/tasks", httpmw.AdminAuth(cfg.Config), taskHandler.GetAllTasks)

	// Task routes
	tasks := api.Group("/tasks", httpmw.UserAuth(cfg.Config))
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/:id", taskHandler.GetTask)
	tasks.Delete("/:id", taskHandler.DeleteTask)

	// User routes
	users := api.Group("/users", httpmw.UserAuth(cfg.Config))
	users.Get("/profile", userHandler.GetProfile)
	users.Get("/profile/:id", userHandler.GetProfileByID)
	users.Get("/leaderboard", userHandler.GetLeaderboard)
	users.Put("/profile", userHandler.UpdateProfile)
	users.Post("/password", userHandler.ChangePassword)
	users.Delete("/tasks", userHandler.DeleteTasks)
	users.Delete("/profile", userHandler.DeleteAccount)
}
