package routes

import (
	"esports-club-backend/internal/api/handlers"
	"esports-club-backend/internal/api/middleware"
	"esports-club-backend/internal/auth"
	"esports-club-backend/internal/config"
	"esports-club-backend/internal/mailer"
	"esports-club-backend/internal/repository"
	"esports-club-backend/internal/service"
	"esports-club-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	gameRepo := repository.NewGameRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	applicantRepo := repository.NewApplicantRepository(db)
	pageViewRepo := repository.NewPageViewRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)

	// Initialize supporting infrastructure
	store := storage.NewDiskStore(cfg.MediaDir, "/media")
	smtpMailer := mailer.NewSMTPMailer(cfg)

	// Initialize services
	rosterService := service.NewRosterService(gameRepo, teamRepo, userRepo)
	gameService := service.NewGameService(gameRepo, validator, cfg.GamesCacheTTL)
	teamService := service.NewTeamService(teamRepo, gameRepo, validator)
	profileService := service.NewProfileService(userRepo, store, validator)
	applicantService := service.NewApplicantService(applicantRepo, validator)
	analyticsService := service.NewAnalyticsService(pageViewRepo, validator)
	authService := auth.NewAuthService(userRepo, resetRepo, smtpMailer, validator, cfg.JWTSecret, cfg.SiteURL)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	gameHandler := handlers.NewGameHandler(gameService, rosterService, store)
	teamHandler := handlers.NewTeamHandler(teamService, rosterService)
	userHandler := handlers.NewUserHandler(rosterService)
	profileHandler := handlers.NewProfileHandler(profileService)
	applicantHandler := handlers.NewApplicantHandler(applicantService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded media
	router.Static("/media", cfg.MediaDir)

	// Health checks
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")
	{
		// Public endpoints
		v1.GET("/games", gameHandler.ListGames)
		v1.GET("/roster", gameHandler.ListRoster)
		v1.POST("/applicants", applicantHandler.SubmitApplicant)
		v1.POST("/analytics/pageview", analyticsHandler.RecordPageView)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
			authGroup.POST("/reset-password", authHandler.ResetPassword)
		}

		// Authenticated endpoints
		profile := v1.Group("/profile")
		profile.Use(authMiddleware.RequireAuth())
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PATCH("", profileHandler.UpdateProfile)
			profile.POST("/image", profileHandler.UploadProfileImage)
		}

		// Admin endpoints
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.ListUsers)
			admin.PATCH("/users/:id/team", userHandler.AssignUser)
			admin.PATCH("/users/:id/role", userHandler.ToggleUserRole)
			admin.DELETE("/users/:id", userHandler.DeleteUser)

			admin.POST("/games", gameHandler.CreateGame)
			admin.PATCH("/games/:id", gameHandler.UpdateGame)
			admin.DELETE("/games/:id", gameHandler.DeleteGame)
			admin.POST("/games/:id/image", gameHandler.UploadGameImage)

			admin.POST("/teams", teamHandler.CreateTeam)
			admin.DELETE("/teams/:id", teamHandler.DeleteTeam)

			admin.GET("/applicants", applicantHandler.ListApplicants)
			admin.GET("/analytics", analyticsHandler.Summary)
		}
	}

	return router
}
