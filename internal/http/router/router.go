package router

import (
	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-backend/internal/config"
	"github.com/skillswap/skillswap-backend/internal/http/handlers"
	"github.com/skillswap/skillswap-backend/internal/http/middleware"
	"github.com/skillswap/skillswap-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	skillHandler *handlers.SkillHandler,
	swapHandler *handlers.SwapHandler,
	matchHandler *handlers.MatchHandler,
	feedbackHandler *handlers.FeedbackHandler,
	exportHandler *handlers.ExportHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	seedHandler *handlers.SeedHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	if seedHandler != nil && cfg.Env == "development" {
		api.POST("/seed", seedHandler.Seed)
	}

	authGroup := api.Group("/auth")
	authRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	authGroup.Use(authRateLimit)
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
	}

	protectedAuth := api.Group("/auth")
	protectedAuth.Use(middleware.AuthMiddleware(tokenManager))
	{
		protectedAuth.GET("/me", authHandler.Me)
		protectedAuth.PATCH("/me", authHandler.UpdateProfile)
		protectedAuth.GET("/sessions", authHandler.ListSessions)
		protectedAuth.DELETE("/sessions/:id", middleware.UUIDValidator("id"), authHandler.DeleteSession)
	}

	// Публичные маршруты
	api.GET("/homepage", exportHandler.Homepage)
	api.GET("/skills", skillHandler.List)
	api.GET("/skills/categories", skillHandler.ListCategories)
	api.GET("/skills/:id/users", middleware.UUIDValidator("id"), skillHandler.ListUsers)
	api.GET("/users/:id", middleware.UUIDValidator("id"), authHandler.PublicProfile)
	api.GET("/users/:id/skills", middleware.UUIDValidator("id"), skillHandler.ListUserSkills)
	api.GET("/users/:id/feedback", middleware.UUIDValidator("id"), feedbackHandler.ListReceived)
	api.GET("/users/:id/rating", middleware.UUIDValidator("id"), feedbackHandler.RatingStats)

	// Выгрузка для рекомендательного движка
	api.GET("/export", exportHandler.ExportAll)
	api.GET("/export/users/:id", middleware.UUIDValidator("id"), exportHandler.ExportUserProfile)

	// Защищённые маршруты
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(tokenManager))
	{
		protected.POST("/skills", skillHandler.Create)
		protected.GET("/me/skills", skillHandler.ListMySkills)
		protected.POST("/me/skills", skillHandler.AddUserSkill)
		protected.PATCH("/me/skills/:id", middleware.UUIDValidator("id"), skillHandler.UpdateUserSkill)
		protected.DELETE("/me/skills/:id", middleware.UUIDValidator("id"), skillHandler.DeleteUserSkill)

		protected.POST("/swaps", swapHandler.Create)
		protected.GET("/swaps", swapHandler.List)
		protected.GET("/swaps/:id", middleware.UUIDValidator("id"), swapHandler.Get)
		protected.PATCH("/swaps/:id/status", middleware.UUIDValidator("id"), swapHandler.UpdateStatus)
		protected.GET("/swaps/:id/feedback", middleware.UUIDValidator("id"), feedbackHandler.ListBySwap)

		protected.GET("/matches", matchHandler.FindForMe)
		protected.GET("/matches/reciprocal", matchHandler.Reciprocal)
		protected.GET("/matches/:id", middleware.UUIDValidator("id"), matchHandler.FindForUser)

		protected.POST("/feedback", feedbackHandler.Create)
		protected.GET("/feedback/sent", feedbackHandler.ListSent)
		protected.PATCH("/feedback/:id", middleware.UUIDValidator("id"), feedbackHandler.Update)
	}

	// Модерация
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokenManager), middleware.RequireAdmin())
	{
		admin.POST("/users/:id/flag", middleware.UUIDValidator("id"), adminHandler.FlagUser)
		admin.POST("/users/:id/ban", middleware.UUIDValidator("id"), adminHandler.BanUser)
		admin.DELETE("/users/:id", middleware.UUIDValidator("id"), adminHandler.DeleteUser)
		admin.POST("/skills/:id/flag", middleware.UUIDValidator("id"), adminHandler.FlagSkill)
		admin.DELETE("/skills/:id", middleware.UUIDValidator("id"), adminHandler.DeleteSkill)
		admin.POST("/swaps/:id/flag", middleware.UUIDValidator("id"), adminHandler.FlagSwap)
		admin.POST("/swaps/:id/cancel", middleware.UUIDValidator("id"), adminHandler.CancelSwap)
		admin.GET("/logs", adminHandler.ListLogs)
		admin.GET("/stats", adminHandler.Stats)
	}

	return r
}
