package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/skillswap/skillswap-backend/internal/config"
	"github.com/skillswap/skillswap-backend/internal/db"
	httpHandlers "github.com/skillswap/skillswap-backend/internal/http/handlers"
	httpRouter "github.com/skillswap/skillswap-backend/internal/http/router"
	"github.com/skillswap/skillswap-backend/internal/logger"
	"github.com/skillswap/skillswap-backend/internal/repository"
	"github.com/skillswap/skillswap-backend/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logger.Init(cfg.Env, cfg.LogLevel)

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	skillRepo := repository.NewSkillRepository(dbConn)
	swapRepo := repository.NewSwapRepository(dbConn)
	matchRepo := repository.NewMatchRepository(dbConn)
	feedbackRepo := repository.NewFeedbackRepository(dbConn)
	adminRepo := repository.NewAdminRepository(dbConn)
	exportRepo := repository.NewExportRepository(dbConn)

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager)
	skillService := service.NewSkillService(skillRepo)
	swapService := service.NewSwapService(swapRepo, userRepo, skillRepo)
	matchService := service.NewMatchService(matchRepo, skillRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, swapRepo, userRepo)
	adminService := service.NewAdminService(adminRepo, userRepo, skillRepo, swapRepo)
	exportService := service.NewExportService(exportRepo)
	seedService := service.NewSeedService(userRepo, skillRepo, swapRepo, feedbackRepo)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	skillHandler := httpHandlers.NewSkillHandler(skillService)
	swapHandler := httpHandlers.NewSwapHandler(swapService)
	matchHandler := httpHandlers.NewMatchHandler(matchService)
	feedbackHandler := httpHandlers.NewFeedbackHandler(feedbackService)
	exportHandler := httpHandlers.NewExportHandler(exportService)
	adminHandler := httpHandlers.NewAdminHandler(adminService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	seedHandler := httpHandlers.NewSeedHandler(seedService)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, skillHandler, swapHandler, matchHandler, feedbackHandler, exportHandler, adminHandler, healthHandler, seedHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
