// Package main is the entry point for the Auth Platform API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/auth-platform/backend/config"
	"github.com/auth-platform/backend/internal/application/usecase/auth"
	"github.com/auth-platform/backend/internal/application/usecase/keys"
	"github.com/auth-platform/backend/internal/infra/db"
	"github.com/auth-platform/backend/internal/infra/server/router"
	"github.com/auth-platform/backend/internal/integration/adapters"
	"github.com/auth-platform/backend/internal/integration/entrypoint/controller"
	"github.com/auth-platform/backend/internal/integration/entrypoint/middleware"
	"github.com/auth-platform/backend/internal/integration/persistence"
	"github.com/auth-platform/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Auth Platform API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection. Key generation endpoints are stateless
	// and stay available even when the user store is down.
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without user store",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		if err := database.AutoMigrate(&model.UserModel{}); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	healthController := controller.NewHealthController(dbHealthChecker)

	// Key generation use cases have no external dependencies.
	generateKeyUseCase := keys.NewGenerateKeyUseCase()
	generateBatchKeysUseCase := keys.NewGenerateBatchKeysUseCase()
	keysController := controller.NewKeysController(generateKeyUseCase, generateBatchKeysUseCase)

	// Auth use cases require the user store.
	var authController *controller.AuthController
	var authMiddleware *middleware.AuthMiddleware

	if database != nil {
		userRepo := persistence.NewUserRepository(database.DB())
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase()

		authController = controller.NewAuthController(registerUseCase, loginUseCase, logoutUseCase)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		slog.Info("Auth system initialized successfully")
	} else {
		slog.Warn("Auth system not initialized due to missing database connection")
	}

	r := router.NewRouter(healthController, authController, keysController, authMiddleware)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
