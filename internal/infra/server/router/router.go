// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/auth-platform/backend/internal/integration/entrypoint/controller"
	"github.com/auth-platform/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	authController   *controller.AuthController
	keysController   *controller.KeysController
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	keysController *controller.KeysController,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController: healthController,
		authController:   authController,
		keysController:   keysController,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery.
	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)

	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes need the user store; they are skipped when the
		// database is unavailable.
		if r.authController != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.authController.Login)
				auth.POST("/logout", r.authController.Logout)
				if r.authMiddleware != nil {
					auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
				}
			}
		}

		// Key generation is stateless and always available.
		if r.keysController != nil {
			keys := v1.Group("/keys")
			{
				keys.GET("/alphanumeric", r.keysController.Alphanumeric)
				keys.GET("/hex", r.keysController.Hex)
				keys.GET("/base64", r.keysController.Base64)
				keys.GET("/url-safe", r.keysController.URLSafe)
				keys.GET("/uuid", r.keysController.UUID)
				keys.GET("/api-key", r.keysController.APIKey)
				keys.GET("/webhook-secret", r.keysController.WebhookSecret)
				keys.GET("/session-token", r.keysController.SessionToken)
				keys.GET("/batch", r.keysController.Batch)
			}
		}
	}

	return r.engine
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
