// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/auth-platform/backend/internal/application/usecase/auth"
	domainerror "github.com/auth-platform/backend/internal/domain/error"
	"github.com/auth-platform/backend/internal/integration/entrypoint/dto"
	"github.com/auth-platform/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
	logoutUseCase   *auth.LogoutUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.KindValidation),
		})
		return
	}

	input := auth.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Token:    output.Token,
		Username: output.Username,
		Message:  output.Message,
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.KindValidation),
		})
		return
	}

	input := auth.LoginUserInput{
		Username: req.Username,
		Password: req.Password,
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Token:    output.Token,
		Username: output.Username,
		Message:  output.Message,
	})
}

// Logout handles POST /auth/logout requests. Tokens are stateless, so this is
// advisory only.
func (c *AuthController) Logout(ctx *gin.Context) {
	output, _ := c.logoutUseCase.Execute(ctx.Request.Context())

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// Me handles GET /auth/me requests for the authenticated user.
func (c *AuthController) Me(ctx *gin.Context) {
	username, ok := middleware.GetUsernameFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Not authenticated",
			Code:  string(domainerror.KindUnauthorized),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		Username: username,
	})
}

// handleDomainError maps domain errors to HTTP responses.
func handleDomainError(ctx *gin.Context, err error) {
	var domainErr *domainerror.DomainError
	if errors.As(err, &domainErr) {
		ctx.JSON(statusCodeForKind(domainErr.Kind), dto.ErrorResponse{
			Error: domainErr.Message,
			Code:  string(domainErr.Kind),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForKind maps domain error kinds to HTTP status codes.
func statusCodeForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindValidation, domainerror.KindInvalidArgument:
		return http.StatusBadRequest
	case domainerror.KindConflict:
		return http.StatusConflict
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
