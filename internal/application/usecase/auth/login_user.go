// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/auth-platform/backend/internal/application/adapter"
	domainerror "github.com/auth-platform/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	Token    string
	Username string
	Message  string
}

// LoginUserUseCase handles user login logic.
//
// Note: login deliberately reports "User not found" and "Invalid password" as
// distinct failures. This enables username enumeration; unifying the two
// messages is a policy decision left to the transport edge.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.Wrap(domainerror.KindNotFound,
				"User not found", domainerror.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.Wrap(domainerror.KindUnauthorized,
			"Invalid password", domainerror.ErrInvalidPassword)
	}

	token, err := uc.tokenService.IssueToken(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginUserOutput{
		Token:    token,
		Username: user.Username,
		Message:  "Login successful",
	}, nil
}
