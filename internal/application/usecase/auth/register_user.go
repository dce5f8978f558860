// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/auth-platform/backend/internal/application/adapter"
	"github.com/auth-platform/backend/internal/domain/entity"
	domainerror "github.com/auth-platform/backend/internal/domain/error"
	"github.com/auth-platform/backend/internal/domain/validation"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	Token    string
	Username string
	Message  string
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration. Validation rules are checked in
// order (email, password, username) and the first failure short-circuits.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if !validation.IsValidEmail(input.Email) {
		return nil, domainerror.New(domainerror.KindValidation, "Invalid email format")
	}
	if !validation.IsValidPassword(input.Password) {
		return nil, domainerror.New(domainerror.KindValidation,
			"Password must be at least 8 characters with uppercase, lowercase, and digit")
	}
	if !validation.IsValidUsername(input.Username) {
		return nil, domainerror.New(domainerror.KindValidation,
			"Username must be 3-20 characters, alphanumeric only")
	}

	// Check duplicates: username first, then email.
	usernameTaken, err := uc.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if usernameTaken {
		return nil, domainerror.Wrap(domainerror.KindConflict,
			"Username already exists", domainerror.ErrUsernameAlreadyExists)
	}

	emailTaken, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if emailTaken {
		return nil, domainerror.Wrap(domainerror.KindConflict,
			"Email already exists", domainerror.ErrEmailAlreadyExists)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Username, input.Email, passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokenService.IssueToken(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &RegisterUserOutput{
		Token:    token,
		Username: user.Username,
		Message:  "Registration successful",
	}, nil
}
