// Package auth contains authentication-related use cases.
package auth

import "context"

// LogoutUserOutput represents the output of user logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles user logout. Tokens are stateless, so logout is
// purely advisory: the caller discards its token and no server-side state
// changes.
type LogoutUserUseCase struct{}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase() *LogoutUserUseCase {
	return &LogoutUserUseCase{}
}

// Execute performs the user logout.
func (uc *LogoutUserUseCase) Execute(ctx context.Context) (*LogoutUserOutput, error) {
	return &LogoutUserOutput{
		Message: "Logged out successfully. Please discard your token.",
	}, nil
}
