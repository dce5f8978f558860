// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// TokenService defines the interface for issuing and validating signed tokens.
type TokenService interface {
	// IssueToken issues a signed token for the given subject (username).
	IssueToken(ctx context.Context, username string) (string, error)

	// ValidateToken validates a token and returns its subject.
	ValidateToken(ctx context.Context, token string) (string, error)
}
