// Package error defines domain-specific errors for the authentication platform.
package error

import "errors"

// Kind classifies a domain error so callers can discriminate failure modes
// without parsing message text.
type Kind string

const (
	// KindValidation indicates malformed input (email/password/username shape).
	KindValidation Kind = "VALIDATION"

	// KindConflict indicates a duplicate username or email.
	KindConflict Kind = "CONFLICT"

	// KindNotFound indicates a lookup for an absent account.
	KindNotFound Kind = "NOT_FOUND"

	// KindUnauthorized indicates a failed credential check.
	KindUnauthorized Kind = "UNAUTHORIZED"

	// KindInvalidArgument indicates programmer error in key generation
	// parameters (non-positive lengths, blank prefixes, out-of-range counts).
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
)

// Sentinel errors for the authentication domain.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when registering an existing username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when registering an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidPassword is returned when a login password does not match.
	ErrInvalidPassword = errors.New("invalid password")
)

// DomainError represents a caller-recoverable rejection with a kind and a
// human-readable message. No domain error is retried internally or fatal.
type DomainError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// New creates a DomainError with the given kind and message.
func New(kind Kind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// Wrap creates a DomainError carrying an underlying cause.
func Wrap(kind Kind, message string, err error) *DomainError {
	return &DomainError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err if it is (or wraps) a DomainError, or an
// empty Kind otherwise.
func KindOf(err error) Kind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}
