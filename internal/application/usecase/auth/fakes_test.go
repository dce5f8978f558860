// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"

	"github.com/auth-platform/backend/internal/domain/entity"
	domainerror "github.com/auth-platform/backend/internal/domain/error"
)

// asDomainError unwraps err into a DomainError.
func asDomainError(err error, target **domainerror.DomainError) bool {
	return errors.As(err, target)
}

// fakeUserRepo is an in-memory UserRepository for use-case tests.
type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakePasswordService hashes by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

// fakeTokenService issues deterministic tokens.
type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) IssueToken(ctx context.Context, username string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	return "token-for-" + username, nil
}

func (s *fakeTokenService) ValidateToken(ctx context.Context, token string) (string, error) {
	return "", errors.New("not implemented")
}
