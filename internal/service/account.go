// Package service contains the business logic for the Grazing Trail API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// client calls. No SQL and no HTTP lives here; services depend on
// interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/grazingtrail/backend/internal/domain"
	"github.com/grazingtrail/backend/internal/repo"
)

// dummyHash is a valid bcrypt hash compared against when the username does
// not exist, so authentication takes roughly the same time for unknown users
// as for wrong passwords.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AccountService implements registration and authentication.
// Passwords are stored only as bcrypt hashes; the raw credential never
// leaves this package.
type AccountService struct {
	users repo.UserRepo
}

// NewAccountService constructs an AccountService backed by the provided UserRepo.
func NewAccountService(users repo.UserRepo) *AccountService {
	return &AccountService{users: users}
}

// Register creates a new account.
// Returns domain.ErrValidation for an empty username or password, and
// domain.ErrDuplicateUser when the username is taken. Uniqueness is enforced
// by the database constraint, so of two concurrent registrations for the same
// name exactly one succeeds and no partial state is left behind.
func (s *AccountService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if password == "" {
		return domain.User{}, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AccountService.Register: hash: %w", err)
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AccountService.Register: %w", err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the account.
// Unknown usernames and wrong passwords both return
// domain.ErrInvalidCredentials; callers cannot tell which one happened.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Burn a comparison anyway so the unknown-user path is not
			// observably faster than the wrong-password path.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return domain.User{}, fmt.Errorf("service.AccountService.Authenticate: %w", domain.ErrInvalidCredentials)
		}
		return domain.User{}, fmt.Errorf("service.AccountService.Authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, fmt.Errorf("service.AccountService.Authenticate: %w", domain.ErrInvalidCredentials)
	}
	return user, nil
}
