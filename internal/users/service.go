package users

import (
	"context"
	"errors"
	"strings"

	"github.com/taskhive/taskhive-api/internal/models"
)

// ErrMissingFields is returned when a create is attempted without the
// required email or name.
var ErrMissingFields = errors.New("email and name are required")

// Service encapsulates account lookup and creation on top of a Repository.
// Emails are normalized (trimmed, lowercased) on the way in, so lookups are
// case-insensitive regardless of how the account was created.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// NormalizeEmail applies the canonical form emails are stored under.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail returns the account for the given email, or nil when none exists.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.FindByEmail(ctx, NormalizeEmail(email))
}

// Create stores a new account. The password hash may be empty: federated
// accounts have none and are locked out of the password-login path.
func (s *Service) Create(ctx context.Context, email, name, passwordHash string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || name == "" {
		return nil, ErrMissingFields
	}
	u := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
	return s.repo.Create(ctx, u)
}
