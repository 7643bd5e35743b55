package repository

import (
	"context"

	"diary/internal/domain/entity"
	"diary/internal/errors"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no authentication record matches the lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and provider user ID
	// (the email address for the "email" provider).
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// DeleteAuthenticationsByUser removes all credentials belonging to a user.
	DeleteAuthenticationsByUser(ctx context.Context, userID uuid.UUID) error
}
