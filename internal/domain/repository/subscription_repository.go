// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"diary/internal/domain/entity"
	"diary/internal/errors"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a user has no subscription record.
var ErrSubscriptionNotFound = errors.New("subscription record not found")

// SubscriptionRepository defines the interface for subscription record persistence.
// A user has at most one record; the entitlement resolver upserts it to keep it
// convergent with store receipts.
type SubscriptionRepository interface {
	// FindByUser retrieves the subscription record for a user.
	// Returns ErrSubscriptionNotFound when the user has no record.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionRecord, error)

	// Upsert creates the user's subscription record or updates it in place.
	// Only the fields set on the record (status, start/end dates) are written.
	Upsert(ctx context.Context, record *entity.SubscriptionRecord) error
}
