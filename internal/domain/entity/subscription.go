// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the backend's view of a user's subscription.
type SubscriptionStatus string

const (
	// SubscriptionStatusNone indicates the user has never had a subscription.
	SubscriptionStatusNone SubscriptionStatus = "none"
	// SubscriptionStatusTrial indicates a time-limited trial granted at registration.
	SubscriptionStatusTrial SubscriptionStatus = "trial"
	// SubscriptionStatusActive indicates a store-verified paid subscription.
	SubscriptionStatusActive SubscriptionStatus = "active"
	// SubscriptionStatusInactive indicates a lapsed or cancelled subscription.
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

// String returns the string representation of the SubscriptionStatus.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsValid checks if the SubscriptionStatus is a valid value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusNone, SubscriptionStatusTrial, SubscriptionStatusActive, SubscriptionStatusInactive:
		return true
	default:
		return false
	}
}

// SubscriptionRecord is the backend's per-user subscription state. It is one of
// three entitlement sources of truth and is kept convergent with store receipts
// by the entitlement resolver, which trusts the platform receipt on conflict.
type SubscriptionRecord struct {
	ID        uuid.UUID          `json:"id"`         // The Global Unique Identifier (GUID) for the record.
	UserID    uuid.UUID          `json:"user_id"`    // The ID of the user this record belongs to.
	Status    SubscriptionStatus `json:"status"`     // Current subscription status.
	StartDate *time.Time         `json:"start_date"` // When the current status period began.
	EndDate   *time.Time         `json:"end_date"`   // When the current status period ended or will end.
	CreatedAt time.Time          `json:"created_at"` // Timestamp of when this record was created.
	UpdatedAt time.Time          `json:"updated_at"` // Timestamp of the last modification.
}
