package service

import (
	"context"

	"github.com/google/uuid"
)

// EntitlementCache is the node-local fallback store for the last known
// entitlement of each user. It is only consulted when both the backend record
// and the billing subsystem are unavailable, and is overwritten after every
// successful receipt check.
type EntitlementCache interface {
	// Get returns the cached entitlement and whether a value exists for the user.
	Get(ctx context.Context, userID uuid.UUID) (subscribed bool, ok bool, err error)

	// Set stores the entitlement for the user, replacing any previous value.
	Set(ctx context.Context, userID uuid.UUID, subscribed bool) error
}
