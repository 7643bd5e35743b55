package service

import (
	"context"

	"diary/internal/domain/entity"

	"github.com/google/uuid"
)

// BillingGateway abstracts the platform billing subsystem. Implementations may
// verify stored receipts against the store's developer API; calls may hang, so
// the entitlement resolver applies its own timeout.
type BillingGateway interface {
	// AvailablePurchases returns the user's currently valid purchase receipts.
	// An error means the purchase state is UNKNOWN, never "no purchases".
	AvailablePurchases(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseReceipt, error)

	// SubscriptionProductID returns the configured subscription product identifier.
	SubscriptionProductID() string
}
