package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"diary/internal/domain/entity"
)

// ReportReceiptInput carries a purchase reported by the store client after a
// successful checkout.
type ReportReceiptInput struct {
	ProductID     string
	TransactionID string
	Platform      string
	Payload       string
	PurchasedAt   time.Time
}

// EntitlementUsecase decides whether a user may access paid features.
type EntitlementUsecase interface {
	// Resolve returns the user's entitlement verdict. It never returns an
	// error: every failure mode collapses into one of the three verdicts, with
	// Pending reserved for the case where neither the subscription record, the
	// store, nor the local cache could say anything definite.
	Resolve(ctx context.Context, userID uuid.UUID) entity.Verdict

	// RegisterPurchase records a store receipt reported by the client,
	// activates the subscription and returns the resulting verdict.
	RegisterPurchase(ctx context.Context, userID uuid.UUID, input *ReportReceiptInput) (entity.Verdict, error)
}
