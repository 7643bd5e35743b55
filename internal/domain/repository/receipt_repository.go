// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"diary/internal/domain/entity"
	"diary/internal/errors"

	"github.com/google/uuid"
)

// ErrDuplicateReceipt is returned when a receipt with the same store
// transaction ID has already been stored.
var ErrDuplicateReceipt = errors.New("receipt already stored")

// ReceiptRepository defines the interface for purchase receipt persistence.
// Receipts are reported by the mobile client and are read-only afterwards.
type ReceiptRepository interface {
	// SaveReceipt persists a reported receipt. Saving the same store
	// transaction twice returns ErrDuplicateReceipt.
	SaveReceipt(ctx context.Context, receipt *entity.PurchaseReceipt) error

	// FindReceiptsByUser retrieves all stored receipts for a user, newest first.
	FindReceiptsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseReceipt, error)
}
