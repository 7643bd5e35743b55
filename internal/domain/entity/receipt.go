// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseReceipt is a platform-issued proof of purchase reported by the mobile
// client. The payload is the opaque store token; only the product ID is
// interpreted by this system.
type PurchaseReceipt struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the receipt record.
	UserID        uuid.UUID `json:"user_id"`        // The ID of the user who reported the purchase.
	ProductID     string    `json:"product_id"`     // The store product identifier of the purchased subscription.
	TransactionID string    `json:"transaction_id"` // The store transaction identifier, unique per purchase.
	Platform      string    `json:"platform"`       // Originating platform (ios, android).
	Payload       string    `json:"-"`              // Opaque store token used for server-side verification.
	PurchasedAt   time.Time `json:"purchased_at"`   // Purchase time reported by the store.
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of when this record was stored.
}
