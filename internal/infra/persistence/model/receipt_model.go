package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseReceiptModel is the GORM-specific struct for the 'purchase_receipts'
// table. The unique index on transaction_id makes replayed client reports a
// detectable duplicate instead of a second row.
type PurchaseReceiptModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     string    `gorm:"type:varchar(255);not null"`
	TransactionID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Platform      string    `gorm:"type:varchar(50);not null"`
	Payload       string    `gorm:"type:text"`
	PurchasedAt   time.Time
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseReceiptModel) TableName() string {
	return "purchase_receipts"
}
