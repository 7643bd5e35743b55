package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionRecordModel is the GORM-specific struct for the
// 'subscription_records' table. The unique index on user_id enforces the
// one-record-per-user contract that Upsert relies on.
type SubscriptionRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Status    string    `gorm:"type:varchar(20);not null;default:'none'"`
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionRecordModel) TableName() string {
	return "subscription_records"
}
