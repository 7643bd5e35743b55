package model

import (
	"time"

	"github.com/google/uuid"
)

// DiaryEntryModel mirrors the 'diary_entries' table. The composite index on
// (user_id, created_at) serves the day-window range query.
type DiaryEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_entries_user_created,priority:1"`
	Title     string    `gorm:"type:varchar(255)"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index:idx_entries_user_created,priority:2"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiaryEntryModel) TableName() string {
	return "diary_entries"
}
