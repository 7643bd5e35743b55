// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiaryEntry is a single dated journal entry. The UX contract is one entry per
// user per local calendar day; the store does not enforce this, the daily
// resolver does.
type DiaryEntry struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the entry.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who wrote this entry.
	Title     string    `json:"title"`      // Short title, defaults to the formatted date on the client.
	Content   string    `json:"content"`    // Sanitized rich-text HTML produced by the mobile editor.
	CreatedAt time.Time `json:"created_at"` // Creation time; also the key for the day-window lookup.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
