// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"diary/internal/domain/entity"
	"diary/internal/errors"

	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when a diary entry is not found.
var ErrEntryNotFound = errors.New("diary entry not found")

// EntryRepository defines the interface for diary entry persistence.
type EntryRepository interface {
	// CreateEntry persists a new diary entry.
	CreateEntry(ctx context.Context, entry *entity.DiaryEntry) error

	// FindEntryByID retrieves an entry by its unique ID.
	FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.DiaryEntry, error)

	// FindEntriesInRange retrieves a user's entries with created_at in
	// [start, end) — inclusive lower bound, exclusive upper bound — ordered by
	// created_at ascending so the oldest entry of a day comes first.
	FindEntriesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DiaryEntry, error)

	// FindEntriesByUser retrieves a page of the user's entries, newest first.
	// A limit of 0 means no limit.
	FindEntriesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DiaryEntry, error)

	// UpdateEntry modifies an existing entry's title and content.
	UpdateEntry(ctx context.Context, entry *entity.DiaryEntry) error

	// DeleteEntry removes an entry by its ID.
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	// DeleteEntriesByUser removes all entries belonging to a user. Used by account deletion.
	DeleteEntriesByUser(ctx context.Context, userID uuid.UUID) error
}
