package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"diary/internal/domain/entity"
)

// EntryDecision tells the client which editor mode to open for a given day.
type EntryDecision string

const (
	// DecisionCreate means no entry exists for the day; open a blank editor.
	DecisionCreate EntryDecision = "create"
	// DecisionEditExisting means the day already has an entry; open it for editing.
	DecisionEditExisting EntryDecision = "edit_existing"
)

// EntryResolution is the outcome of resolving a calendar day to an editor action.
type EntryResolution struct {
	Decision EntryDecision
	// Entry is set only when Decision is DecisionEditExisting.
	Entry *entity.DiaryEntry
}

// CreateEntryInput defines the data for a new diary entry.
type CreateEntryInput struct {
	Title   string
	Content string
}

// UpdateEntryInput defines the editable fields of an existing entry.
type UpdateEntryInput struct {
	Title   string
	Content string
}

// JournalUsecase defines the diary-entry business operations, including the
// one-entry-per-day resolution the mobile editor relies on.
type JournalUsecase interface {
	// ResolveForDate maps a reference instant to the editor action for that
	// local calendar day. The day boundary is midnight in ref's location.
	ResolveForDate(ctx context.Context, userID uuid.UUID, ref time.Time) (*EntryResolution, error)

	// CreateEntry persists a new entry after sanitizing its content.
	CreateEntry(ctx context.Context, userID uuid.UUID, input *CreateEntryInput) (*entity.DiaryEntry, error)

	// GetEntry returns a single entry owned by the user.
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*entity.DiaryEntry, error)

	// UpdateEntry overwrites the title and content of an existing entry.
	UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, input *UpdateEntryInput) (*entity.DiaryEntry, error)

	// DeleteEntry removes an entry owned by the user.
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error

	// ListByDay returns the entries created on ref's local calendar day,
	// oldest first.
	ListByDay(ctx context.Context, userID uuid.UUID, ref time.Time) ([]*entity.DiaryEntry, error)

	// ListEntries returns the user's entries, newest first, paginated.
	ListEntries(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DiaryEntry, error)

	// AttachImage stores image bytes and returns the public URL to embed in
	// the entry content.
	AttachImage(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error)
}
