package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "diary/internal/delivery/context"
	"diary/internal/domain/entity"
	domainerrors "diary/internal/domain/errors"
	"diary/internal/domain/repository"
	"diary/internal/domain/service"
	"diary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type journalService struct {
	entryRepo repository.EntryRepository
	sanitizer service.ContentSanitizer
	images    service.ImageStore
	logger    *slog.Logger
}

// JournalServiceParams holds dependencies for JournalService, injected by Fx.
type JournalServiceParams struct {
	fx.In

	EntryRepo repository.EntryRepository
	Sanitizer service.ContentSanitizer
	Images    service.ImageStore
	Logger    *slog.Logger
}

// NewJournalService is the constructor for journalService.
func NewJournalService(params JournalServiceParams) usecase.JournalUsecase {
	return &journalService{
		entryRepo: params.EntryRepo,
		sanitizer: params.Sanitizer,
		images:    params.Images,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *journalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// dayWindow returns the half-open interval [midnight, next midnight) that
// contains ref, in ref's own location. Using ref's location keeps the window
// aligned with the writer's wall clock, including DST days that are 23 or 25
// hours long.
func dayWindow(ref time.Time) (start, end time.Time) {
	year, month, day := ref.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 0, 1)

	return start, end
}

// ResolveForDate maps a reference instant to the editor action for that local
// calendar day: create a new entry, or edit the day's existing one. A store
// failure is surfaced as an error rather than a "create" decision, so a
// flaky lookup can never fork a second entry for the day.
func (srv *journalService) ResolveForDate(ctx context.Context, userID uuid.UUID, ref time.Time) (*usecase.EntryResolution, error) {
	start, end := dayWindow(ref)

	entries, err := srv.entryRepo.FindEntriesInRange(ctx, userID, start, end)
	if err != nil {
		srv.log(ctx).Error("Day-window lookup failed", slog.Any("userID", userID), slog.Time("day", start), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrEntryLookupFailed, "failed to look up entries for day")
	}

	if len(entries) == 0 {
		return &usecase.EntryResolution{Decision: usecase.DecisionCreate}, nil
	}

	if len(entries) > 1 {
		// More than one entry on a day means the invariant was violated at
		// write time (e.g. a client clock jump). Pick the oldest so repeated
		// resolutions keep converging on the same entry.
		srv.log(ctx).Warn("Multiple entries found for one day",
			slog.Any("userID", userID),
			slog.Time("day", start),
			slog.Int("count", len(entries)))
	}

	return &usecase.EntryResolution{
		Decision: usecase.DecisionEditExisting,
		Entry:    entries[0],
	}, nil
}

// CreateEntry persists a new entry after sanitizing its content.
func (srv *journalService) CreateEntry(ctx context.Context, userID uuid.UUID, input *usecase.CreateEntryInput) (*entity.DiaryEntry, error) {
	now := time.Now()
	entry := &entity.DiaryEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     input.Title,
		Content:   srv.sanitizer.Sanitize(input.Content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.entryRepo.CreateEntry(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create diary entry")
	}

	srv.log(ctx).Debug("Diary entry created", slog.Any("userID", userID), slog.Any("entryID", entry.ID))

	return entry, nil
}

// GetEntry returns a single entry after verifying ownership.
func (srv *journalService) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*entity.DiaryEntry, error) {
	return srv.loadOwnedEntry(ctx, userID, entryID)
}

// UpdateEntry overwrites the title and content of an existing entry.
func (srv *journalService) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, input *usecase.UpdateEntryInput) (*entity.DiaryEntry, error) {
	entry, err := srv.loadOwnedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Title = input.Title
	entry.Content = srv.sanitizer.Sanitize(input.Content)
	entry.UpdatedAt = time.Now()

	if err := srv.entryRepo.UpdateEntry(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update diary entry")
	}

	return entry, nil
}

// DeleteEntry removes an entry after verifying ownership.
func (srv *journalService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := srv.loadOwnedEntry(ctx, userID, entryID); err != nil {
		return err
	}

	if err := srv.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		return errors.Wrap(err, "failed to delete diary entry")
	}

	srv.log(ctx).Info("Diary entry deleted", slog.Any("userID", userID), slog.Any("entryID", entryID))

	return nil
}

// ListByDay returns the entries created on ref's local calendar day, oldest first.
func (srv *journalService) ListByDay(ctx context.Context, userID uuid.UUID, ref time.Time) ([]*entity.DiaryEntry, error) {
	start, end := dayWindow(ref)

	entries, err := srv.entryRepo.FindEntriesInRange(ctx, userID, start, end)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrEntryLookupFailed, "failed to look up entries for day")
	}

	return entries, nil
}

// ListEntries returns the user's entries, newest first, paginated.
func (srv *journalService) ListEntries(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DiaryEntry, error) {
	entries, err := srv.entryRepo.FindEntriesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list diary entries")
	}

	return entries, nil
}

// AttachImage stores image bytes and returns the public URL to embed in the
// entry content.
func (srv *journalService) AttachImage(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "empty image payload")
	}

	url, err := srv.images.Put(ctx, data, contentType)
	if err != nil {
		srv.log(ctx).Error("Image upload failed", slog.Any("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrImageUploadFailed, "failed to store image")
	}

	srv.log(ctx).Debug("Image attached", slog.Any("userID", userID), slog.String("url", url))

	return url, nil
}

// loadOwnedEntry fetches an entry and verifies it belongs to the user.
func (srv *journalService) loadOwnedEntry(ctx context.Context, userID, entryID uuid.UUID) (*entity.DiaryEntry, error) {
	entry, err := srv.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEntryNotFound, "diary entry not found")
		}

		return nil, errors.Wrap(err, "failed to find diary entry")
	}

	if entry.UserID != userID {
		srv.log(ctx).Warn("Entry ownership violation", slog.Any("userID", userID), slog.Any("entryID", entryID))

		return nil, errors.Wrap(domainerrors.ErrEntryOwnershipViolation, "entry belongs to another user")
	}

	return entry, nil
}
