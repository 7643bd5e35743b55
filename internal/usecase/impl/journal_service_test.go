package impl

import (
	"context"
	"testing"
	"time"

	"diary/internal/domain/entity"
	domainerrors "diary/internal/domain/errors"
	"diary/internal/domain/repository"
	mockRepo "diary/internal/mocks/repository"
	mockSvc "diary/internal/mocks/service"
	"diary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type journalFixtures struct {
	entryRepo *mockRepo.MockEntryRepository
	sanitizer *mockSvc.MockContentSanitizer
	images    *mockSvc.MockImageStore
}

func createTestJournalService(t *testing.T) (usecase.JournalUsecase, *journalFixtures) {
	t.Helper()

	fixtures := &journalFixtures{
		entryRepo: mockRepo.NewMockEntryRepository(t),
		sanitizer: mockSvc.NewMockContentSanitizer(t),
		images:    mockSvc.NewMockImageStore(t),
	}

	svc := NewJournalService(JournalServiceParams{
		EntryRepo: fixtures.entryRepo,
		Sanitizer: fixtures.sanitizer,
		Images:    fixtures.images,
		Logger:    newDiscardLogger(),
	})

	return svc, fixtures
}

func TestDayWindow_CoversLocalDay(t *testing.T) {
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	ref := time.Date(2025, time.March, 15, 23, 59, 59, 0, taipei)
	start, end := dayWindow(ref)

	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, taipei), start)
	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, taipei), end)
}

func TestDayWindow_MidnightBelongsToItsOwnDay(t *testing.T) {
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	ref := time.Date(2025, time.March, 16, 0, 0, 0, 0, taipei)
	start, end := dayWindow(ref)

	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, taipei), start)
	assert.Equal(t, time.Date(2025, time.March, 17, 0, 0, 0, 0, taipei), end)
}

func TestDayWindow_SpringForwardDayIs23Hours(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-03-09: DST starts, the local day is 23 hours long.
	ref := time.Date(2025, time.March, 9, 12, 0, 0, 0, newYork)
	start, end := dayWindow(ref)

	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, newYork), start)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, newYork), end)
	assert.Equal(t, 23*time.Hour, end.Sub(start))
}

func TestDayWindow_UsesRefLocationNotServerLocation(t *testing.T) {
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	// 01:30 in Taipei is still the previous day in UTC; the window must
	// follow the writer's wall clock.
	ref := time.Date(2025, time.June, 2, 1, 30, 0, 0, taipei)
	start, _ := dayWindow(ref)

	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, taipei), start)
	assert.Equal(t, taipei, start.Location())
}

func TestJournalService_ResolveForDate_NoEntry(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()
	ref := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	fixtures.entryRepo.EXPECT().
		FindEntriesInRange(ctx, userID,
			time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)).
		Return([]*entity.DiaryEntry{}, nil)

	resolution, err := svc.ResolveForDate(ctx, userID, ref)
	require.NoError(t, err)
	assert.Equal(t, usecase.DecisionCreate, resolution.Decision)
	assert.Nil(t, resolution.Entry)
}

func TestJournalService_ResolveForDate_ExistingEntry(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()
	ref := time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC)

	existing := &entity.DiaryEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "March 15",
		CreatedAt: time.Date(2025, time.March, 15, 7, 12, 0, 0, time.UTC),
	}

	fixtures.entryRepo.EXPECT().
		FindEntriesInRange(ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*entity.DiaryEntry{existing}, nil)

	resolution, err := svc.ResolveForDate(ctx, userID, ref)
	require.NoError(t, err)
	assert.Equal(t, usecase.DecisionEditExisting, resolution.Decision)
	assert.Equal(t, existing.ID, resolution.Entry.ID)
}

func TestJournalService_ResolveForDate_MultipleEntriesPicksOldest(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()
	ref := time.Date(2025, time.March, 15, 20, 0, 0, 0, time.UTC)

	oldest := &entity.DiaryEntry{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Date(2025, time.March, 15, 6, 0, 0, 0, time.UTC),
	}
	newer := &entity.DiaryEntry{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Date(2025, time.March, 15, 18, 0, 0, 0, time.UTC),
	}

	// The repository orders by created_at ascending.
	fixtures.entryRepo.EXPECT().
		FindEntriesInRange(ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*entity.DiaryEntry{oldest, newer}, nil)

	resolution, err := svc.ResolveForDate(ctx, userID, ref)
	require.NoError(t, err)
	assert.Equal(t, usecase.DecisionEditExisting, resolution.Decision)
	assert.Equal(t, oldest.ID, resolution.Entry.ID)
}

func TestJournalService_ResolveForDate_LookupFailureIsAnError(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.entryRepo.EXPECT().
		FindEntriesInRange(ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, errors.New("connection reset"))

	resolution, err := svc.ResolveForDate(ctx, userID, time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryLookupFailed))
	// A failed lookup must never come back as a "create" decision.
	assert.Nil(t, resolution)
}

func TestJournalService_CreateEntry_SanitizesContent(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateEntryInput{
		Title:   "March 15",
		Content: `<p>hello</p><script>alert(1)</script>`,
	}

	fixtures.sanitizer.EXPECT().
		Sanitize(input.Content).
		Return("<p>hello</p>")

	fixtures.entryRepo.EXPECT().
		CreateEntry(ctx, mock.MatchedBy(func(entry *entity.DiaryEntry) bool {
			return entry.UserID == userID &&
				entry.Title == "March 15" &&
				entry.Content == "<p>hello</p>"
		})).
		Return(nil)

	entry, err := svc.CreateEntry(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", entry.Content)
	assert.NotEqual(t, uuid.Nil, entry.ID)
}

func TestJournalService_CreateEntry_RepositoryFailure(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.sanitizer.EXPECT().
		Sanitize("content").
		Return("content")

	fixtures.entryRepo.EXPECT().
		CreateEntry(ctx, mock.AnythingOfType("*entity.DiaryEntry")).
		Return(errors.New("insert failed"))

	entry, err := svc.CreateEntry(ctx, userID, &usecase.CreateEntryInput{Title: "t", Content: "content"})
	require.Error(t, err)
	assert.Nil(t, entry)
}

func TestJournalService_GetEntry_Success(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	fixtures.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(&entity.DiaryEntry{ID: entryID, UserID: userID}, nil)

	entry, err := svc.GetEntry(ctx, userID, entryID)
	require.NoError(t, err)
	assert.Equal(t, entryID, entry.ID)
}

func TestJournalService_GetEntry_NotFound(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	entryID := uuid.New()

	fixtures.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(nil, repository.ErrEntryNotFound)

	entry, err := svc.GetEntry(ctx, uuid.New(), entryID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
	assert.Nil(t, entry)
}

func TestJournalService_GetEntry_OwnershipViolation(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	entryID := uuid.New()

	fixtures.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(&entity.DiaryEntry{ID: entryID, UserID: uuid.New()}, nil)

	entry, err := svc.GetEntry(ctx, uuid.New(), entryID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryOwnershipViolation))
	assert.Nil(t, entry)
}

func TestJournalService_UpdateEntry_Success(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	fixtures.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(&entity.DiaryEntry{
			ID:      entryID,
			UserID:  userID,
			Title:   "old title",
			Content: "old content",
		}, nil)

	fixtures.sanitizer.EXPECT().
		Sanitize("new content").
		Return("new content")

	fixtures.entryRepo.EXPECT().
		UpdateEntry(ctx, mock.MatchedBy(func(entry *entity.DiaryEntry) bool {
			return entry.ID == entryID &&
				entry.Title == "new title" &&
				entry.Content == "new content"
		})).
		Return(nil)

	entry, err := svc.UpdateEntry(ctx, userID, entryID, &usecase.UpdateEntryInput{
		Title:   "new title",
		Content: "new content",
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", entry.Title)
}

func TestJournalService_UpdateEntry_OwnershipViolation(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	entryID := uuid.New()

	fixtures.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(&entity.DiaryEntry{ID: entryID, UserID: uuid.New()}, nil)

	entry, err := svc.UpdateEntry(ctx, uuid.New(), entryID, &usecase.UpdateEntryInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryOwnershipViolation))
	assert.Nil(t, entry)
}

func TestJournalService_DeleteEntry_Success(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()
	entryID := uuid.New()

	fixtures.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(&entity.DiaryEntry{ID: entryID, UserID: userID}, nil)

	fixtures.entryRepo.EXPECT().
		DeleteEntry(ctx, entryID).
		Return(nil)

	err := svc.DeleteEntry(ctx, userID, entryID)
	require.NoError(t, err)
}

func TestJournalService_DeleteEntry_NotFound(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	entryID := uuid.New()

	fixtures.entryRepo.EXPECT().
		FindEntryByID(ctx, entryID).
		Return(nil, repository.ErrEntryNotFound)

	err := svc.DeleteEntry(ctx, uuid.New(), entryID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEntryNotFound))
}

func TestJournalService_ListEntries(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.entryRepo.EXPECT().
		FindEntriesByUser(ctx, userID, 20, 0).
		Return([]*entity.DiaryEntry{{ID: uuid.New(), UserID: userID}}, nil)

	entries, err := svc.ListEntries(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestJournalService_AttachImage_Success(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	userID := uuid.New()
	data := []byte{0xff, 0xd8, 0xff}

	fixtures.images.EXPECT().
		Put(ctx, data, "image/jpeg").
		Return("https://cdn.example.com/images/abc123.jpg", nil)

	url, err := svc.AttachImage(ctx, userID, data, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/abc123.jpg", url)
}

func TestJournalService_AttachImage_EmptyPayload(t *testing.T) {
	svc, _ := createTestJournalService(t)

	url, err := svc.AttachImage(context.Background(), uuid.New(), nil, "image/jpeg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Empty(t, url)
}

func TestJournalService_AttachImage_StoreFailure(t *testing.T) {
	svc, fixtures := createTestJournalService(t)

	ctx := context.Background()
	data := []byte{0x89, 0x50, 0x4e, 0x47}

	fixtures.images.EXPECT().
		Put(ctx, data, "image/png").
		Return("", errors.New("bucket unavailable"))

	url, err := svc.AttachImage(ctx, uuid.New(), data, "image/png")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageUploadFailed))
	assert.Empty(t, url)
}
