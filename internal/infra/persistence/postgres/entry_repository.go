// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"diary/internal/domain/entity"
	domainerrors "diary/internal/domain/errors"
	"diary/internal/domain/repository"
	"diary/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// entryRepository implements the repository.EntryRepository interface using GORM.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// CreateEntry persists a new diary entry.
func (repo *entryRepository) CreateEntry(ctx context.Context, entry *entity.DiaryEntry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create diary entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntryByID retrieves an entry by its unique ID.
func (repo *entryRepository) FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.DiaryEntry, error) {
	var entryM model.DiaryEntryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find diary entry by id")
	}

	return toEntryDomain(&entryM), nil
}

// FindEntriesInRange retrieves a user's entries with created_at in
// [start, end), oldest first. The inclusive/exclusive bounds keep midnight
// rows in exactly one day window.
func (repo *entryRepository) FindEntriesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DiaryEntry, error) {
	var entryModels []*model.DiaryEntryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find diary entries in range")
	}

	entries := make([]*entity.DiaryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toEntryDomain(entryM))
	}

	return entries, nil
}

// FindEntriesByUser retrieves a page of the user's entries, newest first.
func (repo *entryRepository) FindEntriesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DiaryEntry, error) {
	var entryModels []*model.DiaryEntryModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find diary entries by user")
	}

	entries := make([]*entity.DiaryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toEntryDomain(entryM))
	}

	return entries, nil
}

// UpdateEntry modifies an existing entry's title and content.
func (repo *entryRepository) UpdateEntry(ctx context.Context, entry *entity.DiaryEntry) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DiaryEntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"title":      entry.Title,
			"content":    entry.Content,
			"updated_at": entry.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update diary entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// DeleteEntry removes an entry by its ID.
func (repo *entryRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DiaryEntryModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete diary entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// DeleteEntriesByUser removes all entries belonging to a user.
func (repo *entryRepository) DeleteEntriesByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.DiaryEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete diary entries by user")
	}

	return nil
}

// toEntryDomain converts the persistence model to a pure domain entity.
func toEntryDomain(data *model.DiaryEntryModel) *entity.DiaryEntry {
	return &entity.DiaryEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromEntryDomain converts a domain entity to the persistence model.
func fromEntryDomain(data *entity.DiaryEntry) *model.DiaryEntryModel {
	return &model.DiaryEntryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
