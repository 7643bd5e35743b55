// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"diary/internal/domain/entity"
	domainerrors "diary/internal/domain/errors"
	"diary/internal/domain/repository"
	"diary/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindByUser retrieves the subscription record for a user.
func (repo *subscriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.SubscriptionRecord, error) {
	var recordM model.SubscriptionRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription record by user")
	}

	return toSubscriptionDomain(&recordM), nil
}

// Upsert creates the user's subscription record or updates it in place,
// keyed on the unique user_id index.
func (repo *subscriptionRepository) Upsert(ctx context.Context, record *entity.SubscriptionRecord) error {
	recordM := fromSubscriptionDomain(record)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "start_date", "end_date", "updated_at"}),
		}).
		Create(recordM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// toSubscriptionDomain converts the persistence model to a pure domain entity.
func toSubscriptionDomain(data *model.SubscriptionRecordModel) *entity.SubscriptionRecord {
	return &entity.SubscriptionRecord{
		ID:        data.ID,
		UserID:    data.UserID,
		Status:    entity.SubscriptionStatus(data.Status),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain entity to the persistence model.
func fromSubscriptionDomain(data *entity.SubscriptionRecord) *model.SubscriptionRecordModel {
	return &model.SubscriptionRecordModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Status:    data.Status.String(),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
