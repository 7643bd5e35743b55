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
)

// receiptRepository implements the repository.ReceiptRepository interface using GORM.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository is the constructor for receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{
		db: db,
	}
}

// SaveReceipt persists a reported receipt. The unique index on transaction_id
// turns a replayed client report into ErrDuplicateReceipt.
func (repo *receiptRepository) SaveReceipt(ctx context.Context, receipt *entity.PurchaseReceipt) error {
	receiptM := fromReceiptDomain(receipt)

	if err := repo.db.WithContext(ctx).Create(receiptM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReceipt
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save purchase receipt")
	}

	receipt.ID = receiptM.ID
	receipt.CreatedAt = receiptM.CreatedAt

	return nil
}

// FindReceiptsByUser retrieves all stored receipts for a user, newest first.
func (repo *receiptRepository) FindReceiptsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PurchaseReceipt, error) {
	var receiptModels []*model.PurchaseReceiptModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchased_at DESC").
		Find(&receiptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchase receipts by user")
	}

	receipts := make([]*entity.PurchaseReceipt, 0, len(receiptModels))
	for _, receiptM := range receiptModels {
		receipts = append(receipts, toReceiptDomain(receiptM))
	}

	return receipts, nil
}

// toReceiptDomain converts the persistence model to a pure domain entity.
func toReceiptDomain(data *model.PurchaseReceiptModel) *entity.PurchaseReceipt {
	return &entity.PurchaseReceipt{
		ID:            data.ID,
		UserID:        data.UserID,
		ProductID:     data.ProductID,
		TransactionID: data.TransactionID,
		Platform:      data.Platform,
		Payload:       data.Payload,
		PurchasedAt:   data.PurchasedAt,
		CreatedAt:     data.CreatedAt,
	}
}

// fromReceiptDomain converts a domain entity to the persistence model.
func fromReceiptDomain(data *entity.PurchaseReceipt) *model.PurchaseReceiptModel {
	return &model.PurchaseReceiptModel{
		ID:            data.ID,
		UserID:        data.UserID,
		ProductID:     data.ProductID,
		TransactionID: data.TransactionID,
		Platform:      data.Platform,
		Payload:       data.Payload,
		PurchasedAt:   data.PurchasedAt,
		CreatedAt:     data.CreatedAt,
	}
}
