package billing

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"diary/internal/domain/entity"
	mockRepo "diary/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier reports a fixed outcome per transaction ID.
type stubVerifier struct {
	valid map[string]bool
	err   error
}

func (s *stubVerifier) verify(_ context.Context, receipt *entity.PurchaseReceipt) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	return s.valid[receipt.TransactionID], nil
}

func newTestGateway(t *testing.T, verifier receiptVerifier) (*storeBillingGateway, *mockRepo.MockReceiptRepository) {
	t.Helper()

	receiptRepo := mockRepo.NewMockReceiptRepository(t)

	return &storeBillingGateway{
		receiptRepo: receiptRepo,
		verifier:    verifier,
		productID:   "diary.premium.monthly",
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, receiptRepo
}

func storedReceipt(userID uuid.UUID, transactionID string) *entity.PurchaseReceipt {
	return &entity.PurchaseReceipt{
		ID:            uuid.New(),
		UserID:        userID,
		ProductID:     "diary.premium.monthly",
		TransactionID: transactionID,
		Platform:      "android",
		Payload:       "token-" + transactionID,
		PurchasedAt:   time.Now().Add(-time.Hour),
	}
}

func TestStoreBillingGateway_TrustsStoredReceiptsWithoutVerifier(t *testing.T) {
	gateway, receiptRepo := newTestGateway(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	receipts := []*entity.PurchaseReceipt{storedReceipt(userID, "txn-1"), storedReceipt(userID, "txn-2")}
	receiptRepo.EXPECT().FindReceiptsByUser(ctx, userID).Return(receipts, nil).Once()

	got, err := gateway.AvailablePurchases(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, receipts, got)
}

func TestStoreBillingGateway_FiltersReceiptsRejectedByStore(t *testing.T) {
	verifier := &stubVerifier{valid: map[string]bool{"txn-active": true, "txn-expired": false}}
	gateway, receiptRepo := newTestGateway(t, verifier)
	ctx := context.Background()
	userID := uuid.New()

	receipts := []*entity.PurchaseReceipt{storedReceipt(userID, "txn-active"), storedReceipt(userID, "txn-expired")}
	receiptRepo.EXPECT().FindReceiptsByUser(ctx, userID).Return(receipts, nil).Once()

	got, err := gateway.AvailablePurchases(ctx, userID)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "txn-active", got[0].TransactionID)
}

func TestStoreBillingGateway_RepositoryFailureMeansUnknown(t *testing.T) {
	gateway, receiptRepo := newTestGateway(t, nil)
	ctx := context.Background()
	userID := uuid.New()

	receiptRepo.EXPECT().FindReceiptsByUser(ctx, userID).Return(nil, errors.New("connection refused")).Once()

	got, err := gateway.AvailablePurchases(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestStoreBillingGateway_VerificationFailureMeansUnknown(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("play api unavailable")}
	gateway, receiptRepo := newTestGateway(t, verifier)
	ctx := context.Background()
	userID := uuid.New()

	receipts := []*entity.PurchaseReceipt{storedReceipt(userID, "txn-1")}
	receiptRepo.EXPECT().FindReceiptsByUser(ctx, userID).Return(receipts, nil).Once()

	got, err := gateway.AvailablePurchases(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestStoreBillingGateway_SubscriptionProductID(t *testing.T) {
	gateway, _ := newTestGateway(t, nil)

	assert.Equal(t, "diary.premium.monthly", gateway.SubscriptionProductID())
}
