package impl

import (
	"context"
	"testing"
	"time"

	"diary/config"
	"diary/internal/domain/entity"
	domainerrors "diary/internal/domain/errors"
	"diary/internal/domain/repository"
	"diary/internal/domain/service"
	mockRepo "diary/internal/mocks/repository"
	mockSvc "diary/internal/mocks/service"
	"diary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testProductID = "diary.premium.monthly"

type entitlementFixtures struct {
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	receiptRepo      *mockRepo.MockReceiptRepository
	billing          *mockSvc.MockBillingGateway
	cache            *mockSvc.MockEntitlementCache
	publisher        *mockSvc.MockEventPublisher
}

func createTestEntitlementService(t *testing.T, receiptTimeout time.Duration, withPublisher bool) (usecase.EntitlementUsecase, *entitlementFixtures) {
	t.Helper()

	fixtures := &entitlementFixtures{
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		receiptRepo:      mockRepo.NewMockReceiptRepository(t),
		billing:          mockSvc.NewMockBillingGateway(t),
		cache:            mockSvc.NewMockEntitlementCache(t),
	}

	params := EntitlementServiceParams{
		SubscriptionRepo: fixtures.subscriptionRepo,
		ReceiptRepo:      fixtures.receiptRepo,
		Billing:          fixtures.billing,
		Cache:            fixtures.cache,
		Config: &config.Config{
			Billing: &config.BillingConfig{
				ProductID:      testProductID,
				ReceiptTimeout: receiptTimeout,
			},
		},
		Logger: newDiscardLogger(),
	}

	if withPublisher {
		fixtures.publisher = mockSvc.NewMockEventPublisher(t)
		params.Publisher = fixtures.publisher
	}

	return NewEntitlementService(params), fixtures
}

func subscriptionReceipt(userID uuid.UUID) *entity.PurchaseReceipt {
	return &entity.PurchaseReceipt{
		ID:            uuid.New(),
		UserID:        userID,
		ProductID:     testProductID,
		TransactionID: "GPA.1234-5678-9012-34567",
		Platform:      "android",
		PurchasedAt:   time.Now().Add(-time.Hour),
	}
}

func TestEntitlementService_Resolve_NilUser(t *testing.T) {
	svc, _ := createTestEntitlementService(t, time.Second, false)

	verdict := svc.Resolve(context.Background(), uuid.Nil)
	assert.Equal(t, entity.VerdictNotSubscribed, verdict)
}

func TestEntitlementService_Resolve_BillingTimeout_ActiveRecord(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, 50*time.Millisecond, false)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.SubscriptionRecord{
			UserID:    userID,
			Status:    entity.SubscriptionStatusActive,
			StartDate: &now,
		}, nil)

	// The gateway hangs past the deadline; the resolver must not wait for it.
	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		RunAndReturn(func(queryCtx context.Context, _ uuid.UUID) ([]*entity.PurchaseReceipt, error) {
			<-queryCtx.Done()

			return nil, queryCtx.Err()
		})

	start := time.Now()
	verdict := svc.Resolve(ctx, userID)

	assert.Equal(t, entity.VerdictSubscribed, verdict)
	assert.Less(t, time.Since(start), time.Second)
	// No cache.Set expectation: a record-only verdict is never cached.
}

func TestEntitlementService_Resolve_BillingError_ActiveRecord(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.SubscriptionRecord{
			UserID: userID,
			Status: entity.SubscriptionStatusActive,
		}, nil)

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return(nil, errors.New("store unreachable"))

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_Resolve_BillingError_TrialRecord(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.SubscriptionRecord{
			UserID: userID,
			Status: entity.SubscriptionStatusTrial,
		}, nil)

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return(nil, errors.New("store unreachable"))

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_Resolve_BillingError_NoRecord(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return(nil, errors.New("store unreachable"))

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictNotSubscribed, verdict)
}

func TestEntitlementService_Resolve_ReceiptActivatesMissingRecord(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return([]*entity.PurchaseReceipt{subscriptionReceipt(userID)}, nil)

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	fixtures.subscriptionRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(record *entity.SubscriptionRecord) bool {
			return record.UserID == userID && record.Status == entity.SubscriptionStatusActive
		})).
		Return(nil)

	fixtures.cache.EXPECT().
		Set(ctx, userID, true).
		Return(nil)

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_Resolve_ReceiptActivatesInactiveRecord(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, true)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.SubscriptionRecord{
			UserID: userID,
			Status: entity.SubscriptionStatusInactive,
		}, nil)

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return([]*entity.PurchaseReceipt{subscriptionReceipt(userID)}, nil)

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	fixtures.subscriptionRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(record *entity.SubscriptionRecord) bool {
			return record.UserID == userID &&
				record.Status == entity.SubscriptionStatusActive &&
				record.StartDate != nil
		})).
		Return(nil)

	fixtures.publisher.EXPECT().
		PublishEntitlementEvent(ctx, mock.MatchedBy(func(event *service.EntitlementEvent) bool {
			return event.UserID == userID.String() &&
				event.Verdict == string(entity.VerdictSubscribed) &&
				event.Source == "reconciliation"
		})).
		Return(nil)

	fixtures.cache.EXPECT().
		Set(ctx, userID, true).
		Return(nil)

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_Resolve_ReceiptUpgradesTrialRecord(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, true)

	ctx := context.Background()
	userID := uuid.New()

	// A trial user who bought the subscription: the purchase supersedes the
	// trial, so the record must be upgraded to active and the activation
	// event published.
	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.SubscriptionRecord{
			UserID: userID,
			Status: entity.SubscriptionStatusTrial,
		}, nil)

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return([]*entity.PurchaseReceipt{subscriptionReceipt(userID)}, nil)

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	fixtures.subscriptionRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(record *entity.SubscriptionRecord) bool {
			return record.UserID == userID &&
				record.Status == entity.SubscriptionStatusActive &&
				record.StartDate != nil
		})).
		Return(nil)

	fixtures.publisher.EXPECT().
		PublishEntitlementEvent(ctx, mock.MatchedBy(func(event *service.EntitlementEvent) bool {
			return event.UserID == userID.String() &&
				event.Verdict == string(entity.VerdictSubscribed) &&
				event.Source == "reconciliation"
		})).
		Return(nil)

	fixtures.cache.EXPECT().
		Set(ctx, userID, true).
		Return(nil)

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_Resolve_NoReceiptDeactivatesActiveRecord(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, true)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.SubscriptionRecord{
			UserID: userID,
			Status: entity.SubscriptionStatusActive,
		}, nil)

	// A definite empty answer from the store, not a failure.
	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return([]*entity.PurchaseReceipt{}, nil)

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	fixtures.subscriptionRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(record *entity.SubscriptionRecord) bool {
			return record.UserID == userID &&
				record.Status == entity.SubscriptionStatusInactive &&
				record.EndDate != nil
		})).
		Return(nil)

	fixtures.publisher.EXPECT().
		PublishEntitlementEvent(ctx, mock.MatchedBy(func(event *service.EntitlementEvent) bool {
			return event.Verdict == string(entity.VerdictNotSubscribed) &&
				event.Source == "reconciliation"
		})).
		Return(nil)

	fixtures.cache.EXPECT().
		Set(ctx, userID, false).
		Return(nil)

	// The record as fetched still said active, so this pass grants access;
	// the downgrade written above takes effect on the next resolve.
	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_Resolve_NoReceiptLeavesTrialAlone(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.SubscriptionRecord{
			UserID: userID,
			Status: entity.SubscriptionStatusTrial,
		}, nil)

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return(nil, nil)

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	// No Upsert expectation: trials are granted by the backend, the absence
	// of a store receipt must not revoke one. The cache still records the
	// receipt answer, so an offline fallback won't extend the trial.
	fixtures.cache.EXPECT().
		Set(ctx, userID, false).
		Return(nil)

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_Resolve_ReceiptForOtherProductIgnored(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	other := subscriptionReceipt(userID)
	other.ProductID = "diary.stickers.pack1"

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return([]*entity.PurchaseReceipt{other}, nil)

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	fixtures.cache.EXPECT().
		Set(ctx, userID, false).
		Return(nil)

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictNotSubscribed, verdict)
}

func TestEntitlementService_Resolve_BothSourcesDown_CacheHit(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, errors.New("connection refused"))

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return(nil, errors.New("store unreachable"))

	fixtures.cache.EXPECT().
		Get(ctx, userID).
		Return(true, true, nil)

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_Resolve_BothSourcesDown_CacheMiss(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, errors.New("connection refused"))

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return(nil, errors.New("store unreachable"))

	fixtures.cache.EXPECT().
		Get(ctx, userID).
		Return(false, false, nil)

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictPending, verdict)
}

func TestEntitlementService_Resolve_BothSourcesDown_CacheError(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, errors.New("connection refused"))

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return(nil, errors.New("store unreachable"))

	fixtures.cache.EXPECT().
		Get(ctx, userID).
		Return(false, false, errors.New("corrupt cache file"))

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictPending, verdict)
}

func TestEntitlementService_Resolve_CacheWriteFailureIsNonFatal(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.subscriptionRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrSubscriptionNotFound)

	fixtures.billing.EXPECT().
		AvailablePurchases(mock.Anything, userID).
		Return([]*entity.PurchaseReceipt{subscriptionReceipt(userID)}, nil)

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	fixtures.subscriptionRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.SubscriptionRecord")).
		Return(nil)

	fixtures.cache.EXPECT().
		Set(ctx, userID, true).
		Return(errors.New("disk full"))

	verdict := svc.Resolve(ctx, userID)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_RegisterPurchase_Success(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, true)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ReportReceiptInput{
		ProductID:     testProductID,
		TransactionID: "GPA.1234-5678-9012-34567",
		Platform:      "android",
		Payload:       "opaque-store-token",
		PurchasedAt:   time.Now().Add(-time.Minute),
	}

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	fixtures.receiptRepo.EXPECT().
		SaveReceipt(ctx, mock.MatchedBy(func(receipt *entity.PurchaseReceipt) bool {
			return receipt.UserID == userID &&
				receipt.TransactionID == input.TransactionID &&
				receipt.ProductID == testProductID
		})).
		Return(nil)

	fixtures.subscriptionRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(record *entity.SubscriptionRecord) bool {
			return record.UserID == userID && record.Status == entity.SubscriptionStatusActive
		})).
		Return(nil)

	fixtures.cache.EXPECT().
		Set(ctx, userID, true).
		Return(nil)

	fixtures.publisher.EXPECT().
		PublishEntitlementEvent(ctx, mock.MatchedBy(func(event *service.EntitlementEvent) bool {
			return event.UserID == userID.String() &&
				event.Verdict == string(entity.VerdictSubscribed) &&
				event.Source == "receipt"
		})).
		Return(nil)

	verdict, err := svc.RegisterPurchase(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_RegisterPurchase_DuplicateReceipt(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ReportReceiptInput{
		ProductID:     testProductID,
		TransactionID: "GPA.1234-5678-9012-34567",
		Platform:      "android",
	}

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	fixtures.receiptRepo.EXPECT().
		SaveReceipt(ctx, mock.AnythingOfType("*entity.PurchaseReceipt")).
		Return(repository.ErrDuplicateReceipt)

	fixtures.subscriptionRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.SubscriptionRecord")).
		Return(nil)

	fixtures.cache.EXPECT().
		Set(ctx, userID, true).
		Return(nil)

	verdict, err := svc.RegisterPurchase(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.VerdictSubscribed, verdict)
}

func TestEntitlementService_RegisterPurchase_UnknownProduct(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ReportReceiptInput{
		ProductID:     "someone.elses.product",
		TransactionID: "GPA.1234-5678-9012-34567",
	}

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	verdict, err := svc.RegisterPurchase(ctx, userID, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReceiptInvalid))
	assert.Equal(t, entity.VerdictNotSubscribed, verdict)
}

func TestEntitlementService_RegisterPurchase_MissingTransactionID(t *testing.T) {
	svc, _ := createTestEntitlementService(t, time.Second, false)

	verdict, err := svc.RegisterPurchase(context.Background(), uuid.New(), &usecase.ReportReceiptInput{
		ProductID: testProductID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrReceiptInvalid))
	assert.Equal(t, entity.VerdictNotSubscribed, verdict)
}

func TestEntitlementService_RegisterPurchase_NilUser(t *testing.T) {
	svc, _ := createTestEntitlementService(t, time.Second, false)

	verdict, err := svc.RegisterPurchase(context.Background(), uuid.Nil, &usecase.ReportReceiptInput{
		ProductID:     testProductID,
		TransactionID: "GPA.1234-5678-9012-34567",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, entity.VerdictNotSubscribed, verdict)
}

func TestEntitlementService_RegisterPurchase_SaveFailure(t *testing.T) {
	svc, fixtures := createTestEntitlementService(t, time.Second, false)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ReportReceiptInput{
		ProductID:     testProductID,
		TransactionID: "GPA.1234-5678-9012-34567",
	}

	fixtures.billing.EXPECT().
		SubscriptionProductID().
		Return(testProductID)

	fixtures.receiptRepo.EXPECT().
		SaveReceipt(ctx, mock.AnythingOfType("*entity.PurchaseReceipt")).
		Return(errors.New("insert failed"))

	verdict, err := svc.RegisterPurchase(ctx, userID, input)
	require.Error(t, err)
	assert.Equal(t, entity.VerdictNotSubscribed, verdict)
}
