package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"diary/internal/domain/entity"
	"diary/internal/domain/service"
	mockRepo "diary/internal/mocks/repository"
	mockService "diary/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	notificationSvc *mockService.MockNotificationService
	deviceRepo      *mockRepo.MockDeviceRepository
}

func createTestPushHandler(t *testing.T) (*PushHandler, *pushHandlerFixtures) {
	t.Helper()

	fixtures := &pushHandlerFixtures{
		notificationSvc: mockService.NewMockNotificationService(t),
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
	}

	h := &PushHandler{
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationSvc: fixtures.notificationSvc,
		deviceRepo:      fixtures.deviceRepo,
	}

	return h, fixtures
}

func activeDevice(userID uuid.UUID, token string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: token,
		Platform: "android",
		IsActive: true,
	}
}

func subscribedEvent(userID uuid.UUID) *service.EntitlementEvent {
	return &service.EntitlementEvent{
		UserID:    userID.String(),
		Verdict:   entity.VerdictSubscribed.String(),
		ProductID: "diary.premium.monthly",
		Source:    "receipt",
	}
}

func TestProcessEntitlementEvent_SendsPushToActiveDevices(t *testing.T) {
	h, fixtures := createTestPushHandler(t)
	ctx := context.Background()
	userID := uuid.New()

	devices := []*entity.UserDevice{
		activeDevice(userID, "token-1"),
		activeDevice(userID, "token-2"),
	}
	fixtures.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil).Once()
	fixtures.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1", "token-2"}, "Subscription active", "Your premium subscription is now active.", map[string]string{
			"type":       "entitlement_changed",
			"verdict":    "subscribed",
			"product_id": "diary.premium.monthly",
			"source":     "receipt",
		}).
		Return(2, 0, nil, nil).
		Once()

	err := h.processEntitlementEvent(ctx, subscribedEvent(userID))

	require.NoError(t, err)
}

func TestProcessEntitlementEvent_NoActiveDevicesIsANoop(t *testing.T) {
	h, fixtures := createTestPushHandler(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, nil).Once()

	err := h.processEntitlementEvent(ctx, subscribedEvent(userID))

	require.NoError(t, err)
}

func TestProcessEntitlementEvent_DeviceLookupFailureIsRetryable(t *testing.T) {
	h, fixtures := createTestPushHandler(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, errors.New("connection refused")).
		Once()

	err := h.processEntitlementEvent(ctx, subscribedEvent(userID))

	require.Error(t, err)
	assert.True(t, isRetryableError(err))
}

func TestProcessEntitlementEvent_MalformedUserIDIsNotRetryable(t *testing.T) {
	h, _ := createTestPushHandler(t)

	event := &service.EntitlementEvent{
		UserID:  "not-a-uuid",
		Verdict: entity.VerdictNotSubscribed.String(),
	}

	err := h.processEntitlementEvent(context.Background(), event)

	require.Error(t, err)
	assert.False(t, isRetryableError(err))
}

func TestProcessEntitlementEvent_CleansUpInvalidTokens(t *testing.T) {
	h, fixtures := createTestPushHandler(t)
	ctx := context.Background()
	userID := uuid.New()

	stale := activeDevice(userID, "stale-token")
	fresh := activeDevice(userID, "fresh-token")
	fixtures.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{stale, fresh}, nil).
		Once()
	fixtures.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"stale-token", "fresh-token"}, "Subscription ended", "Your premium subscription is no longer active.", map[string]string{
			"type":       "entitlement_changed",
			"verdict":    "not_subscribed",
			"product_id": "diary.premium.monthly",
			"source":     "reconciliation",
		}).
		Return(1, 1, []string{"stale-token"}, nil).
		Once()
	fixtures.deviceRepo.EXPECT().DeleteDevice(ctx, stale.ID).Return(nil).Once()

	event := &service.EntitlementEvent{
		UserID:    userID.String(),
		Verdict:   entity.VerdictNotSubscribed.String(),
		ProductID: "diary.premium.monthly",
		Source:    "reconciliation",
	}

	err := h.processEntitlementEvent(ctx, event)

	require.NoError(t, err)
}

func TestProcessEntitlementEvent_SendFailureIsRetryable(t *testing.T) {
	h, fixtures := createTestPushHandler(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{activeDevice(userID, "token-1")}, nil).
		Once()
	fixtures.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "Subscription active", "Your premium subscription is now active.", map[string]string{
			"type":       "entitlement_changed",
			"verdict":    "subscribed",
			"product_id": "diary.premium.monthly",
			"source":     "receipt",
		}).
		Return(0, 0, nil, errors.New("fcm unavailable")).
		Once()

	err := h.processEntitlementEvent(ctx, subscribedEvent(userID))

	require.Error(t, err)
	assert.True(t, isRetryableError(err))
}
