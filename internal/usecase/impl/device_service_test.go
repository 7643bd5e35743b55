package impl

import (
	"context"
	"testing"

	"diary/internal/domain/entity"
	domainerrors "diary/internal/domain/errors"
	"diary/internal/domain/repository"
	mockRepo "diary/internal/mocks/repository"
	"diary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	svc := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     newDiscardLogger(),
	})

	return svc, deviceRepo
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterDeviceInput{
		DeviceID: "device-123",
		FCMToken: "fcm-token-abc",
		Platform: "android",
	}

	deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	deviceRepo.EXPECT().
		CreateDevice(ctx, mock.MatchedBy(func(device *entity.UserDevice) bool {
			return device.UserID == userID &&
				device.DeviceID == "device-123" &&
				device.FCMToken == "fcm-token-abc" &&
				device.IsActive
		})).
		Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, "device-123", device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingDeviceRefreshesToken(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingID := uuid.New()
	input := &usecase.RegisterDeviceInput{
		DeviceID: "device-123",
		FCMToken: "fresh-fcm-token",
		Platform: "android",
	}

	existing := &entity.UserDevice{
		ID:       existingID,
		UserID:   userID,
		DeviceID: "device-123",
		FCMToken: "stale-fcm-token",
		Platform: "android",
		IsActive: true,
	}

	deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)

	deviceRepo.EXPECT().
		UpdateFCMToken(ctx, existingID, "fresh-fcm-token").
		Return(nil)

	refreshed := &entity.UserDevice{
		ID:       existingID,
		UserID:   userID,
		DeviceID: "device-123",
		FCMToken: "fresh-fcm-token",
		Platform: "android",
		IsActive: true,
	}

	deviceRepo.EXPECT().
		FindDeviceByID(ctx, existingID).
		Return(refreshed, nil)

	device, err := svc.RegisterDevice(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, existingID, device.ID)
	assert.Equal(t, "fresh-fcm-token", device.FCMToken)
}

func TestDeviceService_ListDevices(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, IsActive: true},
			{ID: uuid.New(), UserID: userID, IsActive: true},
		}, nil)

	devices, err := svc.ListDevices(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, devices, 2)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)

	deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	err := svc.RemoveDevice(ctx, userID, deviceID)
	require.NoError(t, err)
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := svc.RemoveDevice(ctx, uuid.New(), deviceID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestDeviceService_RemoveDevice_OtherUsersDevice(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := svc.RemoveDevice(ctx, uuid.New(), deviceID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
