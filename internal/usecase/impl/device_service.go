package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "diary/internal/delivery/context"
	"diary/internal/domain/entity"
	domainerrors "diary/internal/domain/errors"
	"diary/internal/domain/repository"
	"diary/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice records a device, or refreshes its FCM token when the device
// is already known.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID == input.DeviceID {
			if err := srv.deviceRepo.UpdateFCMToken(ctx, device.ID, input.FCMToken); err != nil {
				return nil, errors.Wrap(err, "failed to update FCM token")
			}

			updated, err := srv.deviceRepo.FindDeviceByID(ctx, device.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to find device by ID")
			}

			return updated, nil
		}
	}

	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  input.FCMToken,
		DeviceID:  input.DeviceID,
		Platform:  input.Platform,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	srv.log(ctx).Debug("Device registered", slog.Any("userID", userID), slog.String("deviceID", input.DeviceID))

	return device, nil
}

// ListDevices retrieves all active devices for a user.
func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// RemoveDevice unregisters a device after verifying ownership.
func (srv *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := srv.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "device belongs to another user")
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
