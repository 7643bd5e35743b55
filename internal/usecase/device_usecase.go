package usecase

import (
	"context"

	"github.com/google/uuid"

	"diary/internal/domain/entity"
)

// RegisterDeviceInput defines the data to register a device for push delivery.
type RegisterDeviceInput struct {
	DeviceID string
	FCMToken string
	Platform string
}

// DeviceUsecase manages the devices a user receives push notifications on.
type DeviceUsecase interface {
	// RegisterDevice records a device, or refreshes its FCM token when the
	// device is already known.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)

	// ListDevices returns the user's registered devices.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RemoveDevice unregisters a device.
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
