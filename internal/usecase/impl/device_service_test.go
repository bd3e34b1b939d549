package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/domain/service"
	mockRepo "tablenow/internal/mocks/repository"
	mockSvc "tablenow/internal/mocks/service"
	"tablenow/internal/usecase"
)

type deviceServiceFixtures struct {
	service      usecase.DeviceUsecase
	txManager    *mockRepo.MockTransactionManager
	notification *mockSvc.MockNotificationService
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	notification := mockSvc.NewMockNotificationService(t)

	service := NewDeviceService(DeviceServiceParams{
		TxManager:    txManager,
		Notification: notification,
		Logger:       newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:      service,
		txManager:    txManager,
		notification: notification,
	}
}

// createTestDeviceServiceWithoutPush builds the service without a push
// provider, matching a deployment with no Firebase credentials.
func createTestDeviceServiceWithoutPush(t *testing.T) deviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	var noPush service.NotificationService

	svc := NewDeviceService(DeviceServiceParams{
		TxManager:    txManager,
		Notification: noPush,
		Logger:       newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:   svc,
		txManager: txManager,
	}
}

func (f deviceServiceFixtures) expectTransaction(ctx context.Context, factory repository.RepositoryFactory) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func activeDevice(customerID uuid.UUID, token string) *entity.CustomerDevice {
	return &entity.CustomerDevice{
		ID:         uuid.New(),
		CustomerID: customerID,
		FCMToken:   token,
		Platform:   "android",
		IsActive:   true,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()

	customer := localCustomer("diner@example.com")

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	f.expectTransaction(ctx, factory)

	customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	deviceRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(device *entity.CustomerDevice) bool {
			return device.CustomerID == customer.ID &&
				device.FCMToken == "fcm-token-1" &&
				device.Platform == "android" &&
				device.IsActive
		})).
		Return(nil)

	device, err := f.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		CustomerID: customer.ID,
		FCMToken:   "fcm-token-1",
		Platform:   "android",
	})
	require.NoError(t, err)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_CustomerNotFound(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	f.expectTransaction(ctx, factory)

	unknownID := uuid.New()
	customerRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrCustomerNotFound)

	device, err := f.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
		CustomerID: unknownID,
		FCMToken:   "fcm-token-1",
		Platform:   "ios",
	})
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestDeviceService_ListDevices_Success(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()

	customerID := uuid.New()
	expected := []*entity.CustomerDevice{activeDevice(customerID, "fcm-token-1")}

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	f.expectTransaction(ctx, factory)

	deviceRepo.EXPECT().FindActiveByCustomerID(ctx, customerID).Return(expected, nil)

	devices, err := f.service.ListDevices(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_SendToCustomer_Success(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()

	customerID := uuid.New()
	devices := []*entity.CustomerDevice{
		activeDevice(customerID, "fcm-token-1"),
		activeDevice(customerID, "fcm-token-2"),
	}

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	f.expectTransaction(ctx, factory)

	deviceRepo.EXPECT().FindActiveByCustomerID(ctx, customerID).Return(devices, nil)
	f.notification.EXPECT().
		SendBatchNotification(ctx, []string{"fcm-token-1", "fcm-token-2"},
			"Table ready", "Your table is ready", map[string]string{"table": "A-3"}).
		Return(2, 0, nil, nil)

	out, err := f.service.SendToCustomer(ctx, &usecase.SendPushInput{
		CustomerID: customerID,
		Title:      "Table ready",
		Body:       "Your table is ready",
		Data:       map[string]string{"table": "A-3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.SuccessCount)
	assert.Equal(t, 0, out.FailureCount)
	assert.Empty(t, out.Deactivated)
}

func TestDeviceService_SendToCustomer_DeactivatesInvalidTokens(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()

	customerID := uuid.New()
	devices := []*entity.CustomerDevice{
		activeDevice(customerID, "fcm-token-live"),
		activeDevice(customerID, "fcm-token-stale"),
	}

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	// One expectation serves both the token load and the cleanup transaction.
	f.expectTransaction(ctx, factory)

	deviceRepo.EXPECT().FindActiveByCustomerID(ctx, customerID).Return(devices, nil)
	f.notification.EXPECT().
		SendBatchNotification(ctx, []string{"fcm-token-live", "fcm-token-stale"},
			"Title", "Body", mock.Anything).
		Return(1, 1, []string{"fcm-token-stale"}, nil)
	deviceRepo.EXPECT().DeactivateByTokens(ctx, []string{"fcm-token-stale"}).Return(nil)

	out, err := f.service.SendToCustomer(ctx, &usecase.SendPushInput{
		CustomerID: customerID,
		Title:      "Title",
		Body:       "Body",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.SuccessCount)
	assert.Equal(t, 1, out.FailureCount)
	assert.Equal(t, []string{"fcm-token-stale"}, out.Deactivated)
}

func TestDeviceService_SendToCustomer_NoActiveDevices(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()

	customerID := uuid.New()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	f.expectTransaction(ctx, factory)

	deviceRepo.EXPECT().FindActiveByCustomerID(ctx, customerID).Return(nil, nil)

	out, err := f.service.SendToCustomer(ctx, &usecase.SendPushInput{
		CustomerID: customerID,
		Title:      "Title",
		Body:       "Body",
	})
	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
}

func TestDeviceService_SendToCustomer_PushProviderNotConfigured(t *testing.T) {
	f := createTestDeviceServiceWithoutPush(t)
	ctx := context.Background()

	customerID := uuid.New()
	devices := []*entity.CustomerDevice{activeDevice(customerID, "fcm-token-1")}

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	f.expectTransaction(ctx, factory)

	deviceRepo.EXPECT().FindActiveByCustomerID(ctx, customerID).Return(devices, nil)

	out, err := f.service.SendToCustomer(ctx, &usecase.SendPushInput{
		CustomerID: customerID,
		Title:      "Title",
		Body:       "Body",
	})
	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
}

func TestDeviceService_SendToCustomer_DispatchFailure(t *testing.T) {
	f := createTestDeviceService(t)
	ctx := context.Background()

	customerID := uuid.New()
	devices := []*entity.CustomerDevice{activeDevice(customerID, "fcm-token-1")}

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	f.expectTransaction(ctx, factory)

	deviceRepo.EXPECT().FindActiveByCustomerID(ctx, customerID).Return(devices, nil)
	f.notification.EXPECT().
		SendBatchNotification(ctx, []string{"fcm-token-1"}, "Title", "Body", mock.Anything).
		Return(0, 0, nil, errors.New("firebase unavailable"))

	out, err := f.service.SendToCustomer(ctx, &usecase.SendPushInput{
		CustomerID: customerID,
		Title:      "Title",
		Body:       "Body",
	})
	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
}
