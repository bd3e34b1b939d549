package impl

import (
	"context"
	"log/slog"

	deliverycontext "tablenow/internal/delivery/context"
	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/domain/service"
	"tablenow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager    repository.TransactionManager
	notification service.NotificationService
	logger       *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Notification service.NotificationService
	Logger       *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:    params.TxManager,
		notification: params.Notification,
		logger:       params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice registers a device token or refreshes an existing one.
// Registration is idempotent on the (customer, token) pair.
func (srv *deviceService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.CustomerDevice, error) {
	srv.log(ctx).Info("Registering device",
		slog.String("customerID", input.CustomerID.String()), slog.String("platform", input.Platform))

	device := &entity.CustomerDevice{
		CustomerID: input.CustomerID,
		FCMToken:   input.FCMToken,
		Platform:   input.Platform,
		IsActive:   true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.CustomerRepo().FindByID(ctx, input.CustomerID); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound.WrapMessage("device registration failed")
			}

			return errors.Wrap(err, "failed to find customer by id")
		}

		return errors.WithStack(repoFactory.DeviceRepo().Upsert(ctx, device))
	})
	if err != nil {
		srv.log(ctx).Warn("Device registration failed",
			slog.String("customerID", input.CustomerID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute device registration transaction")
	}

	return device, nil
}

// ListDevices retrieves all active devices for a customer.
func (srv *deviceService) ListDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	var devices []*entity.CustomerDevice

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		devices, err = repoFactory.DeviceRepo().FindActiveByCustomerID(ctx, customerID)

		return errors.WithStack(err)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// SendToCustomer dispatches a push message to every active device of the
// customer. Tokens the provider reports invalid are deactivated so they are
// skipped next time.
func (srv *deviceService) SendToCustomer(ctx context.Context, input *usecase.SendPushInput) (*usecase.SendPushOutput, error) {
	srv.log(ctx).Info("Dispatching push message", slog.String("customerID", input.CustomerID.String()))

	var tokens []string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		devices, err := repoFactory.DeviceRepo().FindActiveByCustomerID(ctx, input.CustomerID)
		if err != nil {
			return errors.WithStack(err)
		}
		for _, d := range devices {
			tokens = append(tokens, d.FCMToken)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load device tokens")
	}
	if len(tokens) == 0 {
		return nil, domainerrors.ErrDeviceNotFound.WrapMessage("customer has no active devices")
	}

	// Firebase is optional; without it registration still works but
	// dispatch does not.
	if srv.notification == nil {
		return nil, domainerrors.ErrNotificationFailed.WrapMessage("push provider is not configured")
	}

	successCount, failureCount, invalidTokens, err := srv.notification.SendBatchNotification(
		ctx, tokens, input.Title, input.Body, input.Data)
	if err != nil {
		srv.log(ctx).Error("Push dispatch failed",
			slog.String("customerID", input.CustomerID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrNotificationFailed.WrapMessage("failed to dispatch push message")
	}

	if len(invalidTokens) > 0 {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return errors.WithStack(repoFactory.DeviceRepo().DeactivateByTokens(ctx, invalidTokens))
		})
		if err != nil {
			// The message already went out; a cleanup failure is not worth
			// failing the request over.
			srv.log(ctx).Warn("Failed to deactivate invalid tokens", slog.Any("error", err))
		}
	}
	srv.log(ctx).Debug("Push dispatch finished",
		slog.Int("success", successCount), slog.Int("failure", failureCount),
		slog.Int("deactivated", len(invalidTokens)))

	return &usecase.SendPushOutput{
		SuccessCount: successCount,
		FailureCount: failureCount,
		Deactivated:  invalidTokens,
	}, nil
}
