package impl

import (
	"context"
	"log/slog"

	deliverycontext "tablenow/internal/delivery/context"
	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPayments retrieves every payment line item.
func (srv *paymentService) ListPayments(ctx context.Context) ([]*entity.PaymentItem, error) {
	var items []*entity.PaymentItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		items, err = repoFactory.PaymentRepo().List(ctx)

		return errors.WithStack(err)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return items, nil
}

// ListByReservation retrieves the line items belonging to one reservation.
func (srv *paymentService) ListByReservation(ctx context.Context, reservationID int64) ([]*entity.PaymentItem, error) {
	var items []*entity.PaymentItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		items, err = repoFactory.PaymentRepo().ListByReservation(ctx, reservationID)

		return errors.WithStack(err)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by reservation")
	}

	return items, nil
}

// InsertPayments writes a batch of line items for one reservation atomically.
// Either every line lands or none does.
func (srv *paymentService) InsertPayments(ctx context.Context, input *usecase.InsertPaymentsInput) ([]*entity.PaymentItem, error) {
	if len(input.Lines) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment batch is empty")
	}
	srv.log(ctx).Info("Inserting payment batch",
		slog.Int64("reservationID", input.ReservationID), slog.Int("lines", len(input.Lines)))

	items := make([]*entity.PaymentItem, 0, len(input.Lines))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()

		for _, line := range input.Lines {
			quantity := line.Quantity
			if quantity == 0 {
				quantity = 1
			}
			item := &entity.PaymentItem{
				ReservationID: input.ReservationID,
				StoreID:       line.StoreID,
				MenuID:        line.MenuID,
				OptionID:      line.OptionID,
				Quantity:      quantity,
				Amount:        line.Amount,
			}
			if err := paymentRepo.Create(ctx, item); err != nil {
				return errors.WithStack(err)
			}
			items = append(items, item)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Payment batch insert failed",
			slog.Int64("reservationID", input.ReservationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment batch transaction")
	}

	return items, nil
}
