package postgres

import (
	"context"

	"tablenow/internal/domain/entity"
	domainerrors "tablenow/internal/domain/errors"
	"tablenow/internal/domain/repository"
	"tablenow/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements repository.PaymentRepository using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// List retrieves all payment line items ordered by creation time.
func (repo *paymentRepository) List(ctx context.Context) ([]*entity.PaymentItem, error) {
	var models []model.PaymentItemModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list payment items")
	}

	return toPaymentItemDomains(models), nil
}

// ListByReservation retrieves the line items belonging to one reservation.
func (repo *paymentRepository) ListByReservation(ctx context.Context, reservationID int64) ([]*entity.PaymentItem, error) {
	var models []model.PaymentItemModel
	err := repo.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment items by reservation")
	}

	return toPaymentItemDomains(models), nil
}

// Create persists a single payment line item.
func (repo *paymentRepository) Create(ctx context.Context, item *entity.PaymentItem) error {
	itemM := fromPaymentItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toPaymentItemDomains(models []model.PaymentItemModel) []*entity.PaymentItem {
	items := make([]*entity.PaymentItem, 0, len(models))
	for i := range models {
		items = append(items, toPaymentItemDomain(&models[i]))
	}

	return items
}

func toPaymentItemDomain(data *model.PaymentItemModel) *entity.PaymentItem {
	if data == nil {
		return nil
	}

	return &entity.PaymentItem{
		ID:            data.ID,
		ReservationID: data.ReservationID,
		StoreID:       data.StoreID,
		MenuID:        data.MenuID,
		OptionID:      data.OptionID,
		Quantity:      data.Quantity,
		Amount:        data.Amount,
		CreatedAt:     data.CreatedAt,
	}
}

func fromPaymentItemDomain(data *entity.PaymentItem) *model.PaymentItemModel {
	if data == nil {
		return nil
	}

	return &model.PaymentItemModel{
		ID:            data.ID,
		ReservationID: data.ReservationID,
		StoreID:       data.StoreID,
		MenuID:        data.MenuID,
		OptionID:      data.OptionID,
		Quantity:      data.Quantity,
		Amount:        data.Amount,
	}
}
