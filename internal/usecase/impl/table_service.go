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

// tableService implements the TableUsecase interface.
type tableService struct {
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// TableServiceParams holds dependencies for TableService, injected by Fx.
type TableServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewTableService is the constructor for tableService.
func NewTableService(params TableServiceParams) usecase.TableUsecase {
	return &tableService{
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *tableService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTables retrieves seating tables, optionally limited to one store.
func (srv *tableService) ListTables(ctx context.Context, storeID int64) ([]*entity.StoreTable, error) {
	var tables []*entity.StoreTable

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		all, err := repoFactory.TableRepo().List(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if storeID == 0 {
			tables = all

			return nil
		}
		for _, t := range all {
			if t.StoreID == storeID {
				tables = append(tables, t)
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	return tables, nil
}

// GetTable retrieves a single seating table by ID.
func (srv *tableService) GetTable(ctx context.Context, tableID uuid.UUID) (*entity.StoreTable, error) {
	var table *entity.StoreTable

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		table, err = repoFactory.TableRepo().FindByID(ctx, tableID)
		if errors.Is(err, repository.ErrTableNotFound) {
			return domainerrors.ErrTableNotFound.WrapMessage("table lookup failed")
		}

		return errors.WithStack(err)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get table")
	}

	return table, nil
}

// CreateTable registers a new seating table.
func (srv *tableService) CreateTable(ctx context.Context, input *usecase.CreateTableInput) (*entity.StoreTable, error) {
	srv.log(ctx).Info("Creating table", slog.Int64("storeID", input.StoreID), slog.String("name", input.Name))

	table := &entity.StoreTable{
		StoreID:  input.StoreID,
		Name:     input.Name,
		Capacity: input.Capacity,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.WithStack(repoFactory.TableRepo().Create(ctx, table))
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create table")
	}

	return table, nil
}

// UpdateTable applies the non-nil fields of the input to the stored record.
func (srv *tableService) UpdateTable(ctx context.Context, input *usecase.UpdateTableInput) (*entity.StoreTable, error) {
	var updated *entity.StoreTable

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tableRepo := repoFactory.TableRepo()

		table, err := tableRepo.FindByID(ctx, input.TableID)
		if errors.Is(err, repository.ErrTableNotFound) {
			return domainerrors.ErrTableNotFound.WrapMessage("table update failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find table by id")
		}

		if input.Name != nil {
			table.Name = *input.Name
		}
		if input.Capacity != nil {
			table.Capacity = *input.Capacity
		}
		if input.InUse != nil {
			table.InUse = *input.InUse
		}

		if err := tableRepo.Update(ctx, table); err != nil {
			return errors.WithStack(err)
		}
		updated = table

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Table update failed", slog.String("tableID", input.TableID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute table update transaction")
	}

	return updated, nil
}

// DeleteTable removes a seating table.
func (srv *tableService) DeleteTable(ctx context.Context, tableID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tableRepo := repoFactory.TableRepo()

		if _, err := tableRepo.FindByID(ctx, tableID); err != nil {
			if errors.Is(err, repository.ErrTableNotFound) {
				return domainerrors.ErrTableNotFound.WrapMessage("table delete failed")
			}

			return errors.Wrap(err, "failed to find table by id")
		}

		return errors.WithStack(tableRepo.Delete(ctx, tableID))
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute table delete transaction")
	}

	return nil
}

// CheckInQR renders a PNG QR code encoding the table's check-in payload.
func (srv *tableService) CheckInQR(ctx context.Context, tableID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetTable(ctx, tableID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateCheckInQR(tableID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in QR code")
	}

	return png, nil
}
