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
	mockRepo "tablenow/internal/mocks/repository"
	mockSvc "tablenow/internal/mocks/service"
	"tablenow/internal/usecase"
)

type tableServiceFixtures struct {
	service       usecase.TableUsecase
	txManager     *mockRepo.MockTransactionManager
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestTableService(t *testing.T) tableServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewTableService(TableServiceParams{
		TxManager:     txManager,
		QRCodeService: qrcodeService,
		Logger:        newDiscardLogger(),
	})

	return tableServiceFixtures{
		service:       service,
		txManager:     txManager,
		qrcodeService: qrcodeService,
	}
}

func (f tableServiceFixtures) expectTransaction(ctx context.Context, factory repository.RepositoryFactory) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func seatingTable(storeID int64, name string) *entity.StoreTable {
	return &entity.StoreTable{
		ID:       uuid.New(),
		StoreID:  storeID,
		Name:     name,
		Capacity: 4,
	}
}

func TestTableService_ListTables_All(t *testing.T) {
	f := createTestTableService(t)
	ctx := context.Background()

	all := []*entity.StoreTable{seatingTable(1, "A-1"), seatingTable(2, "B-1")}

	tableRepo := mockRepo.NewMockStoreTableRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TableRepo().Return(tableRepo)
	f.expectTransaction(ctx, factory)

	tableRepo.EXPECT().List(ctx).Return(all, nil)

	tables, err := f.service.ListTables(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, all, tables)
}

func TestTableService_ListTables_FilteredByStore(t *testing.T) {
	f := createTestTableService(t)
	ctx := context.Background()

	wanted := seatingTable(1, "A-1")
	other := seatingTable(2, "B-1")

	tableRepo := mockRepo.NewMockStoreTableRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TableRepo().Return(tableRepo)
	f.expectTransaction(ctx, factory)

	tableRepo.EXPECT().List(ctx).Return([]*entity.StoreTable{wanted, other}, nil)

	tables, err := f.service.ListTables(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, wanted, tables[0])
}

func TestTableService_GetTable_NotFound(t *testing.T) {
	f := createTestTableService(t)
	ctx := context.Background()

	tableRepo := mockRepo.NewMockStoreTableRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TableRepo().Return(tableRepo)
	f.expectTransaction(ctx, factory)

	unknownID := uuid.New()
	tableRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrTableNotFound)

	table, err := f.service.GetTable(ctx, unknownID)
	assert.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, domainerrors.ErrTableNotFound))
}

func TestTableService_CreateTable_Success(t *testing.T) {
	f := createTestTableService(t)
	ctx := context.Background()

	tableRepo := mockRepo.NewMockStoreTableRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TableRepo().Return(tableRepo)
	f.expectTransaction(ctx, factory)

	tableRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(table *entity.StoreTable) bool {
			return table.StoreID == 7 && table.Name == "Window-2" && table.Capacity == 6
		})).
		Return(nil)

	table, err := f.service.CreateTable(ctx, &usecase.CreateTableInput{
		StoreID:  7,
		Name:     "Window-2",
		Capacity: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), table.StoreID)
	assert.Equal(t, "Window-2", table.Name)
	assert.False(t, table.InUse)
}

func TestTableService_UpdateTable_Success(t *testing.T) {
	f := createTestTableService(t)
	ctx := context.Background()

	existing := seatingTable(1, "A-1")
	newCapacity := 8
	inUse := true

	tableRepo := mockRepo.NewMockStoreTableRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TableRepo().Return(tableRepo)
	f.expectTransaction(ctx, factory)

	tableRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	tableRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(table *entity.StoreTable) bool {
			return table.ID == existing.ID && table.Capacity == newCapacity && table.InUse
		})).
		Return(nil)

	updated, err := f.service.UpdateTable(ctx, &usecase.UpdateTableInput{
		TableID:  existing.ID,
		Capacity: &newCapacity,
		InUse:    &inUse,
	})
	require.NoError(t, err)
	assert.Equal(t, newCapacity, updated.Capacity)
	assert.True(t, updated.InUse)
	assert.Equal(t, "A-1", updated.Name)
}

func TestTableService_DeleteTable_NotFound(t *testing.T) {
	f := createTestTableService(t)
	ctx := context.Background()

	tableRepo := mockRepo.NewMockStoreTableRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TableRepo().Return(tableRepo)
	f.expectTransaction(ctx, factory)

	unknownID := uuid.New()
	tableRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrTableNotFound)

	err := f.service.DeleteTable(ctx, unknownID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTableNotFound))
	tableRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTableService_CheckInQR_Success(t *testing.T) {
	f := createTestTableService(t)
	ctx := context.Background()

	existing := seatingTable(1, "A-1")
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	tableRepo := mockRepo.NewMockStoreTableRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TableRepo().Return(tableRepo)
	f.expectTransaction(ctx, factory)

	tableRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	f.qrcodeService.EXPECT().GenerateCheckInQR(existing.ID).Return(png, nil)

	got, err := f.service.CheckInQR(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestTableService_CheckInQR_TableNotFound(t *testing.T) {
	f := createTestTableService(t)
	ctx := context.Background()

	tableRepo := mockRepo.NewMockStoreTableRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().TableRepo().Return(tableRepo)
	f.expectTransaction(ctx, factory)

	unknownID := uuid.New()
	tableRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrTableNotFound)

	png, err := f.service.CheckInQR(ctx, unknownID)
	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrTableNotFound))
	f.qrcodeService.AssertNotCalled(t, "GenerateCheckInQR", mock.Anything)
}
