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

type customerServiceFixtures struct {
	service   usecase.CustomerUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewCustomerService(CustomerServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return customerServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
	}
}

func (f customerServiceFixtures) expectTransaction(ctx context.Context, factory repository.RepositoryFactory) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func localCustomer(email string) *entity.Customer {
	return &entity.Customer{
		ID:           uuid.New(),
		Name:         "Test Diner",
		Email:        email,
		PasswordHash: "$2a$12$existinghash",
		Provider:     entity.ProviderLocal,
	}
}

func TestCustomerService_ListCustomers_Success(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	f.expectTransaction(ctx, factory)

	expected := []*entity.Customer{localCustomer("a@example.com"), localCustomer("b@example.com")}
	customerRepo.EXPECT().List(ctx).Return(expected, nil)

	customers, err := f.service.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, customers)
}

func TestCustomerService_GetCustomer_Success(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	existing := localCustomer("diner@example.com")

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	f.expectTransaction(ctx, factory)

	customerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	customer, err := f.service.GetCustomer(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing, customer)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	f.expectTransaction(ctx, factory)

	unknownID := uuid.New()
	customerRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrCustomerNotFound)

	customer, err := f.service.GetCustomer(ctx, unknownID)
	assert.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerService_UpdateCustomer_Success(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	existing := localCustomer("old@example.com")
	newName := "Renamed Diner"
	newEmail := "new@example.com"

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	f.expectTransaction(ctx, factory)

	customerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	customerRepo.EXPECT().FindByEmail(ctx, newEmail).Return(nil, repository.ErrCustomerNotFound)
	customerRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.ID == existing.ID && c.Name == newName && c.Email == newEmail
		})).
		Return(nil)

	updated, err := f.service.UpdateCustomer(ctx, &usecase.UpdateCustomerInput{
		CustomerID: existing.ID,
		Name:       &newName,
		Email:      &newEmail,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, newEmail, updated.Email)
}

func TestCustomerService_UpdateCustomer_WhitespacePhoneNormalizesToAbsent(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	existing := localCustomer("diner@example.com")
	existing.Phone = "010-0000-0000"
	blankPhone := " \t "

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	f.expectTransaction(ctx, factory)

	customerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	customerRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Customer) bool {
			return c.ID == existing.ID && c.Phone == ""
		})).
		Return(nil)

	updated, err := f.service.UpdateCustomer(ctx, &usecase.UpdateCustomerInput{
		CustomerID: existing.ID,
		Phone:      &blankPhone,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Phone)
}

func TestCustomerService_UpdateCustomer_DuplicateEmail(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	existing := localCustomer("old@example.com")
	taken := localCustomer("taken@example.com")
	newEmail := taken.Email

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	f.expectTransaction(ctx, factory)

	customerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	customerRepo.EXPECT().FindByEmail(ctx, newEmail).Return(taken, nil)

	updated, err := f.service.UpdateCustomer(ctx, &usecase.UpdateCustomerInput{
		CustomerID: existing.ID,
		Email:      &newEmail,
	})
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	customerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCustomerService_UpdateCustomer_PasswordOnSocialAccount(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	existing := &entity.Customer{
		ID:              uuid.New(),
		Name:            "Google Diner",
		Email:           "google@example.com",
		Provider:        entity.ProviderGoogle,
		ProviderSubject: "google-subject-123",
	}
	newPassword := "NewSecret#2026x"

	f.hasher.EXPECT().ValidatePasswordStrength(newPassword).Return(nil)
	f.hasher.EXPECT().Hash(newPassword).Return("$2a$12$newhash", nil)

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	f.expectTransaction(ctx, factory)

	customerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	updated, err := f.service.UpdateCustomer(ctx, &usecase.UpdateCustomerInput{
		CustomerID: existing.ID,
		Password:   &newPassword,
	})
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrSocialAccountImmutable))
	customerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCustomerService_UpdateCustomer_WeakPassword(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	weakPassword := "short"
	f.hasher.EXPECT().
		ValidatePasswordStrength(weakPassword).
		Return(errors.New("password must be at least 8 characters long"))

	updated, err := f.service.UpdateCustomer(ctx, &usecase.UpdateCustomerInput{
		CustomerID: uuid.New(),
		Password:   &weakPassword,
	})
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	f.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCustomerService_DeleteCustomer_Success(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	existing := localCustomer("diner@example.com")

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	factory.EXPECT().ResetRepo().Return(resetRepo)
	f.expectTransaction(ctx, factory)

	customerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	deviceRepo.EXPECT().DeleteByCustomerID(ctx, existing.ID).Return(nil)
	resetRepo.EXPECT().DeleteByCustomerID(ctx, existing.ID).Return(nil)
	customerRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)

	err := f.service.DeleteCustomer(ctx, existing.ID)
	assert.NoError(t, err)
}

func TestCustomerService_DeleteCustomer_ResetCleanupFailureAbortsDelete(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	existing := localCustomer("diner@example.com")

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	factory.EXPECT().DeviceRepo().Return(deviceRepo)
	factory.EXPECT().ResetRepo().Return(resetRepo)
	f.expectTransaction(ctx, factory)

	customerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	deviceRepo.EXPECT().DeleteByCustomerID(ctx, existing.ID).Return(nil)
	resetRepo.EXPECT().DeleteByCustomerID(ctx, existing.ID).Return(errors.New("delete failed"))

	err := f.service.DeleteCustomer(ctx, existing.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete customer reset records")
	customerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCustomerService_DeleteCustomer_NotFound(t *testing.T) {
	f := createTestCustomerService(t)
	ctx := context.Background()

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo)
	f.expectTransaction(ctx, factory)

	unknownID := uuid.New()
	customerRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrCustomerNotFound)

	err := f.service.DeleteCustomer(ctx, unknownID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
	customerRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
