package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tablenow/config"
	"tablenow/internal/domain/repository"
	mockRepo "tablenow/internal/mocks/repository"
	mockSvc "tablenow/internal/mocks/service"
	"tablenow/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:   12,
			ResetCodeTTL: 10 * time.Minute,
		},
	}
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service           usecase.AuthUsecase
	txManager         *mockRepo.MockTransactionManager
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
	codeMailer        *mockSvc.MockCodeMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)
	codeMailer := mockSvc.NewMockCodeMailer(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:         txManager,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		CodeMailer:        codeMailer,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})

	return authServiceFixtures{
		service:           service,
		txManager:         txManager,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
		codeMailer:        codeMailer,
	}
}

// expectTransaction makes the transaction manager run the submitted function
// against the given factory and propagate its error, like a real transaction
// would.
func (f authServiceFixtures) expectTransaction(ctx context.Context, factory repository.RepositoryFactory) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
