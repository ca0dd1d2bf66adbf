package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"licensing/config"
	"licensing/internal/domain/repository"
	mockRepo "licensing/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
			ResetTokenTTL:     time.Hour,
		},
		Billing: &config.BillingConfig{
			ContractFee: "150000",
			RentDueDay:  5,
			FrontendURL: "https://app.example.com",
		},
		Storage: &config.StorageConfig{
			MaxFiles:    5,
			MaxFileSize: 5 << 20,
		},
		Firebase: &config.FirebaseConfig{PublicKey: "push-public-key"},
	}
}

// expectTransaction runs the transactional callback against factory and returns its error.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
