package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	mockRepo "servicehub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestIdentity(email string) *entity.Identity {
	return entity.NewIdentity(map[string]any{"email": email})
}

// expectTransaction makes txManager run the callback against a factory that
// hands out txRepo.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, txRepo repository.ServiceRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewServiceRepository().Return(txRepo)

			return fn(factory)
		})
}
