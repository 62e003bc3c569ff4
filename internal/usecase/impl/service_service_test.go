package impl

import (
	"context"
	"net/http"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	mockRepo "servicehub/internal/mocks/repository"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	repo      *mockRepo.MockServiceRepository
	txRepo    *mockRepo.MockServiceRepository
	txManager *mockRepo.MockTransactionManager
	srv       usecase.ServiceUsecase
}

func createTestServiceService(t *testing.T) *serviceFixture {
	t.Helper()

	f := &serviceFixture{
		repo:      mockRepo.NewMockServiceRepository(t),
		txRepo:    mockRepo.NewMockServiceRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
	}
	f.srv = NewServiceService(f.repo, f.txManager, newTestLogger())

	return f
}

func newTestServiceInput(owner string) *usecase.ServiceInput {
	return &usecase.ServiceInput{
		ServiceName:        "Garden cleanup",
		ServiceImage:       "https://img.example/garden.png",
		UserName:           "Alice",
		UserEmail:          owner,
		Price:              entity.Price(40),
		Area:               "Dhaka",
		ServiceDescription: "Weeding and mowing",
	}
}

func TestServiceService_ListServices(t *testing.T) {
	f := createTestServiceService(t)
	ctx := context.Background()
	services := []*entity.Service{{ID: uuid.New()}, {ID: uuid.New()}}

	f.repo.EXPECT().ListServices(ctx, 4).Return(services, nil)

	got, err := f.srv.ListServices(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, services, got)
}

func TestServiceService_GetService(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		f.repo.EXPECT().FindServiceByID(ctx, id).Return(&entity.Service{ID: id}, nil)

		got, err := f.srv.GetService(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		f.repo.EXPECT().FindServiceByID(ctx, id).Return(nil, repository.ErrServiceNotFound)

		got, err := f.srv.GetService(ctx, id)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to find service by ID")
		f.repo.EXPECT().FindServiceByID(ctx, id).Return(nil, dbErr)

		_, err := f.srv.GetService(ctx, id)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	})
}

func TestServiceService_ListOwnerServices(t *testing.T) {
	f := createTestServiceService(t)
	ctx := context.Background()

	f.repo.EXPECT().FindServicesByOwner(ctx, "a@x.com").Return([]*entity.Service{}, nil)

	got, err := f.srv.ListOwnerServices(ctx, "a@x.com")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestServiceService_CreateService(t *testing.T) {
	ctx := context.Background()

	t.Run("unguarded keeps the submitted owner", func(t *testing.T) {
		f := createTestServiceService(t)
		var stored *entity.Service
		f.repo.EXPECT().
			CreateService(ctx, mock.AnythingOfType("*entity.Service")).
			Run(func(_ context.Context, svc *entity.Service) { stored = svc }).
			Return(nil)

		result, err := f.srv.CreateService(ctx, nil, newTestServiceInput("someone@x.com"))

		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Equal(t, stored.ID, result.InsertedID)
		assert.NotEqual(t, uuid.Nil, stored.ID)
		assert.Equal(t, "someone@x.com", stored.UserEmail)
		assert.Equal(t, entity.Price(40), stored.Price)
	})

	t.Run("guarded fills in the actor", func(t *testing.T) {
		f := createTestServiceService(t)
		f.repo.EXPECT().
			CreateService(ctx, mock.MatchedBy(func(svc *entity.Service) bool { return svc.UserEmail == "a@x.com" })).
			Return(nil)

		_, err := f.srv.CreateService(ctx, newTestIdentity("a@x.com"), newTestServiceInput(""))

		require.NoError(t, err)
	})

	t.Run("guarded rejects another owner", func(t *testing.T) {
		f := createTestServiceService(t)

		result, err := f.srv.CreateService(ctx, newTestIdentity("a@x.com"), newTestServiceInput("b@x.com"))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrForbiddenAccess)
	})
}

func TestServiceService_UpdateService(t *testing.T) {
	ctx := context.Background()

	t.Run("existing listing is modified", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		expectTransaction(t, f.txManager, f.txRepo)
		f.txRepo.EXPECT().
			UpsertService(ctx, mock.MatchedBy(func(svc *entity.Service) bool { return svc.ID == id })).
			Return(false, nil)

		result, err := f.srv.UpdateService(ctx, nil, id, newTestServiceInput("a@x.com"))

		require.NoError(t, err)
		assert.Equal(t, &entity.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, result)
	})

	t.Run("unknown id is inserted", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		expectTransaction(t, f.txManager, f.txRepo)
		f.txRepo.EXPECT().UpsertService(ctx, mock.Anything).Return(true, nil)

		result, err := f.srv.UpdateService(ctx, nil, id, newTestServiceInput("a@x.com"))

		require.NoError(t, err)
		require.NotNil(t, result.UpsertedID)
		assert.Equal(t, id, *result.UpsertedID)
		assert.Equal(t, int64(1), result.UpsertedCount)
		assert.Zero(t, result.MatchedCount)
	})

	t.Run("concurrent insert of the same id is a conflict", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		expectTransaction(t, f.txManager, f.txRepo)
		f.txRepo.EXPECT().UpsertService(ctx, mock.Anything).Return(false, repository.ErrDuplicateRecord)

		result, err := f.srv.UpdateService(ctx, nil, id, newTestServiceInput("a@x.com"))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrServiceConflict)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	})

	t.Run("guarded owner may update", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		expectTransaction(t, f.txManager, f.txRepo)
		f.txRepo.EXPECT().LockServiceByID(ctx, id).Return(&entity.Service{ID: id, UserEmail: "a@x.com"}, nil)
		f.txRepo.EXPECT().UpsertService(ctx, mock.Anything).Return(false, nil)

		_, err := f.srv.UpdateService(ctx, newTestIdentity("a@x.com"), id, newTestServiceInput("a@x.com"))

		require.NoError(t, err)
	})

	t.Run("guarded non-owner is forbidden", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		expectTransaction(t, f.txManager, f.txRepo)
		f.txRepo.EXPECT().LockServiceByID(ctx, id).Return(&entity.Service{ID: id, UserEmail: "b@x.com"}, nil)

		result, err := f.srv.UpdateService(ctx, newTestIdentity("a@x.com"), id, newTestServiceInput("a@x.com"))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrForbiddenAccess)
	})

	t.Run("guarded owner cannot hand the listing to someone else", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		expectTransaction(t, f.txManager, f.txRepo)
		f.txRepo.EXPECT().LockServiceByID(ctx, id).Return(&entity.Service{ID: id, UserEmail: "a@x.com"}, nil)

		_, err := f.srv.UpdateService(ctx, newTestIdentity("a@x.com"), id, newTestServiceInput("b@x.com"))

		assert.ErrorIs(t, err, domainerrors.ErrForbiddenAccess)
	})

	t.Run("guarded upsert of a new listing records the actor", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		expectTransaction(t, f.txManager, f.txRepo)
		f.txRepo.EXPECT().LockServiceByID(ctx, id).Return(nil, repository.ErrServiceNotFound)
		f.txRepo.EXPECT().
			UpsertService(ctx, mock.MatchedBy(func(svc *entity.Service) bool { return svc.UserEmail == "a@x.com" })).
			Return(true, nil)

		_, err := f.srv.UpdateService(ctx, newTestIdentity("a@x.com"), id, newTestServiceInput(""))

		require.NoError(t, err)
	})
}

func TestServiceService_DeleteService(t *testing.T) {
	ctx := context.Background()

	t.Run("unguarded", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		f.repo.EXPECT().DeleteService(ctx, id).Return(int64(1), nil)

		result, err := f.srv.DeleteService(ctx, nil, id)

		require.NoError(t, err)
		assert.Equal(t, &entity.DeleteResult{Acknowledged: true, DeletedCount: 1}, result)
	})

	t.Run("unknown id deletes nothing", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		expectTransaction(t, f.txManager, f.txRepo)
		f.txRepo.EXPECT().LockServiceByID(ctx, id).Return(nil, repository.ErrServiceNotFound)
		f.txRepo.EXPECT().DeleteService(ctx, id).Return(int64(0), nil)

		result, err := f.srv.DeleteService(ctx, newTestIdentity("a@x.com"), id)

		require.NoError(t, err)
		assert.Zero(t, result.DeletedCount)
	})

	t.Run("guarded non-owner is forbidden", func(t *testing.T) {
		f := createTestServiceService(t)
		id := uuid.New()
		expectTransaction(t, f.txManager, f.txRepo)
		f.txRepo.EXPECT().LockServiceByID(ctx, id).Return(&entity.Service{ID: id, UserEmail: "b@x.com"}, nil)

		result, err := f.srv.DeleteService(ctx, newTestIdentity("a@x.com"), id)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrForbiddenAccess)
	})
}
