package impl

import (
	"context"
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// serviceService implements the ServiceUsecase interface.
type serviceService struct {
	serviceRepo repository.ServiceRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// NewServiceService is the constructor for serviceService.
func NewServiceService(
	serviceRepo repository.ServiceRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ServiceUsecase {
	return &serviceService{
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (srv *serviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *serviceService) ListServices(ctx context.Context, limit int) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.ListServices(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (srv *serviceService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := srv.serviceRepo.FindServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to get service")
	}

	return svc, nil
}

func (srv *serviceService) ListOwnerServices(ctx context.Context, ownerEmail string) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.FindServicesByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner services")
	}

	return services, nil
}

// CreateService stores a new listing under a server-generated ID.
func (srv *serviceService) CreateService(ctx context.Context, actor *entity.Identity, input *usecase.ServiceInput) (*entity.InsertResult, error) {
	owner, err := usecase.ResolveOwner(actor, input.UserEmail)
	if err != nil {
		srv.log(ctx).Info("Service create denied", slog.String("owner", input.UserEmail))

		return nil, err
	}

	svc := newServiceFromInput(uuid.New(), input)
	svc.UserEmail = owner

	if err := srv.serviceRepo.CreateService(ctx, svc); err != nil {
		srv.log(ctx).Error("Failed to create service", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.log(ctx).Info("Service created", slog.String("service_id", svc.ID.String()))

	return &entity.InsertResult{Acknowledged: true, InsertedID: svc.ID}, nil
}

// UpdateService replaces the listing's editable fields, inserting it under id
// when it does not exist yet. With an actor, both the stored owner and the
// owner being written must be the actor.
func (srv *serviceService) UpdateService(
	ctx context.Context,
	actor *entity.Identity,
	id uuid.UUID,
	input *usecase.ServiceInput,
) (*entity.UpdateResult, error) {
	var result *entity.UpdateResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.NewServiceRepository()

		svc := newServiceFromInput(id, input)

		if actor != nil {
			if err := srv.authorizeExisting(ctx, serviceRepo, actor, id); err != nil {
				return err
			}

			owner, err := usecase.ResolveOwner(actor, input.UserEmail)
			if err != nil {
				return err
			}
			svc.UserEmail = owner
		}

		inserted, err := serviceRepo.UpsertService(ctx, svc)
		if err != nil {
			// Another request inserted the same id after our update matched nothing.
			if errors.Is(err, repository.ErrDuplicateRecord) {
				return domainerrors.ErrServiceConflict
			}

			return errors.Wrap(err, "failed to upsert service")
		}

		result = newUpdateResult(id, inserted)

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Service update failed", slog.String("service_id", id.String()), slog.Any("error", err))

		return nil, err
	}

	return result, nil
}

// DeleteService removes the listing. An unknown id yields a zero DeletedCount.
func (srv *serviceService) DeleteService(ctx context.Context, actor *entity.Identity, id uuid.UUID) (*entity.DeleteResult, error) {
	if actor == nil {
		deleted, err := srv.serviceRepo.DeleteService(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to delete service")
		}

		return &entity.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
	}

	var deleted int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.NewServiceRepository()

		if err := srv.authorizeExisting(ctx, serviceRepo, actor, id); err != nil {
			return err
		}

		var err error
		deleted, err = serviceRepo.DeleteService(ctx, id)

		return errors.Wrap(err, "failed to delete service")
	})
	if err != nil {
		srv.log(ctx).Info("Service delete failed", slog.String("service_id", id.String()), slog.Any("error", err))

		return nil, err
	}

	return &entity.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

// authorizeExisting checks the stored owner of id against actor, locking the
// row for the rest of the transaction. A missing listing passes; the caller
// decides what that means.
func (srv *serviceService) authorizeExisting(
	ctx context.Context,
	serviceRepo repository.ServiceRepository,
	actor *entity.Identity,
	id uuid.UUID,
) error {
	existing, err := serviceRepo.LockServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load service")
	}

	return usecase.AuthorizeOwner(actor, existing.UserEmail)
}

func newServiceFromInput(id uuid.UUID, input *usecase.ServiceInput) *entity.Service {
	return &entity.Service{
		ID:                 id,
		ServiceName:        input.ServiceName,
		ServiceImage:       input.ServiceImage,
		UserName:           input.UserName,
		UserEmail:          input.UserEmail,
		UserPhoto:          input.UserPhoto,
		Price:              input.Price,
		Area:               input.Area,
		ServiceDescription: input.ServiceDescription,
	}
}

func newUpdateResult(id uuid.UUID, inserted bool) *entity.UpdateResult {
	if inserted {
		return &entity.UpdateResult{
			Acknowledged:  true,
			UpsertedID:    &id,
			UpsertedCount: 1,
		}
	}

	return &entity.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  1,
		ModifiedCount: 1,
	}
}
