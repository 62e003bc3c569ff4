package handler

import (
	"log/slog"
	"net/http"

	"servicehub/config"
	"servicehub/internal/delivery/api/response"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	ServiceUC usecase.ServiceUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ServiceHandler serves the service listing endpoints.
type ServiceHandler struct {
	serviceUC    usecase.ServiceUsecase
	defaultLimit int
	logger       *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler.
func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		serviceUC:    params.ServiceUC,
		defaultLimit: params.Config.Listing.DefaultLimit,
		logger:       params.Logger,
	}
}

// ListQuery is the optional ?limit= of the listing endpoints. Zero means no limit.
type ListQuery struct {
	Limit int `query:"limit" validate:"min=0"`
}

// ListServices returns the first listings, defaultLimit of them unless ?limit= says otherwise.
func (h *ServiceHandler) ListServices(c echo.Context) error {
	return h.list(c, h.defaultLimit)
}

// ListAllServices returns every listing unless ?limit= caps it.
func (h *ServiceHandler) ListAllServices(c echo.Context) error {
	return h.list(c, 0)
}

func (h *ServiceHandler) list(c echo.Context, fallback int) error {
	query := ListQuery{Limit: fallback}
	if err := echo.QueryParamsBinder(c).Int("limit", &query.Limit).BindError(); err != nil {
		return response.FromAppError(c, domainerrors.ErrValidationFailed)
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	services, err := h.serviceUC.ListServices(c.Request().Context(), query.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}

func (h *ServiceHandler) GetService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.FromAppError(c, domainerrors.ErrInvalidID)
	}

	svc, err := h.serviceUC.GetService(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, svc)
}

// ListOwnerServices returns the caller's own listings. The route is guarded by
// RequireOwner, so the path owner is the caller.
func (h *ServiceHandler) ListOwnerServices(c echo.Context) error {
	services, err := h.serviceUC.ListOwnerServices(c.Request().Context(), deliverycontext.PathParam(c, "email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	var input usecase.ServiceInput
	if err := c.Bind(&input); err != nil {
		h.logger.Debug("Invalid service payload", slog.Any("error", err))

		return response.FromAppError(c, domainerrors.ErrInvalidInput)
	}

	result, err := h.serviceUC.CreateService(c.Request().Context(), actorOf(c), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.FromAppError(c, domainerrors.ErrInvalidID)
	}

	var input usecase.ServiceInput
	if err := c.Bind(&input); err != nil {
		h.logger.Debug("Invalid service payload", slog.Any("error", err))

		return response.FromAppError(c, domainerrors.ErrInvalidInput)
	}

	result, err := h.serviceUC.UpdateService(c.Request().Context(), actorOf(c), id, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.FromAppError(c, domainerrors.ErrInvalidID)
	}

	result, err := h.serviceUC.DeleteService(c.Request().Context(), actorOf(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// actorOf returns the verified caller, or nil on routes without the session guard.
func actorOf(c echo.Context) *entity.Identity {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil
	}

	return identity
}
