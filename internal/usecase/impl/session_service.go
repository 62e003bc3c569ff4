// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/service"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueCredential signs claims without inspecting them beyond the server-owned time claims.
func (srv *sessionService) IssueCredential(ctx context.Context, claims map[string]any) (*usecase.IssuedCredential, error) {
	if claims == nil {
		claims = map[string]any{}
	}

	token, expiresAt, err := srv.tokenSvc.Issue(claims)
	if err != nil {
		srv.log(ctx).Error("Failed to issue credential", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCredentialIssueFailed, err.Error())
	}

	srv.log(ctx).Debug("Credential issued", slog.Time("expires_at", expiresAt))

	return &usecase.IssuedCredential{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// VerifyCredential collapses every verification failure into ErrUnauthorizedAccess.
// The reason is only logged at debug level and the token itself is never logged.
func (srv *sessionService) VerifyCredential(ctx context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorizedAccess, "credential missing")
	}

	identity, err := srv.tokenSvc.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Credential rejected", slog.Any("reason", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorizedAccess, "credential rejected")
	}

	return identity, nil
}
