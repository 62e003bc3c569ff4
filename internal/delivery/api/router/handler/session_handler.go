package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"servicehub/config"
	"servicehub/internal/delivery/api/response"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// SessionHandler issues and clears the session cookie.
type SessionHandler struct {
	sessionUC  usecase.SessionUsecase
	cookieName string
	secure     bool
	sameSite   http.SameSite
	logger     *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC:  params.SessionUC,
		cookieName: params.Config.Auth.CookieName,
		secure:     params.Config.Auth.CookieSecure,
		sameSite:   parseSameSite(params.Config.Auth.CookieSameSite),
		logger:     params.Logger,
	}
}

// IssueCredential signs the posted JSON object and returns it only as an
// HttpOnly cookie. The cookie has no Max-Age; the credential's exp bounds it.
func (h *SessionHandler) IssueCredential(c echo.Context) error {
	var claims map[string]any
	if err := c.Bind(&claims); err != nil || claims == nil {
		h.logger.Debug("Credential request is not a JSON object", slog.Any("error", err))

		return response.FromAppError(c, domainerrors.ErrInvalidInput)
	}

	credential, err := h.sessionUC.IssueCredential(c.Request().Context(), claims)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.cookie(credential.Token))

	return response.OK(c)
}

// Logout expires the session cookie.
func (h *SessionHandler) Logout(c echo.Context) error {
	cookie := h.cookie("")
	cookie.MaxAge = -1
	c.SetCookie(cookie)

	return response.OK(c)
}

func (h *SessionHandler) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: h.sameSite,
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "lax":
		return http.SameSiteLaxMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteNoneMode
	}
}
