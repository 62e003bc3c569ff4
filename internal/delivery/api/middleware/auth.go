package middleware

import (
	"servicehub/config"
	"servicehub/internal/delivery/api/response"
	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware is the session guard. Authenticate checks the session cookie,
// RequireOwner compares the caller with the owner named in the path.
type AuthMiddleware struct {
	sessionUC  usecase.SessionUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC:  sessionUC,
		cookieName: cfg.Auth.CookieName,
	}
}

// Authenticate rejects the request with 401 unless it carries a valid session
// cookie. On success the caller's identity is available through GetIdentity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var token string
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			token = cookie.Value
		}

		identity, err := m.sessionUC.VerifyCredential(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireOwner allows the request only when the path parameter param equals
// the caller's email. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireOwner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.Unauthorized(c)
			}

			if err := usecase.AuthorizeOwner(identity, deliverycontext.PathParam(c, param)); err != nil {
				return response.HandleAppError(c, err)
			}

			return next(c)
		}
	}
}
