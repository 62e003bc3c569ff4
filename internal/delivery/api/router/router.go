// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"time"

	"servicehub/config"
	"servicehub/internal/delivery/api/middleware"
	"servicehub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// Idle per-client limiter entries are dropped after this long.
const issueLimiterExpiry = 3 * time.Minute

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	ServiceHandler *handler.ServiceHandler
	BookingHandler *handler.BookingHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	serviceHandler *handler.ServiceHandler
	bookingHandler *handler.BookingHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		serviceHandler: params.ServiceHandler,
		bookingHandler: params.BookingHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)
	if r.registry != nil {
		e.GET("/metrics", middleware.MetricsHandler(r.registry))
	}

	// Session
	e.POST("/jwt", r.sessionHandler.IssueCredential, r.issueLimiter()...)
	e.POST("/logout", r.sessionHandler.Logout)

	// Owner-scoped reads always go through the session guard.
	ownerOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireOwner("email"),
	}
	writes := r.writeGuard()

	// Services
	e.GET("/services", r.serviceHandler.ListServices)
	e.GET("/services-all", r.serviceHandler.ListAllServices)
	e.GET("/services/:id", r.serviceHandler.GetService)
	e.GET("/my-services/:email", r.serviceHandler.ListOwnerServices, ownerOnly...)
	e.POST("/services", r.serviceHandler.CreateService, writes...)
	e.PUT("/services/:id", r.serviceHandler.UpdateService, writes...)
	e.DELETE("/services-all/:id", r.serviceHandler.DeleteService, writes...)

	// Bookings
	e.POST("/book", r.bookingHandler.CreateBooking, writes...)
	e.GET("/book/:email", r.bookingHandler.ListOwnerBookings, ownerOnly...)

	// Contact
	e.POST("/contact", r.contactHandler.SubmitContact)
}

// writeGuard returns the middlewares for mutating routes. Ownership of the
// written record is checked by the use cases once an identity is present.
func (r *router) writeGuard() []echo.MiddlewareFunc {
	if !r.config.Auth.ProtectWrites {
		return nil
	}

	return []echo.MiddlewareFunc{r.authMiddleware.Authenticate}
}

// issueLimiter throttles credential issuance per client IP.
func (r *router) issueLimiter() []echo.MiddlewareFunc {
	if r.config.Auth.IssueRateLimit <= 0 {
		return nil
	}

	burst := r.config.Auth.IssueBurst
	if burst <= 0 {
		burst = int(r.config.Auth.IssueRateLimit) + 1
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(r.config.Auth.IssueRateLimit),
		Burst:     burst,
		ExpiresIn: issueLimiterExpiry,
	})

	return []echo.MiddlewareFunc{echomiddleware.RateLimiter(store)}
}
