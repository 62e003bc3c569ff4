// Package service defines interfaces for domain services implemented in infra.
package service

import (
	"time"

	"servicehub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for any credential that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// TokenService signs and verifies session credentials.
// Implementations hold the signing key as read-only state and are safe for concurrent use.
type TokenService interface {
	// Issue signs the identity claims with a fixed lifetime and returns the
	// credential together with its expiry instant.
	Issue(claims map[string]any) (token string, expiresAt time.Time, err error)

	// Verify checks signature and expiry and returns the embedded identity.
	// Every failure is reported as a single opaque error.
	Verify(token string) (*entity.Identity, error)

	// TTL returns the credential lifetime.
	TTL() time.Duration
}
