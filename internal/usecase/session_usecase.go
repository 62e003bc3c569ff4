// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"servicehub/internal/domain/entity"
)

// IssuedCredential is a freshly signed session credential.
type IssuedCredential struct {
	Token     string
	ExpiresAt time.Time
}

// SessionUsecase mints and checks the credentials carried by the session cookie.
type SessionUsecase interface {
	// IssueCredential signs claims as received. The caller has already authenticated the subject.
	IssueCredential(ctx context.Context, claims map[string]any) (*IssuedCredential, error)

	// VerifyCredential returns the identity inside token, or ErrUnauthorizedAccess for any failure.
	VerifyCredential(ctx context.Context, token string) (*entity.Identity, error)
}
