// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"maps"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// Registered time claims are always set by the server.
var serverOwnedClaims = []string{"exp", "iat", "nbf"}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // HMAC key; read-only after construction.
	ttl    time.Duration // Credential lifetime.
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, errors.New("jwt token ttl must be positive")
	}

	return newJWTService([]byte(cfg.SecretKey.Access), cfg.Auth.TokenTTL, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: secret,
		ttl:    ttl,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
		),
	}
}

// Issue signs a copy of claims with iat/exp set from the configured lifetime.
func (s *jwtService) Issue(claims map[string]any) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	mapClaims := make(jwt.MapClaims, len(claims)+2)
	maps.Copy(mapClaims, claims)
	for _, key := range serverOwnedClaims {
		delete(mapClaims, key)
	}
	mapClaims["iat"] = issuedAt.Unix()
	mapClaims["exp"] = expiresAt.Unix()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Verify parses tokenString, rejecting anything not signed with HS256 by this
// service's key or past its expiry.
func (s *jwtService) Verify(tokenString string) (*entity.Identity, error) {
	claims := jwt.MapClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, service.ErrInvalidToken
	}

	return entity.NewIdentity(claims), nil
}

// TTL returns the configured credential lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
