// Package token issues and parses the service's own session tokens. Tokens
// are stateless HS256 JWTs carrying only the subject id and the standard
// time claims; the signing secret is loaded once at startup and never
// rotated at runtime.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/verihub/company-registry/internal/core/domain"
)

// DefaultTTL is applied when no explicit token lifetime is configured.
const DefaultTTL = 90 * 24 * time.Hour

// SessionClaims is the decoded view of a session token handed to callers.
type SessionClaims struct {
	// SubjectID is the internal user id the token was issued for.
	SubjectID int64
	// TokenID is the unique jti, used as the revocation key.
	TokenID string
	// ExpiresAt is the absolute expiry instant.
	ExpiresAt time.Time
}

// Service mints and parses session tokens with a single process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService builds a token Service. An empty secret is a fatal
// misconfiguration: the caller must refuse to serve.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, domain.ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue mints a signed session token for a previously persisted user id.
func (s *Service) Issue(subjectID int64) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subjectID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the decoded claims.
// Any verification failure maps to ErrInvalidToken; the caller must treat it
// as a 401 and never retry.
func (s *Service) Parse(raw string) (SessionClaims, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return SessionClaims{}, domain.ErrInvalidToken
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return SessionClaims{}, domain.ErrInvalidToken
	}

	out := SessionClaims{SubjectID: subjectID, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// TTL reports the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}
