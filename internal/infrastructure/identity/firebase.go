// Package identity verifies federated identity assertions (Firebase-style
// ID tokens). Assertions are always cryptographically verified against the
// provider's published JWKS before any embedded claim is trusted; a decoded
// but unverified assertion is never accepted.
package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
)

const (
	// jwksURL publishes the signing keys for Firebase secure tokens.
	jwksURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

	issuerPrefix    = "https://securetoken.google.com/"
	refreshInterval = time.Hour
)

// assertionClaims is the subset of the provider's claims the bridge needs.
type assertionClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// FirebaseVerifier validates RS256 assertions for one Firebase project.
type FirebaseVerifier struct {
	jwks      *keyfunc.JWKS
	projectID string
}

// NewFirebaseVerifier fetches the provider JWKS and returns a verifier
// pinned to projectID. The key set refreshes in the background for the
// lifetime of ctx.
func NewFirebaseVerifier(ctx context.Context, projectID string) (*FirebaseVerifier, error) {
	if projectID == "" {
		return nil, fmt.Errorf("identity: project id is required")
	}

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx:              ctx,
		RefreshInterval:  refreshInterval,
		RefreshRateLimit: time.Minute,
	})
	if err != nil {
		return nil, fmt.Errorf("identity: fetch jwks: %w", err)
	}

	return &FirebaseVerifier{jwks: jwks, projectID: projectID}, nil
}

// Verify checks the assertion's signature, issuer, audience, and expiry, and
// extracts the external subject. All failures map to ErrInvalidAssertion.
func (v *FirebaseVerifier) Verify(_ context.Context, assertion string) (*ports.ExternalIdentity, error) {
	claims := &assertionClaims{}
	tkn, err := jwt.ParseWithClaims(assertion, claims, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(issuerPrefix+v.projectID),
		jwt.WithAudience(v.projectID),
	)
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidAssertion
	}

	if claims.Subject == "" {
		return nil, domain.ErrInvalidAssertion
	}

	return &ports.ExternalIdentity{
		SubjectID:     claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
	}, nil
}

var _ ports.AssertionVerifier = (*FirebaseVerifier)(nil)
