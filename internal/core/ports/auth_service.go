package ports

import (
	"context"

	"github.com/verihub/company-registry/internal/core/domain"
)

// LoginResult bundles the minted session token with the user it belongs to.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService is the registration/login/profile surface consumed by the
// transport layer.
type AuthService interface {
	// Register creates a local account for a federated identity. It does
	// not issue a session token; registration and login are separate steps.
	Register(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// Login verifies a federated identity assertion, resolves the local
	// account, and mints a session token.
	Login(ctx context.Context, assertion string) (*LoginResult, error)
	// UpdateProfile mutates the calling user's own mutable fields.
	UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (*domain.User, error)
	// Logout revokes the presented session token for its remaining
	// lifetime. The bool reports whether a revocation was actually
	// recorded; it is false when no revocation backend is configured or
	// the token had already expired.
	Logout(ctx context.Context, rawHeader string) (bool, error)
}

// IdentityVerifier resolves an Authorization header value to the minimal
// identity projection, or fails with an ErrUnauthenticated sentinel.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawHeader string) (domain.CurrentUser, error)
}

// CompanyService is the company-profile CRUD surface consumed by the
// transport layer.
type CompanyService interface {
	Create(ctx context.Context, ownerID int64, in CompanyInput) (*domain.CompanyProfile, error)
	List(ctx context.Context, ownerID int64) ([]domain.CompanyProfile, error)
	Update(ctx context.Context, ownerID, profileID int64, in CompanyInput) (*domain.CompanyProfile, error)
	Delete(ctx context.Context, ownerID, profileID int64) error
}
