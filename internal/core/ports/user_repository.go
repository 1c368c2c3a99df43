package ports

import (
	"context"

	"github.com/verihub/company-registry/internal/core/domain"
)

// CreateUserInput carries the fields persisted at registration. FirebaseUID
// and Email are mandatory; the repository enforces their uniqueness.
type CreateUserInput struct {
	FirebaseUID     string
	Email           string
	FullName        string
	Gender          string
	MobileNumber    string
	SignupType      string
	IsEmailVerified bool
}

// UpdateProfileInput carries the owner-mutable profile fields.
type UpdateProfileInput struct {
	FullName     string
	MobileNumber string
}

// UserRepository defines the persistence surface for user identities.
// Implementations must use parameterized queries exclusively.
type UserRepository interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByFirebaseUID(ctx context.Context, uid string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, in UpdateProfileInput) (*domain.User, error)
}
