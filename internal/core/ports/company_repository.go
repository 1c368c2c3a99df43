package ports

import (
	"context"

	"github.com/verihub/company-registry/internal/core/domain"
)

// CompanyInput carries the writable fields of a company profile. The owner
// is never part of the payload; it comes from the request context.
type CompanyInput struct {
	CompanyName string
	Address     string
	City        string
	State       string
	Country     string
	ZipCode     string
	LogoURL     string
	BannerURL   string
}

// CompanyRepository defines the persistence surface for company profiles.
// Every mutation is scoped to the owning user in the statement itself so a
// non-owner can never observe or change another user's rows.
type CompanyRepository interface {
	Create(ctx context.Context, ownerID int64, in CompanyInput) (*domain.CompanyProfile, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.CompanyProfile, error)
	Update(ctx context.Context, ownerID, profileID int64, in CompanyInput) (*domain.CompanyProfile, error)
	Delete(ctx context.Context, ownerID, profileID int64) error
}
