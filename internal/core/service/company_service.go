package service

import (
	"context"

	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
)

// CompanyService implements owner-scoped CRUD over company profiles. The
// owner id always comes from the request context, never from the payload.
type CompanyService struct {
	repo ports.CompanyRepository
}

func NewCompanyService(repo ports.CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) Create(ctx context.Context, ownerID int64, in ports.CompanyInput) (*domain.CompanyProfile, error) {
	return s.repo.Create(ctx, ownerID, in)
}

func (s *CompanyService) List(ctx context.Context, ownerID int64) ([]domain.CompanyProfile, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *CompanyService) Update(ctx context.Context, ownerID, profileID int64, in ports.CompanyInput) (*domain.CompanyProfile, error) {
	return s.repo.Update(ctx, ownerID, profileID, in)
}

func (s *CompanyService) Delete(ctx context.Context, ownerID, profileID int64) error {
	return s.repo.Delete(ctx, ownerID, profileID)
}

var _ ports.CompanyService = (*CompanyService)(nil)
