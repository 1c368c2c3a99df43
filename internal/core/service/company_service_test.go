package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
)

type stubCompanyRepo struct {
	mu       sync.Mutex
	nextID   int64
	profiles map[int64]*domain.CompanyProfile
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{profiles: make(map[int64]*domain.CompanyProfile)}
}

func (r *stubCompanyRepo) Create(_ context.Context, ownerID int64, in ports.CompanyInput) (*domain.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p := &domain.CompanyProfile{
		ID:          r.nextID,
		OwnerID:     ownerID,
		CompanyName: in.CompanyName,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Country:     in.Country,
		ZipCode:     in.ZipCode,
		LogoURL:     in.LogoURL,
		BannerURL:   in.BannerURL,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	r.profiles[p.ID] = p
	clone := *p
	return &clone, nil
}

func (r *stubCompanyRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.CompanyProfile
	for _, p := range r.profiles {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, ownerID, profileID int64, in ports.CompanyInput) (*domain.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[profileID]
	if !ok || p.OwnerID != ownerID {
		return nil, domain.ErrCompanyNotFound
	}
	p.CompanyName = in.CompanyName
	p.Address = in.Address
	p.City = in.City
	p.State = in.State
	p.Country = in.Country
	p.ZipCode = in.ZipCode
	p.LogoURL = in.LogoURL
	p.BannerURL = in.BannerURL
	p.UpdatedAt = time.Now().UTC()
	clone := *p
	return &clone, nil
}

func (r *stubCompanyRepo) Delete(_ context.Context, ownerID, profileID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[profileID]
	if !ok || p.OwnerID != ownerID {
		return domain.ErrCompanyNotFound
	}
	delete(r.profiles, profileID)
	return nil
}

func TestCompanyService_CreateAndList(t *testing.T) {
	svc := NewCompanyService(newStubCompanyRepo())

	created, err := svc.Create(context.Background(), 1, ports.CompanyInput{
		CompanyName: "Acme",
		Address:     "1 Main St",
		City:        "Springfield",
		State:       "IL",
		Country:     "US",
		ZipCode:     "62701",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.OwnerID != 1 {
		t.Fatalf("expected owner 1, got %d", created.OwnerID)
	}

	mine, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(mine))
	}

	theirs, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List other owner: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("owner 2 must not see owner 1's profiles, got %d", len(theirs))
	}
}

func TestCompanyService_UpdateScopedToOwner(t *testing.T) {
	svc := NewCompanyService(newStubCompanyRepo())

	created, err := svc.Create(context.Background(), 1, ports.CompanyInput{CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(context.Background(), 2, created.ID, ports.CompanyInput{CompanyName: "Hijack"}); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound for non-owner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), 1, created.ID, ports.CompanyInput{CompanyName: "Acme Corp"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CompanyName != "Acme Corp" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestCompanyService_DeleteScopedToOwner(t *testing.T) {
	svc := NewCompanyService(newStubCompanyRepo())

	created, err := svc.Create(context.Background(), 1, ports.CompanyInput{CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), 2, created.ID); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), 1, created.ID); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound after delete, got %v", err)
	}
}
