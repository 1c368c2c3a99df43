package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/verihub/company-registry/internal/api/middleware"
	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
)

type stubCompanyService struct {
	nextID   int64
	profiles map[int64]*domain.CompanyProfile
}

func newStubCompanyService() *stubCompanyService {
	return &stubCompanyService{profiles: make(map[int64]*domain.CompanyProfile)}
}

func (s *stubCompanyService) Create(_ context.Context, ownerID int64, in ports.CompanyInput) (*domain.CompanyProfile, error) {
	s.nextID++
	p := &domain.CompanyProfile{ID: s.nextID, OwnerID: ownerID, CompanyName: in.CompanyName}
	s.profiles[p.ID] = p
	return p, nil
}

func (s *stubCompanyService) List(_ context.Context, ownerID int64) ([]domain.CompanyProfile, error) {
	out := []domain.CompanyProfile{}
	for _, p := range s.profiles {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubCompanyService) Update(_ context.Context, ownerID, profileID int64, in ports.CompanyInput) (*domain.CompanyProfile, error) {
	p, ok := s.profiles[profileID]
	if !ok || p.OwnerID != ownerID {
		return nil, domain.ErrCompanyNotFound
	}
	p.CompanyName = in.CompanyName
	return p, nil
}

func (s *stubCompanyService) Delete(_ context.Context, ownerID, profileID int64) error {
	p, ok := s.profiles[profileID]
	if !ok || p.OwnerID != ownerID {
		return domain.ErrCompanyNotFound
	}
	delete(s.profiles, profileID)
	return nil
}

func authedContext(method, target, body string, user domain.CurrentUser) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONContext(method, target, body)
	c.Set(middleware.CurrentUserKey, user)
	return c, rec
}

var owner = domain.CurrentUser{ID: 1, Email: "a@x.com", FullName: "A"}

func TestCompanyHandler_Create(t *testing.T) {
	h := NewCompanyHandler(newStubCompanyService())

	c, rec := authedContext(http.MethodPost, "/company/register",
		`{"company_name":"Acme","address":"1 Main St","city":"Springfield","state":"IL","country":"US","zip_code":"62701"}`,
		owner)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"owner_id":1`) {
		t.Fatalf("owner not taken from context: %s", rec.Body.String())
	}
}

func TestCompanyHandler_Create_RequiresIdentity(t *testing.T) {
	h := NewCompanyHandler(newStubCompanyService())

	c, _ := newJSONContext(http.MethodPost, "/company/register", `{"company_name":"Acme"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
}

func TestCompanyHandler_Update_NotOwned(t *testing.T) {
	svc := newStubCompanyService()
	h := NewCompanyHandler(svc)

	c, _ := authedContext(http.MethodPost, "/company/register", `{"company_name":"Acme"}`, owner)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	intruder := domain.CurrentUser{ID: 2, Email: "b@x.com", FullName: "B"}
	c, _ = authedContext(http.MethodPut, "/company/profile/1", `{"company_name":"Hijack"}`, intruder)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound for non-owner, got %v", err)
	}
}

func TestCompanyHandler_Update_BadParam(t *testing.T) {
	h := NewCompanyHandler(newStubCompanyService())

	c, _ := authedContext(http.MethodPut, "/company/profile/abc", `{"company_name":"Acme"}`, owner)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound for bad id, got %v", err)
	}
}

func TestCompanyHandler_Delete(t *testing.T) {
	svc := newStubCompanyService()
	h := NewCompanyHandler(svc)

	c, _ := authedContext(http.MethodPost, "/company/register", `{"company_name":"Acme"}`, owner)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	c, rec := authedContext(http.MethodDelete, "/company/profile/1", "", owner)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = authedContext(http.MethodDelete, "/company/profile/1", "", owner)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound after delete, got %v", err)
	}
}

func TestCompanyHandler_List_ScopedToOwner(t *testing.T) {
	svc := newStubCompanyService()
	h := NewCompanyHandler(svc)

	c, _ := authedContext(http.MethodPost, "/company/register", `{"company_name":"Acme"}`, owner)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := domain.CurrentUser{ID: 2, Email: "b@x.com", FullName: "B"}
	c, rec := authedContext(http.MethodGet, "/company/profiles", "", other)
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty list for other owner, got %s", rec.Body.String())
	}
}
