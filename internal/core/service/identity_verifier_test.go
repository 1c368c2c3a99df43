package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
	"github.com/verihub/company-registry/internal/token"
)

func seedUser(t *testing.T, repo *stubUserRepo) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), ports.CreateUserInput{
		FirebaseUID: "u1",
		Email:       "a@x.com",
		FullName:    "A",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestIdentityVerifier_Success(t *testing.T) {
	repo := newStubUserRepo()
	tokens := newTokenService(t)
	user := seedUser(t, repo)

	signed, err := tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	v := NewIdentityVerifier(tokens, repo, nil)
	cu, err := v.Verify(context.Background(), "Bearer "+signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if cu.ID != user.ID || cu.Email != user.Email || cu.FullName != user.FullName {
		t.Fatalf("unexpected projection: %+v", cu)
	}
}

func TestIdentityVerifier_MissingHeader(t *testing.T) {
	repo := newStubUserRepo()
	v := NewIdentityVerifier(newTokenService(t), repo, nil)

	if _, err := v.Verify(context.Background(), ""); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
	if repo.lookups != 0 {
		t.Fatalf("store must not be queried, got %d lookups", repo.lookups)
	}
}

func TestIdentityVerifier_MalformedScheme(t *testing.T) {
	v := NewIdentityVerifier(newTokenService(t), newStubUserRepo(), nil)
	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		if _, err := v.Verify(context.Background(), header); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("header %q: expected ErrUnauthenticated, got %v", header, err)
		}
	}
}

func TestIdentityVerifier_WrongSecret_NoStoreQuery(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo)

	other, err := token.NewService("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("token.NewService: %v", err)
	}
	signed, err := other.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	repo.lookups = 0
	v := NewIdentityVerifier(newTokenService(t), repo, nil)
	if _, err := v.Verify(context.Background(), "Bearer "+signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if repo.lookups != 0 {
		t.Fatalf("store must not be queried for a forged token, got %d lookups", repo.lookups)
	}
}

func TestIdentityVerifier_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	tokens := newTokenService(t)
	user := seedUser(t, repo)

	signed, err := tokens.Issue(user.ID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	delete(repo.users, user.ID)

	v := NewIdentityVerifier(tokens, repo, nil)
	if _, err := v.Verify(context.Background(), "Bearer "+signed); !errors.Is(err, domain.ErrUserGone) {
		t.Fatalf("expected ErrUserGone, got %v", err)
	}
}

func TestIdentityVerifier_ErrorsAreUnauthenticated(t *testing.T) {
	repo := newStubUserRepo()
	tokens := newTokenService(t)
	v := NewIdentityVerifier(tokens, repo, nil)

	for _, header := range []string{"", "Bearer bogus"} {
		_, err := v.Verify(context.Background(), header)
		if !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("header %q: expected unauthenticated umbrella, got %v", header, err)
		}
	}
}
