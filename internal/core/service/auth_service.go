package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
	"github.com/verihub/company-registry/internal/token"
)

// AuthService bridges the federated identity provider and the local account
// store: it creates accounts at registration and exchanges verified
// assertions for session tokens at login.
type AuthService struct {
	users      ports.UserRepository
	assertions ports.AssertionVerifier
	tokens     *token.Service
	revoked    ports.RevocationList
}

// NewAuthService wires the auth service. revoked may be nil, in which case
// Logout is a no-op and tokens remain valid until expiry.
func NewAuthService(users ports.UserRepository, assertions ports.AssertionVerifier, tokens *token.Service, revoked ports.RevocationList) *AuthService {
	return &AuthService{users: users, assertions: assertions, tokens: tokens, revoked: revoked}
}

func (s *AuthService) Register(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.FirebaseUID == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: subject id and email are required", domain.ErrInvalidAssertion)
	}
	if in.SignupType == "" {
		in.SignupType = "e"
	}

	// The unique constraints on email and firebase_uid are the source of
	// truth; this pre-check only exists to give the common case a clean
	// error without relying on constraint ordering.
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrDuplicateAccount
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	return s.users.Create(ctx, in)
}

func (s *AuthService) Login(ctx context.Context, assertion string) (*ports.LoginResult, error) {
	ext, err := s.assertions.Verify(ctx, assertion)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByFirebaseUID(ctx, ext.SubjectID)
	if err != nil {
		return nil, err
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{Token: signed, User: user}, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, in ports.UpdateProfileInput) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, userID, in)
}

// Logout revokes the bearer token carried in rawHeader and reports whether a
// revocation was recorded. The token must still verify; revoking an
// already-invalid token is rejected the same way the auth middleware would
// reject it.
func (s *AuthService) Logout(ctx context.Context, rawHeader string) (bool, error) {
	if s.revoked == nil {
		return false, nil
	}

	raw, err := bearerToken(rawHeader)
	if err != nil {
		return false, err
	}
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return false, err
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return false, nil
	}
	if err := s.revoked.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return false, fmt.Errorf("revoke token: %w", err)
	}
	return true, nil
}

// bearerToken extracts the credential from an Authorization header value.
func bearerToken(rawHeader string) (string, error) {
	if rawHeader == "" {
		return "", domain.ErrNoToken
	}
	parts := strings.SplitN(rawHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrNoToken
	}
	return parts[1], nil
}

var _ ports.AuthService = (*AuthService)(nil)
