package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/verihub/company-registry/internal/core/domain"
	"github.com/verihub/company-registry/internal/core/ports"
	"github.com/verihub/company-registry/internal/token"
)

// IdentityVerifier resolves bearer tokens to the minimal identity
// projection. Verification is a pure read: the cheap cryptographic checks
// run first and the store is only consulted once the token is trusted.
type IdentityVerifier struct {
	tokens  *token.Service
	users   ports.UserRepository
	revoked ports.RevocationList
}

// NewIdentityVerifier wires the verifier. revoked may be nil to disable the
// revocation check.
func NewIdentityVerifier(tokens *token.Service, users ports.UserRepository, revoked ports.RevocationList) *IdentityVerifier {
	return &IdentityVerifier{tokens: tokens, users: users, revoked: revoked}
}

func (v *IdentityVerifier) Verify(ctx context.Context, rawHeader string) (domain.CurrentUser, error) {
	raw, err := bearerToken(rawHeader)
	if err != nil {
		return domain.CurrentUser{}, err
	}

	claims, err := v.tokens.Parse(raw)
	if err != nil {
		return domain.CurrentUser{}, err
	}

	if v.revoked != nil {
		revoked, err := v.revoked.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			return domain.CurrentUser{}, fmt.Errorf("revocation check: %w", err)
		}
		if revoked {
			return domain.CurrentUser{}, domain.ErrTokenRevoked
		}
	}

	user, err := v.users.FindByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.CurrentUser{}, domain.ErrUserGone
		}
		return domain.CurrentUser{}, err
	}

	return domain.CurrentUser{ID: user.ID, Email: user.Email, FullName: user.FullName}, nil
}

var _ ports.IdentityVerifier = (*IdentityVerifier)(nil)
