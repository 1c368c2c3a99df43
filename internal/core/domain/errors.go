package domain

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is the umbrella for every failure that must surface as a
// 401. The specific sentinels below wrap it so callers can branch with
// errors.Is on either the umbrella or the precise cause.
var ErrUnauthenticated = errors.New("not authorized")

var (
	// ErrNoToken means the Authorization header was absent or did not carry
	// a bearer-scheme credential.
	ErrNoToken = fmt.Errorf("%w: no token", ErrUnauthenticated)

	// ErrInvalidToken means the token failed signature or expiry checks.
	ErrInvalidToken = fmt.Errorf("%w: token failed", ErrUnauthenticated)

	// ErrTokenRevoked means the token was explicitly revoked before expiry.
	ErrTokenRevoked = fmt.Errorf("%w: token revoked", ErrUnauthenticated)

	// ErrUserGone means the token verified but its subject no longer exists
	// in the store (account deleted after issuance).
	ErrUserGone = fmt.Errorf("%w: user not found", ErrUnauthenticated)
)

var (
	// ErrDuplicateAccount is returned when registration collides with an
	// existing email or federated subject id.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrAccountNotFound is returned when a verified federated identity has
	// no local account yet (the caller must register first).
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAssertion is returned when the federated identity assertion
	// fails signature, issuer, or audience checks.
	ErrInvalidAssertion = errors.New("invalid identity assertion")

	// ErrCompanyNotFound is returned when a company profile does not exist
	// or is owned by a different user.
	ErrCompanyNotFound = errors.New("company profile not found")

	// ErrMissingSecret is a fatal startup condition: the process must not
	// serve without a configured signing secret.
	ErrMissingSecret = errors.New("token signing secret is not configured")
)
