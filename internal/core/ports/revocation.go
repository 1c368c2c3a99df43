package ports

import (
	"context"
	"time"
)

// RevocationList tracks session tokens invalidated before their natural
// expiry. Entries only need to outlive the token, so implementations may
// expire them at the token's own deadline.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
