// Package identity issues and verifies bearer tokens.
package identity

import (
	"context"
	"time"
)

// Principal is the authenticated caller attached to a request.
type Principal struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// RevocationStore remembers logged-out token ids until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
