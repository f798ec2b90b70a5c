// Package session provides the server-side admin session store. The admin
// cookie only carries a signed session ID; lifetime is enforced here with a
// sliding expiry, so revocation is immediate and no authorization state
// lives in ambient globals.
package session

import (
	"context"
)

// Store tracks live admin sessions
type Store interface {
	// Create registers a new session and returns its ID
	Create(ctx context.Context) (string, error)
	// Touch reports whether the session is live and slides its expiry
	Touch(ctx context.Context, id string) (bool, error)
	// Delete removes a session; missing sessions are not an error
	Delete(ctx context.Context, id string) error
}
