// internal/pkg/session/store.go
package session

import (
	"context"

	"jeyamcars-service/internal/domain/auth"
)

// Store persists the single admin session under one named slot. Load
// returns (nil, nil) when the slot is empty so callers can tell "not
// logged in" apart from a storage failure.
type Store interface {
	Load(ctx context.Context) (*auth.Session, error)
	Save(ctx context.Context, s *auth.Session) error
	Clear(ctx context.Context) error
}
