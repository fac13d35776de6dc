// internal/service/auth/verifier.go
package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	domain "jeyamcars-service/internal/domain/auth"
	xerrors "jeyamcars-service/internal/pkg/errors"
)

// CredentialVerifier is the call boundary a real authentication
// backend would sit behind. Swapping in a remote verifier requires no
// interface change.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (*domain.User, error)
}

// StaticVerifier checks credentials against the single fixed admin
// account. The configured delay models the round-trip a remote
// verifier would take.
type StaticVerifier struct {
	user  domain.User
	hash  []byte
	delay time.Duration
}

// NewStaticVerifier hashes the configured password once so every
// verification goes through a real bcrypt compare.
func NewStaticVerifier(username, password string, delay time.Duration) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &StaticVerifier{
		user:  domain.User{ID: "1", Username: username, Role: domain.RoleAdmin},
		hash:  hash,
		delay: delay,
	}, nil
}

func (v *StaticVerifier) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	if v.delay > 0 {
		timer := time.NewTimer(v.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if username != v.user.Username {
		return nil, xerrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		return nil, xerrors.ErrInvalidCredentials
	}

	user := v.user
	return &user, nil
}
