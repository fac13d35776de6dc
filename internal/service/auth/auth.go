// internal/service/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	domain "jeyamcars-service/internal/domain/auth"
	xerrors "jeyamcars-service/internal/pkg/errors"
	jwtpkg "jeyamcars-service/internal/pkg/jwt"
	"jeyamcars-service/internal/pkg/session"
	"jeyamcars-service/internal/ws"
)

// State is the login state machine position.
type State int

const (
	StateLoggedOut State = iota
	StateLoggingIn
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateLoggingIn:
		return "logging_in"
	case StateLoggedIn:
		return "logged_in"
	default:
		return "logged_out"
	}
}

// AuthService gatekeeps the admin console. Login state is held in
// memory and mirrored into the durable session store on every change,
// so a login survives a restart even though the catalog does not.
type AuthService struct {
	verifier CredentialVerifier
	store    session.Store
	tokens   *jwtpkg.Manager
	notifier ws.Notifier
	logger   *zap.Logger

	mu      sync.Mutex
	state   State
	current *domain.Session
}

// NewAuthService wires the service and restores any persisted session
// from the durable slot.
func NewAuthService(
	verifier CredentialVerifier,
	store session.Store,
	tokens *jwtpkg.Manager,
	notifier ws.Notifier,
	logger *zap.Logger,
) (*AuthService, error) {
	s := &AuthService{
		verifier: verifier,
		store:    store,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	restored, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if restored != nil && restored.Authenticated && restored.User != nil {
		s.state = StateLoggedIn
		s.current = restored
		logger.Info("session restored",
			zap.String("username", restored.User.Username),
			zap.Time("logged_in_at", restored.LoggedInAt),
		)
	}

	return s, nil
}

// Login verifies the credentials against the fixed account. The
// in-progress state is visible while the verifier round-trip runs.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, xerrors.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.state = StateLoggingIn
	s.mu.Unlock()

	user, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		s.mu.Lock()
		if s.state == StateLoggingIn {
			s.state = StateLoggedOut
		}
		s.mu.Unlock()

		if errors.Is(err, xerrors.ErrInvalidCredentials) {
			s.logger.Warn("login failed", zap.String("username", username))
			s.notifier.Failure("Invalid username or password")
		}
		return nil, err
	}

	sess := &domain.Session{
		Authenticated: true,
		User:          user,
		LoggedInAt:    time.Now().UTC(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		s.mu.Lock()
		s.state = StateLoggedOut
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	token, expiresAt, err := s.tokens.Generate(*user)
	if err != nil {
		s.mu.Lock()
		s.state = StateLoggedOut
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.state = StateLoggedIn
	s.current = sess
	s.mu.Unlock()

	s.logger.Info("login succeeded", zap.String("username", user.Username))
	s.notifier.Success("Logged in successfully")

	return &domain.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        *user,
	}, nil
}

// Logout clears the in-memory state and the durable slot.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = StateLoggedOut
	s.current = nil
	s.mu.Unlock()

	s.logger.Info("logged out")
	s.notifier.Success("Logged out successfully")
	return nil
}

// ValidateToken admits a bearer token only while its session is still
// present in the durable store, so logout revokes outstanding tokens.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*jwtpkg.Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	sess, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil || !sess.Authenticated || sess.User == nil || sess.User.Username != claims.Username {
		return nil, xerrors.ErrSessionExpired
	}

	return claims, nil
}

// State returns the login state machine position.
func (s *AuthService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether an admin is logged in.
func (s *AuthService) IsAuthenticated() bool {
	return s.State() == StateLoggedIn
}

// Current returns the logged-in user, or nil.
func (s *AuthService) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.User == nil {
		return nil
	}
	user := *s.current.User
	return &user
}
