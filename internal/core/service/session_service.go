package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/identitykit/rbac-system/internal/core/domain"
	"github.com/identitykit/rbac-system/internal/core/ports"
	"github.com/identitykit/rbac-system/internal/metrics"
)

// SessionService authenticates against the identity registry and holds the
// single active session. Sessions are process-local and never persisted; a
// restart always returns to the logged-out state.
//
// Not safe for concurrent use.
type SessionService struct {
	identity ports.IdentityRegistry
	current  *domain.User
	log      zerolog.Logger
}

func NewSessionService(identity ports.IdentityRegistry, log zerolog.Logger) *SessionService {
	return &SessionService{identity: identity, log: log}
}

// Login authenticates with an exact match on username and password. On
// success the session is set to the matched user; on failure the session is
// left untouched and ErrInvalidCredentials is returned.
func (s *SessionService) Login(ctx context.Context, username, password string) error {
	user, ok := s.identity.FindByCredentials(username, password)
	if !ok {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.log.Warn().Str("username", username).Msg("login failed")
		return domain.ErrInvalidCredentials
	}

	s.current = &user
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.ActiveSessions.Set(1)
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return nil
}

// Logout clears the session unconditionally. Calling it while logged out is
// a no-op.
func (s *SessionService) Logout() {
	if s.current != nil {
		s.log.Info().Str("username", s.current.Username).Msg("logged out")
	}
	s.current = nil
	metrics.ActiveSessions.Set(0)
}

// Register creates a new user account through the identity registry. The new
// user is not logged in automatically.
func (s *SessionService) Register(ctx context.Context, username, password, email, role string) error {
	if _, err := s.identity.Create(ctx, username, password, email, role); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return nil
}

// Current returns the authenticated user, if any.
func (s *SessionService) Current() (domain.User, bool) {
	if s.current == nil {
		return domain.User{}, false
	}
	return *s.current, true
}
