package ports

import (
	"context"

	"github.com/identitykit/rbac-system/internal/core/domain"
)

// SessionManager authenticates users and holds the single active session.
type SessionManager interface {
	Login(ctx context.Context, username, password string) error
	Logout()
	Register(ctx context.Context, username, password, email, role string) error
	Current() (domain.User, bool)
}
