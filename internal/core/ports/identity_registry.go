package ports

import (
	"context"

	"github.com/identitykit/rbac-system/internal/core/domain"
)

// UserPatch carries the fields of a user update. Nil fields are left
// untouched.
type UserPatch struct {
	Role   *string
	Status *domain.UserStatus
}

// IdentityRegistry manages the user collection.
type IdentityRegistry interface {
	Users() []domain.User
	Create(ctx context.Context, username, password, email, role string) (domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) error
	Delete(ctx context.Context, id int64) error
	FindByCredentials(username, password string) (domain.User, bool)
}
