package ports

import (
	"context"

	"github.com/identitykit/rbac-system/internal/core/domain"
)

// RolePatch carries the fields of a role update. Nil fields are left
// untouched; a non-nil Permissions replaces the whole permission set.
type RolePatch struct {
	Name        *string
	Permissions *domain.Permissions
}

// RoleRegistry manages the role collection.
type RoleRegistry interface {
	Roles() []domain.Role
	Create(ctx context.Context, name string, permissions domain.Permissions) (domain.Role, error)
	Update(ctx context.Context, id int64, patch RolePatch) error
	Delete(ctx context.Context, id int64) error
	PermissionsFor(roleName string) domain.Permissions
}
