package service

import "github.com/identitykit/rbac-system/internal/core/domain"

// AccessDecision selects which management surfaces a session may use. The
// zero value exposes nothing.
type AccessDecision struct {
	ManageUsers bool
	ManageRoles bool
}

// Denied reports whether no management surface is exposed at all.
func (d AccessDecision) Denied() bool {
	return !d.ManageUsers && !d.ManageRoles
}

// Decide maps the session's role name to its management surfaces:
// administrators manage both users and roles, editors manage roles only,
// everyone else is denied. The comparison is against the role name literal,
// not the role's permission set.
func Decide(role string) AccessDecision {
	switch role {
	case domain.RoleAdmin:
		return AccessDecision{ManageUsers: true, ManageRoles: true}
	case domain.RoleEditor:
		return AccessDecision{ManageRoles: true}
	default:
		return AccessDecision{}
	}
}
