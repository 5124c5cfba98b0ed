package domain

import "strings"

// Permission keys in display order.
const (
	PermissionRead   = "read"
	PermissionWrite  = "write"
	PermissionDelete = "delete"
	PermissionAdmin  = "admin"
)

// Permissions is the fixed capability set a role may grant. Exactly these
// four keys exist; decoding drops anything else.
type Permissions struct {
	Read   bool `json:"read" bson:"read"`
	Write  bool `json:"write" bson:"write"`
	Delete bool `json:"delete" bson:"delete"`
	Admin  bool `json:"admin" bson:"admin"`
}

// Role is a named bundle of permissions assignable to users by name.
type Role struct {
	ID          int64       `json:"id" bson:"id"`
	Name        string      `json:"name" bson:"name"`
	Permissions Permissions `json:"permissions" bson:"permissions"`
}

// ProtectedRoleIDs are the ids of the default roles seeded on first run.
// Roles with these ids can never be deleted.
var ProtectedRoleIDs = []int64{1, 2, 3}

// IsProtectedRoleID reports whether id belongs to a default role.
func IsProtectedRoleID(id int64) bool {
	for _, protected := range ProtectedRoleIDs {
		if protected == id {
			return true
		}
	}
	return false
}

// Grants returns the names of the currently-true permissions.
func (p Permissions) Grants() []string {
	var grants []string
	if p.Read {
		grants = append(grants, PermissionRead)
	}
	if p.Write {
		grants = append(grants, PermissionWrite)
	}
	if p.Delete {
		grants = append(grants, PermissionDelete)
	}
	if p.Admin {
		grants = append(grants, PermissionAdmin)
	}
	return grants
}

// GrantList renders the granted permissions as a display string, e.g.
// "read, write".
func (p Permissions) GrantList() string {
	return strings.Join(p.Grants(), ", ")
}
