package domain

// UserStatus represents the account state of a user.
type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

// Default role names. Users carry the role by name, not by id.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

// User models an identity in the system. Password is compared verbatim at
// login; it is stored as-is for parity with the seeded credentials.
type User struct {
	ID       int64      `json:"id" bson:"id"`
	Username string     `json:"username" bson:"username"`
	Password string     `json:"password" bson:"password"`
	Email    string     `json:"email,omitempty" bson:"email,omitempty"`
	Role     string     `json:"role" bson:"role"`
	Status   UserStatus `json:"status" bson:"status"`
}

// SeedUsernames are the usernames present from first run. They can never be
// deleted from the user collection.
var SeedUsernames = []string{RoleAdmin, RoleEditor, RoleUser}

// IsSeedUsername reports whether username belongs to a seeded default user.
func IsSeedUsername(username string) bool {
	for _, name := range SeedUsernames {
		if name == username {
			return true
		}
	}
	return false
}
