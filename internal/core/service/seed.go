package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/identitykit/rbac-system/internal/core/domain"
	"github.com/identitykit/rbac-system/internal/core/ports"
)

var seedUsers = []domain.User{
	{ID: 1, Username: "admin", Password: "admin123", Email: "admin@example.com", Role: domain.RoleAdmin, Status: domain.StatusActive},
	{ID: 2, Username: "editor", Password: "editor123", Email: "editor@example.com", Role: domain.RoleEditor, Status: domain.StatusActive},
	{ID: 3, Username: "user", Password: "user123", Email: "user@example.com", Role: domain.RoleUser, Status: domain.StatusActive},
}

var seedRoles = []domain.Role{
	{ID: 1, Name: domain.RoleAdmin, Permissions: domain.Permissions{Read: true, Write: true, Delete: true, Admin: true}},
	{ID: 2, Name: domain.RoleEditor, Permissions: domain.Permissions{Read: true, Write: true}},
	{ID: 3, Name: domain.RoleUser, Permissions: domain.Permissions{Read: true}},
}

// EnsureSeedData populates the user and role collections with the default
// entities on first run. Each collection is checked independently: only an
// empty collection is seeded, anything already stored is used as-is.
func EnsureSeedData(ctx context.Context, store ports.DocumentStore, log zerolog.Logger) error {
	var users []domain.User
	if err := store.Load(ctx, ports.CollectionUsers, &users); err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if len(users) == 0 {
		if err := store.Save(ctx, ports.CollectionUsers, seedUsers); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		log.Info().Int("count", len(seedUsers)).Msg("seeded default users")
	}

	var roles []domain.Role
	if err := store.Load(ctx, ports.CollectionRoles, &roles); err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	if len(roles) == 0 {
		if err := store.Save(ctx, ports.CollectionRoles, seedRoles); err != nil {
			return fmt.Errorf("seed roles: %w", err)
		}
		log.Info().Int("count", len(seedRoles)).Msg("seeded default roles")
	}

	return nil
}

// SeedUsers returns the default credentials. The login screen lists these so
// a fresh install is usable without prior registration.
func SeedUsers() []domain.User {
	out := make([]domain.User, len(seedUsers))
	copy(out, seedUsers)
	return out
}
