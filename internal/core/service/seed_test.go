package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/identitykit/rbac-system/internal/core/domain"
	"github.com/identitykit/rbac-system/internal/core/ports"
	"github.com/identitykit/rbac-system/internal/infrastructure/db/memory"
)

func TestEnsureSeedData_FirstRun(t *testing.T) {
	store := memory.NewStore()
	if err := EnsureSeedData(context.Background(), store, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var users []domain.User
	if err := store.Load(context.Background(), ports.CollectionUsers, &users); err != nil {
		t.Fatalf("load users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 seeded users, got %d", len(users))
	}
	if users[0].Username != "admin" || users[0].Password != "admin123" || users[0].Status != domain.StatusActive {
		t.Fatalf("unexpected admin seed: %+v", users[0])
	}

	var roles []domain.Role
	if err := store.Load(context.Background(), ports.CollectionRoles, &roles); err != nil {
		t.Fatalf("load roles: %v", err)
	}
	if len(roles) != 3 {
		t.Fatalf("expected 3 seeded roles, got %d", len(roles))
	}
	admin := roles[0]
	if admin.ID != 1 || admin.Name != domain.RoleAdmin {
		t.Fatalf("unexpected admin role: %+v", admin)
	}
	want := domain.Permissions{Read: true, Write: true, Delete: true, Admin: true}
	if admin.Permissions != want {
		t.Fatalf("unexpected admin permissions: %+v", admin.Permissions)
	}
	if roles[2].Permissions != (domain.Permissions{Read: true}) {
		t.Fatalf("unexpected user permissions: %+v", roles[2].Permissions)
	}
}

func TestEnsureSeedData_CollectionsSeededIndependently(t *testing.T) {
	store := memory.NewStore()
	existing := []domain.User{{ID: 9, Username: "solo", Password: "pw", Role: "user", Status: domain.StatusActive}}
	if err := store.Save(context.Background(), ports.CollectionUsers, existing); err != nil {
		t.Fatalf("save users: %v", err)
	}

	if err := EnsureSeedData(context.Background(), store, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// a non-empty user collection is accepted as-is, even without the defaults
	var users []domain.User
	_ = store.Load(context.Background(), ports.CollectionUsers, &users)
	if len(users) != 1 || users[0].Username != "solo" {
		t.Fatalf("existing users should be untouched, got %+v", users)
	}

	// the empty role collection is still seeded
	var roles []domain.Role
	_ = store.Load(context.Background(), ports.CollectionRoles, &roles)
	if len(roles) != 3 {
		t.Fatalf("expected 3 seeded roles, got %d", len(roles))
	}
}

func TestEnsureSeedData_Idempotent(t *testing.T) {
	store := memory.NewStore()
	for i := 0; i < 2; i++ {
		if err := EnsureSeedData(context.Background(), store, zerolog.Nop()); err != nil {
			t.Fatalf("seed run %d failed: %v", i, err)
		}
	}

	var users []domain.User
	_ = store.Load(context.Background(), ports.CollectionUsers, &users)
	if len(users) != 3 {
		t.Fatalf("expected 3 users after repeated seeding, got %d", len(users))
	}
}

func TestSeedUsers_ReturnsCopy(t *testing.T) {
	creds := SeedUsers()
	if len(creds) != 3 {
		t.Fatalf("expected 3 seed credentials, got %d", len(creds))
	}
	creds[0].Username = "mutated"
	if SeedUsers()[0].Username != "admin" {
		t.Fatalf("SeedUsers must not expose internal state")
	}
}
