package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/identitykit/rbac-system/internal/core/domain"
	"github.com/identitykit/rbac-system/internal/core/ports"
	"github.com/identitykit/rbac-system/internal/metrics"
)

// RoleService implements the role registry over a cached collection. The
// in-memory cache is the source of truth during a run; the full collection
// is written back to the store after every mutation.
//
// Not safe for concurrent use: the system models a single interactive actor.
type RoleService struct {
	store ports.DocumentStore
	roles []domain.Role
	log   zerolog.Logger
}

// NewRoleService loads the role collection into memory. Run EnsureSeedData
// first so a fresh store starts with the default roles.
func NewRoleService(ctx context.Context, store ports.DocumentStore, log zerolog.Logger) (*RoleService, error) {
	var roles []domain.Role
	if err := store.Load(ctx, ports.CollectionRoles, &roles); err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	return &RoleService{store: store, roles: roles, log: log}, nil
}

// Roles returns a copy of the role collection in stored order.
func (s *RoleService) Roles() []domain.Role {
	out := make([]domain.Role, len(s.roles))
	copy(out, s.roles)
	return out
}

// Create appends a new role with a fresh unique id and persists the
// collection. Duplicate names are not rejected.
func (s *RoleService) Create(ctx context.Context, name string, permissions domain.Permissions) (domain.Role, error) {
	role := domain.Role{ID: s.nextID(), Name: name, Permissions: permissions}
	s.roles = append(s.roles, role)
	if err := s.persist(ctx); err != nil {
		return domain.Role{}, err
	}

	metrics.RoleMutationsTotal.WithLabelValues("create", "ok").Inc()
	s.log.Info().Int64("role_id", role.ID).Str("name", role.Name).Msg("role created")
	return role, nil
}

// Update merges patch into the role with the given id and persists. Nil
// patch fields are preserved; a present Permissions patch replaces the whole
// permission set. Unknown ids are a silent no-op.
func (s *RoleService) Update(ctx context.Context, id int64, patch ports.RolePatch) error {
	for i := range s.roles {
		if s.roles[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.roles[i].Name = *patch.Name
		}
		if patch.Permissions != nil {
			s.roles[i].Permissions = *patch.Permissions
		}
		if err := s.persist(ctx); err != nil {
			return err
		}
		metrics.RoleMutationsTotal.WithLabelValues("update", "ok").Inc()
		return nil
	}

	metrics.RoleMutationsTotal.WithLabelValues("update", "noop").Inc()
	s.log.Debug().Int64("role_id", id).Msg("update skipped, role not found")
	return nil
}

// Delete removes the role with the given id and persists. The default roles
// (ids 1-3) are refused with ErrProtectedEntity and the collection is left
// unchanged. Unknown ids are a silent no-op.
func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if domain.IsProtectedRoleID(id) {
		metrics.RoleMutationsTotal.WithLabelValues("delete", "refused").Inc()
		s.log.Warn().Int64("role_id", id).Msg("refused to delete default role")
		return domain.ErrProtectedEntity
	}

	for i := range s.roles {
		if s.roles[i].ID != id {
			continue
		}
		s.roles = append(s.roles[:i], s.roles[i+1:]...)
		if err := s.persist(ctx); err != nil {
			return err
		}
		metrics.RoleMutationsTotal.WithLabelValues("delete", "ok").Inc()
		s.log.Info().Int64("role_id", id).Msg("role deleted")
		return nil
	}

	metrics.RoleMutationsTotal.WithLabelValues("delete", "noop").Inc()
	return nil
}

// PermissionsFor resolves a role name to its permission set. An unknown role
// name resolves to no permissions at all.
func (s *RoleService) PermissionsFor(roleName string) domain.Permissions {
	for _, role := range s.roles {
		if role.Name == roleName {
			return role.Permissions
		}
	}
	return domain.Permissions{}
}

func (s *RoleService) nextID() int64 {
	var max int64
	for _, role := range s.roles {
		if role.ID > max {
			max = role.ID
		}
	}
	return max + 1
}

func (s *RoleService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, ports.CollectionRoles, s.roles); err != nil {
		return fmt.Errorf("save roles: %w", err)
	}
	return nil
}
