package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/identitykit/rbac-system/internal/core/domain"
	"github.com/identitykit/rbac-system/internal/core/ports"
	"github.com/identitykit/rbac-system/internal/metrics"
)

// IdentityService implements the identity registry over a cached collection,
// mirroring RoleService: the in-memory cache is the source of truth and the
// full collection is written back after every mutation.
//
// Not safe for concurrent use.
type IdentityService struct {
	store ports.DocumentStore
	users []domain.User
	log   zerolog.Logger
}

// NewIdentityService loads the user collection into memory. Run
// EnsureSeedData first so a fresh store starts with the default users.
func NewIdentityService(ctx context.Context, store ports.DocumentStore, log zerolog.Logger) (*IdentityService, error) {
	var users []domain.User
	if err := store.Load(ctx, ports.CollectionUsers, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return &IdentityService{store: store, users: users, log: log}, nil
}

// Users returns a copy of the user collection in stored order.
func (s *IdentityService) Users() []domain.User {
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

// Create registers a new user with a fresh unique id and Active status.
// Usernames are unique: a case-sensitive collision is refused with
// ErrUserExists and the collection is left unchanged.
func (s *IdentityService) Create(ctx context.Context, username, password, email, role string) (domain.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			metrics.UserMutationsTotal.WithLabelValues("create", "refused").Inc()
			return domain.User{}, domain.ErrUserExists
		}
	}

	user := domain.User{
		ID:       s.nextID(),
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
		Status:   domain.StatusActive,
	}
	s.users = append(s.users, user)
	if err := s.persist(ctx); err != nil {
		return domain.User{}, err
	}

	metrics.UserMutationsTotal.WithLabelValues("create", "ok").Inc()
	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

// Update merges patch into the user with the given id and persists. Nil
// patch fields are preserved. Unknown ids are a silent no-op.
func (s *IdentityService) Update(ctx context.Context, id int64, patch ports.UserPatch) error {
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if patch.Role != nil {
			s.users[i].Role = *patch.Role
		}
		if patch.Status != nil {
			s.users[i].Status = *patch.Status
		}
		if err := s.persist(ctx); err != nil {
			return err
		}
		metrics.UserMutationsTotal.WithLabelValues("update", "ok").Inc()
		return nil
	}

	metrics.UserMutationsTotal.WithLabelValues("update", "noop").Inc()
	s.log.Debug().Int64("user_id", id).Msg("update skipped, user not found")
	return nil
}

// Delete removes the user with the given id and persists. Deleting any of
// the seeded default users is refused with ErrProtectedEntity and the
// collection is left unchanged. Unknown ids are a silent no-op.
func (s *IdentityService) Delete(ctx context.Context, id int64) error {
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if domain.IsSeedUsername(s.users[i].Username) {
			metrics.UserMutationsTotal.WithLabelValues("delete", "refused").Inc()
			s.log.Warn().Str("username", s.users[i].Username).Msg("refused to delete default user")
			return domain.ErrProtectedEntity
		}
		s.users = append(s.users[:i], s.users[i+1:]...)
		if err := s.persist(ctx); err != nil {
			return err
		}
		metrics.UserMutationsTotal.WithLabelValues("delete", "ok").Inc()
		s.log.Info().Int64("user_id", id).Msg("user deleted")
		return nil
	}

	metrics.UserMutationsTotal.WithLabelValues("delete", "noop").Inc()
	return nil
}

// FindByCredentials scans for an exact, case-sensitive match on both
// username and password.
func (s *IdentityService) FindByCredentials(username, password string) (domain.User, bool) {
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *IdentityService) nextID() int64 {
	var max int64
	for _, u := range s.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func (s *IdentityService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, ports.CollectionUsers, s.users); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}
