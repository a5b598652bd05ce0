package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[types.Email]*model.User
}

func newUserRepository() *userRepository {
	return &userRepository{
		users: make(map[types.Email]*model.User),
	}
}

func copyUser(u *model.User) *model.User {
	copied := *u
	return &copied
}

func (r *userRepository) Put(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	stored := copyUser(user)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.users[stored.Email] = stored
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email types.Email) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "user not found", goerr.V("email", email))
	}

	return copyUser(u), nil
}

func (r *userRepository) ListCompleted(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*model.User, 0)
	for _, u := range r.users {
		if u.PreferencesCompleted {
			users = append(users, copyUser(u))
		}
	}

	return users, nil
}
