package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/ballboxd/ballboxd/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]user.User
	nextID int64
}

func NewUserRepository(seed []user.User) *UserRepository {
	users := make(map[int64]user.User, len(seed))
	var maxID int64
	for _, item := range seed {
		users[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &UserRepository{users: users, nextID: maxID}
}

func (r *UserRepository) Create(_ context.Context, item user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.users[item.ID] = item

	return item, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.users[id]
	return item, ok, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.users {
		if strings.EqualFold(item.Username, username) {
			return item, true, nil
		}
	}

	return user.User{}, false, nil
}
