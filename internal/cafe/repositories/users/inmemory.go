package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/models"
	"github.com/dmitrijs2005/cybercafe/internal/common"
)

// InMemoryRepository keeps users in a map keyed by id, plus an ordered id
// slice so List is stable. A single REPL drives the registry today, but the
// lock keeps the uniqueness and listing invariants safe if a second actor
// ever appears.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string
}

var _ Repository = (*InMemoryRepository)(nil)

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return common.ErrorDuplicateUserID
	}
	r.users[user.ID] = user
	r.order = append(r.order, user.ID)
	return nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrorUserNotFound
	}
	return user, nil
}

func (r *InMemoryRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return common.ErrorUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return common.ErrorUserNotFound
	}
	delete(r.users, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.users[id])
	}
	return list, nil
}
