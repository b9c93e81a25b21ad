package users

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/usercatalog/internal/server/models"
)

// MemoryRepository keeps users in insertion order in process memory.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) List(ctx context.Context, q string) ([]models.User, error) {
	q = strings.ToLower(strings.TrimSpace(q))

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		if r.users[i].Matches(q) {
			out = append(out, r.users[i])
		}
	}
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	u := r.users[i]
	return &u, nil
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, *user)
	return user, nil
}

// Update overwrites the editable fields; id and creation time are kept.
func (r *MemoryRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(user.ID)
	if i < 0 {
		return nil, ErrNotFound
	}
	r.users[i].Name = user.Name
	r.users[i].Email = user.Email
	r.users[i].Role = user.Role

	u := r.users[i]
	return &u, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.users = append(r.users[:i:i], r.users[i+1:]...)
	return nil
}

func (r *MemoryRepository) indexOf(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
