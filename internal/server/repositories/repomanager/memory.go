package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/usercatalog/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps users in process memory. Transactions are
// serialized and cannot be rolled back.
type MemoryRepositoryManager struct {
	mu    sync.Mutex
	users *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, m.users)
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close() error { return nil }
