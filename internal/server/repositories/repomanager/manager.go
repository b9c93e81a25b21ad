// Package repomanager vends the users repository for the configured storage
// backend and runs its schema migrations.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/usercatalog/internal/server/repositories/users"
)

type RepositoryManager interface {
	// Users returns the repository bound to the shared connection.
	Users() users.Repository
	// WithTx runs fn with a repository bound to a transaction. fn's error
	// rolls it back.
	WithTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error
	RunMigrations(ctx context.Context) error
	Close() error
}
