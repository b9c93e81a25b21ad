// Package server wires the users API: storage backend, service layer and the
// HTTP endpoint, and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/usercatalog/internal/logging"
	"github.com/dmitrijs2005/usercatalog/internal/server/config"
	"github.com/dmitrijs2005/usercatalog/internal/server/httpserver"
	"github.com/dmitrijs2005/usercatalog/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/usercatalog/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	m, err := newRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return newApp(c, logger, m), nil
}

func newApp(c *config.Config, logger logging.Logger, m repomanager.RepositoryManager) *App {
	return &App{
		config:      c,
		logger:      logger,
		repomanager: m,
		userService: services.NewUserService(m),
	}
}

// newRepositoryManager opens PostgreSQL and applies migrations when dsn is
// set, and falls back to the in-memory store otherwise.
func newRepositoryManager(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
	if dsn == "" {
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	m, err := repomanager.OpenPostgres(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, err
	}
	return m, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpserver.NewHTTPServer(app.config.EndpointAddr, app.logger, app.userService, app.config.AllowedOrigins)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a SIGINT, SIGTERM or SIGQUIT arrives,
// then releases the storage backend.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddr, "postgres", app.config.DatabaseDSN != "")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(context.Background(), "error closing storage", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
