package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/usercatalog/internal/client/client"
	"github.com/dmitrijs2005/usercatalog/internal/client/config"
	"github.com/dmitrijs2005/usercatalog/internal/client/models"
	"github.com/dmitrijs2005/usercatalog/internal/client/services"
	"github.com/dmitrijs2005/usercatalog/internal/logging"
)

type App struct {
	config  *config.Config
	catalog *services.Catalog
	reader  *bufio.Reader
	out     io.Writer
	width   func() int
	logger  logging.Logger
}

// NewApp builds the client for c.APIURL and a catalogue session over it.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	apiClient, err := client.NewUsersClient(c.APIURL, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	return newApp(c, services.NewCatalog(apiClient, c.DebounceInterval, logger), os.Stdin, os.Stdout, logger), nil
}

func newApp(c *config.Config, cat *services.Catalog, in io.Reader, out io.Writer, logger logging.Logger) *App {
	a := &App{
		config:  c,
		catalog: cat,
		reader:  bufio.NewReader(in),
		out:     out,
		logger:  logger,
	}
	a.width = func() int { return terminalWidth(out) }
	return a
}

// Run loads the list, prints it and serves commands until exit, EOF or ctx
// cancellation. The catalogue session is torn down on return.
func (a *App) Run(ctx context.Context) {
	defer a.catalog.Close()

	fmt.Fprintf(a.out, "User catalogue at %s (type 'help' for commands)\n", a.config.APIURL)

	if err := a.catalog.Load(ctx); err != nil {
		a.logger.Warn(ctx, "initial load failed", "error", err)
	}
	a.render()

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) render() {
	renderTable(a.out, a.catalog.View(), a.width())
}

// status is shown in the prompt: active search text and sort column.
func (a *App) status() string {
	var parts []string
	if q := a.catalog.Query(); q != "" {
		parts = append(parts, fmt.Sprintf("q=%q", q))
	}
	s := a.catalog.Sort()
	parts = append(parts, string(s.Key)+sortMarker(s.Direction))
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) findUser(id string) (models.User, error) {
	u, ok := a.catalog.Store().Find(models.ID(id))
	if !ok {
		return models.User{}, fmt.Errorf("no user with id %q in the list", id)
	}
	return u, nil
}
