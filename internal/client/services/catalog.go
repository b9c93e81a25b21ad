package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/usercatalog/internal/client/client"
	"github.com/dmitrijs2005/usercatalog/internal/client/debounce"
	"github.com/dmitrijs2005/usercatalog/internal/client/models"
	"github.com/dmitrijs2005/usercatalog/internal/client/projection"
	"github.com/dmitrijs2005/usercatalog/internal/client/store"
	"github.com/dmitrijs2005/usercatalog/internal/logging"
)

// ErrSuperseded is returned by Load and Refresh when their result was
// dropped because newer work started first.
var ErrSuperseded = errors.New("fetch superseded")

// ViewKind tells the presentation which body to render. Loading and
// errors replace the rows.
type ViewKind int

const (
	ViewIdle ViewKind = iota
	ViewLoading
	ViewError
	ViewEmpty
	ViewRows
)

// View is everything the table needs.
type View struct {
	Kind    ViewKind
	Message string
	Rows    []models.User
	Query   string
	Sort    models.SortState
}

type Catalog struct {
	client    client.Client
	store     *store.Store
	projector *projection.Projector
	debouncer *debounce.Debouncer[string]
	logger    logging.Logger

	mu       sync.Mutex
	idle     *sync.Cond
	query    string
	sort     models.SortState
	pending  bool
	inflight int
	closed   bool
	onChange func()

	form *FormDialog
	del  *DeleteDialog
}

// NewCatalog builds a catalogue session over c. Query changes are debounced
// by interval.
func NewCatalog(c client.Client, interval time.Duration, logger logging.Logger) *Catalog {
	if logger == nil {
		logger = logging.Nop()
	}
	cat := &Catalog{
		client:    c,
		store:     store.New(),
		projector: projection.NewProjector(),
		logger:    logger,
		sort:      models.DefaultSort(),
	}
	cat.idle = sync.NewCond(&cat.mu)
	cat.debouncer = debounce.New(interval, cat.debouncedFetch)
	cat.form = &FormDialog{c: cat}
	cat.del = &DeleteDialog{c: cat}
	return cat
}

// OnChange registers fn to run after every state change. fn runs outside
// the catalog lock and may call View.
func (c *Catalog) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

func (c *Catalog) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Store exposes the cached list for read access.
func (c *Catalog) Store() *store.Store {
	return c.store
}

func (c *Catalog) Form() *FormDialog {
	return c.form
}

func (c *Catalog) Delete() *DeleteDialog {
	return c.del
}

// Query returns the current search text.
func (c *Catalog) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetQuery changes the search text and schedules a debounced fetch for it.
func (c *Catalog) SetQuery(q string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.query = q
	c.pending = true
	c.debouncer.Trigger(q)
	c.mu.Unlock()

	c.notify()
}

// Load fetches the list for the current query right away, cancelling any
// pending debounced fetch. It is used for the initial load.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrSuperseded
	}
	tok := c.debouncer.Supersede()
	q := c.query
	c.pending = false
	c.inflight++
	c.mu.Unlock()

	return c.fetch(ctx, tok, q)
}

// Refresh re-fetches the current query.
func (c *Catalog) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

func (c *Catalog) debouncedFetch(tok debounce.Token, q string) {
	c.mu.Lock()
	if c.closed || !c.debouncer.Current(tok) {
		c.mu.Unlock()
		return
	}
	c.pending = false
	c.inflight++
	c.mu.Unlock()

	_ = c.fetch(context.Background(), tok, q)
}

func (c *Catalog) fetch(ctx context.Context, tok debounce.Token, q string) error {
	defer func() {
		c.mu.Lock()
		c.inflight--
		c.idle.Broadcast()
		c.mu.Unlock()
	}()

	c.mu.Lock()
	if !c.debouncer.Current(tok) {
		c.mu.Unlock()
		return ErrSuperseded
	}
	c.store.BeginLoad()
	c.mu.Unlock()
	c.notify()

	c.logger.Debug(ctx, "fetching users", "query", q)
	users, err := c.client.List(ctx, q)

	c.mu.Lock()
	if !c.debouncer.Current(tok) {
		c.mu.Unlock()
		c.logger.Debug(ctx, "discarding superseded fetch", "query", q)
		return ErrSuperseded
	}
	if err != nil {
		c.store.Fail(DisplayError(err, MsgLoadFailed))
	} else {
		c.store.Refresh(users)
	}
	c.mu.Unlock()
	c.notify()

	if err != nil {
		c.logger.Warn(ctx, "loading users failed", "query", q, "error", err)
		return err
	}
	c.logger.Debug(ctx, "users loaded", "query", q, "count", len(users))
	return nil
}

// WaitIdle blocks until no fetch is pending or running, or ctx is done.
func (c *Catalog) WaitIdle(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		c.idle.Broadcast()
		c.mu.Unlock()
	})
	defer stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	for (c.pending || c.inflight > 0) && ctx.Err() == nil {
		c.idle.Wait()
	}
	return ctx.Err()
}

// SortBy applies the toggle policy to key.
func (c *Catalog) SortBy(key models.SortKey) models.SortState {
	c.mu.Lock()
	c.sort = c.sort.Toggle(key)
	s := c.sort
	c.mu.Unlock()

	c.notify()
	return s
}

func (c *Catalog) Sort() models.SortState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sort
}

// View derives the rows to display from the cached list, the query and the
// sort state.
func (c *Catalog) View() View {
	c.mu.Lock()
	q, s := c.query, c.sort
	c.mu.Unlock()

	snap := c.store.Snapshot()
	v := View{Query: q, Sort: s}

	switch snap.State.Phase {
	case store.Idle:
		v.Kind = ViewIdle
		return v
	case store.Loading:
		v.Kind = ViewLoading
		return v
	case store.Errored:
		v.Kind = ViewError
		v.Message = snap.State.Message
		return v
	}

	v.Rows = c.projector.Project(snap.Version, snap.Users, q, s)
	if len(v.Rows) == 0 {
		v.Kind = ViewEmpty
	} else {
		v.Kind = ViewRows
	}
	return v
}

// Close tears the session down: the pending fetch is cancelled and any
// fetch still running will be ignored when it resolves.
func (c *Catalog) Close() {
	c.mu.Lock()
	c.closed = true
	c.pending = false
	c.debouncer.Stop()
	c.idle.Broadcast()
	c.mu.Unlock()
}
