// Package controller holds the terminal client's view of the todo server: a
// mirror of the last fetched todos and categories, the per-item deferred
// deletion timers started by completing a todo, and the single-slot undo
// prompt. Controller methods are the only mutators of that state.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-todo-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

// NewCategory is the category picker value that means "use NewTodo.NewCategoryName".
const NewCategory = "__new__"

// Default timings for the completion grace period.
const (
	DefaultDeleteDelay = 5 * time.Second
	DefaultUndoTimeout = 5 * time.Second
)

// ErrCreateInProgress is returned by CreateTodo while another create is in flight.
var ErrCreateInProgress = errors.New("a create is already in progress")

// Banner messages used when a failure carries no server detail.
const (
	msgLoadFailed   = "Failed to load todos"
	msgCreateFailed = "Failed to create todo"
	msgUpdateFailed = "Failed to update todo"
	msgDeleteFailed = "Failed to delete todo"
)

// NewTodo is the input of CreateTodo.
type NewTodo struct {
	Text            string
	Category        string
	NewCategoryName string
}

// category resolves the picker sentinel to the free-text name.
func (n NewTodo) category() string {
	if n.Category == NewCategory || strings.TrimSpace(n.NewCategoryName) != "" {
		return n.NewCategoryName
	}
	return n.Category
}

// Config holds the controller's timings. Zero values select the defaults.
type Config struct {
	DeleteDelay time.Duration
	UndoTimeout time.Duration
}

// Option customizes a Controller.
type Option func(*Controller)

// WithScheduler replaces the wall-clock timer facility.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithClock replaces time.Now for completion timestamps in the mirror.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller coordinates user actions against the todo server and keeps the
// local mirror in sync. It is safe for concurrent use; API calls are made
// without holding the lock.
type Controller struct {
	api         ports.TodoAPI
	sched       Scheduler
	now         func() time.Time
	logger      *slog.Logger
	deleteDelay time.Duration
	undoTimeout time.Duration

	// base is used by timer callbacks and canceled by Close.
	base   context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	todos      []todo.Todo
	categories []string
	filter     string
	deleting   map[string]bool
	loading    int
	creating   bool
	banner     string
	timers     deletionTimers
	undo       undoNotice
	closed     bool
	subs       []func()
}

// New creates a Controller backed by api.
func New(api ports.TodoAPI, cfg Config, opts ...Option) *Controller {
	base, cancel := context.WithCancel(context.Background())
	c := &Controller{
		api:         api,
		sched:       wallClock{},
		now:         time.Now,
		logger:      slog.New(slog.DiscardHandler),
		deleteDelay: cfg.DeleteDelay,
		undoTimeout: cfg.UndoTimeout,
		base:        base,
		cancel:      cancel,
		deleting:    make(map[string]bool),
		timers:      newDeletionTimers(),
	}
	if c.deleteDelay <= 0 {
		c.deleteDelay = DefaultDeleteDelay
	}
	if c.undoTimeout <= 0 {
		c.undoTimeout = DefaultUndoTimeout
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to be called after every state change. fn runs on
// the goroutine that made the change and must not block.
func (c *Controller) Subscribe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Todos:      c.todos,
		Categories: c.categories,
		Filter:     c.filter,
		Deleting:   c.deleting,
		Pending:    c.timers.ids(),
		Loading:    c.loading > 0,
		Creating:   c.creating,
		Error:      c.banner,
	}
	if c.undo.open {
		s.Undo = &UndoNotice{ID: c.undo.id, Text: c.undo.text}
	}
	return s.clone()
}

// Refresh refetches todos for the current filter and the category list.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	filter := c.filter
	c.mu.Unlock()
	return c.load(ctx, filter)
}

// SetFilter narrows the list to one category (empty for all) and refreshes.
func (c *Controller) SetFilter(ctx context.Context, category string) error {
	category = strings.TrimSpace(category)
	c.mu.Lock()
	c.filter = category
	c.mu.Unlock()
	return c.load(ctx, category)
}

// load fetches todos and categories concurrently. A categories failure is
// logged and ignored. A todos failure sets the banner and keeps the current
// list. Results for a filter that is no longer current are dropped.
func (c *Controller) load(ctx context.Context, filter string) error {
	c.update(func() {
		c.loading++
		c.banner = ""
	})

	var (
		todos      []todo.Todo
		categories []string
	)
	errs := fanout.Settle(ctx,
		func(ctx context.Context) error {
			var err error
			todos, err = c.api.ListTodos(ctx, todo.Filter{Category: filter})
			return err
		},
		func(ctx context.Context) error {
			var err error
			categories, err = c.api.ListCategories(ctx)
			return err
		},
	)
	todosErr, categoriesErr := errs[0], errs[1]

	if categoriesErr != nil {
		c.logger.WarnContext(ctx, "failed to load categories",
			slog.String("error", categoriesErr.Error()),
		)
	}
	if todosErr != nil {
		c.logger.WarnContext(ctx, "failed to load todos",
			slog.String("filter", filter),
			slog.String("error", todosErr.Error()),
		)
	}

	c.update(func() {
		c.loading--
		if categoriesErr == nil {
			c.categories = categories
		}
		if filter != c.filter {
			return
		}
		if todosErr != nil {
			c.banner = userMessage(todosErr, msgLoadFailed)
			return
		}
		c.todos = todos
	})
	return todosErr
}

// CreateTodo creates a todo and then refreshes. On failure the banner is
// set and the error is returned so the form can keep its input.
func (c *Controller) CreateTodo(ctx context.Context, in NewTodo) (*todo.Todo, error) {
	c.mu.Lock()
	if c.creating {
		c.mu.Unlock()
		return nil, ErrCreateInProgress
	}
	c.creating = true
	c.mu.Unlock()
	c.notify()

	defer c.update(func() { c.creating = false })

	created, err := c.api.CreateTodo(ctx, in.Text, in.category())
	if err != nil {
		c.logger.WarnContext(ctx, "failed to create todo", slog.String("error", err.Error()))
		c.update(func() { c.banner = userMessage(err, msgCreateFailed) })
		return nil, err
	}

	c.logger.DebugContext(ctx, "todo created", slog.String("todo_id", created.ID))
	_ = c.Refresh(ctx)
	return created, nil
}

// ToggleDone sets a todo's done flag. Completing a todo schedules its
// deletion and opens the undo prompt for it; reopening cancels both. On
// failure the banner is set and the todo list is refetched.
func (c *Controller) ToggleDone(ctx context.Context, id string, done bool) error {
	updated, err := c.api.UpdateTodo(ctx, id, todo.Patch{Done: todo.Some(done)})
	if err != nil {
		c.logger.WarnContext(ctx, "failed to update todo",
			slog.String("todo_id", id),
			slog.String("error", err.Error()),
		)
		c.update(func() { c.banner = userMessage(err, msgUpdateFailed) })
		c.refetchTodos(ctx)
		return err
	}

	c.update(func() {
		text := updated.Text
		now := c.now()
		for i := range c.todos {
			if c.todos[i].ID != id {
				continue
			}
			c.todos[i].Done = done
			c.todos[i].CompletedAt = nil
			if done {
				c.todos[i].CompletedAt = &now
			}
			text = c.todos[i].Text
		}

		if !done {
			c.timers.cancel(id)
			c.undo.closeIf(id)
			return
		}
		if c.closed {
			return
		}
		c.timers.schedule(c.sched, id, c.deleteDelay, func(seq uint64) { c.deletionDue(id, seq) })
		c.undo.show(c.sched, id, text, c.undoTimeout, c.undoExpired)
	})
	return nil
}

// DeleteTodo deletes a todo. A second call for an ID whose deletion is in
// flight is ignored.
func (c *Controller) DeleteTodo(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.deleting[id] {
		c.mu.Unlock()
		return nil
	}
	c.deleting[id] = true
	c.mu.Unlock()
	c.notify()

	defer c.update(func() { delete(c.deleting, id) })

	if _, err := c.api.DeleteTodo(ctx, id); err != nil {
		c.logger.WarnContext(ctx, "failed to delete todo",
			slog.String("todo_id", id),
			slog.String("error", err.Error()),
		)
		c.update(func() { c.banner = userMessage(err, msgDeleteFailed) })
		return err
	}

	c.update(func() {
		c.todos = slices.DeleteFunc(c.todos, func(t todo.Todo) bool { return t.ID == id })
		c.timers.cancel(id)
		c.undo.closeIf(id)
	})
	c.refetchCategories(ctx)
	return nil
}

// Undo reopens the todo bound to the undo prompt and closes the prompt. It
// does nothing when no prompt is open.
func (c *Controller) Undo(ctx context.Context) error {
	c.mu.Lock()
	if !c.undo.open {
		c.mu.Unlock()
		return nil
	}
	id := c.undo.id
	c.timers.cancel(id)
	c.mu.Unlock()

	err := c.ToggleDone(ctx, id, false)
	c.update(func() { c.undo.closeIf(id) })
	return err
}

// DismissUndo closes the undo prompt without reopening the todo. The pending
// deletion, if any, still runs.
func (c *Controller) DismissUndo() {
	c.update(c.undo.close)
}

// DismissError clears the banner.
func (c *Controller) DismissError() {
	c.update(func() { c.banner = "" })
}

// Close cancels every pending timer and the base context used by timer
// callbacks. Timers that fire afterwards do nothing.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.timers.cancelAll()
	c.undo.close()
	c.mu.Unlock()
	c.cancel()
}

func (c *Controller) deletionDue(id string, seq uint64) {
	c.mu.Lock()
	run := !c.closed && c.timers.claim(id, seq)
	c.mu.Unlock()
	if !run {
		return
	}
	c.logger.Debug("deferred deletion due", slog.String("todo_id", id))
	_ = c.DeleteTodo(c.base, id)
}

func (c *Controller) undoExpired(seq uint64) {
	c.mu.Lock()
	changed := !c.closed && c.undo.expire(seq)
	c.mu.Unlock()
	if changed {
		c.notify()
	}
}

// refetchTodos resynchronizes the list after a failed optimistic update. Its
// own failure is only logged; the originating error is already shown.
func (c *Controller) refetchTodos(ctx context.Context) {
	c.mu.Lock()
	filter := c.filter
	c.mu.Unlock()

	todos, err := c.api.ListTodos(ctx, todo.Filter{Category: filter})
	if err != nil {
		c.logger.WarnContext(ctx, "failed to refetch todos", slog.String("error", err.Error()))
		return
	}
	c.update(func() {
		if filter == c.filter {
			c.todos = todos
		}
	})
}

func (c *Controller) refetchCategories(ctx context.Context) {
	categories, err := c.api.ListCategories(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to refetch categories", slog.String("error", err.Error()))
		return
	}
	c.update(func() { c.categories = categories })
}

// update applies fn under the lock and then notifies subscribers.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) notify() {
	c.mu.Lock()
	subs := slices.Clone(c.subs)
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// userMessage returns the server's problem detail when err carries one, and
// fallback for transport and decoding failures.
func userMessage(err error, fallback string) string {
	var apiErr *ports.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
