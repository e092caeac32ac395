// Package tui is the terminal front end for the todo client. It renders the
// controller's state and turns key presses into controller actions.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/go-todo-service/internal/app/controller"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// Controller is the subset of *controller.Controller the view drives.
type Controller interface {
	Subscribe(fn func())
	Snapshot() controller.State
	Refresh(ctx context.Context) error
	SetFilter(ctx context.Context, category string) error
	CreateTodo(ctx context.Context, in controller.NewTodo) (*todo.Todo, error)
	ToggleDone(ctx context.Context, id string, done bool) error
	DeleteTodo(ctx context.Context, id string) error
	Undo(ctx context.Context) error
	DismissUndo()
	DismissError()
	Close()
}

// stateChangedMsg tells the model to re-read the controller snapshot.
type stateChangedMsg struct{}

// createdMsg reports the outcome of a create submitted from the form.
type createdMsg struct {
	err error
}

// actionDoneMsg reports the outcome of any other controller action. Failures
// already appear in the snapshot banner.
type actionDoneMsg struct {
	err error
}

// Model is the bubbletea model for the todo list.
type Model struct {
	ctx   context.Context
	ctrl  Controller
	keys  KeyMap
	help  help.Model
	state controller.State

	cursor int
	form   *addForm
	width  int
}

// New creates a Model bound to ctrl. ctx is passed to every controller call.
func New(ctx context.Context, ctrl Controller) Model {
	return Model{
		ctx:   ctx,
		ctrl:  ctrl,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		state: ctrl.Snapshot(),
	}
}

// Init loads the first page of todos.
func (m Model) Init() tea.Cmd {
	return m.action(m.ctrl.Refresh)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case stateChangedMsg, actionDoneMsg:
		m.sync()
		return m, nil

	case createdMsg:
		m.sync()
		if msg.err == nil {
			m.form = nil
		}
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.form != nil {
		form, cmd := m.form.update(msg, m.keys)
		m.form = &form
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Todos)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		t, ok := m.selected()
		if !ok || m.state.IsDeleting(t.ID) {
			return m, nil
		}
		id, done := t.ID, !t.Done
		return m, m.action(func(ctx context.Context) error { return m.ctrl.ToggleDone(ctx, id, done) })

	case key.Matches(msg, m.keys.Delete):
		t, ok := m.selected()
		if !ok || m.state.IsDeleting(t.ID) {
			return m, nil
		}
		id := t.ID
		return m, m.action(func(ctx context.Context) error { return m.ctrl.DeleteTodo(ctx, id) })

	case key.Matches(msg, m.keys.Undo):
		if m.state.Undo == nil {
			return m, nil
		}
		return m, m.action(m.ctrl.Undo)

	case key.Matches(msg, m.keys.Add):
		form := newAddForm(m.state.Categories)
		if i := slices.Index(form.options, m.state.Filter); i >= 0 {
			form.choice = i
		}
		m.form = &form

	case key.Matches(msg, m.keys.NextFilter):
		return m, m.cycleFilter(1)

	case key.Matches(msg, m.keys.PrevFilter):
		return m, m.cycleFilter(-1)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.action(m.ctrl.Refresh)

	case key.Matches(msg, m.keys.Dismiss):
		if m.state.Error != "" {
			m.ctrl.DismissError()
		} else {
			m.ctrl.DismissUndo()
		}
		m.sync()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.form = nil
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		m.ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		if m.state.Creating {
			return m, nil
		}
		in := m.form.input()
		ctx := m.ctx
		return m, func() tea.Msg {
			_, err := m.ctrl.CreateTodo(ctx, in)
			return createdMsg{err: err}
		}
	}

	form, cmd := m.form.update(msg, m.keys)
	m.form = &form
	return m, cmd
}

// cycleFilter moves through "all" followed by each known category.
func (m Model) cycleFilter(step int) tea.Cmd {
	options := append([]string{""}, m.state.Categories...)
	idx := 0
	for i, c := range options {
		if strings.EqualFold(c, m.state.Filter) {
			idx = i
			break
		}
	}
	next := options[(idx+step+len(options))%len(options)]
	return m.action(func(ctx context.Context) error { return m.ctrl.SetFilter(ctx, next) })
}

func (m Model) action(fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: fn(ctx)}
	}
}

func (m Model) selected() (todo.Todo, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Todos) {
		return todo.Todo{}, false
	}
	return m.state.Todos[m.cursor], true
}

// sync re-reads the snapshot and keeps the cursor in range.
func (m *Model) sync() {
	m.state = m.ctrl.Snapshot()
	if m.cursor >= len(m.state.Todos) {
		m.cursor = len(m.state.Todos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todos"))
	if m.state.Loading {
		b.WriteString(mutedStyle.Render("  loading..."))
	}
	b.WriteString("\n")

	filter := "All"
	if m.state.Filter != "" {
		filter = m.state.Filter
	}
	b.WriteString(filterStyle.Render("Filter: "+filter) + "\n\n")

	if m.state.Error != "" {
		b.WriteString(bannerStyle.Render(m.state.Error+"  (esc to dismiss)") + "\n\n")
	}

	if len(m.state.Todos) == 0 && !m.state.Loading {
		b.WriteString(mutedStyle.Render("Nothing to do.") + "\n")
	}
	for i, t := range m.state.Todos {
		b.WriteString(m.renderRow(i, t) + "\n")
	}

	if u := m.state.Undo; u != nil {
		b.WriteString("\n" + undoStyle.Render(fmt.Sprintf("Completed %q. Press u to undo.", u.Text)) + "\n")
	}

	if m.form != nil {
		b.WriteString("\n" + m.form.view(m.state.Creating) + "\n")
		b.WriteString("\n" + m.help.View(formKeys(m.keys)))
		return b.String()
	}

	b.WriteString("\n" + m.help.View(listKeys(m.keys)))
	return b.String()
}

func (m Model) renderRow(i int, t todo.Todo) string {
	cursor := "  "
	if i == m.cursor {
		cursor = cursorStyle.Render("> ")
	}

	check := "[ ]"
	text := t.Text
	if t.Done {
		check = "[x]"
		text = doneStyle.Render(text)
	}

	row := fmt.Sprintf("%s%s %s %s", cursor, check, text, categoryStyle.Render("#"+t.Category))
	switch {
	case m.state.IsDeleting(t.ID):
		row += mutedStyle.Render("  deleting...")
	case m.state.IsPending(t.ID):
		row += mutedStyle.Render("  removing soon")
	}
	return row
}

// Run starts the program and blocks until the user quits. Controller changes
// are coalesced into stateChangedMsg deliveries.
func Run(ctx context.Context, ctrl Controller, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(ctx, ctrl), append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	changes := make(chan struct{}, 1)
	ctrl.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				p.Send(stateChangedMsg{})
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}
	return nil
}
