// Package tui is the interactive view: an add form, the item table and two
// modal dialogs (edit, delete confirmation). It holds only presentation
// state; every change to the list is dispatched to the todo store, and the
// view re-renders from the snapshots the store publishes.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/todo"
)

type focusArea int

const (
	focusTable focusArea = iota
	focusForm
)

type modalKind int

const (
	modalNone modalKind = iota
	modalEdit
	modalDelete
)

type confirmFocus int

const (
	confirmFocusConfirm confirmFocus = iota
	confirmFocusCancel
)

// itemsChangedMsg carries a store snapshot published after an operation.
type itemsChangedMsg struct{ items []model.Item }

// addDoneMsg fires when the add delay has elapsed.
type addDoneMsg struct{ text string }

// Options tune the view.
type Options struct {
	// AddDelay is how long the add button shows "Adding..." before the
	// item is dispatched. Zero dispatches on the next update.
	AddDelay time.Duration
}

// Model is the Bubble Tea model for the task list.
type Model struct {
	store       *todo.Store
	updates     chan []model.Item
	unsubscribe func()

	items  []model.Item
	cursor int
	focus  focusArea

	// add form
	input    textinput.Model
	adding   bool
	spinner  spinner.Model
	addDelay time.Duration

	// modals; the pending ids are 0 when no modal targets an item
	modal     modalKind
	editID    int64
	editInput textinput.Model
	deleteID  int64
	confirm   confirmFocus

	keys keyMap
	help help.Model

	width, height int
}

// New builds the view and subscribes it to store.
func New(store *todo.Store, opt Options) Model {
	updates := make(chan []model.Item, 1)
	unsubscribe := store.Subscribe(func(items []model.Item) {
		// Latest wins: drop an unread snapshot so publishing never blocks
		// the update loop.
		select {
		case <-updates:
		default:
		}
		updates <- items
	})

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "Add new Todo..."
	in.CharLimit = 200

	edit := textinput.New()
	edit.Prompt = "> "
	edit.Placeholder = "Edit Todo..."
	edit.CharLimit = 200

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		store:       store,
		updates:     updates,
		unsubscribe: unsubscribe,
		items:       store.Items(),
		input:       in,
		spinner:     sp,
		addDelay:    opt.AddDelay,
		editInput:   edit,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	if len(m.items) == 0 {
		m.focus = focusForm
		m.input.Focus()
	}
	return m
}

// Close removes the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForItems(m.updates)}
	if m.focus == focusForm {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// waitForItems blocks until the store publishes a snapshot.
func waitForItems(ch <-chan []model.Item) tea.Cmd {
	return func() tea.Msg {
		items, ok := <-ch
		if !ok {
			return nil
		}
		return itemsChangedMsg{items: items}
	}
}

// addAfter schedules the single-shot add timer.
func addAfter(d time.Duration, text string) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return addDoneMsg{text: text} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return addDoneMsg{text: text} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, min(60, msg.Width-24))
		m.editInput.Width = max(10, min(50, msg.Width-16))
		return m, nil

	case itemsChangedMsg:
		m.items = msg.items
		m.clampCursor()
		return m, waitForItems(m.updates)

	case addDoneMsg:
		m.store.Add(msg.text)
		m.input.Reset()
		m.adding = false
		return m, nil

	case spinner.TickMsg:
		if !m.adding {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m.quit()
		}
		switch m.modal {
		case modalEdit:
			return m.updateEdit(msg)
		case modalDelete:
			return m.updateDelete(msg)
		}
		if m.focus == focusForm {
			return m.updateForm(msg)
		}
		return m.updateTable(msg)
	}

	// Cursor blink and similar messages go to whichever input is active.
	var cmd tea.Cmd
	switch {
	case m.modal == modalEdit:
		m.editInput, cmd = m.editInput.Update(msg)
	case m.focus == focusForm:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(0, len(m.items)-1)
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.store.Toggle(it.ID)
		}
	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selected(); ok {
			return m.openEdit(it)
		}
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.openDelete(it)
		}
	case key.Matches(msg, m.keys.FocusForm):
		m.focus = focusForm
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// updateForm handles the add form. Empty or whitespace-only text is a
// silent no-op; while an add is in flight further submits are ignored.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		m.focus = focusTable
		m.input.Blur()
		return m, nil
	case "enter":
		if m.adding {
			return m, nil
		}
		text, ok := normalize(m.input.Value())
		if !ok {
			return m, nil
		}
		m.adding = true
		return m, tea.Batch(m.spinner.Tick, addAfter(m.addDelay, text))
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) openEdit(it model.Item) (tea.Model, tea.Cmd) {
	m.modal = modalEdit
	m.editID = it.ID
	m.editInput.SetValue(it.Text)
	m.editInput.CursorEnd()
	m.input.Blur()
	cmd := m.editInput.Focus()
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeEdit(), nil
	case "enter":
		text, ok := normalize(m.editInput.Value())
		if !ok {
			return m, nil
		}
		m.store.Edit(m.editID, text)
		return m.closeEdit(), nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m Model) closeEdit() Model {
	m.modal = modalNone
	m.editID = 0
	m.editInput.Reset()
	m.editInput.Blur()
	if m.focus == focusForm {
		m.input.Focus()
	}
	return m
}

func (m *Model) openDelete(it model.Item) {
	m.modal = modalDelete
	m.deleteID = it.ID
	m.confirm = confirmFocusCancel
}

func (m Model) updateDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.confirmDelete(), nil
	case key.Matches(msg, m.keys.Cancel):
		return m.closeDelete(), nil
	case key.Matches(msg, m.keys.SwitchButton):
		if m.confirm == confirmFocusConfirm {
			m.confirm = confirmFocusCancel
		} else {
			m.confirm = confirmFocusConfirm
		}
	case msg.String() == "enter":
		if m.confirm == confirmFocusConfirm {
			return m.confirmDelete(), nil
		}
		return m.closeDelete(), nil
	}
	return m, nil
}

func (m Model) confirmDelete() Model {
	m.store.Delete(m.deleteID)
	return m.closeDelete()
}

func (m Model) closeDelete() Model {
	m.modal = modalNone
	m.deleteID = 0
	m.confirm = confirmFocusCancel
	return m
}

func (m Model) selected() (model.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return model.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// normalize trims text and reports whether anything is left.
func normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}
