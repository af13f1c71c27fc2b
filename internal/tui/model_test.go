package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/tada/internal/storage/memory"
	"github.com/idilsaglam/tada/internal/todo"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestModel(t *testing.T, texts ...string) (Model, *todo.Store) {
	t.Helper()
	var ms int64 = 1700000000000
	store := todo.New(memory.New(), todo.Options{
		Now: func() time.Time { ms++; return time.UnixMilli(ms) },
	})
	for _, text := range texts {
		store.Add(text)
	}
	m := New(store, Options{})
	t.Cleanup(m.Close)
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// sync feeds the snapshot the store published into the model.
func sync(t *testing.T, m Model) Model {
	t.Helper()
	select {
	case items := <-m.updates:
		m, _ = update(t, m, itemsChangedMsg{items: items})
		return m
	default:
		t.Fatal("store published no snapshot")
		return m
	}
}

// runBatch executes cmd and returns every message it produced, one level
// of batching deep.
func runBatch(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c != nil {
			out = append(out, c())
		}
	}
	return out
}

func TestNew_FocusesFormWhenEmpty(t *testing.T) {
	m, _ := newTestModel(t)
	if m.focus != focusForm || !m.input.Focused() {
		t.Fatalf("empty list should focus the add form")
	}
	m, _ = newTestModel(t, "buy milk")
	if m.focus != focusTable {
		t.Fatalf("non-empty list should focus the table")
	}
	if len(m.items) != 1 || m.items[0].Text != "buy milk" {
		t.Fatalf("items not loaded from store: %+v", m.items)
	}
}

func TestAdd_TrimsAndDispatchesAfterDelay(t *testing.T) {
	m, store := newTestModel(t)

	m.input.SetValue("  hello  ")
	m, cmd := update(t, m, keyMsg("enter"))
	if !m.adding {
		t.Fatalf("expected add in flight")
	}
	if store.Len() != 0 {
		t.Fatalf("add dispatched before the delay")
	}
	if !strings.Contains(m.View(), "Adding...") {
		t.Fatalf("button should read Adding...:\n%s", m.View())
	}

	// Further submits are ignored while the add is in flight.
	m2, again := update(t, m, keyMsg("enter"))
	if again != nil || !m2.adding {
		t.Fatalf("second submit should be ignored")
	}

	var done *addDoneMsg
	for _, msg := range runBatch(cmd) {
		if d, ok := msg.(addDoneMsg); ok {
			done = &d
		}
	}
	if done == nil {
		t.Fatalf("no addDoneMsg scheduled")
	}
	if done.text != "hello" {
		t.Fatalf("dispatched %q, want trimmed %q", done.text, "hello")
	}

	m, _ = update(t, m, *done)
	m = sync(t, m)
	if m.adding || m.input.Value() != "" {
		t.Fatalf("form not reset: adding=%v value=%q", m.adding, m.input.Value())
	}
	items := store.Items()
	if len(items) != 1 || items[0].Text != "hello" || items[0].Completed {
		t.Fatalf("unexpected store: %+v", items)
	}
	if len(m.items) != 1 {
		t.Fatalf("view not refreshed: %+v", m.items)
	}
}

func TestAdd_WhitespaceIsNoop(t *testing.T) {
	m, store := newTestModel(t)
	for _, v := range []string{"", "   ", "\t"} {
		m.input.SetValue(v)
		var cmd tea.Cmd
		m, cmd = update(t, m, keyMsg("enter"))
		if cmd != nil || m.adding {
			t.Fatalf("%q: expected no-op", v)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("store changed: %+v", store.Items())
	}
}

func TestAddAfter(t *testing.T) {
	if msg := addAfter(0, "x")(); msg != (addDoneMsg{text: "x"}) {
		t.Fatalf("zero delay should fire immediately, got %#v", msg)
	}
	if cmd := addAfter(500*time.Millisecond, "x"); cmd == nil {
		t.Fatalf("expected a tick command")
	}
}

func TestTable_Toggle(t *testing.T) {
	m, store := newTestModel(t, "buy milk")
	id := store.Items()[0].ID

	m = press(t, m, "space")
	m = sync(t, m)
	if it, _ := store.Find(id); !it.Completed {
		t.Fatalf("toggle not dispatched")
	}
	if !m.items[0].Completed {
		t.Fatalf("view not refreshed")
	}

	m = press(t, m, "x")
	m = sync(t, m)
	if m.items[0].Completed {
		t.Fatalf("second toggle should clear completion")
	}
}

func TestTable_Navigation(t *testing.T) {
	m, _ := newTestModel(t, "a", "b", "c")
	m = press(t, m, "down", "down", "down")
	if m.cursor != 2 {
		t.Fatalf("cursor=%d, want clamp at 2", m.cursor)
	}
	m = press(t, m, "g")
	if m.cursor != 0 {
		t.Fatalf("cursor=%d after g", m.cursor)
	}
	m = press(t, m, "G")
	if m.cursor != 2 {
		t.Fatalf("cursor=%d after G", m.cursor)
	}
}

func TestEdit_ConfirmTrims(t *testing.T) {
	m, store := newTestModel(t, "buy milk")
	id := store.Items()[0].ID

	m = press(t, m, "e")
	if m.modal != modalEdit || m.editID != id || m.editInput.Value() != "buy milk" {
		t.Fatalf("edit modal not opened with item: modal=%v id=%d value=%q", m.modal, m.editID, m.editInput.Value())
	}
	if !strings.Contains(m.View(), "Edit Todo") {
		t.Fatalf("edit modal not rendered")
	}

	m.editInput.SetValue("  buy oat milk ")
	m = press(t, m, "enter")
	m = sync(t, m)
	if m.modal != modalNone || m.editID != 0 || m.editInput.Value() != "" {
		t.Fatalf("edit state not reset")
	}
	if it, _ := store.Find(id); it.Text != "buy oat milk" {
		t.Fatalf("text=%q", it.Text)
	}
}

func TestEdit_EmptyKeepsModalOpen(t *testing.T) {
	m, store := newTestModel(t, "buy milk")
	m = press(t, m, "e")
	m.editInput.SetValue("   ")
	m = press(t, m, "enter")
	if m.modal != modalEdit {
		t.Fatalf("empty edit should keep the modal open")
	}
	if store.Items()[0].Text != "buy milk" {
		t.Fatalf("store changed")
	}
}

func TestEdit_Cancel(t *testing.T) {
	m, store := newTestModel(t, "buy milk")
	m = press(t, m, "e")
	m.editInput.SetValue("something else")
	m = press(t, m, "esc")
	if m.modal != modalNone || m.editID != 0 || m.editInput.Value() != "" {
		t.Fatalf("cancel did not reset edit state")
	}
	if store.Items()[0].Text != "buy milk" {
		t.Fatalf("cancel changed the item")
	}
}

func TestEdit_StaleIDIsHarmless(t *testing.T) {
	m, store := newTestModel(t, "buy milk")
	id := store.Items()[0].ID
	m = press(t, m, "e")
	store.Delete(id)

	m.editInput.SetValue("renamed")
	m = press(t, m, "enter")
	if m.modal != modalNone {
		t.Fatalf("modal should close")
	}
	if store.Len() != 0 {
		t.Fatalf("stale edit resurrected an item: %+v", store.Items())
	}
}

func TestDelete_ConfirmAndCancel(t *testing.T) {
	m, store := newTestModel(t, "a", "b")

	m = press(t, m, "d")
	if m.modal != modalDelete || m.deleteID != store.Items()[0].ID {
		t.Fatalf("delete modal not opened")
	}
	if !strings.Contains(m.View(), "Do you want to delete this Todo") {
		t.Fatalf("delete modal not rendered:\n%s", m.View())
	}
	m = press(t, m, "n")
	if m.modal != modalNone || m.deleteID != 0 || store.Len() != 2 {
		t.Fatalf("cancel should keep both items")
	}

	// enter acts on the focused button, which starts on "No"
	m = press(t, m, "d", "enter")
	if store.Len() != 2 {
		t.Fatalf("enter on No should not delete")
	}

	m = press(t, m, "d", "tab", "enter")
	m = sync(t, m)
	if store.Len() != 1 || store.Items()[0].Text != "b" {
		t.Fatalf("tab+enter should delete the first item: %+v", store.Items())
	}

	m = press(t, m, "d", "y")
	m = sync(t, m)
	if store.Len() != 0 || len(m.items) != 0 {
		t.Fatalf("y should delete: %+v", store.Items())
	}
	if m.modal != modalNone || m.deleteID != 0 {
		t.Fatalf("delete state not reset")
	}
}

func TestDelete_ClampsCursor(t *testing.T) {
	m, _ := newTestModel(t, "a", "b")
	m = press(t, m, "down", "d", "y")
	m = sync(t, m)
	if m.cursor != 0 {
		t.Fatalf("cursor=%d, want 0", m.cursor)
	}
}

func TestFocusSwitching(t *testing.T) {
	m, _ := newTestModel(t, "a")
	m = press(t, m, "a")
	if m.focus != focusForm || !m.input.Focused() {
		t.Fatalf("a should focus the form")
	}
	// q is text while the form has focus
	m = press(t, m, "q")
	if m.input.Value() != "q" {
		t.Fatalf("input=%q", m.input.Value())
	}
	m = press(t, m, "esc")
	if m.focus != focusTable || m.input.Focused() {
		t.Fatalf("esc should return to the table")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "a")
	_, cmd := update(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}

	m, _ = newTestModel(t)
	_, cmd = update(t, m, keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatalf("ctrl+c should quit from the form")
	}
}

func TestView_Renders(t *testing.T) {
	m, store := newTestModel(t, "buy milk", "walk dog")
	store.Toggle(store.Items()[1].ID)
	m = sync(t, m)

	out := m.View()
	for _, want := range []string{"Todos", "Total: 2", "buy milk", "walk dog", " 50%", "Actions"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}

	empty, _ := newTestModel(t)
	if !strings.Contains(empty.View(), "No todos yet") {
		t.Errorf("empty view missing placeholder:\n%s", empty.View())
	}
}

func TestView_ModalIsCenteredWhenSized(t *testing.T) {
	m, _ := newTestModel(t, "buy milk")
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = press(t, m, "d")
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Fatalf("placed modal should fill the window, got %d lines", len(lines))
	}
}
