package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

const (
	defaultWidth = 72
	minTextWidth = 12
)

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{
		m.headerView(),
		m.formView(),
		m.tableView(width),
		m.helpView(),
	}
	body := strings.Join(sections, "\n\n")

	if m.modal == modalNone {
		return body
	}
	dialog := m.modalView()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}
	return body + "\n\n" + dialog
}

func (m Model) headerView() string {
	t := ui.Current()
	done, pending := model.Stats(m.items)
	total := len(m.items)

	title := t.Title.Render("Todos")
	counts := fmt.Sprintf("%s %s  %s %s  %s",
		t.Success.Render(t.SymDone), t.Success.Render(fmt.Sprint(done)),
		t.Pending.Render(t.SymPending), t.Pending.Render(fmt.Sprint(pending)),
		t.Muted.Render(fmt.Sprintf("Total: %d", total)),
	)
	return title + "\n" + counts + "\n" + t.Accent.Render(ui.ProgressBar(done, total, 20))
}

func (m Model) formView() string {
	t := ui.Current()
	var button string
	if m.adding {
		button = t.Muted.Render(m.spinner.View() + " Adding...")
	} else if m.focus == focusForm {
		button = t.Accent.Render("[ Add ]")
	} else {
		button = t.Muted.Render("[ Add ]")
	}
	return m.input.View() + "  " + button
}

func (m Model) tableView(width int) string {
	t := ui.Current()
	if len(m.items) == 0 {
		return t.Muted.Render("No todos yet. Add one above.")
	}

	const actions = "e edit  d delete"
	// index column, borders and padding
	textWidth := max(minTextWidth, width-len(actions)-16)

	rows := make([][]string, 0, len(m.items))
	for i, it := range m.items {
		box := t.BoxUnchecked
		if it.Completed {
			box = t.BoxChecked
		}
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			box + " " + ui.Truncate(it.Text, textWidth),
			actions,
		})
	}

	tableFocused := m.focus == focusTable && m.modal == modalNone
	tbl := table.New().
		Border(t.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.BorderColor)).
		Headers("#", "Todo", "Actions").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return t.Title.Padding(0, 1)
			}
			if col == 2 {
				return t.Muted.Padding(0, 1)
			}
			var s lipgloss.Style
			if row < len(m.items) && m.items[row].Completed && col == 1 {
				s = t.Done.Padding(0, 1)
			} else {
				s = base
			}
			if tableFocused && row == m.cursor {
				s = s.Inherit(t.Selected)
			}
			return s
		})
	return tbl.String()
}

func (m Model) helpView() string {
	if m.focus == focusForm && m.modal == modalNone {
		return m.help.View(m.keys.form())
	}
	return m.help.View(m.keys)
}

func (m Model) modalView() string {
	t := ui.Current()
	var lines []string
	switch m.modal {
	case modalEdit:
		lines = []string{
			t.Title.Render("Edit Todo"),
			"",
			m.editInput.View(),
			"",
			t.Accent.Render("[ Change ]") + "  " + t.Muted.Render("[ No ]"),
			t.Help.Render("enter change • esc cancel"),
		}
	case modalDelete:
		text := ""
		if it, ok := m.find(m.deleteID); ok {
			text = ui.Truncate(it.Text, 40)
		}
		yes, no := "[ Yes, delete ]", "[ No ]"
		if m.confirm == confirmFocusConfirm {
			yes, no = t.Danger.Render(yes), t.Muted.Render(no)
		} else {
			yes, no = t.Muted.Render(yes), t.Selected.Render(no)
		}
		lines = []string{
			t.Title.Render("Do you want to delete this Todo"),
			t.Muted.Render(text),
			"",
			yes + "  " + no,
			t.Help.Render("y yes • n/esc no • tab switch"),
		}
	}
	return ui.Panel(lines)
}

func (m Model) find(id int64) (model.Item, bool) {
	for _, it := range m.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}
