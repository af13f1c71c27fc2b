package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help, Danger                  lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

var current = classic()

// SetTheme switches the palette; unknown names fall back to classic.
// The mono theme also strips colour from every renderer.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		SetColorProfile(true)
		current = mono()
	default:
		current = classic()
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

// SetColorProfile forces plain output when disabled is true.
func SetColorProfile(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:         lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Strikethrough(true),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Danger:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")).Bold(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
		SymDone:      "✔",
		SymPending:   "•",
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.Done = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true)
	t.Border = lipgloss.RoundedBorder()
	t.BorderColor = lipgloss.Color("13")
	t.BoxUnchecked, t.BoxChecked = "◻", "◼"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:         "mono",
		Title:        plain,
		Muted:        plain,
		Accent:       plain,
		Success:      plain,
		Error:        plain,
		Pending:      plain,
		Done:         plain.Strikethrough(true),
		Selected:     plain.Reverse(true),
		Help:         plain,
		Danger:       plain,
		Border:       lipgloss.NormalBorder(),
		BorderColor:  lipgloss.NoColor{},
		BoxUnchecked: "[ ]",
		BoxChecked:   "[x]",
		SymDone:      "x",
		SymPending:   "-",
	}
}
