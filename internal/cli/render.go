package cli

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
)

const maxRowWidth = 80

// listPanel renders the header, progress bar and rows inside a box.
func listPanel(items []model.Item, group bool) string {
	t := ui.Current()
	done, pending := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(items),
	)

	lines := []string{
		header,
		t.Muted.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items, 1)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: add with `tada add \"Buy milk\"`"))
	return ui.Panel(lines)
}

func flatLines(items []model.Item, start int) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", start+i)
		box, style := t.BoxUnchecked, t.Muted
		text := ui.Truncate(it.Text, maxRowWidth)
		if it.Completed {
			box, style = t.BoxChecked, t.Success
			text = t.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), style.Render(box), text))
	}
	return out
}

// groupLines lists pending items, then done ones. Indexes stay the
// positions in the full list so they can be passed to done/edit/rm.
func groupLines(items []model.Item) []string {
	t := ui.Current()
	var pend, done []string
	for i, it := range items {
		line := flatLines([]model.Item{it}, i+1)[0]
		if it.Completed {
			done = append(done, line)
		} else {
			pend = append(pend, line)
		}
	}
	section := func(title string, rows []string) []string {
		out := []string{t.Accent.Render(title)}
		if len(rows) == 0 {
			return append(out, t.Muted.Render("(none)"))
		}
		return append(out, rows...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
