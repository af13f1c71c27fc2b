package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/model"
)

const showWrap = 80

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`, "<", `\<`, "#", `\#`,
)

func newShowCmd(app *App) *cobra.Command {
	var (
		raw   bool
		style string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the list as a markdown checklist",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(cmd, false); err != nil {
				return err
			}
			defer app.close()

			md := checklist(app.store.Items())
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			if style == "" {
				style = "dark"
				if app.cfg.UI.NoColor || app.cfg.UI.Theme == "mono" {
					style = "notty"
				}
			}
			out, err := renderMarkdown(md, style)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().StringVar(&style, "style", "", "Glamour style (dark|light|notty|dracula|...)")
	return cmd
}

// checklist renders items as a GitHub-style task list.
func checklist(items []model.Item) string {
	var b strings.Builder
	b.WriteString("# Todos\n\n")
	if len(items) == 0 {
		b.WriteString("_No todos yet._\n")
		return b.String()
	}
	done, pending := model.Stats(items)
	fmt.Fprintf(&b, "%d done, %d pending\n\n", done, pending)
	for _, it := range items {
		box := " "
		if it.Completed {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", box, markdownEscaper.Replace(it.Text))
	}
	return b.String()
}

func renderMarkdown(md, style string) (string, error) {
	// A fixed standard style avoids the terminal background query that
	// WithAutoStyle performs.
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(showWrap),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
