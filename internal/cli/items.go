package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

const lsHint = "Hint: run `tada ls` to see valid indexes"

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new item (text can be multiple words)",
		Args:  minArgs(1, "tada add <text...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return usagef("add: empty text")
			}
			if err := app.open(cmd, false); err != nil {
				return err
			}
			defer app.close()

			app.store.Add(text)
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added #%d", app.store.Len()))
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var group, asJSON bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(cmd, false); err != nil {
				return err
			}
			defer app.close()

			items := app.store.Items()
			out := cmd.OutOrStdout()
			if asJSON {
				encoded, err := todo.Encode(items)
				if err != nil {
					return err
				}
				pretty, err := todo.Indent(encoded)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, pretty)
				return err
			}
			_, err := fmt.Fprintln(out, listPanel(items, group))
			return err
		},
	}

	cmd.Flags().BoolVar(&group, "group", false, "Group output by pending/done")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the stored list as JSON")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "done <ref>",
		Short: "Toggle completion of the item at a 1-based index",
		Args:  exactArgs(1, "tada done <index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(cmd, false); err != nil {
				return err
			}
			defer app.close()

			id, err := app.resolve("done", args[0], byID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !app.store.Toggle(id) {
				ui.Note(out, fmt.Sprintf("no item with id %d", id))
				return nil
			}
			if it, _ := app.store.Find(id); it.Completed {
				ui.OK(out, "done: "+it.Text)
			} else {
				ui.OK(out, "reopened: "+it.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "Treat <ref> as an item id")
	return cmd
}

func newEditCmd(app *App) *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "edit <ref> <text...>",
		Short: "Replace the text of an item",
		Args:  minArgs(2, "tada edit <index> <text...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return usagef("edit: empty text")
			}
			if err := app.open(cmd, false); err != nil {
				return err
			}
			defer app.close()

			id, err := app.resolve("edit", args[0], byID)
			if err != nil {
				return err
			}
			if !app.store.Edit(id, text) {
				ui.Note(cmd.OutOrStdout(), fmt.Sprintf("no item with id %d", id))
				return nil
			}
			ui.OK(cmd.OutOrStdout(), "edited")
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "Treat <ref> as an item id")
	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:     "rm <ref>",
		Aliases: []string{"delete"},
		Short:   "Remove the item at a 1-based index",
		Args:    exactArgs(1, "tada rm <index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(cmd, false); err != nil {
				return err
			}
			defer app.close()

			id, err := app.resolve("rm", args[0], byID)
			if err != nil {
				return err
			}
			if !app.store.Delete(id) {
				ui.Note(cmd.OutOrStdout(), fmt.Sprintf("no item with id %d", id))
				return nil
			}
			ui.OK(cmd.OutOrStdout(), "removed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "Treat <ref> as an item id")
	return cmd
}

// resolve turns a command-line reference into an item id. Indexes are
// 1-based positions in the current list; ids are passed through even when
// no item carries them.
func (a *App) resolve(verb, ref string, byID bool) (int64, error) {
	if byID {
		id, err := strconv.ParseInt(ref, 10, 64)
		if err != nil {
			return 0, usagef("%s: not an id: %s", verb, ref)
		}
		return id, nil
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, usagef("%s: not a number: %s", verb, ref)
	}
	items := a.store.Items()
	if n < 1 || n > len(items) {
		return 0, usageHint(lsHint, "index out of range: have %d, got %d", len(items), n)
	}
	return items[n-1].ID, nil
}
