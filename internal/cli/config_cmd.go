package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.cfg.File != "" {
				fmt.Fprintf(out, "# loaded from %s\n", app.cfg.File)
			}
			s, err := config.Encode(app.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, s)
			return err
		},
	}
}
