package cli

import (
	"fmt"

	"ticktack/internal/tui"

	"github.com/spf13/cobra"
)

func newKeysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the interactive key bindings as markdown",
		Args:  cobra.NoArgs,
		RunE: app.withLog(func(cmd *cobra.Command, args []string) error {
			app.log.Debug("printing key help")
			_, err := fmt.Fprint(cmd.OutOrStdout(), tui.KeyHelpMarkdown())
			return err
		}),
	}
}
