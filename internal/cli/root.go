package cli

import (
	"fmt"
	"os"
	"strings"

	"ticktack/internal/tasks"
	"ticktack/internal/tui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	IDMode   string
	Theme    string
	Glyphs   string
	DebugLog string
	LogLevel string

	log      *logrus.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ticktack",
		Short:        "TICK TACK: an in-memory to-do list for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  ticktack

  # Number tasks by list length (len+1) instead of a counter
  ticktack --id-mode=length

  # Replay actions headlessly and print the resulting list
  ticktack script "add=Buy milk" "add=Walk dog" done=1 --format text
`),
		Args: cobra.NoArgs,
		RunE: app.withLog(func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		}),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := app.validate(); err != nil {
			return err
		}
		lg, closeFn, err := newLogger(app.DebugLog, app.LogLevel)
		if err != nil {
			return err
		}
		app.log = lg
		app.closeLog = closeFn
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.IDMode, "id-mode", envOr("TICKTACK_ID_MODE", string(tasks.IDModeCounter)), "Task numbering (counter|length); length reproduces len(list)+1 numbering")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("TICKTACK_TUI_THEME", "auto"), "Palette (light|dark|auto)")
	cmd.PersistentFlags().StringVar(&app.Glyphs, "glyphs", envOr("TICKTACK_TUI_GLYPHS", "unicode"), "Glyph set (unicode|ascii)")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", envOr("TICKTACK_DEBUG_LOG", ""), "Append logs to this file (logs are discarded when empty)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("TICKTACK_LOG_LEVEL", "debug"), "Log level for --debug-log")

	cmd.AddCommand(newScriptCmd(app))
	cmd.AddCommand(newKeysCmd(app))

	return cmd
}

func (app *App) validate() error {
	if _, ok := tasks.ParseIDMode(app.IDMode); !ok {
		return invalidFlagError{flag: "id-mode", value: app.IDMode, allowed: []string{"counter", "length"}}
	}
	switch strings.ToLower(strings.TrimSpace(app.Theme)) {
	case "", "auto", "light", "dark":
	default:
		return invalidFlagError{flag: "theme", value: app.Theme, allowed: []string{"light", "dark", "auto"}}
	}
	switch strings.ToLower(strings.TrimSpace(app.Glyphs)) {
	case "", "unicode", "utf8", "ascii":
	default:
		return invalidFlagError{flag: "glyphs", value: app.Glyphs, allowed: []string{"unicode", "ascii"}}
	}
	return nil
}

// withLog closes the debug log once run returns. Cobra skips post-run hooks
// when RunE fails, so the close can't live there.
func (app *App) withLog(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := app.closeDebugLog(); err == nil {
				err = cerr
			}
		}()
		return run(cmd, args)
	}
}

func (app *App) closeDebugLog() error {
	if app.closeLog == nil {
		return nil
	}
	closeFn := app.closeLog
	app.closeLog = nil
	return closeFn()
}

func (app *App) idMode() tasks.IDMode {
	mode, _ := tasks.ParseIDMode(app.IDMode)
	return mode
}

func runTUI(app *App) error {
	err := tui.Run(tui.Options{
		IDMode: app.idMode(),
		Theme:  app.Theme,
		Glyphs: app.Glyphs,
		Logger: app.log,
	})
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
