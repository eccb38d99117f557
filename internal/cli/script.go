package cli

import (
	"fmt"
	"strconv"
	"strings"

	"ticktack/internal/format"
	"ticktack/internal/tasks"
	"ticktack/internal/tui"

	"github.com/spf13/cobra"
)

type actionKind string

const (
	actionAdd    actionKind = "add"
	actionToggle actionKind = "toggle"
	actionDelete actionKind = "delete"
)

type scriptAction struct {
	kind actionKind
	text string
	id   int
}

type scriptResult struct {
	IDMode  tasks.IDMode `json:"idMode"`
	Tasks   []tasks.Task `json:"tasks"`
	Open    int          `json:"open"`
	Done    int          `json:"done"`
	Ignored int          `json:"ignored"`
}

func newScriptCmd(app *App) *cobra.Command {
	var (
		outFormat string
		pretty    bool
	)

	cmd := &cobra.Command{
		Use:   "script [add=<text>|done=<id>|delete=<id>]...",
		Short: "Apply actions to a fresh list and print the result",
		Long: strings.TrimSpace(`
Starts from an empty list, applies each action in order, then prints the list.

Actions:
  add=<text>     create a task (empty text is ignored)
  done=<id>      toggle a task between open and done (alias: toggle=<id>)
  delete=<id>    remove a task (alias: rm=<id>)

Actions on unknown ids are ignored and counted.
`),
		RunE: app.withLog(func(cmd *cobra.Command, args []string) error {
			f, err := format.Parse(outFormat)
			if err != nil {
				return invalidFlagError{flag: "format", value: outFormat, allowed: []string{"json", "edn", "text"}}
			}
			actions, err := parseScriptActions(args)
			if err != nil {
				return err
			}

			res := runScript(app, actions)

			if f == format.Text {
				tui.ApplyGlyphPreference(app.Glyphs)
				_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.PlainView(res.Tasks))
				return err
			}
			return format.Write(cmd.OutOrStdout(), res, f, pretty)
		}),
	}

	cmd.Flags().StringVar(&outFormat, "format", "json", "Output format (json|edn|text)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent json/edn output")
	return cmd
}

func parseScriptActions(args []string) ([]scriptAction, error) {
	out := make([]scriptAction, 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, scriptActionError{arg: arg, reason: "expected <action>=<value>"}
		}
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "add":
			out = append(out, scriptAction{kind: actionAdd, text: v})
		case "done", "toggle":
			id, err := parseTaskID(arg, v)
			if err != nil {
				return nil, err
			}
			out = append(out, scriptAction{kind: actionToggle, id: id})
		case "delete", "rm":
			id, err := parseTaskID(arg, v)
			if err != nil {
				return nil, err
			}
			out = append(out, scriptAction{kind: actionDelete, id: id})
		default:
			return nil, scriptActionError{arg: arg, reason: "unknown action " + strconv.Quote(k)}
		}
	}
	return out, nil
}

func parseTaskID(arg, v string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, scriptActionError{arg: arg, reason: "id must be an integer"}
	}
	return id, nil
}

func runScript(app *App, actions []scriptAction) scriptResult {
	l := tasks.NewList(tasks.WithIDMode(app.idMode()))
	ignored := 0
	for _, a := range actions {
		var ok bool
		switch a.kind {
		case actionAdd:
			var t tasks.Task
			t, ok = l.Add(a.text)
			if ok {
				app.log.WithField("task_id", t.ID).Debug("task created")
			}
		case actionToggle:
			var t tasks.Task
			t, ok = l.ToggleDone(a.id)
			if ok {
				app.log.WithField("task_id", t.ID).WithField("done", t.Done).Debug("task toggled")
			}
		case actionDelete:
			ok = l.Delete(a.id)
			if ok {
				app.log.WithField("task_id", a.id).Debug("task deleted")
			}
		}
		if !ok {
			ignored++
			app.log.WithField("action", string(a.kind)).Info("action ignored")
		}
	}

	open, done := l.Counts()
	return scriptResult{
		IDMode:  l.IDMode(),
		Tasks:   l.Tasks(),
		Open:    open,
		Done:    done,
		Ignored: ignored,
	}
}
