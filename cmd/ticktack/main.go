package main

import (
	"os"
	"strings"

	"ticktack/internal/cli"
)

func isScriptAction(s string) bool {
	k, _, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return false
	}
	switch strings.ToLower(k) {
	case "add", "done", "toggle", "delete", "rm":
		return true
	}
	return false
}

// rewriteScriptArgs lets `ticktack add=milk done=1` run as
// `ticktack script add=milk done=1`. Cobra treats the first positional token
// as a subcommand, so argv is rewritten before parsing.
func rewriteScriptArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--id-mode":   true,
		"--theme":     true,
		"--glyphs":    true,
		"--debug-log": true,
		"--log-level": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		if isScriptAction(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "script")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteScriptArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
