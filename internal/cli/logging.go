package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// newLogger returns a logger writing to path. The TUI owns the terminal, so
// with no path the logger discards everything.
func newLogger(path, level string) (*logrus.Logger, func() error, error) {
	lg := logrus.New()
	lg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, nil, invalidFlagError{flag: "log-level", value: level, allowed: []string{"trace", "debug", "info", "warn", "error"}}
	}
	lg.SetLevel(lvl)

	path = strings.TrimSpace(path)
	if path == "" {
		lg.SetOutput(io.Discard)
		return lg, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	lg.SetOutput(f)
	return lg, f.Close, nil
}
