package cli

import (
	"fmt"
	"strings"
)

type invalidFlagError struct {
	flag    string
	value   string
	allowed []string
}

func (e invalidFlagError) Error() string {
	return fmt.Sprintf("invalid --%s %q (want %s)", e.flag, e.value, strings.Join(e.allowed, "|"))
}

type scriptActionError struct {
	arg    string
	reason string
}

func (e scriptActionError) Error() string {
	return fmt.Sprintf("bad action %q: %s", e.arg, e.reason)
}
