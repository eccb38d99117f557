package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestApplyThemePreference(t *testing.T) {
	prev := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(prev) })
	t.Setenv("COLORFGBG", "")

	applyThemePreference("light")
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected light background")
	}
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light markdown style; got %q", got)
	}

	applyThemePreference("DARK")
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("expected dark background")
	}
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark markdown style; got %q", got)
	}

	t.Setenv("COLORFGBG", "0;15")
	applyThemePreference("auto")
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected COLORFGBG bg=15 to mean light")
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := renderMarkdown("   ", 40); got != "" {
		t.Fatalf("expected empty output for blank markdown; got %q", got)
	}

	out := renderMarkdown(KeyHelpMarkdown(), 60)
	if !strings.Contains(out, "TICK TACK keys") {
		t.Fatalf("expected rendered title; got:\n%s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newlines trimmed")
	}
}
