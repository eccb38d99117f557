package tui

import "testing"

func TestGlyphs_Preference(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}
	if got := glyphCheckbox(true); got != "[x]" {
		t.Fatalf("expected ascii done checkbox; got %q", got)
	}

	// Unknown values should be ignored (keep current).
	applyGlyphPreference("bogus")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}

	applyGlyphPreference("UTF8")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs; got %v", got)
	}
	if got := glyphCheckbox(false); got != "☐" {
		t.Fatalf("expected unicode open checkbox; got %q", got)
	}
}
