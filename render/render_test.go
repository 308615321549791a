package render

import (
	"testing"

	"github.com/coregx/regexsynth/grapheme"
	"github.com/coregx/regexsynth/synth"
)

func lit(s string) synth.Expr {
	return synth.NewLiteral(grapheme.Literal{Value: s, Runes: []rune(s)})
}

func TestRenderAnchoredLiteral(t *testing.T) {
	got := Render(lit("abc"), DefaultOptions())
	if got != "^abc$" {
		t.Errorf("got %q, want %q", got, "^abc$")
	}
}

func TestRenderNoAnchors(t *testing.T) {
	opts := DefaultOptions()
	opts.AnchorStart, opts.AnchorEnd = false, false
	got := Render(lit("abc"), opts)
	if got != "abc" {
		t.Errorf("got %q, want %q", got, "abc")
	}
}

func TestRenderAltGroupsInsideConcat(t *testing.T) {
	e := synth.ConcatOf(lit("a"), synth.Alt{Options: []synth.Expr{lit("b"), lit("c")}})
	got := Render(e, DefaultOptions())
	if got != "^a(?:b|c)$" && got != "^a(?:c|b)$" {
		t.Errorf("got %q", got)
	}
}

// TestRenderVerboseModeIsMultiLine pins the ["a","b","bcd"] verbose scenario:
// the synthesized tree for that input is an Alt of "b(?:cd)?" and "a".
// Verbose mode must lay it out across lines, grouped and indented, matching
// grex's own verbose-mode fixture shape (e.g.
// wasm_browser_tests.rs::test_verbose_mode).
func TestRenderVerboseModeIsMultiLine(t *testing.T) {
	e := synth.Alt{Options: []synth.Expr{
		synth.ConcatOf(lit("b"), synth.Optional{Inner: lit("cd")}),
		lit("a"),
	}}
	opts := DefaultOptions()
	opts.Verbose = true
	got := Render(e, opts)
	want := "(?x)\n^\n  (?:\n    b(?:cd)?\n    |\n    a\n  )\n$"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestRenderVerboseModeEscapesSpaces mirrors grex's own verbose-mode
// fixture: in PCRE extended mode a literal space must be escaped, or PCRE
// would silently treat it as insignificant whitespace and drop it.
func TestRenderVerboseModeEscapesSpaces(t *testing.T) {
	e := synth.Alt{Options: []synth.Expr{lit("abc  "), lit("123")}}
	opts := DefaultOptions()
	opts.Verbose = true
	got := Render(e, opts)
	want := "(?x)\n^\n  (?:\n    abc\\ \\ \n    |\n    123\n  )\n$"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderTopLevelAltIsGrouped(t *testing.T) {
	e := synth.Alt{Options: []synth.Expr{lit("a"), lit("b")}}
	got := Render(e, DefaultOptions())
	if got != "^(?:a|b)$" && got != "^(?:b|a)$" {
		t.Errorf("got %q, want a grouped top-level alternation", got)
	}
}

func TestRenderTopLevelAltIsGroupedWithoutAnchors(t *testing.T) {
	opts := DefaultOptions()
	opts.AnchorStart, opts.AnchorEnd = false, false
	e := synth.Alt{Options: []synth.Expr{lit("a"), lit("b")}}
	got := Render(e, opts)
	if got != "(?:a|b)" && got != "(?:b|a)" {
		t.Errorf("got %q, want a grouped top-level alternation", got)
	}
}

func TestRenderCapturingGroups(t *testing.T) {
	opts := DefaultOptions()
	opts.CapturingGroups = true
	e := synth.ConcatOf(lit("a"), synth.Alt{Options: []synth.Expr{lit("b"), lit("c")}})
	got := Render(e, opts)
	if got != "^a(b|c)$" && got != "^a(c|b)$" {
		t.Errorf("got %q", got)
	}
}

func TestRenderRepetition(t *testing.T) {
	e := synth.Repetition{Inner: lit("a"), Min: 4, Max: 4}
	got := Render(e, DefaultOptions())
	if got != "^a{4}$" {
		t.Errorf("got %q, want %q", got, "^a{4}$")
	}
}

func TestRenderRepetitionOfMultiCharUnitGroups(t *testing.T) {
	e := synth.Repetition{Inner: lit("abc"), Min: 2, Max: 2}
	got := Render(e, DefaultOptions())
	if got != "^(?:abc){2}$" {
		t.Errorf("got %q, want %q", got, "^(?:abc){2}$")
	}
}

func TestRenderEscapesMetacharacters(t *testing.T) {
	got := Render(lit("a.b"), DefaultOptions())
	if got != `^a\.b$` {
		t.Errorf("got %q, want %q", got, `^a\.b$`)
	}
}

func TestRenderCaseInsensitivePrefix(t *testing.T) {
	opts := DefaultOptions()
	opts.CaseInsensitive = true
	got := Render(lit("a"), opts)
	if got != "(?i)^a$" {
		t.Errorf("got %q, want %q", got, "(?i)^a$")
	}
}

func TestRenderCharClass(t *testing.T) {
	cc := synth.CharClass{Symbols: []grapheme.Symbol{
		grapheme.Literal{Value: "a", Runes: []rune{'a'}},
		grapheme.Literal{Value: "b", Runes: []rune{'b'}},
		grapheme.Literal{Value: "c", Runes: []rune{'c'}},
	}}
	got := Render(cc, DefaultOptions())
	if got != "^[a-c]$" {
		t.Errorf("got %q, want %q", got, "^[a-c]$")
	}
}

func TestRenderEscapeNonASCII(t *testing.T) {
	opts := DefaultOptions()
	opts.EscapeNonASCII = true
	got := Render(lit("♥"), opts)
	if got != `^\u{2665}$` {
		t.Errorf("got %q, want %q", got, `^\u{2665}$`)
	}
}
