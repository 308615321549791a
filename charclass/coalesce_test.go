package charclass

import (
	"testing"

	"github.com/coregx/regexsynth/grapheme"
	"github.com/coregx/regexsynth/synth"
)

func lit(s string) synth.Expr {
	return synth.NewLiteral(grapheme.Literal{Value: s, Runes: []rune(s)})
}

func TestCoalesceTurnsAltOfLiteralsIntoCharClass(t *testing.T) {
	alt := synth.Alt{Options: []synth.Expr{lit("a"), lit("b"), lit("c")}}
	got := Coalesce(alt)
	if _, ok := got.(synth.CharClass); !ok {
		t.Fatalf("expected CharClass, got %T", got)
	}
}

func TestCoalesceLeavesMultiSymbolAltAlone(t *testing.T) {
	multi := synth.ConcatOf(lit("a"), lit("b"))
	alt := synth.Alt{Options: []synth.Expr{multi, lit("c")}}
	got := Coalesce(alt)
	if _, ok := got.(synth.CharClass); ok {
		t.Fatalf("expected no CharClass for a multi-symbol branch, got CharClass")
	}
}

func TestCompactRangesKeepsTwoConsecutiveBare(t *testing.T) {
	syms := []grapheme.Symbol{
		grapheme.Literal{Value: "a", Runes: []rune{'a'}},
		grapheme.Literal{Value: "b", Runes: []rune{'b'}},
	}
	ranges := CompactRanges(syms)
	if len(ranges) != 2 {
		t.Fatalf("expected 2 bare entries (a, b), got %d: %+v", len(ranges), ranges)
	}
	if ranges[0].Lo != ranges[0].Hi || ranges[1].Lo != ranges[1].Hi {
		t.Errorf("expected two single-rune entries, got %+v", ranges)
	}
}

func TestCompactRangesMergesConsecutive(t *testing.T) {
	syms := []grapheme.Symbol{
		grapheme.Literal{Value: "a", Runes: []rune{'a'}},
		grapheme.Literal{Value: "b", Runes: []rune{'b'}},
		grapheme.Literal{Value: "c", Runes: []rune{'c'}},
		grapheme.Literal{Value: "e", Runes: []rune{'e'}},
	}
	ranges := CompactRanges(syms)
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges (a-c, e), got %d: %+v", len(ranges), ranges)
	}
	if ranges[0].Lo != 'a' || ranges[0].Hi != 'c' {
		t.Errorf("expected a-c, got %c-%c", ranges[0].Lo, ranges[0].Hi)
	}
	if ranges[1].Lo != 'e' || ranges[1].Hi != 'e' {
		t.Errorf("expected e, got %c-%c", ranges[1].Lo, ranges[1].Hi)
	}
}
