// Package charclass recognizes an Alt whose every branch is a single
// one-code-point or shorthand-class symbol and rewrites it into a compact CharClass node, coalescing
// adjacent code points into PCRE bracket-expression ranges.
package charclass

import (
	"sort"

	"github.com/coregx/regexsynth/grapheme"
	"github.com/coregx/regexsynth/synth"
)

// Coalesce walks e bottom-up, turning any Alt all of whose branches are
// single-symbol Literals (a one-code-point grapheme or a shorthand class
// token) into a CharClass, and leaves every other node shape untouched.
// It returns the rewritten tree.
func Coalesce(e synth.Expr) synth.Expr {
	switch v := e.(type) {
	case synth.Alt:
		opts := make([]synth.Expr, len(v.Options))
		for i, o := range v.Options {
			opts[i] = Coalesce(o)
		}
		if cls, ok := tryCoalesce(opts); ok {
			return cls
		}
		return synth.AltOf(opts...)
	case synth.Concat:
		parts := make([]synth.Expr, len(v.Parts))
		for i, p := range v.Parts {
			parts[i] = Coalesce(p)
		}
		return synth.ConcatOf(parts...)
	case synth.Optional:
		return synth.OptionalOf(Coalesce(v.Inner))
	case synth.Repetition:
		return synth.Repetition{Inner: Coalesce(v.Inner), Min: v.Min, Max: v.Max}
	default:
		return e
	}
}

// tryCoalesce reports whether every option is a single-symbol Literal
// whose symbol is a class token or a one-code-point grapheme and, if so,
// returns the CharClass gathering their symbols.
func tryCoalesce(options []synth.Expr) (synth.Expr, bool) {
	if len(options) < 2 {
		return nil, false
	}
	syms := make([]grapheme.Symbol, 0, len(options))
	for _, o := range options {
		lit, ok := o.(synth.Literal)
		if !ok || len(lit.Symbols) != 1 {
			return nil, false
		}
		if g, isGrapheme := lit.Symbols[0].(grapheme.Literal); isGrapheme && !g.IsSingleRune() {
			return nil, false
		}
		syms = append(syms, lit.Symbols[0])
	}
	return synth.CharClass{Symbols: dedupSort(syms)}, true
}

func dedupSort(syms []grapheme.Symbol) []grapheme.Symbol {
	seen := make(map[string]bool, len(syms))
	out := make([]grapheme.Symbol, 0, len(syms))
	for _, s := range syms {
		k := s.String()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Range is one entry CompactRanges produces from a CharClass's symbols: a
// contiguous [lo,hi] code point range, the form render.Render emits a
// CharClass's bracket expression from (e.g. "a","b","c","e" → a-c, e).
// Non-Literal symbols (ClassToken shorthands) pass through as their own
// one-element "range".
type Range struct {
	Lo, Hi rune
	// Token is non-nil when this entry is a shorthand class token rather
	// than a code point range.
	Token *grapheme.ClassToken
	// Raw is non-empty when this entry is a multi-rune grapheme cluster
	// that can't participate in a code point range and is rendered as-is.
	Raw string
}

// CompactRanges groups syms into Range entries.
func CompactRanges(syms []grapheme.Symbol) []Range {
	var runes []rune
	var ranges []Range

	for _, s := range syms {
		switch v := s.(type) {
		case grapheme.Literal:
			if v.IsSingleRune() {
				runes = append(runes, v.Runes[0])
				continue
			}
			ranges = append(ranges, Range{Raw: v.Value})
			continue
		case grapheme.ClassToken:
			tok := v
			ranges = append(ranges, Range{Token: &tok})
			continue
		}
	}

	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	i := 0
	for i < len(runes) {
		lo := runes[i]
		hi := lo
		j := i + 1
		for j < len(runes) && runes[j] == hi+1 {
			hi = runes[j]
			j++
		}
		// A run of two consecutive code points reads better as two bare
		// characters ("ab") than as a dash range ("a-b"); only three or
		// more collapse to Lo-Hi.
		if j-i <= 2 {
			for k := i; k < j; k++ {
				ranges = append(ranges, Range{Lo: runes[k], Hi: runes[k]})
			}
		} else {
			ranges = append(ranges, Range{Lo: lo, Hi: hi})
		}
		i = j
	}
	return ranges
}
