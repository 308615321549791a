// Package grapheme tokenizes input strings into the atomic units the rest
// of the synthesis pipeline operates on, and classifies individual runes
// against the shorthand character classes (\d \s \w and their negations).
package grapheme

import "sort"

// Symbol is one atomic token of the alphabet the DFA is built over. A
// Symbol is either a Literal grapheme cluster or a ClassToken standing in
// for a shorthand character class once the caller has enabled that
// conversion.
type Symbol interface {
	// String renders the symbol the way it should appear in a pattern,
	// before any further escaping is applied by the renderer.
	String() string

	// symbol is unexported so Symbol stays a closed sum type.
	symbol()
}

// Literal is a single extended grapheme cluster from the input, stored
// both as its literal string value and as its decoded rune sequence so
// later stages (char-class coalescing, escaping) can inspect it without
// re-decoding UTF-8.
type Literal struct {
	Value string
	Runes []rune
}

func (Literal) symbol() {}

// String returns the grapheme's raw value.
func (l Literal) String() string { return l.Value }

// IsSingleRune reports whether this literal consists of exactly one code
// point, the precondition for shorthand character-class conversion and
// for participating in a charclass.Coalesce range.
func (l Literal) IsSingleRune() bool { return len(l.Runes) == 1 }

// Class identifies one of the six PCRE shorthand character classes.
type Class int

const (
	// ClassDigit is \d.
	ClassDigit Class = iota
	// ClassWord is \w.
	ClassWord
	// ClassSpace is \s.
	ClassSpace
	// ClassNonDigit is \D.
	ClassNonDigit
	// ClassNonWord is \W.
	ClassNonWord
	// ClassNonSpace is \S.
	ClassNonSpace
)

// pcre holds the literal PCRE spelling of each Class.
var pcre = map[Class]string{
	ClassDigit:    `\d`,
	ClassWord:     `\w`,
	ClassSpace:    `\s`,
	ClassNonDigit: `\D`,
	ClassNonWord:  `\W`,
	ClassNonSpace: `\S`,
}

// ClassToken is a Symbol standing in for every rune matched by a shorthand
// character class, produced by Classify when the corresponding
// conversion is enabled.
type ClassToken struct {
	Class Class
}

func (ClassToken) symbol() {}

// String returns the PCRE spelling of the underlying class, e.g. `\d`.
func (c ClassToken) String() string { return pcre[c.Class] }

// ClassifyOptions selects which shorthand conversions Classify considers,
// mirroring the six independent toggles of spec.md §4.1/§6.
type ClassifyOptions struct {
	Digit, Word, Space, NonDigit, NonWord, NonSpace bool
}

// Any reports whether at least one conversion is enabled.
func (o ClassifyOptions) Any() bool {
	return o.Digit || o.Word || o.Space || o.NonDigit || o.NonWord || o.NonSpace
}

// Classify converts a single-rune Literal into a ClassToken if any enabled
// conversion matches it, applying the fixed precedence order \d > \w > \s >
// \D > \W > \S (spec.md §4.1). It returns the Literal unchanged, as a
// Symbol, if no enabled conversion applies.
func Classify(l Literal, opts ClassifyOptions) Symbol {
	if !opts.Any() || !l.IsSingleRune() {
		return l
	}
	r := l.Runes[0]
	switch {
	case opts.Digit && isDigit(r):
		return ClassToken{ClassDigit}
	case opts.Word && isWord(r):
		return ClassToken{ClassWord}
	case opts.Space && isSpace(r):
		return ClassToken{ClassSpace}
	case opts.NonDigit && !isDigit(r):
		return ClassToken{ClassNonDigit}
	case opts.NonWord && !isWord(r):
		return ClassToken{ClassNonWord}
	case opts.NonSpace && !isSpace(r):
		return ClassToken{ClassNonSpace}
	default:
		return l
	}
}

// SortSymbols orders symbols deterministically for output that must not
// depend on map iteration order (e.g. alternation branch rendering before
// coalescing imposes its own order).
func SortSymbols(syms []Symbol) {
	sort.SliceStable(syms, func(i, j int) bool {
		return syms[i].String() < syms[j].String()
	})
}
