// Package synth turns a minimized DFA into an algebraic expression tree
// via Brzozowski-style state elimination, and keeps that tree in a
// canonical, simplified form as it's built.
package synth

import "github.com/coregx/regexsynth/grapheme"

// Expr is a node of the synthesized expression tree. It is a closed sum
// type: Empty, Literal, Concat, Alt, Optional, Repetition, CharClass.
type Expr interface {
	// expr is unexported so Expr stays a closed sum type.
	expr()
}

// Empty matches the empty string and nothing else. It is the identity
// element for Concat and the annihilator that Alt folds into Optional.
type Empty struct{}

func (Empty) expr() {}

// Literal is one or more atomic symbols consumed back to back, kept as a
// single node so the renderer doesn't need to re-discover adjacency.
// ConcatOf merges neighboring Literals into one.
type Literal struct {
	Symbols []grapheme.Symbol
}

func (Literal) expr() {}

// NewLiteral wraps a single symbol as a one-element Literal.
func NewLiteral(s grapheme.Symbol) Literal {
	return Literal{Symbols: []grapheme.Symbol{s}}
}

// Concat is an ordered sequence of sub-expressions, each matched in turn.
// A well-formed Concat never contains another Concat directly (simplify
// flattens those) and never contains an Empty (simplify drops those).
type Concat struct {
	Parts []Expr
}

func (Concat) expr() {}

// Alt is an unordered choice between two or more alternatives. A
// well-formed Alt never contains another Alt directly, never contains
// duplicate branches, and is kept sorted by simplify's canonical order so
// equal Alts compare equal structurally.
type Alt struct {
	Options []Expr
}

func (Alt) expr() {}

// Optional matches Inner zero or one times: Inner? .
type Optional struct {
	Inner Expr
}

func (Optional) expr() {}

// Repetition matches Inner between Min and Max times inclusive. Max == -1
// means unbounded (Inner{Min,}); Min == 0 && Max == 1 is never
// constructed directly — simplify produces an Optional instead.
type Repetition struct {
	Inner Expr
	Min   int
	Max   int
}

func (Repetition) expr() {}

// CharClass matches exactly one symbol drawn from Symbols, rendered as a
// PCRE bracket expression (or a bare shorthand class if Symbols holds a
// single ClassToken). Produced by the charclass package from an Alt whose
// every branch is a single-symbol Literal.
type CharClass struct {
	Symbols []grapheme.Symbol
}

func (CharClass) expr() {}
