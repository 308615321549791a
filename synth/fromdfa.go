package synth

import (
	"github.com/coregx/regexsynth/dfa"
)

// FromDFA synthesizes an expression tree equivalent to d via Brzozowski-
// style state elimination: states are treated as variables in a system of
// regular-language equations (a[i][j] is the union of symbols labeling
// i→j edges, b[i] is Empty when i accepts) and eliminated one at a time,
// simplifying inline after every elimination via AltOf/ConcatOf/starOf
// rather than as a second pass over the result — spec.md §4.4's ordering
// requirement.
func FromDFA(d *dfa.DFA) Expr {
	n := len(d.States)
	if n == 0 {
		return Empty{}
	}

	a := make([][]Expr, n)
	for i := range a {
		a[i] = make([]Expr, n)
	}
	b := make([]Expr, n)

	for i, st := range d.States {
		for sym, to := range st.Trans {
			lit := NewLiteral(d.Alphabet[sym])
			if a[i][int(to)] == nil {
				a[i][int(to)] = lit
			} else {
				a[i][int(to)] = AltOf(a[i][int(to)], lit)
			}
		}
		if st.Accept {
			b[i] = Empty{}
		}
	}

	for k := n - 1; k >= 0; k-- {
		if a[k][k] != nil {
			star := starOf(a[k][k])
			a[k][k] = nil
			for i := 0; i < n; i++ {
				if i == k || a[i][k] == nil {
					continue
				}
				a[i][k] = ConcatOf(a[i][k], star)
			}
		}

		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			aik := a[i][k]
			if aik == nil {
				continue
			}
			for j := 0; j < n; j++ {
				if j == k {
					continue
				}
				akj := a[k][j]
				if akj == nil {
					continue
				}
				cand := ConcatOf(aik, akj)
				if a[i][j] == nil {
					a[i][j] = cand
				} else {
					a[i][j] = AltOf(a[i][j], cand)
				}
			}
			if b[k] != nil {
				cand := ConcatOf(aik, b[k])
				if b[i] == nil {
					b[i] = cand
				} else {
					b[i] = AltOf(b[i], cand)
				}
			}
		}
	}

	if b[d.Start] == nil {
		return Empty{}
	}
	return b[d.Start]
}

// starOf builds the Kleene star of e, collapsing Star(Empty) to Empty
// (the language {ε} is already closed under repetition) and
// Star(Repetition{0,-1}) to itself.
func starOf(e Expr) Expr {
	switch v := e.(type) {
	case Empty:
		return Empty{}
	case Repetition:
		if v.Min == 0 && v.Max == -1 {
			return v
		}
	}
	return Repetition{Inner: e, Min: 0, Max: -1}
}
