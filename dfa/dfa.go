// Package dfa builds a deterministic finite automaton that accepts
// exactly a finite set of grapheme-symbol words, and minimizes it via
// Hopcroft's partition-refinement algorithm.
//
// States are addressed by integer StateID rather than pointer identity:
// the DFA is a flat arena, not a pointer graph, so downstream stages
// (synth.FromDFA) can treat state identity as an array index.
package dfa

import (
	"sort"

	"github.com/coregx/regexsynth/grapheme"
	"github.com/coregx/regexsynth/internal/conv"
)

// StateID identifies a state by its index into DFA.States.
type StateID uint32

// State is one DFA state: whether it accepts, and its outgoing
// transitions keyed by the literal spelling of the symbol consumed.
type State struct {
	ID     StateID
	Accept bool
	Trans  map[string]StateID
}

// DFA is an arena of States plus the alphabet of symbols observed while
// building it. Alphabet maps a symbol's String() spelling to the Symbol
// value itself, since map keys must be comparable but grapheme.Literal
// carries a non-comparable []rune field.
type DFA struct {
	States   []*State
	Start    StateID
	Alphabet map[string]grapheme.Symbol
}

func newState(id StateID) *State {
	return &State{ID: id, Trans: make(map[string]StateID)}
}

// Build constructs the trie DFA that accepts exactly the given words: one
// path per word, states shared along common prefixes, no minimization
// applied yet.
func Build(words [][]grapheme.Symbol) *DFA {
	d := &DFA{Alphabet: make(map[string]grapheme.Symbol)}
	start := d.addState()
	d.Start = start

	for _, word := range words {
		cur := d.Start
		for _, sym := range word {
			key := sym.String()
			d.Alphabet[key] = sym
			s := d.States[cur]
			next, ok := s.Trans[key]
			if !ok {
				next = d.addState()
				s.Trans[key] = next
			}
			cur = next
		}
		d.States[cur].Accept = true
	}
	return d
}

func (d *DFA) addState() StateID {
	id := conv.IntToUint32(len(d.States))
	d.States = append(d.States, newState(StateID(id)))
	return StateID(id)
}

// AlphabetKeys returns the alphabet's symbol spellings in a fixed,
// sorted order, so callers that iterate transitions get deterministic
// output regardless of map iteration order.
func (d *DFA) AlphabetKeys() []string {
	keys := make([]string, 0, len(d.Alphabet))
	for k := range d.Alphabet {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
