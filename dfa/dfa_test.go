package dfa

import (
	"testing"

	"github.com/coregx/regexsynth/grapheme"
)

func words(strs ...string) [][]grapheme.Symbol {
	out := make([][]grapheme.Symbol, len(strs))
	for i, s := range strs {
		out[i] = grapheme.Segment(s)
	}
	return out
}

func accepts(d *DFA, s string) bool {
	cur := d.Start
	for _, sym := range grapheme.Segment(s) {
		st := d.States[cur]
		next, ok := st.Trans[sym.String()]
		if !ok {
			return false
		}
		cur = next
	}
	return d.States[cur].Accept
}

func TestBuildAcceptsExactSet(t *testing.T) {
	d := Build(words("a", "b", "bcd"))
	for _, s := range []string{"a", "b", "bcd"} {
		if !accepts(d, s) {
			t.Errorf("expected %q to be accepted", s)
		}
	}
	for _, s := range []string{"c", "ab", "bc", ""} {
		if accepts(d, s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	cases := []string{"a", "b", "bcd"}
	d := Build(words(cases...))
	m := Minimize(d)

	for _, s := range cases {
		if !accepts(m, s) {
			t.Errorf("minimized DFA rejects %q, should accept", s)
		}
	}
	for _, s := range []string{"c", "ab", "bc"} {
		if accepts(m, s) {
			t.Errorf("minimized DFA accepts %q, should reject", s)
		}
	}
}

func TestMinimizeReducesStateCount(t *testing.T) {
	// "ab" and "cb" share a mergeable suffix state once minimized: the
	// trie keeps them distinct, so Hopcroft must end with fewer states.
	d := Build(words("ab", "cb"))
	m := Minimize(d)
	if len(m.States) >= len(d.States) {
		t.Errorf("minimized DFA has %d states, trie has %d; expected fewer", len(m.States), len(d.States))
	}
}
