// Package repetition contracts repeated runs within a synthesized
// expression's literal spans into Repetition nodes: consecutive repeats
// of a single symbol ("aaaa") are rewritten as Inner{count,count}, subject
// to the caller's minimum-repetitions and minimum-substring-length
// thresholds. A repeated multi-symbol substring ("abcabcabc") is not
// contracted, because the occurrence scan (collectOccurrences) records
// one-symbol units only.
package repetition

import (
	"sort"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/regexsynth/grapheme"
	"github.com/coregx/regexsynth/internal/conv"
	"github.com/coregx/regexsynth/synth"
)

// Config controls how aggressively repeated runs are contracted.
type Config struct {
	// MinRepetitions is the minimum number of repeats a run must have
	// beyond one occurrence to be worth contracting: a run contracts only
	// if its occurrence count is strictly greater than MinRepetitions.
	// Default: 1 (only runs of 2 or more repeats ever contract).
	MinRepetitions int

	// MinSubstringLength is the minimum symbol count a repeated unit must
	// have to be contracted. Default: 1.
	MinSubstringLength int
}

// DefaultConfig returns the same defaults grex ships: a run must repeat
// more than once, and the repeated unit may be as short as one symbol.
func DefaultConfig() Config {
	return Config{MinRepetitions: 1, MinSubstringLength: 1}
}

// Analyze walks e, contracting repeated runs inside every Literal node it
// finds, and returns the rewritten tree.
func Analyze(e synth.Expr, cfg Config) synth.Expr {
	switch v := e.(type) {
	case synth.Literal:
		return analyzeLiteral(v, cfg)
	case synth.Concat:
		parts := make([]synth.Expr, len(v.Parts))
		for i, p := range v.Parts {
			parts[i] = Analyze(p, cfg)
		}
		return synth.ConcatOf(parts...)
	case synth.Alt:
		opts := make([]synth.Expr, len(v.Options))
		for i, o := range v.Options {
			opts[i] = Analyze(o, cfg)
		}
		return synth.AltOf(opts...)
	case synth.Optional:
		return synth.OptionalOf(Analyze(v.Inner, cfg))
	case synth.Repetition:
		return synth.Repetition{Inner: Analyze(v.Inner, cfg), Min: v.Min, Max: v.Max}
	default:
		return e
	}
}

// candidateRange is a maximal contiguous run of a repeated unit, in
// symbol-index space: the unit occupies [start, start+period) and the
// run repeats back-to-back up to end.
type candidateRange struct {
	start, end, period int
}

func (r candidateRange) coverage() int { return r.end - r.start }

func analyzeLiteral(lit synth.Literal, cfg Config) synth.Expr {
	syms := lit.Symbols
	n := len(syms)
	if n < 2 {
		return lit
	}

	occurrences := collectOccurrences(syms)
	if len(occurrences) == 0 {
		return lit
	}

	candidates := buildCandidateRanges(occurrences, cfg)
	if len(candidates) == 0 {
		return lit
	}

	selected := selectNonOverlapping(candidates)
	if len(selected) == 0 {
		return lit
	}

	return spliceRepetitions(syms, selected, cfg)
}

// encodeSymbols maps each distinct symbol spelling to a 2-byte index (in
// order of first appearance) and returns the resulting byte sequence,
// two bytes per symbol, so substring equality in byte space exactly
// matches substring equality in symbol space and no match can straddle a
// symbol boundary.
func encodeSymbols(syms []grapheme.Symbol) []byte {
	index := make(map[string]uint16, len(syms))
	next := 0
	out := make([]byte, len(syms)*2)
	for i, s := range syms {
		key := s.String()
		id, ok := index[key]
		if !ok {
			id = conv.IntToUint16(next)
			index[key] = id
			next++
		}
		out[2*i] = byte(id >> 8)
		out[2*i+1] = byte(id)
	}
	return out
}

// collectOccurrences registers every distinct substring of syms (length 1
// up to half of len(syms)) as an Aho-Corasick pattern, then scans the
// encoded sequence once, advancing past each match, to bucket every
// matched span's content to the symbol-index positions where it starts.
// The result maps a unit (by its symbol-string content) to its list of
// starting symbol indices. Every position matches a one-symbol pattern,
// and the scan reports that one-symbol match and moves past it, so only
// one-symbol units appear in the result; longer units are never recorded.
func collectOccurrences(syms []grapheme.Symbol) map[string][]int {
	n := len(syms)
	haystack := encodeSymbols(syms)

	builder := ahocorasick.NewBuilder()
	seen := make(map[string]bool)
	for j := 1; j <= n/2; j++ {
		for i := 0; i+j <= n; i++ {
			key := string(haystack[i*2 : (i+j)*2])
			if !seen[key] {
				seen[key] = true
				builder.AddPattern([]byte(key))
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil
	}

	occurrences := make(map[string][]int)
	pos := 0
	for {
		m := automaton.Find(haystack, pos)
		if m == nil {
			break
		}
		content := string(haystack[m.Start:m.End])
		occurrences[content] = append(occurrences[content], m.Start/2)

		if m.End > pos {
			pos = m.End
		} else {
			pos++
		}
		if pos > len(haystack) {
			break
		}
	}
	return occurrences
}

// buildCandidateRanges turns occurrence buckets into maximal contiguous
// repetition ranges, grounded on cluster.rs's create_ranges_of_repetitions:
// a bucket only yields ranges if every consecutive pair of its occurrence
// indices is at least one period apart (otherwise the occurrences
// overlap and can't represent a clean back-to-back repetition), and
// consecutive occurrences exactly one period apart coalesce into a single
// range.
func buildCandidateRanges(occurrences map[string][]int, cfg Config) []candidateRange {
	var out []candidateRange

	for content, indices := range occurrences {
		period := len(content) / 2
		if period == 0 || period < cfg.MinSubstringLength {
			continue
		}
		sort.Ints(indices)

		periodic := true
		for k := 1; k < len(indices); k++ {
			if indices[k]-indices[k-1] < period {
				periodic = false
				break
			}
		}
		if !periodic {
			continue
		}

		i := 0
		for i < len(indices) {
			start := indices[i]
			end := start + period
			j := i + 1
			for j < len(indices) && indices[j] == end {
				end += period
				j++
			}
			count := (end - start) / period
			if count > cfg.MinRepetitions {
				out = append(out, candidateRange{start: start, end: end, period: period})
			}
			i = j
		}
	}
	return out
}

// selectNonOverlapping greedily picks candidate ranges by the tie-break
// spec.md §4.5 defines: larger covered length first, then smaller period,
// then smaller offset, skipping any candidate that overlaps one already
// chosen.
func selectNonOverlapping(candidates []candidateRange) []candidateRange {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.coverage() != b.coverage() {
			return a.coverage() > b.coverage()
		}
		if a.period != b.period {
			return a.period < b.period
		}
		return a.start < b.start
	})

	var selected []candidateRange
	overlaps := func(a, b candidateRange) bool {
		return a.start < b.end && b.start < a.end
	}
	for _, c := range candidates {
		conflict := false
		for _, s := range selected {
			if overlaps(c, s) {
				conflict = true
				break
			}
		}
		if !conflict {
			selected = append(selected, c)
		}
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].start < selected[j].start })
	return selected
}

// spliceRepetitions rebuilds the symbol sequence as a Concat of plain
// literal runs interleaved with Repetition nodes for each selected range,
// recursively re-analyzing each repeated unit's own symbols so nested
// repetitions (e.g. "aaa" inside a larger repeated block) still contract.
func spliceRepetitions(syms []grapheme.Symbol, selected []candidateRange, cfg Config) synth.Expr {
	var pieces []synth.Expr
	var run []grapheme.Symbol
	flush := func() {
		if len(run) == 0 {
			return
		}
		litSyms := make([]grapheme.Symbol, len(run))
		copy(litSyms, run)
		pieces = append(pieces, synth.Literal{Symbols: litSyms})
		run = nil
	}

	i := 0
	n := len(syms)
	for i < n {
		matched := false
		for _, c := range selected {
			if c.start == i {
				flush()
				unit := make([]grapheme.Symbol, c.period)
				copy(unit, syms[i:i+c.period])
				inner := Analyze(synth.Literal{Symbols: unit}, cfg)
				count := c.coverage() / c.period
				pieces = append(pieces, synth.Repetition{Inner: inner, Min: count, Max: count})
				i = c.end
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		run = append(run, syms[i])
		i++
	}
	flush()

	return synth.ConcatOf(pieces...)
}
