package grapheme

import (
	"unicode"
)

// Segment splits s into extended grapheme clusters and returns each as a
// Literal Symbol. A cluster is a base rune followed by any run of
// combining marks (Unicode categories Mn, Mc, Me), a zero-width-joiner
// emoji sequence, a CRLF pair, or a regional-indicator flag pair.
//
// A cluster containing an unassigned code point is instead split back
// down to individual runes, and so is a two-rune cluster where one rune is
// a bare backslash: the renderer needs to escape the backslash on its own.
// A base rune with its combining marks stays one atomic Literal.
func Segment(s string) []Symbol {
	runes := []rune(s)
	var out []Symbol
	i := 0
	for i < len(runes) {
		cluster, n := nextCluster(runes[i:])
		if shouldSplit(cluster) {
			for _, r := range cluster {
				out = append(out, literalFromRunes([]rune{r}))
			}
		} else {
			out = append(out, literalFromRunes(cluster))
		}
		i += n
	}
	return out
}

// SegmentAll tokenizes every test case in cases. It never returns an
// error itself; the caller (regexsynth.Builder) is responsible for
// rejecting an empty cases slice per spec.md §7.
func SegmentAll(cases []string) [][]Symbol {
	out := make([][]Symbol, len(cases))
	for i, c := range cases {
		out[i] = Segment(c)
	}
	return out
}

func literalFromRunes(rs []rune) Literal {
	cp := make([]rune, len(rs))
	copy(cp, rs)
	return Literal{Value: string(rs), Runes: cp}
}

// shouldSplit reports whether a cluster should be broken back into
// individual runes rather than kept as one atomic Literal: a two-rune
// cluster containing a backslash, or any cluster containing an unassigned
// code point.
func shouldSplit(cluster []rune) bool {
	if len(cluster) == 2 {
		for _, r := range cluster {
			if r == '\\' {
				return true
			}
		}
	}
	for _, r := range cluster {
		if isUnassigned(r) {
			return true
		}
	}
	return false
}

func isMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r)
}

func isUnassigned(r rune) bool {
	return !unicode.In(r, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C)
}

const (
	zwj             rune = 0x200D
	regionalIndFrom rune = 0x1F1E6
	regionalIndTo   rune = 0x1F1FF
)

// nextCluster returns the extended grapheme cluster starting at rs[0] and
// its length in runes.
func nextCluster(rs []rune) ([]rune, int) {
	if len(rs) == 0 {
		return nil, 0
	}
	// CRLF is one cluster.
	if rs[0] == '\r' && len(rs) > 1 && rs[1] == '\n' {
		return rs[:2], 2
	}
	// A pair of regional indicators forms a flag cluster.
	if isRegionalIndicator(rs[0]) && len(rs) > 1 && isRegionalIndicator(rs[1]) {
		return rs[:2], 2
	}

	end := 1
	for end < len(rs) {
		r := rs[end]
		if isMark(r) {
			end++
			continue
		}
		if r == zwj && end+1 < len(rs) {
			end += 2
			continue
		}
		break
	}
	return rs[:end], end
}

func isRegionalIndicator(r rune) bool {
	return r >= regionalIndFrom && r <= regionalIndTo
}
