package synth

import (
	"sort"
	"strings"
)

// ConcatOf builds a Concat from parts, flattening nested Concats, dropping
// Empty parts (Empty is Concat's identity element), and merging adjacent
// Literal parts into one — the same normalization
// ast.rs's concatenate performs on adjacent Literal nodes.
func ConcatOf(parts ...Expr) Expr {
	flat := make([]Expr, 0, len(parts))
	for _, p := range parts {
		flattenConcatInto(&flat, p)
	}

	merged := make([]Expr, 0, len(flat))
	for _, p := range flat {
		if lit, ok := p.(Literal); ok && len(merged) > 0 {
			if prev, ok := merged[len(merged)-1].(Literal); ok {
				merged[len(merged)-1] = Literal{Symbols: concatSymbols(prev.Symbols, lit.Symbols)}
				continue
			}
		}
		merged = append(merged, p)
	}

	switch len(merged) {
	case 0:
		return Empty{}
	case 1:
		return merged[0]
	default:
		return Concat{Parts: merged}
	}
}

func concatSymbols[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func flattenConcatInto(out *[]Expr, e Expr) {
	switch v := e.(type) {
	case Empty:
		return
	case Concat:
		for _, p := range v.Parts {
			flattenConcatInto(out, p)
		}
	default:
		*out = append(*out, e)
	}
}

// AltOf builds an Alt from options, flattening nested Alts, deduplicating
// structurally identical branches, folding a bare Empty branch into an
// Optional wrapper around the rest, and factoring a common literal prefix
// or suffix shared by every remaining branch — grounded on ast.rs's
// union/new_alternation.
func AltOf(options ...Expr) Expr {
	flat := make([]Expr, 0, len(options))
	hasEmpty := false
	for _, o := range options {
		flattenAltInto(&flat, o, &hasEmpty)
	}

	flat = dedupExprs(flat)

	if len(flat) == 0 {
		if hasEmpty {
			return Empty{}
		}
		return Empty{}
	}

	var body Expr
	if len(flat) == 1 {
		body = flat[0]
	} else if factored := factorCommon(flat); factored != nil {
		body = factored
	} else {
		sort.SliceStable(flat, func(i, j int) bool { return altLess(flat[i], flat[j]) })
		body = Alt{Options: flat}
	}

	if hasEmpty {
		return OptionalOf(body)
	}
	return body
}

func flattenAltInto(out *[]Expr, e Expr, hasEmpty *bool) {
	switch v := e.(type) {
	case Empty:
		*hasEmpty = true
	case Alt:
		for _, o := range v.Options {
			flattenAltInto(out, o, hasEmpty)
		}
	case Optional:
		*hasEmpty = true
		flattenAltInto(out, v.Inner, hasEmpty)
	default:
		*out = append(*out, e)
	}
}

func dedupExprs(exprs []Expr) []Expr {
	seen := make(map[string]bool, len(exprs))
	out := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		k := exprKey(e)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	return out
}

// altLess orders Alt branches by descending length of their structural
// key (exprKey), then lexicographically by that key, matching grex's new_alternation ordering so output
// is deterministic and the longer (presumably more specific) branch is
// tried first.
func altLess(a, b Expr) bool {
	ka, kb := exprKey(a), exprKey(b)
	if len(ka) != len(kb) {
		return len(ka) > len(kb)
	}
	return ka < kb
}

// OptionalOf wraps e as Inner?, collapsing Optional(Optional(x)) and
// Optional(Empty) to their simplest form.
func OptionalOf(e Expr) Expr {
	switch v := e.(type) {
	case Empty:
		return Empty{}
	case Optional:
		return v
	default:
		return Optional{Inner: e}
	}
}

// factorCommon extracts a prefix or suffix shared by every branch in
// options, compared part by part and symbol by symbol (see toChain). It
// returns nil
// if no nontrivial common prefix or suffix exists across all branches.
func factorCommon(options []Expr) Expr {
	chains := make([][]Expr, len(options))
	for i, o := range options {
		chains[i] = toChain(o)
	}

	prefixLen := commonChainPrefix(chains)
	suffixLen := commonChainSuffix(chains, prefixLen)

	if prefixLen == 0 && suffixLen == 0 {
		return nil
	}

	prefix := chains[0][:prefixLen]
	var suffix []Expr
	if suffixLen > 0 {
		suffix = chains[0][len(chains[0])-suffixLen:]
	}

	middles := make([]Expr, len(chains))
	for i, c := range chains {
		mid := c[prefixLen : len(c)-suffixLen]
		middles[i] = ConcatOf(mid...)
	}

	var middleExpr Expr
	if allEqual(middles) {
		middleExpr = middles[0]
	} else {
		middleExpr = AltOf(middles...)
	}

	parts := make([]Expr, 0, len(prefix)+1+len(suffix))
	parts = append(parts, prefix...)
	parts = append(parts, middleExpr)
	parts = append(parts, suffix...)
	return ConcatOf(parts...)
}

func allEqual(exprs []Expr) bool {
	if len(exprs) == 0 {
		return true
	}
	k0 := exprKey(exprs[0])
	for _, e := range exprs[1:] {
		if exprKey(e) != k0 {
			return false
		}
	}
	return true
}

// toChain turns a Concat into its part slice, or wraps a single Expr as a
// one-element chain, so prefix/suffix comparison works uniformly. Every
// Literal is further split into one part per symbol, so branches that
// share only some leading or trailing graphemes still factor.
func toChain(e Expr) []Expr {
	parts := []Expr{e}
	if c, ok := e.(Concat); ok {
		parts = c.Parts
	}
	chain := make([]Expr, 0, len(parts))
	for _, p := range parts {
		if lit, ok := p.(Literal); ok {
			for _, s := range lit.Symbols {
				chain = append(chain, NewLiteral(s))
			}
			continue
		}
		chain = append(chain, p)
	}
	return chain
}

func commonChainPrefix(chains [][]Expr) int {
	if len(chains) == 0 {
		return 0
	}
	minLen := len(chains[0])
	for _, c := range chains[1:] {
		if len(c) < minLen {
			minLen = len(c)
		}
	}
	n := 0
	for n < minLen {
		k := exprKey(chains[0][n])
		match := true
		for _, c := range chains[1:] {
			if exprKey(c[n]) != k {
				match = false
				break
			}
		}
		if !match {
			break
		}
		n++
	}
	return n
}

func commonChainSuffix(chains [][]Expr, reservedPrefix int) int {
	if len(chains) == 0 {
		return 0
	}
	minLen := len(chains[0]) - reservedPrefix
	for _, c := range chains[1:] {
		if rem := len(c) - reservedPrefix; rem < minLen {
			minLen = rem
		}
	}
	n := 0
	for n < minLen {
		k := exprKey(chains[0][len(chains[0])-1-n])
		match := true
		for _, c := range chains[1:] {
			if exprKey(c[len(c)-1-n]) != k {
				match = false
				break
			}
		}
		if !match {
			break
		}
		n++
	}
	return n
}

// exprKey produces a structural key used for equality and ordering. It is
// not meant to be a rendering — see render.Render for that — only a
// stable, comparable fingerprint.
func exprKey(e Expr) string {
	var b strings.Builder
	writeKey(&b, e)
	return b.String()
}

func writeKey(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case Empty:
		b.WriteString("ε")
	case Literal:
		for _, s := range v.Symbols {
			b.WriteString(s.String())
		}
	case Concat:
		b.WriteString("(")
		for _, p := range v.Parts {
			writeKey(b, p)
		}
		b.WriteString(")")
	case Alt:
		b.WriteString("[")
		parts := make([]string, len(v.Options))
		for i, o := range v.Options {
			parts[i] = exprKey(o)
		}
		sort.Strings(parts)
		b.WriteString(strings.Join(parts, "|"))
		b.WriteString("]")
	case Optional:
		writeKey(b, v.Inner)
		b.WriteString("?")
	case Repetition:
		writeKey(b, v.Inner)
		b.WriteString("{")
		b.WriteString(itoa(v.Min))
		b.WriteString(",")
		b.WriteString(itoa(v.Max))
		b.WriteString("}")
	case CharClass:
		b.WriteString("<")
		for _, s := range v.Symbols {
			b.WriteString(s.String())
		}
		b.WriteString(">")
	}
}

func itoa(n int) string {
	if n < 0 {
		return "-" + itoa(-n)
	}
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
