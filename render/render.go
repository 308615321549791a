package render

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/coregx/regexsynth/charclass"
	"github.com/coregx/regexsynth/grapheme"
	"github.com/coregx/regexsynth/synth"
)

// Render spells out e as a PCRE pattern string under opts.
func Render(e synth.Expr, opts Options) string {
	if opts.Verbose {
		return renderVerbose(e, opts)
	}
	var b strings.Builder
	if opts.CaseInsensitive {
		b.WriteString("(?i)")
	}
	if opts.AnchorStart {
		b.WriteString("^")
	}
	if alt, ok := e.(synth.Alt); ok {
		b.WriteString(group(renderAlt(alt, opts), opts))
	} else {
		b.WriteString(renderExpr(e, opts))
	}
	if opts.AnchorEnd {
		b.WriteString("$")
	}
	return b.String()
}

// renderVerbose renders e in PCRE extended (?x) mode: the flag and each
// anchor take their own line, and a top-level Alt, or an Alt that is a
// direct part of a top-level Concat, spells its alternatives one per line
// with "|" lines between, indented two spaces per level of group nesting.
// Each alternative itself, and any Alt nested deeper, renders on a single
// line. This is the shape pinned by grex's own verbose-mode fixture
// (wasm_browser_tests.rs's test_verbose_mode).
func renderVerbose(e synth.Expr, opts Options) string {
	var lines []string
	if opts.CaseInsensitive {
		lines = append(lines, "(?ix)")
	} else {
		lines = append(lines, "(?x)")
	}
	if opts.AnchorStart {
		lines = append(lines, "^")
	}
	lines = append(lines, verboseLines(e, opts, 0)...)
	if opts.AnchorEnd {
		lines = append(lines, "$")
	}
	return strings.Join(lines, "\n")
}

// verboseLines renders e as one or more lines already indented for depth
// levels of enclosing group nesting (0 at the pattern's top level, right
// after the anchors). A bare Alt becomes a bracketed block with one
// alternative per line; a Concat containing an Alt part keeps its other
// parts inline around that block; anything else renders as a single plain
// line.
func verboseLines(e synth.Expr, opts Options, depth int) []string {
	switch v := e.(type) {
	case synth.Alt:
		return verboseAltLines(v, opts, depth)
	case synth.Concat:
		if concatHasAlt(v) {
			return verboseConcatLines(v, opts, depth)
		}
	}
	return []string{indent(depth) + renderExpr(e, opts)}
}

func concatHasAlt(c synth.Concat) bool {
	for _, p := range c.Parts {
		if _, ok := p.(synth.Alt); ok {
			return true
		}
	}
	return false
}

// verboseConcatLines keeps runs of non-Alt parts on one line and splices
// in a bracketed multi-line block wherever an Alt part appears.
func verboseConcatLines(c synth.Concat, opts Options, depth int) []string {
	var lines []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			lines = append(lines, indent(depth)+cur.String())
			cur.Reset()
		}
	}
	for _, p := range c.Parts {
		if alt, ok := p.(synth.Alt); ok {
			flush()
			lines = append(lines, verboseAltLines(alt, opts, depth)...)
			continue
		}
		cur.WriteString(renderExpr(p, opts))
	}
	flush()
	return lines
}

func verboseAltLines(a synth.Alt, opts Options, depth int) []string {
	open, close := "(?:", ")"
	if opts.CapturingGroups {
		open, close = "(", ")"
	}
	lines := make([]string, 0, len(a.Options)*2+2)
	lines = append(lines, indent(depth+1)+open)
	for i, o := range a.Options {
		if i > 0 {
			lines = append(lines, indent(depth+2)+"|")
		}
		lines = append(lines, indent(depth+2)+renderExpr(o, opts))
	}
	lines = append(lines, indent(depth+1)+close)
	return lines
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func group(s string, opts Options) string {
	if opts.CapturingGroups {
		return "(" + s + ")"
	}
	return "(?:" + s + ")"
}

func renderExpr(e synth.Expr, opts Options) string {
	switch v := e.(type) {
	case synth.Empty:
		return ""
	case synth.Literal:
		return renderLiteral(v, opts)
	case synth.Concat:
		return renderConcat(v, opts)
	case synth.Alt:
		return renderAlt(v, opts)
	case synth.Optional:
		return renderQuantified(v.Inner, opts) + "?"
	case synth.Repetition:
		return renderQuantified(v.Inner, opts) + repetitionSuffix(v)
	case synth.CharClass:
		return renderCharClass(v, opts)
	default:
		return ""
	}
}

func renderLiteral(l synth.Literal, opts Options) string {
	var b strings.Builder
	for _, s := range l.Symbols {
		switch sym := s.(type) {
		case grapheme.ClassToken:
			b.WriteString(sym.String())
		case grapheme.Literal:
			for _, r := range sym.Runes {
				b.WriteString(escapeLiteralRune(r, opts))
			}
		}
	}
	return b.String()
}

func renderConcat(c synth.Concat, opts Options) string {
	var b strings.Builder
	for _, p := range c.Parts {
		if alt, ok := p.(synth.Alt); ok {
			b.WriteString(group(renderAlt(alt, opts), opts))
			continue
		}
		b.WriteString(renderExpr(p, opts))
	}
	return b.String()
}

func renderAlt(a synth.Alt, opts Options) string {
	parts := make([]string, len(a.Options))
	for i, o := range a.Options {
		parts[i] = renderExpr(o, opts)
	}
	return strings.Join(parts, "|")
}

// renderQuantified renders inner the way a quantifier (? or {m,n}) needs
// its operand spelled: grouped unless inner is already a single atom
// (a Literal spelling one code point or one class token, or a CharClass).
func renderQuantified(inner synth.Expr, opts Options) string {
	if isSingleAtom(inner) {
		return renderExpr(inner, opts)
	}
	return group(renderExpr(inner, opts), opts)
}

func isSingleAtom(e synth.Expr) bool {
	switch v := e.(type) {
	case synth.Literal:
		return literalRuneCount(v) == 1
	case synth.CharClass:
		return true
	case synth.Empty:
		return true
	default:
		return false
	}
}

// literalRuneCount counts the total code points a Literal spells out, so
// a multi-rune grapheme cluster (e.g. a base letter plus a combining
// accent) is recognized as needing grouping before a quantifier is
// applied, exactly as a multi-symbol Literal would.
func literalRuneCount(l synth.Literal) int {
	n := 0
	for _, s := range l.Symbols {
		switch sym := s.(type) {
		case grapheme.Literal:
			n += len(sym.Runes)
		default:
			n++
		}
	}
	return n
}

func repetitionSuffix(r synth.Repetition) string {
	switch {
	case r.Max == -1 && r.Min == 0:
		return "*"
	case r.Max == -1 && r.Min == 1:
		return "+"
	case r.Max == -1:
		return "{" + strconv.Itoa(r.Min) + ",}"
	case r.Min == r.Max:
		return "{" + strconv.Itoa(r.Min) + "}"
	default:
		return "{" + strconv.Itoa(r.Min) + "," + strconv.Itoa(r.Max) + "}"
	}
}

func renderCharClass(c synth.CharClass, opts Options) string {
	ranges := charclass.CompactRanges(c.Symbols)

	// A class reducible to exactly one shorthand token renders bare.
	if len(ranges) == 1 && ranges[0].Token != nil {
		return ranges[0].Token.String()
	}

	var b strings.Builder
	b.WriteString("[")
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Token != nil || ranges[j].Token != nil {
			return ranges[i].Token != nil && ranges[j].Token == nil
		}
		return ranges[i].Lo < ranges[j].Lo
	})
	for _, rg := range ranges {
		switch {
		case rg.Token != nil:
			b.WriteString(rg.Token.String())
		case rg.Raw != "":
			for _, r := range []rune(rg.Raw) {
				b.WriteString(escapeClassRune(r, opts))
			}
		case rg.Lo == rg.Hi:
			b.WriteString(escapeClassRune(rg.Lo, opts))
		default:
			b.WriteString(escapeClassRune(rg.Lo, opts))
			b.WriteString("-")
			b.WriteString(escapeClassRune(rg.Hi, opts))
		}
	}
	b.WriteString("]")
	return b.String()
}

// literalEscapes mirrors component.rs's Display escape table for the
// characters that are metacharacters outside a character class.
var literalEscapes = map[rune]string{
	'\t': `\t`, '\n': `\n`, '\r': `\r`,
	'(': `\(`, ')': `\)`, '[': `\[`, ']': `\]`,
	'{': `\{`, '}': `\}`, '\\': `\\`,
	'+': `\+`, '*': `\*`, '-': `\-`, '.': `\.`,
	'?': `\?`, '|': `\|`, '^': `\^`, '$': `\$`,
}

func escapeLiteralRune(r rune, opts Options) string {
	if esc, ok := literalEscapes[r]; ok {
		return esc
	}
	// In (?x) mode PCRE ignores unescaped whitespace outside a character
	// class, so a literal space must be escaped to still match one.
	if opts.Verbose && r == ' ' {
		return `\ `
	}
	if opts.EscapeNonASCII && r > 0x7F {
		return escapeNonASCII(r, opts.WithSurrogates)
	}
	return string(r)
}

// classEscapes is the smaller escape set needed inside [...]: only the
// characters that are metacharacters in that context.
var classEscapes = map[rune]string{
	']': `\]`, '\\': `\\`, '^': `\^`, '-': `\-`,
}

func escapeClassRune(r rune, opts Options) string {
	if esc, ok := classEscapes[r]; ok {
		return esc
	}
	if opts.EscapeNonASCII && r > 0x7F {
		return escapeNonASCII(r, opts.WithSurrogates)
	}
	return string(r)
}

// escapeNonASCII renders r as \u{HHHH}, or as a UTF-16 surrogate pair of
// \u{HHHH} escapes when withSurrogates is set and r is above the Basic
// Multilingual Plane — grounded on postprocessing.rs's
// escape_non_ascii_chars/convert_to_surrogate_pair.
func escapeNonASCII(r rune, withSurrogates bool) string {
	if withSurrogates && r > 0xFFFF {
		hi, lo := utf16.EncodeRune(r)
		return "\\u{" + strings.ToLower(strconv.FormatInt(int64(hi), 16)) + "}" +
			"\\u{" + strings.ToLower(strconv.FormatInt(int64(lo), 16)) + "}"
	}
	return "\\u{" + strings.ToLower(strconv.FormatInt(int64(r), 16)) + "}"
}
