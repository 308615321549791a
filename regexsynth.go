// Package regexsynth synthesizes a single PCRE regular expression that
// matches exactly a finite set of test strings, optionally generalized
// through well-defined conversions (shorthand character classes,
// repetition contraction, case folding, non-ASCII escaping, anchors,
// grouping style).
//
// Example:
//
//	pattern, err := regexsynth.Synthesize([]string{"a", "b", "c"}, regexsynth.DefaultConfig())
//	// pattern == "^[a-c]$"
//
// The pipeline is pure and single-threaded: no I/O, no shared state, no
// cancellation points. A Builder and everything it produces must be used
// from a single goroutine.
package regexsynth

import (
	"bufio"
	"os"
	"strings"

	"github.com/coregx/regexsynth/charclass"
	"github.com/coregx/regexsynth/dfa"
	"github.com/coregx/regexsynth/grapheme"
	"github.com/coregx/regexsynth/render"
	"github.com/coregx/regexsynth/repetition"
	"github.com/coregx/regexsynth/synth"
)

// Builder accumulates test cases and configuration, then synthesizes a
// pattern on Build. It is the chainable counterpart to Synthesize, for
// callers that prefer grex's With* option style over constructing a
// Config directly.
type Builder struct {
	testCases []string
	config    Config
}

// NewBuilder creates a Builder over testCases. It returns ErrEmptyInput
// if testCases is empty — there is no language to synthesize a pattern
// for.
func NewBuilder(testCases []string) (*Builder, error) {
	if len(testCases) == 0 {
		return nil, ErrEmptyInput
	}
	cp := make([]string, len(testCases))
	copy(cp, testCases)
	return &Builder{testCases: cp, config: DefaultConfig()}, nil
}

// NewBuilderFromFile creates a Builder over the non-empty lines of the
// file at path, one test case per line.
func NewBuilderFromFile(path string) (*Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	var cases []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		cases = append(cases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return NewBuilder(cases)
}

// Config exposes the Builder's underlying configuration for callers who
// want to inspect or copy it into a direct Synthesize call.
func (b *Builder) Config() Config { return b.config }

// WithConversionOfDigits enables \d substitution for decimal digits.
func (b *Builder) WithConversionOfDigits() *Builder { b.config.ConvertDigits = true; return b }

// WithConversionOfNonDigits enables \D substitution.
func (b *Builder) WithConversionOfNonDigits() *Builder { b.config.ConvertNonDigits = true; return b }

// WithConversionOfSpaces enables \s substitution.
func (b *Builder) WithConversionOfSpaces() *Builder { b.config.ConvertSpaces = true; return b }

// WithConversionOfNonSpaces enables \S substitution.
func (b *Builder) WithConversionOfNonSpaces() *Builder { b.config.ConvertNonSpaces = true; return b }

// WithConversionOfWords enables \w substitution.
func (b *Builder) WithConversionOfWords() *Builder { b.config.ConvertWords = true; return b }

// WithConversionOfNonWords enables \W substitution.
func (b *Builder) WithConversionOfNonWords() *Builder { b.config.ConvertNonWords = true; return b }

// WithConversionOfRepetitions enables contraction of runs of a single
// repeated symbol; repeated multi-symbol units are not contracted.
func (b *Builder) WithConversionOfRepetitions() *Builder {
	b.config.ConvertRepetitions = true
	return b
}

// WithMinimumRepetitions sets the repetition-contraction threshold.
func (b *Builder) WithMinimumRepetitions(n int) *Builder {
	b.config.MinRepetitions = n
	return b
}

// WithMinimumSubstringLength sets the repeated-unit length threshold.
func (b *Builder) WithMinimumSubstringLength(n int) *Builder {
	b.config.MinSubstringLength = n
	return b
}

// WithCaseInsensitiveMatching enables (?i) and case-folded DFA
// construction.
func (b *Builder) WithCaseInsensitiveMatching() *Builder {
	b.config.CaseInsensitiveMatching = true
	return b
}

// WithCapturingGroups uses ( ) instead of (?: ) for every introduced
// group.
func (b *Builder) WithCapturingGroups() *Builder {
	b.config.CapturingGroups = true
	return b
}

// WithEscapingOfNonASCIIChars enables \u{HHHH} escaping, optionally using
// UTF-16 surrogate pairs for code points above the Basic Multilingual
// Plane.
func (b *Builder) WithEscapingOfNonASCIIChars(withSurrogates bool) *Builder {
	b.config.EscapeNonASCIIChars = true
	b.config.WithSurrogatePairs = withSurrogates
	return b
}

// WithVerboseMode renders in PCRE extended (?x) mode.
func (b *Builder) WithVerboseMode() *Builder { b.config.VerboseMode = true; return b }

// WithoutStartAnchor omits the leading ^.
func (b *Builder) WithoutStartAnchor() *Builder { b.config.DisableStartAnchor = true; return b }

// WithoutEndAnchor omits the trailing $.
func (b *Builder) WithoutEndAnchor() *Builder { b.config.DisableEndAnchor = true; return b }

// WithoutAnchors omits both ^ and $.
func (b *Builder) WithoutAnchors() *Builder {
	b.config.DisableStartAnchor = true
	b.config.DisableEndAnchor = true
	return b
}

// Build runs the synthesis pipeline over the accumulated test cases and
// configuration.
func (b *Builder) Build() (string, error) {
	return synthesize(b.testCases, b.config)
}

// Synthesize runs the full pipeline — tokenize, build the trie DFA,
// minimize it, synthesize an expression via state elimination, contract
// repetitions, coalesce character classes, render — over testCases under
// cfg, returning the resulting PCRE pattern.
func Synthesize(testCases []string, cfg Config) (string, error) {
	if len(testCases) == 0 {
		return "", ErrEmptyInput
	}
	return synthesize(testCases, cfg)
}

func synthesize(testCases []string, cfg Config) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}

	cases := testCases
	if cfg.CaseInsensitiveMatching {
		cases = make([]string, len(testCases))
		for i, c := range testCases {
			cases[i] = strings.ToLower(c)
		}
	}

	words := grapheme.SegmentAll(cases)

	classifyOpts := grapheme.ClassifyOptions{
		Digit: cfg.ConvertDigits, Word: cfg.ConvertWords, Space: cfg.ConvertSpaces,
		NonDigit: cfg.ConvertNonDigits, NonWord: cfg.ConvertNonWords, NonSpace: cfg.ConvertNonSpaces,
	}
	if classifyOpts.Any() {
		for i, w := range words {
			out := make([]grapheme.Symbol, len(w))
			for j, s := range w {
				if l, ok := s.(grapheme.Literal); ok {
					out[j] = grapheme.Classify(l, classifyOpts)
				} else {
					out[j] = s
				}
			}
			words[i] = out
		}
	}

	d := dfa.Minimize(dfa.Build(words))
	expr := synth.FromDFA(d)

	if cfg.ConvertRepetitions {
		expr = repetition.Analyze(expr, repetition.Config{
			MinRepetitions:     cfg.MinRepetitions,
			MinSubstringLength: cfg.MinSubstringLength,
		})
	}

	expr = charclass.Coalesce(expr)

	opts := render.Options{
		AnchorStart:     !cfg.DisableStartAnchor,
		AnchorEnd:       !cfg.DisableEndAnchor,
		CapturingGroups: cfg.CapturingGroups,
		CaseInsensitive: cfg.CaseInsensitiveMatching,
		EscapeNonASCII:  cfg.EscapeNonASCIIChars,
		WithSurrogates:  cfg.WithSurrogatePairs,
		Verbose:         cfg.VerboseMode,
	}
	return render.Render(expr, opts), nil
}
