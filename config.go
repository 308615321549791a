package regexsynth

// Config carries every tunable of the synthesis pipeline. It plays the
// same role regexsynth.Config's peers play in the pack this module was
// built from: a plain struct with documented defaults, validated before
// use.
//
// Example:
//
//	cfg := regexsynth.DefaultConfig()
//	cfg.ConvertDigits = true
//	pattern, err := regexsynth.Synthesize([]string{"a1", "b2"}, cfg)
type Config struct {
	// ConvertDigits, ConvertNonDigits, ConvertSpaces, ConvertNonSpaces,
	// ConvertWords, ConvertNonWords each enable substituting the
	// corresponding PCRE shorthand class (\d \D \s \S \w \W) for runes
	// that match it, with the fixed precedence \d > \w > \s > \D > \W > \S
	// when several apply. Default: false.
	ConvertDigits    bool
	ConvertNonDigits bool
	ConvertSpaces    bool
	ConvertNonSpaces bool
	ConvertWords     bool
	ConvertNonWords  bool

	// ConvertRepetitions enables contraction of runs of a single repeated
	// symbol ("aaaa" → "a{4}"); a repeated multi-symbol unit ("abcabc") is
	// not contracted. Default: false.
	ConvertRepetitions bool

	// MinRepetitions is the minimum repeat count (exclusive) before a run
	// contracts; only meaningful when ConvertRepetitions is set.
	// Default: 1.
	MinRepetitions int

	// MinSubstringLength is the minimum symbol length of a repeated unit
	// before it's considered for contraction; only meaningful when
	// ConvertRepetitions is set. Default: 1.
	MinSubstringLength int

	// CaseInsensitiveMatching lowercases every test case before synthesis
	// and prefixes the rendered pattern with (?i), so the resulting
	// pattern matches either case. Default: false.
	CaseInsensitiveMatching bool

	// CapturingGroups uses ( ) instead of (?: ) for every group the
	// renderer introduces. Default: false.
	CapturingGroups bool

	// EscapeNonASCIIChars escapes every non-ASCII code point as
	// \u{HHHH}. Default: false.
	EscapeNonASCIIChars bool

	// WithSurrogatePairs, when EscapeNonASCIIChars is set, encodes code
	// points above U+FFFF as two \u{HHHH} UTF-16 surrogate escapes
	// instead of one. Default: false.
	WithSurrogatePairs bool

	// VerboseMode renders in PCRE extended (?x) mode. Default: false.
	VerboseMode bool

	// DisableStartAnchor omits the leading ^. Default: false.
	DisableStartAnchor bool

	// DisableEndAnchor omits the trailing $. Default: false.
	DisableEndAnchor bool
}

// DefaultConfig returns the exact, anchored, non-capturing, case-sensitive
// configuration: the narrowest pattern that matches only the given test
// cases, with no generalization enabled.
func DefaultConfig() Config {
	return Config{
		MinRepetitions:     1,
		MinSubstringLength: 1,
	}
}

// validate checks that every threshold is in range, returning a
// *ConfigError (which unwraps to ErrInvalidConfig) on the first violation.
// Both thresholds are checked unconditionally, not just when
// ConvertRepetitions is set — grex's own with_minimum_repetitions and
// with_minimum_substring_length setters panic on a zero argument
// regardless of whether repetition conversion ends up enabled, and a
// threshold field a caller never intends to use should simply be left at
// its DefaultConfig value rather than zeroed.
func (c Config) validate() error {
	if c.MinRepetitions < 1 {
		return &ConfigError{Field: "MinRepetitions", Message: "must be at least 1"}
	}
	if c.MinSubstringLength < 1 {
		return &ConfigError{Field: "MinSubstringLength", Message: "must be at least 1"}
	}
	return nil
}
