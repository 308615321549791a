package regexsynth

import (
	"regexp"
	"testing"
)

func TestSynthesizeSingleWord(t *testing.T) {
	got, err := Synthesize([]string{"abc"}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got != "^abc$" {
		t.Errorf("got %q, want %q", got, "^abc$")
	}
}

func TestSynthesizeTwoDisjointWords(t *testing.T) {
	got, err := Synthesize([]string{"a", "b"}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got != "^[ab]$" {
		t.Errorf("got %q, want %q", got, "^[ab]$")
	}
}

func TestSynthesizeEmptyInput(t *testing.T) {
	if _, err := Synthesize(nil, DefaultConfig()); err != ErrEmptyInput {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
	if _, err := NewBuilder(nil); err != ErrEmptyInput {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}
}

func TestSynthesizeAnchorsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisableStartAnchor = true
	cfg.DisableEndAnchor = true
	got, err := Synthesize([]string{"a"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a" {
		t.Errorf("got %q, want %q", got, "a")
	}
}

func TestSynthesizeCaseInsensitivePrefix(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaseInsensitiveMatching = true
	got, err := Synthesize([]string{"A"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != "(?i)^a$" {
		t.Errorf("got %q, want %q", got, "(?i)^a$")
	}
}

func TestSynthesizeRepetitionContraction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConvertRepetitions = true
	got, err := Synthesize([]string{"aaaa"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != "^a{4}$" {
		t.Errorf("got %q, want %q", got, "^a{4}$")
	}
}

func TestSynthesizeWordClassCoalescesAlphabet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConvertWords = true
	got, err := Synthesize([]string{"a", "b", "c"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != `^\w$` {
		t.Errorf("got %q, want %q", got, `^\w$`)
	}
}

func TestSynthesizeInvalidConfigRejected(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConvertRepetitions = true
	cfg.MinRepetitions = 0
	_, err := Synthesize([]string{"aaaa"}, cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("got %v, want *ConfigError", err)
	}
}

// TestSynthesizeInvalidConfigRejectedWithoutConversion covers the gap a
// review caught: a zero threshold must be rejected even when
// ConvertRepetitions is never turned on, matching grex's own
// with_minimum_repetitions/with_minimum_substring_length setters, which
// panic on a zero argument unconditionally.
func TestSynthesizeInvalidConfigRejectedWithoutConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRepetitions = 0
	_, err := Synthesize([]string{"aaaa"}, cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("got %v, want *ConfigError", err)
	}

	cfg = DefaultConfig()
	cfg.MinSubstringLength = 0
	if _, err := Synthesize([]string{"aaaa"}, cfg); err == nil {
		t.Fatal("expected an error")
	}
}

// TestSynthesizeVerboseModeMatchesSpecExample pins spec.md §8's
// ["a","b","bcd"] verbose scenario end to end through Synthesize.
func TestSynthesizeVerboseModeMatchesSpecExample(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VerboseMode = true
	got, err := Synthesize([]string{"a", "b", "bcd"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := "(?x)\n^\n  (?:\n    b(?:cd)?\n    |\n    a\n  )\n$"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestSynthesizeGeneralizationIsMonotone is testable property 6 from
// spec.md §8: enabling a generalizing option must only ever widen the match
// set, never narrow it. Every string the default (non-generalized) pattern
// matches must also match the generalized one, and the generalized option
// here (\w conversion) additionally matches at least one string the
// default pattern rejects.
func TestSynthesizeGeneralizationIsMonotone(t *testing.T) {
	cases := []string{"a", "b", "c"}

	defaultPattern, err := Synthesize(cases, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defaultRe, err := regexp.Compile(defaultPattern)
	if err != nil {
		t.Fatalf("pattern %q does not compile: %v", defaultPattern, err)
	}

	generalCfg := DefaultConfig()
	generalCfg.ConvertWords = true
	generalPattern, err := Synthesize(cases, generalCfg)
	if err != nil {
		t.Fatal(err)
	}
	generalRe, err := regexp.Compile(generalPattern)
	if err != nil {
		t.Fatalf("pattern %q does not compile: %v", generalPattern, err)
	}

	probes := []string{"a", "b", "c", "d", "Z", "_", "0"}
	sawGeneralOnly := false
	for _, p := range probes {
		inDefault := defaultRe.MatchString(p)
		inGeneral := generalRe.MatchString(p)
		if inDefault && !inGeneral {
			t.Errorf("%q matches default pattern %q but not generalized pattern %q", p, defaultPattern, generalPattern)
		}
		if inGeneral && !inDefault {
			sawGeneralOnly = true
		}
	}
	if !sawGeneralOnly {
		t.Errorf("expected generalized pattern %q to match at least one string default pattern %q rejects", generalPattern, defaultPattern)
	}
}

// TestSynthesizeSoundnessAndTightness exercises spec.md §8's core
// property: under default (no-generalization) settings, the synthesized
// pattern, fully anchored, matches exactly the given test cases and
// nothing else from a set of plausible near-miss strings.
func TestSynthesizeSoundnessAndTightness(t *testing.T) {
	cases := []string{"foo", "bar", "foobar", "baz"}
	pattern, err := Synthesize(cases, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatalf("pattern %q does not compile: %v", pattern, err)
	}
	for _, c := range cases {
		if !re.MatchString(c) {
			t.Errorf("pattern %q does not match test case %q", pattern, c)
		}
	}
	negatives := []string{"fo", "foobarbaz", "ba", "bazz", "xfoo", "foox"}
	for _, n := range negatives {
		if re.MatchString(n) {
			t.Errorf("pattern %q unexpectedly matches %q", pattern, n)
		}
	}
}

func TestSynthesizeBuilderChaining(t *testing.T) {
	b, err := NewBuilder([]string{"1", "2", "3"})
	if err != nil {
		t.Fatal(err)
	}
	pattern, err := b.WithConversionOfDigits().Build()
	if err != nil {
		t.Fatal(err)
	}
	if pattern != `^\d$` {
		t.Errorf("got %q, want %q", pattern, `^\d$`)
	}
}

func TestSynthesizeCapturingGroups(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CapturingGroups = true
	got, err := Synthesize([]string{"xa", "xb"}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	re, err := regexp.Compile(got)
	if err != nil {
		t.Fatalf("pattern %q does not compile: %v", got, err)
	}
	if !re.MatchString("xa") || !re.MatchString("xb") || re.MatchString("xc") {
		t.Errorf("pattern %q has wrong match set", got)
	}
}
