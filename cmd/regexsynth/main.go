// Command regexsynth synthesizes a single PCRE regular expression that
// matches exactly a given set of test strings, read either from
// positional arguments or from a file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/coregx/regexsynth"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("regexsynth", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		file             string
		digits           = fs.Bool("d", false, "convert digits to \\d")
		nonDigits        = fs.Bool("D", false, "convert non-digits to \\D")
		spaces           = fs.Bool("s", false, "convert spaces to \\s")
		nonSpaces        = fs.Bool("S", false, "convert non-spaces to \\S")
		words            = fs.Bool("w", false, "convert words to \\w")
		nonWords         = fs.Bool("W", false, "convert non-words to \\W")
		repetitions      = fs.Bool("r", false, "convert repeated substrings")
		repetitionsAlt   = fs.Bool("c", false, "alias for -r")
		escape           = fs.Bool("e", false, "escape non-ASCII characters")
		withSurrogates   = fs.Bool("with-surrogates", false, "use surrogate pairs for non-ASCII escapes above U+FFFF (requires -e)")
		caseInsensitive  = fs.Bool("i", false, "match case-insensitively")
		capturingGroups  = fs.Bool("g", false, "use capturing instead of non-capturing groups")
		verbose          = fs.Bool("x", false, "produce a verbose pattern")
		noStartAnchor    = fs.Bool("no-start-anchor", false, "omit the leading ^")
		noEndAnchor      = fs.Bool("no-end-anchor", false, "omit the trailing $")
		noAnchors        = fs.Bool("no-anchors", false, "omit both ^ and $")
		minRepetitions   = fs.Int("min-repetitions", 1, "minimum repeat count before a run contracts")
		minSubstringLen  = fs.Int("min-substring-length", 1, "minimum length of a repeated unit before it contracts")
	)
	fs.StringVar(&file, "f", "", "read test cases from this file, one per line")
	fs.StringVar(&file, "file", "", "read test cases from this file, one per line")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	input := fs.Args()
	if file != "" && len(input) > 0 {
		fmt.Fprintln(stderr, "error: positional test cases cannot be combined with -f/--file")
		return 2
	}
	if file == "" && len(input) == 0 {
		fmt.Fprintln(stderr, "error: provide test cases as arguments, via -f FILE, or on stdin with -")
		return 2
	}
	if *withSurrogates && !*escape {
		fmt.Fprintln(stderr, "error: --with-surrogates requires -e")
		return 2
	}

	cfg := regexsynth.DefaultConfig()
	cfg.ConvertDigits = *digits
	cfg.ConvertNonDigits = *nonDigits
	cfg.ConvertSpaces = *spaces
	cfg.ConvertNonSpaces = *nonSpaces
	cfg.ConvertWords = *words
	cfg.ConvertNonWords = *nonWords
	cfg.ConvertRepetitions = *repetitions || *repetitionsAlt
	cfg.MinRepetitions = *minRepetitions
	cfg.MinSubstringLength = *minSubstringLen
	cfg.CaseInsensitiveMatching = *caseInsensitive
	cfg.CapturingGroups = *capturingGroups
	cfg.EscapeNonASCIIChars = *escape
	cfg.WithSurrogatePairs = *withSurrogates
	cfg.VerboseMode = *verbose
	cfg.DisableStartAnchor = *noStartAnchor || *noAnchors
	cfg.DisableEndAnchor = *noEndAnchor || *noAnchors

	var testCases []string
	switch {
	case len(input) == 1 && input[0] == "-":
		cases, err := readLines(os.Stdin)
		if err != nil {
			fmt.Fprintf(stderr, "error: reading stdin: %v\n", err)
			return 1
		}
		testCases = cases
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			fmt.Fprintln(stderr, "error: the specified file could not be found")
			return 1
		}
		defer f.Close()
		cases, err := readLines(f)
		if err != nil {
			fmt.Fprintf(stderr, "error: reading %s: %v\n", file, err)
			return 1
		}
		testCases = cases
	default:
		testCases = input
	}

	pattern, err := regexsynth.Synthesize(testCases, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, pattern)
	return 0
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
