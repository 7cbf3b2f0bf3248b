// Package main is a command line tool for checking EditorConfig property
// pairs against the standard typed definitions.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/samber/lo"
	"spheric.cloud/xiter"

	"github.com/apstndb/ecprops"
	"github.com/apstndb/lox"
)

type options struct {
	Format   string `long:"format" description:"Output format" choice:"table" choice:"plain" choice:"json" choice:"yaml" default:"table"`
	Strict   bool   `long:"strict" description:"Exit with status 1 if any pair is invalid or unknown"`
	LogLevel string `long:"log-level" description:"Diagnostic log level for stderr" choice:"DEBUG" choice:"INFO" choice:"WARN" choice:"ERROR" default:"WARN"`
	Debug    bool   `long:"debug" hidden:"true"`
}

type status string

const (
	statusOK      status = "ok"
	statusInvalid status = "invalid"
	statusUnknown status = "unknown"
)

// entry is the outcome of evaluating one KEY=VALUE pair.
type entry struct {
	Key    string `json:"key" yaml:"key"`
	Raw    string `json:"raw" yaml:"raw"`
	Status status `json:"status" yaml:"status"`
	Value  any    `json:"value" yaml:"value"`
}

func main() {
	var opts options

	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] [KEY=VALUE ...]"
	parser.LongDescription = heredoc.Doc(`
		Validate EditorConfig property pairs against the standard typed
		definitions. Pairs come from the arguments, or one per line on stdin
		when no arguments are given. Matching is exact: keys and values are
		checked as written, without trimming or case folding.

		Examples:
		  ecprops indent_style=space indent_size=2
		  printf 'end_of_line=crlf\n' | ecprops --format=json`)

	args, err := parser.Parse()
	if flags.WroteHelp(err) {
		return
	} else if err != nil {
		exitf("Invalid options\n")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
		exitf("Invalid --log-level: %v\n", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	pairs := args
	if len(pairs) == 0 {
		if pairs, err = readPairs(os.Stdin); err != nil {
			exitf("Failed to read pairs from stdin: %v\n", err)
		}
	}

	entries := evaluate(ecprops.Builtin(), pairs)

	if opts.Debug {
		pprinter := pp.New()
		pprinter.SetColoringEnabled(false)
		pprinter.SetOutput(os.Stderr)
		pprinter.Println(entries)
	}

	if err := render(os.Stdout, opts.Format, entries); err != nil {
		exitf("Failed to render output: %v\n", err)
	}

	rejected := lo.CountBy(entries, func(e entry) bool { return e.Status != statusOK })
	slog.Debug("evaluated pairs", "total", len(entries), "rejected", rejected)

	if opts.Strict && rejected > 0 {
		exitf("%d of %d pair%s rejected\n",
			rejected, len(entries), lox.IfOrEmpty(len(entries) != 1, "s"))
	}
}

func exitf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	os.Exit(1)
}

// readPairs reads one KEY=VALUE pair per line, skipping blank lines.
func readPairs(r io.Reader) ([]string, error) {
	var pairs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			pairs = append(pairs, line)
		}
	}
	return pairs, scanner.Err()
}

func evaluate(reg *ecprops.Registry, pairs []string) []entry {
	return slices.Collect(xiter.Map(
		slices.Values(pairs),
		func(pair string) entry { return evaluatePair(reg, pair) }))
}

func evaluatePair(reg *ecprops.Registry, pair string) entry {
	key, raw, found := strings.Cut(pair, "=")
	if !found {
		slog.Debug("pair without separator", "token", pair)
		return entry{Key: pair, Status: statusInvalid}
	}
	if _, ok := reg.Lookup(key); !ok {
		return entry{Key: key, Raw: raw, Status: statusUnknown}
	}
	v, ok := reg.Parse(key, raw)
	if !ok {
		return entry{Key: key, Raw: raw, Status: statusInvalid}
	}
	return entry{Key: key, Raw: raw, Status: statusOK, Value: displayValue(v)}
}

// displayValue maps a parsed value to its rendering: enums through their
// canonical spelling, optional values through nil-aware dereference.
func displayValue(v any) any {
	switch v := v.(type) {
	case ecprops.Indentation:
		return v.String()
	case ecprops.LineEnding:
		return v.String()
	case ecprops.Encoding:
		return v.String()
	case *uint:
		if v == nil {
			return nil
		}
		return *v
	default:
		return v
	}
}
