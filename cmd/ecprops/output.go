package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/apstndb/lox"
	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-runewidth"
	"github.com/ngicks/go-iterator-helper/hiter"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"spheric.cloud/xiter"
)

// statusColumnWidth fits the longest status word.
const statusColumnWidth = 7

var (
	okColor      = color.New(color.FgGreen)
	invalidColor = color.New(color.FgRed, color.Bold)
	unknownColor = color.New(color.FgYellow)
)

func colorForStatus(s status) *color.Color {
	switch s {
	case statusOK:
		return okColor
	case statusInvalid:
		return invalidColor
	default:
		return unknownColor
	}
}

// valueColumn renders the parsed value for the textual formats. Both
// failures and sentinel absence show as "-"; the status column carries
// the distinction.
func valueColumn(e entry) string {
	if e.Status != statusOK || e.Value == nil {
		return "-"
	}
	return fmt.Sprint(e.Value)
}

func render(w io.Writer, format string, entries []entry) error {
	switch format {
	case "table":
		return writeBuffered(w, func(w io.Writer) error {
			return writeTable(w, entries)
		})
	case "plain":
		return writePlain(w, entries)
	case "json":
		return writeJSON(w, entries)
	case "yaml":
		return writeYAML(w, entries)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeBuffered writes to a temporary buffer first, and only writes to
// out if no error occurs, so a failed render leaves no partial output.
func writeBuffered(out io.Writer, buildFunc func(out io.Writer) error) error {
	var buf strings.Builder
	if err := buildFunc(&buf); err != nil {
		return err
	}
	if buf.Len() == 0 {
		return nil
	}
	_, err := fmt.Fprint(out, buf.String())
	return err
}

func writeTable(w io.Writer, entries []entry) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"KEY", "RAW", "STATUS", "VALUE"})

	for _, e := range entries {
		row := []string{e.Key, e.Raw, colorForStatus(e.Status).Sprint(string(e.Status)), valueColumn(e)}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if len(entries) == 0 {
		return nil
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func writePlain(w io.Writer, entries []entry) error {
	maxKeyWidth := max(hiter.Max(xiter.Map(
		slices.Values(entries),
		func(e entry) int { return runewidth.StringWidth(e.Key) })), 3)

	for _, e := range entries {
		mark := colorForStatus(e.Status).Sprint(runewidth.FillRight(string(e.Status), statusColumnWidth))
		valuePart := lox.IfOrEmpty(e.Status == statusOK, fmt.Sprintf(" => %s", valueColumn(e)))
		if _, err := fmt.Fprintf(w, "%s %s = %s%s\n",
			mark, runewidth.FillRight(e.Key, maxKeyWidth), e.Raw, valuePart); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, entries []entry) error {
	b, err := json.Marshal(entries, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func writeYAML(w io.Writer, entries []entry) error {
	return yaml.NewEncoder(w, yaml.UseJSONMarshaler()).Encode(entries)
}
