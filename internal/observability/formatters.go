// Package observability provides the console status lines and verbose summaries printed by the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/people-filter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles console output for the filter run
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Saved reports a filtered document written to path.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Saved(name, path string) {
	fmt.Fprintf(p.out, "Filtered %s saved to %s\n", name, path)
}

// NotFound reports a missing input file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) NotFound(path string) {
	fmt.Fprintf(p.out, "File not found: %s\n", path)
}

// ParseFailure reports a JSON syntax error that ended the run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) ParseFailure(err error) {
	fmt.Fprintf(p.out, "Error parsing JSON: %v\n", err)
}

// Failure reports any other error that ended the run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Failure(err error) {
	fmt.Fprintf(p.out, "An error occurred: %v\n", err)
}

// ValidationPassed reports a document that matched its schema.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) ValidationPassed(path string) {
	fmt.Fprintf(p.out, "Validation passed: %s\n", path)
}

// ValidationFailed reports a document that did not match its schema, followed by the error details.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) ValidationFailed(path string, err error) {
	fmt.Fprintf(p.out, "Validation failed: %s\n", path)
	fmt.Fprintf(p.out, "%s\n", strings.TrimSuffix(err.Error(), "\n"))
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, ending it with "..." when cut.
// Padding with %-*s counts runes, so the cut must too.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// PrintReport outputs a summary of every conversion in the run.
func (p *Printer) PrintReport(report *types.RunReport) {
	if report == nil || len(report.Results) == 0 {
		return
	}

	var sb strings.Builder
	for i, res := range report.Results {
		sb.WriteString(fmt.Sprintf("%-24s %s\n", res.Name, statusLabel(res.Status)))
		switch res.Status {
		case types.StatusSaved:
			sb.WriteString(fmt.Sprintf("  %d records -> %s\n", res.Records, res.Output))
		case types.StatusNotFound:
			sb.WriteString(fmt.Sprintf("  missing %s\n", res.Input))
		case types.StatusFailed:
			if res.Err != nil {
				sb.WriteString(fmt.Sprintf("  %v\n", res.Err))
			}
		}
		if i < len(report.Results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FILTER RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

func statusLabel(status types.ConversionStatus) string {
	switch status {
	case types.StatusSaved:
		return "✓ saved"
	case types.StatusNotFound:
		return "⚠ not found"
	case types.StatusFailed:
		return "✗ failed"
	case types.StatusSkipped:
		return "- skipped"
	default:
		return string(status)
	}
}
