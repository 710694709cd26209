// Package report renders convergence check results for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/gnoverse/fixpoint"
	"github.com/gnoverse/fixpoint/runner"
)

var (
	cycleStyle   = color.New(color.FgYellow, color.Bold)
	divergeStyle = color.New(color.FgRed, color.Bold)
	slowStyle    = color.New(color.FgYellow)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	okStyle      = color.New(color.FgGreen, color.Bold)
)

// Format renders one block per misbehaved file. Well-behaved files are
// omitted; use Summary for the aggregate line.
func Format(reports []runner.Report) string {
	var builder strings.Builder
	for _, r := range reports {
		if r.WellBehaved {
			continue
		}
		builder.WriteString(formatReport(r))
	}
	return builder.String()
}

func formatReport(r runner.Report) string {
	var builder strings.Builder
	builder.WriteString(styleFor(r.Outcome).Sprintf("%s: ", r.Kind))
	builder.WriteString(fileStyle.Sprint(r.File) + "\n")
	builder.WriteString(fmt.Sprintf("  formatter %s\n", r.Message))
	if r.Result != nil && r.Outcome != fixpoint.Diverged && !r.Result.OriginalUnchanged() {
		builder.WriteString("  resolution differs from the original, rerun the formatter or apply the resolved content\n")
	}
	builder.WriteString("\n")
	return builder.String()
}

func styleFor(outcome fixpoint.Outcome) *color.Color {
	switch outcome {
	case fixpoint.Diverged:
		return divergeStyle
	case fixpoint.Cycle:
		return cycleStyle
	default:
		return slowStyle
	}
}

// Summary returns a single aggregate line for a finished run.
func Summary(reports []runner.Report) string {
	misbehaved := Misbehaved(reports)
	if misbehaved == 0 {
		return okStyle.Sprintf("%d files checked, formatter is well-behaved on all of them", len(reports))
	}
	return divergeStyle.Sprintf("%d files checked, formatter misbehaved on %d", len(reports), misbehaved)
}

// Misbehaved counts the reports whose formatter was not idempotent.
func Misbehaved(reports []runner.Report) int {
	n := 0
	for _, r := range reports {
		if !r.WellBehaved {
			n++
		}
	}
	return n
}
