package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Metric is one labelled count in a command summary.
type Metric struct {
	Label string
	Count int
}

func formatSummaryLine(action string, elapsed time.Duration, metrics ...Metric) string {
	parts := make([]string, len(metrics))
	for i, m := range metrics {
		parts[i] = fmt.Sprintf("%d %s", m.Count, m.Label)
	}
	line := fmt.Sprintf("%s complete: %s", action, strings.Join(parts, ", "))
	if elapsed > 0 {
		line += fmt.Sprintf(" (%.1fs)", elapsed.Seconds())
	}
	return line
}

// SummaryLine prints a one-line summary such as
// "Batch complete: 5 loaded, 1 failed (0.4s)". Any non-zero metric labelled
// "failed" turns the line red.
func SummaryLine(action string, elapsed time.Duration, metrics ...Metric) {
	line := formatSummaryLine(action, elapsed, metrics...)
	failed := false
	for _, m := range metrics {
		if m.Label == "failed" && m.Count > 0 {
			failed = true
		}
	}

	switch {
	case !IsTTY():
		fmt.Println(line)
	case failed:
		pterm.Error.Println(line)
	default:
		pterm.Success.Println(line)
	}
}
