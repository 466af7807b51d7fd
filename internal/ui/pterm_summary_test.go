package ui

import (
	"testing"
	"time"
)

func TestFormatSummaryLine_Plain(t *testing.T) {
	line := formatSummaryLine("Batch", 1200*time.Millisecond,
		Metric{Label: "loaded", Count: 5},
		Metric{Label: "warnings", Count: 2},
		Metric{Label: "failed", Count: 0},
	)
	want := "Batch complete: 5 loaded, 2 warnings, 0 failed (1.2s)"
	if line != want {
		t.Fatalf("got %q, want %q", line, want)
	}
}

func TestFormatSummaryLine_NoDuration(t *testing.T) {
	line := formatSummaryLine("Export", 0,
		Metric{Label: "exported", Count: 3},
		Metric{Label: "warnings", Count: 0},
	)
	want := "Export complete: 3 exported, 0 warnings"
	if line != want {
		t.Fatalf("got %q, want %q", line, want)
	}
}

func TestFormatSummaryLine_ZeroCounts(t *testing.T) {
	line := formatSummaryLine("Pack", 500*time.Millisecond,
		Metric{Label: "files", Count: 0},
		Metric{Label: "failed", Count: 0},
	)
	want := "Pack complete: 0 files, 0 failed (0.5s)"
	if line != want {
		t.Fatalf("got %q, want %q", line, want)
	}
}
