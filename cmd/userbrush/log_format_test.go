package main

import (
	"strings"
	"testing"

	"userbrush/internal/oplog"
)

func TestFormatLogDetail_Batch(t *testing.T) {
	e := oplog.Entry{Command: "batch", Args: map[string]any{
		"total":        float64(5),
		"loaded":       float64(4),
		"failed":       float64(1),
		"failed_names": []any{"Broken"},
	}}
	got := formatLogDetail(e)
	want := "total=5, loaded=4, failed=1, failed=Broken"
	if got != want {
		t.Errorf("formatLogDetail() = %q, want %q", got, want)
	}
}

func TestFormatLogDetail_BatchBundle(t *testing.T) {
	e := oplog.Entry{Command: "batch", Args: map[string]any{"source": "/b/Glowy", "name": "Glowy", "result": "warnings"}}
	if got := formatLogDetail(e); got != "Glowy: warnings" {
		t.Errorf("formatLogDetail() = %q", got)
	}
}

func TestFormatLogDetail_MessageAppended(t *testing.T) {
	e := oplog.Entry{Command: "load", Args: map[string]any{"source": "x"}, Message: "boom"}
	if got := formatLogDetail(e); got != "x (boom)" {
		t.Errorf("formatLogDetail() = %q", got)
	}
}

func TestFormatLogDetail_Truncates(t *testing.T) {
	e := oplog.Entry{Command: "load", Message: strings.Repeat("x", 200)}
	got := formatLogDetail(e)
	if len(got) != logDetailTruncateLen || !strings.HasSuffix(got, "...") {
		t.Errorf("len = %d, got %q", len(got), got)
	}
}

func TestFormatLogTimestamp(t *testing.T) {
	if got := formatLogTimestamp("2026-03-01T10:20:30Z"); got != "2026-03-01 10:20" {
		t.Errorf("got %q", got)
	}
	if got := formatLogTimestamp("not-a-time"); got != "not-a-time" {
		t.Errorf("got %q", got)
	}
}

func TestFormatLogDuration(t *testing.T) {
	tests := map[int64]string{0: "", 250: "250ms", 1500: "1.5s"}
	for ms, want := range tests {
		if got := formatLogDuration(ms); got != want {
			t.Errorf("formatLogDuration(%d) = %q, want %q", ms, got, want)
		}
	}
}

func TestLogArgInt(t *testing.T) {
	args := map[string]any{"a": 3, "b": float64(4), "c": " 5 ", "d": "x"}
	for key, want := range map[string]int{"a": 3, "b": 4, "c": 5} {
		if got, ok := logArgInt(args, key); !ok || got != want {
			t.Errorf("logArgInt(%s) = %d, %v", key, got, ok)
		}
	}
	if _, ok := logArgInt(args, "d", "missing"); ok {
		t.Error("expected no int for d")
	}
}

func TestSectionOf(t *testing.T) {
	if got := sectionOf("Size.BrushSizeRange"); got != "Size" {
		t.Errorf("got %q", got)
	}
	if got := sectionOf("Name"); got != "(top level)" {
		t.Errorf("got %q", got)
	}
	if !matchField("size", "Size.BrushSizeRange", "m_BrushSizeRange") || matchField("zzz", "Name") {
		t.Error("matchField mismatch")
	}
}
