package oplog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Filter narrows log entries. Zero fields match everything.
type Filter struct {
	Cmd          string    // command name, case-insensitive
	Status       string    // "ok", "error" or "partial", case-insensitive
	Since        time.Time // drop entries older than this
	Text         string    // substring of the message or any string argument
	WithWarnings bool      // keep only entries that recorded warnings
}

func (f Filter) IsEmpty() bool {
	return f.Cmd == "" && f.Status == "" && f.Since.IsZero() && f.Text == "" && !f.WithWarnings
}

// FilterEntries returns the subset of entries matching f, preserving order.
func FilterEntries(entries []Entry, f Filter) []Entry {
	if f.IsEmpty() {
		return entries
	}

	text := strings.ToLower(f.Text)
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Cmd != "" && !strings.EqualFold(e.Command, f.Cmd) {
			continue
		}
		if f.Status != "" && !strings.EqualFold(e.Status, f.Status) {
			continue
		}
		if f.WithWarnings && len(e.Warnings) == 0 {
			continue
		}
		if !f.Since.IsZero() {
			ts, err := time.Parse(time.RFC3339, e.Timestamp)
			if err != nil || ts.Before(f.Since) {
				continue
			}
		}
		if text != "" && !e.mentions(text) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (e Entry) mentions(lower string) bool {
	if strings.Contains(strings.ToLower(e.Message), lower) {
		return true
	}
	for _, v := range e.Args {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), lower) {
			return true
		}
	}
	return false
}

// ParseSince parses "30m", "2h", "2d", "1w", "2006-01-02" or RFC3339.
func ParseSince(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	if len(s) >= 2 {
		if n, err := strconv.Atoi(s[:len(s)-1]); err == nil && n > 0 {
			now := time.Now()
			switch s[len(s)-1] {
			case 'm':
				return now.Add(-time.Duration(n) * time.Minute), nil
			case 'h':
				return now.Add(-time.Duration(n) * time.Hour), nil
			case 'd':
				return now.AddDate(0, 0, -n), nil
			case 'w':
				return now.AddDate(0, 0, -7*n), nil
			}
		}
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time format %q (use: 30m, 2h, 2d, 1w, 2006-01-02, or RFC3339)", s)
}
