// Package oplog provides a persistent operation log for CLI commands.
// Entries are stored in JSONL format (one JSON object per line).
package oplog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"userbrush/internal/config"
)

const (
	// OpsFile records one entry per CLI command.
	OpsFile = "operations.log"
	// LoadsFile records one entry per variant bundle loaded.
	LoadsFile = "loads.log"
)

// Entry represents one log line in JSONL format.
type Entry struct {
	Timestamp string         `json:"ts"`
	Command   string         `json:"cmd"`
	Args      map[string]any `json:"args,omitempty"`
	Status    string         `json:"status"`
	Message   string         `json:"msg,omitempty"`
	Warnings  []string       `json:"warnings,omitempty"`
	Duration  int64          `json:"ms,omitempty"`
}

// LogDir returns $XDG_STATE_HOME/userbrush/logs.
func LogDir() string {
	return filepath.Join(config.StateDir(), "logs")
}

// Write appends a single JSONL entry to the named log file in dir.
func Write(dir, filename string, e Entry) error {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return &os.PathError{Op: "mkdir", Path: dir, Err: os.ErrInvalid}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, filename), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(e)
}

// WriteWithLimit appends an entry and truncates the file if it exceeds maxEntries.
// maxEntries <= 0 means unlimited (same as Write).
func WriteWithLimit(dir, filename string, e Entry, maxEntries int) error {
	if err := Write(dir, filename, e); err != nil {
		return err
	}
	if maxEntries <= 0 {
		return nil
	}

	// Only rewrite once the file is 20% over the limit.
	threshold := maxEntries + maxEntries/5
	path := filepath.Join(dir, filename)
	entries, err := readAllEntries(path)
	if err != nil || len(entries) <= threshold {
		return nil
	}

	return rewriteEntries(path, entries[len(entries)-maxEntries:])
}

// readAllEntries reads the log file oldest first, skipping malformed lines.
func readAllEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var all []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		all = append(all, e)
	}
	return all, scanner.Err()
}

// rewriteEntries replaces the log file with entries via a temp file and rename.
func rewriteEntries(path string, entries []Entry) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			f.Close()
			os.Remove(tmp)
			return err
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// Read returns the last `limit` entries from the named log file (newest first).
// If limit <= 0, all entries are returned.
func Read(dir, filename string, limit int) ([]Entry, error) {
	all, err := readAllEntries(filepath.Join(dir, filename))
	if err != nil || all == nil {
		return nil, err
	}

	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// Clear truncates the named log file.
func Clear(dir, filename string) error {
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Truncate(path, 0)
}

// NewEntry creates an Entry with the current timestamp.
func NewEntry(cmd, status string, duration time.Duration) Entry {
	return Entry{
		Timestamp: time.Now().Format(time.RFC3339),
		Command:   cmd,
		Status:    status,
		Duration:  duration.Milliseconds(),
	}
}
