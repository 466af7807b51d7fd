package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"userbrush/internal/config"
	"userbrush/internal/oplog"
	"userbrush/internal/registry"
	"userbrush/internal/ui"
)

// loadRuntime reads the config and builds the registry from its catalog.
func loadRuntime() (*config.Config, *registry.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	cat, err := registry.LoadCatalog(cfg.Catalog)
	if err != nil {
		return cfg, nil, err
	}
	reg, err := cat.Build()
	if err != nil {
		return cfg, nil, fmt.Errorf("invalid catalog %s: %w", cfg.Catalog, err)
	}
	return cfg, reg, nil
}

// logOp records a command in the operation log. cfg may be nil when the
// config could not be loaded.
func logOp(cfg *config.Config, cmd string, args map[string]any, start time.Time, cmdErr error) {
	e := oplog.NewEntry(cmd, statusFromErr(cmdErr), time.Since(start))
	e.Args = args
	if cmdErr != nil {
		e.Message = cmdErr.Error()
	}
	maxEntries := config.DefaultLogMaxEntries
	if cfg != nil {
		maxEntries = cfg.LogMaxEntries()
	}
	oplog.WriteWithLimit(oplog.LogDir(), oplog.OpsFile, e, maxEntries) //nolint:errcheck
}

// statusFromErr returns "ok" for nil errors and "error" otherwise.
func statusFromErr(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}

func runningInInteractiveTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// confirm asks a yes/no question; anything but y/yes declines.
func confirm(question string) bool {
	ui.Warning("%s", question)
	fmt.Print("Continue? [y/N]: ")
	var input string
	fmt.Scanln(&input)
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}

// requireValue returns the value following a flag.
func requireValue(args []string, i int) (string, error) {
	if i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", args[i])
	}
	return args[i+1], nil
}

// fileDigest returns the "sha256:<hex>" digest of a file.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
