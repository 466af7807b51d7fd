package main

import (
	"fmt"
	"strconv"
	"strings"

	"userbrush/internal/oplog"
	"userbrush/internal/ui"
)

func cmdLog(args []string) error {
	loadsOnly := false
	clear := false
	limit := 20
	var filter oplog.Filter

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--loads", "-l":
			loadsOnly = true
		case "--clear", "-c":
			clear = true
		case "--tail", "-t":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid --tail value %q", v)
			}
			limit = n
			i++
		case "--cmd":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			filter.Cmd = v
			i++
		case "--status":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			filter.Status = v
			i++
		case "--since":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			since, err := oplog.ParseSince(v)
			if err != nil {
				return err
			}
			filter.Since = since
			i++
		case "--text":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			filter.Text = v
			i++
		case "--warnings", "-w":
			filter.WithWarnings = true
		case "--help", "-h":
			printLogHelp()
			return nil
		default:
			return fmt.Errorf("unknown option: %s", args[i])
		}
	}

	dir := oplog.LogDir()
	if clear {
		filename, label := oplog.OpsFile, "Operations"
		if loadsOnly {
			filename, label = oplog.LoadsFile, "Loads"
		}
		if err := oplog.Clear(dir, filename); err != nil {
			return fmt.Errorf("failed to clear log: %w", err)
		}
		ui.Success("%s log cleared", label)
		return nil
	}

	if loadsOnly {
		return printLogSection(dir, oplog.LoadsFile, "Loads", limit, filter)
	}
	if err := printLogSection(dir, oplog.OpsFile, "Operations", limit, filter); err != nil {
		return err
	}
	fmt.Println()
	return printLogSection(dir, oplog.LoadsFile, "Loads", limit, filter)
}

func printLogSection(dir, filename, label string, limit int, filter oplog.Filter) error {
	readLimit := limit
	if !filter.IsEmpty() {
		readLimit = 0
	}
	entries, err := oplog.Read(dir, filename, readLimit)
	if err != nil {
		return fmt.Errorf("failed to read log: %w", err)
	}
	entries = oplog.FilterEntries(entries, filter)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	ui.HeaderBox("userbrush log", fmt.Sprintf("%s (last %d)", label, len(entries)))
	if len(entries) == 0 {
		ui.Info("No %s log entries", strings.ToLower(label))
		return nil
	}

	printLogEntries(entries)
	return nil
}

func printLogEntries(entries []oplog.Entry) {
	for _, e := range entries {
		ts := formatLogTimestamp(e.Timestamp)
		detail := formatLogDetail(e)
		dur := formatLogDuration(e.Duration)

		if ui.IsTTY() {
			fmt.Printf("  %s%s%s  %-9s  %-72s  %s  %s\n",
				ui.Gray, ts, ui.Reset, formatLogCommand(e.Command), detail, formatLogStatus(e.Status), dur)
		} else {
			fmt.Printf("  %s  %-9s  %-72s  %-7s  %s\n",
				ts, e.Command, detail, e.Status, dur)
		}

		for _, w := range e.Warnings {
			fmt.Printf("                     -> warning: %s\n", w)
		}
	}
}

func printLogHelp() {
	fmt.Println(`Usage: userbrush log [options]

View the operations log and the per-bundle loads log.

Options:
  --loads, -l        Show only the loads log
  --tail, -t <N>     Show last N entries (default: 20)
  --cmd NAME         Only entries for a command
  --status STATUS    Only entries with a status (ok, partial, error)
  --since WHEN       Only entries newer than WHEN (2h, 3d, 2006-01-02)
  --text TEXT        Only entries mentioning TEXT
  --warnings, -w     Only entries that carry warnings
  --clear, -c        Clear the selected log file
  --help, -h         Show this help`)
}
