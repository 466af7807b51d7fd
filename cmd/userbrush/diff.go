package main

import (
	"fmt"
	"strings"
	"time"

	"userbrush/internal/diff"
	"userbrush/internal/ui"
	"userbrush/internal/variant"
)

func cmdDiff(args []string) error {
	start := time.Now()
	source := ""
	full := false

	for _, arg := range args {
		switch {
		case arg == "--full":
			full = true
		case arg == "--help" || arg == "-h":
			printDiffHelp()
			return nil
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown option: %s", arg)
		default:
			source = arg
		}
	}
	if source == "" {
		printDiffHelp()
		return fmt.Errorf("path is required")
	}

	cfg, reg, err := loadRuntime()
	if err != nil {
		return err
	}

	b, err := variant.Create(source, reg)
	if err != nil {
		logOp(cfg, "diff", map[string]any{"source": source}, start, err)
		return err
	}
	base, ok := reg.Lookup(b.Descriptor.BaseGUID)
	if !ok {
		return fmt.Errorf("base brush %s is not in the catalog", b.Descriptor.BaseGUID)
	}

	text, warnings, err := diff.Descriptors(base, b.Descriptor)
	logOp(cfg, "diff", map[string]any{"source": source, "name": b.Descriptor.Name}, start, err)
	if err != nil {
		return err
	}

	ui.HeaderBox("userbrush diff", fmt.Sprintf("%s vs %s", b.Descriptor.Name, base.Name))
	printDiffLines(text, full)

	for _, w := range append(b.Warnings, warnings...) {
		ui.Warning("%s", w)
	}
	return nil
}

// printDiffLines colors a line diff; unchanged lines are dropped unless full.
func printDiffLines(text string, full bool) {
	changed := 0
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+ "):
			changed++
			fmt.Println(ui.Green + line + ui.Reset)
		case strings.HasPrefix(line, "- "):
			changed++
			fmt.Println(ui.Red + line + ui.Reset)
		case full:
			fmt.Println(ui.Gray + line + ui.Reset)
		}
	}
	if changed == 0 {
		ui.Info("Variant is identical to its base")
	}
}

func printDiffHelp() {
	fmt.Println(`Usage: userbrush diff <path> [options]

Load a variant and show the exported values that differ from its base.

Options:
  --full       Also print unchanged lines
  --help, -h   Show this help`)
}
