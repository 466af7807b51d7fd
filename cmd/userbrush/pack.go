package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"userbrush/internal/ui"
	"userbrush/internal/variant"
)

func cmdPack(args []string) error {
	start := time.Now()
	var positional []string
	subfolder := ""
	force := false

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--subfolder":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			subfolder = v
			i++
		case args[i] == "--force" || args[i] == "-f":
			force = true
		case args[i] == "--help" || args[i] == "-h":
			printPackHelp()
			return nil
		case strings.HasPrefix(args[i], "-"):
			return fmt.Errorf("unknown option: %s", args[i])
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 2 {
		printPackHelp()
		return fmt.Errorf("source path and output are required")
	}
	source, out := positional[0], positional[1]

	cfg, reg, err := loadRuntime()
	if err != nil {
		return err
	}

	if _, err := os.Stat(out); err == nil && !force {
		if !runningInInteractiveTTY() || !confirm(fmt.Sprintf("%s exists and will be replaced.", out)) {
			return fmt.Errorf("output %s already exists (use --force)", out)
		}
	}

	b, err := variant.Create(source, reg)
	if err == nil {
		err = b.Pack(out, subfolder)
	}
	logOp(cfg, "pack", map[string]any{"source": source, "target": out}, start, err)
	if err != nil {
		return err
	}

	for _, w := range b.Warnings {
		ui.Warning("%s", w)
	}

	items := map[string]string{
		"variant": b.Descriptor.Name,
		"files":   fmt.Sprintf("%d", len(b.Assets())+1),
		"output":  out,
	}
	if info, err := os.Stat(out); err == nil && !info.IsDir() {
		items["size"] = formatBytes(info.Size())
		if digest, err := fileDigest(out); err == nil {
			items["digest"] = digest
		}
	}
	ui.SummaryBox("Packed", items)
	ui.SummaryLine("Pack", time.Since(start),
		ui.Metric{Label: "files", Count: len(b.Assets()) + 1},
		ui.Metric{Label: "warnings", Count: len(b.Warnings)},
	)
	return nil
}

func printPackHelp() {
	fmt.Println(`Usage: userbrush pack <path> <out> [options]

Load a variant and write its Brush.cfg plus every asset it uses to a new
folder, or to a .zip when <out> ends in .zip. Unused files are left out.

Options:
  --subfolder SUB   Place the variant below SUB/ inside the output
  --force, -f       Replace an existing output
  --help, -h        Show this help`)
}
