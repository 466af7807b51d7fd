package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"userbrush/internal/registry"
	"userbrush/internal/ui"
	"userbrush/internal/variant"
)

func cmdExport(args []string) error {
	start := time.Now()
	dest := ""
	var names []string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--dest" || args[i] == "-d":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			dest = v
			i++
		case args[i] == "--help" || args[i] == "-h":
			printExportHelp()
			return nil
		case strings.HasPrefix(args[i], "-"):
			return fmt.Errorf("unknown option: %s", args[i])
		default:
			names = append(names, args[i])
		}
	}

	cfg, reg, err := loadRuntime()
	if err != nil {
		return err
	}
	if dest == "" {
		dest = cfg.ExportDir
	}

	spinner := ui.StartSpinner("Exporting base brushes...")
	var count int
	var warnings []string
	if len(names) == 0 {
		count, warnings, err = variant.ExportAll(reg, dest)
	} else {
		count, warnings, err = exportNamed(reg, names, dest)
	}
	switch {
	case err != nil:
		spinner.Fail("Export failed")
	case len(warnings) > 0:
		spinner.Warn(fmt.Sprintf("Exported %d brushes to %s with warnings", count, dest))
	default:
		spinner.Success(fmt.Sprintf("Exported %d brushes to %s", count, dest))
	}

	for _, w := range warnings {
		ui.Warning("%s", w)
	}
	ui.SummaryLine("Export", time.Since(start),
		ui.Metric{Label: "exported", Count: count},
		ui.Metric{Label: "warnings", Count: len(warnings)},
	)

	logOp(cfg, "export", map[string]any{
		"dest":     dest,
		"exported": count,
		"names":    names,
	}, start, err)
	return err
}

// exportNamed exports the named base brushes and stops at the first failure.
func exportNamed(reg *registry.Registry, names []string, dest string) (int, []string, error) {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return 0, nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	var warnings []string
	count := 0
	for _, name := range names {
		base, err := reg.Resolve(name)
		if err != nil {
			return count, warnings, err
		}
		w, err := variant.WriteExport(base, filepath.Join(dest, base.Name+".txt"))
		warnings = append(warnings, w...)
		if err != nil {
			return count, warnings, err
		}
		count++
	}
	return count, warnings, nil
}

func printExportHelp() {
	fmt.Println(`Usage: userbrush export [options] [BRUSH...]

Write one editable properties file per base brush. Brushes may be named
by GUID or description; by default all are exported.

Options:
  --dest, -d DIR   Destination (default: export_dir from config)
  --help, -h       Show this help`)
}
