package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"userbrush/internal/ui"
	"userbrush/internal/variant"
)

func cmdNew(args []string) error {
	start := time.Now()
	var positional []string
	force := false
	dryRun := false

	for _, arg := range args {
		switch {
		case arg == "--force" || arg == "-f":
			force = true
		case arg == "--dry-run" || arg == "-n":
			dryRun = true
		case arg == "--help" || arg == "-h":
			printNewHelp()
			return nil
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown option: %s", arg)
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) != 2 {
		printNewHelp()
		return fmt.Errorf("variant name and base brush are required")
	}
	name, baseRef := positional[0], positional[1]
	if !isValidVariantName(name) {
		return fmt.Errorf("invalid variant name %q: it is used as a folder name", name)
	}

	cfg, reg, err := loadRuntime()
	if err != nil {
		return err
	}

	base, err := reg.Resolve(baseRef)
	if err != nil {
		logOp(cfg, "new", map[string]any{"name": name, "base": baseRef}, start, err)
		return err
	}

	exported, warnings := variant.ExportDescriptor(base)
	props := variant.NewVariantConfig(exported, name)
	data, err := props.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Join(cfg.BrushesDir, name)
	cfgFile := filepath.Join(dir, variant.ConfigFile)

	if dryRun {
		ui.Info("Would write: %s", cfgFile)
		ui.Box(variant.ConfigFile, strings.Split(strings.TrimRight(string(data), "\n"), "\n")...)
		return nil
	}

	if _, err := os.Stat(cfgFile); err == nil && !force {
		if !runningInInteractiveTTY() {
			return fmt.Errorf("variant '%s' already exists at %s (use --force)", name, dir)
		}
		if !confirm(fmt.Sprintf("Overwrite %s?", cfgFile)) {
			ui.Info("Cancelled")
			return nil
		}
	}

	err = writeVariantConfig(dir, data)
	logOp(cfg, "new", map[string]any{
		"name": name,
		"base": base.Name,
		"guid": props.GUID,
	}, start, err)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		ui.Warning("%s", w)
	}
	ui.BrushBox(name, "Variant of "+base.Name, [][2]string{
		{"GUID", props.GUID},
		{"Config", cfgFile},
	})
	ui.Info("Add a button icon and textures next to %s, then run 'userbrush load %s'", variant.ConfigFile, dir)
	return nil
}

func writeVariantConfig(dir string, data []byte) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create variant directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, variant.ConfigFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", variant.ConfigFile, err)
	}
	return nil
}

// isValidVariantName rejects names that cannot be a single folder.
func isValidVariantName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return false
	}
	return !strings.ContainsAny(name, `/\:*?"<>|`)
}

func printNewHelp() {
	fmt.Println(`Usage: userbrush new <name> <base> [options]

Scaffold a variant folder whose Brush.cfg starts from the base brush's
current values. The base may be named by GUID or description.

Options:
  --force, -f     Overwrite an existing Brush.cfg without asking
  --dry-run, -n   Print the configuration instead of writing it
  --help, -h      Show this help`)
}
