package main

import (
	"fmt"
	"strings"

	"userbrush/internal/mapping"
	"userbrush/internal/ui"
)

func cmdFields(args []string) error {
	filter := ""
	for _, arg := range args {
		switch {
		case arg == "--help" || arg == "-h":
			fmt.Println("Usage: userbrush fields [PATTERN]")
			return nil
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown option: %s", arg)
		default:
			filter = arg
		}
	}

	bindings, warnings := mapping.Table()
	ui.HeaderBox("userbrush fields", fmt.Sprintf("%d bindings", len(bindings)))

	section := ""
	for _, b := range bindings {
		if filter != "" && !matchField(filter, b.Path, b.Target.Name) {
			continue
		}
		if s := sectionOf(b.Path); s != section {
			section = s
			ui.SectionLabel(section)
		}
		fmt.Printf("  %-40s %s%-32s%s %s\n", b.Path, ui.Cyan, b.Target.Name, ui.Reset, b.Target.Kind)
	}
	for _, w := range warnings {
		ui.Warning("%s", w)
	}
	return nil
}

func sectionOf(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[:i]
	}
	return "(top level)"
}

// matchField matches pattern case-insensitively against either name.
func matchField(pattern string, names ...string) bool {
	pattern = strings.ToLower(pattern)
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), pattern) {
			return true
		}
	}
	return false
}
