package main

import (
	"fmt"
	"time"

	"userbrush/internal/batch"
	"userbrush/internal/brush"
	"userbrush/internal/ui"
)

func cmdList(args []string) error {
	start := time.Now()
	withVariants := false
	for _, arg := range args {
		switch arg {
		case "--variants", "-a":
			withVariants = true
		case "--help", "-h":
			fmt.Println("Usage: userbrush list [--variants]")
			return nil
		default:
			return fmt.Errorf("unknown option: %s", arg)
		}
	}

	cfg, reg, err := loadRuntime()
	if err != nil {
		return err
	}

	ui.HeaderBox("userbrush list", cfg.Catalog)
	ui.SectionLabel(fmt.Sprintf("Base brushes (%d)", len(reg.Brushes())))
	for _, d := range reg.Brushes() {
		ui.Status(d.Name, "base", brushDetail(d))
	}

	if withVariants {
		inputs, derr := batch.Discover(cfg.BrushesDir)
		if derr != nil {
			err = derr
		} else {
			results := batch.Run(inputs, reg, cfg.Jobs, nil)
			ui.SectionLabel(fmt.Sprintf("Variants (%d)", len(results)))
			for _, r := range results {
				printResultStatus(r)
			}
		}
	}

	logOp(cfg, "list", map[string]any{"variants": withVariants}, start, err)
	return err
}

func brushDetail(d *brush.Descriptor) string {
	detail := d.GUID
	if d.Material != nil && d.Material.Shader != nil {
		detail += "  " + d.Material.Shader.Name
	}
	return detail
}

func printResultStatus(r batch.Result) {
	switch {
	case r.Brush != nil && !r.Brush.ShowInGUI():
		ui.Status(r.Brush.Descriptor.Name, "hidden", r.Path)
	case r.Brush != nil:
		ui.Status(r.Brush.Descriptor.Name, r.Status, r.Path)
	default:
		ui.Status(r.Path, r.Status, r.Err.Error())
	}
}
