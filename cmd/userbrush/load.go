package main

import (
	"fmt"
	"strings"
	"time"

	"userbrush/internal/oplog"
	"userbrush/internal/ui"
	"userbrush/internal/variant"
)

func cmdLoad(args []string) error {
	start := time.Now()
	var source string
	sketch := false
	subfolder := ""

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--sketch" || args[i] == "-s":
			sketch = true
		case args[i] == "--subfolder":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			sketch = true
			subfolder = v
			i++
		case args[i] == "--help" || args[i] == "-h":
			printLoadHelp()
			return nil
		case strings.HasPrefix(args[i], "-"):
			return fmt.Errorf("unknown option: %s", args[i])
		default:
			if source != "" {
				return fmt.Errorf("unexpected argument: %s", args[i])
			}
			source = args[i]
		}
	}
	if source == "" {
		printLoadHelp()
		return fmt.Errorf("path is required")
	}

	cfg, reg, err := loadRuntime()
	if err != nil {
		return err
	}
	if sketch && subfolder == "" {
		subfolder = cfg.SketchSubfolder
	}

	var b *variant.Brush
	if sketch {
		b, err = variant.CreateFromSketch(source, subfolder, reg)
	} else {
		b, err = variant.Create(source, reg)
	}
	if err == nil {
		err = reg.Register(b.Descriptor)
		if err != nil {
			err = &variant.LoadError{Location: b.Location(), Err: err}
		}
	}

	logLoad(source, b, err)
	logOp(cfg, "load", map[string]any{"source": source, "sketch": sketch}, start, err)
	if err != nil {
		return err
	}

	printBrush(b)
	return nil
}

func printBrush(b *variant.Brush) {
	d := b.Descriptor
	facts := [][2]string{
		{"GUID", d.GUID},
		{"Base", d.BaseGUID},
		{"Location", b.Location()},
		{"Icon", d.ButtonTexture.String()},
		{"Show in GUI", fmt.Sprintf("%t", b.ShowInGUI())},
		{"Embed in sketch", fmt.Sprintf("%t", b.EmbedInSketch())},
	}
	if d.Material != nil && d.Material.Shader != nil {
		facts = append(facts, [2]string{"Shader", d.Material.Shader.Name})
		for _, name := range d.Material.TextureNames() {
			facts = append(facts, [2]string{name, d.Material.Texture(name).String()})
		}
	}
	facts = append(facts, [2]string{"Assets", fmt.Sprintf("%d", len(b.Assets()))})
	ui.BrushBox(d.Name, d.Description, facts)

	if len(b.Warnings) > 0 {
		ui.WarningBox(fmt.Sprintf("%d warnings", len(b.Warnings)), b.Warnings...)
	}
}

// logLoad records one bundle outcome in the loads log.
func logLoad(source string, b *variant.Brush, loadErr error) {
	e := oplog.NewEntry("load", statusFromErr(loadErr), 0)
	e.Args = map[string]any{"source": source}
	if b != nil {
		e.Args["name"] = b.Descriptor.Name
		e.Args["guid"] = b.Descriptor.GUID
		e.Warnings = b.Warnings
		if len(b.Warnings) > 0 && loadErr == nil {
			e.Status = "partial"
		}
	}
	if loadErr != nil {
		e.Message = loadErr.Error()
	}
	oplog.Write(oplog.LogDir(), oplog.LoadsFile, e) //nolint:errcheck
}

func printLoadHelp() {
	fmt.Println(`Usage: userbrush load <path> [options]

Load a variant from a folder holding Brush.cfg or from an archive.

Options:
  --sketch, -s         Treat path as a sketch archive holding the variant
  --subfolder SUB      Sketch folder holding variants (implies --sketch;
                       default: sketch_subfolder from config)
  --help, -h           Show this help`)
}
