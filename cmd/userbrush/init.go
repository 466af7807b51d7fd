package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"userbrush/internal/config"
	"userbrush/internal/registry"
	"userbrush/internal/ui"
)

func cmdInit(args []string) error {
	start := time.Now()
	cfg := config.Default()
	force := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--catalog", "-c":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			abs, err := filepath.Abs(v)
			if err != nil {
				return err
			}
			cfg.Catalog = abs
			i++
		case "--brushes", "-b":
			v, err := requireValue(args, i)
			if err != nil {
				return err
			}
			abs, err := filepath.Abs(v)
			if err != nil {
				return err
			}
			cfg.BrushesDir = abs
			i++
		case "--force", "-f":
			force = true
		case "--help", "-h":
			printInitHelp()
			return nil
		default:
			return fmt.Errorf("unknown option: %s", args[i])
		}
	}

	configPath := config.ConfigPath()
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("already initialized. Config at: %s", configPath)
	}

	err := runInit(cfg, configPath)
	logOp(cfg, "init", map[string]any{"catalog": cfg.Catalog}, start, err)
	return err
}

func runInit(cfg *config.Config, configPath string) error {
	ui.Header("Initializing userbrush")
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	ui.Success("Wrote config: %s", configPath)

	if _, err := os.Stat(cfg.Catalog); err == nil {
		ui.Info("Keeping existing catalog: %s", cfg.Catalog)
	} else {
		if err := sampleCatalog().Save(cfg.Catalog); err != nil {
			return err
		}
		ui.Success("Wrote sample catalog: %s", cfg.Catalog)
	}

	if err := os.MkdirAll(cfg.BrushesDir, 0755); err != nil {
		return fmt.Errorf("failed to create brushes directory: %w", err)
	}
	ui.Success("Brushes directory: %s", cfg.BrushesDir)

	fmt.Println()
	ui.Info("Next: 'userbrush export' to write editable base brush properties")
	return nil
}

// sampleCatalog describes a small set of base brushes to start from.
func sampleCatalog() *registry.Catalog {
	return &registry.Catalog{
		Shaders: []registry.ShaderEntry{
			{
				Name: "Brush/Standard",
				Properties: []registry.PropertyEntry{
					{Name: "_Color", Type: "color"},
					{Name: "_Cutoff", Type: "range"},
					{Name: "_MainTex", Type: "texture"},
				},
			},
			{
				Name: "Brush/Additive",
				Properties: []registry.PropertyEntry{
					{Name: "_EmissionGain", Type: "range"},
					{Name: "_MainTex", Type: "texture"},
					{Name: "_ScrollRate", Type: "float"},
					{Name: "_ScrollDistance", Type: "vector"},
				},
			},
		},
		Brushes: []registry.BrushEntry{
			{
				GUID:        "f5c336cf-5108-4b40-ade9-c687504385ab",
				Name:        "Ink",
				Description: "Ink",
				Fields: map[string]any{
					"m_BrushSizeRange": []any{0.005, 0.1},
					"m_TileRate":       1.0,
				},
				Material: &registry.MaterialEntry{
					Shader: "Brush/Standard",
					Colors: map[string][]float64{"_Color": {1, 1, 1, 1}},
					Floats: map[string]float64{"_Cutoff": 0.5},
				},
			},
			{
				GUID:        "2241cd32-8ba2-48a5-9ee7-2caef7e9ed62",
				Name:        "Light",
				Description: "Light",
				Fields: map[string]any{
					"m_BrushSizeRange": []any{0.01, 0.5},
					"m_EmissiveFactor": 1.0,
				},
				Material: &registry.MaterialEntry{
					Shader: "Brush/Additive",
					Floats: map[string]float64{"_EmissionGain": 0.45, "_ScrollRate": 0},
				},
			},
		},
	}
}

func printInitHelp() {
	fmt.Println(`Usage: userbrush init [options]

Write config.yaml and, if missing, a sample base brush catalog.

Options:
  --catalog, -c PATH   Catalog file (.yaml or .toml)
  --brushes, -b DIR    Directory holding variant bundles
  --force, -f          Overwrite an existing config
  --help, -h           Show this help`)
}
