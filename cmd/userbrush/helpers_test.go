package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"userbrush/internal/registry"
	"userbrush/internal/variant"
)

func TestStatusFromErr(t *testing.T) {
	if got := statusFromErr(nil); got != "ok" {
		t.Errorf("statusFromErr(nil) = %q", got)
	}
	if got := statusFromErr(errors.New("x")); got != "error" {
		t.Errorf("statusFromErr(err) = %q", got)
	}
}

func TestIsValidVariantName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Glowy", true},
		{"Glowy Ink 2", true},
		{"", false},
		{"  ", false},
		{"..", false},
		{".hidden", false},
		{"a/b", false},
		{`a\b`, false},
		{"what?", false},
	}
	for _, tt := range tests {
		if got := isValidVariantName(tt.name); got != tt.want {
			t.Errorf("isValidVariantName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRequireValue(t *testing.T) {
	args := []string{"--dest", "out", "--jobs"}
	if v, err := requireValue(args, 0); err != nil || v != "out" {
		t.Errorf("requireValue() = %q, %v", v, err)
	}
	if _, err := requireValue(args, 2); err == nil || !strings.Contains(err.Error(), "--jobs") {
		t.Errorf("expected error naming --jobs, got %v", err)
	}
}

func TestFileDigest(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.txt")
	os.WriteFile(p, []byte("abc"), 0644)

	got, err := fileDigest(p)
	if err != nil {
		t.Fatal(err)
	}
	want := "sha256:ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("fileDigest() = %s", got)
	}

	if _, err := fileDigest(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := map[int64]string{
		0:       "0 B",
		1023:    "1023 B",
		1024:    "1.0 KB",
		1536:    "1.5 KB",
		1 << 20: "1.0 MB",
	}
	for n, want := range tests {
		if got := formatBytes(n); got != want {
			t.Errorf("formatBytes(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestSampleCatalog_Builds(t *testing.T) {
	reg, err := sampleCatalog().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(reg.Brushes()) != 2 {
		t.Fatalf("expected 2 base brushes, got %d", len(reg.Brushes()))
	}
	for _, d := range reg.Brushes() {
		if d.Material == nil || d.Material.Shader == nil {
			t.Errorf("%s has no material", d.Name)
		}
		if _, warnings := variant.ExportDescriptor(d); len(warnings) != 0 {
			t.Errorf("%s export warnings: %v", d.Name, warnings)
		}
	}
}

func TestSampleCatalog_SavesInBothFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"catalog.yaml", "catalog.toml"} {
		p := filepath.Join(dir, name)
		if err := sampleCatalog().Save(p); err != nil {
			t.Fatalf("Save(%s) error: %v", name, err)
		}
		cat, err := registry.LoadCatalog(p)
		if err != nil {
			t.Fatalf("LoadCatalog(%s) error: %v", name, err)
		}
		reg, err := cat.Build()
		if err != nil {
			t.Fatalf("Build(%s) error: %v", name, err)
		}
		ink, err := reg.Resolve("Ink")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if ink.TileRate != 1 || ink.BrushSizeRange.Y != 0.1 {
			t.Errorf("%s: Ink = tile %v size %v", name, ink.TileRate, ink.BrushSizeRange)
		}
	}
}
