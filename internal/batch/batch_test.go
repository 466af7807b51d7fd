package batch

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"userbrush/internal/brush"
	"userbrush/internal/registry"
	"userbrush/internal/variant"
)

func testRegistry() *registry.Registry {
	return registry.New(nil, &brush.Descriptor{GUID: "base-guid-123", Name: "Ink", Description: "Ink"})
}

func iconPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func config(guid, name string) []byte {
	return []byte(fmt.Sprintf(`{"VariantOf":"base-guid-123","GUID":%q,"Name":%q,"Description":%q,"ButtonIcon":"icon.png"}`, guid, name, name))
}

func writeBundle(t *testing.T, dir, name string, cfg []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(p, 0755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(p, variant.ConfigFile), cfg, 0644)
	os.WriteFile(filepath.Join(p, "icon.png"), iconPNG(t), 0644)
	return p
}

func writeZipBundle(t *testing.T, dir, name string, cfg []byte) string {
	t.Helper()
	p := filepath.Join(dir, name+".zip")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for rel, data := range map[string][]byte{name + "/" + variant.ConfigFile: cfg, name + "/icon.png": iconPNG(t)} {
		w, _ := zw.Create(rel)
		w.Write(data)
	}
	zw.Close()
	f.Close()
	return p
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "B", config("g-b", "B"))
	writeZipBundle(t, dir, "A", config("g-a", "A"))
	os.MkdirAll(filepath.Join(dir, "empty"), 0755)
	os.MkdirAll(filepath.Join(dir, ".hidden"), 0755)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	inputs, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(inputs) != 2 {
		t.Fatalf("Discover() = %v, want 2 bundles", inputs)
	}
	if filepath.Base(inputs[0].Path) != "A.zip" || filepath.Base(inputs[1].Path) != "B" {
		t.Errorf("order = %s, %s", inputs[0].Path, inputs[1].Path)
	}

	if _, err := Discover(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing dir")
	}
}

func TestLoad_Empty(t *testing.T) {
	results := Load(nil, testRegistry(), 0, nil)
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestRun_FirstDeclarationWins(t *testing.T) {
	dir := t.TempDir()
	var inputs []Input
	for i := 0; i < 12; i++ {
		p := writeBundle(t, dir, fmt.Sprintf("V%02d", i), config(fmt.Sprintf("g-%02d", i), fmt.Sprintf("V%02d", i)))
		inputs = append(inputs, Input{Path: p})
	}
	dup := writeBundle(t, dir, "Z-dup", config("g-03", "Copy"))
	inputs = append(inputs, Input{Path: dup})
	bad := writeBundle(t, dir, "Z-bad", []byte(`{"VariantOf":"nope","GUID":"g-x","Name":"x","Description":"x"}`))
	inputs = append(inputs, Input{Path: bad})

	reg := testRegistry()
	var done, failed int64
	results := Run(inputs, reg, 3, func(r Result) {
		atomic.AddInt64(&done, 1)
		if r.Status == StatusFailed {
			atomic.AddInt64(&failed, 1)
		}
	})

	if done != int64(len(inputs)) {
		t.Errorf("onDone called %d times, want %d", done, len(inputs))
	}
	// Duplicates are only found at commit, so onDone sees just the bad bundle.
	if failed != 1 {
		t.Errorf("onDone saw %d failures, want 1", failed)
	}
	for i := 0; i < 12; i++ {
		if results[i].Status != StatusLoaded {
			t.Errorf("results[%d] = %s (%v)", i, results[i].Status, results[i].Err)
		}
		if results[i].Path != inputs[i].Path {
			t.Errorf("results[%d] out of order", i)
		}
	}

	d := results[12]
	if d.Status != StatusDuplicate || !IsDuplicate(d.Err) || d.Brush != nil {
		t.Errorf("duplicate result = %+v", d)
	}
	var lerr *variant.LoadError
	if !errors.As(d.Err, &lerr) || lerr.Location != "Z-dup" {
		t.Errorf("duplicate err = %v", d.Err)
	}

	if results[13].Status != StatusFailed || !errors.Is(results[13].Err, registry.ErrUnresolvedBase) {
		t.Errorf("bad result = %+v", results[13])
	}

	if len(reg.Variants()) != 12 {
		t.Errorf("registered %d variants, want 12", len(reg.Variants()))
	}
	got, _ := reg.Lookup("g-03")
	if got == nil || got.Name != "V03" {
		t.Errorf("g-03 registered as %v, want V03", got)
	}

	s := Summarize(results)
	if s.Loaded != 12 || s.Failed != 2 || s.Warnings != 0 {
		t.Errorf("Summarize() = %+v", s)
	}
}

func TestLoad_ArchiveAndWarnings(t *testing.T) {
	dir := t.TempDir()
	zipPath := writeZipBundle(t, dir, "Zipped", config("g-z", "Zipped"))
	warnCfg := []byte(`{"VariantOf":"base-guid-123","GUID":"g-w","Name":"W","Description":"W","ButtonIcon":"icon.png","Material":{"Shader":"Missing"}}`)
	warnPath := writeBundle(t, dir, "Warned", warnCfg)

	results := Load([]Input{{Path: zipPath}, {Path: warnPath}}, testRegistry(), 0, nil)
	if results[0].Status != StatusLoaded {
		t.Errorf("zip result = %s (%v)", results[0].Status, results[0].Err)
	}
	if results[1].Status != StatusWarnings || len(results[1].Brush.Warnings) == 0 {
		t.Errorf("warned result = %+v", results[1])
	}
	if s := Summarize(results); s.Loaded != 2 || s.Warnings != 1 {
		t.Errorf("Summarize() = %+v", s)
	}
}

func TestLoad_DoesNotRegister(t *testing.T) {
	dir := t.TempDir()
	p := writeBundle(t, dir, "V", config("g-v", "V"))
	reg := testRegistry()
	Load([]Input{{Path: p}}, reg, 1, nil)
	if len(reg.Variants()) != 0 {
		t.Error("Load must leave the registry untouched")
	}
}
