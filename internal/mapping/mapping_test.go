package mapping

import (
	"strings"
	"testing"

	"userbrush/internal/brush"
	"userbrush/internal/brushcfg"
)

func f32(v float32) *float32 { return &v }
func boolp(v bool) *bool     { return &v }

func baseDescriptor() *brush.Descriptor {
	return &brush.Descriptor{
		DurableName:       "Ink",
		Description:       "Ink brush",
		BrushSizeRange:    brush.Vector2{X: 0.05, Y: 0.4},
		PressureSizeRange: brush.Vector2{X: 0.1, Y: 1},
		SizeVariance:      0.3,
		Opacity:           1,
		TileRate:          2,
		HeadMinPoints:     4,
		AllowExport:       true,
	}
}

func TestTable_AllTargetsExist(t *testing.T) {
	bindings, warnings := Table()
	if len(warnings) != 0 {
		t.Errorf("unmapped targets: %v", warnings)
	}
	seen := map[string]bool{}
	for _, b := range bindings {
		if seen[b.Path] {
			t.Errorf("duplicate binding for %s", b.Path)
		}
		seen[b.Path] = true
	}
	for _, want := range []string{"Name", "Size.BrushSizeRange", "Tube.MinLength", "Simplification.MiddlePointStep"} {
		if !seen[want] {
			t.Errorf("missing binding %s", want)
		}
	}
	if seen["GUID"] || seen["Material.Shader"] {
		t.Error("load-only fields must not be bound")
	}
}

func TestApply_OnlyPresentValues(t *testing.T) {
	d := baseDescriptor()
	props := &brushcfg.Properties{
		Name:        "Glowy",
		Description: "A glowy variant",
		Size:        &brushcfg.SizeProperties{SizeVariance: f32(0.9)},
	}

	if w := Apply(props, d); len(w) != 0 {
		t.Fatalf("Apply() warnings: %v", w)
	}
	if d.SizeVariance != 0.9 {
		t.Errorf("SizeVariance = %v, want 0.9", d.SizeVariance)
	}
	if d.BrushSizeRange != (brush.Vector2{X: 0.05, Y: 0.4}) {
		t.Errorf("absent BrushSizeRange changed: %+v", d.BrushSizeRange)
	}
	if d.TileRate != 2 || d.HeadMinPoints != 4 || !d.AllowExport {
		t.Error("absent subsections changed the descriptor")
	}
	if d.DurableName != "Glowy" || d.Description != "A glowy variant" {
		t.Errorf("names = %q/%q", d.DurableName, d.Description)
	}
}

func TestApply_SequencesBecomeVectors(t *testing.T) {
	d := baseDescriptor()
	props := &brushcfg.Properties{
		Name:        "n",
		Description: "d",
		Size:        &brushcfg.SizeProperties{BrushSizeRange: []float32{0.2, 0.8}},
		Color:       &brushcfg.ColorProperties{PressureOpacityRange: []float32{0.5, 1}},
		QuadBatch:   &brushcfg.QuadBatchProperties{SizeRatio: []float32{1, 3}},
	}
	if w := Apply(props, d); len(w) != 0 {
		t.Fatalf("Apply() warnings: %v", w)
	}
	if d.BrushSizeRange != (brush.Vector2{X: 0.2, Y: 0.8}) {
		t.Errorf("BrushSizeRange = %+v", d.BrushSizeRange)
	}
	if d.PressureOpacityRange != (brush.Vector2{X: 0.5, Y: 1}) {
		t.Errorf("PressureOpacityRange = %+v", d.PressureOpacityRange)
	}
	if d.SizeRatio != (brush.Vector2{X: 1, Y: 3}) {
		t.Errorf("SizeRatio = %+v", d.SizeRatio)
	}
}

func TestApply_BadSequenceWarns(t *testing.T) {
	d := baseDescriptor()
	props := &brushcfg.Properties{
		Name:        "n",
		Description: "d",
		Size:        &brushcfg.SizeProperties{BrushSizeRange: []float32{0.2, 0.8, 1}},
	}
	w := Apply(props, d)
	if len(w) != 1 || !strings.Contains(w[0], "Size.BrushSizeRange") {
		t.Fatalf("warnings = %v", w)
	}
	if d.BrushSizeRange != (brush.Vector2{X: 0.05, Y: 0.4}) {
		t.Error("rejected value was applied")
	}
}

func TestExtractApply_RoundTrip(t *testing.T) {
	src := baseDescriptor()
	src.DescriptionExtra = "extra"
	src.AudioReactive = true
	src.ColorLuminanceMin = 0.25
	src.SolidMinLengthMeters = 0.002
	src.TubeStoreRadiusInTexcoord0Z = true
	src.TextureAtlasV = 4
	src.SizeRatio = brush.Vector2{X: 2, Y: 0.5}

	props := &brushcfg.Properties{}
	if w := Extract(src, props); len(w) != 0 {
		t.Fatalf("Extract() warnings: %v", w)
	}
	if props.Name != "Ink" || *props.ExtraDescription != "extra" {
		t.Errorf("root fields = %q/%v", props.Name, props.ExtraDescription)
	}
	if props.Tube == nil || !*props.Tube.StoreRadiusInTexCoord {
		t.Error("Tube section not extracted")
	}

	dst := &brush.Descriptor{}
	if w := Apply(props, dst); len(w) != 0 {
		t.Fatalf("Apply() warnings: %v", w)
	}
	bindings, _ := Table()
	for _, b := range bindings {
		if got, want := b.Target.Get(dst), b.Target.Get(src); got != want {
			t.Errorf("%s: round trip = %v, want %v", b.Path, got, want)
		}
	}
}

func TestApply_OverrideBool(t *testing.T) {
	d := baseDescriptor()
	props := &brushcfg.Properties{
		Name:        "n",
		Description: "d",
		Export:      &brushcfg.ExportProperties{AllowExport: boolp(false)},
	}
	Apply(props, d)
	if d.AllowExport {
		t.Error("explicit false should override the base value")
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		kind    brush.Kind
		in      any
		want    any
		wantErr bool
	}{
		{"float from float64", brush.KindFloat, 0.5, float32(0.5), false},
		{"float from int64", brush.KindFloat, int64(3), float32(3), false},
		{"int from integral float64", brush.KindInt, 4.0, 4, false},
		{"int from fractional float64", brush.KindInt, 4.5, nil, true},
		{"int from int64", brush.KindInt, int64(7), 7, false},
		{"bool", brush.KindBool, true, true, false},
		{"string mismatch", brush.KindString, 1, nil, true},
		{"vector2 from []any", brush.KindVector2, []any{0.1, int64(2)}, brush.Vector2{X: 0.1, Y: 2}, false},
		{"vector2 wrong length", brush.KindVector2, []float32{1}, nil, true},
		{"color order", brush.KindColor, []float64{0.1, 0.2, 0.3, 0.4}, brush.Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}, false},
		{"vector4", brush.KindVector4, []float32{1, 2, 3, 4}, brush.Vector4{X: 1, Y: 2, Z: 3, W: 4}, false},
		{"non-number element", brush.KindVector4, []any{1.0, "x", 1.0, 1.0}, nil, true},
		{"scalar for vector", brush.KindVector2, 1.0, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.kind, tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Coerce() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSerialize(t *testing.T) {
	got := Serialize(brush.Color{R: 1, G: 0.5, B: 0.25, A: 1}).([]float32)
	want := []float32{1, 0.5, 0.25, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Serialize(Color) = %v, want %v", got, want)
		}
	}
	if Serialize(float32(2)) != float32(2) {
		t.Error("scalars should pass through")
	}
}
