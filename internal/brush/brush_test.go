package brush

import (
	"sort"
	"testing"
)

func testShader() *Shader {
	return &Shader{
		Name: "Standard",
		Properties: []ShaderProperty{
			{Name: "_Cutoff", Kind: PropertyRange},
			{Name: "_Color", Kind: PropertyColor},
			{Name: "_Scroll", Kind: PropertyVector},
			{Name: "_MainTex", Kind: PropertyTexture},
			{Name: "_Mode", Kind: PropertyInt},
		},
	}
}

func TestDescriptorClone_Isolated(t *testing.T) {
	m := NewMaterial(testShader())
	if err := m.SetColor("_Color", Color{R: 1, A: 1}); err != nil {
		t.Fatalf("SetColor() error: %v", err)
	}
	if err := m.SetTexture("_MainTex", &Texture{Name: "main.png", Width: 4, Height: 4}); err != nil {
		t.Fatalf("SetTexture() error: %v", err)
	}
	orig := &Descriptor{
		GUID:          "a",
		Name:          "Ink",
		ButtonTexture: &Texture{Name: "icon.png"},
		Material:      m,
		TileRate:      2,
	}

	c := orig.Clone()
	c.TileRate = 5
	c.ButtonTexture.Name = "other.png"
	c.Material.SetColor("_Color", Color{G: 1})
	c.Material.Texture("_MainTex").Width = 8

	if orig.TileRate != 2 {
		t.Errorf("orig.TileRate = %v, want 2", orig.TileRate)
	}
	if orig.ButtonTexture.Name != "icon.png" {
		t.Errorf("orig.ButtonTexture.Name = %q, want icon.png", orig.ButtonTexture.Name)
	}
	if got := orig.Material.Color("_Color"); got != (Color{R: 1, A: 1}) {
		t.Errorf("orig color = %+v, want red", got)
	}
	if got := orig.Material.Texture("_MainTex").Width; got != 4 {
		t.Errorf("orig texture width = %d, want 4", got)
	}
	if c.Material.Shader != orig.Material.Shader {
		t.Error("clone should share the shader")
	}
}

func TestMaterialSetters_CheckKind(t *testing.T) {
	m := NewMaterial(testShader())

	tests := []struct {
		name    string
		set     func() error
		wantErr bool
	}{
		{"float on range", func() error { return m.SetFloat("_Cutoff", 0.5) }, false},
		{"float on int", func() error { return m.SetFloat("_Mode", 2) }, false},
		{"float on color", func() error { return m.SetFloat("_Color", 1) }, true},
		{"color on vector", func() error { return m.SetColor("_Scroll", Color{}) }, true},
		{"vector", func() error { return m.SetVector("_Scroll", Vector4{X: 1}) }, false},
		{"texture on float", func() error { return m.SetTexture("_Cutoff", &Texture{}) }, true},
		{"undeclared", func() error { return m.SetFloat("_Glossiness", 0.8) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set()
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if got := m.Float("_Cutoff"); got != 0.5 {
		t.Errorf("Float(_Cutoff) = %v, want 0.5", got)
	}
	if got := m.Float("_Color"); got != 0 {
		t.Errorf("rejected set leaked a value: %v", got)
	}
}

func TestMaterial_TextureNamesSorted(t *testing.T) {
	s := &Shader{Name: "s", Properties: []ShaderProperty{
		{Name: "_B", Kind: PropertyTexture},
		{Name: "_A", Kind: PropertyTexture},
	}}
	m := NewMaterial(s)
	m.SetTexture("_B", &Texture{Name: "b.png"})
	m.SetTexture("_A", &Texture{Name: "a.png"})

	got := m.TextureNames()
	if len(got) != 2 || got[0] != "_A" || got[1] != "_B" {
		t.Errorf("TextureNames() = %v, want [_A _B]", got)
	}
}

func TestParsePropertyKind(t *testing.T) {
	for _, k := range []PropertyKind{PropertyFloat, PropertyRange, PropertyColor, PropertyVector, PropertyTexture, PropertyInt} {
		got, err := ParsePropertyKind(" " + k.String() + " ")
		if err != nil {
			t.Fatalf("ParsePropertyKind(%q) error: %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParsePropertyKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParsePropertyKind("Color"); err != nil {
		t.Errorf("ParsePropertyKind should be case-insensitive: %v", err)
	}
	if _, err := ParsePropertyKind("matrix"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestLookupField(t *testing.T) {
	f, ok := LookupField("m_BrushSizeRange")
	if !ok {
		t.Fatal("m_BrushSizeRange not registered")
	}
	if f.Kind != KindVector2 {
		t.Errorf("Kind = %v, want vector2", f.Kind)
	}

	d := &Descriptor{}
	if err := f.Set(d, Vector2{X: 0.1, Y: 0.5}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if d.BrushSizeRange != (Vector2{X: 0.1, Y: 0.5}) {
		t.Errorf("BrushSizeRange = %+v", d.BrushSizeRange)
	}
	if got := f.Get(d); got != (Vector2{X: 0.1, Y: 0.5}) {
		t.Errorf("Get() = %v", got)
	}

	if err := f.Set(d, []float32{1, 2}); err == nil {
		t.Error("Set() should reject an uncoerced slice")
	}
	if _, ok := LookupField("m_DoesNotExist"); ok {
		t.Error("LookupField should miss unknown names")
	}
}

func TestFieldNames_Sorted(t *testing.T) {
	names := FieldNames()
	if len(names) == 0 {
		t.Fatal("no fields registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Error("FieldNames() is not sorted")
	}
	for _, n := range names {
		if _, ok := LookupField(n); !ok {
			t.Errorf("FieldNames() lists %s but LookupField misses it", n)
		}
	}
}

func TestTextureString(t *testing.T) {
	var nilTex *Texture
	if nilTex.String() != "<none>" {
		t.Errorf("nil texture String() = %q", nilTex.String())
	}
	tex := &Texture{Name: "icon.png", Width: 2, Height: 3, Format: "png"}
	if got := tex.String(); got != "icon.png (2x3 png)" {
		t.Errorf("String() = %q", got)
	}
}
