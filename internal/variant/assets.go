package variant

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sort"

	"userbrush/internal/brush"
	"userbrush/internal/brushcfg"
	"userbrush/internal/container"
	"userbrush/internal/registry"
)

// loadTexture reads and decodes an image from the bundle. The raw bytes are
// kept for repackaging once they decode, keyed by the cleaned path so that
// two spellings of one file are stored once.
func (b *Brush) loadTexture(c container.Container, ref string) (*brush.Texture, error) {
	rel, err := container.CleanPath(ref)
	if err != nil {
		return nil, err
	}
	if !c.Exists(rel) {
		return nil, fmt.Errorf("%s: %w", rel, container.ErrNotFound)
	}
	data, err := container.ReadFile(c, rel)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", rel, err)
	}
	b.files[rel] = data

	bounds := img.Bounds()
	return &brush.Texture{
		Name:   rel,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}, nil
}

// applyMaterial switches shader if asked and applies the per-property
// tables. Every problem is recorded as a warning.
func (b *Brush) applyMaterial(c container.Container, reg *registry.Registry, props *brushcfg.MaterialProperties) {
	if props == nil {
		return
	}
	desc := b.Descriptor

	if props.Shader != nil {
		if shader, ok := reg.Shader(*props.Shader); ok {
			desc.Material = brush.NewMaterial(shader)
		} else {
			b.warn("cannot find shader %s", *props.Shader)
		}
	}
	if desc.Material == nil {
		if hasMaterialTables(props) {
			b.warn("brush has no material; material properties ignored")
		}
		return
	}
	mat := desc.Material

	for _, name := range sortedKeys(props.FloatProperties) {
		if !mat.HasProperty(name) {
			b.warn("material does not have property %s", name)
			continue
		}
		if err := mat.SetFloat(name, props.FloatProperties[name]); err != nil {
			b.warn("%v", err)
		}
	}

	for _, name := range sortedKeys(props.ColorProperties) {
		if !mat.HasProperty(name) {
			b.warn("material does not have property %s", name)
			continue
		}
		v := props.ColorProperties[name]
		if len(v) != 4 {
			b.warn("color value %s in material does not have four values", name)
			continue
		}
		if err := mat.SetColor(name, brush.Color{R: v[0], G: v[1], B: v[2], A: v[3]}); err != nil {
			b.warn("%v", err)
		}
	}

	for _, name := range sortedKeys(props.VectorProperties) {
		if !mat.HasProperty(name) {
			b.warn("material does not have property %s", name)
			continue
		}
		v := props.VectorProperties[name]
		if len(v) != 4 {
			b.warn("vector value %s in material does not have four values", name)
			continue
		}
		if err := mat.SetVector(name, brush.Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}); err != nil {
			b.warn("%v", err)
		}
	}

	for _, name := range sortedKeys(props.TextureProperties) {
		if !mat.HasProperty(name) {
			b.warn("material does not have property %s", name)
			continue
		}
		file := props.TextureProperties[name]
		if file == "" {
			continue // placeholder written by export
		}
		tex, err := b.loadTexture(c, file)
		if err != nil {
			b.warn("couldn't load texture %s for material property %s: %v", file, name, err)
			continue
		}
		if err := mat.SetTexture(name, tex); err != nil {
			b.warn("%v", err)
		}
	}
}

func hasMaterialTables(p *brushcfg.MaterialProperties) bool {
	return len(p.FloatProperties)+len(p.ColorProperties)+len(p.VectorProperties)+len(p.TextureProperties) > 0
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
