package variant

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"userbrush/internal/brush"
	"userbrush/internal/brushcfg"
	"userbrush/internal/mapping"
	"userbrush/internal/registry"
)

// Authoring defaults written into exported properties.
const (
	ExportIcon   = "blank.png"
	ExportAuthor = "Open Brush"
)

// ExportDescriptor builds an editable configuration from d, including every
// property its material's shader declares.
func ExportDescriptor(d *brush.Descriptor) (*brushcfg.Properties, []string) {
	props := &brushcfg.Properties{
		VariantOf:        "",
		GUID:             d.GUID,
		ButtonIcon:       ExportIcon,
		Author:           ExportAuthor,
		CopyRestrictions: brushcfg.EmbedAndShare,
	}

	warnings := mapping.Extract(d, props)
	warnings = append(warnings, exportMaterial(d, props)...)
	return props, warnings
}

func exportMaterial(d *brush.Descriptor, props *brushcfg.Properties) []string {
	m := d.Material
	if m == nil || m.Shader == nil {
		return []string{fmt.Sprintf("brush %s has no material to export", d.Name)}
	}
	if props.Material == nil {
		props.Material = &brushcfg.MaterialProperties{}
	}

	mp := props.Material
	shaderName := m.Shader.Name
	mp.Shader = &shaderName
	mp.FloatProperties = map[string]float32{}
	mp.ColorProperties = map[string][]float32{}
	mp.VectorProperties = map[string][]float32{}
	mp.TextureProperties = map[string]string{}

	var warnings []string
	for _, p := range m.Shader.Properties {
		switch p.Kind {
		case brush.PropertyFloat, brush.PropertyRange:
			mp.FloatProperties[p.Name] = m.Float(p.Name)
		case brush.PropertyColor:
			c := m.Color(p.Name)
			mp.ColorProperties[p.Name] = []float32{c.R, c.G, c.B, c.A}
		case brush.PropertyVector:
			v := m.Vector(p.Name)
			mp.VectorProperties[p.Name] = []float32{v.X, v.Y, v.Z, v.W}
		case brush.PropertyTexture:
			mp.TextureProperties[p.Name] = ""
		default:
			warnings = append(warnings, fmt.Sprintf(
				"shader %s from material %s has property %s of unsupported type %s",
				m.Shader.Name, m.Name, p.Name, p.Kind))
		}
	}
	return warnings
}

// WriteExport exports d to filename.
func WriteExport(d *brush.Descriptor, filename string) ([]string, error) {
	props, warnings := ExportDescriptor(d)
	data, err := props.Marshal()
	if err != nil {
		return warnings, err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return warnings, fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return warnings, nil
}

// ExportAll writes <name>.txt into destDir for every base brush in reg and
// returns how many were exported.
func ExportAll(reg *registry.Registry, destDir string) (int, []string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	var warnings []string
	count := 0
	for _, d := range reg.Brushes() {
		w, err := WriteExport(d, filepath.Join(destDir, d.Name+".txt"))
		warnings = append(warnings, w...)
		if err != nil {
			return count, warnings, err
		}
		count++
	}
	return count, warnings, nil
}

// NewVariantConfig starts a new variant of the brush exported as base. It
// gets a fresh GUID and keeps the base values for reference.
func NewVariantConfig(base *brushcfg.Properties, name string) *brushcfg.Properties {
	p := base.Clone()
	p.VariantOf = base.GUID
	p.GUID = uuid.NewString()
	p.Name = name
	p.Description = name
	p.Author = ""
	p.ButtonIcon = ""
	comments := ""
	p.Comments = &comments
	p.OriginalBaseBrushValues = base.Clone()
	return p
}
