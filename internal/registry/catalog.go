package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"userbrush/internal/brush"
	"userbrush/internal/mapping"
)

// Catalog is the on-disk description of the base brushes and shaders a
// registry is built from. It is stored as YAML or TOML.
type Catalog struct {
	Shaders []ShaderEntry `yaml:"shaders" toml:"shaders"`
	Brushes []BrushEntry  `yaml:"brushes" toml:"brushes"`
}

// ShaderEntry declares a shader and its properties.
type ShaderEntry struct {
	Name       string          `yaml:"name" toml:"name"`
	Properties []PropertyEntry `yaml:"properties,omitempty" toml:"properties,omitempty"`
}

// PropertyEntry declares one shader property; Type is float, range, color,
// vector, texture or int.
type PropertyEntry struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
}

// BrushEntry is one base brush. Fields holds descriptor values keyed by
// descriptor field name (m_TileRate, m_BrushSizeRange, ...).
type BrushEntry struct {
	GUID             string         `yaml:"guid" toml:"guid"`
	Name             string         `yaml:"name" toml:"name"`
	DurableName      string         `yaml:"durable_name,omitempty" toml:"durable_name,omitempty"`
	Description      string         `yaml:"description" toml:"description"`
	DescriptionExtra string         `yaml:"description_extra,omitempty" toml:"description_extra,omitempty"`
	Supersedes       string         `yaml:"supersedes,omitempty" toml:"supersedes,omitempty"`
	SupersededBy     string         `yaml:"superseded_by,omitempty" toml:"superseded_by,omitempty"`
	ButtonIcon       string         `yaml:"button_icon,omitempty" toml:"button_icon,omitempty"`
	Fields           map[string]any `yaml:"fields,omitempty" toml:"fields,omitempty"`
	Material         *MaterialEntry `yaml:"material,omitempty" toml:"material,omitempty"`
}

// MaterialEntry sets a base brush's material.
type MaterialEntry struct {
	Name     string               `yaml:"name,omitempty" toml:"name,omitempty"`
	Shader   string               `yaml:"shader" toml:"shader"`
	Floats   map[string]float64   `yaml:"floats,omitempty" toml:"floats,omitempty"`
	Colors   map[string][]float64 `yaml:"colors,omitempty" toml:"colors,omitempty"`
	Vectors  map[string][]float64 `yaml:"vectors,omitempty" toml:"vectors,omitempty"`
	Textures map[string]string    `yaml:"textures,omitempty" toml:"textures,omitempty"`
}

// LoadCatalog reads a catalog file; the format follows the extension
// (.yaml, .yml or .toml).
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	cat, err := ParseCatalog(data, catalogFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

func catalogFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// ParseCatalog decodes a catalog in the given format ("yaml" or "toml").
func ParseCatalog(data []byte, format string) (*Catalog, error) {
	var cat Catalog
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	case "yaml", "":
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	for _, b := range cat.Brushes {
		if strings.TrimSpace(b.GUID) == "" {
			return nil, fmt.Errorf("catalog has brush '%s' with empty guid", b.Name)
		}
	}
	return &cat, nil
}

// Save writes the catalog, choosing the format from the extension.
func (c *Catalog) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	var data []byte
	var err error
	if catalogFormat(path) == "toml" {
		data, err = toml.Marshal(c)
	} else {
		data, err = yaml.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// Build turns the catalog into a Registry.
func (c *Catalog) Build() (*Registry, error) {
	shaders := make([]*brush.Shader, 0, len(c.Shaders))
	byName := make(map[string]*brush.Shader, len(c.Shaders))
	for _, se := range c.Shaders {
		s := &brush.Shader{Name: se.Name}
		for _, pe := range se.Properties {
			kind, err := brush.ParsePropertyKind(pe.Type)
			if err != nil {
				return nil, fmt.Errorf("shader %s: %w", se.Name, err)
			}
			s.Properties = append(s.Properties, brush.ShaderProperty{Name: pe.Name, Kind: kind})
		}
		shaders = append(shaders, s)
		byName[s.Name] = s
	}

	seen := make(map[string]bool, len(c.Brushes))
	brushes := make([]*brush.Descriptor, 0, len(c.Brushes))
	for _, be := range c.Brushes {
		if seen[be.GUID] {
			return nil, fmt.Errorf("%w: %s appears twice in catalog", ErrDuplicateGUID, be.GUID)
		}
		seen[be.GUID] = true

		d, err := be.descriptor(byName)
		if err != nil {
			return nil, fmt.Errorf("brush %s: %w", be.Name, err)
		}
		brushes = append(brushes, d)
	}

	return New(shaders, brushes...), nil
}

func (be BrushEntry) descriptor(shaders map[string]*brush.Shader) (*brush.Descriptor, error) {
	d := &brush.Descriptor{
		GUID:             be.GUID,
		Name:             be.Name,
		DurableName:      be.DurableName,
		Description:      be.Description,
		DescriptionExtra: be.DescriptionExtra,
		Supersedes:       be.Supersedes,
		SupersededBy:     be.SupersededBy,
	}
	if d.DurableName == "" {
		d.DurableName = be.Name
	}
	if be.ButtonIcon != "" {
		d.ButtonTexture = &brush.Texture{Name: be.ButtonIcon}
	}

	names := make([]string, 0, len(be.Fields))
	for name := range be.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, ok := brush.LookupField(name)
		if !ok {
			return nil, fmt.Errorf("unknown descriptor field %s", name)
		}
		v, err := mapping.Coerce(f.Kind, be.Fields[name])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		if err := f.Set(d, v); err != nil {
			return nil, err
		}
	}

	if be.Material != nil {
		m, err := be.Material.material(shaders)
		if err != nil {
			return nil, err
		}
		d.Material = m
	}
	return d, nil
}

func (me *MaterialEntry) material(shaders map[string]*brush.Shader) (*brush.Material, error) {
	s, ok := shaders[me.Shader]
	if !ok {
		return nil, fmt.Errorf("unknown shader %q", me.Shader)
	}
	m := brush.NewMaterial(s)
	if me.Name != "" {
		m.Name = me.Name
	}
	for name, v := range me.Floats {
		if err := m.SetFloat(name, float32(v)); err != nil {
			return nil, err
		}
	}
	for name, v := range me.Colors {
		c, err := mapping.Coerce(brush.KindColor, v)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", name, err)
		}
		if err := m.SetColor(name, c.(brush.Color)); err != nil {
			return nil, err
		}
	}
	for name, v := range me.Vectors {
		vec, err := mapping.Coerce(brush.KindVector4, v)
		if err != nil {
			return nil, fmt.Errorf("vector %s: %w", name, err)
		}
		if err := m.SetVector(name, vec.(brush.Vector4)); err != nil {
			return nil, err
		}
	}
	for name, tex := range me.Textures {
		if err := m.SetTexture(name, &brush.Texture{Name: tex}); err != nil {
			return nil, err
		}
	}
	return m, nil
}
