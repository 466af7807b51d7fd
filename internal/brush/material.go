package brush

import (
	"fmt"
	"sort"
	"strings"
)

// PropertyKind is the declared type of a shader property.
type PropertyKind int

const (
	PropertyFloat PropertyKind = iota
	PropertyRange
	PropertyColor
	PropertyVector
	PropertyTexture
	PropertyInt
)

var propertyKindNames = map[PropertyKind]string{
	PropertyFloat:   "float",
	PropertyRange:   "range",
	PropertyColor:   "color",
	PropertyVector:  "vector",
	PropertyTexture: "texture",
	PropertyInt:     "int",
}

func (k PropertyKind) String() string {
	if s, ok := propertyKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("PropertyKind(%d)", int(k))
}

// ParsePropertyKind converts a catalog type name ("float", "color", ...) to a PropertyKind.
func ParsePropertyKind(s string) (PropertyKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, v := range propertyKindNames {
		if v == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown shader property type %q", s)
}

// ShaderProperty is one property declared by a shader.
type ShaderProperty struct {
	Name string
	Kind PropertyKind
}

// Shader is an immutable list of property declarations. Shaders are shared
// between materials; only materials carry values.
type Shader struct {
	Name       string
	Properties []ShaderProperty
}

// Property looks up a declared property by name.
func (s *Shader) Property(name string) (ShaderProperty, bool) {
	if s == nil {
		return ShaderProperty{}, false
	}
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return ShaderProperty{}, false
}

// Material holds property values for a shader.
type Material struct {
	Name     string
	Shader   *Shader
	floats   map[string]float32
	colors   map[string]Color
	vectors  map[string]Vector4
	textures map[string]*Texture
}

// NewMaterial creates an empty material for shader.
func NewMaterial(shader *Shader) *Material {
	m := &Material{Shader: shader}
	if shader != nil {
		m.Name = shader.Name
	}
	return m
}

// Clone returns a deep copy of m. The shader is shared.
func (m *Material) Clone() *Material {
	if m == nil {
		return nil
	}
	c := &Material{Name: m.Name, Shader: m.Shader}
	if m.floats != nil {
		c.floats = make(map[string]float32, len(m.floats))
		for k, v := range m.floats {
			c.floats[k] = v
		}
	}
	if m.colors != nil {
		c.colors = make(map[string]Color, len(m.colors))
		for k, v := range m.colors {
			c.colors[k] = v
		}
	}
	if m.vectors != nil {
		c.vectors = make(map[string]Vector4, len(m.vectors))
		for k, v := range m.vectors {
			c.vectors[k] = v
		}
	}
	if m.textures != nil {
		c.textures = make(map[string]*Texture, len(m.textures))
		for k, v := range m.textures {
			c.textures[k] = v.Clone()
		}
	}
	return c
}

// HasProperty reports whether the material's shader declares name.
func (m *Material) HasProperty(name string) bool {
	_, ok := m.Shader.Property(name)
	return ok
}

func (m *Material) checkKind(name string, kinds ...PropertyKind) error {
	p, ok := m.Shader.Property(name)
	if !ok {
		return fmt.Errorf("material %s has no property %s", m.Name, name)
	}
	for _, k := range kinds {
		if p.Kind == k {
			return nil
		}
	}
	return fmt.Errorf("property %s of material %s is a %s", name, m.Name, p.Kind)
}

// SetFloat sets a float, range or int property.
func (m *Material) SetFloat(name string, v float32) error {
	if err := m.checkKind(name, PropertyFloat, PropertyRange, PropertyInt); err != nil {
		return err
	}
	if m.floats == nil {
		m.floats = make(map[string]float32)
	}
	m.floats[name] = v
	return nil
}

// SetColor sets a color property.
func (m *Material) SetColor(name string, v Color) error {
	if err := m.checkKind(name, PropertyColor); err != nil {
		return err
	}
	if m.colors == nil {
		m.colors = make(map[string]Color)
	}
	m.colors[name] = v
	return nil
}

// SetVector sets a vector property.
func (m *Material) SetVector(name string, v Vector4) error {
	if err := m.checkKind(name, PropertyVector); err != nil {
		return err
	}
	if m.vectors == nil {
		m.vectors = make(map[string]Vector4)
	}
	m.vectors[name] = v
	return nil
}

// SetTexture sets a texture property.
func (m *Material) SetTexture(name string, t *Texture) error {
	if err := m.checkKind(name, PropertyTexture); err != nil {
		return err
	}
	if m.textures == nil {
		m.textures = make(map[string]*Texture)
	}
	m.textures[name] = t
	return nil
}

// Float returns a float property value; unset properties read as zero.
func (m *Material) Float(name string) float32 { return m.floats[name] }

// Color returns a color property value.
func (m *Material) Color(name string) Color { return m.colors[name] }

// Vector returns a vector property value.
func (m *Material) Vector(name string) Vector4 { return m.vectors[name] }

// Texture returns a texture property value, or nil.
func (m *Material) Texture(name string) *Texture { return m.textures[name] }

// TextureNames returns the names of the texture properties that are set, sorted.
func (m *Material) TextureNames() []string {
	names := make([]string, 0, len(m.textures))
	for k := range m.textures {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
