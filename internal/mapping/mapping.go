// Package mapping copies Brush.cfg values onto brush descriptors and back,
// driven by the field declarations in the brushcfg schema.
package mapping

import (
	"fmt"

	"userbrush/internal/brush"
	"userbrush/internal/brushcfg"
)

// Binding is one resolved direct mapping from a configuration key to a
// descriptor field.
type Binding struct {
	Path   string // dotted configuration key, e.g. "Size.BrushSizeRange"
	Target brush.Field
}

// Table returns every direct mapping in schema order, plus a warning for
// each declaration whose target field does not exist.
func Table() ([]Binding, []string) {
	var bindings []Binding
	var warnings []string
	walk(brushcfg.Schema(), func(s *brushcfg.Section, f brushcfg.Field) {
		target, ok := brush.LookupField(f.MapTo)
		if !ok {
			warnings = append(warnings, unmappedWarning(f.MapTo))
			return
		}
		bindings = append(bindings, Binding{Path: s.Path(f), Target: target})
	})
	return bindings, warnings
}

func walk(s *brushcfg.Section, fn func(*brushcfg.Section, brushcfg.Field)) {
	for _, f := range s.Fields {
		if f.MapTo != "" {
			fn(s, f)
		}
	}
	for _, child := range s.Children {
		walk(child, fn)
	}
}

func unmappedWarning(name string) string {
	return fmt.Sprintf("tried to set a value %s on the brush descriptor, but it doesn't exist", name)
}

// Apply overwrites descriptor fields with every value present in props.
// Absent values and absent subsections leave the descriptor untouched.
// Problems with individual fields are returned as warnings.
func Apply(props *brushcfg.Properties, d *brush.Descriptor) []string {
	var warnings []string
	applySection(brushcfg.Schema(), props, d, &warnings)
	return warnings
}

func applySection(s *brushcfg.Section, props *brushcfg.Properties, d *brush.Descriptor, warnings *[]string) {
	for _, f := range s.Fields {
		v := f.Get(props)
		if v == nil || f.MapTo == "" {
			continue
		}
		target, ok := brush.LookupField(f.MapTo)
		if !ok {
			*warnings = append(*warnings, unmappedWarning(f.MapTo))
			continue
		}
		value, err := Coerce(target.Kind, v)
		if err != nil {
			*warnings = append(*warnings, fmt.Sprintf("%s: %v", s.Path(f), err))
			continue
		}
		if err := target.Set(d, value); err != nil {
			*warnings = append(*warnings, fmt.Sprintf("%s: %v", s.Path(f), err))
		}
	}
	for _, child := range s.Children {
		if child.Present(props) {
			applySection(child, props, d, warnings)
		}
	}
}

// Extract writes every directly mapped descriptor field into props,
// creating subsections as needed. It is the inverse of Apply.
func Extract(d *brush.Descriptor, props *brushcfg.Properties) []string {
	var warnings []string
	extractSection(brushcfg.Schema(), d, props, &warnings)
	return warnings
}

func extractSection(s *brushcfg.Section, d *brush.Descriptor, props *brushcfg.Properties, warnings *[]string) {
	for _, f := range s.Fields {
		if f.MapTo == "" {
			continue
		}
		target, ok := brush.LookupField(f.MapTo)
		if !ok {
			*warnings = append(*warnings, unmappedWarning(f.MapTo))
			continue
		}
		if err := f.Set(props, Serialize(target.Get(d))); err != nil {
			*warnings = append(*warnings, fmt.Sprintf("%s: %v", s.Path(f), err))
		}
	}
	for _, child := range s.Children {
		child.Ensure(props)
		extractSection(child, d, props, warnings)
	}
}
