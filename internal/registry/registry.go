// Package registry holds the base brushes and shaders that user variants are
// resolved against.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"userbrush/internal/brush"
)

var (
	// ErrUnresolvedBase is returned when VariantOf matches no base brush.
	ErrUnresolvedBase = errors.New("base brush not found")
	// ErrDuplicateGUID is returned when a variant reuses a registered GUID.
	ErrDuplicateGUID = errors.New("duplicate brush GUID")
)

// Registry is the set of known brushes. It is read-only while variants are
// resolved; Register is the only mutation and belongs to the caller.
type Registry struct {
	brushes  []*brush.Descriptor
	variants []*brush.Descriptor
	shaders  map[string]*brush.Shader
}

// New creates a registry from shaders and base brushes.
func New(shaders []*brush.Shader, brushes ...*brush.Descriptor) *Registry {
	r := &Registry{shaders: make(map[string]*brush.Shader, len(shaders))}
	for _, s := range shaders {
		r.shaders[s.Name] = s
	}
	r.brushes = append(r.brushes, brushes...)
	return r
}

// Brushes returns the base brushes in registration order.
func (r *Registry) Brushes() []*brush.Descriptor {
	return append([]*brush.Descriptor(nil), r.brushes...)
}

// Variants returns the registered user variants.
func (r *Registry) Variants() []*brush.Descriptor {
	return append([]*brush.Descriptor(nil), r.variants...)
}

// UniqueBrushes returns base brushes followed by variants.
func (r *Registry) UniqueBrushes() []*brush.Descriptor {
	all := make([]*brush.Descriptor, 0, len(r.brushes)+len(r.variants))
	all = append(all, r.brushes...)
	return append(all, r.variants...)
}

// Shader finds a shader by name.
func (r *Registry) Shader(name string) (*brush.Shader, bool) {
	s, ok := r.shaders[name]
	return s, ok
}

// Lookup finds a base brush or variant by GUID.
func (r *Registry) Lookup(guid string) (*brush.Descriptor, bool) {
	for _, d := range r.UniqueBrushes() {
		if SameGUID(d.GUID, guid) {
			return d, true
		}
	}
	return nil, false
}

// Resolve finds the base brush a variant derives from: first by GUID, then
// by description.
func (r *Registry) Resolve(variantOf string) (*brush.Descriptor, error) {
	for _, d := range r.brushes {
		if SameGUID(d.GUID, variantOf) {
			return d, nil
		}
	}
	for _, d := range r.brushes {
		if d.Description == variantOf {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: no brush named %q", ErrUnresolvedBase, variantOf)
}

// CheckUnique fails when guid is already used by a base brush or variant.
func (r *Registry) CheckUnique(guid string) error {
	if d, ok := r.Lookup(guid); ok {
		return fmt.Errorf("%w: %s matches %s", ErrDuplicateGUID, guid, displayName(d))
	}
	return nil
}

// Register adds a loaded variant.
func (r *Registry) Register(variant *brush.Descriptor) error {
	if err := r.CheckUnique(variant.GUID); err != nil {
		return err
	}
	r.variants = append(r.variants, variant)
	return nil
}

// Derive clones base into a new variant with the given GUID and name. The
// clone records its base and never takes part in supersession chains.
func Derive(base *brush.Descriptor, guid, name string) *brush.Descriptor {
	d := base.Clone()
	d.GUID = guid
	d.BaseGUID = base.GUID
	d.Name = name
	d.IsUserVariant = true
	d.Supersedes = ""
	d.SupersededBy = ""
	return d
}

// SameGUID compares GUIDs as strings, treating differently formatted
// spellings of the same UUID as equal.
func SameGUID(a, b string) bool {
	if a == b {
		return true
	}
	ua, errA := uuid.Parse(a)
	ub, errB := uuid.Parse(b)
	return errA == nil && errB == nil && ua == ub
}

func displayName(d *brush.Descriptor) string {
	if strings.TrimSpace(d.Name) != "" {
		return d.Name
	}
	return d.GUID
}
