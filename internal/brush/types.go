// Package brush holds the runtime brush descriptor that variant bundles are
// mapped onto, together with its material and shader model.
package brush

import "fmt"

// Vector2 is a 2D vector, used for ranges such as size and opacity.
type Vector2 struct {
	X, Y float32
}

// Vector4 is a 4D vector shader value.
type Vector4 struct {
	X, Y, Z, W float32
}

// Color is an RGBA color with float components.
type Color struct {
	R, G, B, A float32
}

// Texture is a decoded image asset. Only its metadata is kept; the raw bytes
// live in the owning variant's asset cache.
type Texture struct {
	Name   string // path inside the bundle
	Width  int
	Height int
	Format string // decoder name, e.g. "png"
}

func (t *Texture) String() string {
	if t == nil {
		return "<none>"
	}
	if t.Width == 0 && t.Height == 0 {
		return t.Name
	}
	return fmt.Sprintf("%s (%dx%d %s)", t.Name, t.Width, t.Height, t.Format)
}

// Clone returns a copy of t, or nil.
func (t *Texture) Clone() *Texture {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
