package mapping

import (
	"fmt"
	"math"

	"userbrush/internal/brush"
)

// Coerce converts a configuration or catalog value to the Go type of a
// descriptor field of the given kind. Numeric sequences become Vector2
// (two elements) or Color/Vector4 (four elements) in sequence order.
func Coerce(kind brush.Kind, v any) (any, error) {
	switch kind {
	case brush.KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case brush.KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case brush.KindInt:
		if n, ok := toInt(v); ok {
			return n, nil
		}
	case brush.KindFloat:
		if f, ok := toFloat(v); ok {
			return f, nil
		}
	case brush.KindVector2:
		fs, err := toFloats(v, 2)
		if err != nil {
			return nil, err
		}
		return brush.Vector2{X: fs[0], Y: fs[1]}, nil
	case brush.KindVector4:
		fs, err := toFloats(v, 4)
		if err != nil {
			return nil, err
		}
		return brush.Vector4{X: fs[0], Y: fs[1], Z: fs[2], W: fs[3]}, nil
	case brush.KindColor:
		fs, err := toFloats(v, 4)
		if err != nil {
			return nil, err
		}
		return brush.Color{R: fs[0], G: fs[1], B: fs[2], A: fs[3]}, nil
	}
	return nil, fmt.Errorf("cannot use %T as %s", v, kind)
}

// Serialize converts a descriptor value to its configuration shape.
func Serialize(v any) any {
	switch t := v.(type) {
	case brush.Vector2:
		return []float32{t.X, t.Y}
	case brush.Vector4:
		return []float32{t.X, t.Y, t.Z, t.W}
	case brush.Color:
		return []float32{t.R, t.G, t.B, t.A}
	}
	return v
}

func toFloat(v any) (float32, bool) {
	switch n := v.(type) {
	case float32:
		return n, true
	case float64:
		return float32(n), true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

func toFloats(v any, n int) ([]float32, error) {
	var out []float32
	switch s := v.(type) {
	case []float32:
		out = s
	case []float64:
		for _, f := range s {
			out = append(out, float32(f))
		}
	case []any:
		for _, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, fmt.Errorf("sequence element %v is not a number", e)
			}
			out = append(out, f)
		}
	default:
		return nil, fmt.Errorf("expected a sequence of %d numbers, got %T", n, v)
	}
	if len(out) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(out))
	}
	return out, nil
}
