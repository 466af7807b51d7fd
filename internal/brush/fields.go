package brush

import (
	"fmt"
	"sort"
)

// Kind is the declared value type of a descriptor field.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindVector2
	KindVector4
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindVector2:
		return "vector2"
	case KindVector4:
		return "vector4"
	case KindColor:
		return "color"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field is a named, typed accessor for one descriptor field. Field names
// follow the serialized descriptor naming (m_TileRate, m_BrushSizeRange, ...)
// so that mapping declarations and catalogs can refer to them by string.
type Field struct {
	Name string
	Kind Kind
	get  func(*Descriptor) any
	set  func(*Descriptor, any) bool
}

// Get returns the field's current value on d.
func (f Field) Get(d *Descriptor) any {
	return f.get(d)
}

// Set assigns v to the field on d. v must already have the field's Go type
// (string, bool, int, float32, Vector2, Vector4 or Color).
func (f Field) Set(d *Descriptor, v any) error {
	if !f.set(d, v) {
		return fmt.Errorf("cannot assign %T to %s field %s", v, f.Kind, f.Name)
	}
	return nil
}

func field[T any](name string, kind Kind, at func(*Descriptor) *T) Field {
	return Field{
		Name: name,
		Kind: kind,
		get:  func(d *Descriptor) any { return *at(d) },
		set: func(d *Descriptor, v any) bool {
			t, ok := v.(T)
			if ok {
				*at(d) = t
			}
			return ok
		},
	}
}

var descriptorFields = []Field{
	field("m_DurableName", KindString, func(d *Descriptor) *string { return &d.DurableName }),
	field("m_Description", KindString, func(d *Descriptor) *string { return &d.Description }),
	field("m_DescriptionExtra", KindString, func(d *Descriptor) *string { return &d.DescriptionExtra }),

	field("m_BrushAudioMaxPitchShift", KindFloat, func(d *Descriptor) *float32 { return &d.AudioMaxPitchShift }),
	field("m_BrushAudioMaxVolume", KindFloat, func(d *Descriptor) *float32 { return &d.AudioMaxVolume }),
	field("m_BrushVolumeUpSpeed", KindFloat, func(d *Descriptor) *float32 { return &d.VolumeUpSpeed }),
	field("m_BrushVolumeDownSpeed", KindFloat, func(d *Descriptor) *float32 { return &d.VolumeDownSpeed }),
	field("m_VolumeVelocityRangeMultiplier", KindFloat, func(d *Descriptor) *float32 { return &d.VolumeVelocityRangeMultiplier }),
	field("m_AudioReactive", KindBool, func(d *Descriptor) *bool { return &d.AudioReactive }),

	field("m_TextureAtlasV", KindInt, func(d *Descriptor) *int { return &d.TextureAtlasV }),
	field("m_TileRate", KindFloat, func(d *Descriptor) *float32 { return &d.TileRate }),
	field("m_UseBloomSwatchOnColorPicker", KindBool, func(d *Descriptor) *bool { return &d.UseBloomSwatchOnColorPicker }),

	field("m_BrushSizeRange", KindVector2, func(d *Descriptor) *Vector2 { return &d.BrushSizeRange }),
	field("m_PressureSizeRange", KindVector2, func(d *Descriptor) *Vector2 { return &d.PressureSizeRange }),
	field("m_SizeVariance", KindFloat, func(d *Descriptor) *float32 { return &d.SizeVariance }),
	field("m_PreviewPressureSizeMin", KindFloat, func(d *Descriptor) *float32 { return &d.PreviewPressureSizeMin }),

	field("m_Opacity", KindFloat, func(d *Descriptor) *float32 { return &d.Opacity }),
	field("m_PressureOpacityRange", KindVector2, func(d *Descriptor) *Vector2 { return &d.PressureOpacityRange }),
	field("m_ColorLuminanceMin", KindFloat, func(d *Descriptor) *float32 { return &d.ColorLuminanceMin }),
	field("m_ColorSaturationMax", KindFloat, func(d *Descriptor) *float32 { return &d.ColorSaturationMax }),

	field("m_ParticleSpeed", KindFloat, func(d *Descriptor) *float32 { return &d.ParticleSpeed }),
	field("m_ParticleRate", KindFloat, func(d *Descriptor) *float32 { return &d.ParticleRate }),
	field("m_ParticleInitialRotationRange", KindFloat, func(d *Descriptor) *float32 { return &d.ParticleInitialRotationRange }),
	field("m_RandomizeAlpha", KindBool, func(d *Descriptor) *bool { return &d.RandomizeAlpha }),

	field("m_SprayRateMultiplier", KindFloat, func(d *Descriptor) *float32 { return &d.SprayRateMultiplier }),
	field("m_RotationVariance", KindFloat, func(d *Descriptor) *float32 { return &d.RotationVariance }),
	field("m_PositionVariance", KindFloat, func(d *Descriptor) *float32 { return &d.PositionVariance }),
	field("m_SizeRatio", KindVector2, func(d *Descriptor) *Vector2 { return &d.SizeRatio }),

	field("m_SolidMinLengthMeters_PS", KindFloat, func(d *Descriptor) *float32 { return &d.SolidMinLengthMeters }),
	field("m_TubeStoreRadiusInTexcoord0Z", KindBool, func(d *Descriptor) *bool { return &d.TubeStoreRadiusInTexcoord0Z }),

	field("m_RenderBackfaces", KindBool, func(d *Descriptor) *bool { return &d.RenderBackfaces }),
	field("m_BackIsInvisible", KindBool, func(d *Descriptor) *bool { return &d.BackIsInvisible }),
	field("m_BackfaceHueShift", KindFloat, func(d *Descriptor) *float32 { return &d.BackfaceHueShift }),
	field("m_BoundsPadding", KindFloat, func(d *Descriptor) *float32 { return &d.BoundsPadding }),
	field("m_PlayBackAtStrokeGranularity", KindBool, func(d *Descriptor) *bool { return &d.PlayBackAtStrokeGranularity }),

	field("m_EmissiveFactor", KindFloat, func(d *Descriptor) *float32 { return &d.EmissiveFactor }),
	field("m_AllowExport", KindBool, func(d *Descriptor) *bool { return &d.AllowExport }),

	field("m_SupportsSimplification", KindBool, func(d *Descriptor) *bool { return &d.SupportsSimplification }),
	field("m_HeadMinPoints", KindInt, func(d *Descriptor) *int { return &d.HeadMinPoints }),
	field("m_HeadPointStep", KindInt, func(d *Descriptor) *int { return &d.HeadPointStep }),
	field("m_TailMinPoints", KindInt, func(d *Descriptor) *int { return &d.TailMinPoints }),
	field("m_TailPointStep", KindInt, func(d *Descriptor) *int { return &d.TailPointStep }),
	field("m_MiddlePointStep", KindInt, func(d *Descriptor) *int { return &d.MiddlePointStep }),
}

var fieldIndex = func() map[string]Field {
	idx := make(map[string]Field, len(descriptorFields))
	for _, f := range descriptorFields {
		idx[f.Name] = f
	}
	return idx
}()

// LookupField returns the descriptor field with the given serialized name.
func LookupField(name string) (Field, bool) {
	f, ok := fieldIndex[name]
	return f, ok
}

// FieldNames returns every known descriptor field name, sorted.
func FieldNames() []string {
	names := make([]string, 0, len(fieldIndex))
	for name := range fieldIndex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
