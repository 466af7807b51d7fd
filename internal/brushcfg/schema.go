package brushcfg

import "fmt"

// Field is one leaf of the configuration schema. MapTo names the descriptor
// field the value overwrites; an empty MapTo marks load-only context that is
// never copied onto a descriptor.
type Field struct {
	Key   string
	MapTo string
	get   func(*Properties) any
	set   func(*Properties, any) bool
}

// Get returns the field's value, or nil when it is absent from p.
// The owning section must be present.
func (f Field) Get(p *Properties) any {
	return f.get(p)
}

// Set stores v in p. v must have the field's serialized Go type: string,
// bool, int, float32 or []float32. The owning section must be present.
func (f Field) Set(p *Properties, v any) error {
	if f.set == nil {
		return fmt.Errorf("field %s is read-only", f.Key)
	}
	if !f.set(p, v) {
		return fmt.Errorf("cannot store %T in field %s", v, f.Key)
	}
	return nil
}

// Section is a group of fields. The root section is the top level of the
// document; its children are the optional subsections.
type Section struct {
	Name     string
	Fields   []Field
	Children []*Section
	present  func(*Properties) bool
	ensure   func(*Properties)
}

// Present reports whether the section exists in p. The root is always present.
func (s *Section) Present(p *Properties) bool {
	if s.present == nil {
		return true
	}
	return s.present(p)
}

// Ensure creates the section in p if it is absent.
func (s *Section) Ensure(p *Properties) {
	if s.ensure != nil {
		s.ensure(p)
	}
}

// Path returns the dotted key for a field of this section.
func (s *Section) Path(f Field) string {
	if s.Name == "" {
		return f.Key
	}
	return s.Name + "." + f.Key
}

func opt[T any](key, mapTo string, at func(*Properties) **T) Field {
	return Field{
		Key:   key,
		MapTo: mapTo,
		get: func(p *Properties) any {
			v := *at(p)
			if v == nil {
				return nil
			}
			return *v
		},
		set: func(p *Properties, v any) bool {
			t, ok := v.(T)
			if ok {
				*at(p) = &t
			}
			return ok
		},
	}
}

func seq(key, mapTo string, at func(*Properties) *[]float32) Field {
	return Field{
		Key:   key,
		MapTo: mapTo,
		get: func(p *Properties) any {
			v := *at(p)
			if v == nil {
				return nil
			}
			return v
		},
		set: func(p *Properties, v any) bool {
			t, ok := v.([]float32)
			if ok {
				*at(p) = append([]float32(nil), t...)
			}
			return ok
		},
	}
}

func str(key, mapTo string, at func(*Properties) *string) Field {
	return Field{
		Key:   key,
		MapTo: mapTo,
		get:   func(p *Properties) any { return *at(p) },
		set: func(p *Properties, v any) bool {
			t, ok := v.(string)
			if ok {
				*at(p) = t
			}
			return ok
		},
	}
}

func loadOnly(key string) Field {
	return Field{Key: key, get: func(*Properties) any { return nil }}
}

func section(name string, present func(*Properties) bool, ensure func(*Properties), fields ...Field) *Section {
	return &Section{Name: name, Fields: fields, present: present, ensure: ensure}
}

var schema = &Section{
	Fields: []Field{
		loadOnly("VariantOf"),
		loadOnly("GUID"),
		loadOnly("Author"),
		str("Name", "m_DurableName", func(p *Properties) *string { return &p.Name }),
		str("Description", "m_Description", func(p *Properties) *string { return &p.Description }),
		opt("ExtraDescription", "m_DescriptionExtra", func(p *Properties) **string { return &p.ExtraDescription }),
		loadOnly("CopyRestrictions"),
		loadOnly("ButtonIcon"),
	},
	Children: []*Section{
		section("Audio",
			func(p *Properties) bool { return p.Audio != nil },
			func(p *Properties) {
				if p.Audio == nil {
					p.Audio = &AudioProperties{}
				}
			},
			loadOnly("AudioClips"),
			opt("MaxPitchShift", "m_BrushAudioMaxPitchShift", func(p *Properties) **float32 { return &p.Audio.MaxPitchShift }),
			opt("MaxVolume", "m_BrushAudioMaxVolume", func(p *Properties) **float32 { return &p.Audio.MaxVolume }),
			opt("VolumeUpSpeed", "m_BrushVolumeUpSpeed", func(p *Properties) **float32 { return &p.Audio.VolumeUpSpeed }),
			opt("VolumeDownSpeed", "m_BrushVolumeDownSpeed", func(p *Properties) **float32 { return &p.Audio.VolumeDownSpeed }),
			opt("VolumeVelocityRangeMultiplier", "m_VolumeVelocityRangeMultiplier", func(p *Properties) **float32 { return &p.Audio.VolumeVelocityRangeMultiplier }),
			opt("IsAudioReactive", "m_AudioReactive", func(p *Properties) **bool { return &p.Audio.IsAudioReactive }),
			loadOnly("ButtonAudio"),
		),
		section("Material",
			func(p *Properties) bool { return p.Material != nil },
			func(p *Properties) {
				if p.Material == nil {
					p.Material = &MaterialProperties{}
				}
			},
			loadOnly("Shader"),
			loadOnly("FloatProperties"),
			loadOnly("ColorProperties"),
			loadOnly("VectorProperties"),
			loadOnly("TextureProperties"),
			opt("TextureAtlasV", "m_TextureAtlasV", func(p *Properties) **int { return &p.Material.TextureAtlasV }),
			opt("TileRate", "m_TileRate", func(p *Properties) **float32 { return &p.Material.TileRate }),
			opt("UseBloomSwatchOnColorPicker", "m_UseBloomSwatchOnColorPicker", func(p *Properties) **bool { return &p.Material.UseBloomSwatchOnColorPicker }),
		),
		section("Size",
			func(p *Properties) bool { return p.Size != nil },
			func(p *Properties) {
				if p.Size == nil {
					p.Size = &SizeProperties{}
				}
			},
			seq("BrushSizeRange", "m_BrushSizeRange", func(p *Properties) *[]float32 { return &p.Size.BrushSizeRange }),
			seq("PressureSizeRange", "m_PressureSizeRange", func(p *Properties) *[]float32 { return &p.Size.PressureSizeRange }),
			opt("SizeVariance", "m_SizeVariance", func(p *Properties) **float32 { return &p.Size.SizeVariance }),
			opt("PreviewPressureSizeMin", "m_PreviewPressureSizeMin", func(p *Properties) **float32 { return &p.Size.PreviewPressureSizeMin }),
		),
		section("Color",
			func(p *Properties) bool { return p.Color != nil },
			func(p *Properties) {
				if p.Color == nil {
					p.Color = &ColorProperties{}
				}
			},
			opt("Opacity", "m_Opacity", func(p *Properties) **float32 { return &p.Color.Opacity }),
			seq("PressureOpacityRange", "m_PressureOpacityRange", func(p *Properties) *[]float32 { return &p.Color.PressureOpacityRange }),
			opt("LuminanceMin", "m_ColorLuminanceMin", func(p *Properties) **float32 { return &p.Color.LuminanceMin }),
			opt("SaturationMax", "m_ColorSaturationMax", func(p *Properties) **float32 { return &p.Color.SaturationMax }),
		),
		section("Particle",
			func(p *Properties) bool { return p.Particle != nil },
			func(p *Properties) {
				if p.Particle == nil {
					p.Particle = &ParticleProperties{}
				}
			},
			opt("Speed", "m_ParticleSpeed", func(p *Properties) **float32 { return &p.Particle.Speed }),
			opt("Rate", "m_ParticleRate", func(p *Properties) **float32 { return &p.Particle.Rate }),
			opt("InitialRotationRange", "m_ParticleInitialRotationRange", func(p *Properties) **float32 { return &p.Particle.InitialRotationRange }),
			opt("RandomizeAlpha", "m_RandomizeAlpha", func(p *Properties) **bool { return &p.Particle.RandomizeAlpha }),
		),
		section("QuadBatch",
			func(p *Properties) bool { return p.QuadBatch != nil },
			func(p *Properties) {
				if p.QuadBatch == nil {
					p.QuadBatch = &QuadBatchProperties{}
				}
			},
			opt("SprayRateMultiplier", "m_SprayRateMultiplier", func(p *Properties) **float32 { return &p.QuadBatch.SprayRateMultiplier }),
			opt("RotationVariance", "m_RotationVariance", func(p *Properties) **float32 { return &p.QuadBatch.RotationVariance }),
			opt("PositionVariance", "m_PositionVariance", func(p *Properties) **float32 { return &p.QuadBatch.PositionVariance }),
			seq("SizeRatio", "m_SizeRatio", func(p *Properties) *[]float32 { return &p.QuadBatch.SizeRatio }),
		),
		section("Tube",
			func(p *Properties) bool { return p.Tube != nil },
			func(p *Properties) {
				if p.Tube == nil {
					p.Tube = &TubeProperties{}
				}
			},
			opt("MinLength", "m_SolidMinLengthMeters_PS", func(p *Properties) **float32 { return &p.Tube.MinLength }),
			opt("StoreRadiusInTexCoord", "m_TubeStoreRadiusInTexcoord0Z", func(p *Properties) **bool { return &p.Tube.StoreRadiusInTexCoord }),
		),
		section("Misc",
			func(p *Properties) bool { return p.Misc != nil },
			func(p *Properties) {
				if p.Misc == nil {
					p.Misc = &MiscProperties{}
				}
			},
			opt("RenderBackFaces", "m_RenderBackfaces", func(p *Properties) **bool { return &p.Misc.RenderBackFaces }),
			opt("BackIsInvisible", "m_BackIsInvisible", func(p *Properties) **bool { return &p.Misc.BackIsInvisible }),
			opt("BackfaceHueShift", "m_BackfaceHueShift", func(p *Properties) **float32 { return &p.Misc.BackfaceHueShift }),
			opt("BoundsPadding", "m_BoundsPadding", func(p *Properties) **float32 { return &p.Misc.BoundsPadding }),
			opt("PlaybackAtStrokeGranularity", "m_PlayBackAtStrokeGranularity", func(p *Properties) **bool { return &p.Misc.PlaybackAtStrokeGranularity }),
		),
		section("Export",
			func(p *Properties) bool { return p.Export != nil },
			func(p *Properties) {
				if p.Export == nil {
					p.Export = &ExportProperties{}
				}
			},
			opt("EmissiveFactor", "m_EmissiveFactor", func(p *Properties) **float32 { return &p.Export.EmissiveFactor }),
			opt("AllowExport", "m_AllowExport", func(p *Properties) **bool { return &p.Export.AllowExport }),
		),
		section("Simplification",
			func(p *Properties) bool { return p.Simplification != nil },
			func(p *Properties) {
				if p.Simplification == nil {
					p.Simplification = &SimplificationProperties{}
				}
			},
			opt("SupportsSimplification", "m_SupportsSimplification", func(p *Properties) **bool { return &p.Simplification.SupportsSimplification }),
			opt("HeadMinPoints", "m_HeadMinPoints", func(p *Properties) **int { return &p.Simplification.HeadMinPoints }),
			opt("HeadPointStep", "m_HeadPointStep", func(p *Properties) **int { return &p.Simplification.HeadPointStep }),
			opt("TailMinPoints", "m_TailMinPoints", func(p *Properties) **int { return &p.Simplification.TailMinPoints }),
			opt("TailPointStep", "m_TailPointStep", func(p *Properties) **int { return &p.Simplification.TailPointStep }),
			opt("MiddlePointStep", "m_MiddlePointStep", func(p *Properties) **int { return &p.Simplification.MiddlePointStep }),
		),
	},
}

// Schema returns the root section of the Brush.cfg schema. The returned
// tree is shared and must not be modified.
func Schema() *Section {
	return schema
}
