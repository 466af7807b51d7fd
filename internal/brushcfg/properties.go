// Package brushcfg defines the Brush.cfg document that describes a user
// brush variant, and parses and serializes it.
package brushcfg

import (
	"encoding/json"
	"fmt"
)

// CopyRestrictions controls whether a variant may be embedded in sketches
// and shown to people who open them.
type CopyRestrictions int

const (
	EmbedAndShare CopyRestrictions = iota
	EmbedAndDoNotShare
	DoNotEmbed
)

var copyRestrictionNames = []string{"EmbedAndShare", "EmbedAndDoNotShare", "DoNotEmbed"}

func (c CopyRestrictions) String() string {
	if int(c) >= 0 && int(c) < len(copyRestrictionNames) {
		return copyRestrictionNames[c]
	}
	return fmt.Sprintf("CopyRestrictions(%d)", int(c))
}

// MarshalJSON writes the restriction as its name.
func (c CopyRestrictions) MarshalJSON() ([]byte, error) {
	if int(c) < 0 || int(c) >= len(copyRestrictionNames) {
		return nil, fmt.Errorf("invalid copy restriction %d", int(c))
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts the restriction name or its ordinal.
func (c *CopyRestrictions) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		for i, n := range copyRestrictionNames {
			if n == name {
				*c = CopyRestrictions(i)
				return nil
			}
		}
		return fmt.Errorf("unknown CopyRestrictions value %q", name)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("CopyRestrictions must be a string")
	}
	if n < 0 || n >= len(copyRestrictionNames) {
		return fmt.Errorf("CopyRestrictions value %d out of range", n)
	}
	*c = CopyRestrictions(n)
	return nil
}

// Properties is the top level of Brush.cfg. Pointer and slice fields are
// optional: nil means "keep the base brush's value".
type Properties struct {
	VariantOf        string           `json:"VariantOf"`
	GUID             string           `json:"GUID"`
	Author           string           `json:"Author"`
	Name             string           `json:"Name"`
	Description      string           `json:"Description"`
	ExtraDescription *string          `json:"ExtraDescription,omitempty"`
	CopyRestrictions CopyRestrictions `json:"CopyRestrictions"`
	ButtonIcon       string           `json:"ButtonIcon"`

	Audio          *AudioProperties          `json:"Audio,omitempty"`
	Material       *MaterialProperties       `json:"Material,omitempty"`
	Size           *SizeProperties           `json:"Size,omitempty"`
	Color          *ColorProperties          `json:"Color,omitempty"`
	Particle       *ParticleProperties       `json:"Particle,omitempty"`
	QuadBatch      *QuadBatchProperties      `json:"QuadBatch,omitempty"`
	Tube           *TubeProperties           `json:"Tube,omitempty"`
	Misc           *MiscProperties           `json:"Misc,omitempty"`
	Export         *ExportProperties         `json:"Export,omitempty"`
	Simplification *SimplificationProperties `json:"Simplification,omitempty"`

	// Authoring notes written by `userbrush new`; never mapped.
	Comments                *string     `json:"Comments,omitempty"`
	OriginalBaseBrushValues *Properties `json:"Original_Base_Brush_Values,omitempty"`
}

type AudioProperties struct {
	AudioClips                    []string `json:"AudioClips,omitempty"`
	MaxPitchShift                 *float32 `json:"MaxPitchShift,omitempty"`
	MaxVolume                     *float32 `json:"MaxVolume,omitempty"`
	VolumeUpSpeed                 *float32 `json:"VolumeUpSpeed,omitempty"`
	VolumeDownSpeed               *float32 `json:"VolumeDownSpeed,omitempty"`
	VolumeVelocityRangeMultiplier *float32 `json:"VolumeVelocityRangeMultiplier,omitempty"`
	IsAudioReactive               *bool    `json:"IsAudioReactive,omitempty"`
	ButtonAudio                   *string  `json:"ButtonAudio,omitempty"`
}

// MaterialProperties selects the shader and sets per-property values.
// Color and vector entries must have exactly four components.
type MaterialProperties struct {
	Shader                      *string              `json:"Shader,omitempty"`
	FloatProperties             map[string]float32   `json:"FloatProperties,omitempty"`
	ColorProperties             map[string][]float32 `json:"ColorProperties,omitempty"`
	VectorProperties            map[string][]float32 `json:"VectorProperties,omitempty"`
	TextureProperties           map[string]string    `json:"TextureProperties,omitempty"`
	TextureAtlasV               *int                 `json:"TextureAtlasV,omitempty"`
	TileRate                    *float32             `json:"TileRate,omitempty"`
	UseBloomSwatchOnColorPicker *bool                `json:"UseBloomSwatchOnColorPicker,omitempty"`
}

type SizeProperties struct {
	BrushSizeRange         []float32 `json:"BrushSizeRange,omitempty"`
	PressureSizeRange      []float32 `json:"PressureSizeRange,omitempty"`
	SizeVariance           *float32  `json:"SizeVariance,omitempty"`
	PreviewPressureSizeMin *float32  `json:"PreviewPressureSizeMin,omitempty"`
}

type ColorProperties struct {
	Opacity              *float32  `json:"Opacity,omitempty"`
	PressureOpacityRange []float32 `json:"PressureOpacityRange,omitempty"`
	LuminanceMin         *float32  `json:"LuminanceMin,omitempty"`
	SaturationMax        *float32  `json:"SaturationMax,omitempty"`
}

type ParticleProperties struct {
	Speed                *float32 `json:"Speed,omitempty"`
	Rate                 *float32 `json:"Rate,omitempty"`
	InitialRotationRange *float32 `json:"InitialRotationRange,omitempty"`
	RandomizeAlpha       *bool    `json:"RandomizeAlpha,omitempty"`
}

type QuadBatchProperties struct {
	SprayRateMultiplier *float32  `json:"SprayRateMultiplier,omitempty"`
	RotationVariance    *float32  `json:"RotationVariance,omitempty"`
	PositionVariance    *float32  `json:"PositionVariance,omitempty"`
	SizeRatio           []float32 `json:"SizeRatio,omitempty"`
}

type TubeProperties struct {
	MinLength             *float32 `json:"MinLength,omitempty"`
	StoreRadiusInTexCoord *bool    `json:"StoreRadiusInTexCoord,omitempty"`
}

type MiscProperties struct {
	RenderBackFaces             *bool    `json:"RenderBackFaces,omitempty"`
	BackIsInvisible             *bool    `json:"BackIsInvisible,omitempty"`
	BackfaceHueShift            *float32 `json:"BackfaceHueShift,omitempty"`
	BoundsPadding               *float32 `json:"BoundsPadding,omitempty"`
	PlaybackAtStrokeGranularity *bool    `json:"PlaybackAtStrokeGranularity,omitempty"`
}

type ExportProperties struct {
	EmissiveFactor *float32 `json:"EmissiveFactor,omitempty"`
	AllowExport    *bool    `json:"AllowExport,omitempty"`
}

type SimplificationProperties struct {
	SupportsSimplification *bool `json:"SupportsSimplification,omitempty"`
	HeadMinPoints          *int  `json:"HeadMinPoints,omitempty"`
	HeadPointStep          *int  `json:"HeadPointStep,omitempty"`
	TailMinPoints          *int  `json:"TailMinPoints,omitempty"`
	TailPointStep          *int  `json:"TailPointStep,omitempty"`
	MiddlePointStep        *int  `json:"MiddlePointStep,omitempty"`
}
