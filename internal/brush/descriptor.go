package brush

// Descriptor is the fully typed brush consumed by the rest of the
// application. Base descriptors live in a registry; variants are clones of a
// base with configuration values overlaid.
type Descriptor struct {
	GUID          string
	BaseGUID      string // set on variants only
	Name          string
	IsUserVariant bool
	HiddenInGUI   bool
	Supersedes    string
	SupersededBy  string
	ButtonTexture *Texture
	Material      *Material

	DurableName      string
	Description      string
	DescriptionExtra string

	// Audio
	AudioMaxPitchShift            float32
	AudioMaxVolume                float32
	VolumeUpSpeed                 float32
	VolumeDownSpeed               float32
	VolumeVelocityRangeMultiplier float32
	AudioReactive                 bool

	// Material
	TextureAtlasV               int
	TileRate                    float32
	UseBloomSwatchOnColorPicker bool

	// Size
	BrushSizeRange         Vector2
	PressureSizeRange      Vector2
	SizeVariance           float32
	PreviewPressureSizeMin float32

	// Color
	Opacity              float32
	PressureOpacityRange Vector2
	ColorLuminanceMin    float32
	ColorSaturationMax   float32

	// Particle
	ParticleSpeed                float32
	ParticleRate                 float32
	ParticleInitialRotationRange float32
	RandomizeAlpha               bool

	// Quad batch
	SprayRateMultiplier float32
	RotationVariance    float32
	PositionVariance    float32
	SizeRatio           Vector2

	// Tube
	SolidMinLengthMeters        float32
	TubeStoreRadiusInTexcoord0Z bool

	// Misc
	RenderBackfaces             bool
	BackIsInvisible             bool
	BackfaceHueShift            float32
	BoundsPadding               float32
	PlayBackAtStrokeGranularity bool

	// Export
	EmissiveFactor float32
	AllowExport    bool

	// Simplification
	SupportsSimplification bool
	HeadMinPoints          int
	HeadPointStep          int
	TailMinPoints          int
	TailPointStep          int
	MiddlePointStep        int
}

// Clone returns a copy of d that shares no mutable state with it.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	c := *d
	c.ButtonTexture = d.ButtonTexture.Clone()
	c.Material = d.Material.Clone()
	return &c
}
