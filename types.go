package compose

const unknownStr = "Unknown"

// Rotation is the rotation/mirror transform applied while sampling a layer.
// The source rectangle is pre-rotation, the destination rectangle is
// post-rotation.
type Rotation uint8

// Rotation and mirror modes.
const (
	RotationIdentity Rotation = iota
	Rotation90
	Rotation180
	Rotation270
	MirrorHorizontal
	MirrorVertical
	Rotate90MirrorHorizontal
	Rotate90MirrorVertical
)

// String returns a human-readable name for the rotation.
func (r Rotation) String() string {
	switch r {
	case RotationIdentity:
		return "Identity"
	case Rotation90:
		return "Rotate90"
	case Rotation180:
		return "Rotate180"
	case Rotation270:
		return "Rotate270"
	case MirrorHorizontal:
		return "MirrorHorizontal"
	case MirrorVertical:
		return "MirrorVertical"
	case Rotate90MirrorHorizontal:
		return "Rotate90MirrorHorizontal"
	case Rotate90MirrorVertical:
		return "Rotate90MirrorVertical"
	default:
		return unknownStr
	}
}

// SwapsAxes reports whether the rotation exchanges the x and y axes.
func (r Rotation) SwapsAxes() bool {
	switch r {
	case RotationIdentity, Rotation180, MirrorHorizontal, MirrorVertical:
		return false
	}
	return true
}

// SampleType is the field layout of a video surface.
type SampleType uint8

// Sample types.
const (
	SampleProgressive SampleType = iota
	SampleSingleTopField
	SampleSingleBottomField
	SampleInterleavedEvenFirstTopField
	SampleInterleavedEvenFirstBottomField
	SampleInterleavedOddFirstTopField
	SampleInterleavedOddFirstBottomField
)

// String returns a human-readable name for the sample type.
func (s SampleType) String() string {
	switch s {
	case SampleProgressive:
		return "Progressive"
	case SampleSingleTopField:
		return "SingleTopField"
	case SampleSingleBottomField:
		return "SingleBottomField"
	case SampleInterleavedEvenFirstTopField:
		return "InterleavedEvenFirstTopField"
	case SampleInterleavedEvenFirstBottomField:
		return "InterleavedEvenFirstBottomField"
	case SampleInterleavedOddFirstTopField:
		return "InterleavedOddFirstTopField"
	case SampleInterleavedOddFirstBottomField:
		return "InterleavedOddFirstBottomField"
	default:
		return unknownStr
	}
}

// IsProgressive reports whether s is progressive (frame) sampling.
func (s SampleType) IsProgressive() bool {
	return s == SampleProgressive
}

// ScalingMode is the sampling mode used for a layer.
type ScalingMode uint8

// Scaling modes. Nearest and Bilinear run on the shared 3D sampler;
// AVS uses the dedicated scaling sampler.
const (
	ScalingNearest ScalingMode = iota
	ScalingBilinear
	ScalingAVS
)

// String returns a human-readable name for the scaling mode.
func (m ScalingMode) String() string {
	switch m {
	case ScalingNearest:
		return "Nearest"
	case ScalingBilinear:
		return "Bilinear"
	case ScalingAVS:
		return "AVS"
	default:
		return unknownStr
	}
}

// InterlacedScaling selects how interlaced content is scaled.
type InterlacedScaling uint8

// Interlaced scaling types.
const (
	InterlacedScalingNone InterlacedScaling = iota
	InterlacedScalingInterleavedToInterleaved
	InterlacedScalingInterleavedToField
	InterlacedScalingFieldToInterleaved
)

// SurfaceType is the role of a surface in the composition.
type SurfaceType uint8

// Surface roles.
const (
	SurfacePrimary SurfaceType = iota
	SurfaceSubstream
	SurfaceBackground
	SurfaceReference
	SurfaceRenderTarget
)

// String returns a human-readable name for the surface type.
func (s SurfaceType) String() string {
	switch s {
	case SurfacePrimary:
		return "Primary"
	case SurfaceSubstream:
		return "Substream"
	case SurfaceBackground:
		return "Background"
	case SurfaceReference:
		return "Reference"
	case SurfaceRenderTarget:
		return "RenderTarget"
	default:
		return unknownStr
	}
}

// BlendType is the blending applied when a layer is composited.
type BlendType uint8

// Blend types.
const (
	BlendNone BlendType = iota
	BlendSource
	BlendPartial
	BlendConstant
	BlendConstantSource
	BlendConstantPartial
	BlendXORMono
	BlendAdditive
)

// String returns a human-readable name for the blend type.
func (b BlendType) String() string {
	switch b {
	case BlendNone:
		return "None"
	case BlendSource:
		return "Source"
	case BlendPartial:
		return "Partial"
	case BlendConstant:
		return "Constant"
	case BlendConstantSource:
		return "ConstantSource"
	case BlendConstantPartial:
		return "ConstantPartial"
	case BlendXORMono:
		return "XORMono"
	case BlendAdditive:
		return "Additive"
	default:
		return unknownStr
	}
}

// IsConstant reports whether b belongs to the constant-alpha family,
// whose opacity is a scalar rather than per-pixel.
func (b BlendType) IsConstant() bool {
	return b == BlendConstant || b == BlendConstantSource || b == BlendConstantPartial
}

// PaletteType identifies the palette attached to a surface.
type PaletteType uint8

// Palette types.
const (
	PaletteNone PaletteType = iota
	PaletteYCbCr
	PaletteARGB
	PaletteAlpha
)

// Engine is the execution engine a feature pipe was routed to.
type Engine uint8

// Execution engines. Only EngineComposite is planned by this package.
const (
	EngineComposite Engine = iota
	EngineVebox
	EngineSFC
)

// String returns a human-readable name for the engine.
func (e Engine) String() string {
	switch e {
	case EngineComposite:
		return "Composite"
	case EngineVebox:
		return "Vebox"
	case EngineSFC:
		return "SFC"
	default:
		return unknownStr
	}
}

// Caps describes the hardware capabilities relevant to planning.
type Caps struct {
	// AVSSampler reports whether the AVS scaling sampler exists.
	AVSSampler bool

	// ScalingErratum reports whether the down-scaling erratum workaround
	// is active. It restricts chroma siting to bilinear sampling with
	// scale factors of at least 1/3.
	ScalingErratum bool

	// MaxInputLayers is the largest number of input layers one pass can
	// take. Zero means the budget limit alone applies.
	MaxInputLayers int
}
