package compose

import (
	"image"

	"github.com/gogpu/gputypes"
)

// LayerIndex records where a layer sits before and after compaction.
type LayerIndex struct {
	// Origin is the position in the caller's candidate slice. It survives
	// filtering so diagnostics refer to the layer the caller supplied.
	Origin int

	// Pass is the compacted slot within the pass, contiguous from 0.
	// It is -1 until the layer is admitted.
	Pass int
}

// Palette describes the palette referenced by a palettized surface.
type Palette struct {
	Type    PaletteType
	Entries int
}

// Surface is the externally owned description of a layer's image.
type Surface struct {
	// Src is the source rectangle, pre-rotation.
	Src image.Rectangle

	// Dst is the destination rectangle, post-rotation.
	Dst image.Rectangle

	// MaxSrc bounds every source rectangle used with this surface across
	// frames. Its bottom edge matters for field-mode plane offsets.
	MaxSrc image.Rectangle

	// Width and Height are the allocated surface dimensions.
	Width  int
	Height int

	Format     PixelFormat
	SampleType SampleType
	Type       SurfaceType
	Palette    Palette
}

// Scaling requests a sampling mode for a layer.
type Scaling struct {
	Mode       ScalingMode
	Interlaced InterlacedScaling
}

// Deinterlace requests deinterlacing of an interlaced layer.
type Deinterlace struct {
	Enabled bool

	// SampleTypeInput is the sample type handed to the deinterlacer.
	// Selection writes the resolved sample type here on admission.
	SampleTypeInput SampleType
}

// LumaKey keys out pixels whose luma falls within [Low, High].
type LumaKey struct {
	Low  int16
	High int16
}

// Blending describes how a layer is blended onto the layers below it.
type Blending struct {
	Type  BlendType
	Alpha float32
}

// Procamp adjusts brightness, contrast, hue and saturation.
type Procamp struct {
	Enabled    bool
	Brightness float32
	Contrast   float32
	Hue        float32
	Saturation float32
}

// CompAlphaMode selects how the output alpha channel is produced.
type CompAlphaMode uint8

// Output alpha modes.
const (
	AlphaFillDefault CompAlphaMode = iota
	AlphaFillConstant
	AlphaFillSourceStream
	AlphaFillBackground
)

// CompAlpha is the overall alpha descriptor of the target.
type CompAlpha struct {
	Mode  CompAlphaMode
	Alpha float32

	// Calculate enables per-pixel alpha calculation in the pass.
	Calculate bool
}

// Params holds the values computed for an admitted layer.
type Params struct {
	Geometry Geometry

	// Alpha is the resolved constant alpha in [0, 255].
	Alpha uint8
}

// Layer is one input or output image participating in a composite pass.
//
// Feature descriptors are optional: a nil slot means the feature was not
// requested for this layer. Selection mutates the layer in place
// (sampling mode, field downgrade) and the resolvers fill Params.
type Layer struct {
	Index    LayerIndex
	Surface  Surface
	Rotation Rotation

	Scaling     *Scaling
	Deinterlace *Deinterlace
	LumaKey     *LumaKey
	Blending    *Blending
	Procamp     *Procamp

	// ColorFill and CompAlpha are only meaningful on the target.
	ColorFill *ColorFill
	CompAlpha *CompAlpha

	// Mode is the sampling mode resolved by selection.
	Mode ScalingMode

	Params Params
}

// interlacedScaling reports whether interlaced scaling is requested.
func (l *Layer) interlacedScaling() bool {
	return l.Scaling != nil && l.Scaling.Interlaced != InterlacedScalingNone
}

// fieldWeaving reports whether fields are woven into an interleaved frame.
func (l *Layer) fieldWeaving() bool {
	return l.Scaling != nil && l.Scaling.Interlaced == InterlacedScalingFieldToInterleaved
}

// xorMono reports whether the layer is a 1bpp XOR cursor overlay.
func (l *Layer) xorMono() bool {
	return l.Blending != nil && l.Blending.Type == BlendXORMono
}

// procampEnabled reports whether an enabled procamp is attached.
func (l *Layer) procampEnabled() bool {
	return l.Procamp != nil && l.Procamp.Enabled
}

// Extent returns the allocated surface size.
func (l *Layer) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(max(l.Surface.Width, 0)),
		Height:             uint32(max(l.Surface.Height, 0)),
		DepthOrArrayLayers: 1,
	}
}

// reset clears everything a previous evaluation computed.
func (l *Layer) reset(origin int) {
	l.Index = LayerIndex{Origin: origin, Pass: -1}
	l.Params = Params{}
}
