package compose

import (
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorFill paints the target background before layers are composited.
type ColorFill struct {
	Color colorful.Color

	// Alpha is the background opacity in [0, 1].
	Alpha float32
}

// FillParams is the background fill handed to the command builder.
type FillParams struct {
	// ARGB is the fill color packed as 0xAARRGGBB.
	ARGB uint32

	// YCbCr is the fill color for YUV targets, as 0xAAYYCbCr.
	YCbCr uint32

	// Extent is the target area covered by the fill.
	Extent gputypes.Extent3D
}

// newFillParams packs the fill for a target of the given surface.
func newFillParams(cf *ColorFill, target *Layer) *FillParams {
	c := cf.Color.Clamped()
	r, g, b := c.RGB255()
	a := alphaByte(cf.Alpha)
	y, cb, cr := color.RGBToYCbCr(r, g, b)
	return &FillParams{
		ARGB:   uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b),
		YCbCr:  uint32(a)<<24 | uint32(y)<<16 | uint32(cb)<<8 | uint32(cr),
		Extent: target.Extent(),
	}
}

// alphaByte converts an opacity in [0, 1] to [0, 255], clamping.
func alphaByte(a float32) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 255
	}
	return uint8(math.Round(float64(255 * a)))
}
