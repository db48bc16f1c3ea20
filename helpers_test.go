package compose

import (
	"image"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// cmpIgnoreErr compares LayerError values without their wrapped cause.
var cmpIgnoreErr = cmpopts.IgnoreFields(LayerError{}, "Err")

// testTarget returns a render target covering a w×h surface.
func testTarget(w, h int, f PixelFormat) *Layer {
	return &Layer{
		Surface: Surface{
			Dst:    image.Rect(0, 0, w, h),
			Width:  w,
			Height: h,
			Format: f,
			Type:   SurfaceRenderTarget,
		},
	}
}

// testLayer returns a progressive RGB substream scaled from src to dst
// with a bilinear scaling request.
func testLayer(src, dst image.Rectangle) *Layer {
	return &Layer{
		Index: LayerIndex{Pass: -1},
		Surface: Surface{
			Src:    src,
			Dst:    dst,
			MaxSrc: src,
			Width:  src.Max.X,
			Height: src.Max.Y,
			Format: FormatA8R8G8B8,
			Type:   SurfaceSubstream,
		},
		Scaling: &Scaling{Mode: ScalingBilinear},
	}
}

// unityLayer returns a w×h layer copied 1:1 to the origin.
func unityLayer(w, h int) *Layer {
	r := image.Rect(0, 0, w, h)
	return testLayer(r, r)
}

// scaledLayer returns a w×h layer scaled 2× to the origin.
func scaledLayer(w, h int) *Layer {
	return testLayer(image.Rect(0, 0, w, h), image.Rect(0, 0, 2*w, 2*h))
}

// modes returns the resolved sampling mode of each layer.
func modes(ls ...*Layer) []ScalingMode {
	out := make([]ScalingMode, len(ls))
	for i, l := range ls {
		out[i] = l.Mode
	}
	return out
}
