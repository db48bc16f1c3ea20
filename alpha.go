package compose

import (
	"log/slog"
	"math"
)

// ResolveAlpha returns the constant alpha of l in [0, 255].
//
// Only the constant blend family carries a constant alpha; any other layer
// resolves to 255. A fully opaque constant blend is downgraded in place:
// constant becomes none, constant-source and constant-partial become
// source, and the stored alpha is pinned to 1.0.
//
// Transparent layers must be removed with RemoveTransparentLayers first;
// reaching here with alpha <= 0 or NaN returns ErrInvalidParameter.
func ResolveAlpha(l *Layer) (uint8, error) {
	return resolveAlpha(l, Logger())
}

func resolveAlpha(l *Layer, log *slog.Logger) (uint8, error) {
	if l == nil {
		return 0, layerErr(l, "alpha", "nil layer")
	}
	bl := l.Blending
	if bl == nil || !bl.Type.IsConstant() {
		return 255, nil
	}
	if !(bl.Alpha > 0) {
		return 0, layerErr(l, "alpha", "transparent layer with %v blend reached alpha resolution", bl.Type)
	}

	log.Debug("compose: constant alpha", "layer", l.Index.Origin, "blend", bl.Type, "alpha", bl.Alpha)

	scaled := math.Round(float64(255 * bl.Alpha))
	if bl.Alpha >= 1 || scaled >= 255 {
		if bl.Type == BlendConstant {
			bl.Type = BlendNone
		} else {
			bl.Type = BlendSource
		}
		bl.Alpha = 1
		return 255, nil
	}
	return uint8(scaled), nil
}
