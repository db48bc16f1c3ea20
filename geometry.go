// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// Sampler constants of the fast-composite kernel.
const (
	// SamplerBias is added to every sampling coordinate.
	SamplerBias float32 = 0.015625

	// LinearShift moves bilinear sampling onto texel centers.
	LinearShift float32 = 0.5

	// fieldOffset moves sampling onto the lines of a single field.
	fieldOffset float32 = 0.25
)

// Geometry is the sampling geometry of one layer in the pass.
// Vectors are (x, y) in the destination orientation unless noted.
type Geometry struct {
	// Scale is destination extent over source extent.
	Scale f32.Vec2

	// Offset is the normalized-space origin of the source region
	// in source (pre-rotation) coordinates.
	Offset f32.Vec2

	// Shift places the sampled region at the destination origin.
	Shift f32.Vec2

	// Step is the source distance covered by one destination pixel.
	Step f32.Vec2

	// ClippedDst is the destination rectangle the kernel writes.
	ClippedDst image.Rectangle

	ChromaUpsampling   bool
	ChromaDownsampling bool
	ChromaSiting       bool

	Filter gputypes.FilterMode
}

// ResolveGeometry derives the sampling geometry of l composited onto
// target. l.Mode must hold the resolved sampling mode and l.Index.Pass its
// slot in the pass.
//
// It returns ErrInvalidParameter when a rectangle is degenerate, the target
// has no surface size, or the sampling mode is unknown.
func ResolveGeometry(l, target *Layer, caps Caps) (Geometry, error) {
	return resolveGeometry(l, target, caps, Logger())
}

func resolveGeometry(l, target *Layer, caps Caps, log *slog.Logger) (Geometry, error) {
	var g Geometry
	if err := validateGeometry(l, target); err != nil {
		return g, err
	}

	s := &l.Surface
	srcW, srcH := float32(s.Src.Dx()), float32(s.Src.Dy())
	dstW, dstH := float32(s.Dst.Dx()), float32(s.Dst.Dy())
	swap := l.Rotation.SwapsAxes()

	if swap {
		g.Scale = f32.Vec2{dstW / srcH, dstH / srcW}
	} else {
		g.Scale = f32.Vec2{dstW / srcW, dstH / srcH}
	}

	fieldScale := float32(1)
	g.Offset = f32.Vec2{SamplerBias, SamplerBias}
	if g.Scale[0] == 1 && g.Scale[1] == 1 && (l.interlacedScaling() || l.fieldWeaving()) {
		// 1:1 field scaling samples nearest; keep the offset.
		fieldScale = 0.5
	} else {
		switch s.SampleType {
		case SampleInterleavedEvenFirstTopField, SampleInterleavedOddFirstTopField:
			fieldScale = 0.5
			g.Offset[1] += fieldOffset
		case SampleSingleTopField:
			g.Offset[1] += fieldOffset
		case SampleInterleavedEvenFirstBottomField, SampleInterleavedOddFirstBottomField:
			fieldScale = 0.5
			g.Offset[1] -= fieldOffset
		case SampleSingleBottomField:
			g.Offset[1] -= fieldOffset
		}
	}

	fieldH := float32(srcH * fieldScale)
	if swap {
		g.Step = f32.Vec2{srcW / dstH, fieldH / dstW}
	} else {
		g.Step = f32.Vec2{srcW / dstW, fieldH / dstH}
	}

	g.Offset[0] += float32(s.Src.Min.X)
	g.Offset[1] += float32(float32(s.Src.Min.Y) * fieldScale)

	g.ChromaUpsampling, g.ChromaDownsampling = chromaResampling(s, l.Index.Pass, target.Surface.Format)
	resampling := g.ChromaUpsampling || g.ChromaDownsampling
	if l.Mode == ScalingNearest && resampling {
		log.Warn("compose: nearest sampling with chroma resampling",
			"layer", l.Index.Origin,
			"upsampling", g.ChromaUpsampling,
			"downsampling", g.ChromaDownsampling)
	}
	if resampling {
		third := float32(1.0 / 3.0)
		g.ChromaSiting = !caps.ScalingErratum ||
			(l.Mode == ScalingBilinear && g.Scale[0] >= third && g.Scale[1] >= third)
	}

	if l.Mode == ScalingNearest {
		g.Filter = gputypes.FilterModeNearest
	} else {
		g.Filter = gputypes.FilterModeLinear
		g.Shift = f32.Vec2{LinearShift, LinearShift}
	}

	g.Shift = rotationShift(g.Shift, l, target, g.Scale)

	g.ClippedDst = s.Dst
	if l.xorMono() {
		// One source bit per output pixel.
		g.ClippedDst.Max.X = g.ClippedDst.Min.X + g.ClippedDst.Dx()*8
	}
	return g, nil
}

// rotationShift applies the coordinate correction that lands the rotated
// or mirrored source at the destination origin on a target of the given
// size. Products are rounded to float32 before subtracting.
func rotationShift(shift f32.Vec2, l, target *Layer, scale f32.Vec2) f32.Vec2 {
	s := &l.Surface
	left, top := float32(s.Dst.Min.X), float32(s.Dst.Min.Y)
	srcW, srcH := float32(s.Src.Dx()), float32(s.Src.Dy())
	w, h := float32(target.Surface.Width), float32(target.Surface.Height)

	switch l.Rotation {
	case RotationIdentity:
		shift[0] -= left
		shift[1] -= top
	case Rotation90:
		shift[0] -= top
		shift[1] -= w - float32(srcH*scale[0]) - left
	case Rotation180:
		shift[0] -= w - float32(srcW*scale[0]) - left
		shift[1] -= h - float32(srcH*scale[1]) - top
	case Rotation270:
		shift[0] -= h - float32(srcW*scale[1]) - top
		shift[1] -= left
	case MirrorHorizontal:
		shift[0] -= w - float32(srcW*scale[0]) - left
		shift[1] -= top
	case MirrorVertical:
		shift[0] -= left
		shift[1] -= h - float32(srcH*scale[1]) - top
	case Rotate90MirrorHorizontal:
		shift[0] -= top
		shift[1] -= left
	default: // Rotate90MirrorVertical
		shift[0] -= h - float32(srcW*scale[1]) - top
		shift[1] -= w - float32(srcH*scale[0]) - left
	}
	return shift
}

func validateGeometry(l, target *Layer) error {
	if l == nil || target == nil {
		return layerErr(l, "geometry", "nil layer")
	}
	s := &l.Surface
	if s.Src.Dx() <= 0 || s.Src.Dy() <= 0 {
		return layerErr(l, "geometry", "degenerate source rectangle %v", s.Src)
	}
	if s.Dst.Dx() <= 0 || s.Dst.Dy() <= 0 {
		return layerErr(l, "geometry", "degenerate destination rectangle %v", s.Dst)
	}
	if target.Surface.Width <= 0 || target.Surface.Height <= 0 {
		return layerErr(l, "geometry", "target surface %dx%d", target.Surface.Width, target.Surface.Height)
	}
	if l.Mode > ScalingAVS {
		return layerErr(l, "geometry", "unknown scaling mode %d", l.Mode)
	}
	return nil
}

// chromaResampling reports whether sampling s onto a target of format dst
// changes the chroma subsampling class. It only applies to the primary
// surface, and a semi-planar primary only in slot 0: the 3D sampler
// chroma-siting path does not handle two-plane sub-layers.
func chromaResampling(s *Surface, passIndex int, dst PixelFormat) (up, down bool) {
	if s.Type != SurfacePrimary {
		return false, false
	}
	if !(s.Format.IsSemiPlanar() && passIndex == 0) && !s.Format.IsPacked422() {
		return false, false
	}
	src, out := s.Format.ColorPack(), dst.ColorPack()
	up = (src == ColorPack420 && (out == ColorPack422 || out == ColorPack444)) ||
		(src == ColorPack422 && out == ColorPack444)
	down = (src == ColorPack444 && (out == ColorPack422 || out == ColorPack420)) ||
		(src == ColorPack422 && out == ColorPack420)
	return up, down
}
