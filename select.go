// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	"fmt"
	"log/slog"
	"slices"
)

// Selection is the admission decision for one pass.
type Selection struct {
	// Admitted holds candidate positions admitted to the pass, in order.
	Admitted []int

	// NeedsAnotherPass is set when a candidate did not fit. That candidate
	// and every one after it must go to a later pass.
	NeedsAnotherPass bool
}

// RemoveTransparentLayers returns layers without the ones whose constant
// blend makes them fully transparent. Such layers contribute nothing and
// must not occupy a resource slot. The input slice is not modified.
func RemoveTransparentLayers(layers []*Layer) []*Layer {
	return removeTransparent(layers, Logger())
}

func removeTransparent(layers []*Layer, log *slog.Logger) []*Layer {
	out := make([]*Layer, 0, len(layers))
	for _, l := range layers {
		if l != nil && isTransparent(l) {
			log.Debug("compose: transparent layer skipped",
				"layer", l.Index.Origin,
				"blend", l.Blending.Type,
				"alpha", l.Blending.Alpha)
			continue
		}
		out = append(out, l)
	}
	return out
}

func isTransparent(l *Layer) bool {
	// NaN alpha counts as transparent.
	return l.Blending != nil && l.Blending.Type.IsConstant() && !(l.Blending.Alpha > 0)
}

// SelectLayers decides which candidates fit into one pass of the
// fast-composite kernel. The budget is reset from caps before evaluation.
//
// Candidates are evaluated strictly in order. The first candidate that
// overdraws the budget ends the scan: it and all later candidates are left
// for another pass. Admitted layers are updated in place with their
// resolved sampling mode and sample type.
func SelectLayers(candidates []*Layer, target *Layer, b *Budget, caps Caps, opts ...Option) (Selection, error) {
	o := buildOptions(opts)
	return selectLayers(candidates, target, b, caps, &o)
}

func selectLayers(candidates []*Layer, target *Layer, b *Budget, caps Caps, o *options) (Selection, error) {
	var sel Selection
	if target == nil {
		return sel, fmt.Errorf("%w: nil target", ErrInvalidParameter)
	}
	if b == nil {
		return sel, fmt.Errorf("%w: nil budget", ErrInvalidParameter)
	}
	log := o.log()
	b.Reset(caps.AVSSampler)

	s := selector{
		target: target,
		budget: b,
		caps:   caps,
		log:    log,
	}
	var bypassed []*Layer
	bilinearInUse := false
	for i, l := range candidates {
		if l == nil {
			return sel, &LayerError{Origin: i, Op: "select", Err: fmt.Errorf("%w: nil layer", ErrInvalidParameter)}
		}
		res := s.add(i, l, len(sel.Admitted))
		if !res.admitted {
			sel.NeedsAnotherPass = true
			break
		}
		sel.Admitted = append(sel.Admitted, i)
		switch {
		case res.bypass:
			bypassed = append(bypassed, l)
		case l.Mode == ScalingBilinear:
			bilinearInUse = true
		}
	}

	if o.forceBilinear && bilinearInUse {
		for pos, idx := range sel.Admitted {
			l := candidates[idx]
			if l.Scaling != nil && l.Mode == ScalingNearest && !slices.Contains(bypassed, l) {
				l.setMode(ScalingBilinear)
				log.Debug("compose: force nearest to bilinear", "layer", idx, "slot", pos)
			}
		}
	}

	def := s.defaultMode(candidates, sel.Admitted, bypassed)
	for _, l := range bypassed {
		l.Mode = def
	}
	return sel, nil
}

// selector carries the state of one selection scan.
type selector struct {
	target *Layer
	budget *Budget
	caps   Caps
	log    *slog.Logger
}

type addResult struct {
	admitted bool

	// bypass marks a pass-through layer that takes the pass default mode.
	bypass bool
}

// add evaluates one candidate. n is the number of layers admitted so far.
// A rejected candidate leaves both the budget and the layer unchanged.
func (s *selector) add(index int, l *Layer, n int) addResult {
	b := s.budget
	saved := *b

	b.Consume(ResourceLayers, 1)
	if l.Surface.Palette.Type != PaletteNone {
		b.Consume(ResourcePalettes, 1)
	}
	if l.procampEnabled() {
		b.Consume(ResourceProcamp, 1)
	}

	if l.LumaKey != nil {
		b.Consume(ResourceLumaKeys, 1)
		// A luma-keyed layer combines with at most one other layer.
		if b.Exhausted(ResourceLumaKeys) || n > 1 {
			s.log.Debug("compose: layer not selected",
				"layer", index,
				"lumaKeys", b.Remaining(ResourceLumaKeys),
				"admitted", n)
			*b = saved
			return addResult{}
		}
		if n == 0 && b.Samplers()&SamplerLumaKey != 0 {
			b.RestrictSamplers(SamplerLumaKey)
		}
	}

	sampleType := l.Surface.SampleType
	safe := fieldSafe(&l.Surface)
	if !safe {
		// The chroma plane offset of a field would not be 4-row aligned.
		sampleType = SampleProgressive
	}

	mode := ScalingNearest
	if l.Scaling != nil {
		mode = l.Scaling.Mode
	}
	bypass := false
	if !s.caps.AVSSampler {
		if mode == ScalingAVS {
			mode = ScalingBilinear
		}
		// A primary layer already scaled by an earlier engine arrives
		// without a scaling request and reuses the other layers' sampler.
		bypass = l.Scaling == nil
	}

	switch {
	case bypass:
		s.log.Debug("compose: bypass sampler selection", "layer", index)
	case l.Scaling != nil && mode == ScalingAVS && l.LumaKey == nil && !bobDeinterlace(l):
		b.Consume(ResourceAVS, 1)
	default:
		// Only one 3D filter mode per pass: a later filter overwrites the
		// sampler state programmed for an earlier one.
		mode = sampler3DMode(l, sampleType, n, s.target)
		lumaKeyEligible := s.caps.AVSSampler && l.LumaKey != nil && n > 0 &&
			!l.Surface.Format.IsThreePlane()
		switch {
		case lumaKeyEligible:
			b.RestrictSamplers(SamplerLumaKey)
		case b.Samplers()&SamplerFilters != 0:
			b.RestrictSamplers(SamplerFilters)
		default:
			mode = ScalingAVS
			b.Consume(ResourceAVS, 1)
		}
	}

	if !b.Feasible() {
		s.log.Debug("compose: layer not selected", "layer", index, "budget", b)
		*b = saved
		return addResult{}
	}

	if !safe {
		if l.Deinterlace != nil {
			l.Deinterlace.Enabled = false
		}
		if l.Scaling != nil {
			l.Scaling.Interlaced = InterlacedScalingNone
		}
	}

	s.log.Debug("compose: layer selected", "layer", index, "mode", mode, "sampleType", sampleType)
	l.setMode(mode)
	if l.Deinterlace != nil {
		l.Deinterlace.SampleTypeInput = sampleType
	}
	l.Surface.SampleType = sampleType
	return addResult{admitted: true, bypass: bypass}
}

// defaultMode returns the 3D sampler mode shared by the admitted layers
// that carry a scaling request. Pass-through layers are sampled with it.
func (s *selector) defaultMode(candidates []*Layer, admitted []int, bypassed []*Layer) ScalingMode {
	def := ScalingNearest
	seen := false
	for _, idx := range admitted {
		l := candidates[idx]
		if slices.Contains(bypassed, l) || l.Mode == ScalingAVS {
			continue
		}
		if !seen {
			def, seen = l.Mode, true
			continue
		}
		if l.Mode != def {
			s.log.Warn("compose: different 3D sampler modes in one pass",
				"layer", idx, "mode", l.Mode, "first", def)
			def = ScalingBilinear
		}
	}
	return def
}

// setMode records the resolved sampling mode on the layer and its request.
func (l *Layer) setMode(m ScalingMode) {
	l.Mode = m
	if l.Scaling != nil {
		l.Scaling.Mode = m
	}
}

// sampler3DMode picks nearest only for 1:1 copies that need no chroma
// resampling and are progressive or already field adjusted.
func sampler3DMode(l *Layer, sampleType SampleType, passIndex int, target *Layer) ScalingMode {
	up, down := chromaResampling(&l.Surface, passIndex, target.Surface.Format)
	src, dst := l.Surface.Src, l.Surface.Dst
	if dst.Dx() == src.Dx() && dst.Dy() == src.Dy() &&
		!up && !down &&
		(sampleType.IsProgressive() || l.interlacedScaling() || l.fieldWeaving()) {
		return ScalingNearest
	}
	return ScalingBilinear
}

// fieldSafe reports whether the surface may be sampled field by field.
// For interlaced 4:2:0 input the chroma plane offset of a field must be a
// multiple of 4 rows, which requires the usable height to be one.
func fieldSafe(s *Surface) bool {
	if s.SampleType.IsProgressive() || s.Format.ColorPack() != ColorPack420 {
		return true
	}
	bottom := s.MaxSrc.Max.Y
	if s.MaxSrc.Empty() {
		bottom = s.Src.Max.Y
	}
	return min(s.Height, bottom)%4 == 0
}

// bobDeinterlace reports whether bob deinterlacing runs on the 3D sampler.
func bobDeinterlace(l *Layer) bool {
	if l.Deinterlace == nil || !l.Deinterlace.Enabled {
		return false
	}
	return fieldSafe(&l.Surface)
}
