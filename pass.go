// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	"fmt"
)

// Request is the input of one pass evaluation.
type Request struct {
	// Sources are the candidate input layers, bottom-most first.
	Sources []*Layer

	// Target is the output layer.
	Target *Layer

	// Engine is the execution engine the feature pipe was routed to.
	Engine Engine

	// PassIndex counts the passes already planned for this frame.
	// The target color fill is only applied on pass 0.
	PassIndex int
}

// Pass is the plan for one fast-composite pass.
type Pass struct {
	// Admitted holds the origin index of every admitted layer, in order.
	Admitted []int

	// Layers are the admitted layers. Layers[i].Index.Pass == i.
	Layers []*Layer

	Target *Layer

	// NeedsAnotherPass is set when Remaining is not empty.
	NeedsAnotherPass bool

	// Remaining are the candidates left for a later pass, in order.
	// Transparent layers are dropped and never appear here.
	Remaining []*Layer

	// Fill is the background fill, nil when none is applied in this pass.
	Fill *FillParams

	// CompAlpha is the output alpha descriptor of the target, if any.
	CompAlpha *CompAlpha

	// CalculateAlpha enables per-pixel output alpha calculation.
	CalculateAlpha bool
}

// Planner evaluates composite passes for one hardware configuration.
// A Planner is immutable and may be shared between goroutines; each
// Evaluate call owns its budget and the layers it is given.
type Planner struct {
	caps Caps
	opts options
}

// NewPlanner creates a planner for the given hardware.
func NewPlanner(caps Caps, opts ...Option) *Planner {
	return &Planner{
		caps: caps,
		opts: buildOptions(opts),
	}
}

// Caps returns the hardware capabilities the planner was created with.
func (p *Planner) Caps() Caps {
	return p.caps
}

// limits returns the budget maxima, capped by the hardware layer count.
func (p *Planner) limits() Limits {
	lim := p.opts.limits
	if n := p.caps.MaxInputLayers; n > 0 && n < lim.Layers {
		lim.Layers = n
	}
	return lim
}

// Evaluate plans one pass: it drops transparent layers, admits as many of
// the remaining sources as the hardware budget allows, and resolves alpha
// and geometry for each admitted layer.
//
// When the result has NeedsAnotherPass set, the caller plans the next pass
// by calling Evaluate again with Sources set to Pass.Remaining.
func (p *Planner) Evaluate(req Request) (*Pass, error) {
	if req.Engine != EngineComposite {
		return nil, fmt.Errorf("%w: %v engine", ErrUnsupported, req.Engine)
	}
	if req.Target == nil {
		return nil, fmt.Errorf("%w: nil target", ErrInvalidParameter)
	}
	log := p.opts.log()

	for i, l := range req.Sources {
		if l == nil {
			return nil, &LayerError{Origin: i, Op: "evaluate", Err: fmt.Errorf("%w: nil layer", ErrInvalidParameter)}
		}
		l.reset(i)
	}
	target := req.Target
	target.reset(0)
	target.Index.Pass = 0

	candidates := removeTransparent(req.Sources, log)

	budget := NewBudget(p.limits())
	sel, err := selectLayers(candidates, target, budget, p.caps, &p.opts)
	if err != nil {
		return nil, err
	}
	if n := p.caps.MaxInputLayers; n > 0 && len(sel.Admitted) > n {
		return nil, fmt.Errorf("%w: %d layers admitted, hardware takes %d", ErrInvalidParameter, len(sel.Admitted), n)
	}

	pass := &Pass{
		Admitted:         make([]int, 0, len(sel.Admitted)),
		Layers:           make([]*Layer, 0, len(sel.Admitted)),
		Target:           target,
		NeedsAnotherPass: sel.NeedsAnotherPass,
	}
	for slot, idx := range sel.Admitted {
		l := candidates[idx]
		l.Index.Pass = slot

		alpha, err := resolveAlpha(l, log)
		if err != nil {
			return nil, err
		}
		g, err := resolveGeometry(l, target, p.caps, log)
		if err != nil {
			return nil, err
		}
		l.Params = Params{Geometry: g, Alpha: alpha}

		pass.Admitted = append(pass.Admitted, l.Index.Origin)
		pass.Layers = append(pass.Layers, l)
	}
	if sel.NeedsAnotherPass {
		// Selection stops at the first layer that does not fit, so the
		// admitted layers are a prefix of the candidates.
		pass.Remaining = append([]*Layer(nil), candidates[len(sel.Admitted):]...)
	}

	if target.ColorFill != nil && req.PassIndex == 0 {
		pass.Fill = newFillParams(target.ColorFill, target)
	}
	pass.CompAlpha = target.CompAlpha
	pass.CalculateAlpha = target.CompAlpha != nil && target.CompAlpha.Calculate

	log.Debug("compose: pass planned",
		"pass", req.PassIndex,
		"admitted", pass.Admitted,
		"remaining", len(pass.Remaining),
		"budget", budget)
	return pass, nil
}
