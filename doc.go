// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compose plans passes of a fast-composite video kernel.
//
// A composite pass blends several input layers onto one target using a
// small, fixed set of hardware sampling resources: a limited number of
// layer slots, palettes, procamp and luma-key units, AVS scaling samplers,
// and a single 3D sampler that can only be programmed with one filter mode
// per pass. compose decides which layers fit into one pass and computes
// the per-layer parameters the command builder needs to drive it.
//
// # Pipeline
//
// [Planner.Evaluate] runs four stages:
//
//  1. Transparent filtering: constant-blend layers with alpha <= 0 are
//     dropped ([RemoveTransparentLayers]).
//  2. Selection: candidates are admitted in order while the [Budget]
//     allows ([SelectLayers]). The first layer that does not fit ends the
//     pass; it and the layers after it are returned in [Pass.Remaining].
//  3. Alpha: the constant alpha of each admitted layer is resolved and
//     opaque constant blends are downgraded ([ResolveAlpha]).
//  4. Geometry: scale, offset, step and rotation shift are derived in
//     float32 together with the chroma resampling flags ([ResolveGeometry]).
//
// # Multiple passes
//
// compose plans one pass at a time. The caller schedules another pass
// when [Pass.NeedsAnotherPass] is set:
//
//	p := compose.NewPlanner(compose.Caps{AVSSampler: true, MaxInputLayers: 8})
//	req := compose.Request{Sources: layers, Target: target}
//	for {
//	    pass, err := p.Evaluate(req)
//	    if err != nil {
//	        return err
//	    }
//	    submit(pass)
//	    if !pass.NeedsAnotherPass {
//	        break
//	    }
//	    req.Sources = pass.Remaining
//	    req.PassIndex++
//	}
//
// # Errors
//
// Malformed input returns an error wrapping [ErrInvalidParameter]; a
// request for another execution engine returns [ErrUnsupported]. Running
// out of hardware resources is not an error. Quality anomalies are logged
// at warn level through the logger set with [SetLogger] or [WithLogger].
//
// # Concurrency
//
// A [Planner] may be shared. Layers and budgets belong to a single
// evaluation and must not be used concurrently.
package compose
