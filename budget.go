// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	"fmt"
	"log/slog"
	"strings"
)

// ResourceKind names a scarce per-pass hardware resource.
type ResourceKind uint8

// Resource kinds tracked by a Budget.
const (
	ResourceLayers ResourceKind = iota
	ResourcePalettes
	ResourceProcamp
	ResourceLumaKeys
	ResourceAVS
	ResourceSampler
)

// String returns a human-readable name for the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case ResourceLayers:
		return "layers"
	case ResourcePalettes:
		return "palettes"
	case ResourceProcamp:
		return "procamp"
	case ResourceLumaKeys:
		return "lumaKeys"
	case ResourceAVS:
		return "avs"
	case ResourceSampler:
		return "sampler"
	default:
		return unknownStr
	}
}

// SamplerMask is a set of 3D sampler filter modes still available.
type SamplerMask uint8

// 3D sampler filter modes.
const (
	SamplerNearest SamplerMask = 1 << iota
	SamplerBilinear
	SamplerLumaKey

	// SamplerFilters is the plain filtering subset.
	SamplerFilters = SamplerNearest | SamplerBilinear

	// SamplerAll is every mode the sampler can offer.
	SamplerAll = SamplerNearest | SamplerBilinear | SamplerLumaKey
)

// String lists the modes in the mask, e.g. "nearest|bilinear".
func (m SamplerMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	if m&SamplerNearest != 0 {
		parts = append(parts, "nearest")
	}
	if m&SamplerBilinear != 0 {
		parts = append(parts, "bilinear")
	}
	if m&SamplerLumaKey != 0 {
		parts = append(parts, "lumakey")
	}
	return strings.Join(parts, "|")
}

// Limits are the per-pass hardware maxima a Budget resets to.
type Limits struct {
	Layers   int
	Palettes int
	Procamp  int
	LumaKeys int
	AVS      int
}

// DefaultLimits returns the maxima of the fast-composite kernel.
func DefaultLimits() Limits {
	return Limits{
		Layers:   8,
		Palettes: 2,
		Procamp:  1,
		LumaKeys: 1,
		AVS:      1,
	}
}

// Budget tracks the resources left for the pass being assembled.
//
// Counters only decrease between resets. A counter below zero, or an empty
// sampler mask, means the last layer evaluated does not fit.
//
// Budget is not safe for concurrent use.
type Budget struct {
	limits   Limits
	layers   int
	palettes int
	procamp  int
	lumaKeys int
	avs      int
	samplers SamplerMask
}

// NewBudget creates a budget with the given maxima, reset for hardware
// without an AVS sampler. Call Reset before each selection.
func NewBudget(lim Limits) *Budget {
	b := &Budget{limits: lim}
	b.Reset(false)
	return b
}

// Reset restores every counter to its maximum. Without AVS hardware the
// AVS counter is zero and the luma-key sampler mode is unavailable.
func (b *Budget) Reset(avsSamplerSupported bool) {
	b.layers = b.limits.Layers
	b.palettes = b.limits.Palettes
	b.procamp = b.limits.Procamp
	b.lumaKeys = b.limits.LumaKeys
	if avsSamplerSupported {
		b.avs = b.limits.AVS
		b.SetSamplers(SamplerAll)
	} else {
		b.avs = 0
		b.SetSamplers(SamplerFilters)
	}
}

// Consume decrements the counter for kind by amount.
// The sampler mask is not a counter; use RestrictSamplers for it.
func (b *Budget) Consume(kind ResourceKind, amount int) {
	if p := b.counter(kind); p != nil {
		*p -= amount
	}
}

// Remaining returns the counter for kind. For ResourceSampler it returns
// the number of modes left in the mask.
func (b *Budget) Remaining(kind ResourceKind) int {
	if kind == ResourceSampler {
		n := 0
		for m := b.samplers; m != 0; m &= m - 1 {
			n++
		}
		return n
	}
	if p := b.counter(kind); p != nil {
		return *p
	}
	return 0
}

// Exhausted reports whether kind has been overdrawn.
func (b *Budget) Exhausted(kind ResourceKind) bool {
	if kind == ResourceSampler {
		return b.samplers == 0
	}
	if p := b.counter(kind); p != nil {
		return *p < 0
	}
	return false
}

// Feasible reports whether no resource is exhausted.
func (b *Budget) Feasible() bool {
	for k := ResourceLayers; k <= ResourceSampler; k++ {
		if b.Exhausted(k) {
			return false
		}
	}
	return true
}

// Samplers returns the 3D sampler modes still available.
func (b *Budget) Samplers() SamplerMask {
	return b.samplers
}

// SetSamplers replaces the available modes with mask.
func (b *Budget) SetSamplers(mask SamplerMask) {
	b.samplers = mask
}

// RestrictSamplers intersects the available modes with mask.
func (b *Budget) RestrictSamplers(mask SamplerMask) {
	b.samplers &= mask
}

// Limits returns the maxima the budget resets to.
func (b *Budget) Limits() Limits {
	return b.limits
}

func (b *Budget) counter(kind ResourceKind) *int {
	switch kind {
	case ResourceLayers:
		return &b.layers
	case ResourcePalettes:
		return &b.palettes
	case ResourceProcamp:
		return &b.procamp
	case ResourceLumaKeys:
		return &b.lumaKeys
	case ResourceAVS:
		return &b.avs
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (b *Budget) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("layers", b.layers),
		slog.Int("palettes", b.palettes),
		slog.Int("procamp", b.procamp),
		slog.Int("lumaKeys", b.lumaKeys),
		slog.Int("avs", b.avs),
		slog.String("sampler", b.samplers.String()),
	)
}

func (b *Budget) String() string {
	return fmt.Sprintf("layers=%d palettes=%d procamp=%d lumaKeys=%d avs=%d sampler=%s",
		b.layers, b.palettes, b.procamp, b.lumaKeys, b.avs, b.samplers)
}
