package compose

import "testing"

func TestBudgetReset(t *testing.T) {
	tests := []struct {
		name     string
		avs      bool
		wantAVS  int
		wantMask SamplerMask
	}{
		{"with AVS sampler", true, 1, SamplerAll},
		{"without AVS sampler", false, 0, SamplerFilters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBudget(DefaultLimits())
			b.Consume(ResourceLayers, 5)
			b.RestrictSamplers(SamplerNearest)

			b.Reset(tt.avs)

			if got := b.Remaining(ResourceLayers); got != 8 {
				t.Errorf("layers = %d, want 8", got)
			}
			if got := b.Remaining(ResourcePalettes); got != 2 {
				t.Errorf("palettes = %d, want 2", got)
			}
			if got := b.Remaining(ResourceProcamp); got != 1 {
				t.Errorf("procamp = %d, want 1", got)
			}
			if got := b.Remaining(ResourceLumaKeys); got != 1 {
				t.Errorf("lumaKeys = %d, want 1", got)
			}
			if got := b.Remaining(ResourceAVS); got != tt.wantAVS {
				t.Errorf("avs = %d, want %d", got, tt.wantAVS)
			}
			if got := b.Samplers(); got != tt.wantMask {
				t.Errorf("Samplers() = %v, want %v", got, tt.wantMask)
			}
			if !b.Feasible() {
				t.Error("fresh budget should be feasible")
			}
		})
	}
}

func TestBudgetConsumeExhausts(t *testing.T) {
	kinds := []ResourceKind{ResourceLayers, ResourcePalettes, ResourceProcamp, ResourceLumaKeys, ResourceAVS}
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			b := NewBudget(DefaultLimits())
			b.Reset(true)

			n := b.Remaining(kind)
			b.Consume(kind, n)
			if b.Exhausted(kind) {
				t.Fatalf("Exhausted(%v) = true at zero", kind)
			}
			b.Consume(kind, 1)
			if !b.Exhausted(kind) {
				t.Errorf("Exhausted(%v) = false at -1", kind)
			}
			if b.Feasible() {
				t.Error("Feasible() = true with an overdrawn counter")
			}
		})
	}
}

func TestBudgetSamplerMask(t *testing.T) {
	b := NewBudget(DefaultLimits())
	b.Reset(true)

	if got := b.Remaining(ResourceSampler); got != 3 {
		t.Errorf("Remaining(sampler) = %d, want 3", got)
	}

	b.RestrictSamplers(SamplerFilters)
	if got := b.Samplers(); got != SamplerFilters {
		t.Errorf("after restrict: %v, want %v", got, SamplerFilters)
	}

	// Consume does not touch the mask.
	b.Consume(ResourceSampler, 1)
	if got := b.Samplers(); got != SamplerFilters {
		t.Errorf("Consume(sampler) changed mask to %v", got)
	}

	b.RestrictSamplers(SamplerLumaKey)
	if !b.Exhausted(ResourceSampler) {
		t.Error("empty mask should be exhausted")
	}
	if b.Feasible() {
		t.Error("Feasible() = true with an empty sampler mask")
	}
}

func TestBudgetLayerLimit(t *testing.T) {
	lim := DefaultLimits()
	lim.Layers = 3
	b := NewBudget(lim)
	b.Reset(false)
	if got := b.Remaining(ResourceLayers); got != 3 {
		t.Errorf("layers = %d, want 3", got)
	}
	if got := b.Limits(); got != lim {
		t.Errorf("Limits() = %+v, want %+v", got, lim)
	}
}

func TestSamplerMaskString(t *testing.T) {
	tests := []struct {
		mask SamplerMask
		want string
	}{
		{0, "none"},
		{SamplerNearest, "nearest"},
		{SamplerFilters, "nearest|bilinear"},
		{SamplerAll, "nearest|bilinear|lumakey"},
		{SamplerLumaKey, "lumakey"},
	}
	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("SamplerMask(%d).String() = %q, want %q", tt.mask, got, tt.want)
		}
	}
}

func TestBudgetSetSamplers(t *testing.T) {
	b := NewBudget(DefaultLimits())
	b.RestrictSamplers(0)
	if !b.Exhausted(ResourceSampler) {
		t.Fatal("mask should be empty")
	}

	b.SetSamplers(SamplerBilinear | SamplerLumaKey)
	if got := b.Samplers(); got != SamplerBilinear|SamplerLumaKey {
		t.Errorf("Samplers() = %v, want bilinear|lumakey", got)
	}
	if !b.Feasible() {
		t.Error("Feasible() = false after SetSamplers")
	}
}
