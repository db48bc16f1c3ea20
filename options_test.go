package compose

import (
	"log/slog"
	"testing"
)

// TestDefaultOptions tests the planner defaults.
func TestDefaultOptions(t *testing.T) {
	o := buildOptions(nil)

	if !o.forceBilinear {
		t.Error("forceBilinear = false, want true by default")
	}
	if o.limits != DefaultLimits() {
		t.Errorf("limits = %+v, want %+v", o.limits, DefaultLimits())
	}
	if o.logger != nil {
		t.Error("logger should default to nil (package logger)")
	}
	if o.log() != Logger() {
		t.Error("log() should fall back to the package logger")
	}
}

// TestOptionsApplyInOrder tests that later options win.
func TestOptionsApplyInOrder(t *testing.T) {
	o := buildOptions([]Option{
		WithForceBilinear(false),
		WithForceBilinear(true),
		WithForceBilinear(false),
	})
	if o.forceBilinear {
		t.Error("forceBilinear = true, want the last option to win")
	}
}

// TestWithLimits tests that limits reach the planner budget.
func TestWithLimits(t *testing.T) {
	lim := Limits{Layers: 4, Palettes: 1, Procamp: 2, LumaKeys: 0, AVS: 3}
	p := NewPlanner(Caps{}, WithLimits(lim))

	if got := p.limits(); got != lim {
		t.Errorf("limits() = %+v, want %+v", got, lim)
	}

	p = NewPlanner(Caps{MaxInputLayers: 2}, WithLimits(lim))
	want := lim
	want.Layers = 2
	if got := p.limits(); got != want {
		t.Errorf("capped limits() = %+v, want %+v", got, want)
	}
}

// TestWithLogger tests that a planner logger does not leak to the package.
func TestWithLogger(t *testing.T) {
	l := slog.New(nopHandler{})
	o := buildOptions([]Option{WithLogger(l)})
	if o.log() != l {
		t.Error("log() did not return the injected logger")
	}

	o = buildOptions([]Option{WithLogger(l), WithLogger(nil)})
	if o.log() != Logger() {
		t.Error("WithLogger(nil) should restore the package logger")
	}
}

// TestNewPlannerCaps tests that the planner keeps its capabilities.
func TestNewPlannerCaps(t *testing.T) {
	caps := Caps{AVSSampler: true, ScalingErratum: true, MaxInputLayers: 8}
	p := NewPlanner(caps)
	if p.Caps() != caps {
		t.Errorf("Caps() = %+v, want %+v", p.Caps(), caps)
	}
}
