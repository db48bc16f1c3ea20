package compose

import (
	"errors"
	"math"
	"testing"
)

func TestResolveAlpha(t *testing.T) {
	tests := []struct {
		name      string
		blend     *Blending
		want      uint8
		wantType  BlendType
		wantAlpha float32
	}{
		{"no blending", nil, 255, 0, 0},
		{"source blend ignores alpha", &Blending{Type: BlendSource, Alpha: 0.3}, 255, BlendSource, 0.3},
		{"half", &Blending{Type: BlendConstant, Alpha: 0.5}, 128, BlendConstant, 0.5},
		{"quarter", &Blending{Type: BlendConstantPartial, Alpha: 0.25}, 64, BlendConstantPartial, 0.25},
		{"just below opaque", &Blending{Type: BlendConstantSource, Alpha: 0.998}, 254, BlendConstantSource, 0.998},
		{"rounds to opaque", &Blending{Type: BlendConstant, Alpha: 0.999}, 255, BlendNone, 1},
		{"opaque constant", &Blending{Type: BlendConstant, Alpha: 1}, 255, BlendNone, 1},
		{"opaque constant source", &Blending{Type: BlendConstantSource, Alpha: 1.2}, 255, BlendSource, 1},
		{"opaque constant partial", &Blending{Type: BlendConstantPartial, Alpha: 1}, 255, BlendSource, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := unityLayer(8, 8)
			l.Blending = tt.blend

			got, err := ResolveAlpha(l)
			if err != nil {
				t.Fatalf("ResolveAlpha() = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveAlpha() = %d, want %d", got, tt.want)
			}
			if tt.blend == nil {
				return
			}
			if l.Blending.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", l.Blending.Type, tt.wantType)
			}
			if l.Blending.Alpha != tt.wantAlpha {
				t.Errorf("Alpha = %v, want %v", l.Blending.Alpha, tt.wantAlpha)
			}
		})
	}
}

func TestResolveAlphaTransparent(t *testing.T) {
	for _, a := range []float32{0, -0.5, float32(math.NaN())} {
		l := unityLayer(8, 8)
		l.Index.Origin = 2
		l.Blending = &Blending{Type: BlendConstant, Alpha: a}

		_, err := ResolveAlpha(l)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("alpha %v: err = %v, want ErrInvalidParameter", a, err)
		}
		var le *LayerError
		if !errors.As(err, &le) || le.Origin != 2 || le.Op != "alpha" {
			t.Errorf("alpha %v: err = %v, want alpha LayerError for layer 2", a, err)
		}
	}
}

func TestResolveAlphaIdempotent(t *testing.T) {
	l := unityLayer(8, 8)
	l.Blending = &Blending{Type: BlendConstantPartial, Alpha: 1}

	for i := range 2 {
		got, err := ResolveAlpha(l)
		if err != nil || got != 255 {
			t.Fatalf("call %d: ResolveAlpha() = %d, %v", i, got, err)
		}
	}
	if l.Blending.Type != BlendSource {
		t.Errorf("Type = %v, want Source", l.Blending.Type)
	}
}
