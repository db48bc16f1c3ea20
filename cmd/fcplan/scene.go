package main

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/gogpu/compose"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// scene is the JSON description of one frame to composite.
type scene struct {
	Target  targetDesc  `json:"target"`
	Sources []layerDesc `json:"sources"`
}

type targetDesc struct {
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Format    string         `json:"format"`
	Fill      *fillDesc      `json:"fill,omitempty"`
	CompAlpha *compAlphaDesc `json:"compAlpha,omitempty"`
}

type fillDesc struct {
	Color string  `json:"color"` // "#rrggbb"
	Alpha float32 `json:"alpha"`
}

type compAlphaDesc struct {
	Alpha     float32 `json:"alpha"`
	Calculate bool    `json:"calculate"`
}

type layerDesc struct {
	Src         [4]int    `json:"src"` // left, top, right, bottom
	Dst         [4]int    `json:"dst"`
	MaxSrc      *[4]int   `json:"maxSrc,omitempty"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Format      string    `json:"format"`
	SampleType  string    `json:"sampleType,omitempty"`
	Surface     string    `json:"surface,omitempty"`
	Rotation    string    `json:"rotation,omitempty"`
	Palette     bool      `json:"palette,omitempty"`
	Scaling     *scaling  `json:"scaling,omitempty"`
	Deinterlace bool      `json:"deinterlace,omitempty"`
	LumaKey     *[2]int16 `json:"lumaKey,omitempty"`
	Blend       *blend    `json:"blend,omitempty"`
	Procamp     bool      `json:"procamp,omitempty"`
}

type scaling struct {
	Mode       string `json:"mode"`
	Interlaced bool   `json:"interlaced,omitempty"`
	FieldWeave bool   `json:"fieldWeave,omitempty"`
}

type blend struct {
	Type  string  `json:"type"`
	Alpha float32 `json:"alpha"`
}

func decodeScene(r io.Reader) (*scene, error) {
	var sc scene
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &sc, nil
}

// layers converts the scene into planner layers.
func (sc *scene) layers() (sources []*compose.Layer, target *compose.Layer, err error) {
	target, err = sc.Target.layer()
	if err != nil {
		return nil, nil, fmt.Errorf("target: %w", err)
	}
	for i := range sc.Sources {
		l, err := sc.Sources[i].layer()
		if err != nil {
			return nil, nil, fmt.Errorf("source %d: %w", i, err)
		}
		sources = append(sources, l)
	}
	return sources, target, nil
}

func (t *targetDesc) layer() (*compose.Layer, error) {
	f, ok := compose.ParseFormat(t.Format)
	if !ok {
		return nil, fmt.Errorf("unknown format %q", t.Format)
	}
	l := &compose.Layer{
		Surface: compose.Surface{
			Dst:    image.Rect(0, 0, t.Width, t.Height),
			Width:  t.Width,
			Height: t.Height,
			Format: f,
			Type:   compose.SurfaceRenderTarget,
		},
	}
	if t.Fill != nil {
		c, err := colorful.Hex(t.Fill.Color)
		if err != nil {
			return nil, fmt.Errorf("fill color: %w", err)
		}
		l.ColorFill = &compose.ColorFill{Color: c, Alpha: t.Fill.Alpha}
	}
	if t.CompAlpha != nil {
		l.CompAlpha = &compose.CompAlpha{
			Mode:      compose.AlphaFillConstant,
			Alpha:     t.CompAlpha.Alpha,
			Calculate: t.CompAlpha.Calculate,
		}
	}
	return l, nil
}

func (d *layerDesc) layer() (*compose.Layer, error) {
	f, ok := compose.ParseFormat(d.Format)
	if !ok {
		return nil, fmt.Errorf("unknown format %q", d.Format)
	}
	l := &compose.Layer{
		Surface: compose.Surface{
			Src:    rect(d.Src),
			Dst:    rect(d.Dst),
			Width:  d.Width,
			Height: d.Height,
			Format: f,
		},
	}
	if d.MaxSrc != nil {
		l.Surface.MaxSrc = rect(*d.MaxSrc)
	} else {
		l.Surface.MaxSrc = l.Surface.Src
	}

	var err error
	if l.Surface.SampleType, err = lookup(d.SampleType, compose.SampleProgressive); err != nil {
		return nil, fmt.Errorf("sample type: %w", err)
	}
	if l.Surface.Type, err = lookup(d.Surface, compose.SurfacePrimary); err != nil {
		return nil, fmt.Errorf("surface type: %w", err)
	}
	if l.Rotation, err = lookup(d.Rotation, compose.RotationIdentity); err != nil {
		return nil, fmt.Errorf("rotation: %w", err)
	}
	if d.Palette {
		l.Surface.Palette = compose.Palette{Type: compose.PaletteARGB, Entries: 256}
	}
	if d.Scaling != nil {
		m, err := lookup(d.Scaling.Mode, compose.ScalingNearest)
		if err != nil {
			return nil, fmt.Errorf("scaling mode: %w", err)
		}
		l.Scaling = &compose.Scaling{Mode: m}
		switch {
		case d.Scaling.FieldWeave:
			l.Scaling.Interlaced = compose.InterlacedScalingFieldToInterleaved
		case d.Scaling.Interlaced:
			l.Scaling.Interlaced = compose.InterlacedScalingInterleavedToInterleaved
		}
	}
	if d.Deinterlace {
		l.Deinterlace = &compose.Deinterlace{Enabled: true, SampleTypeInput: l.Surface.SampleType}
	}
	if d.LumaKey != nil {
		l.LumaKey = &compose.LumaKey{Low: d.LumaKey[0], High: d.LumaKey[1]}
	}
	if d.Blend != nil {
		bt, err := lookup(d.Blend.Type, compose.BlendNone)
		if err != nil {
			return nil, fmt.Errorf("blend type: %w", err)
		}
		l.Blending = &compose.Blending{Type: bt, Alpha: d.Blend.Alpha}
	}
	if d.Procamp {
		l.Procamp = &compose.Procamp{Enabled: true, Contrast: 1, Saturation: 1}
	}
	return l, nil
}

// rect keeps the edges as given; image.Rect would swap inverted ones.
func rect(r [4]int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(r[0], r[1]), Max: image.Pt(r[2], r[3])}
}

// enum is a compose enumeration with a String method and a small range.
type enum interface {
	~uint8
	String() string
}

// lookup finds the enum value whose String matches name, ignoring case.
// An empty name yields def.
func lookup[T enum](name string, def T) (T, error) {
	if name == "" {
		return def, nil
	}
	for v := 0; v < 256; v++ {
		s := T(v).String()
		if s != "Unknown" && strings.EqualFold(s, name) {
			return T(v), nil
		}
	}
	return def, fmt.Errorf("unknown value %q", name)
}
