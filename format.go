// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import "strings"

// PixelFormat identifies the memory layout of a surface.
type PixelFormat uint8

// Pixel formats understood by the planner.
const (
	FormatUnknown PixelFormat = iota

	// Packed RGB.
	FormatA8R8G8B8
	FormatX8R8G8B8
	FormatA8B8G8R8
	FormatX8B8G8R8
	FormatR10G10B10A2
	FormatB10G10R10A2
	FormatR5G6B5

	// Palettized.
	FormatP8
	FormatAI44
	FormatIA44

	// Packed YUV 4:2:2.
	FormatYUY2
	FormatYUYV
	FormatYVYU
	FormatUYVY
	FormatVYUY
	FormatY210
	FormatY216

	// Packed YUV 4:4:4.
	FormatAYUV
	FormatY410
	FormatY416

	// Two-plane (semi-planar) YUV.
	FormatNV12
	FormatNV21
	FormatP010
	FormatP016
	FormatP210
	FormatP216

	// Three-plane YUV.
	FormatYV12
	FormatI420
	FormatIYUV
	FormatIMC3
	Format422H
	Format444P

	// Luma only.
	FormatY8
	FormatY16

	formatCount
)

var formatNames = [formatCount]string{
	FormatUnknown:     "Unknown",
	FormatA8R8G8B8:    "A8R8G8B8",
	FormatX8R8G8B8:    "X8R8G8B8",
	FormatA8B8G8R8:    "A8B8G8R8",
	FormatX8B8G8R8:    "X8B8G8R8",
	FormatR10G10B10A2: "R10G10B10A2",
	FormatB10G10R10A2: "B10G10R10A2",
	FormatR5G6B5:      "R5G6B5",
	FormatP8:          "P8",
	FormatAI44:        "AI44",
	FormatIA44:        "IA44",
	FormatYUY2:        "YUY2",
	FormatYUYV:        "YUYV",
	FormatYVYU:        "YVYU",
	FormatUYVY:        "UYVY",
	FormatVYUY:        "VYUY",
	FormatY210:        "Y210",
	FormatY216:        "Y216",
	FormatAYUV:        "AYUV",
	FormatY410:        "Y410",
	FormatY416:        "Y416",
	FormatNV12:        "NV12",
	FormatNV21:        "NV21",
	FormatP010:        "P010",
	FormatP016:        "P016",
	FormatP210:        "P210",
	FormatP216:        "P216",
	FormatYV12:        "YV12",
	FormatI420:        "I420",
	FormatIYUV:        "IYUV",
	FormatIMC3:        "IMC3",
	Format422H:        "422H",
	Format444P:        "444P",
	FormatY8:          "Y8",
	FormatY16:         "Y16",
}

// String returns the conventional name of the format.
func (f PixelFormat) String() string {
	if f < formatCount {
		return formatNames[f]
	}
	return unknownStr
}

// ParseFormat looks up a format by name, ignoring case.
// It returns FormatUnknown and false for unrecognized names.
func ParseFormat(name string) (PixelFormat, bool) {
	for f := FormatUnknown + 1; f < formatCount; f++ {
		if strings.EqualFold(formatNames[f], name) {
			return f, true
		}
	}
	return FormatUnknown, false
}

// ColorPack is the chroma subsampling class of a format.
type ColorPack uint8

// Chroma subsampling classes.
const (
	ColorPackUnknown ColorPack = iota
	ColorPack400
	ColorPack420
	ColorPack422
	ColorPack444
)

// String returns the subsampling ratio, e.g. "4:2:0".
func (c ColorPack) String() string {
	switch c {
	case ColorPack400:
		return "4:0:0"
	case ColorPack420:
		return "4:2:0"
	case ColorPack422:
		return "4:2:2"
	case ColorPack444:
		return "4:4:4"
	default:
		return unknownStr
	}
}

// ColorPack returns the chroma subsampling class of f.
// RGB formats sample color at every pixel and report 4:4:4.
func (f PixelFormat) ColorPack() ColorPack {
	switch f {
	case FormatNV12, FormatNV21, FormatP010, FormatP016,
		FormatYV12, FormatI420, FormatIYUV, FormatIMC3:
		return ColorPack420
	case FormatYUY2, FormatYUYV, FormatYVYU, FormatUYVY, FormatVYUY,
		FormatY210, FormatY216, FormatP210, FormatP216, Format422H:
		return ColorPack422
	case FormatAYUV, FormatY410, FormatY416, Format444P,
		FormatA8R8G8B8, FormatX8R8G8B8, FormatA8B8G8R8, FormatX8B8G8R8,
		FormatR10G10B10A2, FormatB10G10R10A2, FormatR5G6B5:
		return ColorPack444
	case FormatY8, FormatY16:
		return ColorPack400
	default:
		return ColorPackUnknown
	}
}

// IsSemiPlanar reports whether f stores luma and interleaved chroma in two
// planes.
func (f PixelFormat) IsSemiPlanar() bool {
	switch f {
	case FormatNV12, FormatNV21, FormatP010, FormatP016, FormatP210, FormatP216:
		return true
	}
	return false
}

// IsPacked422 reports whether f interleaves 4:2:2 luma and chroma in a
// single plane.
func (f PixelFormat) IsPacked422() bool {
	switch f {
	case FormatYUY2, FormatYUYV, FormatYVYU, FormatUYVY, FormatVYUY, FormatY210, FormatY216:
		return true
	}
	return false
}

// IsThreePlane reports whether f stores Y, U and V in separate planes.
func (f PixelFormat) IsThreePlane() bool {
	switch f {
	case FormatYV12, FormatI420, FormatIYUV, FormatIMC3, Format422H, Format444P:
		return true
	}
	return false
}

// IsPalettized reports whether f indexes a palette.
func (f PixelFormat) IsPalettized() bool {
	return f == FormatP8 || f == FormatAI44 || f == FormatIA44
}

// IsYUV reports whether f carries luma/chroma samples.
func (f PixelFormat) IsYUV() bool {
	switch f.ColorPack() {
	case ColorPack400, ColorPack420, ColorPack422:
		return true
	case ColorPack444:
		return f == FormatAYUV || f == FormatY410 || f == FormatY416 || f == Format444P
	}
	return false
}
