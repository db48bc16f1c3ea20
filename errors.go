// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compose

import (
	"errors"
	"fmt"
)

// Sentinel errors for the compose package.
var (
	// ErrInvalidParameter is returned for malformed input: degenerate
	// rectangles, a transparent layer reaching alpha resolution, an
	// unknown scaling mode, or more admitted layers than the hardware takes.
	ErrInvalidParameter = errors.New("compose: invalid parameter")

	// ErrUnsupported is returned when evaluation is requested for a feature
	// combination the planner does not handle, such as a non-composite engine.
	ErrUnsupported = errors.New("compose: unsupported")
)

// LayerError reports a failure tied to a single layer.
// It unwraps to one of the package sentinel errors.
type LayerError struct {
	Origin int    // origin index of the offending layer
	Op     string // operation that failed
	Err    error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("compose: %s: layer %d: %v", e.Op, e.Origin, e.Err)
}

func (e *LayerError) Unwrap() error {
	return e.Err
}

func layerErr(l *Layer, op string, format string, args ...any) error {
	origin := -1
	if l != nil {
		origin = l.Index.Origin
	}
	return &LayerError{
		Origin: origin,
		Op:     op,
		Err:    fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...),
	}
}
