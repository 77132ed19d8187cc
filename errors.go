// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "fmt"

// ParamError reports a shape parameter that violates its documented
// constraint, e.g. a segment count below the minimum or a non-positive
// radius. Generators return it instead of clamping or guessing.
type ParamError struct {

	// Shape is the shape kind, e.g. "Cylinder".
	Shape string

	// Param is the offending parameter name.
	Param string

	// Value is the rejected value.
	Value any

	// Constraint describes the violated constraint, e.g. ">= 3".
	Constraint string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("shape: %s.%s = %v violates constraint: must be %s", e.Shape, e.Param, e.Value, e.Constraint)
}

// GeometryError reports malformed geometric input data, such as a
// self-intersecting polygon boundary or a hole outside the outer loop.
// Unlike [ParamError] it arises from inspecting the data itself,
// not just its shape.
type GeometryError struct {

	// Shape is the shape kind, e.g. "Polygon".
	Shape string

	// Err is the underlying cause.
	Err error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("shape: %s has malformed geometry: %v", e.Shape, e.Err)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

// DegeneracyError reports a numerical degeneracy encountered during
// generation, such as a zero-length tangent between duplicate consecutive
// curve points. It is reported rather than silently replaced by an
// arbitrary frame, which would produce a twisted or collapsed surface.
type DegeneracyError struct {

	// Shape is the shape kind, e.g. "Tube".
	Shape string

	// Index is the input point index at which the degeneracy occurred.
	Index int

	// Reason describes the degeneracy.
	Reason string
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("shape: %s degenerate at point %d: %s", e.Shape, e.Index, e.Reason)
}
