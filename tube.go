// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Tube is a tube swept along an arbitrary 3D polyline curve.
// A rotation-minimizing frame is propagated along the curve so straight
// or gently curving runs carry no twist; see [Frame].
type Tube struct {

	// ordered curve points; at least 2, no duplicate consecutive points
	Points []math32.Vector3

	// radius of the tube cross-section
	Radius float32

	// number of segments around the tube; at least 3
	RadialSegs int `min:"3"`

	// optional per-point radius override for tapered tubes;
	// when non-nil must have one entry per curve point
	Radii []float32
}

// NewTube returns a Tube along the given points with a uniform radius.
func NewTube(points []math32.Vector3, radius float32, radialSegs int) *Tube {
	return &Tube{Points: points, Radius: radius, RadialSegs: radialSegs}
}

func (tb *Tube) Defaults() {
	tb.Radius = 0.05
	tb.RadialSegs = 16
}

// Validate checks the parameters against their documented constraints.
// Duplicate consecutive points are a [DegeneracyError], detected during
// frame propagation in [Tube.Mesh]; everything else is checked here.
func (tb *Tube) Validate() error {
	if len(tb.Points) < 2 {
		return &ParamError{Shape: "Tube", Param: "Points", Value: len(tb.Points), Constraint: "at least 2 curve points"}
	}
	if tb.RadialSegs < 3 {
		return &ParamError{Shape: "Tube", Param: "RadialSegs", Value: tb.RadialSegs, Constraint: ">= 3"}
	}
	if tb.Radii != nil && len(tb.Radii) != len(tb.Points) {
		return &ParamError{Shape: "Tube", Param: "Radii", Value: len(tb.Radii), Constraint: "one radius per curve point"}
	}
	if tb.Radii == nil {
		if tb.Radius <= 0 {
			return &ParamError{Shape: "Tube", Param: "Radius", Value: tb.Radius, Constraint: "> 0"}
		}
		return nil
	}
	for i, r := range tb.Radii {
		if r <= 0 {
			return &ParamError{Shape: "Tube", Param: "Radii", Value: i, Constraint: "> 0 at every point"}
		}
	}
	return nil
}

// radius returns the tube radius at curve point i.
func (tb *Tube) radius(i int) float32 {
	if tb.Radii != nil {
		return tb.Radii[i]
	}
	return tb.Radius
}

// Mesh generates the mesh buffers for the tube.
//
// One ring of RadialSegs+1 vertices is emitted at every curve point in
// the plane spanned by the local frame's normal and binormal, the last
// vertex duplicating the first position to close the texture seam
// (u runs along the curve, v around the ring). Normals point
// radially outward in the local frame. Consecutive rings are connected
// with CCW quad strips. When the curve is closed (first and last points
// coincide), the propagated frames are re-aligned so the join carries no
// twist.
func (tb *Tube) Mesh() (*MeshData, error) {
	if err := tb.Validate(); err != nil {
		return nil, err
	}

	frames, err := curveFrames(tb.Points)
	if err != nil {
		return nil, err
	}
	n := len(frames)
	if tb.Points[0].Sub(tb.Points[n-1]).Length() < zeroLengthTol {
		alignClosedFrames(frames)
	}

	rs := tb.RadialSegs
	md := NewMeshData(n*(rs+1), (n-1)*rs*6)

	vi := 0
	for j, f := range frames {
		radius := tb.radius(j)
		v := float32(j) / float32(n-1)
		for i := 0; i <= rs; i++ {
			theta := float32(i) / float32(rs) * 2 * math32.Pi
			norm := f.Normal.MulScalar(math32.Cos(theta)).Add(f.Binormal.MulScalar(math32.Sin(theta)))
			pt := f.Origin.Add(norm.MulScalar(radius))
			md.setVertex(vi, pt, norm, v, float32(i)/float32(rs))
			vi++
		}
	}

	ii := 0
	for j := 0; j < n-1; j++ {
		for i := 0; i < rs; i++ {
			ll := uint32(j*(rs+1) + i)
			lr := uint32(j*(rs+1) + i + 1)
			ur := uint32((j+1)*(rs+1) + i + 1)
			ul := uint32((j+1)*(rs+1) + i)
			setQuad(md.Index, ii, ll, lr, ur, ul)
			ii += 6
		}
	}
	return md, nil
}
