// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/go3dkit/shape/triangulate"

	"cogentcore.org/core/math32"
)

// Polygon is a flat filled polygon mesh bounded by an arbitrary simple
// loop of points, with optional hole loops cut out of the interior.
// The points can live on any plane in 3D; a best-fit plane is computed
// and the boundary is triangulated on it, using only the given points.
// The face normal follows the winding of the outer loop by the
// right-hand rule.
type Polygon struct {

	// the boundary points of the polygon, in order around the loop
	Points []math32.Vector3

	// optional hole loops fully contained inside the boundary,
	// each wound opposite to the outer loop
	Holes [][]math32.Vector3
}

// NewPolygon returns a Polygon with the given boundary points.
func NewPolygon(points []math32.Vector3) *Polygon {
	pl := &Polygon{Points: points}
	return pl
}

// NewRegularPolygon returns a regular n-gon of the given circumradius
// in the XY plane, counter-clockwise when viewed from +Z, with the
// first point on the +X axis.
func NewRegularPolygon(radius float32, n int) *Polygon {
	pts := make([]math32.Vector3, n)
	for i := 0; i < n; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(n)
		pts[i] = math32.Vec3(radius*math32.Cos(theta), radius*math32.Sin(theta), 0)
	}
	return NewPolygon(pts)
}

func (pl *Polygon) Defaults() {}

func (pl *Polygon) Validate() error {
	if len(pl.Points) < 3 {
		return &ParamError{Shape: "Polygon", Param: "Points", Value: len(pl.Points), Constraint: "at least 3 boundary points"}
	}
	for hi, hole := range pl.Holes {
		if len(hole) < 3 {
			return &ParamError{Shape: "Polygon", Param: "Holes", Value: hi, Constraint: "each hole needs at least 3 points"}
		}
	}
	return nil
}

// Mesh triangulates the polygon into a flat mesh. Vertices appear in
// input order, outer boundary first and then each hole, so the caller
// can correlate mesh vertices with its own points. All vertices share
// the face normal. Texture coordinates span the bounding rectangle of
// the projected boundary.
func (pl *Polygon) Mesh() (*MeshData, error) {
	if err := pl.Validate(); err != nil {
		return nil, err
	}
	norm, ok := newellNormal(pl.Points)
	if !ok {
		return nil, &GeometryError{Shape: "Polygon", Err: triangulate.ErrZeroArea}
	}
	uAxis, vAxis := planeBasis(norm)

	outer := projectLoop(pl.Points, uAxis, vAxis)
	holes := make([][]math32.Vector2, len(pl.Holes))
	nv := len(pl.Points)
	for hi, hole := range pl.Holes {
		holes[hi] = projectLoop(hole, uAxis, vAxis)
		nv += len(hole)
	}

	tris, err := triangulate.Triangulate(outer, holes...)
	if err != nil {
		return nil, &GeometryError{Shape: "Polygon", Err: err}
	}

	// texture coordinates from the projected bounding rectangle
	min := math32.Vec2(math32.Infinity, math32.Infinity)
	max := min.Negate()
	for _, p := range outer {
		min.SetMin(p)
		max.SetMax(p)
	}
	span := max.Sub(min)
	if span.X < 1.0e-7 {
		span.X = 1
	}
	if span.Y < 1.0e-7 {
		span.Y = 1
	}

	md := NewMeshData(nv, len(tris))
	vi := 0
	addLoop := func(pts []math32.Vector3, uv []math32.Vector2) {
		for i, p := range pts {
			u := (uv[i].X - min.X) / span.X
			v := (uv[i].Y - min.Y) / span.Y
			md.setVertex(vi, p, norm, u, v)
			vi++
		}
	}
	addLoop(pl.Points, outer)
	for hi, hole := range pl.Holes {
		addLoop(hole, holes[hi])
	}
	md.Index.Set(0, tris...)
	return md, nil
}

// newellNormal computes the unit normal of the best-fit plane of the
// loop using Newell's method, oriented by the loop's winding. ok is
// false when the loop has no measurable area.
func newellNormal(points []math32.Vector3) (norm math32.Vector3, ok bool) {
	n := len(points)
	for i := 0; i < n; i++ {
		c, x := points[i], points[(i+1)%n]
		norm.X += (c.Y - x.Y) * (c.Z + x.Z)
		norm.Y += (c.Z - x.Z) * (c.X + x.X)
		norm.Z += (c.X - x.X) * (c.Y + x.Y)
	}
	if norm.Length() < 1.0e-7 {
		return norm, false
	}
	return norm.Normal(), true
}

// planeBasis returns orthonormal in-plane axes u, v with u cross v
// equal to norm, so that counter-clockwise in (u,v) coordinates is
// counter-clockwise around norm.
func planeBasis(norm math32.Vector3) (uAxis, vAxis math32.Vector3) {
	uAxis = leastParallelAxis(norm)
	uAxis.SetAdd(norm.MulScalar(-uAxis.Dot(norm)))
	uAxis = uAxis.Normal()
	vAxis = norm.Cross(uAxis)
	return
}

// projectLoop maps 3D loop points into plane coordinates.
func projectLoop(points []math32.Vector3, uAxis, vAxis math32.Vector3) []math32.Vector2 {
	out := make([]math32.Vector2, len(points))
	for i, p := range points {
		out[i] = math32.Vec2(p.Dot(uAxis), p.Dot(vAxis))
	}
	return out
}
