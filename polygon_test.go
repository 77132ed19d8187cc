// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/go3dkit/shape/triangulate"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func xySquare(half float32) []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(-half, -half, 0),
		math32.Vec3(half, -half, 0),
		math32.Vec3(half, half, 0),
		math32.Vec3(-half, half, 0),
	}
}

func TestPolygonSquare(t *testing.T) {
	pg := NewPolygon(xySquare(0.5))
	md, err := pg.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)
	checkWinding(t, md)

	assert.Equal(t, 4, md.NumVertex())
	assert.Equal(t, 2, md.NumTris())
	assert.InDelta(t, 1, surfaceArea(md), 1.0e-6)

	// CCW in XY faces +Z, by the right-hand rule
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 1, md.Norm(i).Z, 1.0e-6)
	}
	// vertices stay in input order
	for i, p := range pg.Points {
		assert.Equal(t, p, md.Pos(i))
	}
}

func TestPolygonClockwiseFacesDown(t *testing.T) {
	pts := xySquare(0.5)
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	md, err := NewPolygon(pts).Mesh()
	require.NoError(t, err)
	checkWinding(t, md)
	assert.InDelta(t, -1, md.Norm(0).Z, 1.0e-6)
}

func TestPolygonWithHole(t *testing.T) {
	pg := NewPolygon(xySquare(0.5))
	hole := xySquare(0.2)
	// hole wound opposite to the boundary
	for i, j := 0, len(hole)-1; i < j; i, j = i+1, j-1 {
		hole[i], hole[j] = hole[j], hole[i]
	}
	pg.Holes = [][]math32.Vector3{hole}

	md, err := pg.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)
	checkWinding(t, md)

	assert.Equal(t, 8, md.NumVertex())
	assert.Equal(t, 8, md.NumTris())
	assert.InDelta(t, 1-0.16, surfaceArea(md), 1.0e-5)
}

func TestPolygonNonPlanar(t *testing.T) {
	pts := xySquare(0.5)
	pts[2].Z = 0.1 // slight bend: triangulated on the best-fit plane
	md, err := NewPolygon(pts).Mesh()
	require.NoError(t, err)
	checkMesh(t, md)
	assert.Equal(t, 4, md.NumVertex())
	assert.Equal(t, 2, md.NumTris())
	// positions are the input points, not their plane projections
	assert.Equal(t, pts[2], md.Pos(2))
}

func TestRegularPolygon(t *testing.T) {
	pg := NewRegularPolygon(1, 6)
	md, err := pg.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)
	checkWinding(t, md)

	assert.Equal(t, 6, md.NumVertex())
	assert.Equal(t, 4, md.NumTris())
	// area of a regular hexagon with unit circumradius
	assert.InDelta(t, 3*math32.Sqrt(3)/2, surfaceArea(md), 1.0e-4)
}

func TestPolygonTexCoords(t *testing.T) {
	md, err := NewPolygon(xySquare(0.5)).Mesh()
	require.NoError(t, err)

	// texture coordinates span the bounding rectangle
	for i := 0; i < md.NumVertex(); i++ {
		uv := md.Tex(i)
		assert.GreaterOrEqual(t, uv.X, float32(0))
		assert.LessOrEqual(t, uv.X, float32(1))
		assert.GreaterOrEqual(t, uv.Y, float32(0))
		assert.LessOrEqual(t, uv.Y, float32(1))
	}
}

func TestPolygonErrors(t *testing.T) {
	_, err := NewPolygon(xySquare(0.5)[:2]).Mesh()
	var perr *ParamError
	require.ErrorAs(t, err, &perr)

	// self-intersecting bowtie (asymmetric so it still has net area)
	bow := []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(2, 2, 0),
		math32.Vec3(2, 0, 0), math32.Vec3(0, 1, 0),
	}
	_, err = NewPolygon(bow).Mesh()
	var gerr *GeometryError
	require.ErrorAs(t, err, &gerr)
	assert.ErrorIs(t, err, triangulate.ErrSelfIntersection)

	// hole outside the boundary
	pg := NewPolygon(xySquare(0.5))
	out := xySquare(0.2)
	for i := range out {
		out[i].X += 5
	}
	pg.Holes = [][]math32.Vector3{out}
	_, err = pg.Mesh()
	assert.ErrorIs(t, err, triangulate.ErrHoleOutside)

	// all points collinear: no plane to triangulate on
	line := []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(2, 0, 0),
	}
	_, err = NewPolygon(line).Mesh()
	assert.ErrorIs(t, err, triangulate.ErrZeroArea)
}

func TestPolygonDeterministic(t *testing.T) {
	pg := NewPolygon(xySquare(0.5))
	hole := xySquare(0.1)
	for i, j := 0, len(hole)-1; i < j; i, j = i+1, j-1 {
		hole[i], hole[j] = hole[j], hole[i]
	}
	pg.Holes = [][]math32.Vector3{hole}

	a, err := pg.Mesh()
	require.NoError(t, err)
	b, err := pg.Mesh()
	require.NoError(t, err)
	assert.Equal(t, a.Index, b.Index)
	assert.Equal(t, a.Vertex, b.Vertex)
}
