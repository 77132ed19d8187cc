// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangulate

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(half float32) []math32.Vector2 {
	return []math32.Vector2{
		{X: -half, Y: -half}, {X: half, Y: -half}, {X: half, Y: half}, {X: -half, Y: half},
	}
}

func reversed(pts []math32.Vector2) []math32.Vector2 {
	out := make([]math32.Vector2, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// triAreas sums the signed areas of the output triangles over the
// combined point sequence.
func triAreas(tris []uint32, points []math32.Vector2) float32 {
	var sum float32
	for t := 0; t < len(tris); t += 3 {
		a, b, c := points[tris[t]], points[tris[t+1]], points[tris[t+2]]
		sum += cross2(a, b, c) / 2
	}
	return sum
}

func TestSignedArea(t *testing.T) {
	assert.InDelta(t, 1, SignedArea(square(0.5)), 1.0e-6)
	assert.InDelta(t, -1, SignedArea(reversed(square(0.5))), 1.0e-6)
}

func TestTriangulateSquare(t *testing.T) {
	tris, err := Triangulate(square(0.5))
	require.NoError(t, err)
	assert.Len(t, tris, 6)
	// CCW input yields CCW triangles covering the full area
	assert.InDelta(t, 1, triAreas(tris, square(0.5)), 1.0e-5)
}

func TestTriangulateClockwise(t *testing.T) {
	outer := reversed(square(0.5))
	tris, err := Triangulate(outer)
	require.NoError(t, err)
	assert.Len(t, tris, 6)
	// CW input yields CW triangles
	assert.InDelta(t, -1, triAreas(tris, outer), 1.0e-5)
}

func TestTriangulateConcave(t *testing.T) {
	// L shape
	outer := []math32.Vector2{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
	}
	tris, err := Triangulate(outer)
	require.NoError(t, err)
	assert.Len(t, tris, 4*3)
	assert.InDelta(t, 3, triAreas(tris, outer), 1.0e-5)
}

func TestTriangulateWithHole(t *testing.T) {
	outer := square(0.5)
	hole := reversed(square(0.2))
	tris, err := Triangulate(outer, hole)
	require.NoError(t, err)

	// n + 2k - 2 triangles for n boundary points and k holes
	assert.Len(t, tris, 8*3)
	all := append(append([]math32.Vector2{}, outer...), hole...)
	assert.InDelta(t, 1-0.16, triAreas(tris, all), 1.0e-5)

	// indices address the concatenated outer-then-holes sequence
	for _, ix := range tris {
		assert.Less(t, int(ix), len(all))
	}
}

func TestTriangulateTwoHoles(t *testing.T) {
	outer := square(1)
	h1 := reversed(square(0.2))
	h2 := make([]math32.Vector2, 4)
	for i, p := range reversed(square(0.15)) {
		h2[i] = math32.Vec2(p.X+0.5, p.Y+0.5)
	}
	tris, err := Triangulate(outer, h1, h2)
	require.NoError(t, err)
	assert.Len(t, tris, (4+4+4+2*2-2)*3)

	all := append(append(append([]math32.Vector2{}, outer...), h1...), h2...)
	assert.InDelta(t, 4-0.16-0.09, triAreas(tris, all), 1.0e-4)
}

func TestTriangulateCollinearPoint(t *testing.T) {
	// a redundant point on an edge is dropped without emitting a
	// degenerate triangle
	outer := []math32.Vector2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	}
	tris, err := Triangulate(outer)
	require.NoError(t, err)
	assert.InDelta(t, 4, triAreas(tris, outer), 1.0e-5)
	for t2 := 0; t2 < len(tris); t2 += 3 {
		a, b, c := outer[tris[t2]], outer[tris[t2+1]], outer[tris[t2+2]]
		assert.Greater(t, cross2(a, b, c), float32(0))
	}
}

func TestTriangulateErrors(t *testing.T) {
	_, err := Triangulate(square(0.5)[:2])
	assert.ErrorIs(t, err, ErrTooFewPoints)

	dup := []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	_, err = Triangulate(dup)
	assert.ErrorIs(t, err, ErrDegenerateEdge)

	line := []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	_, err = Triangulate(line)
	assert.ErrorIs(t, err, ErrZeroArea)

	bow := []math32.Vector2{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 1}}
	_, err = Triangulate(bow)
	assert.ErrorIs(t, err, ErrSelfIntersection)

	// hole entirely outside
	far := make([]math32.Vector2, 4)
	for i, p := range reversed(square(0.1)) {
		far[i] = math32.Vec2(p.X+5, p.Y)
	}
	_, err = Triangulate(square(0.5), far)
	assert.ErrorIs(t, err, ErrHoleOutside)

	// hole crossing the boundary
	straddle := make([]math32.Vector2, 4)
	for i, p := range reversed(square(0.2)) {
		straddle[i] = math32.Vec2(p.X+0.45, p.Y)
	}
	_, err = Triangulate(square(0.5), straddle)
	assert.ErrorIs(t, err, ErrHoleOutside)

	// overlapping holes
	_, err = Triangulate(square(1), reversed(square(0.3)), reversed(square(0.2)))
	assert.ErrorIs(t, err, ErrHoleOutside)

	// hole zero area
	flat := []math32.Vector2{{X: 0, Y: 0}, {X: 0.1, Y: 0}, {X: 0.2, Y: 0}}
	_, err = Triangulate(square(0.5), flat)
	assert.ErrorIs(t, err, ErrZeroArea)
}

func TestTriangulateDeterministic(t *testing.T) {
	outer := square(0.5)
	hole := reversed(square(0.2))
	a, err := Triangulate(outer, hole)
	require.NoError(t, err)
	b, err := Triangulate(outer, hole)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
