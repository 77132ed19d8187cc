// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTubeStraight(t *testing.T) {
	points := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(0, 0, 1),
		math32.Vec3(0, 0, 2),
	}
	tb := NewTube(points, 0.25, 8)
	md, err := tb.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)
	checkWinding(t, md)

	assert.Equal(t, 3*9, md.NumVertex())
	assert.Equal(t, 2*8*2, md.NumTris())

	// a straight run carries no twist: every ring is a translate of the
	// first
	for j := 1; j < 3; j++ {
		for i := 0; i <= 8; i++ {
			want := md.Pos(i).Sub(points[0]).Add(points[j])
			got := md.Pos(j*9 + i)
			assert.InDelta(t, 0, got.Sub(want).Length(), 1.0e-6, "ring %d vertex %d", j, i)
		}
	}
}

func TestTubeBendMinimalRotation(t *testing.T) {
	// right-angle bend: frames rotate by the minimal amount, so ring
	// vertices stay continuous through the corner
	points := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(1, 1, 0),
	}
	tb := NewTube(points, 0.1, 12)
	md, err := tb.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)
	checkWinding(t, md)

	// corresponding vertices of consecutive rings stay close for a
	// small radius: no flip of the cross-section through the bend
	for i := 0; i <= 12; i++ {
		d := md.Pos(13 + i).Sub(md.Pos(2*13 + i)).Length()
		assert.Less(t, d, float32(1.5), "vertex %d jumped across the bend", i)
	}
}

func TestTubeClosedLoop(t *testing.T) {
	const segs = 96
	points := SampleCurve(func(t float32) math32.Vector3 {
		theta := t * 2 * math32.Pi
		return math32.Vec3(math32.Cos(theta), math32.Sin(theta), 0)
	}, segs)
	points[segs] = points[0] // close exactly

	tb := NewTube(points, 0.1, 8)
	md, err := tb.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)

	// the closing ring lines up with the first up to the one-segment
	// tangent mismatch at the join; a twist flip would be ~2x the radius
	for i := 0; i <= 8; i++ {
		d := md.Pos(i).Sub(md.Pos(segs*9 + i)).Length()
		assert.Less(t, d, float32(0.02), "vertex %d of the closing ring", i)
	}
}

func TestClosedFrameAlignment(t *testing.T) {
	// a closed curve with an out-of-plane wobble accumulates holonomy
	// that the alignment pass must cancel at the join
	const segs = 96
	points := SampleCurve(func(t float32) math32.Vector3 {
		theta := t * 2 * math32.Pi
		return math32.Vec3(math32.Cos(theta), math32.Sin(theta), 0.3*math32.Sin(2*theta))
	}, segs)
	points[segs] = points[0]

	frames, err := curveFrames(points)
	require.NoError(t, err)
	alignClosedFrames(frames)

	first, last := frames[0], frames[len(frames)-1]
	assert.Greater(t, first.Normal.Dot(last.Normal), float32(0.99))
}

func TestTubeTapered(t *testing.T) {
	points := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(0, 0, 1),
		math32.Vec3(0, 0, 2),
	}
	tb := NewTube(points, 0, 8)
	tb.Radii = []float32{0.5, 0.25, 0.125}
	md, err := tb.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)

	for j, r := range tb.Radii {
		d := md.Pos(j*9).Sub(points[j]).Length()
		assert.InDelta(t, r, d, 1.0e-5, "ring %d radius", j)
	}
}

func TestTubeHelix(t *testing.T) {
	points := SampleCurve(Helix(0.5, 2, 3), 100)
	tb := NewTube(points, 0.05, 8)
	md, err := tb.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)
	checkWinding(t, md)
	assert.Equal(t, 101*9, md.NumVertex())
}

func TestTubeErrors(t *testing.T) {
	_, err := NewTube([]math32.Vector3{math32.Vec3(0, 0, 0)}, 0.1, 8).Mesh()
	var perr *ParamError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Points", perr.Param)

	pts := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 1)}
	_, err = NewTube(pts, 0.1, 2).Mesh()
	assert.Error(t, err)

	_, err = NewTube(pts, -1, 8).Mesh()
	assert.Error(t, err)

	tb := NewTube(pts, 0.1, 8)
	tb.Radii = []float32{0.1}
	_, err = tb.Mesh()
	assert.Error(t, err)

	// duplicate consecutive points have no tangent
	dup := []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 1),
		math32.Vec3(0, 0, 1), math32.Vec3(0, 0, 2),
	}
	_, err = NewTube(dup, 0.1, 8).Mesh()
	var derr *DegeneracyError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 2, derr.Index)
}
