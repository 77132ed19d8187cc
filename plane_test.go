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

func TestPlaneUnit(t *testing.T) {
	pl := NewPlane(1, 1)
	md, err := pl.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)
	checkWinding(t, md)

	assert.Equal(t, 4, md.NumVertex())
	assert.Equal(t, 2, md.NumTris())
	for i := 0; i < 4; i++ {
		assert.Equal(t, math32.Vec3(0, 1, 0), md.Norm(i))
	}
	assert.InDelta(t, 1, surfaceArea(md), 1.0e-6)
}

func TestPlaneGrid(t *testing.T) {
	pl := NewPlane(2, 3)
	pl.Segs = math32.Vec2i(4, 6)
	md, err := pl.Mesh()
	require.NoError(t, err)
	checkMesh(t, md)
	checkWinding(t, md)

	assert.Equal(t, 5*7, md.NumVertex())
	assert.Equal(t, 4*6*2, md.NumTris())
	assert.InDelta(t, 6, surfaceArea(md), 1.0e-5)

	// texture coordinates are linear in [0,1] on each axis
	assert.Equal(t, math32.Vec2(0, 0), md.Tex(0))
	assert.Equal(t, math32.Vec2(1, 1), md.Tex(md.NumVertex()-1))
}

func TestPlaneOrientations(t *testing.T) {
	axes := map[math32.Dims]math32.Vector3{
		math32.X: math32.Vec3(1, 0, 0),
		math32.Y: math32.Vec3(0, 1, 0),
		math32.Z: math32.Vec3(0, 0, 1),
	}
	for axis, want := range axes {
		for _, neg := range []bool{false, true} {
			pl := NewPlane(1, 1)
			pl.NormAxis = axis
			pl.NormNeg = neg
			md, err := pl.Mesh()
			require.NoError(t, err)
			checkWinding(t, md)

			expect := want
			if neg {
				expect = want.Negate()
			}
			assert.Equal(t, expect, md.Norm(0), "axis %v neg %v", axis, neg)
		}
	}
}

func TestPlaneOffset(t *testing.T) {
	pl := NewPlane(1, 1)
	pl.Offset = 2.5
	md, err := pl.Mesh()
	require.NoError(t, err)

	for i := 0; i < md.NumVertex(); i++ {
		assert.InDelta(t, 2.5, md.Pos(i).Y, 1.0e-6)
	}
}

func TestPlaneValidate(t *testing.T) {
	pl := NewPlane(0, 1)
	_, err := pl.Mesh()
	var perr *ParamError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Size.X", perr.Param)

	pl = NewPlane(1, 1)
	pl.Segs = math32.Vec2i(0, 1)
	_, err = pl.Mesh()
	assert.Error(t, err)
}
