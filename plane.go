// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Plane is a flat 2D grid plane, which can be oriented along any
// axis facing either positive or negative.
type Plane struct {

	// axis along which the normal perpendicular to the plane points.
	// E.g., if the Y axis is specified, then it is a standard X-Z ground
	// plane; see also NormNeg for whether it faces positive or negative.
	NormAxis math32.Dims

	// if true, the plane normal faces in the negative of NormAxis
	NormNeg bool

	// 2D size of the plane: X along the first in-plane axis,
	// Y along the second
	Size math32.Vector2

	// number of grid segments along each in-plane axis; at least 1 each
	Segs math32.Vector2i `min:"1"`

	// offset from the origin along the normal direction
	Offset float32
}

// NewPlane returns a ground plane (+Y normal) of the given size with a
// single segment per axis.
func NewPlane(width, height float32) *Plane {
	pl := &Plane{}
	pl.Defaults()
	pl.Size = math32.Vec2(width, height)
	return pl
}

func (pl *Plane) Defaults() {
	pl.NormAxis = math32.Y
	pl.NormNeg = false
	pl.Size = math32.Vec2(1, 1)
	pl.Segs = math32.Vec2i(1, 1)
	pl.Offset = 0
}

// Validate checks the parameters against their documented constraints.
func (pl *Plane) Validate() error {
	if pl.Size.X <= 0 {
		return &ParamError{Shape: "Plane", Param: "Size.X", Value: pl.Size.X, Constraint: "> 0"}
	}
	if pl.Size.Y <= 0 {
		return &ParamError{Shape: "Plane", Param: "Size.Y", Value: pl.Size.Y, Constraint: "> 0"}
	}
	if pl.Segs.X < 1 {
		return &ParamError{Shape: "Plane", Param: "Segs.X", Value: pl.Segs.X, Constraint: ">= 1"}
	}
	if pl.Segs.Y < 1 {
		return &ParamError{Shape: "Plane", Param: "Segs.Y", Value: pl.Segs.Y, Constraint: ">= 1"}
	}
	if pl.NormAxis < math32.X || pl.NormAxis > math32.Z {
		return &ParamError{Shape: "Plane", Param: "NormAxis", Value: pl.NormAxis, Constraint: "X, Y, or Z"}
	}
	return nil
}

// planeAxes returns the two in-plane unit axes and the normal for the
// plane orientation, such that uAxis cross vAxis equals the normal,
// keeping the grid triangles counter-clockwise from the normal side.
func (pl *Plane) planeAxes() (uAxis, vAxis, norm math32.Vector3) {
	switch pl.NormAxis {
	case math32.X:
		uAxis, vAxis, norm = math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0)
	case math32.Y:
		uAxis, vAxis, norm = math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)
	default:
		uAxis, vAxis, norm = math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1)
	}
	if pl.NormNeg {
		uAxis, vAxis = vAxis, uAxis
		norm = norm.Negate()
	}
	return
}

// Mesh generates the mesh buffers for the plane: a regular
// (Segs.X+1) x (Segs.Y+1) grid of vertices with a uniform normal and
// texture coordinates linear in [0,1] across each axis. The plane is the
// baseline correctness check for the winding convention shared by all
// generators: 2 CCW triangles per grid cell as seen from the normal side.
func (pl *Plane) Mesh() (*MeshData, error) {
	if err := pl.Validate(); err != nil {
		return nil, err
	}

	ws, hs := int(pl.Segs.X), int(pl.Segs.Y)
	uAxis, vAxis, norm := pl.planeAxes()
	origin := norm.MulScalar(pl.Offset).
		Add(uAxis.MulScalar(-pl.Size.X / 2)).
		Add(vAxis.MulScalar(-pl.Size.Y / 2))

	md := NewMeshData((ws+1)*(hs+1), ws*hs*6)

	vi := 0
	for j := 0; j <= hs; j++ {
		v := float32(j) / float32(hs)
		for i := 0; i <= ws; i++ {
			u := float32(i) / float32(ws)
			pt := origin.Add(uAxis.MulScalar(u * pl.Size.X)).Add(vAxis.MulScalar(v * pl.Size.Y))
			md.setVertex(vi, pt, norm, u, v)
			vi++
		}
	}

	ii := 0
	for j := 0; j < hs; j++ {
		for i := 0; i < ws; i++ {
			ll := uint32(j*(ws+1) + i)
			lr := uint32(j*(ws+1) + i + 1)
			ur := uint32((j+1)*(ws+1) + i + 1)
			ul := uint32((j+1)*(ws+1) + i)
			setQuad(md.Index, ii, ll, lr, ur, ul)
			ii += 6
		}
	}
	return md, nil
}
