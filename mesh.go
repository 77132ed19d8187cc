// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates renderable triangle-mesh buffers for a catalogue
// of parametric shapes: cones, cylinders, tori, grid planes, simple polygons
// (with holes), and tubes swept along arbitrary 3D curves.
//
// Every generator is a pure function from a parameter struct to an owned
// [MeshData]: no shared state, no caches, safe to call concurrently.
// The output buffers are engine-neutral parallel arrays (positions, unit
// normals, texture coordinates) plus a CCW triangle index list, ready to
// upload to any GPU pipeline.
//
// Texture coordinates are emitted in [0,1] but never clamped: callers that
// need repeating textures can rescale them freely.
package shape

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// MeshData holds the generated mesh buffers: vertex positions, one unit
// normal and one texture coordinate per vertex, and a triangle index list.
// Vertices are duplicated at seams and hard edges so that each vertex can
// carry a single unambiguous normal and texture coordinate.
type MeshData struct {

	// Vertex positions, 3 floats per vertex.
	Vertex math32.ArrayF32

	// Normal has the unit normals, 3 floats per vertex,
	// same vertex count as Vertex.
	Normal math32.ArrayF32

	// TexCoord has the texture coordinates, 2 floats per vertex,
	// same vertex count as Vertex.
	TexCoord math32.ArrayF32

	// Index is the triangle index list: each consecutive triple refers to
	// one triangle, wound counter-clockwise viewed from outside the surface.
	Index math32.ArrayU32

	// CBBox is the bounding box of all vertex positions.
	CBBox math32.Box3
}

// NewMeshData returns a MeshData with buffers preallocated for the given
// number of vertex and index points.
func NewMeshData(numVertex, numIndex int) *MeshData {
	md := &MeshData{
		Vertex:   math32.NewArrayF32(numVertex*3, numVertex*3),
		Normal:   math32.NewArrayF32(numVertex*3, numVertex*3),
		TexCoord: math32.NewArrayF32(numVertex*2, numVertex*2),
		Index:    math32.NewArrayU32(numIndex, numIndex),
	}
	md.CBBox.SetEmpty()
	return md
}

// NumVertex returns the number of vertices.
func (md *MeshData) NumVertex() int {
	return len(md.Vertex) / 3
}

// NumTris returns the number of triangles.
func (md *MeshData) NumTris() int {
	return len(md.Index) / 3
}

// BBox returns the bounding box of the vertex positions.
func (md *MeshData) BBox() math32.Box3 {
	return md.CBBox
}

// Pos returns the position of vertex i.
func (md *MeshData) Pos(i int) math32.Vector3 {
	return math32.Vec3(md.Vertex[i*3], md.Vertex[i*3+1], md.Vertex[i*3+2])
}

// Norm returns the normal of vertex i.
func (md *MeshData) Norm(i int) math32.Vector3 {
	return math32.Vec3(md.Normal[i*3], md.Normal[i*3+1], md.Normal[i*3+2])
}

// Tex returns the texture coordinate of vertex i.
func (md *MeshData) Tex(i int) math32.Vector2 {
	return math32.Vec2(md.TexCoord[i*2], md.TexCoord[i*2+1])
}

// setVertex writes position, normal and texture coordinate for vertex i.
// It also expands the bounding box by the position.
func (md *MeshData) setVertex(i int, pos, norm math32.Vector3, u, v float32) {
	md.Vertex.SetVector3(i*3, pos)
	md.Normal.SetVector3(i*3, norm)
	md.TexCoord.Set(i*2, u, v)
	md.CBBox.ExpandByPoint(pos)
}

// Validate checks the structural invariants of the buffers: equal vertex
// counts across the three attribute arrays, index count a multiple of 3,
// and every index within the vertex range.
func (md *MeshData) Validate() error {
	nv := len(md.Vertex) / 3
	if len(md.Vertex)%3 != 0 {
		return fmt.Errorf("shape: vertex array length %d is not a multiple of 3", len(md.Vertex))
	}
	if len(md.Normal) != len(md.Vertex) {
		return fmt.Errorf("shape: normal array has %d floats, vertex array has %d", len(md.Normal), len(md.Vertex))
	}
	if len(md.TexCoord) != nv*2 {
		return fmt.Errorf("shape: texcoord array has %d floats for %d vertices", len(md.TexCoord), nv)
	}
	if len(md.Index)%3 != 0 {
		return fmt.Errorf("shape: index count %d is not a multiple of 3", len(md.Index))
	}
	for i, ix := range md.Index {
		if int(ix) >= nv {
			return fmt.Errorf("shape: index %d at position %d exceeds vertex count %d", ix, i, nv)
		}
	}
	return nil
}

// Shape is the common interface of all shape parameter structs.
// Mesh generates and returns the mesh buffers, or a validation error
// describing the offending parameter; it never panics on bad input.
type Shape interface {

	// Defaults sets default parameter values.
	Defaults()

	// Validate checks the parameters against their documented constraints.
	Validate() error

	// Mesh generates the mesh buffers for the current parameters.
	Mesh() (*MeshData, error)
}
