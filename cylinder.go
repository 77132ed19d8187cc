// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Cylinder is a generalized cylinder: a truncated cone with independent
// top and bottom radii, including a true cone when TopRad is 0.
// Height is along the Y axis, centered on the origin.
type Cylinder struct {

	// height of the cylinder
	Height float32

	// radius of the top disc; 0 for a cone
	TopRad float32

	// radius of the bottom disc; 0 for an inverted cone
	BotRad float32

	// number of segments around the circumference; at least 3
	RadialSegs int `min:"3"`

	// number of segments along the height; at least 1
	HeightSegs int `min:"1"`

	// render the top cap disc
	Top bool

	// render the bottom cap disc
	Bottom bool
}

// NewCylinder returns a Cylinder with equal top and bottom radii.
func NewCylinder(height, radius float32, radialSegs, heightSegs int, top, bottom bool) *Cylinder {
	return &Cylinder{Height: height, TopRad: radius, BotRad: radius,
		RadialSegs: radialSegs, HeightSegs: heightSegs, Top: top, Bottom: bottom}
}

// NewCone returns a Cylinder with a zero top radius, forming a cone with
// its apex up.
func NewCone(height, radius float32, radialSegs, heightSegs int, bottom bool) *Cylinder {
	return &Cylinder{Height: height, TopRad: 0, BotRad: radius,
		RadialSegs: radialSegs, HeightSegs: heightSegs, Bottom: bottom}
}

func (cy *Cylinder) Defaults() {
	cy.Height = 1
	cy.TopRad = 0.5
	cy.BotRad = 0.5
	cy.RadialSegs = 32
	cy.HeightSegs = 1
	cy.Top = true
	cy.Bottom = true
}

// Validate checks the parameters against their documented constraints.
func (cy *Cylinder) Validate() error {
	if cy.RadialSegs < 3 {
		return &ParamError{Shape: "Cylinder", Param: "RadialSegs", Value: cy.RadialSegs, Constraint: ">= 3"}
	}
	if cy.HeightSegs < 1 {
		return &ParamError{Shape: "Cylinder", Param: "HeightSegs", Value: cy.HeightSegs, Constraint: ">= 1"}
	}
	if cy.Height <= 0 {
		return &ParamError{Shape: "Cylinder", Param: "Height", Value: cy.Height, Constraint: "> 0"}
	}
	if cy.TopRad < 0 {
		return &ParamError{Shape: "Cylinder", Param: "TopRad", Value: cy.TopRad, Constraint: ">= 0"}
	}
	if cy.BotRad < 0 {
		return &ParamError{Shape: "Cylinder", Param: "BotRad", Value: cy.BotRad, Constraint: ">= 0"}
	}
	if cy.TopRad == 0 && cy.BotRad == 0 {
		return &ParamError{Shape: "Cylinder", Param: "BotRad", Value: cy.BotRad, Constraint: "> 0 when TopRad is 0"}
	}
	return nil
}

// Mesh generates the mesh buffers for the cylinder.
//
// The lateral surface is sampled on a (radial, height) grid with
// RadialSegs+1 samples per ring: the closing sample duplicates the first
// position but carries u = 1 for a continuous texture wrap. Lateral
// normals are tilted by the surface slope so lighting is correct on
// tapered sides. A zero radius at either end collapses that ring to a
// single apex vertex rather than a disc of coincident vertices.
// Caps are separate triangle fans sharing no vertices with the sides.
func (cy *Cylinder) Mesh() (*MeshData, error) {
	if err := cy.Validate(); err != nil {
		return nil, err
	}

	rs, hs := cy.RadialSegs, cy.HeightSegs
	apexTop := cy.TopRad == 0
	apexBot := cy.BotRad == 0
	hHt := cy.Height / 2

	nApex := 0
	if apexTop {
		nApex++
	}
	if apexBot {
		nApex++
	}
	fullRows := hs + 1 - nApex
	fullBands := hs - nApex

	numVertex := fullRows*(rs+1) + nApex
	numIndex := fullBands*rs*6 + nApex*rs*3
	capTop := cy.Top && !apexTop
	capBot := cy.Bottom && !apexBot
	if capTop {
		nv, ni := fanCapN(rs)
		numVertex += nv
		numIndex += ni
	}
	if capBot {
		nv, ni := fanCapN(rs)
		numVertex += nv
		numIndex += ni
	}

	md := NewMeshData(numVertex, numIndex)

	// precompute per-column angles and slope-corrected normals
	slope := (cy.BotRad - cy.TopRad) / cy.Height
	cos := make([]float32, rs+1)
	sin := make([]float32, rs+1)
	norms := make([]math32.Vector3, rs+1)
	for i := 0; i <= rs; i++ {
		theta := float32(i) / float32(rs) * 2 * math32.Pi
		cos[i] = math32.Cos(theta)
		sin[i] = math32.Sin(theta)
		norms[i] = math32.Vec3(cos[i], slope, sin[i]).Normal()
	}

	// lateral rows, bottom to top; apex rows contribute a single vertex
	rowStart := make([]int, hs+1)
	vi := 0
	for j := 0; j <= hs; j++ {
		rowStart[j] = vi
		v := float32(j) / float32(hs)
		y := -hHt + v*cy.Height
		radius := cy.BotRad + (cy.TopRad-cy.BotRad)*v
		if (j == hs && apexTop) || (j == 0 && apexBot) {
			axis := math32.Vec3(0, 1, 0)
			if j == 0 {
				axis = math32.Vec3(0, -1, 0)
			}
			md.setVertex(vi, math32.Vec3(0, y, 0), axis, 0.5, v)
			vi++
			continue
		}
		for i := 0; i <= rs; i++ {
			pt := math32.Vec3(radius*cos[i], y, radius*sin[i])
			md.setVertex(vi, pt, norms[i], float32(i)/float32(rs), v)
			vi++
		}
	}

	ii := 0
	for j := 0; j < hs; j++ {
		lo, hi := rowStart[j], rowStart[j+1]
		switch {
		case j == hs-1 && apexTop:
			apex := uint32(hi)
			for i := 0; i < rs; i++ {
				md.Index.Set(ii, uint32(lo+i), apex, uint32(lo+i+1))
				ii += 3
			}
		case j == 0 && apexBot:
			apex := uint32(lo)
			for i := 0; i < rs; i++ {
				md.Index.Set(ii, uint32(hi+i), uint32(hi+i+1), apex)
				ii += 3
			}
		default:
			for i := 0; i < rs; i++ {
				setQuad(md.Index, ii, uint32(lo+i+1), uint32(lo+i), uint32(hi+i), uint32(hi+i+1))
				ii += 6
			}
		}
	}

	xAxis := math32.Vec3(1, 0, 0)
	zAxis := math32.Vec3(0, 0, 1)
	if capTop {
		nv, ni := setFanCap(md, vi, ii, math32.Vec3(0, hHt, 0), xAxis, zAxis,
			math32.Vec3(0, 1, 0), cy.TopRad, 0, 2*math32.Pi, rs)
		vi += nv
		ii += ni
	}
	if capBot {
		setFanCap(md, vi, ii, math32.Vec3(0, -hHt, 0), xAxis, zAxis,
			math32.Vec3(0, -1, 0), cy.BotRad, 0, 2*math32.Pi, rs)
	}
	return md, nil
}
