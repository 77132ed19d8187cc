// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Torus is a torus mesh, defined by the radius of the solid tube and the
// larger radius of the ring, lying in the X-Y plane centered on the origin.
// Partial sweep angles on either axis produce an open torus slice whose
// cut ends are capped with flat discs.
type Torus struct {

	// larger radius of the torus ring, to the center of the tube
	Radius float32

	// radius of the solid tube
	TubeRad float32

	// number of segments around the ring; at least 3
	RadialSegs int `min:"3"`

	// number of segments around the tube cross-section; at least 3
	TubeSegs int `min:"3"`

	// starting angle around the ring in degrees, relative to 1,0,0
	RadialStart float32 `min:"0" max:"360" step:"5"`

	// total angle swept around the ring in degrees; 360 closes the ring
	RadialSweep float32 `min:"0" max:"360" step:"5"`

	// starting angle around the tube cross-section in degrees
	TubeStart float32 `min:"0" max:"360" step:"5"`

	// total angle swept around the tube cross-section in degrees;
	// 360 closes the tube
	TubeSweep float32 `min:"0" max:"360" step:"5"`
}

// NewTorus returns a full Torus with the given ring radius, tube radius,
// and number of segments on both axes.
func NewTorus(radius, tubeRadius float32, segs int) *Torus {
	tr := &Torus{}
	tr.Defaults()
	tr.Radius = radius
	tr.TubeRad = tubeRadius
	tr.RadialSegs = segs
	tr.TubeSegs = segs
	return tr
}

func (tr *Torus) Defaults() {
	tr.Radius = 1
	tr.TubeRad = 0.1
	tr.RadialSegs = 32
	tr.TubeSegs = 32
	tr.RadialStart = 0
	tr.RadialSweep = 360
	tr.TubeStart = 0
	tr.TubeSweep = 360
}

// Validate checks the parameters against their documented constraints.
func (tr *Torus) Validate() error {
	if tr.RadialSegs < 3 {
		return &ParamError{Shape: "Torus", Param: "RadialSegs", Value: tr.RadialSegs, Constraint: ">= 3"}
	}
	if tr.TubeSegs < 3 {
		return &ParamError{Shape: "Torus", Param: "TubeSegs", Value: tr.TubeSegs, Constraint: ">= 3"}
	}
	if tr.Radius <= 0 {
		return &ParamError{Shape: "Torus", Param: "Radius", Value: tr.Radius, Constraint: "> 0"}
	}
	if tr.TubeRad <= 0 {
		return &ParamError{Shape: "Torus", Param: "TubeRad", Value: tr.TubeRad, Constraint: "> 0"}
	}
	if tr.RadialSweep <= 0 || tr.RadialSweep > 360 {
		return &ParamError{Shape: "Torus", Param: "RadialSweep", Value: tr.RadialSweep, Constraint: "in (0, 360]"}
	}
	if tr.TubeSweep <= 0 || tr.TubeSweep > 360 {
		return &ParamError{Shape: "Torus", Param: "TubeSweep", Value: tr.TubeSweep, Constraint: "in (0, 360]"}
	}
	return nil
}

// Mesh generates the mesh buffers for the torus.
//
// The surface is sampled on a (ring angle, tube angle) grid with segs+1
// samples per axis; for full sweeps the closing samples duplicate the
// opening positions to carry the u = 1 / v = 1 seam texture coordinates.
// Normals are the tube cross-section's outward radial direction. Partial
// ring sweeps are capped with the tube cross-section disc at each cut;
// a partial tube sweep on a full ring is capped with the two flat
// boundary discs around the central axis.
func (tr *Torus) Mesh() (*MeshData, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	rs, ts := tr.RadialSegs, tr.TubeSegs
	radStart := math32.DegToRad(tr.RadialStart)
	radSweep := math32.DegToRad(tr.RadialSweep)
	tubeStart := math32.DegToRad(tr.TubeStart)
	tubeSweep := math32.DegToRad(tr.TubeSweep)
	radialPartial := tr.RadialSweep < 360
	tubePartial := tr.TubeSweep < 360

	numVertex := (rs + 1) * (ts + 1)
	numIndex := rs * ts * 6
	if radialPartial {
		nv, ni := fanCapN(ts)
		numVertex += 2 * nv
		numIndex += 2 * ni
	}
	if tubePartial && !radialPartial {
		nv, ni := fanCapN(rs)
		numVertex += 2 * nv
		numIndex += 2 * ni
	}

	md := NewMeshData(numVertex, numIndex)

	vi := 0
	for j := 0; j <= rs; j++ {
		theta := radStart + float32(j)/float32(rs)*radSweep
		ct, st := math32.Cos(theta), math32.Sin(theta)
		for i := 0; i <= ts; i++ {
			phi := tubeStart + float32(i)/float32(ts)*tubeSweep
			cp, sp := math32.Cos(phi), math32.Sin(phi)
			pt := math32.Vec3((tr.Radius+tr.TubeRad*cp)*ct, (tr.Radius+tr.TubeRad*cp)*st, tr.TubeRad*sp)
			norm := math32.Vec3(cp*ct, cp*st, sp)
			md.setVertex(vi, pt, norm, float32(j)/float32(rs), float32(i)/float32(ts))
			vi++
		}
	}

	ii := 0
	for j := 1; j <= rs; j++ {
		for i := 1; i <= ts; i++ {
			ll := uint32((ts+1)*(j-1) + i - 1)
			lr := uint32((ts+1)*j + i - 1)
			ur := uint32((ts+1)*j + i)
			ul := uint32((ts+1)*(j-1) + i)
			setQuad(md.Index, ii, ll, lr, ur, ul)
			ii += 6
		}
	}

	if radialPartial {
		zAxis := math32.Vec3(0, 0, 1)
		for _, end := range []bool{false, true} {
			theta := radStart
			if end {
				theta += radSweep
			}
			ct, st := math32.Cos(theta), math32.Sin(theta)
			center := math32.Vec3(tr.Radius*ct, tr.Radius*st, 0)
			radial := math32.Vec3(ct, st, 0)
			norm := math32.Vec3(st, -ct, 0) // against the sweep direction
			if end {
				norm = norm.Negate()
			}
			nv, ni := setFanCap(md, vi, ii, center, radial, zAxis, norm,
				tr.TubeRad, tubeStart, tubeSweep, ts)
			vi += nv
			ii += ni
		}
	}

	if tubePartial && !radialPartial {
		xAxis := math32.Vec3(1, 0, 0)
		yAxis := math32.Vec3(0, 1, 0)
		for _, end := range []bool{false, true} {
			phi := tubeStart
			norm := math32.Vec3(0, 0, -1)
			if end {
				phi += tubeSweep
				norm = norm.Negate()
			}
			// the boundary ring at constant tube angle is a planar circle
			// around the central axis
			center := math32.Vec3(0, 0, tr.TubeRad*math32.Sin(phi))
			radius := tr.Radius + tr.TubeRad*math32.Cos(phi)
			nv, ni := setFanCap(md, vi, ii, center, xAxis, yAxis, norm,
				radius, radStart, radSweep, rs)
			vi += nv
			ii += ni
		}
	}
	return md, nil
}
