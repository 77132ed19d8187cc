// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Seam and cap handling is uniform across Cylinder, Torus and Tube:
// every ring emits segs+1 samples, with the last duplicating the first
// position so the seam vertex can carry u = 1 without disturbing the
// shared normal, and every cap is a separate fan whose vertices are
// never shared with the lateral surface.

// circlePoint returns the point at angle theta on the circle of the given
// radius centered at center, in the plane spanned by the unit vectors
// uAxis and vAxis.
func circlePoint(center, uAxis, vAxis math32.Vector3, radius, theta float32) math32.Vector3 {
	du := uAxis.MulScalar(radius * math32.Cos(theta))
	dv := vAxis.MulScalar(radius * math32.Sin(theta))
	return center.Add(du).Add(dv)
}

// setQuad writes the two triangles covering one grid cell, given the corner
// vertex indices in counter-clockwise rim order as seen from the outward
// side of the surface. The diagonal always runs ll-ur.
func setQuad(index math32.ArrayU32, idxOff int, ll, lr, ur, ul uint32) {
	index.Set(idxOff, ll, lr, ur, ll, ur, ul)
}

// fanCapN returns the vertex and index counts of a fan cap with the given
// number of rim segments.
func fanCapN(segs int) (numVertex, numIndex int) {
	return segs + 2, segs * 3
}

// setFanCap writes a triangle-fan disk (or partial disk when
// angLen < 2*Pi): one center vertex followed by segs+1 rim vertices on the
// circle spanned by uAxis and vAxis. All vertices carry the given normal
// and a polar texture mapping. Triangles are wound counter-clockwise as
// seen from the normal direction; when the normal opposes uAxis x vAxis
// the fan order is reversed and the texture v coordinate mirrored, so the
// cap never reads as back-facing from its outward side.
// Returns the vertex and index counts written.
func setFanCap(md *MeshData, vtxOff, idxOff int, center, uAxis, vAxis, normal math32.Vector3, radius, angStart, angLen float32, segs int) (numVertex, numIndex int) {
	flip := uAxis.Cross(vAxis).Dot(normal) < 0

	md.setVertex(vtxOff, center, normal, 0.5, 0.5)
	for i := 0; i <= segs; i++ {
		theta := angStart + float32(i)/float32(segs)*angLen
		pt := circlePoint(center, uAxis, vAxis, radius, theta)
		u := 0.5 + 0.5*math32.Cos(theta)
		v := 0.5 + 0.5*math32.Sin(theta)
		if flip {
			v = 0.5 - 0.5*math32.Sin(theta)
		}
		md.setVertex(vtxOff+1+i, pt, normal, u, v)
	}

	ctr := uint32(vtxOff)
	ii := idxOff
	for i := 0; i < segs; i++ {
		a := ctr + 1 + uint32(i)
		b := ctr + 1 + uint32(i+1)
		if flip {
			a, b = b, a
		}
		md.Index.Set(ii, ctr, a, b)
		ii += 3
	}
	return segs + 2, segs * 3
}
