// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// CurveFunc is a parametric space curve evaluated on the domain [0, 1].
type CurveFunc func(t float32) math32.Vector3

// SampleCurve evaluates the curve at segs+1 uniformly spaced parameter
// values, producing a polyline suitable for [Tube.Points].
func SampleCurve(fn CurveFunc, segs int) []math32.Vector3 {
	points := make([]math32.Vector3, segs+1)
	for i := 0; i <= segs; i++ {
		points[i] = fn(float32(i) / float32(segs))
	}
	return points
}

// Helix returns a curve function for a helix of the given radius rising
// by height over turns full revolutions around the Y axis.
func Helix(radius, height float32, turns float32) CurveFunc {
	return func(t float32) math32.Vector3 {
		theta := t * turns * 2 * math32.Pi
		return math32.Vec3(radius*math32.Cos(theta), t*height, radius*math32.Sin(theta))
	}
}
