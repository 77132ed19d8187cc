// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Frame is one orthonormal orientation frame along a curve: the curve
// point, the unit tangent, and the normal / binormal spanning the
// cross-section plane. Frames satisfy Normal x Binormal = Tangent.
type Frame struct {
	Origin   math32.Vector3
	Tangent  math32.Vector3
	Normal   math32.Vector3
	Binormal math32.Vector3
}

const zeroLengthTol = 1.0e-7

// leastParallelAxis returns the world axis unit vector least parallel to v.
// This is the fixed deterministic seed for the first frame's normal, so
// regenerating a tube from identical input always reproduces the same
// orientation.
func leastParallelAxis(v math32.Vector3) math32.Vector3 {
	ax, ay, az := math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)
	switch {
	case ax <= ay && ax <= az:
		return math32.Vec3(1, 0, 0)
	case ay <= az:
		return math32.Vec3(0, 1, 0)
	default:
		return math32.Vec3(0, 0, 1)
	}
}

// curveFrames propagates rotation-minimizing frames along the ordered
// curve points. The tangent at each point is the direction to the next
// point (the incoming direction at the last point). After the first
// frame, each frame is derived from the previous one by the minimal
// rotation mapping the old tangent onto the new one, rather than a
// Frenet frame, which is undefined on straight runs and twists at
// inflections. A zero-length segment (duplicate consecutive points) is
// a [DegeneracyError].
func curveFrames(points []math32.Vector3) ([]Frame, error) {
	n := len(points)
	tans := make([]math32.Vector3, n)
	for i := 0; i < n-1; i++ {
		seg := points[i+1].Sub(points[i])
		if seg.Length() < zeroLengthTol {
			return nil, &DegeneracyError{Shape: "Tube", Index: i + 1, Reason: "zero-length segment: duplicate consecutive curve points"}
		}
		tans[i] = seg.Normal()
	}
	tans[n-1] = tans[n-2]

	frames := make([]Frame, n)
	nrm := leastParallelAxis(tans[0])
	nrm = nrm.Sub(tans[0].MulScalar(tans[0].Dot(nrm))).Normal()
	frames[0] = Frame{Origin: points[0], Tangent: tans[0], Normal: nrm, Binormal: tans[0].Cross(nrm)}

	for i := 1; i < n; i++ {
		prev := frames[i-1]
		f := Frame{Origin: points[i], Tangent: tans[i], Normal: prev.Normal}
		axis := prev.Tangent.Cross(f.Tangent)
		if axis.Length() > zeroLengthTol {
			axis = axis.Normal()
			dot := prev.Tangent.Dot(f.Tangent)
			if dot > 1 {
				dot = 1
			} else if dot < -1 {
				dot = -1
			}
			rot := math32.NewQuatAxisAngle(axis, math32.Acos(dot))
			f.Normal = prev.Normal.MulQuat(rot)
		}
		f.Binormal = f.Tangent.Cross(f.Normal)
		frames[i] = f
	}
	return frames, nil
}

// alignClosedFrames distributes the end-to-start normal discrepancy of a
// closed curve evenly across all frames, so the last ring lines up with
// the first without a visible twist at the join.
func alignClosedFrames(frames []Frame) {
	n := len(frames)
	if n < 2 {
		return
	}
	first, last := frames[0], frames[n-1]
	dot := first.Normal.Dot(last.Normal)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	theta := math32.Acos(dot) / float32(n-1)
	if first.Tangent.Dot(first.Normal.Cross(last.Normal)) > 0 {
		theta = -theta
	}
	for i := 1; i < n; i++ {
		rot := math32.NewQuatAxisAngle(frames[i].Tangent, theta*float32(i))
		frames[i].Normal = frames[i].Normal.MulQuat(rot)
		frames[i].Binormal = frames[i].Tangent.Cross(frames[i].Normal)
	}
}
