// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triangulate computes constrained triangulations of simple
// polygons with optional holes, by ear clipping with bridge-edge hole
// merging. Only the supplied boundary vertices are used: no Steiner
// points are ever inserted, so the output indices always refer to the
// input points. Malformed input (self-intersecting boundary, hole not
// contained in the outer loop, zero-area polygon) is a reported error,
// never a best-effort guess. Results are deterministic for identical
// input.
package triangulate

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// Errors reported for malformed polygon input. They are wrapped with
// positional detail; test with [errors.Is].
var (
	ErrTooFewPoints     = errors.New("a loop requires at least 3 points")
	ErrDegenerateEdge   = errors.New("duplicate consecutive points form a zero-length edge")
	ErrZeroArea         = errors.New("polygon has zero area")
	ErrSelfIntersection = errors.New("boundary is self-intersecting")
	ErrHoleOutside      = errors.New("hole is not fully contained in the outer boundary")
)

// geometric comparison tolerance for cross products and distances
const tol = 1.0e-7

// SignedArea returns the signed area of the closed loop: positive for
// counter-clockwise winding, negative for clockwise.
func SignedArea(points []math32.Vector2) float32 {
	var sum float32
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return sum / 2
}

// cross2 returns the z component of the cross product of b-a and c-a:
// positive when a,b,c turn counter-clockwise.
func cross2(a, b, c math32.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// properIntersect reports whether segments ab and cd cross at an
// interior point of both. Shared endpoints do not count.
func properIntersect(a, b, c, d math32.Vector2) bool {
	d1 := cross2(c, d, a)
	d2 := cross2(c, d, b)
	d3 := cross2(a, b, c)
	d4 := cross2(a, b, d)
	return ((d1 > tol && d2 < -tol) || (d1 < -tol && d2 > tol)) &&
		((d3 > tol && d4 < -tol) || (d3 < -tol && d4 > tol))
}

// pointInLoop reports whether pt is strictly inside the closed loop,
// by even-odd ray casting.
func pointInLoop(pt math32.Vector2, loop []math32.Vector2) bool {
	in := false
	n := len(loop)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := loop[i], loop[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
	}
	return in
}

// pointInTriangle reports whether pt is strictly inside triangle a,b,c
// (counter-clockwise).
func pointInTriangle(pt, a, b, c math32.Vector2) bool {
	return cross2(a, b, pt) > tol && cross2(b, c, pt) > tol && cross2(c, a, pt) > tol
}

// vert is one working vertex: its position and its index into the
// caller's concatenated point sequence.
type vert struct {
	p   math32.Vector2
	idx uint32
}

// validateLoop checks the structural constraints of one loop.
func validateLoop(loop []math32.Vector2, name string) error {
	if len(loop) < 3 {
		return fmt.Errorf("triangulate: %s with %d points: %w", name, len(loop), ErrTooFewPoints)
	}
	n := len(loop)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if loop[j].Sub(loop[i]).Length() < tol {
			return fmt.Errorf("triangulate: %s points %d and %d: %w", name, i, j, ErrDegenerateEdge)
		}
	}
	return nil
}

// loopEdges collects the edges of a loop for intersection testing.
func loopEdges(loop []math32.Vector2) [][2]math32.Vector2 {
	n := len(loop)
	edges := make([][2]math32.Vector2, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]math32.Vector2{loop[i], loop[(i+1)%n]}
	}
	return edges
}

// selfIntersects reports whether any two non-adjacent edges of the loop
// properly cross.
func selfIntersects(loop []math32.Vector2) bool {
	n := len(loop)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 { // adjacent around the wrap
				continue
			}
			if properIntersect(loop[i], loop[(i+1)%n], loop[j], loop[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

// loopsCross reports whether any edge of loop a properly crosses any
// edge of loop b.
func loopsCross(a, b []math32.Vector2) bool {
	ea, eb := loopEdges(a), loopEdges(b)
	for _, x := range ea {
		for _, y := range eb {
			if properIntersect(x[0], x[1], y[0], y[1]) {
				return true
			}
		}
	}
	return false
}

// Triangulate triangulates the simple polygon bounded by outer, minus the
// given hole loops, returning a triangle index list. Indices refer to the
// concatenation of outer followed by each hole in order, so the result
// can index a single combined vertex buffer. Triangles follow the winding
// orientation of the outer loop: counter-clockwise outer input yields
// counter-clockwise triangles.
func Triangulate(outer []math32.Vector2, holes ...[]math32.Vector2) ([]uint32, error) {
	if err := validateLoop(outer, "outer boundary"); err != nil {
		return nil, err
	}
	for hi, hole := range holes {
		if err := validateLoop(hole, fmt.Sprintf("hole %d", hi)); err != nil {
			return nil, err
		}
	}

	outerArea := SignedArea(outer)
	if math32.Abs(outerArea) < tol {
		return nil, fmt.Errorf("triangulate: outer boundary: %w", ErrZeroArea)
	}
	for hi, hole := range holes {
		if math32.Abs(SignedArea(hole)) < tol {
			return nil, fmt.Errorf("triangulate: hole %d: %w", hi, ErrZeroArea)
		}
	}

	if selfIntersects(outer) {
		return nil, fmt.Errorf("triangulate: outer boundary: %w", ErrSelfIntersection)
	}
	for hi, hole := range holes {
		if selfIntersects(hole) {
			return nil, fmt.Errorf("triangulate: hole %d: %w", hi, ErrSelfIntersection)
		}
		if loopsCross(outer, hole) || !pointInLoop(hole[0], outer) {
			return nil, fmt.Errorf("triangulate: hole %d: %w", hi, ErrHoleOutside)
		}
		for hj := 0; hj < hi; hj++ {
			if loopsCross(holes[hj], hole) || pointInLoop(hole[0], holes[hj]) || pointInLoop(holes[hj][0], hole) {
				return nil, fmt.Errorf("triangulate: holes %d and %d overlap: %w", hj, hi, ErrHoleOutside)
			}
		}
	}

	// working loops in canonical orientation: outer CCW, holes CW,
	// remembering original indices for the output
	flip := outerArea < 0
	loop := canonLoop(outer, 0, flip)
	offset := uint32(len(outer))
	holeLoops := make([][]vert, len(holes))
	for hi, hole := range holes {
		holeLoops[hi] = canonLoop(hole, offset, SignedArea(hole) > 0)
		offset += uint32(len(hole))
	}

	loop = mergeHoles(loop, holeLoops)

	tris, err := earClip(loop)
	if err != nil {
		return nil, err
	}
	if flip {
		for t := 0; t < len(tris); t += 3 {
			tris[t+1], tris[t+2] = tris[t+2], tris[t+1]
		}
	}
	return tris, nil
}

// canonLoop builds the working vertex loop, reversing traversal order
// when rev is true. Original input indices are preserved.
func canonLoop(points []math32.Vector2, offset uint32, rev bool) []vert {
	n := len(points)
	loop := make([]vert, n)
	for i := 0; i < n; i++ {
		src := i
		if rev {
			src = n - 1 - i
		}
		loop[i] = vert{p: points[src], idx: offset + uint32(src)}
	}
	return loop
}

// mergeHoles splices every hole loop into the outer loop with a bridge
// edge, producing one simple (bridge-degenerate) CCW loop. Holes are
// processed left to right by their leftmost vertex, the standard order
// that keeps earlier bridges from blocking later ones.
func mergeHoles(loop []vert, holes [][]vert) []vert {
	order := make([]int, len(holes))
	for i := range order {
		order[i] = i
	}
	left := make([]int, len(holes))
	for hi, h := range holes {
		left[hi] = leftmost(h)
	}
	// deterministic insertion sort by leftmost x, then y, then hole index
	for i := 1; i < len(order); i++ {
		for j := i; j > 0; j-- {
			a, b := holes[order[j-1]][left[order[j-1]]].p, holes[order[j]][left[order[j]]].p
			if a.X < b.X || (a.X == b.X && a.Y <= b.Y) {
				break
			}
			order[j-1], order[j] = order[j], order[j-1]
		}
	}
	for _, hi := range order {
		loop = spliceHole(loop, holes[hi], left[hi])
	}
	return loop
}

// leftmost returns the index of the leftmost (then lowest) vertex.
func leftmost(loop []vert) int {
	best := 0
	for i := 1; i < len(loop); i++ {
		if loop[i].p.X < loop[best].p.X ||
			(loop[i].p.X == loop[best].p.X && loop[i].p.Y < loop[best].p.Y) {
			best = i
		}
	}
	return best
}

// spliceHole connects the hole into the loop via a bridge between the
// hole's leftmost vertex and the nearest visible loop vertex to its
// left. Both bridge endpoints appear twice in the merged loop, which is
// how the zero-width bridge edge is represented.
func spliceHole(loop []vert, hole []vert, mi int) []vert {
	m := hole[mi].p
	bridge := -1
	var bestDist float32 = math32.Infinity
	for i, v := range loop {
		if v.p.X > m.X+tol {
			continue
		}
		if blocked(loop, hole, m, v.p) {
			continue
		}
		d := v.p.Sub(m).Length()
		if d < bestDist {
			bestDist = d
			bridge = i
		}
	}
	if bridge < 0 {
		// containment was already verified, so some vertex must be
		// visible; fall back to the nearest one regardless
		for i, v := range loop {
			d := v.p.Sub(m).Length()
			if d < bestDist {
				bestDist = d
				bridge = i
			}
		}
	}

	merged := make([]vert, 0, len(loop)+len(hole)+2)
	merged = append(merged, loop[:bridge+1]...)
	for k := 0; k <= len(hole); k++ {
		merged = append(merged, hole[(mi+k)%len(hole)])
	}
	merged = append(merged, loop[bridge:]...)
	return merged
}

// blocked reports whether the candidate bridge segment from m to p
// properly crosses any loop or hole edge.
func blocked(loop []vert, hole []vert, m, p math32.Vector2) bool {
	n := len(loop)
	for i := 0; i < n; i++ {
		if properIntersect(m, p, loop[i].p, loop[(i+1)%n].p) {
			return true
		}
	}
	h := len(hole)
	for i := 0; i < h; i++ {
		if properIntersect(m, p, hole[i].p, hole[(i+1)%h].p) {
			return true
		}
	}
	return false
}

// earClip triangulates the CCW loop by repeatedly clipping ears:
// convex corners whose triangle contains no other loop vertex.
// The scan order is fixed, so identical input produces identical
// triangles.
func earClip(loop []vert) ([]uint32, error) {
	tris := make([]uint32, 0, (len(loop)-2)*3)
	for len(loop) > 3 {
		clipped := false
		for k := 0; k < len(loop); k++ {
			prev := loop[(k-1+len(loop))%len(loop)]
			cur := loop[k]
			next := loop[(k+1)%len(loop)]
			area := cross2(prev.p, cur.p, next.p)
			if area < -tol { // reflex
				continue
			}
			if area <= tol {
				// collinear spike: drop without emitting a degenerate
				// triangle
				loop = removeAt(loop, k)
				clipped = true
				break
			}
			if earBlocked(loop, k, prev, cur, next) {
				continue
			}
			tris = append(tris, prev.idx, cur.idx, next.idx)
			loop = removeAt(loop, k)
			clipped = true
			break
		}
		if !clipped {
			return nil, fmt.Errorf("triangulate: no clippable ear remains: %w", ErrSelfIntersection)
		}
	}
	if cross2(loop[0].p, loop[1].p, loop[2].p) > tol {
		tris = append(tris, loop[0].idx, loop[1].idx, loop[2].idx)
	}
	return tris, nil
}

// earBlocked reports whether any other loop vertex lies strictly inside
// the candidate ear triangle. Bridge duplicates coincide with the
// corners and are therefore never strictly inside.
func earBlocked(loop []vert, k int, prev, cur, next vert) bool {
	n := len(loop)
	for i := 0; i < n; i++ {
		if i == k || i == (k-1+n)%n || i == (k+1)%n {
			continue
		}
		if pointInTriangle(loop[i].p, prev.p, cur.p, next.p) {
			return true
		}
	}
	return false
}

// removeAt removes element k preserving order.
func removeAt(loop []vert, k int) []vert {
	return append(loop[:k], loop[k+1:]...)
}
