package game

import "math"

// epsilon below which a segment-intersection determinant is treated as
// parallel and the test resolves to no intersection
const parallelEpsilon = 1e-10

// segmentsIntersect reports whether the segments (x1,y1)-(x2,y2) and
// (x3,y3)-(x4,y4) intersect. Solving P1 + t(P2-P1) = P3 + u(P4-P3), the
// segments intersect iff t and u both land in [0, 1]. Parallel and collinear
// segments resolve to no intersection.
func segmentsIntersect(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < parallelEpsilon {
		return false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom

	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// pointSegmentDistance returns the Euclidean distance from (px,py) to the
// segment (x1,y1)-(x2,y2). The projection parameter is clamped to [0, 1], and
// a zero-length segment degrades to plain point distance.
func pointSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1

	if dx == 0 && dy == 0 {
		return math.Hypot(px-x1, py-y1)
	}

	t := ((px-x1)*dx + (py-y1)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))

	closestX := x1 + t*dx
	closestY := y1 + t*dy
	return math.Hypot(px-closestX, py-closestY)
}
