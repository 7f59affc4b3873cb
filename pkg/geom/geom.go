// pkg/geom/geom.go
package geom

import "math"

// Dist returns the straight-line distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistSq returns the squared distance between two points. Useful for radius
// comparisons without the square root.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Clamp limits v to the [min, max] range.
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Circle is a center plus radius. Protected zones and area effects are circles.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Contains reports whether the point lies strictly inside the circle.
func (c Circle) Contains(x, y float64) bool {
	return DistSq(c.X, c.Y, x, y) < c.Radius*c.Radius
}

// InAnyZone reports whether the point lies inside at least one of the zones.
func InAnyZone(zones []Circle, x, y float64) bool {
	for _, z := range zones {
		if z.Contains(x, y) {
			return true
		}
	}
	return false
}

// Rect is an axis-aligned rectangle given by its center and half extents.
type Rect struct {
	X, Y         float64
	HalfW, HalfH float64
}

func (r Rect) Left() float64   { return r.X - r.HalfW }
func (r Rect) Right() float64  { return r.X + r.HalfW }
func (r Rect) Top() float64    { return r.Y - r.HalfH }
func (r Rect) Bottom() float64 { return r.Y + r.HalfH }

// CircleRectOverlap reports whether a circle intersects the rectangle.
// Uses the closest point on the rectangle to the circle center.
func CircleRectOverlap(cx, cy, radius float64, r Rect) bool {
	nearX := Clamp(cx, r.Left(), r.Right())
	nearY := Clamp(cy, r.Top(), r.Bottom())
	return DistSq(cx, cy, nearX, nearY) < radius*radius
}

// SegmentCircleHit finds the earliest intersection of the segment
// (x1,y1)-(x2,y2) with the circle. It returns the parameter t in [0,1]
// along the segment and whether a hit exists. A segment starting inside
// the circle reports t=0.
func SegmentCircleHit(x1, y1, x2, y2, cx, cy, radius float64) (float64, bool) {
	if DistSq(x1, y1, cx, cy) <= radius*radius {
		return 0, true
	}
	dx := x2 - x1
	dy := y2 - y1
	fx := x1 - cx
	fy := y1 - cy

	a := dx*dx + dy*dy
	if a == 0 {
		return 0, false
	}
	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sqrtDisc := math.Sqrt(disc)
	t := (-b - sqrtDisc) / (2 * a)
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}

// SegmentRectHit finds the earliest intersection of the segment with the
// rectangle using the slab method. A segment starting inside reports t=0.
func SegmentRectHit(x1, y1, x2, y2 float64, r Rect) (float64, bool) {
	dx := x2 - x1
	dy := y2 - y1

	tMin := 0.0
	tMax := 1.0

	// X slab
	if dx == 0 {
		if x1 < r.Left() || x1 > r.Right() {
			return 0, false
		}
	} else {
		t1 := (r.Left() - x1) / dx
		t2 := (r.Right() - x1) / dx
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	// Y slab
	if dy == 0 {
		if y1 < r.Top() || y1 > r.Bottom() {
			return 0, false
		}
	} else {
		t1 := (r.Top() - y1) / dy
		t2 := (r.Bottom() - y1) / dy
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	return tMin, true
}
