package geom

import (
	"fmt"
	"math"
)

// Line is a line segment between two distinct points.
//
// Lines are immutable. Use [NewLine] to construct them; the zero value is a
// degenerate segment that most methods treat as empty.
type Line[T Scalar, A Coords[T]] struct {
	start Point[T, A]
	end   Point[T, A]
}

type (
	Line2[T Scalar] = Line[T, [2]T]
	Line3[T Scalar] = Line[T, [3]T]
)

// NewLine returns the segment from start to end. It returns an error wrapping
// [ErrInvalidArgument] if the two points are equal according to
// [Point.Equal].
func NewLine[T Scalar, A Coords[T]](start, end Point[T, A]) (Line[T, A], error) {
	if start.Equal(end) {
		return Line[T, A]{}, fmt.Errorf("%w: start and end of a line must be distinct, both are %s",
			ErrInvalidArgument, start)
	}
	return Line[T, A]{start: start, end: end}, nil
}

func (l Line[T, A]) Start() Point[T, A] { return l.start }
func (l Line[T, A]) End() Point[T, A]   { return l.end }

func (l Line[T, A]) String() string {
	return fmt.Sprintf("Line from %s to %s", l.start, l.end)
}

// Length returns the length of the line.
func (l Line[T, A]) Length() T {
	return l.start.Distance(l.end)
}

// Direction returns the vector from the start to the end of the line.
func (l Line[T, A]) Direction() Point[T, A] {
	return l.end.Sub(l.start)
}

// Reversed returns the line with start and end swapped.
func (l Line[T, A]) Reversed() Line[T, A] {
	return Line[T, A]{start: l.end, end: l.start}
}

// Eval linearly interpolates between the start (t = 0) and end (t = 1) of
// the line. For integer types, the coordinates are truncated.
func (l Line[T, A]) Eval(t float64) Point[T, A] {
	var pt Point[T, A]
	for i := 0; i < len(pt.c); i++ {
		s, e := float64(l.start.c[i]), float64(l.end.c[i])
		pt.c[i] = T(s + t*(e-s))
	}
	return pt
}

// Midpoint returns the point halfway between start and end.
func (l Line[T, A]) Midpoint() Point[T, A] {
	return l.Eval(0.5)
}

// Contains reports whether pt lies on the closed segment.
//
// The offset of pt from the start has to be the same multiple r of the
// line's direction in every coordinate, with 0 <= r <= 1. Coordinates in
// which the direction is zero (within [Epsilon]) are not checked at all. For
// example, the segment from (0, 0) to (10, 0) contains (5, 3).
func (l Line[T, A]) Contains(pt Point[T, A]) bool {
	d := l.Direction()
	v := pt.Sub(l.start)

	var zero Point[T, A]
	if d.distance(zero) < Epsilon {
		return false
	}

	for i := 0; i < len(d.c); i++ {
		di := float64(d.c[i])
		if math.Abs(di) <= Epsilon {
			continue
		}
		r := float64(v.c[i]) / di
		for j := 0; j < len(d.c); j++ {
			dj := float64(d.c[j])
			if math.Abs(dj) > Epsilon && !nearZero(float64(v.c[j])/dj-r, Epsilon) {
				return false
			}
		}
		return r >= 0 && r <= 1
	}
	return false
}

// IsParallel reports whether the two lines have parallel directions.
//
// Every component of each direction is compared against the first component
// of the other direction. In three or more dimensions, two directions whose
// first components are both zero are always reported as parallel.
func (l Line[T, A]) IsParallel(o Line[T, A]) bool {
	d1 := l.Direction()
	d2 := o.Direction()
	for i := 1; i < len(d1.c); i++ {
		cross := float64(d1.c[i])*float64(d2.c[0]) - float64(d1.c[0])*float64(d2.c[i])
		if !nearZero(cross, Epsilon) {
			return false
		}
	}
	return true
}

// Intersects reports whether the segments l and o cross.
//
// Parallel segments never intersect, even when they are collinear and
// overlap.
func Intersects[T Scalar](l, o Line2[T]) bool {
	if l.IsParallel(o) {
		return false
	}

	x1, y1 := float64(l.start.c[0]), float64(l.start.c[1])
	x2, y2 := float64(l.end.c[0]), float64(l.end.c[1])
	x3, y3 := float64(o.start.c[0]), float64(o.start.c[1])
	x4, y4 := float64(o.end.c[0]), float64(o.end.c[1])

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < Epsilon {
		return false
	}
	// t = position on l, u = position on o
	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
