package geom

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for coordinate types.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Coords is the constraint for a point's coordinate storage. The length of
// the array is the point's dimension.
type Coords[T Scalar] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T
}

// ScaleFactor is the set of scalar kinds accepted by [Scale].
type ScaleFactor interface {
	~int | ~float32 | ~float64
}

// Point is a point in Dim-dimensional space, where Dim is the length of A.
//
// Points are values. All methods return new points and leave the receiver
// untouched; the only exception is [Scale], which modifies a point in place.
type Point[T Scalar, A Coords[T]] struct {
	c A
}

type (
	Point1[T Scalar] = Point[T, [1]T]
	Point2[T Scalar] = Point[T, [2]T]
	Point3[T Scalar] = Point[T, [3]T]
	Point4[T Scalar] = Point[T, [4]T]
)

// Pt1 returns the point (x).
func Pt1[T Scalar](x T) Point1[T] { return Point1[T]{[1]T{x}} }

// Pt2 returns the point (x, y).
func Pt2[T Scalar](x, y T) Point2[T] { return Point2[T]{[2]T{x, y}} }

// Pt3 returns the point (x, y, z).
func Pt3[T Scalar](x, y, z T) Point3[T] { return Point3[T]{[3]T{x, y, z}} }

// Pt4 returns the point (x, y, z, w).
func Pt4[T Scalar](x, y, z, w T) Point4[T] { return Point4[T]{[4]T{x, y, z, w}} }

// FromArray returns the point with the given coordinates. The coordinate type
// can't be inferred and has to be spelled out, as in
// FromArray[float64]([3]float64{1, 2, 3}).
func FromArray[T Scalar, A Coords[T]](c A) Point[T, A] {
	return Point[T, A]{c}
}

// NewPoint returns the point with the given coordinates. It returns an error
// wrapping [ErrInvalidArgument] if len(coords) doesn't match the dimension of
// A.
func NewPoint[T Scalar, A Coords[T]](coords ...T) (Point[T, A], error) {
	var pt Point[T, A]
	if len(coords) != len(pt.c) {
		return Point[T, A]{}, fmt.Errorf("%w: got %d coordinates for a %d-dimensional point",
			ErrInvalidArgument, len(coords), len(pt.c))
	}
	for i, v := range coords {
		pt.c[i] = v
	}
	return pt, nil
}

// Dim returns the dimension of points of type Point[T, A].
func Dim[T Scalar, A Coords[T]]() int {
	var a A
	return len(a)
}

// Dimensions returns the point's dimension. It is a property of the type and
// is the same for all points of a given type.
func (pt Point[T, A]) Dimensions() int {
	return len(pt.c)
}

// Coords returns a copy of the point's coordinates.
func (pt Point[T, A]) Coords() A {
	return pt.c
}

// At returns the i-th coordinate. It returns an error wrapping
// [ErrOutOfRange] if i isn't in [0, Dim).
func (pt Point[T, A]) At(i int) (T, error) {
	if i < 0 || i >= len(pt.c) {
		return 0, fmt.Errorf("%w: index %d, dimension %d", ErrOutOfRange, i, len(pt.c))
	}
	return pt.c[i], nil
}

// All returns an iterator over the point's coordinates and their indices.
func (pt Point[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(pt.c); i++ {
			if !yield(i, pt.c[i]) {
				return
			}
		}
	}
}

func (pt Point[T, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < len(pt.c); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", pt.c[i])
	}
	sb.WriteByte(')')
	return sb.String()
}

// Add returns the element-wise sum of pt and o.
func (pt Point[T, A]) Add(o Point[T, A]) Point[T, A] {
	for i := 0; i < len(pt.c); i++ {
		pt.c[i] += o.c[i]
	}
	return pt
}

// Sub returns the element-wise difference pt−o.
func (pt Point[T, A]) Sub(o Point[T, A]) Point[T, A] {
	for i := 0; i < len(pt.c); i++ {
		pt.c[i] -= o.c[i]
	}
	return pt
}

// Mul returns pt with every coordinate multiplied by f.
func (pt Point[T, A]) Mul(f T) Point[T, A] {
	for i := 0; i < len(pt.c); i++ {
		pt.c[i] *= f
	}
	return pt
}

// Div returns pt with every coordinate divided by f. It returns an error
// wrapping [ErrDivisionByZero] if f is exactly zero. For integer types, the
// division truncates.
func (pt Point[T, A]) Div(f T) (Point[T, A], error) {
	if f == 0 {
		return Point[T, A]{}, fmt.Errorf("%w: dividing %s", ErrDivisionByZero, pt)
	}
	for i := 0; i < len(pt.c); i++ {
		pt.c[i] /= f
	}
	return pt, nil
}

// Dot returns the dot product of pt and o, treating both as vectors.
func (pt Point[T, A]) Dot(o Point[T, A]) T {
	var sum T
	for i := 0; i < len(pt.c); i++ {
		sum += pt.c[i] * o.c[i]
	}
	return sum
}

// Distance returns the euclidean distance between two points. For integer
// types, the result is truncated.
func (pt Point[T, A]) Distance(o Point[T, A]) T {
	return T(pt.distance(o))
}

func (pt Point[T, A]) distance(o Point[T, A]) float64 {
	var sum float64
	for i := 0; i < len(pt.c); i++ {
		d := float64(pt.c[i] - o.c[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Magnitude returns the distance between pt and the origin.
func (pt Point[T, A]) Magnitude() T {
	var zero Point[T, A]
	return pt.Distance(zero)
}

// Equal reports whether every coordinate of pt is within [Epsilon] of the
// corresponding coordinate of o.
//
// Because of the tolerance, Equal is not transitive: a may equal b and b may
// equal c without a equaling c.
func (pt Point[T, A]) Equal(o Point[T, A]) bool {
	return pt.ApproxEqual(o, Epsilon)
}

// ApproxEqual reports whether every coordinate of pt is within eps of the
// corresponding coordinate of o.
func (pt Point[T, A]) ApproxEqual(o Point[T, A], eps float64) bool {
	for i := 0; i < len(pt.c); i++ {
		if !nearZero(float64(pt.c[i]-o.c[i]), eps) {
			return false
		}
	}
	return true
}

// Scale multiplies every coordinate of pt by s, in place. Integral factors
// are applied in T. Fractional factors are applied in float64, and for
// integer coordinate types the products are truncated.
func Scale[T Scalar, A Coords[T], S ScaleFactor](pt *Point[T, A], s S) {
	if f := float64(s); f == math.Trunc(f) {
		for i := 0; i < len(pt.c); i++ {
			pt.c[i] *= T(f)
		}
		return
	}
	for i := 0; i < len(pt.c); i++ {
		pt.c[i] = T(float64(pt.c[i]) * float64(s))
	}
}

// ReflectAcrossLine returns the mirror image of pt across the infinite line
// through a and b.
//
// The result is undefined if a and b are the same point.
func ReflectAcrossLine[T Scalar](pt, a, b Point2[T]) Point2[T] {
	x, y := float64(pt.c[0]), float64(pt.c[1])
	x1, y1 := float64(a.c[0]), float64(a.c[1])
	x2, y2 := float64(b.c[0]), float64(b.c[1])

	// The line as ea*x + eb*y + ec = 0.
	ea := y2 - y1
	eb := x1 - x2
	ec := -(ea*x1 + eb*y1)

	f := (ea*x + eb*y + ec) / (ea*ea + eb*eb)
	return Pt2(T(x-2*f*ea), T(y-2*f*eb))
}

// ReflectAcrossPlane returns the mirror image of pt across the plane that
// contains onPlane and is perpendicular to normal.
//
// The result is undefined if normal is the zero vector.
func ReflectAcrossPlane[T Scalar](pt, onPlane, normal Point3[T]) Point3[T] {
	var (
		na = float64(normal.c[0])
		nb = float64(normal.c[1])
		nc = float64(normal.c[2])
	)
	nd := -(na*float64(onPlane.c[0]) + nb*float64(onPlane.c[1]) + nc*float64(onPlane.c[2]))

	x, y, z := float64(pt.c[0]), float64(pt.c[1]), float64(pt.c[2])
	f := (na*x + nb*y + nc*z + nd) / (na*na + nb*nb + nc*nc)
	return Pt3(T(x-2*f*na), T(y-2*f*nb), T(z-2*f*nc))
}

// Collinear reports whether p1, p2, and p3 lie on a common line, that is,
// whether the triangle they span has a signed area within [Epsilon] of zero.
func Collinear[T Scalar](p1, p2, p3 Point2[T]) bool {
	d2 := p2.Sub(p1)
	d3 := p3.Sub(p1)
	det := float64(d2.c[0])*float64(d3.c[1]) - float64(d2.c[1])*float64(d3.c[0])
	return nearZero(det, Epsilon)
}
