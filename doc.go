// Package geom provides points and line segments in one to four dimensions.
//
// It is meant for small programs, such as visualizations, that need a handful
// of geometric predicates and don't want to pull in a full linear algebra or
// computational geometry library.
//
// # Points and lines
//
// [Point] is generic over its coordinate type and its coordinate storage, a
// fixed-size array whose length is the point's dimension. The aliases
// [Point2] and [Point3] name the common cases, and [Pt2] and [Pt3] construct
// them. Because the dimension is part of the type, adding a 2D point to a 3D
// point, or reflecting a 3D point across a line, does not type check.
//
// [Line] is a segment between two distinct points, constructed with
// [NewLine].
//
// # Tolerances
//
// Comparisons use a fixed absolute tolerance, [Epsilon]. Points are equal if
// each pair of coordinates differs by at most Epsilon, which makes equality
// non-transitive near the boundary. Predicates such as [Collinear],
// [Line.Contains], [Line.IsParallel] and [Intersects] never fail; for
// numerically ambiguous input they report false.
//
// There is no exact or adaptive arithmetic. Callers working with nearly
// degenerate geometry have to be aware of the tolerance.
//
// # Errors
//
// Operations that can fail return an error wrapping one of
// [ErrInvalidArgument], [ErrDivisionByZero] or [ErrOutOfRange]. Use
// [errors.Is] to tell them apart.
package geom
