package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// diffPoints compares the coordinates of two points with a tolerance of
// [Epsilon].
func diffPoints[T Scalar, A Coords[T]](t *testing.T, want, got Point[T, A]) {
	t.Helper()
	diff(t, want.Coords(), got.Coords(), cmpopts.EquateApprox(0, Epsilon))
}
