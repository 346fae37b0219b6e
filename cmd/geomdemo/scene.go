package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"honnef.co/go/geom"
)

type (
	point = geom.Point2[float64]
	line  = geom.Line2[float64]
)

type scene struct {
	points []point
	lines  []line
}

// newScene returns the sample scene: eight points and six segments between
// them.
func newScene() (*scene, error) {
	sc := &scene{
		points: []point{
			geom.Pt2(100.0, 200.0),
			geom.Pt2(400.0, 600.0),
			geom.Pt2(200.0, 300.0),
			geom.Pt2(500.0, 700.0),
			geom.Pt2(150.0, 450.0),
			geom.Pt2(350.0, 250.0),
			geom.Pt2(450.0, 500.0),
			geom.Pt2(600.0, 100.0),
		},
	}
	pairs := [][2]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {1, 7}, {2, 6}}
	for _, pr := range pairs {
		l, err := geom.NewLine(sc.points[pr[0]], sc.points[pr[1]])
		if err != nil {
			return nil, fmt.Errorf("line %d-%d: %w", pr[0], pr[1], err)
		}
		sc.lines = append(sc.lines, l)
	}
	return sc, nil
}

func (sc *scene) report(logger *slog.Logger) {
	for i, l := range sc.lines {
		logger.Info("line", "index", i, "line", l.String(), "length", l.Length(), "midpoint", l.Midpoint().String())
	}
	for i, l := range sc.lines {
		for j := i + 1; j < len(sc.lines); j++ {
			o := sc.lines[j]
			logger.Debug("pair", "a", i, "b", j, "parallel", l.IsParallel(o), "intersects", geom.Intersects(l, o))
			if l.IsParallel(o) {
				logger.Info("parallel lines", "a", i, "b", j)
			} else if geom.Intersects(l, o) {
				logger.Info("intersecting lines", "a", i, "b", j)
			}
		}
	}

	query := geom.Pt2(2.5, 4.0)
	logger.Info("containment", "point", query.String(), "line", 0, "contains", sc.lines[0].Contains(query))

	p1, p2, p3 := geom.Pt2(1.0, 1.0), geom.Pt2(2.0, 2.0), geom.Pt2(3.0, 3.0)
	logger.Info("collinear", "points", fmt.Sprint(p1, p2, p3), "collinear", geom.Collinear(p1, p2, p3))

	a, b := sc.points[0], sc.points[1]
	for _, pt := range sc.points[2:] {
		logger.Debug("reflection", "point", pt.String(), "image", geom.ReflectAcrossLine(pt, a, b).String())
	}
}

// writeSVG draws points as circles and lines as paths.
func (sc *scene) writeSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `<svg viewBox="0 0 1000 800" xmlns="http://www.w3.org/2000/svg">`)
	for _, l := range sc.lines {
		s, e := l.Start().Coords(), l.End().Coords()
		fmt.Fprintf(bw, `<path d="M%g,%g L%g,%g" stroke="blue" fill="none" />`+"\n", s[0], s[1], e[0], e[1])
	}
	for _, pt := range sc.points {
		c := pt.Coords()
		fmt.Fprintf(bw, `<circle cx="%g" cy="%g" r="5" fill="red" />`+"\n", c[0], c[1])
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}
