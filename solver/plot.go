package solver

import (
	"math"
	"sort"

	"lp-solver/domain"
)

// PlotWindow sizes the chart so every vertex and every positive axis
// intercept is visible, with one unit of margin.
func PlotWindow(constraints []domain.Constraint, vertices []domain.Vertex) domain.Window {
	var xmax, ymax float64
	for _, v := range vertices {
		xmax = math.Max(xmax, v.X)
		ymax = math.Max(ymax, v.Y)
	}
	for _, c := range constraints {
		if c.A != 0 {
			if x := c.RHS / c.A; finite(x) && x > 0 {
				xmax = math.Max(xmax, x)
			}
		}
		if c.B != 0 {
			if y := c.RHS / c.B; finite(y) && y > 0 {
				ymax = math.Max(ymax, y)
			}
		}
	}
	return domain.Window{XMax: xmax + 1, YMax: ymax + 1}
}

// ClipLine returns the part of eq that lies inside w. It returns false when
// the line misses the window or only touches it in one point.
func ClipLine(eq domain.Equation, w domain.Window, precision int) (domain.Segment, bool) {
	var pts []domain.Point
	inside := func(p domain.Point) bool {
		const eps = 1e-9
		return finite(p.X) && finite(p.Y) &&
			p.X >= -eps && p.X <= w.XMax+eps &&
			p.Y >= -eps && p.Y <= w.YMax+eps
	}

	if eq.B != 0 {
		for _, x := range []float64{0, w.XMax} {
			p := domain.Point{X: x, Y: (eq.C - eq.A*x) / eq.B}
			if inside(p) {
				pts = append(pts, roundPoint(p, precision))
			}
		}
	}
	if eq.A != 0 {
		for _, y := range []float64{0, w.YMax} {
			p := domain.Point{X: (eq.C - eq.B*y) / eq.A, Y: y}
			if inside(p) {
				pts = append(pts, roundPoint(p, precision))
			}
		}
	}

	pts = Dedupe(pts, precision)
	if len(pts) < 2 {
		return domain.Segment{}, false
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	return domain.Segment{From: pts[0], To: pts[len(pts)-1]}, true
}

// Plot assembles the chart data of a solved problem.
func Plot(p domain.Problem, vertices []domain.Vertex, optimum *domain.Solution, precision int) domain.PlotData {
	w := PlotWindow(p.Constraints, vertices)
	data := domain.PlotData{
		Window:   w,
		Segments: []domain.ConstraintSegment{},
		Points:   make([]domain.Point, 0, len(vertices)),
	}

	for i, c := range p.Constraints {
		seg, ok := ClipLine(domain.Equation{A: c.A, B: c.B, C: c.RHS}, w, precision)
		if !ok {
			continue
		}
		data.Segments = append(data.Segments, domain.ConstraintSegment{Constraint: i, Segment: seg})
	}

	if p.Objective != nil && optimum != nil {
		iso := domain.Equation{A: p.Objective.CX1, B: p.Objective.CX2, C: optimum.Value}
		if seg, ok := ClipLine(iso, w, precision); ok {
			data.ObjectiveLine = &seg
		}
	}

	for _, v := range vertices {
		data.Points = append(data.Points, v.Point)
	}
	return data
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
