package solver

import (
	"testing"

	"lp-solver/domain"
)

func TestPlot_BoxMaximize(t *testing.T) {
	r := Solve(domain.Problem{
		Objective:   maximize(3, 2),
		Constraints: []domain.Constraint{le(1, 0, 4), le(0, 1, 4)},
	}, DefaultOptions())

	plot := r.Plot
	if plot.Window != (domain.Window{XMax: 5, YMax: 5}) {
		t.Fatalf("expected 5x5 window, got %+v", plot.Window)
	}

	if len(plot.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(plot.Segments))
	}
	want := domain.Segment{From: domain.Point{X: 4, Y: 0}, To: domain.Point{X: 4, Y: 5}}
	if plot.Segments[0].Constraint != 0 || plot.Segments[0].Segment != want {
		t.Errorf("expected %+v, got %+v", want, plot.Segments[0])
	}

	if plot.ObjectiveLine == nil {
		t.Fatalf("expected an objective line")
	}
	wantIso := domain.Segment{From: domain.Point{X: 3.33, Y: 5}, To: domain.Point{X: 5, Y: 2.5}}
	if *plot.ObjectiveLine != wantIso {
		t.Errorf("expected %+v, got %+v", wantIso, *plot.ObjectiveLine)
	}

	if len(plot.Points) != len(r.Vertices) {
		t.Errorf("expected one plot point per vertex")
	}
}

func TestClipLine(t *testing.T) {
	w := domain.Window{XMax: 10, YMax: 10}

	cases := []struct {
		name string
		eq   domain.Equation
		want domain.Segment
		ok   bool
	}{
		{"diagonal", domain.Equation{A: 1, B: 1, C: 4}, domain.Segment{From: domain.Point{X: 0, Y: 4}, To: domain.Point{X: 4, Y: 0}}, true},
		{"horizontal", domain.Equation{A: 0, B: 2, C: 6}, domain.Segment{From: domain.Point{X: 0, Y: 3}, To: domain.Point{X: 10, Y: 3}}, true},
		{"outside", domain.Equation{A: 1, B: 1, C: 50}, domain.Segment{}, false},
		{"touches a corner only", domain.Equation{A: 1, B: 1, C: 0}, domain.Segment{}, false},
		{"no direction", domain.Equation{A: 0, B: 0, C: 1}, domain.Segment{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClipLine(tc.eq, w, 2)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestPlotWindow_IgnoresNegativeIntercepts(t *testing.T) {
	w := PlotWindow([]domain.Constraint{le(-1, 0, 5), le(0, 2, 6)}, nil)
	if w != (domain.Window{XMax: 1, YMax: 4}) {
		t.Errorf("unexpected window %+v", w)
	}
}
