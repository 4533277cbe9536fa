package solver

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/combin"

	"lp-solver/domain"
)

// Intersect solves the 2x2 system formed by p and q with Cramer's rule.
// It returns false when the determinant is exactly zero (parallel or
// coincident lines).
func Intersect(p, q domain.Equation) (domain.Point, bool) {
	d := p.A*q.B - q.A*p.B
	if d == 0 {
		return domain.Point{}, false
	}
	return domain.Point{
		X: (q.B*p.C - p.B*q.C) / d,
		Y: (p.A*q.C - q.A*p.C) / d,
	}, true
}

// Intersections returns the intersection of every unordered pair (i, j),
// i < j, visited with i ascending then j ascending. Coordinates are rounded
// to precision decimals right away. Duplicates are kept.
func Intersections(eqs []domain.Equation, precision int) []domain.Point {
	if len(eqs) < 2 {
		return nil
	}

	pairs := combin.Combinations(len(eqs), 2)
	points := make([]domain.Point, 0, len(pairs))
	for _, pair := range pairs {
		pt, ok := Intersect(eqs[pair[0]], eqs[pair[1]])
		if !ok {
			continue
		}
		points = append(points, roundPoint(pt, precision))
	}
	return points
}

func roundPoint(p domain.Point, precision int) domain.Point {
	return domain.Point{
		X: scalar.Round(p.X, precision),
		Y: scalar.Round(p.Y, precision),
	}
}
