package solver

import (
	"math"

	"lp-solver/domain"
)

// Unbounded reports whether the objective can improve without limit over
// the region defined by constraints and x, y >= 0. It assumes the region is
// not empty.
//
// The recession cone of the region lives in the first quadrant, so its
// extreme rays are among the axis directions and the directions of the
// constraint lines. The objective is unbounded iff it strictly improves
// along one of those rays that stays inside the cone.
func Unbounded(constraints []domain.Constraint, obj domain.Objective, tol float64) bool {
	for _, d := range candidateRays(constraints) {
		if !inRecessionCone(d, constraints, tol) {
			continue
		}
		gain := Value(obj, d)
		if obj.Sense == domain.Minimize {
			gain = -gain
		}
		if gain > tol {
			return true
		}
	}
	return false
}

func candidateRays(constraints []domain.Constraint) []domain.Point {
	rays := []domain.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}
	for _, c := range constraints {
		n := math.Hypot(c.A, c.B)
		if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			continue
		}
		rays = append(rays,
			domain.Point{X: c.B / n, Y: -c.A / n},
			domain.Point{X: -c.B / n, Y: c.A / n},
		)
	}
	return rays
}

func inRecessionCone(d domain.Point, constraints []domain.Constraint, tol float64) bool {
	if d.X < -tol || d.Y < -tol {
		return false
	}
	for _, c := range constraints {
		lhs := c.A*d.X + c.B*d.Y
		switch c.Relation {
		case domain.LessEqual:
			if lhs > tol {
				return false
			}
		case domain.GreaterEqual:
			if lhs < -tol {
				return false
			}
		case domain.Equal:
			if math.Abs(lhs) > tol {
				return false
			}
		default:
			return false
		}
	}
	return true
}
