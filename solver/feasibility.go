package solver

import (
	"gonum.org/v1/gonum/floats/scalar"

	"lp-solver/domain"
)

// Satisfies reports whether p meets constraint c. tol only absorbs the
// noise of evaluating a·x + b·y on already rounded coordinates.
func Satisfies(c domain.Constraint, p domain.Point, tol float64) bool {
	lhs := c.A*p.X + c.B*p.Y
	switch c.Relation {
	case domain.LessEqual:
		return lhs <= c.RHS+tol
	case domain.GreaterEqual:
		return lhs >= c.RHS-tol
	case domain.Equal:
		return scalar.EqualWithinAbs(lhs, c.RHS, tol)
	}
	return false
}

// Feasible reports whether p is non-negative and satisfies every constraint.
func Feasible(p domain.Point, constraints []domain.Constraint, tol float64) bool {
	if !(p.X >= 0 && p.Y >= 0) {
		return false
	}
	for _, c := range constraints {
		if !Satisfies(c, p, tol) {
			return false
		}
	}
	return true
}

// FilterFeasible keeps the points that pass Feasible, preserving order.
// With excludeOrigin set, (0,0) is dropped as well.
func FilterFeasible(points []domain.Point, constraints []domain.Constraint, tol float64, excludeOrigin bool) []domain.Point {
	out := make([]domain.Point, 0, len(points))
	for _, p := range points {
		if excludeOrigin && p.X == 0 && p.Y == 0 {
			continue
		}
		if Feasible(p, constraints, tol) {
			out = append(out, p)
		}
	}
	return out
}
