package solver

import (
	"math"

	"lp-solver/domain"
)

// Value is cx1·x + cx2·y.
func Value(obj domain.Objective, p domain.Point) float64 {
	return obj.CX1*p.X + obj.CX2*p.Y
}

// Evaluate attaches the objective value to every point.
func Evaluate(points []domain.Point, obj domain.Objective) []domain.Vertex {
	vertices := make([]domain.Vertex, 0, len(points))
	for _, p := range points {
		vertices = append(vertices, domain.Vertex{Point: p, Value: Value(obj, p)})
	}
	return vertices
}

// Select scans vertices in order and keeps the best one. Only a strict
// improvement replaces the current best, so ties go to the earliest vertex.
// It returns nil when there is nothing to select.
func Select(vertices []domain.Vertex, sense domain.Sense) *domain.Solution {
	minimize := sense == domain.Minimize

	best := math.Inf(-1)
	if minimize {
		best = math.Inf(1)
	}

	var sol *domain.Solution
	for _, v := range vertices {
		better := v.Value > best
		if minimize {
			better = v.Value < best
		}
		if !better {
			continue
		}
		best = v.Value
		sol = &domain.Solution{Vertex: v.Point, Value: v.Value}
	}
	return sol
}
