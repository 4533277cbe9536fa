package solver

import "lp-solver/domain"

var (
	// boundX is the line x = 0, the edge of x >= 0.
	boundX = domain.Equation{A: 1, B: 0, C: 0}
	// boundY is the line y = 0, the edge of y >= 0.
	boundY = domain.Equation{A: 0, B: 1, C: 0}
)

// ToEquations turns every constraint into its boundary line, in input order,
// and appends the two non-negativity bounds x = 0 and y = 0.
// Coefficients are passed through untouched.
func ToEquations(constraints []domain.Constraint) []domain.Equation {
	eqs := make([]domain.Equation, 0, len(constraints)+2)
	for _, c := range constraints {
		eqs = append(eqs, domain.Equation{A: c.A, B: c.B, C: c.RHS})
	}
	return append(eqs, boundX, boundY)
}
