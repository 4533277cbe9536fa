// Package solver implements the corner-point method for linear programs in
// two non-negative variables: every pair of boundary lines is intersected,
// infeasible and duplicate points are dropped and the objective is
// evaluated on what remains.
package solver

import "lp-solver/domain"

// Solve runs the whole pipeline once. It never fails: degenerate inputs
// surface through the report status.
func Solve(p domain.Problem, opts Options) domain.Report {
	opts = opts.normalized()

	if len(p.Constraints) == 0 {
		return BuildReport(p, nil, nil, domain.StatusNoConstraints, opts.Precision)
	}

	eqs := ToEquations(p.Constraints)
	raw := Intersections(eqs, opts.Precision)
	feasible := FilterFeasible(raw, p.Constraints, opts.Tolerance, opts.ExcludeOrigin)
	points := Dedupe(feasible, opts.Precision)

	var obj domain.Objective
	if p.Objective != nil {
		obj = *p.Objective
	}
	vertices := Evaluate(points, obj)

	status, optimum := classify(p, vertices, opts)
	return BuildReport(p, vertices, optimum, status, opts.Precision)
}

func classify(p domain.Problem, vertices []domain.Vertex, opts Options) (domain.Status, *domain.Solution) {
	switch {
	case len(vertices) == 0:
		return domain.StatusInfeasible, nil
	case p.Objective == nil:
		return domain.StatusNoObjective, nil
	case opts.DetectUnbounded && Unbounded(p.Constraints, *p.Objective, opts.Tolerance):
		return domain.StatusUnbounded, nil
	}

	optimum := Select(vertices, p.Objective.Sense)
	if optimum == nil {
		return domain.StatusInfeasible, nil
	}
	return domain.StatusOptimal, optimum
}
