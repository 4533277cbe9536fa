package solver

import (
	"fmt"
	"strings"

	"lp-solver/domain"
)

// Rows lists the vertices in order and flags the one equal to the optimum.
func Rows(vertices []domain.Vertex, optimum *domain.Solution) []domain.ReportRow {
	rows := make([]domain.ReportRow, 0, len(vertices))
	for i, v := range vertices {
		rows = append(rows, domain.ReportRow{
			Index:     i + 1,
			X1:        v.X,
			X2:        v.Y,
			Z:         v.Value,
			IsOptimal: optimum != nil && v.Point == optimum.Vertex,
		})
	}
	return rows
}

// Summary renders the human readable outcome of a solve.
func Summary(status domain.Status, obj *domain.Objective, vertices []domain.Vertex, optimum *domain.Solution, precision int) string {
	var b strings.Builder

	if status == domain.StatusNoConstraints {
		return "No constraints supplied; nothing to solve."
	}
	if status == domain.StatusInfeasible {
		return "No feasible solution: the constraints admit no vertex with x1 >= 0 and x2 >= 0."
	}

	b.WriteString("Feasible vertices:\n")
	for i, v := range vertices {
		fmt.Fprintf(&b, "  P%d (%.*f, %.*f)", i+1, precision, v.X, precision, v.Y)
		if obj != nil {
			fmt.Fprintf(&b, "  Z = %.*f", precision, v.Value)
		}
		b.WriteByte('\n')
	}

	switch status {
	case domain.StatusNoObjective:
		b.WriteString("No objective supplied; no optimum selected.")
	case domain.StatusUnbounded:
		dir := "increased"
		if obj != nil && obj.Sense == domain.Minimize {
			dir = "decreased"
		}
		fmt.Fprintf(&b, "Unbounded: Z can be %s without limit over the feasible region.", dir)
	case domain.StatusOptimal:
		fmt.Fprintf(&b, "Optimal solution: x1 = %.*f, x2 = %.*f, Z = %.*f (%s)",
			precision, optimum.Vertex.X, precision, optimum.Vertex.Y, precision, optimum.Value, obj.Sense)
	}
	return b.String()
}

// BuildReport assembles the report. It performs no selection of its own.
func BuildReport(p domain.Problem, vertices []domain.Vertex, optimum *domain.Solution, status domain.Status, precision int) domain.Report {
	if vertices == nil {
		vertices = []domain.Vertex{}
	}

	r := domain.Report{
		Name:        p.Name,
		Status:      status,
		Constraints: append([]domain.Constraint{}, p.Constraints...),
		Vertices:    vertices,
		Rows:        Rows(vertices, optimum),
		Optimum:     optimum,
		Summary:     Summary(status, p.Objective, vertices, optimum, precision),
		Plot:        Plot(p, vertices, optimum, precision),
	}
	if p.Objective != nil {
		obj := *p.Objective
		r.Objective = &obj
	}
	return r
}
