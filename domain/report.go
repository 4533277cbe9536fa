package domain

import "time"

// Status classifies the outcome of a solve. None of them is an error.
type Status string

const (
	StatusOptimal       Status = "optimal"
	StatusInfeasible    Status = "infeasible"
	StatusUnbounded     Status = "unbounded"
	StatusNoConstraints Status = "no_constraints"
	StatusNoObjective   Status = "no_objective"
)

// Solution is the selected optimum.
type Solution struct {
	Vertex Point   `json:"vertex"`
	Value  float64 `json:"value"`
}

type ReportRow struct {
	Index     int     `json:"index"`
	X1        float64 `json:"x1"`
	X2        float64 `json:"x2"`
	Z         float64 `json:"z"`
	IsOptimal bool    `json:"is_optimal"`
}

// Report is the complete result of one solve.
type Report struct {
	Name        string       `json:"name,omitempty"`
	Status      Status       `json:"status"`
	Objective   *Objective   `json:"objective,omitempty"`
	Constraints []Constraint `json:"constraints"`
	Vertices    []Vertex     `json:"vertices"`
	Rows        []ReportRow  `json:"rows"`
	Optimum     *Solution    `json:"optimum,omitempty"`
	Summary     string       `json:"summary"`
	Plot        PlotData     `json:"plot"`
}

// SolveRecord is one entry of the solve history.
type SolveRecord struct {
	ID       string    `json:"id"`
	SolvedAt time.Time `json:"solved_at"`
	Problem  Problem   `json:"problem"`
	Status   Status    `json:"status"`
	Optimum  *Solution `json:"optimum,omitempty"`
	Cached   bool      `json:"cached"`
}
