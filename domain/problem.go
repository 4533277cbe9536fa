package domain

import (
	"fmt"
	"strings"
)

// Relation is the comparison operator of a constraint.
type Relation string

const (
	LessEqual    Relation = "<="
	GreaterEqual Relation = ">="
	Equal        Relation = "="
)

// ParseRelation accepts the symbolic and short textual spellings of a relation.
func ParseRelation(s string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "<=", "≤", "le", "lte":
		return LessEqual, nil
	case ">=", "≥", "ge", "gte":
		return GreaterEqual, nil
	case "=", "==", "eq":
		return Equal, nil
	}
	return "", fmt.Errorf("unknown relation %q", s)
}

// Sense tells the selector which direction is better.
type Sense string

const (
	Maximize Sense = "maximize"
	Minimize Sense = "minimize"
)

func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "maximize", "max":
		return Maximize, nil
	case "minimize", "min":
		return Minimize, nil
	}
	return "", fmt.Errorf("unknown objective sense %q", s)
}

// Constraint represents a·x1 + b·x2 <relation> rhs.
type Constraint struct {
	A        float64  `json:"a"`
	B        float64  `json:"b"`
	Relation Relation `json:"relation"`
	RHS      float64  `json:"rhs"`
}

func (c Constraint) String() string {
	return fmt.Sprintf("%g·x1 + %g·x2 %s %g", c.A, c.B, c.Relation, c.RHS)
}

// Objective is cx1·x1 + cx2·x2 together with its sense.
type Objective struct {
	CX1   float64 `json:"cx1"`
	CX2   float64 `json:"cx2"`
	Sense Sense   `json:"sense"`
}

func (o Objective) String() string {
	return fmt.Sprintf("%s Z = %g·x1 + %g·x2", o.Sense, o.CX1, o.CX2)
}

// Problem is the full input of one solve. A nil Objective is allowed and
// yields a report without an optimum.
type Problem struct {
	Name        string       `json:"name,omitempty"`
	Objective   *Objective   `json:"objective,omitempty"`
	Constraints []Constraint `json:"constraints"`
}
