package service

import (
	"fmt"
	"math"

	"lp-solver/domain"
)

// Validate checks a problem at the service boundary and normalises the
// spelling of relations and senses. The solver itself trusts its input.
func Validate(p domain.Problem) (domain.Problem, error) {
	if len(p.Constraints) > MaxConstraints {
		return domain.Problem{}, &domain.ValidationError{
			Field:  "constraints",
			Reason: fmt.Sprintf("at most %d constraints are allowed, got %d", MaxConstraints, len(p.Constraints)),
		}
	}

	out := domain.Problem{Name: p.Name, Constraints: make([]domain.Constraint, 0, len(p.Constraints))}

	if p.Objective != nil {
		obj := *p.Objective
		sense, err := domain.ParseSense(string(obj.Sense))
		if err != nil {
			return domain.Problem{}, &domain.ValidationError{Field: "objective.sense", Reason: err.Error()}
		}
		obj.Sense = sense
		if err := checkNumber("objective.cx1", obj.CX1); err != nil {
			return domain.Problem{}, err
		}
		if err := checkNumber("objective.cx2", obj.CX2); err != nil {
			return domain.Problem{}, err
		}
		out.Objective = &obj
	}

	for i, c := range p.Constraints {
		field := fmt.Sprintf("constraints[%d]", i)

		rel, err := domain.ParseRelation(string(c.Relation))
		if err != nil {
			return domain.Problem{}, &domain.ValidationError{Field: field + ".relation", Reason: err.Error()}
		}
		c.Relation = rel

		if err := checkNumber(field+".a", c.A); err != nil {
			return domain.Problem{}, err
		}
		if err := checkNumber(field+".b", c.B); err != nil {
			return domain.Problem{}, err
		}
		if err := checkNumber(field+".rhs", c.RHS); err != nil {
			return domain.Problem{}, err
		}
		out.Constraints = append(out.Constraints, c)
	}

	return out, nil
}

func checkNumber(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &domain.ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if math.Abs(v) > MaxCoefficient {
		return &domain.ValidationError{Field: field, Reason: fmt.Sprintf("exceeds the maximum magnitude of %g", MaxCoefficient)}
	}
	return nil
}
