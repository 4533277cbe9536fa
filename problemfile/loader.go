// Package problemfile reads linear programs from YAML files.
package problemfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"lp-solver/domain"
)

// Load reads and maps the problem file at path.
func Load(path string) (domain.Problem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Problem{}, &domain.OpError{
			Op:   "problemfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	p, err := Parse(b)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return domain.Problem{}, err
	}
	return p, nil
}

// Parse decodes a problem document. Unknown keys are rejected.
func Parse(b []byte) (domain.Problem, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var dto YAMLProblem
	if err := dec.Decode(&dto); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return domain.Problem{}, &domain.OpError{
			Op:   "problemfile.parse",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	p, err := Map(dto)
	if err != nil {
		return domain.Problem{}, &domain.OpError{
			Op:   "problemfile.parse",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}
	return p, nil
}

// Map converts the YAML shape into a domain problem.
func Map(dto YAMLProblem) (domain.Problem, error) {
	p := domain.Problem{Name: dto.Name}

	if dto.Objective != nil {
		sense, err := domain.ParseSense(dto.Objective.Sense)
		if err != nil {
			return domain.Problem{}, fmt.Errorf("objective.sense: %w", err)
		}
		p.Objective = &domain.Objective{
			CX1:   dto.Objective.X1,
			CX2:   dto.Objective.X2,
			Sense: sense,
		}
	}

	p.Constraints = make([]domain.Constraint, 0, len(dto.Constraints))
	for i, c := range dto.Constraints {
		rel, err := domain.ParseRelation(c.Op)
		if err != nil {
			return domain.Problem{}, fmt.Errorf("constraints[%d].op: %w", i, err)
		}
		p.Constraints = append(p.Constraints, domain.Constraint{
			A:        c.X1,
			B:        c.X2,
			Relation: rel,
			RHS:      c.RHS,
		})
	}
	return p, nil
}
