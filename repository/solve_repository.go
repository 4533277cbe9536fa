package repository

import "lp-solver/domain"

type SolveRepository interface {
	Save(record domain.SolveRecord) error
	// Recent returns up to n records, newest first.
	Recent(n int) []domain.SolveRecord
}
