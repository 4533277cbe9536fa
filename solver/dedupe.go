package solver

import "lp-solver/domain"

// Dedupe keeps the first occurrence of every distinct coordinate pair after
// rounding to precision decimals. Order of first occurrence is preserved.
func Dedupe(points []domain.Point, precision int) []domain.Point {
	seen := make(map[domain.Point]struct{}, len(points))
	out := make([]domain.Point, 0, len(points))
	for _, p := range points {
		key := roundPoint(p, precision)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
