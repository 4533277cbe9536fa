package service

import "time"

const (
	MaxConstraints = 200 // pairwise intersection is O(n²)
	MaxCoefficient = 1e9 // absolute bound on any coefficient or right-hand side

	DefaultCachePrefix = "lp:solve:"
	DefaultHistorySize = 100

	explainTimeout = 10 * time.Second
)
