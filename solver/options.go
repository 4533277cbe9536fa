package solver

const (
	// DefaultPrecision is the number of decimals coordinates are rounded to.
	DefaultPrecision = 2
	// DefaultTolerance absorbs floating noise when a rounded point is
	// substituted back into a constraint.
	DefaultTolerance = 1e-9
)

// Options tune a solve. The zero value rounds to whole numbers, has no
// tolerance and skips unboundedness detection; start from DefaultOptions.
type Options struct {
	Precision int     `json:"precision"`
	Tolerance float64 `json:"tolerance"`

	// ExcludeOrigin drops (0,0) from the feasible vertex set.
	ExcludeOrigin bool `json:"exclude_origin"`

	// DetectUnbounded reports StatusUnbounded instead of picking the best
	// enumerated vertex when the objective can grow without limit.
	DetectUnbounded bool `json:"detect_unbounded"`
}

func DefaultOptions() Options {
	return Options{
		Precision:       DefaultPrecision,
		Tolerance:       DefaultTolerance,
		DetectUnbounded: true,
	}
}

func (o Options) normalized() Options {
	if o.Precision < 0 {
		o.Precision = 0
	}
	if o.Tolerance < 0 {
		o.Tolerance = 0
	}
	return o
}
