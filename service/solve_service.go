package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"lp-solver/domain"
	"lp-solver/logger"
	"lp-solver/repository"
	"lp-solver/solver"
)

// Explainer turns a report into prose for the end user.
type Explainer interface {
	Explain(ctx context.Context, r domain.Report) string
}

type SolveOptions struct {
	// Solver overrides the service defaults when set.
	Solver  *solver.Options
	Explain bool
}

type SolveResult struct {
	ID          string        `json:"id"`
	Cached      bool          `json:"cached"`
	Report      domain.Report `json:"report"`
	Explanation string        `json:"explanation,omitempty"`
}

type SolveService struct {
	history   repository.SolveRepository
	cache     repository.CacheRepository
	explainer Explainer
	defaults  solver.Options
	prefix    string
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

type Option func(*SolveService)

func WithExplainer(e Explainer) Option {
	return func(s *SolveService) { s.explainer = e }
}

func WithSolverOptions(o solver.Options) Option {
	return func(s *SolveService) { s.defaults = o }
}

func WithCachePrefix(prefix string) Option {
	return func(s *SolveService) { s.prefix = prefix }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *SolveService) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *SolveService) { s.now = now }
}

// NewSolveService creates a SolveService. A nil cache disables caching.
func NewSolveService(history repository.SolveRepository, cache repository.CacheRepository, opts ...Option) *SolveService {
	s := &SolveService{
		history:  history,
		cache:    cache,
		defaults: solver.DefaultOptions(),
		prefix:   DefaultCachePrefix,
		logger:   logger.Discard(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.explainer == nil {
		s.explainer = NewExplainService(ExplainConfig{}, s.logger)
	}
	return s
}

func (s *SolveService) Defaults() solver.Options {
	return s.defaults
}

// Solve validates the problem, serves it from the cache when possible and
// otherwise runs the solver. Cache and history failures are logged only.
func (s *SolveService) Solve(
	ctx context.Context,
	problem domain.Problem,
	opts SolveOptions,
) (SolveResult, error) {

	problem, err := Validate(problem)
	if err != nil {
		return SolveResult{}, err
	}

	solverOpts := s.defaults
	if opts.Solver != nil {
		solverOpts = *opts.Solver
	}

	result := SolveResult{ID: s.newID()}
	log := s.logger.With("solve_id", result.ID)

	key, err := CacheKey(s.prefix, problem, solverOpts)
	if err != nil {
		log.Warn("solve.cache_key_failed", "err", err)
	}

	if report, ok := s.lookup(ctx, key); ok {
		result.Report = report
		result.Cached = true
	} else {
		result.Report = solver.Solve(problem, solverOpts)
		s.store(ctx, key, result.Report)
	}

	log.Info("solve.done",
		"status", result.Report.Status,
		"constraints", len(problem.Constraints),
		"vertices", len(result.Report.Vertices),
		"cached", result.Cached,
	)

	record := domain.SolveRecord{
		ID:       result.ID,
		SolvedAt: s.now().UTC(),
		Problem:  problem,
		Status:   result.Report.Status,
		Optimum:  result.Report.Optimum,
		Cached:   result.Cached,
	}
	if err := s.history.Save(record); err != nil {
		log.Warn("solve.history_save_failed", "err", err)
	}

	if opts.Explain {
		result.Explanation = s.explainer.Explain(ctx, result.Report)
	}

	return result, nil
}

// History returns the most recent solves, newest first.
func (s *SolveService) History(limit int) []domain.SolveRecord {
	return s.history.Recent(limit)
}

func (s *SolveService) lookup(ctx context.Context, key string) (domain.Report, bool) {
	if s.cache == nil || key == "" {
		return domain.Report{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.Report{}, false
	}
	var report domain.Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		s.logger.Warn("solve.cache_entry_corrupt", "key", key, "err", err)
		return domain.Report{}, false
	}
	return report, true
}

func (s *SolveService) store(ctx context.Context, key string, report domain.Report) {
	if s.cache == nil || key == "" {
		return
	}
	b, err := json.Marshal(report)
	if err != nil {
		s.logger.Warn("solve.cache_encode_failed", "err", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(b)); err != nil {
		s.logger.Warn("solve.cache_write_failed", "key", key, "err", err)
	}
}

// CacheKey derives a stable key from a validated problem and the solver
// options that shape its report.
func CacheKey(prefix string, problem domain.Problem, opts solver.Options) (string, error) {
	b, err := json.Marshal(struct {
		Problem domain.Problem `json:"problem"`
		Options solver.Options `json:"options"`
	}{problem, opts})
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	return fmt.Sprintf("%s%016x", prefix, xxhash.Sum64(b)), nil
}
