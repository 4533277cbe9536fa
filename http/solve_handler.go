package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"lp-solver/domain"
	"lp-solver/logger"
	"lp-solver/service"
)

const (
	maxBodyBytes        = 1 << 20
	defaultHistoryLimit = 20
)

type SolveHandler struct {
	service *service.SolveService
	metrics *Metrics
	logger  *slog.Logger
}

func NewSolveHandler(service *service.SolveService, metrics *Metrics, l *slog.Logger) *SolveHandler {
	if l == nil {
		l = logger.Discard()
	}
	return &SolveHandler{service: service, metrics: metrics, logger: l}
}

// Solve handles POST /lp/solve.
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	log := h.logger.With("request_id", RequestIDFrom(r.Context()))

	var problem domain.Problem
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&problem); err != nil {
		log.Debug("http.solve.decode_failed", "err", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		log.Debug("http.solve.trailing_data", "err", err)
		http.Error(w, "invalid request body: trailing data", http.StatusBadRequest)
		return
	}

	opts, err := h.solveOptions(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Solve(r.Context(), problem, opts)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error("http.solve.failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveSolve(result.Report.Status, result.Cached)
	}
	h.writeJSON(w, log, result)
}

// History handles GET /lp/history.
func (h *SolveHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	h.writeJSON(w, h.logger, h.service.History(limit))
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (h *SolveHandler) solveOptions(q url.Values) (service.SolveOptions, error) {
	var opts service.SolveOptions

	explain, err := boolParam(q, "explain", false)
	if err != nil {
		return opts, err
	}
	opts.Explain = explain

	solverOpts := h.service.Defaults()
	overridden := false
	for _, p := range []struct {
		name string
		dst  *bool
	}{
		{"exclude_origin", &solverOpts.ExcludeOrigin},
		{"detect_unbounded", &solverOpts.DetectUnbounded},
	} {
		if q.Get(p.name) == "" {
			continue
		}
		v, err := boolParam(q, p.name, *p.dst)
		if err != nil {
			return opts, err
		}
		*p.dst = v
		overridden = true
	}
	if overridden {
		opts.Solver = &solverOpts
	}
	return opts, nil
}

func boolParam(q url.Values, name string, def bool) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, errors.New(name + " must be a boolean")
	}
	return v, nil
}

// writeJSON encodes into a buffer first so a failed encode can still
// produce a clean 500.
func (h *SolveHandler) writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error("http.encode_failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn("http.write_failed", "err", err)
	}
}
