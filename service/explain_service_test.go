package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lp-solver/domain"
	"lp-solver/solver"
)

func solvedBox() domain.Report {
	p, _ := Validate(boxProblem())
	return solver.Solve(p, solver.DefaultOptions())
}

func TestExplain_FallbackWithoutKey(t *testing.T) {
	svc := NewExplainService(ExplainConfig{}, nil)
	if svc.Enabled() {
		t.Fatalf("expected the service to be disabled without an API key")
	}

	got := svc.Explain(context.Background(), solvedBox())
	if !strings.Contains(got, "(x1, x2) = (4.00, 4.00) gives Z = 20.00") {
		t.Errorf("unexpected explanation %q", got)
	}
}

func TestExplain_CallsEndpoint(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("missing bearer token")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  The corner (4, 4) wins.  "}}]}`))
	}))
	defer srv.Close()

	svc := NewExplainService(ExplainConfig{APIKey: "secret", URL: srv.URL, Model: "test-model"}, nil)

	text := svc.Explain(context.Background(), solvedBox())
	if text != "The corner (4, 4) wins." {
		t.Errorf("unexpected explanation %q", text)
	}
	if got.Model != "test-model" || len(got.Messages) != 2 {
		t.Fatalf("unexpected request %+v", got)
	}
	if !strings.Contains(got.Messages[1].Content, "Optimal solution: x1 = 4.00") {
		t.Errorf("expected the summary in the prompt, got %q", got.Messages[1].Content)
	}
}

func TestExplain_FallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewExplainService(ExplainConfig{APIKey: "secret", URL: srv.URL}, nil)

	report := solvedBox()
	if got := svc.Explain(context.Background(), report); got != Fallback(report) {
		t.Errorf("expected the fallback explanation, got %q", got)
	}
}

func TestFallback_Statuses(t *testing.T) {
	cases := []struct {
		status domain.Status
		want   string
	}{
		{domain.StatusNoConstraints, "no constraints"},
		{domain.StatusInfeasible, "no solution"},
		{domain.StatusNoObjective, "no objective"},
		{domain.StatusUnbounded, "without limit"},
	}
	for _, tc := range cases {
		got := Fallback(domain.Report{Status: tc.status})
		if !strings.Contains(got, tc.want) {
			t.Errorf("%s: expected %q in %q", tc.status, tc.want, got)
		}
	}
}
