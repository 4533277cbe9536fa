package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lp-solver/domain"
	"lp-solver/logger"
)

const (
	defaultExplainURL   = "https://api.openai.com/v1/chat/completions"
	defaultExplainModel = "gpt-4o-mini"
)

type ExplainConfig struct {
	APIKey  string
	URL     string
	Model   string
	Timeout time.Duration
}

// ExplainService describes a report in plain language. With an API key it
// asks a chat-completions endpoint; otherwise, and whenever that call fails,
// it falls back to a deterministic explanation.
type ExplainService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
	logger     *slog.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewExplainService(cfg ExplainConfig, l *slog.Logger) *ExplainService {
	if l == nil {
		l = logger.Discard()
	}
	if cfg.URL == "" {
		cfg.URL = defaultExplainURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultExplainModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = explainTimeout
	}

	return &ExplainService{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.URL,
		model:   cfg.Model,
		enabled: cfg.APIKey != "",
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: l,
	}
}

func (s *ExplainService) Enabled() bool { return s.enabled }

func (s *ExplainService) Explain(ctx context.Context, r domain.Report) string {
	if !s.enabled {
		return Fallback(r)
	}

	explanation, err := s.callLLM(ctx, buildPrompt(r))
	if err != nil {
		s.logger.Warn("explain.llm_failed", "err", err)
		return Fallback(r)
	}
	return explanation
}

func buildPrompt(r domain.Report) string {
	var constraints strings.Builder
	for i, c := range r.Constraints {
		fmt.Fprintf(&constraints, "%d. %s\n", i+1, c)
	}

	objective := "none"
	if r.Objective != nil {
		objective = r.Objective.String()
	}

	return fmt.Sprintf(`Explain the result of this two-variable linear program to a student.

OBJECTIVE: %s
CONSTRAINTS (x1 >= 0 and x2 >= 0 are implied):
%s
RESULT:
%s

INSTRUCTIONS:
1. Explain what the corner points are and why the optimum of a linear program lies on one of them.
2. Say which corner is optimal and why, quoting the values of x1, x2 and Z.
3. If there is no optimum, explain why (infeasible, unbounded or incomplete problem).

Answer in 3-4 sentences.`, objective, constraints.String(), r.Summary)
}

func (s *ExplainService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are an operations research tutor. You explain linear programming results clearly and accurately, using the numbers you are given and nothing else.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("explain API error (status %d): %s", resp.StatusCode, string(body))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("explain API returned no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// Fallback explains a report without any external call.
func Fallback(r domain.Report) string {
	switch r.Status {
	case domain.StatusNoConstraints:
		return "The problem has no constraints, so there is no feasible region to search. Add at least one constraint."
	case domain.StatusInfeasible:
		return "No point with x1 >= 0 and x2 >= 0 satisfies every constraint at once, so the feasible region is empty and the problem has no solution. Check the constraints for contradictions."
	case domain.StatusNoObjective:
		return fmt.Sprintf("The feasible region has %d corner points, but no objective was given, so none of them can be chosen as optimal.", len(r.Vertices))
	case domain.StatusUnbounded:
		dir, more := "grow", "larger"
		if r.Objective != nil && r.Objective.Sense == domain.Minimize {
			dir, more = "decrease", "smaller"
		}
		return fmt.Sprintf("The feasible region is open in a direction along which Z keeps improving, so Z can %s without limit: for any corner point there is a feasible point with a %s value. The problem has no finite optimum.", dir, more)
	}

	if r.Optimum == nil || r.Objective == nil {
		return r.Summary
	}

	cmp := "larger"
	if r.Objective.Sense == domain.Minimize {
		cmp = "smaller"
	}
	return fmt.Sprintf("The optimum of a linear program lies on a corner of the feasible region. Of the %d corner points, (x1, x2) = (%.2f, %.2f) gives Z = %.2f, and no other corner gives a %s value.",
		len(r.Vertices), r.Optimum.Vertex.X, r.Optimum.Vertex.Y, r.Optimum.Value, cmp)
}
