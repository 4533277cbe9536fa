package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"lp-solver/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" || cfg.HTTP.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected http config %+v", cfg.HTTP)
	}
	if cfg.Cache.Driver != "memory" || cfg.Cache.TTL != time.Hour {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
	if cfg.Solver.Precision != 2 || cfg.Solver.Tolerance != 1e-9 || !cfg.Solver.DetectUnbounded || cfg.Solver.ExcludeOrigin {
		t.Errorf("unexpected solver config %+v", cfg.Solver)
	}
	if cfg.RateLimit.Capacity != 5 || cfg.RateLimit.Refill != time.Minute {
		t.Errorf("unexpected rate limit config %+v", cfg.RateLimit)
	}
}

func TestLoad_FileThenEnvThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lp-solver.yaml")
	content := `
http:
  addr: ":9090"
  read_timeout: 5s
cache:
  driver: redis
  redis_addr: "redis:6379"
solver:
  exclude_origin: true
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("LPSOLVER_LOG_LEVEL", "warn")
	t.Setenv("LPSOLVER_RATELIMIT_CAPACITY", "50")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", ":8080", "")
	if err := flags.Parse([]string{"--addr", ":7070"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":7070" {
		t.Errorf("expected the flag to win, got %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ReadTimeout != 5*time.Second {
		t.Errorf("expected 5s from file, got %v", cfg.HTTP.ReadTimeout)
	}
	if cfg.Cache.Driver != "redis" || cfg.Cache.RedisAddr != "redis:6379" {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
	if !cfg.Solver.ExcludeOrigin {
		t.Errorf("expected exclude_origin from file")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected env to override the file, got %q", cfg.Log.Level)
	}
	if cfg.RateLimit.Capacity != 50 {
		t.Errorf("expected capacity 50 from env, got %d", cfg.RateLimit.Capacity)
	}
	if cfg.Explain.APIKey != "sk-test" {
		t.Errorf("expected the OpenAI key fallback, got %q", cfg.Explain.APIKey)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(path, nil)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected path in error, got %v", err)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("LPSOLVER_CACHE_DRIVER", "memcached")

	_, err := Load("", nil)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestLoad_ExplainTimeoutMustFitWriteTimeout(t *testing.T) {
	t.Setenv("LPSOLVER_HTTP_WRITE_TIMEOUT", "15s")
	t.Setenv("LPSOLVER_EXPLAIN_TIMEOUT", "30s")

	_, err := Load("", nil)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(err.Error(), "explain.timeout") {
		t.Errorf("expected explain.timeout in error, got %v", err)
	}
}

func TestLoad_DefaultExplainTimeoutFitsWriteTimeout(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Explain.Timeout >= cfg.HTTP.WriteTimeout {
		t.Errorf("explain timeout %v should be below write timeout %v", cfg.Explain.Timeout, cfg.HTTP.WriteTimeout)
	}
}
