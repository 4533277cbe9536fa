// Package config loads service and CLI settings from defaults, an optional
// YAML file, LPSOLVER_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"lp-solver/domain"
)

const envPrefix = "LPSOLVER"

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Solver    SolverConfig    `mapstructure:"solver"`
	Log       LogConfig       `mapstructure:"log"`
	Explain   ExplainConfig   `mapstructure:"explain"`
	History   HistoryConfig   `mapstructure:"history"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Refill   time.Duration `mapstructure:"refill"`
}

type CacheConfig struct {
	Driver        string        `mapstructure:"driver"` // memory or redis
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
	Prefix        string        `mapstructure:"prefix"`
}

type SolverConfig struct {
	Precision       int     `mapstructure:"precision"`
	Tolerance       float64 `mapstructure:"tolerance"`
	ExcludeOrigin   bool    `mapstructure:"exclude_origin"`
	DetectUnbounded bool    `mapstructure:"detect_unbounded"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ExplainConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	URL     string        `mapstructure:"url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type HistoryConfig struct {
	Size int `mapstructure:"size"`
}

// flagBindings maps config keys to the flag names the CLI registers.
var flagBindings = map[string]string{
	"http.addr":             "addr",
	"log.level":             "log-level",
	"solver.exclude_origin": "exclude-origin",
	"cache.driver":          "cache",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("ratelimit.capacity", 5)
	v.SetDefault("ratelimit.refill", time.Minute)

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.prefix", "lp:solve:")

	v.SetDefault("solver.precision", 2)
	v.SetDefault("solver.tolerance", 1e-9)
	v.SetDefault("solver.exclude_origin", false)
	v.SetDefault("solver.detect_unbounded", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("explain.api_key", "")
	v.SetDefault("explain.url", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("explain.model", "gpt-4o-mini")
	v.SetDefault("explain.timeout", 10*time.Second)

	v.SetDefault("history.size", 100)
}

// Load reads the configuration. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("explain.api_key", envPrefix+"_EXPLAIN_API_KEY", "OPENAI_API_KEY"); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindNotFound,
				Path: path,
				Err:  err,
			}
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Cache.Driver {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("cache.driver must be memory, redis or none, got %q", c.Cache.Driver)
	}
	if c.Solver.Precision < 0 || c.Solver.Precision > 10 {
		return fmt.Errorf("solver.precision must be between 0 and 10, got %d", c.Solver.Precision)
	}
	if c.Solver.Tolerance < 0 {
		return fmt.Errorf("solver.tolerance must not be negative, got %g", c.Solver.Tolerance)
	}
	// an explanation must fall back before the server cuts the response
	if c.HTTP.WriteTimeout > 0 && c.Explain.Timeout >= c.HTTP.WriteTimeout {
		return fmt.Errorf("explain.timeout (%s) must be shorter than http.write_timeout (%s)",
			c.Explain.Timeout, c.HTTP.WriteTimeout)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr must not be empty")
	}
	return nil
}
