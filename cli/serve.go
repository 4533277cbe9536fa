package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"lp-solver/config"
	httpLayer "lp-solver/http"
	"lp-solver/repository"
	"lp-solver/service"
)

const redisPingTimeout = 2 * time.Second

func serveCmd(root *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.load(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}

	c.Flags().String("addr", ":8080", "Listen address")
	c.Flags().String("cache", "memory", "Result cache: memory|redis|none")
	return c
}

type app struct {
	server  *http.Server
	limiter *httpLayer.RateLimiter
	closers []func() error
}

func (a *app) close() {
	a.limiter.Stop()
	for _, c := range a.closers {
		_ = c()
	}
}

func newApp(ctx context.Context, cfg config.Config, log *slog.Logger) *app {
	a := &app{}

	cache := newCache(ctx, cfg.Cache, log, a)
	history := repository.NewSolveRepositoryMemory(cfg.History.Size)

	explainer := service.NewExplainService(service.ExplainConfig{
		APIKey:  cfg.Explain.APIKey,
		URL:     cfg.Explain.URL,
		Model:   cfg.Explain.Model,
		Timeout: cfg.Explain.Timeout,
	}, log)

	svc := service.NewSolveService(history, cache,
		service.WithExplainer(explainer),
		service.WithSolverOptions(solverOptions(cfg.Solver)),
		service.WithCachePrefix(cfg.Cache.Prefix),
		service.WithLogger(log),
	)

	metrics := httpLayer.NewMetrics()
	a.limiter = httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
	handler := httpLayer.NewSolveHandler(svc, metrics, log)

	a.server = &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      httpLayer.NewRouter(handler, a.limiter, metrics),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
	return a
}

// newCache picks the result cache. An unreachable Redis falls back to memory
// so the service still starts.
func newCache(ctx context.Context, cfg config.CacheConfig, log *slog.Logger, a *app) repository.CacheRepository {
	switch cfg.Driver {
	case "none":
		return nil
	case "redis":
		rc := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn("cache.redis_unreachable", "addr", cfg.RedisAddr, "err", err)
			_ = rc.Close()
			return repository.NewMemoryCache()
		}
		a.closers = append(a.closers, rc.Close)
		log.Info("cache.redis_connected", "addr", cfg.RedisAddr)
		return rc
	default:
		return repository.NewMemoryCache()
	}
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	a := newApp(ctx, cfg, log)
	defer a.close()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server.listening", "addr", cfg.HTTP.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Error("server.start_failed", "err", err)
		return err
	case <-ctx.Done():
		log.Info("server.shutting_down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		log.Error("server.shutdown_failed", "err", err)
		return err
	}

	log.Info("server.exited")
	return nil
}
