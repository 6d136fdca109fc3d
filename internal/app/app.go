package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/outcomes-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/audit"
	chunkrepo "github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/chunk"
	inboxrepo "github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/inbox"
	outcomerepo "github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/outcome"
	preferencerepo "github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/preference"
	"github.com/heartmarshall/outcomes-backend/internal/adapter/provider/oracle"
	"github.com/heartmarshall/outcomes-backend/internal/adapter/redis/suggestcache"
	"github.com/heartmarshall/outcomes-backend/internal/auth"
	"github.com/heartmarshall/outcomes-backend/internal/config"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/internal/service/chunk"
	"github.com/heartmarshall/outcomes-backend/internal/service/conversion"
	"github.com/heartmarshall/outcomes-backend/internal/service/inbox"
	"github.com/heartmarshall/outcomes-backend/internal/service/preference"
	"github.com/heartmarshall/outcomes-backend/internal/service/suggestion"
	"github.com/heartmarshall/outcomes-backend/internal/transport/middleware"
	"github.com/heartmarshall/outcomes-backend/internal/transport/rest"
)

type suggester interface {
	SuggestChunks(ctx context.Context, items []domain.InboxItem) (*domain.SuggestionResult, error)
}

type resultCache interface {
	Get(ctx context.Context, key string) (*domain.SuggestionResult, error)
	Set(ctx context.Context, key string, result *domain.SuggestionResult) error
}

// API is the fully wired HTTP stack together with the resources it owns.
type API struct {
	Handler http.Handler

	closers []func()
}

// Close releases everything NewAPI started, in reverse order.
func (a *API) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// NewAPI wires repositories, services and transport on top of pool.
// Redis is optional: when configured but unreachable the suggestion cache
// is disabled and /health reports nothing for it.
func NewAPI(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *API {
	api := &API{}

	// --- repositories ---
	items := inboxrepo.New(pool)
	chunks := chunkrepo.New(pool)
	outcomes := outcomerepo.New(pool)
	prefs := preferencerepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool, cfg.Retry)

	// --- services ---
	inboxSvc := inbox.NewService(logger, items, chunks, audit, tx, cfg.Capture)
	chunkSvc := chunk.NewService(logger, chunks, items, audit, tx, cfg.Capture)
	conversionSvc := conversion.NewService(logger, chunks, outcomes, items, prefs, audit, tx, cfg.Conversion)
	preferenceSvc := preference.NewService(logger, prefs, audit, tx)

	health := rest.NewHealthHandler(pool, BuildVersion())

	var cache resultCache
	if cfg.Redis.Enabled() {
		rdb, err := suggestcache.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, suggestion cache disabled", slog.String("error", err.Error()))
		} else {
			api.closers = append(api.closers, func() { _ = rdb.Close() })
			cache = suggestcache.New(rdb, cfg.Redis.TTL)
			health.WithOptional("redis", rest.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			}))
		}
	}

	suggestionSvc := suggestion.NewService(logger, items, chunkSvc, newOracle(logger, cfg.Oracle), cache, cfg.Oracle)
	api.closers = append(api.closers, suggestionSvc.Close)

	// --- transport ---
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	api.closers = append(api.closers, limiter.Stop)

	mux := rest.NewRouter(rest.Handlers{
		Health:     health,
		Inbox:      rest.NewInboxHandler(inboxSvc, logger),
		Chunk:      rest.NewChunkHandler(chunkSvc, logger),
		Conversion: rest.NewConversionHandler(conversionSvc, logger),
		Preference: rest.NewPreferenceHandler(preferenceSvc, logger),
		Suggestion: rest.NewSuggestionHandler(suggestionSvc, logger),
	}, limiter.Limit(cfg.RateLimit.SuggestPerMinute))

	api.Handler = middleware.Chain(
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager, logger),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(mux)

	return api
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the API and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("oracle", cfg.Oracle.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, "outcomes-api")
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	api := NewAPI(ctx, cfg, pool, logger)
	defer api.Close()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           api.Handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

func newOracle(logger *slog.Logger, cfg config.OracleConfig) suggester {
	if strings.EqualFold(cfg.Provider, "anthropic") {
		return oracle.NewAnthropic(logger, cfg)
	}
	return oracle.NewStub()
}
