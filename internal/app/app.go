package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/avoropay/receipt_ingestor/internal/blobstore"
	"github.com/avoropay/receipt_ingestor/internal/config"
	v1 "github.com/avoropay/receipt_ingestor/internal/controller/http/v1"
	"github.com/avoropay/receipt_ingestor/internal/dedup"
	"github.com/avoropay/receipt_ingestor/internal/enrichment/docintel"
	"github.com/avoropay/receipt_ingestor/internal/enrichment/llm"
	"github.com/avoropay/receipt_ingestor/internal/identity"
	"github.com/avoropay/receipt_ingestor/internal/ingest"
	"github.com/avoropay/receipt_ingestor/internal/repository/postgresql"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("enrichment_mode", a.cfg.Enrichment.Mode),
		slog.Bool("dedup_enabled", a.cfg.Redis.Addr != ""),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	recordsRepository := postgresql.NewRecordsRepository(pool)
	eventsRepository := postgresql.NewIngestionEventsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	deduper, err := a.buildDeduper(ctx)
	if err != nil {
		return err
	}

	analyzer, err := a.buildAnalyzer()
	if err != nil {
		return err
	}

	handler := ingest.NewHandler(a.log, analyzer, deduper, recordsRepository, eventsRepository, txManager)
	server := v1.NewServer(a.cfg.HTTP, handler, recordsRepository, eventsRepository)

	return a.serve(ctx, server)
}

func (a *App) serve(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

// buildDeduper returns nil when no Redis address is configured; dedup is an
// optional optimization, the upsert stays idempotent without it.
func (a *App) buildDeduper(ctx context.Context) (ingest.Deduper, error) {
	if a.cfg.Redis.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return dedup.NewRedisDeduper(client, a.cfg.Redis.DedupTTL), nil
}

// buildAnalyzer returns nil when enrichment is not configured; records are
// then written with metadata only.
func (a *App) buildAnalyzer() (ingest.Analyzer, error) {
	switch a.cfg.Enrichment.Mode {
	case config.EnrichmentModeDisabled:
		a.log.Info("enrichment not configured, skipping receipt analysis")
		return nil, nil

	case config.EnrichmentModeDocintel:
		if a.cfg.Enrichment.DocintelEndpoint == "" {
			return nil, errors.New("docintel enrichment requires an endpoint")
		}

		credential := identity.NewManagedIdentityCredential()

		return docintel.NewClient(a.log, a.cfg.Enrichment.DocintelEndpoint, credential), nil

	case config.EnrichmentModeLLM:
		if a.cfg.Enrichment.LLMBaseURL == "" || a.cfg.Enrichment.LLMModel == "" {
			return nil, errors.New("llm enrichment requires a base url and a model")
		}

		credential := identity.NewManagedIdentityCredential()
		blobs := blobstore.NewClient(credential)

		return llm.NewExtractor(a.log, a.cfg.Enrichment.LLMBaseURL, a.cfg.Enrichment.LLMModel, a.cfg.Enrichment.LLMToken, blobs)

	default:
		return nil, fmt.Errorf("unknown enrichment mode %q", a.cfg.Enrichment.Mode)
	}
}
