package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/avoropay/receipt_ingestor/internal/app"
	"github.com/avoropay/receipt_ingestor/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	var configFile string

	return &cli.Command{
		Name:    "receipt_ingestor",
		Usage:   "blob-upload ingestion service",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Validator:   validateConfig,
				Usage:       "Load configuration from `FILE`",
				Destination: &configFile,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Receive blob notifications and persist file records",
				Flags: append(postgresFlags(&configFile), serveFlags(&configFile)...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
					if !ok {
						return errors.New("failed to get logger from context")
					}

					cfg := config.Load(cmd)

					return app.New(log, cfg).Run(ctx)
				},
			},
			{
				Name:  "report",
				Usage: "Generate spending summary and CSV dump from stored records",
				Flags: append(postgresFlags(&configFile), reportFlags(&configFile)...),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
					if !ok {
						return errors.New("failed to get logger from context")
					}

					cfg := config.Load(cmd)

					return app.New(log, cfg).RunReport(ctx)
				},
			},
		},
	}
}

func postgresFlags(configFile *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(configFile))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(configFile))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(configFile))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(configFile))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "receipt_ingestor",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(configFile))),
			Required: true,
		},
	}
}

func serveFlags(configFile *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "redis-addr",
			Usage:   "Set Redis address for event deduplication (empty disables dedup)",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.addr", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Set Redis password",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.password", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.IntFlag{
			Name:    "redis-db",
			Usage:   "Set Redis database number",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.db", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.DurationFlag{
			Name:    "redis-dedup-ttl",
			Usage:   "Set how long processed event IDs are remembered",
			Value:   24 * time.Hour,
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.dedup_ttl", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:      "enrichment-mode",
			Usage:     "Set receipt analysis backend: docintel, llm or empty to disable",
			Validator: validateEnrichmentMode,
			Sources:   cli.NewValueSourceChain(yaml.YAML("enrichment.mode", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "docintel-endpoint",
			Usage:   "Set Document Intelligence endpoint",
			Sources: cli.NewValueSourceChain(yaml.YAML("enrichment.docintel_endpoint", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "llm-base-url",
			Usage:   "Set OpenAI-compatible endpoint for llm enrichment",
			Sources: cli.NewValueSourceChain(yaml.YAML("enrichment.llm_base_url", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "llm-model",
			Usage:   "Set vision model name for llm enrichment",
			Sources: cli.NewValueSourceChain(yaml.YAML("enrichment.llm_model", altsrc.NewStringPtrSourcer(configFile))),
		},
		&cli.StringFlag{
			Name:    "llm-token",
			Usage:   "Set API token for llm enrichment",
			Sources: cli.NewValueSourceChain(yaml.YAML("enrichment.llm_token", altsrc.NewStringPtrSourcer(configFile))),
		},
	}
}

func reportFlags(configFile *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "output-dir",
			Aliases:   []string{"o"},
			Usage:     "Set directory to write reports to",
			Value:     "output",
			Sources:   cli.NewValueSourceChain(yaml.YAML("report.output_dir", altsrc.NewStringPtrSourcer(configFile))),
			Required:  true,
			Validator: validateDirectory,
		},
	}
}

func validateEnrichmentMode(mode string) error {
	switch mode {
	case config.EnrichmentModeDisabled, config.EnrichmentModeDocintel, config.EnrichmentModeLLM:
		return nil
	default:
		return fmt.Errorf("invalid enrichment mode %q", mode)
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", ext)
	}

	return nil
}
