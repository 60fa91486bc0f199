package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	EnrichmentModeDisabled = ""
	EnrichmentModeDocintel = "docintel"
	EnrichmentModeLLM      = "llm"
)

type Config struct {
	PostgreSQL
	Redis
	Enrichment
	HTTP
	Report
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// Redis is optional: an empty Addr disables event deduplication.
type Redis struct {
	Addr     string
	Password string
	DB       int
	DedupTTL time.Duration
}

// Enrichment is optional: an empty Mode skips receipt analysis entirely.
type Enrichment struct {
	Mode             string
	DocintelEndpoint string
	LLMBaseURL       string
	LLMModel         string
	LLMToken         string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Report struct {
	OutputDirectory string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		Redis: Redis{
			Addr:     cmd.String("redis-addr"),
			Password: cmd.String("redis-password"),
			DB:       int(cmd.Int("redis-db")),
			DedupTTL: cmd.Duration("redis-dedup-ttl"),
		},
		Enrichment: Enrichment{
			Mode:             cmd.String("enrichment-mode"),
			DocintelEndpoint: cmd.String("docintel-endpoint"),
			LLMBaseURL:       cmd.String("llm-base-url"),
			LLMModel:         cmd.String("llm-model"),
			LLMToken:         cmd.String("llm-token"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Report: Report{
			OutputDirectory: cmd.String("output-dir"),
		},
	}
}
