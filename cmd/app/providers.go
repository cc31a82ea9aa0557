package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/what-to-wear/internal/domain/auth"
	"github.com/yanqian/what-to-wear/internal/domain/recommendation"
	"github.com/yanqian/what-to-wear/internal/infra/config"
	"github.com/yanqian/what-to-wear/internal/infra/llm/openrouter"
	"github.com/yanqian/what-to-wear/internal/infra/tokenstore"
	"github.com/yanqian/what-to-wear/internal/infra/userrepo"
	"github.com/yanqian/what-to-wear/internal/infra/weatherapi"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.TokenTTL(),
	}
}

func provideRecommendationConfig(cfg *config.Config) (recommendation.Config, error) {
	kind, err := recommendation.ParseModelKind(cfg.LLM.Model)
	if err != nil {
		return recommendation.Config{}, err
	}
	return recommendation.Config{Model: kind}, nil
}

func provideWeatherClient(cfg *config.Config) *weatherapi.Client {
	return weatherapi.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey)
}

func provideLLMClient(cfg *config.Config) (*openrouter.Client, error) {
	return openrouter.NewClient(cfg.LLM.URL, cfg.LLM.APIKey, cfg.LLM.Timeout)
}

func provideUserRepository(cfg *config.Config, logger *slog.Logger) auth.Repository {
	fallback := userrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory user repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory user repository", "error", err)
		return fallback
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory user repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory user repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("postgres user repository enabled")
	return userrepo.NewPostgresRepository(pool)
}

func provideTokenStore(cfg *config.Config, logger *slog.Logger) auth.TokenStore {
	if cfg.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory token store", "error", err)
			return tokenstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory token store", "error", err)
			return tokenstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory token store", "error", err)
		} else {
			logger.Info("valkey token store enabled", "addr", cfg.Valkey.Addr)
			return tokenstore.NewValkeyStore(client, "auth")
		}
	}
	return tokenstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
