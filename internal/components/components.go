package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"greenKudi/internal/api"
	"greenKudi/internal/api/handlers/http/system"
	"greenKudi/internal/config"
	"greenKudi/internal/ids"
	"greenKudi/internal/kafka"
	"greenKudi/internal/redis"
	"greenKudi/internal/service"
	"greenKudi/internal/storage/memory"
	"greenKudi/internal/storage/postgres"
	"greenKudi/pkg/logger"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
	Kafka         *kafka.Publisher
	WebhookSender *service.WebhookSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{logger: logger}
	deps := make(map[string]system.Pinger)

	if cfg.NeedsRedis() {
		logger.Info("Initializing Redis")
		r, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		c.Redis = r
		deps["redis"] = system.PingFunc(func(ctx context.Context) error {
			return r.Client.Ping(ctx).Err()
		})
	}

	store, finder, err := c.initStore(ctx, cfg, deps)
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}

	publisher, err := c.initEvents(cfg)
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}

	gen, err := ids.NewSnowflake(cfg.Store.NodeID)
	if err != nil {
		c.ShutdownAll()
		return nil, err
	}

	hotspotSvc := service.NewHotspotService(store, finder, publisher, gen, logger)
	statsSvc := service.NewStatsService(store)
	srv := service.NewService(hotspotSvc, statsSvc)

	if cfg.Store.Seed {
		if err := service.SeedDemo(ctx, hotspotSvc, logger); err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to seed demo hotspots: %w", err)
		}
	}

	c.HttpServer = api.NewServer(ctx, cfg, logger, srv, deps)
	logger.Info("Initialized server",
		slog.String("store", cfg.Store.Backend),
		slog.String("events", cfg.Events.Sink),
	)

	return c, nil
}

func (c *Components) initStore(ctx context.Context, cfg *config.Config, deps map[string]system.Pinger) (service.HotspotStore, service.NearbyFinder, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		c.logger.Info("Initializing Postgres")
		pg, err := postgres.NewPostgres(ctx, cfg, c.logger)
		if err != nil {
			c.logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = pg
		deps["postgres"] = pg.Pool

		if cfg.Store.CacheTTL > 0 {
			c.logger.Info("Enumerate served from redis snapshot", slog.Duration("ttl", cfg.Store.CacheTTL))
			return redis.NewCachedStore(pg.HotspotRepo(), c.Redis, cfg.Store.CacheTTL, c.logger), pg.Geo(), nil
		}
		return pg.HotspotRepo(), pg.Geo(), nil

	case config.BackendRedis:
		return redis.NewHotspotStore(c.Redis, c.logger), nil, nil

	default:
		return memory.NewStore(), nil, nil
	}
}

func (c *Components) initEvents(cfg *config.Config) (service.EventPublisher, error) {
	switch cfg.Events.Sink {
	case config.SinkRedis:
		queue := redis.NewEventQueue(c.Redis.Client, redis.EventQueueKey)
		if !cfg.Webhook.Disabled {
			c.WebhookSender = service.NewWebhookSender(c.logger, cfg.Webhook, queue)
		}
		return queue, nil

	case config.SinkKafka:
		c.Kafka = kafka.NewPublisher(cfg.Kafka, c.logger)
		return c.Kafka, nil

	default:
		return nil, nil
	}
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Завершение работы компонентов началось")

	if c.Kafka != nil {
		if err := c.Kafka.Close(); err != nil {
			c.logger.Error("Kafka writer close failed", slog.String("err", err.Error()))
		}
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("Все компоненты успешно завершили работу",
		slog.Duration("latency", time.Since(start)))
}
