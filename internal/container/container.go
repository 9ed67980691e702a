package container

import (
	"context"
	"fmt"

	"filmapp/internal/cache"
	"filmapp/internal/config"
	"filmapp/internal/database"
	"filmapp/internal/models"
	"filmapp/internal/repository"
	"filmapp/internal/seed"
	"filmapp/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// Container owns every long-lived dependency of the app. It is built once at startup
// and passed to the HTTP handlers and the CLI.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	DB     *pgxpool.Pool
	Redis  *redis.Client
	SQLite *gorm.DB

	Catalog   *services.CatalogService
	Favorites *services.FavoritesService
	Payments  *services.PaymentSessions
}

// New connects the backend named by cfg.FavoritesBackend and wires the services on top.
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: log}

	repo, err := c.newRepository(ctx)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize %s backend: %w", cfg.FavoritesBackend, err)
	}

	c.wire(repo)
	return c, nil
}

// NewWithRepository wires the services over an already constructed repository.
func NewWithRepository(cfg *config.Config, repo repository.FavoritesRepository, log *logrus.Logger) *Container {
	c := &Container{Config: cfg, Logger: log}
	c.wire(repo)
	return c
}

func (c *Container) wire(repo repository.FavoritesRepository) {
	c.Catalog = services.NewCatalogService(seed.Categories(), c.Logger)
	c.Favorites = services.NewFavoritesService(repo, c.Logger)
	c.Payments = services.NewPaymentSessions(c.Config.PaymentDelay, c.Logger, func(s models.PaymentSummary) {
		c.Logger.WithFields(logrus.Fields{
			"level":     s.Level,
			"method":    s.Method,
			"reference": s.Reference,
		}).Info("VIP subscription activated")
	})
}

func (c *Container) newRepository(ctx context.Context) (repository.FavoritesRepository, error) {
	switch c.Config.FavoritesBackend {
	case config.BackendRedis:
		client, err := cache.New(ctx, c.Config.Redis, c.Logger)
		if err != nil {
			return nil, err
		}
		c.Redis = client
		return repository.NewRedisRepository(client, services.FavoritesNamespace), nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, c.Config.Database, c.Logger)
		if err != nil {
			return nil, err
		}
		c.DB = pool
		return repository.NewPostgresRepository(pool, services.FavoritesNamespace), nil

	case config.BackendSQLite:
		db, err := database.OpenSQLite(c.Config.SQLitePath, c.Logger)
		if err != nil {
			return nil, err
		}
		c.SQLite = db
		return repository.NewSQLiteRepository(db, services.FavoritesNamespace)

	case config.BackendFile:
		return repository.NewFileRepository(afero.NewOsFs(), c.Config.FavoritesPath, services.FavoritesNamespace)

	default:
		return nil, fmt.Errorf("unknown favorites backend %q", c.Config.FavoritesBackend)
	}
}

func (c *Container) Close() {
	if c.Payments != nil {
		c.Payments.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
		c.Logger.Info("Redis connection closed")
	}
	if c.DB != nil {
		c.DB.Close()
		c.Logger.Info("Database connection closed")
	}
	if c.SQLite != nil {
		if err := database.CloseSQLite(c.SQLite); err != nil {
			c.Logger.WithError(err).Warn("Failed to close SQLite database")
		} else {
			c.Logger.Info("SQLite database closed")
		}
	}
}
