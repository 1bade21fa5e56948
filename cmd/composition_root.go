package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"geodispatch/internal/adapters/out/cache"
	"geodispatch/internal/adapters/out/openroute"
	"geodispatch/internal/adapters/out/postgres"
	"geodispatch/internal/adapters/out/rabbitmq"
	"geodispatch/internal/core/application/usecases/commands"
	"geodispatch/internal/core/application/usecases/queries"
	"geodispatch/internal/core/application/usecases/sessions"
	"geodispatch/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	geocoder   ports.GeocodingClient
	router     ports.RouteDistanceClient
	publisher  ports.EventPublisher
	closers    []func()
	logger     *slog.Logger
}

// NewCompositionRoot wires all adapters from the configuration. The Redis
// cache and the RabbitMQ publisher are optional: an empty address leaves the
// geocoder uncached and submission events unpublished.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	providerSession, err := openroute.NewProviderSession(config.GeoBaseURL, config.GeoAPIKey)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create geo provider session: %w", err)
	}

	root.geocoder = openroute.NewGeocoder(providerSession)
	root.router = openroute.NewRouter(providerSession)

	if config.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		geocodeCache := cache.NewRedisGeocodeCache(redisClient, 24*time.Hour)
		root.geocoder = cache.NewCachingGeocoder(root.geocoder, geocodeCache, logger)
		root.closers = append(root.closers, func() { _ = redisClient.Close() })
	}

	if config.RabbitURL != "" {
		publisher, pubErr := rabbitmq.NewPublisher(config.RabbitURL, config.RabbitQueue)
		if pubErr != nil {
			return CompositionRoot{}, fmt.Errorf("failed to create event publisher: %w", pubErr)
		}
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	}

	return root, nil
}

// Close releases the optional broker and cache connections.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		closeFn()
	}
}

func (c *CompositionRoot) CreateSessionFactory() sessions.Factory {
	return sessions.NewFactory(c.geocoder, c.router, c.uowFactory)
}

func (c *CompositionRoot) CreateSubmitAssignmentCommandHandler() commands.SubmitAssignmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitAssignmentCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRefreshBranchCoordinatesCommandHandler() commands.RefreshBranchCoordinatesCommandHandler {
	var f commands.BranchUoWFactory = FuncBranchUoWFactory(func() commands.BranchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshBranchCoordinatesCommandHandler(f, c.geocoder, c.logger)
}

func (c *CompositionRoot) CreateGetActiveBranchesQueryHandler() queries.GetActiveBranchesQueryHandler {
	return queries.NewGetActiveBranchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryZonesQueryHandler() queries.GetDeliveryZonesQueryHandler {
	return queries.NewGetDeliveryZonesQueryHandler(c.gormDB)
}

type FuncBranchUoWFactory func() commands.BranchUoW

func (f FuncBranchUoWFactory) Create() commands.BranchUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
