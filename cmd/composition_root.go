package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "github.com/M-ayank2005/Carryaptos/internal/adapters/in/http"
	"github.com/M-ayank2005/Carryaptos/internal/adapters/out/kafka"
	"github.com/M-ayank2005/Carryaptos/internal/adapters/out/memory"
	"github.com/M-ayank2005/Carryaptos/internal/adapters/out/postgres"
	"github.com/M-ayank2005/Carryaptos/internal/adapters/out/redis"
	"github.com/M-ayank2005/Carryaptos/internal/core/application/submission"
	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/commands"
	"github.com/M-ayank2005/Carryaptos/internal/core/application/usecases/queries"
	"github.com/M-ayank2005/Carryaptos/internal/core/ports"
	"github.com/M-ayank2005/Carryaptos/internal/jobs"
	"github.com/M-ayank2005/Carryaptos/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.Metrics
	publisher  *kafka.EventPublisher
	idempotent *redis.IdempotencyStore
	closers    []func() error
}

// NewCompositionRoot opens the configured storage and outbound adapters.
// Close releases them.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:   config,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	c.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(c.registry)
	if err != nil {
		return nil, err
	}
	c.metrics = m

	switch config.StorageDriver {
	case StoragePostgres:
		db, dbErr := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if dbErr != nil {
			return nil, fmt.Errorf("connect to postgres: %w", dbErr)
		}
		if dbErr = postgres.Migrate(db.WithContext(ctx)); dbErr != nil {
			return nil, fmt.Errorf("migrate: %w", dbErr)
		}
		c.gormDB = db
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
		if sqlDB, sqlErr := db.DB(); sqlErr == nil {
			c.closers = append(c.closers, sqlDB.Close)
		}
	default:
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
	}

	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		c.publisher = kafka.NewEventPublisher(brokers, config.KafkaOrderChangedTopic)
		c.closers = append(c.closers, c.publisher.Close)
	}

	if config.RedisAddr != "" {
		c.idempotent = redis.NewIdempotencyStore(config.RedisAddr)
		c.closers = append(c.closers, c.idempotent.Close)
	}

	logger.Info("composition root ready",
		"storage", config.StorageDriver,
		"kafka", c.publisher != nil,
		"idempotency", c.idempotent != nil,
	)
	return c, nil
}

func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	return errors.Join(errs...)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.escrowUoWFactory())
}

func (c *CompositionRoot) CreateAgreeOrderCommandHandler() commands.AgreeOrderCommandHandler {
	return commands.NewAgreeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeOrderCommandHandler() commands.FinalizeOrderCommandHandler {
	return commands.NewFinalizeOrderCommandHandler(c.escrowUoWFactory())
}

func (c *CompositionRoot) CreateDepositFundsCommandHandler() commands.DepositFundsCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDepositFundsCommandHandler(f)
}

// CreateRelayOutboxCommandHandler needs a broker; callers check
// HasEventPublisher first.
func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) HasEventPublisher() bool {
	return c.publisher != nil
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListOrdersByPartyQueryHandler() queries.ListOrdersByPartyQueryHandler {
	return queries.NewListOrdersByPartyQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListLedgerEntriesQueryHandler() queries.ListLedgerEntriesQueryHandler {
	return queries.NewListLedgerEntriesQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetCustodySummaryQueryHandler() queries.GetCustodySummaryQueryHandler {
	return queries.NewGetCustodySummaryQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateSubmissionGateway() (*submission.Gateway, error) {
	return submission.NewGateway(submission.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		AgreeOrder:      c.CreateAgreeOrderCommandHandler(),
		ConfirmDelivery: c.CreateConfirmDeliveryCommandHandler(),
		FinalizeOrder:   c.CreateFinalizeOrderCommandHandler(),
	}, c.metrics, c.logger)
}

// CreateHTTPServer builds the echo instance with every route mounted.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	gateway, err := c.CreateSubmissionGateway()
	if err != nil {
		return nil, err
	}

	var opts []httpadapter.Option
	if c.idempotent != nil {
		opts = append(opts,
			httpadapter.WithIdempotency(c.idempotent, c.config.IdempotencyTTL),
			httpadapter.WithHealthCheck("redis", c.idempotent.Ping),
		)
	}
	if c.gormDB != nil {
		opts = append(opts, httpadapter.WithHealthCheck("postgres", func(ctx context.Context) error {
			sqlDB, dbErr := c.gormDB.DB()
			if dbErr != nil {
				return dbErr
			}
			return sqlDB.PingContext(ctx)
		}))
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		Gateway:           gateway,
		DepositFunds:      c.CreateDepositFundsCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersByPartyQueryHandler(),
		ListLedgerEntries: c.CreateListLedgerEntriesQueryHandler(),
		GetAccount:        c.CreateGetAccountQueryHandler(),
		GetCustody:        c.CreateGetCustodySummaryQueryHandler(),
	}, c.logger, opts...)

	e := echo.New()
	e.HideBanner = true
	if err = server.RegisterRoutes(e, metrics.Handler(c.registry)); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateJobManager schedules the custody audit and, when a broker is
// configured, the outbox relay.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var relay *jobs.OutboxRelayJob
	if c.HasEventPublisher() {
		relay = jobs.NewOutboxRelayJob(
			c.CreateRelayOutboxCommandHandler(),
			c.metrics,
			c.config.OutboxBatchSize,
			c.config.OutboxRelaySchedule,
			c.logger,
		)
	} else {
		c.logger.Warn("KAFKA_HOST is not set, outbox messages are kept but not relayed")
	}

	audit := jobs.NewCustodyAuditJob(
		c.CreateGetCustodySummaryQueryHandler(),
		c.metrics,
		c.config.CustodyAuditSchedule,
		c.logger,
	)
	return jobs.NewJobManager(relay, audit)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) escrowUoWFactory() commands.EscrowUoWFactory {
	return FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEscrowUoWFactory func() commands.EscrowUoW

func (f FuncEscrowUoWFactory) Create() commands.EscrowUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
