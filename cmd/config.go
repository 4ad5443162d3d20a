package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/jobs"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort      string
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost              string
	KafkaOrderChangedTopic string

	RedisAddr      string
	IdempotencyTTL time.Duration

	OutboxRelaySchedule  string
	OutboxBatchSize      int
	CustodyAuditSchedule string

	LogLevel string
	LogFile  string
	AppEnv   string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv.
// Unset values fall back to defaults; malformed ones are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:               env("HTTP_PORT", "8080"),
		StorageDriver:          strings.ToLower(env("STORAGE_DRIVER", StorageMemory)),
		DBHost:                 env("DB_HOST", "localhost"),
		DBPort:                 env("DB_PORT", "5432"),
		DBUser:                 env("DB_USER", "postgres"),
		DBPassword:             getenv("DB_PASSWORD"),
		DBName:                 env("DB_NAME", "carryaptos"),
		DBSslMode:              env("DB_SSLMODE", "disable"),
		KafkaHost:              env("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: env("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		RedisAddr:              env("REDIS_ADDR", ""),
		OutboxRelaySchedule:    env("OUTBOX_RELAY_SCHEDULE", jobs.DefaultRelaySchedule),
		CustodyAuditSchedule:   env("CUSTODY_AUDIT_SCHEDULE", jobs.DefaultAuditSchedule),
		LogLevel:               env("LOG_LEVEL", "info"),
		LogFile:                env("LOG_FILE", ""),
		AppEnv:                 env("APP_ENV", "development"),
	}

	var errs []error

	ttl, err := time.ParseDuration(env("IDEMPOTENCY_TTL", "24h"))
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("IDEMPOTENCY_TTL: %w", err))
	case ttl <= 0:
		errs = append(errs, fmt.Errorf("IDEMPOTENCY_TTL: must be positive, got %s", ttl))
	}
	cfg.IdempotencyTTL = ttl

	batch, err := strconv.Atoi(env("OUTBOX_BATCH_SIZE", "100"))
	if err != nil {
		errs = append(errs, fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err))
	}
	cfg.OutboxBatchSize = batch

	if port, portErr := strconv.Atoi(cfg.HTTPPort); portErr != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT: %q is not a TCP port", cfg.HTTPPort))
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if _, portErr := strconv.Atoi(cfg.DBPort); portErr != nil {
			errs = append(errs, fmt.Errorf("DB_PORT: %q is not a number", cfg.DBPort))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER: %q is not %q or %q", cfg.StorageDriver, StoragePostgres, StorageMemory))
	}

	if err = errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
