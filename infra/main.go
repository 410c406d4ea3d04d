package infra

import (
	"github.com/annothem/annothem-backend/config"
	"github.com/annothem/annothem-backend/infra/produce"
)

type Infra struct {
	Postgres  *PostgresClient
	Logger    *LoggerClient
	Telemetry *TelemetryClient
	Minio     *MinioClient
	Redis     *RedisClient
	RabbitMQ  *RabbitMQClient
	Produce   *produce.Produce
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	telemetry := InitTelemetryClient(cfg.EnvConfig)

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	minio := InitMinioClient(cfg.EnvConfig)
	if minio == nil {
		panic("Failed to initialize MinIO service")
	}

	// Redis and RabbitMQ back ambient features (rate limiting, cleanup
	// events) and are skipped when not configured.
	var redis *RedisClient
	if cfg.EnvConfig.Redis.Host != "" {
		redis = InitRedisClient(cfg.EnvConfig)
		if redis == nil {
			panic("Failed to initialize Redis service")
		}
	}

	var rabbitMQ *RabbitMQClient
	var produceService *produce.Produce
	if cfg.EnvConfig.RabbitMQ.Host != "" {
		rabbitMQ = InitRabbitMQClient(cfg.EnvConfig)
		if rabbitMQ == nil {
			panic("Failed to initialize RabbitMQ service")
		}
		produceService = produce.InitProduce(rabbitMQ.Channel)
		if produceService == nil {
			panic("Failed to initialize Produce service")
		}
	}

	infraInstance = &Infra{
		Postgres:  postgres,
		Logger:    logger,
		Telemetry: telemetry,
		Minio:     minio,
		Redis:     redis,
		RabbitMQ:  rabbitMQ,
		Produce:   produceService,
	}

	return infraInstance
}

func GetClient() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}
