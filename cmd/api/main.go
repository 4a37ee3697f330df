package main

import (
	"context"
	"fmt"

	"auth-srv/config"
	configKafka "auth-srv/config/kafka"
	configPostgre "auth-srv/config/postgre"
	configRedis "auth-srv/config/redis"
	_ "auth-srv/docs" // Import swagger docs
	"auth-srv/internal/httpserver"
	pkgJWT "auth-srv/pkg/jwt"
	pkgKafka "auth-srv/pkg/kafka"
	"auth-srv/pkg/log"
	"auth-srv/pkg/password"
)

// @title       Auth Service API
// @description Email and password login issuing HS256 bearer tokens.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. Token issuer. A bad signing config stops startup.
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey:         cfg.JWT.SecretKey,
		Issuer:            cfg.JWT.Issuer,
		Audience:          cfg.JWT.Audience,
		ExpirationMinutes: cfg.JWT.ExpirationInMinutes,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT manager initialized, tokens expire after %d minutes", jwtManager.ExpirationMinutes())

	// 4. Password hashing
	hashPool, err := initializeHashPool(cfg.Password)
	if err != nil {
		logger.Error(ctx, "Failed to initialize password hasher: ", err)
		return
	}
	logger.Infof(ctx, "Password hasher %s initialized with %d slots", cfg.Password.Algorithm, hashPool.Size())

	// 5. PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	if cfg.Postgres.Migrate {
		if err := configPostgre.Migrate(postgresDB, cfg.Postgres.Schema); err != nil {
			logger.Error(ctx, "Failed to apply migrations: ", err)
			return
		}
		logger.Info(ctx, "Database migrations applied")
	}

	// 6. Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 7. Kafka (optional)
	var eventProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled() {
		eventProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer unavailable, login events disabled: %v", err)
			eventProducer = nil
		} else {
			defer configKafka.DisconnectProducer()
			logger.Infof(ctx, "Kafka producer publishing to %s", cfg.Kafka.Topic)
		}
	} else {
		logger.Info(ctx, "Kafka brokers not configured, login events disabled")
	}

	// 8. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		Config:     cfg,
		JWTManager: jwtManager,
		HashPool:   hashPool,

		EventProducer: eventProducer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeHashPool builds the configured hasher behind a bounded pool.
func initializeHashPool(cfg config.PasswordConfig) (*password.Pool, error) {
	hasher, err := password.New(password.Config{
		Algorithm:  password.Algorithm(cfg.Algorithm),
		BcryptCost: cfg.BcryptCost,
		Argon2: password.Argon2Params{
			Time:    cfg.Argon2.Time,
			Memory:  cfg.Argon2.MemoryKiB,
			Threads: cfg.Argon2.Threads,
			KeyLen:  cfg.Argon2.KeyLen,
			SaltLen: cfg.Argon2.SaltLen,
		},
	})
	if err != nil {
		return nil, err
	}
	return password.NewPool(hasher, cfg.MaxConcurrency), nil
}
