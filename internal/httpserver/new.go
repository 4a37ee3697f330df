package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"auth-srv/config"
	pkgJWT "auth-srv/pkg/jwt"
	pkgKafka "auth-srv/pkg/kafka"
	"auth-srv/pkg/log"
	"auth-srv/pkg/password"
	pkgRedis "auth-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Storage
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Authentication
	config     *config.Config
	jwtManager pkgJWT.IManager
	hashPool   *password.Pool

	// Audit events (optional)
	eventProducer pkgKafka.IProducer
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Storage
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Authentication
	Config     *config.Config
	JWTManager pkgJWT.IManager
	HashPool   *password.Pool

	// Audit events (optional)
	EventProducer pkgKafka.IProducer
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		hashPool:   cfg.HashPool,

		eventProducer: cfg.EventProducer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.hashPool == nil {
		return errors.New("hashPool is required")
	}

	return nil
}
