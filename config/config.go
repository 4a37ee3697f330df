package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Users and roles
	Postgres PostgresConfig

	// Redis - User summary cache
	Redis RedisConfig

	// Kafka - Login audit events (optional)
	Kafka KafkaConfig

	// Authentication
	JWT           JWTConfig
	Password      PasswordConfig
	User          UserConfig
	AccessControl AccessControlConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
	// Migrate applies the embedded migrations at startup.
	Migrate bool
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka. No brokers disables audit events.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether audit events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// JWTConfig is the process-wide token signing configuration.
type JWTConfig struct {
	SecretKey           string
	Issuer              string
	Audience            string
	ExpirationInMinutes int
}

// PasswordConfig selects the password hashing scheme.
type PasswordConfig struct {
	Algorithm      string
	BcryptCost     int
	MaxConcurrency int
	Argon2         Argon2Config
}

type Argon2Config struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// UserConfig tunes the user directory.
type UserConfig struct {
	SummaryCacheTTL int // in seconds, 0 disables the cache
}

// AccessControlConfig holds role defaults.
type AccessControlConfig struct {
	DefaultRole string
}

// Load loads configuration using Viper. A .env file in the working directory is
// loaded first so its values behave like real environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("auth-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/auth-srv/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = v.GetString("postgres.host")
	cfg.Postgres.Port = v.GetInt("postgres.port")
	cfg.Postgres.User = v.GetString("postgres.user")
	cfg.Postgres.Password = v.GetString("postgres.password")
	cfg.Postgres.DBName = v.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = v.GetString("postgres.sslmode")
	cfg.Postgres.Schema = v.GetString("postgres.schema")
	cfg.Postgres.Migrate = v.GetBool("postgres.migrate")

	// Redis
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Brokers = v.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = v.GetString("kafka.topic")

	// JWT
	cfg.JWT.SecretKey = v.GetString("jwt.secret_key")
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.JWT.Audience = v.GetString("jwt.audience")
	cfg.JWT.ExpirationInMinutes = v.GetInt("jwt.expiration_in_minutes")

	// Password hashing
	cfg.Password.Algorithm = v.GetString("password.algorithm")
	cfg.Password.BcryptCost = v.GetInt("password.bcrypt_cost")
	cfg.Password.MaxConcurrency = v.GetInt("password.max_concurrency")
	cfg.Password.Argon2.Time = v.GetUint32("password.argon2.time")
	cfg.Password.Argon2.MemoryKiB = v.GetUint32("password.argon2.memory_kib")
	cfg.Password.Argon2.Threads = uint8(v.GetUint("password.argon2.threads"))
	cfg.Password.Argon2.KeyLen = v.GetUint32("password.argon2.key_len")
	cfg.Password.Argon2.SaltLen = v.GetUint32("password.argon2.salt_len")

	// User directory & access control
	cfg.User.SummaryCacheTTL = v.GetInt("user.summary_cache_ttl")
	cfg.AccessControl.DefaultRole = v.GetString("access_control.default_role")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")

	// Logger
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.dbname", "postgres")
	v.SetDefault("postgres.sslmode", "prefer")
	v.SetDefault("postgres.schema", "public")
	v.SetDefault("postgres.migrate", true)

	// 2. Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// 3. Kafka (no brokers = audit events disabled)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "auth.login.events")

	// JWT
	v.SetDefault("jwt.issuer", "auth-srv")
	v.SetDefault("jwt.audience", "auth-clients")
	v.SetDefault("jwt.expiration_in_minutes", 60)

	// Password hashing
	v.SetDefault("password.algorithm", "bcrypt")
	v.SetDefault("password.bcrypt_cost", 10)
	v.SetDefault("password.max_concurrency", 0)
	v.SetDefault("password.argon2.time", 1)
	v.SetDefault("password.argon2.memory_kib", 64*1024)
	v.SetDefault("password.argon2.threads", 4)
	v.SetDefault("password.argon2.key_len", 32)
	v.SetDefault("password.argon2.salt_len", 16)

	// User directory
	v.SetDefault("user.summary_cache_ttl", 300)

	// Access Control
	v.SetDefault("access_control.default_role", "USER")
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if strings.TrimSpace(cfg.JWT.Issuer) == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if strings.TrimSpace(cfg.JWT.Audience) == "" {
		return fmt.Errorf("jwt.audience is required")
	}

	// Validate password hashing
	switch cfg.Password.Algorithm {
	case "bcrypt", "argon2id":
	default:
		return fmt.Errorf("password.algorithm must be bcrypt or argon2id, got %q", cfg.Password.Algorithm)
	}
	if cfg.Password.MaxConcurrency < 0 {
		return fmt.Errorf("password.max_concurrency must not be negative")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.db_name is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Kafka.Enabled() && cfg.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
	}

	if cfg.User.SummaryCacheTTL < 0 {
		return fmt.Errorf("user.summary_cache_ttl must not be negative")
	}

	return nil
}
