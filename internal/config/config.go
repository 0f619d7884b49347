package config

import (
	"fmt"
	"strings"

	"awareness_backend/internal/domain"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Database    DatabaseConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Storage     StorageConfig
	Tracing     TracingConfig     `mapstructure:"tracing"`
	CORS        CORSConfig        `mapstructure:"cors"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Domains     []DomainConfig    `mapstructure:"domains"`
}

type ServerConfig struct {
	Port      string
	Mode      string
	LogFormat string `mapstructure:"log_format"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DatabaseConfig 评估结果的持久化目标
// Driver: mongo / mysql / postgres / sqlite / file / none
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool   `mapstructure:"parse_time"`
	SSLMode   string `mapstructure:"sslmode"`
	Path      string `mapstructure:"path"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioUseSSL   bool   `mapstructure:"minio_use_ssl"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
	ServiceName       string `mapstructure:"service_name"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type LeaderboardConfig struct {
	Size int `mapstructure:"size"`
}

// DomainConfig 单个评估领域的数据与模型位置，路径相对于 storage 根目录
type DomainConfig struct {
	Slug            string `mapstructure:"slug"`
	Name            string `mapstructure:"name"`
	Collection      string `mapstructure:"collection"`
	AnswerSheet     string `mapstructure:"answer_sheet"`
	ExplanationBank string `mapstructure:"explanation_bank"`
	Model           string `mapstructure:"model"`
	Scaler          string `mapstructure:"scaler"`
	FeatureNames    string `mapstructure:"feature_names"`
	FeatureOffsets  []int  `mapstructure:"feature_offsets"`
	Enabled         bool   `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.log_format", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("database.driver", "none")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("mongo.database", "security_awareness")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "data")
	v.SetDefault("tracing.service_name", "awareness-backend")
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("leaderboard.size", 10)
}

func LoadConfig(path string) (*Config, error) {
	// .env 可选
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("AWARENESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.log_format", "LOG_FORMAT")

	// Database
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")
	v.BindEnv("database.path", "DATABASE_PATH")

	// Mongo
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.database", "MONGO_DATABASE")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Storage
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.local_path", "STORAGE_LOCAL_PATH")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验配置并将领域 slug 规范化
func (c *Config) Validate() error {
	// 生产环境校验 JWT Secret 强度
	if c.Server.Mode == "release" && len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.JWT.Secret))
	}

	switch c.Database.Driver {
	case "mongo", "mysql", "postgres", "sqlite", "file", "none":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Server.LogFormat {
	case "dev", "combined", "short", "detailed":
	default:
		return fmt.Errorf("unsupported log format %q", c.Server.LogFormat)
	}

	seen := make(map[string]bool, len(c.Domains))
	enabled := 0
	for i := range c.Domains {
		d := &c.Domains[i]
		cat, ok := domain.Lookup(d.Slug)
		if !ok {
			return fmt.Errorf("unknown assessment domain %q", d.Slug)
		}
		d.Slug = cat.Slug
		if seen[d.Slug] {
			return fmt.Errorf("assessment domain %q configured twice", d.Slug)
		}
		seen[d.Slug] = true
		if d.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return fmt.Errorf("no assessment domain enabled")
	}
	return nil
}

// EnabledDomains returns the enabled domains in configuration order.
func (c *Config) EnabledDomains() []DomainConfig {
	var out []DomainConfig
	for _, d := range c.Domains {
		if d.Enabled {
			out = append(out, d)
		}
	}
	return out
}
