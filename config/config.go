/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads the settings that select and reach a backing.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file, a .env file and the process environment.
package config

import (
	goerrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Backing names accepted by Config.Backing.
const (
	BackingMemory   = "memory"
	BackingDynamoDB = "dynamodb"
	BackingRedis    = "redis"
)

// Config is the complete configuration.
type Config struct {
	Backing  string         `yaml:"backing"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DynamoDBConfig holds the DynamoDB backing settings.
type DynamoDBConfig struct {
	AccessKey    string        `yaml:"access_key"`
	SecretKey    string        `yaml:"secret_key"`
	Region       string        `yaml:"region"`
	Table        string        `yaml:"table"`
	Endpoint     string        `yaml:"endpoint"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// RedisConfig holds the Redis backing settings.
type RedisConfig struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	Prefix      string        `yaml:"prefix"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig holds Prometheus configuration
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when nothing is set: an in-memory
// backing with info-level JSON logs.
func Default() *Config {
	cfg := preset()
	setDefaults(&cfg)
	return &cfg
}

// preset holds defaults whose zero value is a valid setting; Load reads the
// file over them.
func preset() Config {
	return Config{
		DynamoDB: DynamoDBConfig{MaxRetries: 3},
	}
}

// Load reads path (skipped when empty), then the given .env files (".env"
// when none are given; missing files are ignored), then the environment.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := preset()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !goerrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	set := func(dst *string, name string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}
	set(&cfg.Backing, "SECSCHEMA_BACKING")
	set(&cfg.DynamoDB.AccessKey, "AWS_ACCESS_KEY")
	set(&cfg.DynamoDB.SecretKey, "AWS_SECRET_KEY")
	set(&cfg.DynamoDB.Region, "AWS_REGION")
	set(&cfg.DynamoDB.Table, "AWS_DDB_TABLE")
	set(&cfg.DynamoDB.Endpoint, "AWS_DDB_ENDPOINT")
	set(&cfg.Redis.Addr, "REDIS_ADDR")
	set(&cfg.Redis.Password, "REDIS_PASSWORD")
	set(&cfg.Logging.Level, "LOG_LEVEL")

	if v, ok := os.LookupEnv("REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	return nil
}

// setDefaults sets default values for unspecified configuration
func setDefaults(cfg *Config) {
	if cfg.Backing == "" {
		cfg.Backing = BackingMemory
	}

	if cfg.DynamoDB.RetryBackoff == 0 {
		cfg.DynamoDB.RetryBackoff = 200 * time.Millisecond
	}

	if cfg.Redis.Prefix == "" {
		cfg.Redis.Prefix = "secschema"
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 5 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = "secschema"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Backing {
	case BackingMemory:
	case BackingDynamoDB:
		if c.DynamoDB.Table == "" {
			return fmt.Errorf("dynamodb.table is required")
		}
		if c.DynamoDB.Region == "" {
			return fmt.Errorf("dynamodb.region is required")
		}
		if c.DynamoDB.MaxRetries < 0 {
			return fmt.Errorf("dynamodb.max_retries must be non-negative, got: %d", c.DynamoDB.MaxRetries)
		}
	case BackingRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required")
		}
		if c.Redis.DB < 0 || c.Redis.DB > 15 {
			return fmt.Errorf("redis.db must be between 0 and 15, got: %d", c.Redis.DB)
		}
	default:
		return fmt.Errorf("backing must be one of %s, %s, %s; got %q",
			BackingMemory, BackingDynamoDB, BackingRedis, c.Backing)
	}

	if _, err := zap.ParseAtomicLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Build constructs a zap logger from the logging settings.
func (l LoggingConfig) Build() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if l.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	zc.Encoding = l.Format
	return zc.Build()
}
