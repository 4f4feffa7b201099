/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/secschema/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// missingEnv points Load at a .env file that does not exist.
func missingEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.BackingMemory, cfg.Backing)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "secschema", cfg.Redis.Prefix)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
backing: dynamodb
dynamodb:
  region: ca-central-1
  table: secschema
  retry_backoff: 50ms
logging:
  level: debug
  format: console
`)
	cfg, err := config.Load(path, missingEnv(t))
	require.NoError(t, err)
	assert.Equal(t, config.BackingDynamoDB, cfg.Backing)
	assert.Equal(t, "secschema", cfg.DynamoDB.Table)
	assert.Equal(t, 50*time.Millisecond, cfg.DynamoDB.RetryBackoff)
	assert.Equal(t, 3, cfg.DynamoDB.MaxRetries)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestMaxRetriesZeroDisablesRetries(t *testing.T) {
	path := writeFile(t, "config.yaml", `
backing: dynamodb
dynamodb:
  region: ca-central-1
  table: secschema
  max_retries: 0
`)
	cfg, err := config.Load(path, missingEnv(t))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.DynamoDB.MaxRetries)

	cfg, err = config.Load("", missingEnv(t))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.DynamoDB.MaxRetries)
}

func TestEnvOverrides(t *testing.T) {
	path := writeFile(t, "config.yaml", "backing: memory\n")
	t.Setenv("SECSCHEMA_BACKING", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load(path, missingEnv(t))
	require.NoError(t, err)
	assert.Equal(t, config.BackingRedis, cfg.Backing)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestEnvFile(t *testing.T) {
	env := writeFile(t, "test.env", "AWS_DDB_TABLE=from-env-file\nAWS_REGION=us-east-1\nSECSCHEMA_BACKING=dynamodb\n")
	// godotenv never overrides variables that are already set
	t.Setenv("AWS_DDB_TABLE", "")
	os.Unsetenv("AWS_DDB_TABLE")
	t.Setenv("AWS_REGION", "")
	os.Unsetenv("AWS_REGION")
	t.Setenv("SECSCHEMA_BACKING", "")
	os.Unsetenv("SECSCHEMA_BACKING")

	cfg, err := config.Load("", env)
	require.NoError(t, err)
	assert.Equal(t, "from-env-file", cfg.DynamoDB.Table)
	assert.Equal(t, "us-east-1", cfg.DynamoDB.Region)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"UnknownBacking", func(c *config.Config) { c.Backing = "postgres" }},
		{"DynamoWithoutTable", func(c *config.Config) { c.Backing = config.BackingDynamoDB; c.DynamoDB.Region = "r" }},
		{"RedisWithoutAddr", func(c *config.Config) { c.Backing = config.BackingRedis }},
		{"RedisDBRange", func(c *config.Config) { c.Backing = config.BackingRedis; c.Redis.Addr = "x"; c.Redis.DB = 16 }},
		{"BadLevel", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"BadFormat", func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), missingEnv(t))
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "backing: [unterminated")
	_, err = config.Load(bad, missingEnv(t))
	assert.Error(t, err)
}

func TestBuildLogger(t *testing.T) {
	logger, err := config.LoggingConfig{Level: "debug", Format: "console"}.Build()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	_, err = config.LoggingConfig{Level: "nope", Format: "json"}.Build()
	assert.Error(t, err)
}
