package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, values map[string]string) {
	for _, key := range []string{"PORT", "ENV", "DATA_STORE_TYPE", "DB_CONNECTION_STRING", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "JWT_SECRET", "HEALTH_CHECK_SCHEDULE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	for key, value := range values {
		t.Setenv(key, value)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"JWT_SECRET":           "secret",
		"DB_CONNECTION_STRING": "postgres://localhost/payments",
	})

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "@every 1m", cfg.HealthCheckSchedule)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.UseBackupStore())
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.EnvFileLoaded)
}

func TestLoad_BackupStoreFromEnvFile(t *testing.T) {
	setEnv(t, nil)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=secret\nDATA_STORE_TYPE=BackUp\nREDIS_ADDR=localhost:6379\nREDIS_DB=2\nENV=production\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(envFile)

	require.NoError(t, err)
	assert.True(t, cfg.EnvFileLoaded)
	assert.True(t, cfg.UseBackupStore())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoad_DataStoreTypeIsCaseSensitive(t *testing.T) {
	setEnv(t, map[string]string{
		"JWT_SECRET":           "secret",
		"DATA_STORE_TYPE":      "backup",
		"DB_CONNECTION_STRING": "postgres://localhost/payments",
	})

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.False(t, cfg.UseBackupStore())
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{name: "no jwt secret", env: map[string]string{"DB_CONNECTION_STRING": "postgres://x"}, want: ErrMissingJWTSecret},
		{name: "primary without connection string", env: map[string]string{"JWT_SECRET": "s"}, want: ErrMissingConnectionString},
		{name: "backup without redis", env: map[string]string{"JWT_SECRET": "s", "DATA_STORE_TYPE": "BackUp"}, want: ErrMissingRedisAddr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	setEnv(t, map[string]string{"JWT_SECRET": "s", "REDIS_DB": "two"})

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
