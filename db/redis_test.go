package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRedisService_Health(t *testing.T) {
	mr := miniredis.RunT(t)

	service, err := NewRedisService(context.Background(), mr.Addr(), "", 0, zap.NewNop())
	require.NoError(t, err)
	defer service.Close()

	stats := service.Health(context.Background())
	assert.Equal(t, "up", stats["status"])
	assert.Equal(t, "redis", stats["store"])

	mr.Close()
	stats = service.Health(context.Background())
	assert.Equal(t, "down", stats["status"])
	assert.Contains(t, stats["error"], "redis down")
}

func TestNewRedisService_Errors(t *testing.T) {
	_, err := NewRedisService(context.Background(), "", "", 0, zap.NewNop())
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = NewRedisService(context.Background(), addr, "", 0, zap.NewNop())
	assert.Error(t, err)
}

func TestNewDBService_MissingConnectionString(t *testing.T) {
	_, err := NewDBService(context.Background(), "", zap.NewNop())
	assert.Error(t, err)
}
