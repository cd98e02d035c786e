package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/geladeira/backend/config"
)

func TestNewRedisOptions(t *testing.T) {
	t.Run("should use host and port", func(t *testing.T) {
		opts, err := NewRedisOptions(&config.Config{RedisHost: "redis", RedisPort: "6380", RedisPassword: "pw", RedisDB: 2})
		require.NoError(t, err)
		assert.Equal(t, "redis:6380", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Equal(t, 2, opts.DB)
	})

	t.Run("should prefer the URL", func(t *testing.T) {
		opts, err := NewRedisOptions(&config.Config{RedisURL: "redis://cache:6379/3", RedisHost: "ignored", RedisPassword: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "cache:6379", opts.Addr)
		assert.Equal(t, 3, opts.DB)
		assert.Equal(t, "pw", opts.Password)
	})

	t.Run("should reject a bad URL", func(t *testing.T) {
		_, err := NewRedisOptions(&config.Config{RedisURL: "http://nope"})
		assert.Error(t, err)
	})
}

func TestNewRedisClientUnreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client, err := NewRedisClient(ctx, &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"}, zaptest.NewLogger(t))
	assert.Error(t, err)
	assert.Nil(t, client)
}
