package redis

import (
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{RedisAddr: "cache:6380", RedisPass: "secret", RedisDB: 2}

	opts := Options(cfg)

	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 10, opts.PoolSize)
}
