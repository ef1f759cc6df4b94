package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/tasklist/internal/config"
)

func TestOptions(t *testing.T) {
	opts, err := Options(config.RedisConfig{URL: "redis://:secret@cache:6380/2"})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, dialTimeout, opts.DialTimeout)

	opts, err = Options(config.RedisConfig{URL: "redis://cache:6379/2", Password: "override", DB: 5})
	require.NoError(t, err)
	assert.Equal(t, "override", opts.Password)
	assert.Equal(t, 5, opts.DB)
}

func TestOptionsRejectsBadURL(t *testing.T) {
	_, err := Options(config.RedisConfig{URL: "http://cache:6379"})
	assert.ErrorContains(t, err, "parse REDIS_URL")
}
