package cachehub

import (
	"github.com/redis/go-redis/v9"
	"github.com/zachmann/go-utils/duration"
)

// RedisConf holds redis specific cache configuration.
type RedisConf struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// KeyPrefix is prepended to all cache keys written to redis.
	KeyPrefix string `yaml:"key_prefix"`
	// TTL is the entry time to live; zero means entries never expire.
	TTL duration.DurationOption `yaml:"ttl"`
}

// IsSet returns a bool indicating if this provider was configured or not
func (c RedisConf) IsSet() bool {
	return c.Addr != ""
}

// Options returns the client options used to connect to the configured redis.
func (c RedisConf) Options() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Username: c.Username,
		Password: c.Password,
		DB:       c.DB,
	}
}
