package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(config RedisConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// An unreachable redis is not fatal: the cache layer degrades to
	// database reads, and the client reconnects once redis comes back.
	ctx := context.Background()
	if pong, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("Redis unavailable, serving without cache: %v", err)
	} else {
		log.Printf("Redis connected: %s", pong)
	}

	return rdb
}
