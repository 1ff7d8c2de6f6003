package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	FILM_CACHE_KEY    = "film:all"
	FILM_CACHE_PREFIX = "film:"
	MENU_CACHE_KEY    = "menu:all"
	MENU_CACHE_PREFIX = "menu:"

	CACHE_TTL_SHORT  = 5 * time.Minute
	CACHE_TTL_MEDIUM = 30 * time.Minute
)

// A cache miss, a marshal failure or an unreachable redis all degrade to a
// database read; the cache never fails a request.
func cacheGet(ctx context.Context, rdb *redis.Client, key string, dest interface{}) bool {
	if rdb == nil {
		return false
	}
	data, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func cacheSet(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) {
	if rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	rdb.Set(ctx, key, data, ttl)
}

func cacheDel(ctx context.Context, rdb *redis.Client, keys ...string) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, keys...)
}
