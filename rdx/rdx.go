package rdx

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// CacheJSON stores v under key with a TTL. Failures are logged and
// swallowed; the cache is never allowed to fail a request.
func CacheJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Println("cache marshal error:", err)
		return
	}
	if err := Conn.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Println("Redis SET error:", err)
	}
}

// GetCachedJSON loads key into dest, reporting whether it was present.
func GetCachedJSON(ctx context.Context, key string, dest any) bool {
	data, err := Conn.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("Redis GET error:", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Println("cache unmarshal error:", err)
		return false
	}
	return true
}

// Invalidate drops cache keys after a write.
func Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := Conn.Del(ctx, keys...).Err(); err != nil {
		log.Println("Redis DEL error:", err)
	}
}
