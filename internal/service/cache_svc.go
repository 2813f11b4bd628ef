package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// AnalysisCacheTTL bounds how stale a served analysis can be. The upstream
// API quota is the scarce resource; entries are immutable full responses.
const AnalysisCacheTTL = 15 * time.Minute

// CacheService provides a Redis cache-aside layer for completed channel
// analyses.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetAnalysis retrieves a cached analysis response. Returns nil if not cached
// or cache is disabled.
func (c *CacheService) GetAnalysis(ctx context.Context, channelID string, maxVideos int) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, analysisKey(channelID, maxVideos)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetAnalysis stores a completed analysis response.
func (c *CacheService) SetAnalysis(ctx context.Context, channelID string, maxVideos int, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, analysisKey(channelID, maxVideos), b, AnalysisCacheTTL).Err()
}

// InvalidateAnalysis removes all cached variants for a channel.
func (c *CacheService) InvalidateAnalysis(ctx context.Context, channelID string) error {
	if c.rdb == nil {
		return nil
	}
	iter := c.rdb.Scan(ctx, 0, fmt.Sprintf("analysis:%s:*", channelID), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func analysisKey(channelID string, maxVideos int) string {
	return fmt.Sprintf("analysis:%s:%d", channelID, maxVideos)
}
