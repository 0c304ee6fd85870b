// Package cache keeps recent verification responses in Redis. The cache
// key includes the current scam report count, so a new report for the
// same letter naturally misses instead of serving a stale verdict.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shashankpendyala3549-commits/backend/internal/models"
)

// AnalysisCache stores full OfferAnalysis responses with a TTL.
type AnalysisCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// New parses redisURL, verifies connectivity, and returns the cache.
func New(ctx context.Context, redisURL string, ttl time.Duration, logger *zap.Logger) (*AnalysisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &AnalysisCache{rdb: client, ttl: ttl, logger: logger}, nil
}

func key(requestHash string, reportsCount int) string {
	return fmt.Sprintf("verify:%s:%d", requestHash, reportsCount)
}

// Get returns a cached analysis, or nil on miss or decode failure.
func (c *AnalysisCache) Get(ctx context.Context, requestHash string, reportsCount int) *models.OfferAnalysis {
	data, err := c.rdb.Get(ctx, key(requestHash, reportsCount)).Bytes()
	if err != nil {
		return nil
	}

	var analysis models.OfferAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		c.logger.Warn("failed to decode cached analysis", zap.Error(err))
		return nil
	}
	return &analysis
}

// Set stores the analysis. Cache failures are logged and ignored.
func (c *AnalysisCache) Set(ctx context.Context, requestHash string, reportsCount int, analysis *models.OfferAnalysis) {
	data, err := json.Marshal(analysis)
	if err != nil {
		c.logger.Warn("failed to encode analysis for cache", zap.Error(err))
		return
	}

	if err := c.rdb.Set(ctx, key(requestHash, reportsCount), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache analysis", zap.Error(err))
	}
}

// Close releases the Redis connection.
func (c *AnalysisCache) Close() error {
	return c.rdb.Close()
}
