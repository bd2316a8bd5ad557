package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hospital-booking-api/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key holding the serialised calendar view
	RedisTermsKey = "terms:all"

	// Timeout for individual Redis operations
	redisOpTimeout = 2 * time.Second
)

// TermCache caches the calendar view (every appointment with its requests).
// A cache failure never fails the caller; it only costs a database read.
type TermCache interface {
	Get(ctx context.Context) ([]dto.TermResponse, bool)
	Set(ctx context.Context, terms []dto.TermResponse)
	Invalidate(ctx context.Context)
}

type redisTermCache struct {
	redisClient redis.Cmdable
	ttl         time.Duration
	log         *logrus.Logger
}

func NewRedisTermCache(redisClient redis.Cmdable, ttl time.Duration, log *logrus.Logger) TermCache {
	return &redisTermCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *redisTermCache) Get(ctx context.Context) ([]dto.TermResponse, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, RedisTermsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read terms cache: %+v", err)
		}
		return nil, false
	}

	var terms []dto.TermResponse
	if err := json.Unmarshal(raw, &terms); err != nil {
		c.log.Warnf("Discarding corrupt terms cache entry: %+v", err)
		return nil, false
	}
	return terms, true
}

func (c *redisTermCache) Set(ctx context.Context, terms []dto.TermResponse) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := json.Marshal(terms)
	if err != nil {
		c.log.Warnf("Failed to encode terms for cache: %+v", err)
		return
	}
	if err := c.redisClient.Set(ctx, RedisTermsKey, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write terms cache: %+v", err)
	}
}

func (c *redisTermCache) Invalidate(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, RedisTermsKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate terms cache (entry expires in %s): %+v", c.ttl, err)
	}
}
