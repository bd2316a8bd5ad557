package service

import (
	"context"
	"testing"
	"time"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/testutil"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisTermCache_UnreachableRedisIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewRedisTermCache(client, time.Minute, testutil.NewLogger())
	ctx := context.Background()

	cache.Set(ctx, []dto.TermResponse{{AppointmentResponse: dto.AppointmentResponse{ID: 1}}})
	terms, ok := cache.Get(ctx)
	cache.Invalidate(ctx)

	assert.False(t, ok)
	assert.Nil(t, terms)
}
