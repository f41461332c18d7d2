// Package cache stores derived read models in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/screenline/cinebook/internal/domain"
)

const DefaultSeatMapTTL = 30 * time.Second

// SeatMapCache keeps the seat map of each showtime under seatmap:{id}. Entries
// expire after ttl and are dropped whenever the bookings of a showtime change.
//
// Every drop also bumps a counter under seatmap:{id}:gen. A reader that missed
// the cache hands the counter it saw back to Set, and Set writes only while the
// counter still holds that value, so a map read before a change is never stored
// after it.
type SeatMapCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewSeatMapCache(client redis.UniversalClient, ttl time.Duration) *SeatMapCache {
	if ttl <= 0 {
		ttl = DefaultSeatMapTTL
	}

	return &SeatMapCache{client: client, ttl: ttl}
}

func SeatMapKey(showtimeID int) string {
	return fmt.Sprintf("seatmap:%d", showtimeID)
}

func SeatMapGenerationKey(showtimeID int) string {
	return fmt.Sprintf("seatmap:%d:gen", showtimeID)
}

// Get returns the cached seat map, or nil on a miss, along with the current
// generation of the showtime.
func (c *SeatMapCache) Get(ctx context.Context, showtimeID int) (*domain.SeatMap, int64, error) {
	values, err := c.client.MGet(ctx, SeatMapKey(showtimeID), SeatMapGenerationKey(showtimeID)).Result()
	if err != nil {
		return nil, 0, err
	}

	var generation int64
	if s, ok := values[1].(string); ok {
		generation, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode seat map generation: %w", err)
		}
	}

	data, ok := values[0].(string)
	if !ok {
		return nil, generation, nil
	}

	var seatMap domain.SeatMap
	err = json.Unmarshal([]byte(data), &seatMap)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode cached seat map: %w", err)
	}

	return &seatMap, generation, nil
}

// Set stores seatMap unless the showtime was invalidated since generation was
// read. A skipped write is not an error.
func (c *SeatMapCache) Set(ctx context.Context, seatMap *domain.SeatMap, generation int64) error {
	data, err := json.Marshal(seatMap)
	if err != nil {
		return err
	}

	key := SeatMapKey(seatMap.ShowtimeID)
	genKey := SeatMapGenerationKey(seatMap.ShowtimeID)

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			return nil
		})

		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}

	return err
}

func (c *SeatMapCache) Invalidate(ctx context.Context, showtimeID int) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, SeatMapGenerationKey(showtimeID))
		pipe.Del(ctx, SeatMapKey(showtimeID))
		return nil
	})

	return err
}
