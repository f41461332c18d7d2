package bookingtest

import (
	"context"
	"slices"
	"sync"

	"github.com/screenline/cinebook/internal/domain"
)

// MemoryCache keeps seat maps in a map and follows the generation rules of the
// Redis cache: Invalidate bumps the generation and Set ignores stale ones.
type MemoryCache struct {
	mu          sync.Mutex
	entries     map[int]domain.SeatMap
	generations map[int]int64
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries:     make(map[int]domain.SeatMap),
		generations: make(map[int]int64),
	}
}

func (c *MemoryCache) Get(ctx context.Context, showtimeID int) (*domain.SeatMap, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	generation := c.generations[showtimeID]

	seatMap, ok := c.entries[showtimeID]
	if !ok {
		return nil, generation, nil
	}

	seatMap.Booked = slices.Clone(seatMap.Booked)

	return &seatMap, generation, nil
}

func (c *MemoryCache) Set(ctx context.Context, seatMap *domain.SeatMap, generation int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[seatMap.ShowtimeID] != generation {
		return nil
	}

	stored := *seatMap
	stored.Booked = slices.Clone(seatMap.Booked)
	c.entries[seatMap.ShowtimeID] = stored

	return nil
}

func (c *MemoryCache) Invalidate(ctx context.Context, showtimeID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[showtimeID]++
	delete(c.entries, showtimeID)

	return nil
}

// Cached reports whether a seat map is stored for the showtime.
func (c *MemoryCache) Cached(showtimeID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[showtimeID]
	return ok
}
