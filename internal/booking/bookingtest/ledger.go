// Package bookingtest provides an in-memory domain.SeatLedger for tests.
package bookingtest

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/screenline/cinebook/internal/domain"
)

// MemoryLedger keeps showtimes and bookings in maps. Each showtime has its own
// lock held for the whole of InShowtimeTx; writes are staged on the
// transaction and applied only when fn succeeds.
type MemoryLedger struct {
	mu        sync.Mutex
	locks     map[int]*sync.Mutex
	showtimes map[int]domain.Showtime
	bookings  map[int]domain.Booking
	nextID    int
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		locks:     make(map[int]*sync.Mutex),
		showtimes: make(map[int]domain.Showtime),
		bookings:  make(map[int]domain.Booking),
	}
}

// AddShowtime registers a showtime. A zero TotalSeats means the default capacity.
func (l *MemoryLedger) AddShowtime(showtime domain.Showtime) {
	if showtime.TotalSeats == 0 {
		showtime.TotalSeats = domain.DefaultTotalSeats
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.showtimes[showtime.ID] = showtime
}

// RemoveShowtime deletes a showtime and every booking on it.
func (l *MemoryLedger) RemoveShowtime(showtimeID int) {
	lock := l.lockFor(showtimeID)
	lock.Lock()
	defer lock.Unlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.showtimes, showtimeID)

	for id, booking := range l.bookings {
		if booking.ShowtimeID == showtimeID {
			delete(l.bookings, id)
		}
	}
}

// Bookings returns the committed bookings of a showtime ordered by id.
func (l *MemoryLedger) Bookings(showtimeID int) []domain.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	var result []domain.Booking
	for _, booking := range l.bookings {
		if booking.ShowtimeID == showtimeID {
			result = append(result, booking)
		}
	}

	slices.SortFunc(result, func(a, b domain.Booking) int {
		return a.ID - b.ID
	})

	return result
}

func (l *MemoryLedger) Showtime(showtimeID int) (domain.Showtime, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	showtime, ok := l.showtimes[showtimeID]
	return showtime, ok
}

func (l *MemoryLedger) lockFor(showtimeID int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[showtimeID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[showtimeID] = lock
	}

	return lock
}

func (l *MemoryLedger) InShowtimeTx(ctx context.Context, showtimeID int, fn func(ctx context.Context, tx domain.SeatLedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock := l.lockFor(showtimeID)
	lock.Lock()
	defer lock.Unlock()

	showtime, ok := l.Showtime(showtimeID)
	if !ok {
		return domain.ErrShowtimeNotFound
	}

	tx := &memoryTx{
		ledger:   l,
		showtime: showtime,
		deleted:  make(map[int]struct{}),
	}

	err := fn(ctx, tx)
	if err != nil {
		return err
	}

	l.commit(tx)

	return nil
}

func (l *MemoryLedger) commit(tx *memoryTx) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for id := range tx.deleted {
		delete(l.bookings, id)
	}

	for _, booking := range tx.inserted {
		l.bookings[booking.ID] = booking
	}

	if tx.updated != nil {
		l.showtimes[tx.updated.ID] = *tx.updated
	}
}

func (l *MemoryLedger) SeatMap(ctx context.Context, showtimeID int) (*domain.SeatMap, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	showtime, ok := l.showtimes[showtimeID]
	if !ok {
		return nil, domain.ErrShowtimeNotFound
	}

	var booked []int
	for _, booking := range l.bookings {
		if booking.ShowtimeID == showtimeID {
			booked = append(booked, booking.Seats...)
		}
	}

	return domain.NewSeatMap(showtimeID, showtime.TotalSeats, booked), nil
}

func (l *MemoryLedger) FindBooking(ctx context.Context, bookingID int) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking, ok := l.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	booking.Seats = slices.Clone(booking.Seats)

	return &booking, nil
}

type memoryTx struct {
	ledger   *MemoryLedger
	showtime domain.Showtime
	inserted []domain.Booking
	deleted  map[int]struct{}
	updated  *domain.Showtime
}

func (tx *memoryTx) Showtime() domain.Showtime {
	return tx.showtime
}

func (tx *memoryTx) BookedSeats(ctx context.Context) ([]int, error) {
	tx.ledger.mu.Lock()
	defer tx.ledger.mu.Unlock()

	var booked []int
	for id, booking := range tx.ledger.bookings {
		if booking.ShowtimeID != tx.showtime.ID {
			continue
		}

		if _, gone := tx.deleted[id]; gone {
			continue
		}

		booked = append(booked, booking.Seats...)
	}

	for _, booking := range tx.inserted {
		booked = append(booked, booking.Seats...)
	}

	slices.Sort(booked)

	return booked, nil
}

func (tx *memoryTx) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	tx.ledger.mu.Lock()
	tx.ledger.nextID++
	booking.ID = tx.ledger.nextID
	tx.ledger.mu.Unlock()

	booking.CreatedAt = time.Now()

	stored := *booking
	stored.Seats = slices.Clone(booking.Seats)
	tx.inserted = append(tx.inserted, stored)

	return nil
}

func (tx *memoryTx) FindBooking(ctx context.Context, bookingID int) (*domain.Booking, error) {
	if _, gone := tx.deleted[bookingID]; gone {
		return nil, domain.ErrBookingNotFound
	}

	for _, booking := range tx.inserted {
		if booking.ID == bookingID {
			booking.Seats = slices.Clone(booking.Seats)
			return &booking, nil
		}
	}

	booking, err := tx.ledger.FindBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.ShowtimeID != tx.showtime.ID {
		return nil, domain.ErrBookingNotFound
	}

	return booking, nil
}

func (tx *memoryTx) DeleteBooking(ctx context.Context, bookingID int) error {
	if _, err := tx.FindBooking(ctx, bookingID); err != nil {
		return err
	}

	tx.inserted = slices.DeleteFunc(tx.inserted, func(b domain.Booking) bool {
		return b.ID == bookingID
	})
	tx.deleted[bookingID] = struct{}{}

	return nil
}

func (tx *memoryTx) UpdateShowtime(ctx context.Context, showtime *domain.Showtime) error {
	if showtime.ID != tx.showtime.ID {
		return domain.ErrShowtimeNotFound
	}

	updated := *showtime
	tx.updated = &updated
	tx.showtime = updated

	return nil
}
