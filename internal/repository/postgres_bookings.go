package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/screenline/cinebook/internal/domain"
)

// PostgresBookingRepository serves the read side of bookings. Writes go through
// PostgresSeatLedger.
type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

const bookingSummaryColumns = `
	COUNT(*) OVER(),
	b.id,
	b.reference,
	u.username,
	m.title,
	m.poster_url,
	t.name,
	s.screen,
	s.starts_at,
	(SELECT array_agg(bs.seat_number ORDER BY bs.seat_number) FROM booking_seats bs WHERE bs.booking_id = b.id),
	b.created_at
`

const bookingSummaryJoins = `
	FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN showtimes s ON s.id = b.showtime_id
	JOIN movies m ON m.id = s.movie_id
	JOIN theatres t ON t.id = s.theatre_id
`

func (p *PostgresBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userId int,
	filters domain.BookingFilters) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `SELECT` + bookingSummaryColumns + bookingSummaryJoins + `
		WHERE b.user_id = $1 AND ($2 = '' OR to_char(b.created_at, 'YYYY-MM') = $2)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $3 OFFSET $4
	`

	return p.querySummaries(ctx, filters.Pagination, query, userId, filters.Month, filters.Limit(), filters.Offset())
}

func (p *PostgresBookingRepository) GetAllSummaries(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `SELECT` + bookingSummaryColumns + bookingSummaryJoins + `
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $1 OFFSET $2
	`

	return p.querySummaries(ctx, pagination, query, pagination.Limit(), pagination.Offset())
}

func (p *PostgresBookingRepository) querySummaries(
	ctx context.Context,
	pagination domain.Pagination,
	query string,
	args ...any) ([]domain.BookingSummary, *domain.Metadata, error) {

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.Reference,
			&booking.Username,
			&booking.MovieTitle,
			&booking.MoviePosterUrl,
			&booking.TheatreName,
			&booking.Screen,
			&booking.ShowtimeStart,
			&booking.Seats,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

// GetBookingMonthsByUserId lists the months (YYYY-MM) in which the user made
// bookings, newest first.
func (p *PostgresBookingRepository) GetBookingMonthsByUserId(ctx context.Context, userId int) ([]string, error) {
	query := `
		SELECT DISTINCT to_char(created_at, 'YYYY-MM') AS month
		FROM bookings
		WHERE user_id = $1
		ORDER BY month DESC
	`

	rows, err := p.db.Query(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	months := make([]string, 0)

	for rows.Next() {
		var month string

		err = rows.Scan(&month)
		if err != nil {
			return nil, err
		}

		months = append(months, month)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return months, nil
}

func (p *PostgresBookingRepository) GetStatsByUserId(ctx context.Context, userId int) (*domain.BookingStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM bookings WHERE user_id = $1),
			(SELECT count(*) FROM booking_seats bs JOIN bookings b ON b.id = bs.booking_id WHERE b.user_id = $1)
	`

	var stats domain.BookingStats

	err := p.db.QueryRow(ctx, query, userId).Scan(&stats.Bookings, &stats.Tickets)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
