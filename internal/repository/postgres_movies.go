package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/screenline/cinebook/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.Pagination) ([]*domain.Movie, *domain.Metadata, error) {
	query := fmt.Sprintf(`SELECT count(*) OVER(), id, title, director, release_year, genre, rating, poster_url, created_at
		FROM movies
		WHERE (to_tsvector('simple', title) @@ plainto_tsquery('simple', $1)
			OR title ILIKE '%%' || $1 || '%%'
			OR $1 = '')
		ORDER BY %s %s, id ASC
		LIMIT $2 OFFSET $3`, filters.SortColumn(), filters.SortDirection())

	rows, err := p.db.Query(ctx, query, filters.Term, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie
		var rating pgtype.Numeric

		err := rows.Scan(
			&totalRecords,
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.ReleaseYear,
			&movie.Genre,
			&rating,
			&movie.PosterUrl,
			&movie.CreatedAt,
		)

		if err != nil {
			return nil, nil, err
		}

		movie.Rating = fromNumeric(rating)
		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return movies, metadata, nil
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, title, director, release_year, genre, rating, poster_url, created_at
		FROM movies
		WHERE id = $1`

	var movie domain.Movie
	var rating pgtype.Numeric

	err := p.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.ReleaseYear,
		&movie.Genre,
		&rating,
		&movie.PosterUrl,
		&movie.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}

		return nil, err
	}

	movie.Rating = fromNumeric(rating)

	return &movie, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `INSERT INTO movies (title, director, release_year, genre, rating, poster_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Director,
		movie.ReleaseYear,
		movie.Genre,
		toNumeric(movie.Rating),
		movie.PosterUrl,
	).Scan(&movie.ID, &movie.CreatedAt)
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `UPDATE movies
		SET title = $1, director = $2, release_year = $3, genre = $4, rating = $5, poster_url = $6
		WHERE id = $7
		RETURNING created_at`

	err := p.db.QueryRow(
		ctx,
		query,
		movie.Title,
		movie.Director,
		movie.ReleaseYear,
		movie.Genre,
		toNumeric(movie.Rating),
		movie.PosterUrl,
		movie.ID,
	).Scan(&movie.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrMovieNotFound
		}

		return err
	}

	return nil
}

// Delete removes a movie together with its showtimes and their bookings.
func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	result, err := p.db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMovieNotFound
	}

	return nil
}
