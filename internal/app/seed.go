package app

import (
	"context"
	"fmt"
	"time"

	"github.com/screenline/cinebook/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	seedTheatreName      = "Main Hall"
	seedShowtimesPerFilm = 3
)

var sampleMovies = []domain.Movie{
	{
		Title:       "Inception",
		Director:    "Christopher Nolan",
		ReleaseYear: 2010,
		Genre:       "Sci-Fi",
		Rating:      decimal.RequireFromString("8.8"),
		PosterUrl:   "https://flxt.tmsimg.com/assets/p7825626_p_v8_af.jpg",
	},
	{
		Title:       "The Dark Knight",
		Director:    "Christopher Nolan",
		ReleaseYear: 2008,
		Genre:       "Action",
		Rating:      decimal.RequireFromString("9.0"),
		PosterUrl:   "https://m.media-amazon.com/images/S/pv-target-images/e9a43e647b2ca70e75a3c0af046c4dfdcd712380889779cbdc2c57d94ab63902.jpg",
	},
	{
		Title:       "Pulp Fiction",
		Director:    "Quentin Tarantino",
		ReleaseYear: 1994,
		Genre:       "Crime",
		Rating:      decimal.RequireFromString("8.9"),
		PosterUrl:   "https://image.tmdb.org/t/p/original/n29q4PmwmrxKBPX2grAvFXyYXYV.jpg",
	},
}

// SeedCatalogue fills an empty catalogue with sample movies and gives every
// movie without showtimes three evening shows starting today.
func (app *Application) SeedCatalogue(ctx context.Context, now time.Time) error {
	movies, err := app.allMovies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list movies: %w", err)
	}

	if len(movies) == 0 {
		for _, sample := range sampleMovies {
			movie := sample
			movie.PosterUrl = app.posters.Resolve(movie.Title, movie.PosterUrl)

			err = app.movieRepo.Create(ctx, &movie)
			if err != nil {
				return fmt.Errorf("failed to seed movie %q: %w", movie.Title, err)
			}

			movies = append(movies, &movie)
		}

		app.logger.Info("sample movies added", "movies", len(movies))
	}

	var theatre *domain.Theatre

	for _, movie := range movies {
		showtimes, err := app.showtimeRepo.GetByMovieId(ctx, movie.ID)
		if err != nil {
			return fmt.Errorf("failed to list showtimes of movie %d: %w", movie.ID, err)
		}

		if len(showtimes) > 0 {
			continue
		}

		if theatre == nil {
			theatre, err = app.seedTheatre(ctx)
			if err != nil {
				return err
			}
		}

		for i := range seedShowtimesPerFilm {
			showtime := domain.Showtime{
				MovieID:    movie.ID,
				TheatreID:  theatre.ID,
				Screen:     fmt.Sprintf("Screen %d", i+1),
				StartsAt:   time.Date(now.Year(), now.Month(), now.Day()+i, 18+i, 0, 0, 0, now.Location()),
				TotalSeats: domain.DefaultTotalSeats,
			}

			err = app.showtimeRepo.Create(ctx, &showtime)
			if err != nil {
				return fmt.Errorf("failed to seed showtime for movie %d: %w", movie.ID, err)
			}
		}

		app.logger.Info("sample showtimes added", "movie_id", movie.ID, "showtimes", seedShowtimesPerFilm)
	}

	return nil
}

func (app *Application) allMovies(ctx context.Context) ([]*domain.Movie, error) {
	var all []*domain.Movie

	page := domain.Pagination{Page: 1, PageSize: 100, Sort: "id"}

	for {
		movies, metadata, err := app.movieRepo.GetAll(ctx, page)
		if err != nil {
			return nil, err
		}

		all = append(all, movies...)

		if metadata == nil || page.Page >= metadata.LastPage {
			return all, nil
		}

		page.Page++
	}
}

// seedTheatre returns the first theatre, creating one when there is none.
func (app *Application) seedTheatre(ctx context.Context) (*domain.Theatre, error) {
	theatres, err := app.theatreRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list theatres: %w", err)
	}

	if len(theatres) > 0 {
		return &theatres[0], nil
	}

	theatre := domain.Theatre{Name: seedTheatreName}

	err = app.theatreRepo.Create(ctx, &theatre)
	if err != nil {
		return nil, fmt.Errorf("failed to seed theatre: %w", err)
	}

	return &theatre, nil
}
