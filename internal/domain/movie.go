package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID          int
	Title       string
	Director    string
	ReleaseYear int
	Genre       string
	Rating      decimal.Decimal
	PosterUrl   string
	CreatedAt   time.Time
}

type MovieDetail struct {
	Movie
	Showtimes []ShowtimeListing
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters Pagination) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}

// PosterCatalog maps a normalised movie title to the poster that must be used for it.
type PosterCatalog map[string]string

func NewPosterCatalog(entries map[string]string) PosterCatalog {
	catalog := make(PosterCatalog, len(entries))
	for title, url := range entries {
		catalog[posterKey(title)] = url
	}

	return catalog
}

// Resolve returns the configured poster for title, falling back to the submitted url.
func (c PosterCatalog) Resolve(title, posterUrl string) string {
	if url, ok := c[posterKey(title)]; ok {
		return url
	}

	return posterUrl
}

func posterKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
