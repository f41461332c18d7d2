package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/screenline/cinebook/api"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/shopspring/decimal"
)

const ErrTheatreNameTaken = "A theatre with this name already exists"

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.MovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := app.toMovie(input)

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("movie created", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusCreated, toMovieSummary(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	var input api.MovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := app.toMovie(input)
	movie.ID = movieId

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case isNotFound(err):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieSummary(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteMovie removes a movie with its showtimes and their bookings.
func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	showtimes, err := app.showtimeRepo.GetByMovieId(r.Context(), movieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.movieRepo.Delete(r.Context(), movieId)
	if err != nil {
		switch {
		case isNotFound(err):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	for _, showtime := range showtimes {
		app.bookings.Forget(r.Context(), showtime.ID)
	}

	app.contextGetLogger(r).Info("movie deleted", "movie_id", movieId, "showtimes", len(showtimes))

	w.WriteHeader(http.StatusNoContent)
}

// toMovie builds a movie from a request. The configured poster for the title
// wins over the submitted url.
func (app *Application) toMovie(input api.MovieRequest) *domain.Movie {
	return &domain.Movie{
		Title:       input.Title,
		Director:    input.Director,
		ReleaseYear: input.ReleaseYear,
		Genre:       input.Genre,
		Rating:      decimal.NewFromFloat(input.Rating).Round(1),
		PosterUrl:   app.posters.Resolve(input.Title, input.PosterUrl),
	}
}

func (app *Application) GetTheatres(w http.ResponseWriter, r *http.Request) {
	theatres, err := app.theatreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheatreListResponse{
		Theatres: make([]api.TheatreResponse, len(theatres)),
	}

	for i := range theatres {
		resp.Theatres[i] = toTheatreResponse(&theatres[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheatreById(w http.ResponseWriter, r *http.Request, theatreId int) {
	theatre, err := app.theatreRepo.GetById(r.Context(), theatreId)
	if err != nil {
		switch {
		case isNotFound(err):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toTheatreResponse(theatre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheatre(w http.ResponseWriter, r *http.Request) {
	var input api.TheatreRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	theatre := domain.Theatre{
		Name:     input.Name,
		Location: input.Location,
	}

	err = app.theatreRepo.Create(r.Context(), &theatre)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTheatreAlreadyExists):
			app.conflictResponse(w, r, ErrTheatreNameTaken)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTheatreResponse(&theatre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteTheatre(w http.ResponseWriter, r *http.Request, theatreId int) {
	showtimeIds, err := app.showtimeRepo.GetIdsByTheatreId(r.Context(), theatreId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.theatreRepo.Delete(r.Context(), theatreId)
	if err != nil {
		switch {
		case isNotFound(err):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	for _, id := range showtimeIds {
		app.bookings.Forget(r.Context(), id)
	}

	app.contextGetLogger(r).Info("theatre deleted", "theatre_id", theatreId, "showtimes", len(showtimeIds))

	w.WriteHeader(http.StatusNoContent)
}

func toTheatreResponse(theatre *domain.Theatre) api.TheatreResponse {
	return api.TheatreResponse{
		Id:        theatre.ID,
		Name:      theatre.Name,
		Location:  theatre.Location,
		CreatedAt: theatre.CreatedAt,
	}
}

func (app *Application) GetShowtimesOfMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	_, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case isNotFound(err):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	showtimes, err := app.showtimeRepo.GetByMovieId(r.Context(), movieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		Showtimes: toShowtimeSummaries(showtimes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request, movieId int) {
	var input api.CreateShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime := domain.Showtime{
		MovieID:    movieId,
		TheatreID:  input.TheatreId,
		Screen:     input.Screen,
		StartsAt:   input.StartsAt.UTC().Truncate(time.Second),
		TotalSeats: domain.DefaultTotalSeats,
	}
	if input.TotalSeats != nil {
		showtime.TotalSeats = *input.TotalSeats
	}

	err = app.showtimeRepo.Create(r.Context(), &showtime)
	if err != nil {
		switch {
		case isNotFound(err):
			app.errorResponse(w, r, http.StatusNotFound, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("showtime created", "showtime_id", showtime.ID, "movie_id", movieId)

	err = app.writeJSON(w, http.StatusCreated, toShowtimeResponse(&showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdateShowtime reschedules a showtime or changes its capacity. Shrinking
// below a booked seat is refused.
func (app *Application) UpdateShowtime(w http.ResponseWriter, r *http.Request, showtimeId int) {
	var input api.UpdateShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime := domain.Showtime{
		ID:         showtimeId,
		TheatreID:  input.TheatreId,
		Screen:     input.Screen,
		StartsAt:   input.StartsAt.UTC().Truncate(time.Second),
		TotalSeats: input.TotalSeats,
	}

	err = app.bookings.UpdateShowtime(r.Context(), &showtime)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(&showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteShowtime removes a showtime together with its bookings.
func (app *Application) DeleteShowtime(w http.ResponseWriter, r *http.Request, showtimeId int) {
	err := app.showtimeRepo.Delete(r.Context(), showtimeId)
	if err != nil {
		switch {
		case isNotFound(err):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.bookings.Forget(r.Context(), showtimeId)

	w.WriteHeader(http.StatusNoContent)
}

func toShowtimeResponse(showtime *domain.Showtime) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:         showtime.ID,
		MovieId:    showtime.MovieID,
		TheatreId:  showtime.TheatreID,
		Screen:     showtime.Screen,
		StartsAt:   showtime.StartsAt,
		TotalSeats: showtime.TotalSeats,
	}
}

func (app *Application) GetAllBookings(w http.ResponseWriter, r *http.Request, params api.GetAllBookingsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	summaries, metadata, err := app.bookingRepo.GetAllSummaries(r.Context(), toPagination(params.Page, params.PageSize))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: toBookingSummaries(summaries, true),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
