package app

import (
	"errors"
	"net/http"

	"github.com/screenline/cinebook/api"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := app.currentUser(w, r)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetProfile reports how many bookings and tickets the user holds and what
// they cost at the configured ticket price.
func (app *Application) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := app.currentUser(w, r)
	if !ok {
		return
	}

	stats, err := app.bookingRepo.GetStatsByUserId(r.Context(), user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	price := app.config.Booking.TicketPrice

	resp := api.ProfileResponse{
		User:        toUserResponse(user),
		Bookings:    stats.Bookings,
		Tickets:     stats.Tickets,
		TicketPrice: price,
		AmountSpent: price.Mul(decimal.NewFromInt(int64(stats.Tickets))),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// currentUser loads the authenticated user and writes the error response itself
// when that fails.
func (app *Application) currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.contextGetLogger(r).Error("user id in session but not found in db", "user_id", userId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return user, true
}
