package app

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/screenline/cinebook/api"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/screenline/cinebook/internal/ticket"
	"github.com/shopspring/decimal"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request, showtimeId int) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

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

	userId := app.contextGetUserId(r)

	booking, err := app.bookings.Reserve(r.Context(), showtimeId, userId, input.Seats)
	if err != nil {
		logger.Warn("reservation refused", "showtime_id", showtimeId, "seats", input.Seats, "error", err)
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.metrics.reserved(r.Context(), showtimeId, len(booking.Seats))

	app.sendBookingConfirmation(r, *booking)

	resp := api.BookingResponse{
		Id:         booking.ID,
		Reference:  booking.Reference,
		ShowtimeId: booking.ShowtimeID,
		Seats:      booking.Seats,
		TotalPrice: app.ticketsPrice(len(booking.Seats)),
		CreatedAt:  booking.CreatedAt,
	}

	headers := make(http.Header)
	headers.Set("Location", "/users/me/bookings/"+strconv.Itoa(booking.ID)+"/ticket")

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendBookingConfirmation mails the booking to its owner in the background when
// the owner registered an email address.
func (app *Application) sendBookingConfirmation(r *http.Request, booking domain.Booking) {
	// the request context is cancelled once the response is written
	ctx := context.WithoutCancel(r.Context())
	logger := app.contextGetLogger(r).With("booking_id", booking.ID)

	app.background(logger, func() {
		user, err := app.userRepo.GetById(ctx, booking.UserID)
		if err != nil {
			logger.Error("failed to load user for booking confirmation", "error", err)
			return
		}

		if user.Email == nil || *user.Email == "" {
			return
		}

		data := map[string]any{
			"username":   user.Username,
			"reference":  booking.Reference.String(),
			"showtimeID": booking.ShowtimeID,
			"seats":      booking.Seats,
			"totalPrice": app.ticketsPrice(len(booking.Seats)).StringFixed(2),
		}

		showtime, err := app.showtimeRepo.GetById(ctx, booking.ShowtimeID)
		if err == nil {
			data["startsAt"] = showtime.StartsAt

			movie, err := app.movieRepo.GetById(ctx, showtime.MovieID)
			if err == nil {
				data["movieTitle"] = movie.Title
			}
		}

		err = app.mailer.Send(*user.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			logger.Error("failed to send booking confirmation", "error", err)
			return
		}

		logger.Info("booking confirmation sent")
	})
}

func (app *Application) ticketsPrice(tickets int) decimal.Decimal {
	return app.config.Booking.TicketPrice.Mul(decimal.NewFromInt(int64(tickets)))
}

func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request, showtimeId int) {
	seatMap, err := app.bookings.SeatMap(r.Context(), showtimeId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	free := seatMap.Free()
	booked := seatMap.Booked
	if booked == nil {
		booked = []int{}
	}

	resp := api.SeatMapResponse{
		ShowtimeId:     seatMap.ShowtimeID,
		TotalSeats:     seatMap.TotalSeats,
		BookedSeats:    booked,
		FreeSeats:      free,
		AvailableSeats: len(free),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserBookings(w http.ResponseWriter, r *http.Request, params api.GetUserBookingsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	filters := domain.BookingFilters{
		Pagination: toPagination(params.Page, params.PageSize),
	}
	if params.Month != nil {
		filters.Month = *params.Month
	}

	summaries, metadata, err := app.bookingRepo.GetSummariesByUserId(r.Context(), userId, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	months, err := app.bookingRepo.GetBookingMonthsByUserId(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if months == nil {
		months = []string{}
	}

	resp := api.UserBookingsResponse{
		Bookings: toBookingSummaries(summaries, false),
		Months:   months,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request, bookingId int) {
	err := app.bookings.Cancel(r.Context(), bookingId, app.contextGetUserId(r))
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.metrics.released(r.Context(), 1)

	w.WriteHeader(http.StatusNoContent)
}

// CancelPastBookings removes the given bookings of the user whose showtime has
// already started. Other ids are ignored.
func (app *Application) CancelPastBookings(w http.ResponseWriter, r *http.Request) {
	var input api.CancelPastBookingsRequest

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

	deleted, err := app.bookings.CancelPast(r.Context(), app.contextGetUserId(r), input.BookingIds)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	app.metrics.released(r.Context(), deleted)

	err = app.writeJSON(w, http.StatusOK, api.CancelPastBookingsResponse{Deleted: deleted}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetBookingTicket returns a PNG QR code identifying the booking.
func (app *Application) GetBookingTicket(w http.ResponseWriter, r *http.Request, bookingId int) {
	booking, err := app.ledger.FindBooking(r.Context(), bookingId)
	if err != nil {
		app.bookingErrorResponse(w, r, err)
		return
	}

	if booking.UserID != app.contextGetUserId(r) {
		app.forbiddenResponse(w, r)
		return
	}

	png, err := ticket.QRCode(booking, ticket.DefaultSize)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func toPagination(page, pageSize *int) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if page != nil {
		pagination.Page = *page
	}
	if pageSize != nil {
		pagination.PageSize = *pageSize
	}

	return pagination
}

func toBookingSummaries(summaries []domain.BookingSummary, withUsername bool) []api.BookingSummary {
	result := make([]api.BookingSummary, len(summaries))

	for i, s := range summaries {
		result[i] = api.BookingSummary{
			Id:             s.BookingID,
			Reference:      s.Reference,
			MovieTitle:     s.MovieTitle,
			MoviePosterUrl: s.MoviePosterUrl,
			TheatreName:    s.TheatreName,
			Screen:         s.Screen,
			ShowtimeStart:  s.ShowtimeStart,
			Seats:          s.Seats,
			CreatedAt:      s.CreatedAt,
		}

		if withUsername {
			result[i].Username = s.Username
		}
	}

	return result
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrRecordNotFound)
}
