package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinegate/movie-booking-system/api"
	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/cinegate/movie-booking-system/internal/reservation"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	userId := app.contextGetUserId(r)

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

	booking, err := app.reserver.Reserve(r.Context(), reservation.Request{
		UserID:     userId,
		MovieID:    input.MovieId,
		ShowtimeID: input.ShowtimeId,
		SeatLabels: input.SeatLabels,
	})
	if err != nil {
		var unknownSeats domain.UnknownSeatsError
		var seatsUnavailable domain.SeatsUnavailableError

		switch {
		case errors.Is(err, domain.ErrAuthenticationRequired):
			app.unauthorizedAccessResponse(w, r)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrShowtimeMismatch),
			errors.Is(err, domain.ErrEmptySeatSelection):
			app.badRequestResponse(w, r, err)
		case errors.As(err, &unknownSeats):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrDuplicateBooking):
			logger.Warn("duplicate booking attempt", "movie_id", input.MovieId)
			app.errorResponse(w, r, http.StatusConflict, ErrDuplicateBooking)
		case errors.As(err, &seatsUnavailable):
			logger.Info("seat conflict on booking attempt",
				"showtime_id", input.ShowtimeId,
				"seats", seatsUnavailable.SeatLabels,
			)
			app.seatConflictResponse(w, r, seatsUnavailable.SeatLabels)
		case errors.Is(err, domain.ErrTransactionFailed):
			app.logError(r, err)
			app.errorResponse(w, r, http.StatusInternalServerError, ErrBookingNotPersist)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	go app.sendBookingConfirmation(context.WithoutCancel(r.Context()), r, booking)

	resp := api.BookingResponse{
		Id:          booking.ID.String(),
		MovieId:     booking.MovieID,
		ShowtimeId:  booking.ShowtimeID,
		SeatLabels:  booking.SeatLabels,
		TotalAmount: booking.TotalAmount,
		CreatedAt:   booking.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) sendBookingConfirmation(ctx context.Context, r *http.Request, booking *domain.Booking) {
	logger := app.contextGetLogger(r.WithContext(ctx))

	defer func() {
		if err := recover(); err != nil {
			logger.Error("panic occurred during sending booking confirmation mail", "panic", err)
		}
	}()

	user, err := app.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Error("failed to load user for booking confirmation", "error", err)
		return
	}

	movie, err := app.movieRepo.GetByID(ctx, booking.MovieID)
	if err != nil {
		logger.Error("failed to load movie for booking confirmation", "error", err)
		return
	}

	data := map[string]any{
		"name":        user.Name,
		"movieTitle":  movie.Title,
		"bookingId":   booking.ID.String(),
		"seats":       booking.SeatLabels,
		"totalAmount": booking.TotalAmount,
	}

	err = app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
	if err != nil {
		logger.Error("failed to send booking confirmation email", "error", err)
	}
}

func (app *Application) GetBookingsOfUserHandler(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetBookingsParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)
	pagination := toPagination(params)

	bookings, metadata, err := app.bookingRepo.GetSummariesByUserID(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: toBookingSummaries(bookings),
	}
	if apiMetadata := toApiMetadata(metadata); apiMetadata != nil {
		resp.Metadata = *apiMetadata
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserBookingById(w http.ResponseWriter, r *http.Request) {
	bookingId, err := uuid.Parse(chi.URLParam(r, "bookingId"))
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid booking ID"))
		return
	}

	userId := app.contextGetUserId(r)

	detail, err := app.bookingRepo.GetByIDAndUserID(r.Context(), bookingId, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.BookingDetailResponse{
		BookingSummary:  toBookingSummary(detail.BookingSummary),
		TheatreLocation: detail.TheatreLocation,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func parseGetBookingsParams(r *http.Request) (api.GetBookingsOfUserParams, error) {
	qs := r.URL.Query()

	var params api.GetBookingsOfUserParams
	var err error

	params.Page, err = queryInt(qs, "page")
	if err != nil {
		return params, err
	}

	params.PageSize, err = queryInt(qs, "pageSize")
	if err != nil {
		return params, err
	}

	return params, nil
}

func toPagination(params api.GetBookingsOfUserParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}

func toBookingSummaries(bookings []domain.BookingSummary) []api.BookingSummary {
	summaries := make([]api.BookingSummary, len(bookings))

	for i, booking := range bookings {
		summaries[i] = toBookingSummary(booking)
	}

	return summaries
}

func toBookingSummary(booking domain.BookingSummary) api.BookingSummary {
	return api.BookingSummary{
		Id:          booking.ID.String(),
		MovieId:     booking.MovieID,
		MovieTitle:  booking.MovieTitle,
		PosterUrl:   booking.PosterURL,
		TheatreName: booking.TheatreName,
		ShowtimeId:  booking.ShowtimeID,
		StartsAt:    booking.StartsAt,
		SeatLabels:  booking.SeatLabels,
		TotalAmount: booking.TotalAmount,
		CreatedAt:   booking.CreatedAt,
	}
}
