package app

import (
	"errors"
	"net/http"

	"github.com/cinegate/movie-booking-system/api"
	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *Application) GetShowtimesByMovie(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	// Ensure the movie exists so an unknown id is a 404 rather than an
	// empty list.
	_, err := app.movieRepo.GetByID(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	showtimes, err := app.showtimeRepo.GetByMovieID(r.Context(), movieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		Showtimes: toApiShowtimes(showtimes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShowtimes(showtimes []*domain.Showtime) []api.Showtime {
	apiShowtimes := make([]api.Showtime, len(showtimes))

	for i, showtime := range showtimes {
		apiShowtimes[i] = api.Showtime{
			Id:        showtime.ID,
			MovieId:   showtime.MovieID,
			TheatreId: showtime.TheatreID,
			StartsAt:  showtime.StartsAt,
			Price:     showtime.Price,
		}
	}

	return apiShowtimes
}
