package app

import (
	"errors"
	"net/http"

	"github.com/cinegate/movie-booking-system/api"
	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func (app *Application) GetSeatMapByShowtime(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	showtimeId := chi.URLParam(r, "showtimeId")

	seatMap, err := app.seatRepo.GetSeatsByShowtime(r.Context(), showtimeId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("seat map not found for showtime", "showtime_id", showtimeId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toSeatMapResponse(seatMap)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(seatMap *domain.ShowtimeSeatMap) api.SeatMapResponse {
	return api.SeatMapResponse{
		ShowtimeId:  seatMap.ShowtimeID,
		MovieTitle:  seatMap.MovieTitle,
		TheatreName: seatMap.TheatreName,
		SeatRows:    toSeatRows(seatMap.Seats, seatMap.Price),
	}
}

func toSeatRows(seats []domain.Seat, showtimePrice *decimal.Decimal) []api.SeatRow {
	// Seats arrive sorted by row then column, so rows can be built in one pass.
	var seatRows []api.SeatRow
	currentRow := api.SeatRow{Row: seats[0].Row}

	for _, v := range seats {
		if v.Row != currentRow.Row {
			seatRows = append(seatRows, currentRow)
			currentRow = api.SeatRow{Row: v.Row}
		}

		currentRow.Seats = append(currentRow.Seats, api.Seat{
			Label:     v.Label,
			Row:       v.Row,
			Column:    v.Col,
			Category:  string(v.Category),
			Price:     domain.SeatPrice(v.Category, showtimePrice),
			Available: v.Available(),
		})
	}

	seatRows = append(seatRows, currentRow)

	return seatRows
}
