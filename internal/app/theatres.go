package app

import (
	"net/http"

	"github.com/cinegate/movie-booking-system/api"
	"github.com/cinegate/movie-booking-system/internal/domain"
)

func (app *Application) GetTheatres(w http.ResponseWriter, r *http.Request) {
	theatres, err := app.theatreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheatreListResponse{
		Theatres: toApiTheatres(theatres),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiTheatres(theatres []*domain.Theatre) []api.Theatre {
	apiTheatres := make([]api.Theatre, len(theatres))

	for i, theatre := range theatres {
		apiTheatres[i] = api.Theatre{
			Id:            theatre.ID,
			Name:          theatre.Name,
			Location:      theatre.Location,
			Amenities:     theatre.Amenities,
			Capacity:      theatre.Capacity,
			StandardPrice: theatre.StandardPrice,
			VipPrice:      theatre.VIPPrice,
			ContactInfo:   theatre.ContactInfo,
			ImageUrl:      theatre.ImageURL,
			Rating:        theatre.Rating,
			TotalScreens:  theatre.TotalScreens,
		}
	}

	return apiTheatres
}
