package app

import (
	"errors"
	"net/http"

	"github.com/cinegate/movie-booking-system/api"
	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/go-chi/chi/v5"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetMoviesParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toMovieFilters(params)

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   toMovieSummaries(movies),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieId := chi.URLParam(r, "movieId")

	movie, err := app.movieRepo.GetByID(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MovieDetailResponse{
		MovieSummary: toMovieSummary(movie),
		BackdropUrl:  movie.BackdropURL,
		TrailerKey:   movie.TrailerKey,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func parseGetMoviesParams(r *http.Request) (api.GetMoviesParams, error) {
	qs := r.URL.Query()

	var params api.GetMoviesParams
	var err error

	params.Page, err = queryInt(qs, "page")
	if err != nil {
		return params, err
	}

	params.PageSize, err = queryInt(qs, "pageSize")
	if err != nil {
		return params, err
	}

	params.Term = queryString(qs, "term")
	params.Sort = queryString(qs, "sort")

	return params, nil
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}
	if params.Term != nil {
		filters.Term = *params.Term
	}

	return filters
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = toMovieSummary(movie)
	}

	return summaries
}

func toMovieSummary(movie *domain.Movie) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	return api.MovieSummary{
		Id:          movie.ID,
		Title:       movie.Title,
		Overview:    movie.Overview,
		PosterUrl:   movie.PosterURL,
		ReleaseDate: movie.ReleaseDate,
		Rating:      movie.Rating,
		Status:      movie.Status,
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
