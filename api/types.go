// Package api holds the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GetMoviesParams struct {
	Page     *int    `validate:"omitempty,min=1"`
	PageSize *int    `validate:"omitempty,min=1,max=100"`
	Term     *string `validate:"omitempty,max=100"`
	Sort     *string `validate:"omitempty,oneof=id title release_date rating -id -title -release_date -rating"`
}

type MovieSummary struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	PosterUrl   string    `json:"posterUrl"`
	ReleaseDate time.Time `json:"releaseDate"`
	Rating      float64   `json:"rating"`
	Status      string    `json:"status"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type MovieDetailResponse struct {
	MovieSummary
	BackdropUrl string `json:"backdropUrl"`
	TrailerKey  string `json:"trailerKey"`
}

type Theatre struct {
	Id            string          `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	Amenities     []string        `json:"amenities"`
	Capacity      int             `json:"capacity"`
	StandardPrice decimal.Decimal `json:"standardPrice"`
	VipPrice      decimal.Decimal `json:"vipPrice"`
	ContactInfo   string          `json:"contactInfo"`
	ImageUrl      string          `json:"imageUrl"`
	Rating        float64         `json:"rating"`
	TotalScreens  int             `json:"totalScreens"`
}

type TheatreListResponse struct {
	Theatres []Theatre `json:"theatres"`
}

type Showtime struct {
	Id        string           `json:"id"`
	MovieId   string           `json:"movieId"`
	TheatreId string           `json:"theatreId"`
	StartsAt  time.Time        `json:"startsAt"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

type ShowtimeListResponse struct {
	Showtimes []Showtime `json:"showtimes"`
}

type Seat struct {
	Label     string          `json:"label"`
	Row       string          `json:"row"`
	Column    int             `json:"column"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ShowtimeId  string    `json:"showtimeId"`
	MovieTitle  string    `json:"movieTitle"`
	TheatreName string    `json:"theatreName"`
	SeatRows    []SeatRow `json:"seatRows"`
}

type CreateBookingRequest struct {
	MovieId    string   `json:"movieId" validate:"required"`
	ShowtimeId string   `json:"showtimeId" validate:"required"`
	SeatLabels []string `json:"seatLabels" validate:"required,min=1,unique,dive,seat_label"`
}

type BookingResponse struct {
	Id          string          `json:"id"`
	MovieId     string          `json:"movieId"`
	ShowtimeId  string          `json:"showtimeId"`
	SeatLabels  []string        `json:"seatLabels"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type SeatConflictResponse struct {
	Message          string    `json:"message"`
	UnavailableSeats []string  `json:"unavailableSeats"`
	RequestId        string    `json:"requestId,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

type BookingSummary struct {
	Id          string          `json:"id"`
	MovieId     string          `json:"movieId"`
	MovieTitle  string          `json:"movieTitle"`
	PosterUrl   string          `json:"posterUrl"`
	TheatreName string          `json:"theatreName"`
	ShowtimeId  string          `json:"showtimeId"`
	StartsAt    time.Time       `json:"startsAt"`
	SeatLabels  []string        `json:"seatLabels"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type GetBookingsOfUserParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}

type UserBookingsResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata Metadata         `json:"metadata"`
}

type BookingDetailResponse struct {
	BookingSummary
	TheatreLocation string `json:"theatreLocation"`
}
