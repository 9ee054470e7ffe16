package integration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cinegate/movie-booking-system/api"
	"github.com/cinegate/movie-booking-system/internal/reservation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SeatMapSuite struct {
	BaseSuite
}

func TestSeatMapSuite(t *testing.T) {
	suite.Run(t, new(SeatMapSuite))
}

func (s *SeatMapSuite) SetupTest() {
	s.resetBookings()
}

func (s *SeatMapSuite) getSeatMap(showtimeID string) api.SeatMapResponse {
	resp, err := http.Get(s.server.URL + "/showtimes/" + showtimeID + "/seat-map")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var seatMap api.SeatMapResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&seatMap))

	return seatMap
}

func (s *SeatMapSuite) TestSeatMapLayout() {
	seatMap := s.getSeatMap("show_1")

	s.Equal("show_1", seatMap.ShowtimeId)
	s.Equal("Arrival", seatMap.MovieTitle)
	s.Equal("CineGate Downtown", seatMap.TheatreName)

	s.Require().Len(seatMap.SeatRows, 4)

	for i, row := range seatMap.SeatRows {
		s.Equal(string(rune('A'+i)), row.Row)
		s.Require().Len(row.Seats, 8)

		for j, seat := range row.Seats {
			s.Equal(j+1, seat.Column)
			s.Equal(row.Row, seat.Row)
			s.True(seat.Available)

			if row.Row == "A" {
				s.Equal("vip", seat.Category)
				s.True(decimal.NewFromInt(25).Equal(seat.Price), "vip seat %s priced %s", seat.Label, seat.Price)
			} else {
				s.Equal("standard", seat.Category)
				s.True(decimal.NewFromInt(12).Equal(seat.Price), "standard seat %s priced %s", seat.Label, seat.Price)
			}
		}
	}
}

func (s *SeatMapSuite) TestSeatMapUsesShowtimePrice() {
	seatMap := s.getSeatMap("show_2")

	for _, row := range seatMap.SeatRows {
		for _, seat := range row.Seats {
			s.True(decimal.NewFromInt(18).Equal(seat.Price), "seat %s priced %s", seat.Label, seat.Price)
		}
	}
}

func (s *SeatMapSuite) TestSeatMapReflectsBookings() {
	user := s.createTestUser("seatmap-viewer@example.com")

	_, err := s.app.Coordinator.Reserve(context.Background(), reservation.Request{
		UserID:     user.ID,
		MovieID:    "movie_3",
		ShowtimeID: "show_1",
		SeatLabels: []string{"A1", "B3"},
	})
	s.Require().NoError(err)

	seatMap := s.getSeatMap("show_1")

	unavailable := make([]string, 0)
	for _, row := range seatMap.SeatRows {
		for _, seat := range row.Seats {
			if !seat.Available {
				unavailable = append(unavailable, seat.Label)
			}
		}
	}

	s.Equal([]string{"A1", "B3"}, unavailable)
}

func (s *SeatMapSuite) TestSeatMapUnknownShowtime() {
	resp, err := http.Get(s.server.URL + "/showtimes/show_404/seat-map")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}
