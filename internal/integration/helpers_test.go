package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/cinegate/movie-booking-system/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func (s *BaseSuite) seedCatalog() {
	script, err := os.ReadFile("testdata/catalog.sql")
	s.Require().NoError(err)

	_, err = s.app.DB.Exec(context.Background(), string(script))
	s.Require().NoError(err)
}

// resetBookings returns every seat to available and wipes bookings, so each
// test starts from a clean seat map.
func (s *BaseSuite) resetBookings() {
	ctx := context.Background()

	_, err := s.app.DB.Exec(ctx, `UPDATE seats SET status = 'available', booked_by = NULL, booking_id = NULL`)
	s.Require().NoError(err)

	_, err = s.app.DB.Exec(ctx, `DELETE FROM booking_seats`)
	s.Require().NoError(err)

	_, err = s.app.DB.Exec(ctx, `DELETE FROM bookings`)
	s.Require().NoError(err)
}

func (s *BaseSuite) createTestUser(email string) *domain.User {
	user := &domain.User{
		Name:  "Test User",
		Email: email,
	}

	err := user.Password.Set("s3cretpass")
	s.Require().NoError(err)

	err = s.app.DB.QueryRow(
		context.Background(),
		`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`,
		user.Name, user.Email, user.Password.Hash,
	).Scan(&user.ID, &user.CreatedAt)
	s.Require().NoError(err)

	return user
}

func (s *BaseSuite) bookedSeatCount(showtimeID string) int {
	var count int
	err := s.app.DB.QueryRow(
		context.Background(),
		`SELECT count(*) FROM seats WHERE showtime_id = $1 AND status = 'booked'`,
		showtimeID,
	).Scan(&count)
	s.Require().NoError(err)

	return count
}

func (s *BaseSuite) bookingCount() int {
	var count int
	err := s.app.DB.QueryRow(context.Background(), `SELECT count(*) FROM bookings`).Scan(&count)
	s.Require().NoError(err)

	return count
}

func (s *BaseSuite) login(email string) []*http.Cookie {
	body := fmt.Sprintf(`{"email": %q, "password": "s3cretpass"}`, email)

	resp, err := http.Post(s.server.URL+"/sessions", "application/json", strings.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	return resp.Cookies()
}
