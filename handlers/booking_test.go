package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/models"
)

// stubBookingService serves canned bookings.
type stubBookingService struct {
	bookings []models.FinalizedBooking
}

func (s *stubBookingService) CreateBooking(b models.FinalizedBooking) {
	s.bookings = append(s.bookings, b)
}

func (s *stubBookingService) ListBookings(ctx context.Context, limit int64) ([]models.FinalizedBooking, error) {
	out := s.bookings
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubBookingService) GetBooking(ctx context.Context, id string) (*models.FinalizedBooking, error) {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return &s.bookings[i], nil
		}
	}
	return nil, errors.New("booking not found")
}

func (s *stubBookingService) CancelBooking(ctx context.Context, id string) error {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New("booking not found")
}

func (s *stubBookingService) BookingsForDate(ctx context.Context, date string) ([]models.FinalizedBooking, error) {
	var out []models.FinalizedBooking
	for _, b := range s.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func newBookingRouter(t *testing.T) (*gin.Engine, *stubBookingService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &stubBookingService{bookings: []models.FinalizedBooking{
		{ID: "b1", CustomerName: "Johnson", Date: "2025-03-12"},
		{ID: "b2", CustomerName: "Smith", Date: "2025-03-13"},
	}}
	h := NewBookingHandler(svc)

	r := gin.New()
	r.GET("/api/bookings", h.ListBookingsHandler)
	r.GET("/api/bookings/:id", h.GetBookingHandler)
	r.DELETE("/api/bookings/:id", h.CancelBookingHandler)
	return r, svc
}

func getPath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListBookingsHandler(t *testing.T) {
	r, _ := newBookingRouter(t)

	w := getPath(t, r, "/api/bookings")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bookings []models.FinalizedBooking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 2)
}

func TestListBookingsHandlerFiltersByDate(t *testing.T) {
	r, _ := newBookingRouter(t)

	w := getPath(t, r, "/api/bookings?date=2025-03-12")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bookings []models.FinalizedBooking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b1", resp.Bookings[0].ID)
}

func TestListBookingsHandlerRejectsBadLimit(t *testing.T) {
	r, _ := newBookingRouter(t)
	w := getPath(t, r, "/api/bookings?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingHandler(t *testing.T) {
	r, _ := newBookingRouter(t)

	w := getPath(t, r, "/api/bookings/b2")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.FinalizedBooking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Smith", got.CustomerName)

	w = getPath(t, r, "/api/bookings/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelBookingHandler(t *testing.T) {
	r, svc := newBookingRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/b1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp["status"])
	assert.Len(t, svc.bookings, 1)

	req = httptest.NewRequest(http.MethodDelete, "/api/bookings/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
