package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"geecurly/models"
	"geecurly/services/booking"

	"github.com/gin-gonic/gin"
)

// stubBookingSvc records how the availability endpoint calls the service.
type stubBookingSvc struct {
	slots       []string
	staffID     string
	serviceID   string
	durationMin int
	date        string
}

func (s *stubBookingSvc) GetAvailability(ctx context.Context, staffID, serviceID, date string) ([]string, error) {
	s.staffID, s.serviceID, s.date = staffID, serviceID, date
	return s.slots, nil
}

func (s *stubBookingSvc) GetAvailabilityForDuration(ctx context.Context, staffID string, durationMinutes int, date string) ([]string, error) {
	s.staffID, s.durationMin, s.date = staffID, durationMinutes, date
	return s.slots, nil
}

func (s *stubBookingSvc) CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	return nil, booking.NewValidationError("draft", "not used")
}

func (s *stubBookingSvc) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return nil, booking.NewNotFoundError("not used")
}

func (s *stubBookingSvc) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingSvc) UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	return nil, booking.NewNotFoundError("not used")
}

func availabilityRouter(stub *stubBookingSvc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	BookingSvc = stub
	router := gin.New()
	router.GET("/api/availability", GetAvailability)
	return router
}

func TestGetAvailabilityDurationQuery(t *testing.T) {
	stub := &stubBookingSvc{slots: []string{"6:00 AM", "7:00 AM"}}
	router := availabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-07&staff_id=staff-ann&duration_minutes=60", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if stub.staffID != "staff-ann" || stub.durationMin != 60 || stub.date != "2026-09-07" {
		t.Errorf("service called with staff=%q duration=%d date=%q", stub.staffID, stub.durationMin, stub.date)
	}

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Date  string   `json:"date"`
			Slots []string `json:"slots"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !envelope.Success || len(envelope.Data.Slots) != 2 || envelope.Data.Date != "2026-09-07" {
		t.Errorf("unexpected envelope: %s", w.Body.String())
	}
}

func TestGetAvailabilityServiceIDQuery(t *testing.T) {
	stub := &stubBookingSvc{slots: []string{"6:00 AM"}}
	router := availabilityRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-07&staffId=staff-ann&serviceId=svc-braids", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if stub.staffID != "staff-ann" || stub.serviceID != "svc-braids" {
		t.Errorf("service called with staff=%q service=%q", stub.staffID, stub.serviceID)
	}
}

func TestGetAvailabilityRejectsIncompleteQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing staff", "/api/availability?date=2026-09-07&duration_minutes=60"},
		{"missing date", "/api/availability?staff_id=staff-ann&duration_minutes=60"},
		{"no duration or service", "/api/availability?date=2026-09-07&staff_id=staff-ann"},
		{"non-numeric duration", "/api/availability?date=2026-09-07&staff_id=staff-ann&duration_minutes=soon"},
		{"zero duration", "/api/availability?date=2026-09-07&staff_id=staff-ann&duration_minutes=0"},
	}
	for _, tt := range tests {
		stub := &stubBookingSvc{}
		router := availabilityRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, tt.query, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.name, w.Code)
		}
	}
}
