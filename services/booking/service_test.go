package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "geecurly/database/repository/booking"
	"geecurly/models"
	"geecurly/services/availability"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// testDate is a Monday.
const testDate = "2026-09-07"

type fakeCatalog struct {
	services []models.Service
	staff    []models.StaffMember
}

func (f *fakeCatalog) GetServices() ([]models.Service, error) { return f.services, nil }

func (f *fakeCatalog) GetServiceByID(id string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			return &f.services[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) GetStaff() ([]models.StaffMember, error) { return f.staff, nil }

func (f *fakeCatalog) GetStaffByID(id string) (*models.StaffMember, error) {
	for i := range f.staff {
		if f.staff[i].ID == id {
			return &f.staff[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) GetStaffBySpecialty(category string) ([]models.StaffMember, error) {
	var out []models.StaffMember
	for _, member := range f.staff {
		if member.HasSpecialty(category) {
			out = append(out, member)
		}
	}
	return out, nil
}

func (f *fakeCatalog) EnsureSeedData() error { return nil }

type fakeBookings struct {
	bookings []models.Booking
}

func (f *fakeBookings) CreateIfNoConflict(ctx context.Context, booking *models.Booking) error {
	start, _ := availability.TimeToMinutes(booking.Time)
	end, _ := availability.TimeToMinutes(booking.EndTime)
	requested := models.Interval{Start: start, End: end}
	for _, other := range f.bookings {
		if other.StaffID != booking.StaffID || other.Date != booking.Date {
			continue
		}
		if other.Status != models.StatusPending && other.Status != models.StatusConfirmed {
			continue
		}
		os, _ := availability.TimeToMinutes(other.Time)
		oe, _ := availability.TimeToMinutes(other.EndTime)
		if requested.Overlaps(models.Interval{Start: os, End: oe}) {
			return bookingRepo.ErrSlotConflict
		}
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookings) GetByID(id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) ListByStaffDate(staffID, date string, statuses []string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.StaffID != staffID || b.Date != date {
			continue
		}
		for _, status := range statuses {
			if b.Status == status {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookings) ListAll() ([]models.Booking, error) {
	out := make([]models.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out, nil
}

func (f *fakeBookings) UpdateFields(id string, update models.BookingUpdate) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			if update.Status != nil {
				f.bookings[i].Status = *update.Status
			}
			if update.Notes != nil {
				f.bookings[i].Notes = *update.Notes
			}
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func newTestService() (*DefaultBookingService, *fakeBookings) {
	catalog := &fakeCatalog{
		services: []models.Service{
			{
				ID:              "svc-braids",
				Name:            "Box Braids",
				Category:        models.CategoryHairBraiding,
				Price:           models.PriceRange{Min: 3000, Max: 6000},
				DurationMinutes: 240,
				IsActive:        true,
			},
			{
				ID:              "svc-cut",
				Name:            "Basic Haircut & Styling",
				Category:        models.CategoryHairStyling,
				Price:           models.PriceRange{Min: 1500, Max: 2500},
				DurationMinutes: 90,
				IsActive:        true,
			},
		},
		staff: []models.StaffMember{
			{
				ID:          "staff-ann",
				Name:        "Ann",
				Role:        "Braiding Expert",
				Specialties: []string{models.CategoryHairBraiding},
				WorkingHours: models.WorkingHours{
					Start: "06:00",
					End:   "22:00",
					Days:  weekdays,
				},
				IsAvailable: true,
			},
		},
	}
	repo := &fakeBookings{}
	return NewDefaultBookingService(catalog, repo, nil, nil), repo
}

func validDraft() models.BookingDraft {
	return models.BookingDraft{
		CustomerName:  "Grace Mwangi",
		CustomerPhone: "0722123456",
		ServiceID:     "svc-braids",
		StaffID:       "staff-ann",
		Date:          testDate,
		Time:          "10:00",
	}
}

func TestCreateBookingRoundTrip(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.CreateBooking(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected a generated booking reference")
	}
	if created.ServiceName != "Box Braids" || created.StaffName != "Ann" {
		t.Errorf("denormalized fields not set: %+v", created)
	}
	if created.EndTime != "14:00" {
		t.Errorf("EndTime = %q, want 14:00 (10:00 + 240 mins)", created.EndTime)
	}
	if created.Status != models.StatusConfirmed {
		t.Errorf("Status = %q, want confirmed", created.Status)
	}
	if created.BookingMethod != models.MethodWebsite {
		t.Errorf("BookingMethod = %q, want website default", created.BookingMethod)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 persisted booking, got %d", len(repo.bookings))
	}
}

func TestCreateBookingMissingFields(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		mutate    func(*models.BookingDraft)
		wantField string
	}{
		{func(d *models.BookingDraft) { d.CustomerName = "" }, "customerName"},
		{func(d *models.BookingDraft) { d.CustomerPhone = "" }, "customerPhone"},
		{func(d *models.BookingDraft) { d.ServiceID = "" }, "serviceId"},
		{func(d *models.BookingDraft) { d.StaffID = "" }, "staffId"},
		{func(d *models.BookingDraft) { d.Date = "" }, "date"},
		{func(d *models.BookingDraft) { d.Time = "" }, "time"},
	}
	for _, tt := range tests {
		draft := validDraft()
		tt.mutate(&draft)
		_, err := svc.CreateBooking(context.Background(), draft)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("missing %s: expected ValidationError, got %v", tt.wantField, err)
			continue
		}
		if ve.Field != tt.wantField {
			t.Errorf("ValidationError.Field = %q, want %q", ve.Field, tt.wantField)
		}
	}
}

func TestCreateBookingUnknownServiceOrStaff(t *testing.T) {
	svc, _ := newTestService()
	var nfe *NotFoundError

	draft := validDraft()
	draft.ServiceID = "svc-missing"
	if _, err := svc.CreateBooking(context.Background(), draft); !errors.As(err, &nfe) {
		t.Errorf("unknown service: expected NotFoundError, got %v", err)
	}

	draft = validDraft()
	draft.StaffID = "staff-missing"
	if _, err := svc.CreateBooking(context.Background(), draft); !errors.As(err, &nfe) {
		t.Errorf("unknown staff: expected NotFoundError, got %v", err)
	}
}

func TestCreateBookingSpecialtyMismatch(t *testing.T) {
	svc, _ := newTestService()

	draft := validDraft()
	draft.ServiceID = "svc-cut" // Ann only braids
	_, err := svc.CreateBooking(context.Background(), draft)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.CreateBooking(context.Background(), validDraft()); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// 10:30 overlaps the 10:00-14:00 appointment.
	second := validDraft()
	second.CustomerName = "Janet"
	second.Time = "10:30"
	_, err := svc.CreateBooking(context.Background(), second)
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	// 14:00 starts exactly when the first booking ends: half-open intervals
	// do not overlap.
	third := validDraft()
	third.CustomerName = "Janet"
	third.Time = "14:00"
	if _, err := svc.CreateBooking(context.Background(), third); err != nil {
		t.Errorf("back-to-back booking should succeed, got %v", err)
	}
}

func TestCreateBookingOutsideWorkingHours(t *testing.T) {
	svc, _ := newTestService()
	var ve *ValidationError

	// Sunday is off for Ann.
	draft := validDraft()
	draft.Date = "2026-09-06"
	if _, err := svc.CreateBooking(context.Background(), draft); !errors.As(err, &ve) {
		t.Errorf("off day: expected ValidationError, got %v", err)
	}

	// A 240 minute service starting 20:00 runs past 22:00.
	draft = validDraft()
	draft.Time = "20:00"
	if _, err := svc.CreateBooking(context.Background(), draft); !errors.As(err, &ve) {
		t.Errorf("past closing: expected ValidationError, got %v", err)
	}
}

func TestCreateBookingAccepts12HourTime(t *testing.T) {
	svc, _ := newTestService()

	draft := validDraft()
	draft.Time = "10:00 AM"
	created, err := svc.CreateBooking(context.Background(), draft)
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if created.Time != "10:00" {
		t.Errorf("Time = %q, want canonical 10:00", created.Time)
	}
}

func TestGetAvailabilityExcludesBooked(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.CreateBooking(context.Background(), validDraft()); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	slots, err := svc.GetAvailability(context.Background(), "staff-ann", "svc-braids", testDate)
	if err != nil {
		t.Fatalf("GetAvailability returned error: %v", err)
	}
	for _, slot := range slots {
		switch slot {
		case "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM":
			t.Errorf("slot %s overlaps the existing 10:00-14:00 booking", slot)
		}
	}
}

func TestGetAvailabilityForDuration(t *testing.T) {
	svc, _ := newTestService()

	slots, err := svc.GetAvailabilityForDuration(context.Background(), "staff-ann", 60, testDate)
	if err != nil {
		t.Fatalf("GetAvailabilityForDuration returned error: %v", err)
	}
	want := []string{"6:00 AM", "7:00 AM", "8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM"}
	if len(slots) != len(want) {
		t.Fatalf("got %d slots %v, want %d", len(slots), slots, len(want))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %q, want %q", i, slots[i], want[i])
		}
	}

	var ve *ValidationError
	if _, err := svc.GetAvailabilityForDuration(context.Background(), "staff-ann", 0, testDate); !errors.As(err, &ve) {
		t.Errorf("zero duration: expected ValidationError, got %v", err)
	}
	var nfe *NotFoundError
	if _, err := svc.GetAvailabilityForDuration(context.Background(), "staff-missing", 60, testDate); !errors.As(err, &nfe) {
		t.Errorf("unknown staff: expected NotFoundError, got %v", err)
	}
}

func TestUpdateBookingTerminalGuard(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateBooking(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	cancelled := models.StatusCancelled
	if _, err := svc.UpdateBooking(context.Background(), created.ID, models.BookingUpdate{Status: &cancelled}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	confirmed := models.StatusConfirmed
	_, err = svc.UpdateBooking(context.Background(), created.ID, models.BookingUpdate{Status: &confirmed})
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Errorf("reviving a cancelled booking: expected ConflictError, got %v", err)
	}
}

func TestUpdateBookingValidation(t *testing.T) {
	svc, _ := newTestService()
	var ve *ValidationError
	var nfe *NotFoundError

	if _, err := svc.UpdateBooking(context.Background(), "GC123", models.BookingUpdate{}); !errors.As(err, &ve) {
		t.Errorf("empty update: expected ValidationError, got %v", err)
	}

	bogus := "archived"
	if _, err := svc.UpdateBooking(context.Background(), "GC123", models.BookingUpdate{Status: &bogus}); !errors.As(err, &ve) {
		t.Errorf("unknown status: expected ValidationError, got %v", err)
	}

	confirmed := models.StatusConfirmed
	if _, err := svc.UpdateBooking(context.Background(), "GC404", models.BookingUpdate{Status: &confirmed}); !errors.As(err, &nfe) {
		t.Errorf("unknown id: expected NotFoundError, got %v", err)
	}
}
