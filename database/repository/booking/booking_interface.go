package bookingRepo

import (
	"context"
	"errors"

	"geecurly/models"
)

// ErrSlotConflict is returned by CreateIfNoConflict when another active
// booking already occupies part of the requested interval.
var ErrSlotConflict = errors.New("slot already booked")

// BookingRepository persists appointments.
type BookingRepository interface {
	// CreateIfNoConflict inserts the booking unless an active booking for the
	// same staff member and date overlaps it. Returns ErrSlotConflict on
	// overlap.
	CreateIfNoConflict(ctx context.Context, booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	// ListByStaffDate returns bookings for one staff member on one date whose
	// status is in statuses.
	ListByStaffDate(staffID, date string, statuses []string) ([]models.Booking, error)
	// ListAll returns every booking, newest first.
	ListAll() ([]models.Booking, error)
	// UpdateFields applies the set fields of update and refreshes updated_at.
	UpdateFields(id string, update models.BookingUpdate) (*models.Booking, error)
}
