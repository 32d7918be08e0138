package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "geecurly/database/repository/booking"
	"geecurly/models"
	"geecurly/services/availability"
	"geecurly/services/tasks"
	"geecurly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = 2 * time.Hour

// GetAvailability computes the open slots for one staff member performing one
// service on one date. Pending and confirmed bookings block their intervals.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, staffID, serviceID, date string) ([]string, error) {
	svc, err := s.Catalog.GetServiceByID(serviceID)
	if err != nil {
		return nil, NewTransientError(fmt.Sprintf("failed to load service: %v", err))
	}
	if svc == nil {
		return nil, NewNotFoundError(fmt.Sprintf("service %s not found", serviceID))
	}
	return s.GetAvailabilityForDuration(ctx, staffID, svc.DurationMinutes, date)
}

// GetAvailabilityForDuration computes the open slots for an explicit
// appointment length, skipping the service lookup.
func (s *DefaultBookingService) GetAvailabilityForDuration(ctx context.Context, staffID string, durationMinutes int, date string) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, NewValidationError("duration_minutes", "must be positive")
	}
	staff, err := s.Catalog.GetStaffByID(staffID)
	if err != nil {
		return nil, NewTransientError(fmt.Sprintf("failed to load staff: %v", err))
	}
	if staff == nil {
		return nil, NewNotFoundError(fmt.Sprintf("staff member %s not found", staffID))
	}

	existing, err := s.activeIntervals(staffID, date)
	if err != nil {
		return nil, err
	}
	slots, err := availability.ComputeSlots(staff.WorkingHours, existing, durationMinutes, date)
	if err != nil {
		var ve *availability.ValidationError
		if errors.As(err, &ve) {
			return nil, NewValidationError(ve.Field, ve.Message)
		}
		return nil, NewTransientError(err.Error())
	}
	return slots, nil
}

// activeIntervals loads the booked intervals that block new appointments for
// the staff member on the given date.
func (s *DefaultBookingService) activeIntervals(staffID, date string) ([]models.Interval, error) {
	booked, err := s.Bookings.ListByStaffDate(staffID, date, []string{models.StatusPending, models.StatusConfirmed})
	if err != nil {
		return nil, NewTransientError(fmt.Sprintf("failed to load bookings: %v", err))
	}
	intervals := make([]models.Interval, 0, len(booked))
	for _, b := range booked {
		start, err := availability.TimeToMinutes(b.Time)
		if err != nil {
			continue
		}
		end, err := availability.TimeToMinutes(b.EndTime)
		if err != nil {
			continue
		}
		intervals = append(intervals, models.Interval{Start: start, End: end})
	}
	return intervals, nil
}

// newBookingRef mints a short human-quotable booking reference.
func newBookingRef() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "GC" + strings.ToUpper(raw[:8])
}

// CreateBooking validates the draft, re-checks the slot, and persists the
// appointment. The confirmation notification and reminder are dispatched
// asynchronously; their failures never fail the booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	required := []struct {
		field string
		value string
	}{
		{"customerName", draft.CustomerName},
		{"customerPhone", draft.CustomerPhone},
		{"serviceId", draft.ServiceID},
		{"staffId", draft.StaffID},
		{"date", draft.Date},
		{"time", draft.Time},
	}
	for _, req := range required {
		if strings.TrimSpace(req.value) == "" {
			return nil, NewValidationError(req.field, "is required")
		}
	}

	day, err := time.Parse("2006-01-02", draft.Date)
	if err != nil {
		return nil, NewValidationError("date", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", draft.Date))
	}
	startMin, err := availability.ParseClock(draft.Time)
	if err != nil {
		return nil, NewValidationError("time", fmt.Sprintf("cannot parse %q", draft.Time))
	}

	svc, err := s.Catalog.GetServiceByID(draft.ServiceID)
	if err != nil {
		return nil, NewTransientError(fmt.Sprintf("failed to load service: %v", err))
	}
	if svc == nil {
		return nil, NewNotFoundError(fmt.Sprintf("service %s not found", draft.ServiceID))
	}
	staff, err := s.Catalog.GetStaffByID(draft.StaffID)
	if err != nil {
		return nil, NewTransientError(fmt.Sprintf("failed to load staff: %v", err))
	}
	if staff == nil {
		return nil, NewNotFoundError(fmt.Sprintf("staff member %s not found", draft.StaffID))
	}
	if !staff.HasSpecialty(svc.Category) {
		return nil, NewValidationError("staffId", fmt.Sprintf("%s does not offer %s", staff.Name, svc.Category))
	}

	if !staff.WorkingHours.WorksOn(day.Weekday().String()) {
		return nil, NewValidationError("date", fmt.Sprintf("%s does not work on %ss", staff.Name, day.Weekday()))
	}
	workStart, err := availability.TimeToMinutes(staff.WorkingHours.Start)
	if err != nil {
		return nil, NewValidationError("workingHours", err.Error())
	}
	workEnd, err := availability.TimeToMinutes(staff.WorkingHours.End)
	if err != nil {
		return nil, NewValidationError("workingHours", err.Error())
	}
	endMin := startMin + svc.DurationMinutes
	if startMin < workStart || endMin > workEnd {
		return nil, NewValidationError("time", "requested time is outside working hours")
	}

	method := draft.BookingMethod
	if method == "" {
		method = models.MethodWebsite
	}
	price := draft.Price
	if price == 0 {
		price = svc.Price.Min
	}
	now := time.Now().UTC()
	booking := &models.Booking{
		ID:              newBookingRef(),
		CustomerName:    strings.TrimSpace(draft.CustomerName),
		CustomerPhone:   strings.TrimSpace(draft.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(draft.CustomerEmail),
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		ServiceCategory: svc.Category,
		Price:           price,
		StaffID:         staff.ID,
		StaffName:       staff.Name,
		Date:            draft.Date,
		Time:            availability.MinutesToClock(startMin),
		EndTime:         availability.MinutesToClock(endMin),
		DurationMinutes: svc.DurationMinutes,
		Status:          models.StatusConfirmed,
		BookingMethod:   method,
		Notes:           strings.TrimSpace(draft.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Bookings.CreateIfNoConflict(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotConflict) {
			return nil, NewConflictError("slot is no longer available")
		}
		return nil, NewTransientError(fmt.Sprintf("failed to save booking: %v", err))
	}

	if s.NotificationSvc != nil {
		go func(b models.Booking) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.NotificationSvc.SendBookingConfirmation(notifyCtx, &b); err != nil {
				utils.GetLogger().Error("failed to send booking confirmation",
					zap.Error(err), zap.String("bookingId", b.ID))
			}
		}(*booking)
	}
	s.scheduleReminder(booking, day, startMin)

	return booking, nil
}

// scheduleReminder enqueues the appointment reminder, skipping appointments
// too near to warrant one.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking, day time.Time, startMin int) {
	if s.AsynqClient == nil {
		return
	}
	appointment := day.Add(time.Duration(startMin) * time.Minute)
	fireAt := appointment.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		ServiceName:   b.ServiceName,
		StaffName:     b.StaffName,
		Date:          b.Date,
		Time:          b.Time,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Error("failed to build reminder task",
			zap.Error(err), zap.String("bookingId", b.ID))
		return
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("failed to enqueue reminder task",
			zap.Error(err), zap.String("bookingId", b.ID))
	}
}

// GetBooking returns one booking by its reference.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, NewTransientError(fmt.Sprintf("failed to load booking: %v", err))
	}
	if b == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	return b, nil
}

// ListBookings returns every booking, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListAll()
	if err != nil {
		return nil, NewTransientError(fmt.Sprintf("failed to list bookings: %v", err))
	}
	return bookings, nil
}

var validStatuses = map[string]bool{
	models.StatusPending:   true,
	models.StatusConfirmed: true,
	models.StatusCompleted: true,
	models.StatusCancelled: true,
}

// UpdateBooking applies a status or notes change. Completed and cancelled
// bookings are frozen.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error) {
	if update.Status == nil && update.Notes == nil {
		return nil, NewValidationError("update", "no fields to update")
	}
	if update.Status != nil && !validStatuses[*update.Status] {
		return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", *update.Status))
	}

	existing, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, NewTransientError(fmt.Sprintf("failed to load booking: %v", err))
	}
	if existing == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	if update.Status != nil && existing.Terminal() && *update.Status != existing.Status {
		return nil, NewConflictError(fmt.Sprintf("booking %s is already %s", id, existing.Status))
	}

	updated, err := s.Bookings.UpdateFields(id, update)
	if err != nil {
		return nil, NewTransientError(fmt.Sprintf("failed to update booking: %v", err))
	}
	if updated == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	return updated, nil
}
