package notification

import (
	"context"

	"geecurly/models"
)

// NotificationService delivers customer-facing messages for bookings. The
// default implementation formats WhatsApp texts and logs the delivery; a
// messaging gateway can replace it without touching callers.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking *models.Booking) error
	SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error
}
