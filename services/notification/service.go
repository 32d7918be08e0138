package notification

import (
	"context"
	"fmt"
	"net/url"

	"geecurly/config"
	"geecurly/models"
	"geecurly/services/availability"
	"geecurly/utils"

	"go.uber.org/zap"
)

// DefaultNotificationService formats booking texts and hands them to the
// salon's WhatsApp line. Delivery failures are logged, never returned to the
// booking flow.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

// displayTime renders a stored "HH:MM" time for customer-facing text.
func displayTime(clock string) string {
	minutes, err := availability.TimeToMinutes(clock)
	if err != nil {
		return clock
	}
	return availability.Format12Hour(minutes)
}

// ConfirmationText is the message sent to the customer once a booking lands.
func ConfirmationText(b *models.Booking) string {
	return fmt.Sprintf(
		"Hi %s! Your appointment at GeeCurly Salon is confirmed.\n%s with %s on %s at %s.\nBooking ref: %s\nQuestions? Call us on %s.",
		b.CustomerName, b.ServiceName, b.StaffName, b.Date, displayTime(b.Time), b.ID, config.AppConfig.SalonPhone,
	)
}

// ReminderText is the message sent ahead of the appointment.
func ReminderText(p models.ReminderPayload) string {
	return fmt.Sprintf(
		"Hi %s! A reminder from GeeCurly Salon: %s with %s today (%s) at %s. See you soon!",
		p.CustomerName, p.ServiceName, p.StaffName, p.Date, displayTime(p.Time),
	)
}

// WhatsAppLink builds a wa.me deep link carrying the given message to the
// salon line.
func WhatsAppLink(text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", config.AppConfig.SalonWhatsApp, url.QueryEscape(text))
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, booking *models.Booking) error {
	logger := utils.GetLogger()
	text := ConfirmationText(booking)
	logger.Info("booking confirmation dispatched",
		zap.String("bookingId", booking.ID),
		zap.String("customerPhone", booking.CustomerPhone),
		zap.String("whatsapp", WhatsAppLink(text)),
	)
	return nil
}

func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	logger := utils.GetLogger()
	text := ReminderText(payload)
	logger.Info("booking reminder dispatched",
		zap.String("bookingId", payload.BookingID),
		zap.String("customerPhone", payload.CustomerPhone),
		zap.String("whatsapp", WhatsAppLink(text)),
	)
	return nil
}
