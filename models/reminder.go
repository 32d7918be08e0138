package models

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	BookingID     string `json:"bookingId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	ServiceName   string `json:"serviceName"`
	StaffName     string `json:"staffName"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Time          string `json:"time"` // "HH:MM" 24-hour
}
