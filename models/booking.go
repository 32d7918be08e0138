package models

import "time"

// Booking status lifecycle. Pending and confirmed bookings hold their slot;
// completed and cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Origin channel for a booking.
const (
	MethodWebsite  = "website"
	MethodWhatsApp = "whatsapp"
	MethodAIChat   = "ai_chat"
)

// Booking is a persisted appointment. Service and staff details are
// denormalized so operator views never need joins.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	CustomerName    string    `bson:"customer_name" json:"customerName"`
	CustomerPhone   string    `bson:"customer_phone" json:"customerPhone"`
	CustomerEmail   string    `bson:"customer_email,omitempty" json:"customerEmail,omitempty"`
	ServiceID       string    `bson:"service_id" json:"serviceId"`
	ServiceName     string    `bson:"service_name" json:"service"`
	ServiceCategory string    `bson:"service_category" json:"serviceCategory"`
	Price           int       `bson:"price" json:"price"`
	StaffID         string    `bson:"staff_id" json:"stylistId"`
	StaffName       string    `bson:"staff_name" json:"stylistName"`
	Date            string    `bson:"booking_date" json:"date"` // "YYYY-MM-DD"
	Time            string    `bson:"booking_time" json:"time"` // "HH:MM" 24-hour
	EndTime         string    `bson:"end_time" json:"endTime"`  // Time + service duration
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"`
	BookingMethod   string    `bson:"booking_method" json:"bookingMethod"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// Duration renders the denormalized duration string for operator views.
func (b Booking) Duration() string {
	return FormatDuration(b.DurationMinutes)
}

// Terminal reports whether the booking can no longer change status.
func (b Booking) Terminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// BookingDraft carries the fields a caller supplies when creating a booking.
// Required: CustomerName, CustomerPhone, ServiceID, StaffID, Date, Time.
type BookingDraft struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	ServiceID     string `json:"serviceId"`
	StaffID       string `json:"staffId"`
	Date          string `json:"date"` // "YYYY-MM-DD"
	Time          string `json:"time"` // "HH:MM" or "H:MM AM/PM"
	Notes         string `json:"notes,omitempty"`
	BookingMethod string `json:"bookingMethod,omitempty"`
	Price         int    `json:"price,omitempty"`
}

// BookingUpdate names the mutable fields of a persisted booking.
type BookingUpdate struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// Interval is a half-open [Start,End) range in minutes since midnight.
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Overlaps applies the half-open interval overlap test.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}
