package booking

import (
	"context"

	bookingRepo "geecurly/database/repository/booking"
	catalogRepo "geecurly/database/repository/catalog"
	"geecurly/models"
	"geecurly/services/notification"

	"github.com/hibiken/asynq"
)

// BookingService is the appointment workflow: availability lookups,
// conflict-checked creation, and operator updates.
type BookingService interface {
	GetAvailability(ctx context.Context, staffID, serviceID, date string) ([]string, error)
	GetAvailabilityForDuration(ctx context.Context, staffID string, durationMinutes int, date string) ([]string, error)
	CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id string, update models.BookingUpdate) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Catalog         catalogRepo.CatalogRepository
	Bookings        bookingRepo.BookingRepository
	NotificationSvc notification.NotificationService
	AsynqClient     *asynq.Client // nil disables reminder scheduling
}

func NewDefaultBookingService(
	catalog catalogRepo.CatalogRepository,
	bookings bookingRepo.BookingRepository,
	notifSvc notification.NotificationService,
	asynqClient *asynq.Client,
) *DefaultBookingService {
	return &DefaultBookingService{
		Catalog:         catalog,
		Bookings:        bookings,
		NotificationSvc: notifSvc,
		AsynqClient:     asynqClient,
	}
}
