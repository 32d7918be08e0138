package chat

import (
	"context"
	"time"

	catalogRepo "geecurly/database/repository/catalog"
	"geecurly/models"
	"geecurly/services/booking"
)

// ChatService runs the rule-based booking receptionist.
type ChatService interface {
	// StartSession opens a conversation and returns the greeting. customerID
	// is the widget's persistent identifier used for preference memory; it
	// may be empty for anonymous visitors.
	StartSession(ctx context.Context, customerID string) (*models.ConversationSession, *models.ChatReply, error)
	// HandleMessage advances the conversation by one user message.
	HandleMessage(ctx context.Context, sessionID, message string) (*models.ChatReply, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Catalog    catalogRepo.CatalogRepository
	BookingSvc booking.BookingService
	Sessions   SessionStore
	Memory     MemoryStore
	Now        func() time.Time
}

func NewDefaultChatService(
	catalog catalogRepo.CatalogRepository,
	bookingSvc booking.BookingService,
	sessions SessionStore,
	memory MemoryStore,
) *DefaultChatService {
	return &DefaultChatService{
		Catalog:    catalog,
		BookingSvc: bookingSvc,
		Sessions:   sessions,
		Memory:     memory,
		Now:        time.Now,
	}
}
