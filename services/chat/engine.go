package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"geecurly/models"
	"geecurly/services/availability"
	"geecurly/services/booking"
	"geecurly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reply types surfaced to the widget.
const (
	ReplyWelcome      = "welcome"
	ReplyBooking      = "booking"
	ReplyInfo         = "info"
	ReplyConfirmation = "confirmation"
	ReplyEscalation   = "escalation"
	ReplyError        = "error"
)

var resetKeywords = []string{"start over", "reset", "new conversation", "restart"}
var backKeywords = []string{"go back", "previous", "back"}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// StartSession opens a conversation and returns the greeting.
func (s *DefaultChatService) StartSession(ctx context.Context, customerID string) (*models.ConversationSession, *models.ChatReply, error) {
	now := s.Now().UTC()
	session := &models.ConversationSession{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Step:       models.StepGreeting,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	memory := s.loadMemory(ctx, customerID)
	reply := s.greetingReply(memory)
	session.Step = reply.Step

	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, nil, booking.NewTransientError(fmt.Sprintf("failed to save session: %v", err))
	}
	return session, reply, nil
}

// HandleMessage advances the conversation by one user message.
func (s *DefaultChatService) HandleMessage(ctx context.Context, sessionID, message string) (*models.ChatReply, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil, booking.NewValidationError("message", "is required")
	}
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, booking.NewTransientError(fmt.Sprintf("failed to load session: %v", err))
	}
	if session == nil {
		return nil, booking.NewNotFoundError("session not found or expired")
	}

	session.AppendHistory(msg)
	lower := strings.ToLower(msg)
	intent := DetectIntent(msg)

	var reply *models.ChatReply
	switch {
	case containsAny(lower, resetKeywords):
		session.Draft = models.ChatDraft{}
		session.Step = models.StepGreeting
		reply = s.greetingReply(s.loadMemory(ctx, session.CustomerID))
	case containsAny(lower, backKeywords) && session.Step != models.StepGreeting && session.Step != models.StepCompleted:
		reply = s.stepBack(ctx, session)
	case session.Step != models.StepGreeting || intent == IntentBooking:
		reply = s.handleBookingFlow(ctx, session, msg, lower, intent)
	default:
		reply = s.handleInfo(ctx, session, intent)
	}

	session.Step = reply.Step
	session.UpdatedAt = s.Now().UTC()
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, booking.NewTransientError(fmt.Sprintf("failed to save session: %v", err))
	}
	return reply, nil
}

// stepBack walks one step toward greeting, keeping everything collected so
// far. Re-answering a step overwrites its field.
func (s *DefaultChatService) stepBack(ctx context.Context, session *models.ConversationSession) *models.ChatReply {
	for i, step := range models.StepOrder {
		if step == session.Step && i > 0 {
			session.Step = models.StepOrder[i-1]
			break
		}
	}
	return s.promptForStep(ctx, session)
}

func (s *DefaultChatService) handleBookingFlow(ctx context.Context, session *models.ConversationSession, msg, lower string, intent Intent) *models.ChatReply {
	draft := &session.Draft

	switch session.Step {
	case models.StepGreeting:
		return s.locationPrompt()

	case models.StepLocationSelect:
		switch {
		case strings.Contains(lower, "kiambu"):
			draft.Location = "kiambu"
		case strings.Contains(lower, "roysambu"):
			draft.Location = "roysambu"
		case draft.Location == "":
			// No match and nothing selected yet: stay and ask again.
			return s.locationPrompt()
		}
		s.rememberLocation(ctx, session.CustomerID, draft.Location)
		return s.servicePrompt(ctx, draft.Location)

	case models.StepServiceSelect:
		services, err := s.Catalog.GetServices()
		if err != nil {
			return s.escalationReply(session.Step, draft.Location, "I couldn't load our service list just now.")
		}
		svc := findService(services, lower)
		if svc == nil {
			return &models.ChatReply{
				Text:         "I'd love to help you find the perfect service! Which service interests you?\n\nAvailable at GeeCurly Salon:\n• Hair Styling\n• Hair Braiding\n• Hair Treatment\n• Nail Services\n\nJust pick one above or tell me what you're looking for!",
				Type:         ReplyBooking,
				QuickActions: []string{models.CategoryHairStyling, models.CategoryHairBraiding, models.CategoryTreatment, models.CategoryNails},
				Step:         models.StepServiceSelect,
			}
		}
		draft.Service = svc
		s.rememberService(ctx, session.CustomerID, svc.Name)
		return s.stylistPrompt(ctx, session, svc)

	case models.StepStylistSelect:
		if draft.Service == nil {
			session.Step = models.StepServiceSelect
			return s.servicePrompt(ctx, draft.Location)
		}
		staff, err := s.Catalog.GetStaffBySpecialty(draft.Service.Category)
		if err != nil {
			return s.escalationReply(session.Step, draft.Location, "I couldn't load our stylist list just now.")
		}
		member := findStaff(staff, lower)
		if member == nil && strings.Contains(lower, "any") && len(staff) > 0 {
			member = &staff[0]
		}
		if member == nil {
			names := staffNames(staff)
			return &models.ChatReply{
				Text:         fmt.Sprintf("Please choose your preferred stylist:\n\n%s\n\nWho would you like to book with?", staffList(staff)),
				Type:         ReplyBooking,
				QuickActions: names,
				Step:         models.StepStylistSelect,
			}
		}
		draft.Stylist = member
		s.rememberStylist(ctx, session.CustomerID, member.Name)
		return s.datePrompt(member)

	case models.StepDateSelect:
		if draft.Service == nil || draft.Stylist == nil {
			session.Step = models.StepServiceSelect
			return s.servicePrompt(ctx, draft.Location)
		}
		now := s.Now()
		date := ParseDate(msg, now)
		if date == "" {
			if d, ok := ParseDayNumber(msg, now); ok {
				date = d
			}
		}
		if date == "" {
			return &models.ChatReply{
				Text:         "Please choose a day for your appointment. You can say:\n• \"Monday\"\n• \"Tomorrow\"\n• \"Day 2\" (for the 2nd day from today)\n\nWhich day would you prefer?",
				Type:         ReplyBooking,
				QuickActions: []string{"Tomorrow", "Monday", "Friday"},
				Step:         models.StepDateSelect,
			}
		}
		slots, err := s.BookingSvc.GetAvailability(ctx, draft.Stylist.ID, draft.Service.ID, date)
		if err != nil && isTransient(err) {
			// One automatic retry before degrading.
			slots, err = s.BookingSvc.GetAvailability(ctx, draft.Stylist.ID, draft.Service.ID, date)
		}
		if err != nil {
			// Availability is down, not the booking itself. Collect the time
			// anyway and let confirmation re-check it.
			draft.Date = date
			loc := s.location(draft.Location)
			return &models.ChatReply{
				Text:         fmt.Sprintf("Let me check availability for %s and get back to you! In the meantime you can reach us directly on %s.\n\nWhat time would you prefer?", displayDate(date), loc.Phone),
				Type:         ReplyBooking,
				QuickActions: []string{"Morning", "Afternoon", "Evening"},
				Step:         models.StepTimeSelect,
			}
		}
		if len(slots) == 0 {
			return &models.ChatReply{
				Text:         fmt.Sprintf("Unfortunately %s is fully booked for %s. Please choose another day:", displayDate(date), draft.Stylist.Name),
				Type:         ReplyBooking,
				QuickActions: []string{"Tomorrow", "Next Monday", "Next Tuesday"},
				Step:         models.StepDateSelect,
			}
		}
		draft.Date = date
		return s.timePrompt(date, slots)

	case models.StepTimeSelect:
		minutes, ok := ParseTime(msg)
		if !ok {
			return &models.ChatReply{
				Text:         "What time works best for you? You can say:\n• \"10am\" or \"10:00 AM\"\n• \"2:30pm\"\n• \"Morning\" / \"Afternoon\" / \"Evening\"",
				Type:         ReplyBooking,
				QuickActions: []string{"10:00 AM", "2:00 PM", "5:00 PM"},
				Step:         models.StepTimeSelect,
			}
		}
		draft.Time = availability.MinutesToClock(minutes)
		s.rememberTime(ctx, session.CustomerID, availability.Format12Hour(minutes))
		return &models.ChatReply{
			Text: fmt.Sprintf("Excellent! I've reserved %s at %s for you!\n\nJust need your contact details:\n• Your full name\n• Phone number\n• Email address (optional)\n\nExample: \"My name is Sarah Wanjiku, phone 0712345678, email sarah@gmail.com\"",
				displayDate(draft.Date), availability.Format12Hour(minutes)),
			Type: ReplyBooking,
			Step: models.StepCustomerInfo,
		}

	case models.StepCustomerInfo:
		// Details may arrive across several messages; merge each parse into
		// what was already captured.
		parsed := ParseCustomerInfo(msg)
		info := models.CustomerInfo{}
		if draft.CustomerInfo != nil {
			info = *draft.CustomerInfo
		}
		if parsed.Name != "" {
			info.Name = parsed.Name
		}
		if parsed.Phone != "" {
			info.Phone = parsed.Phone
		}
		if parsed.Email != "" {
			info.Email = parsed.Email
		}
		draft.CustomerInfo = &info
		if info.Name == "" || info.Phone == "" {
			missing := []string{}
			if info.Name == "" {
				missing = append(missing, "• Your full name")
			}
			if info.Phone == "" {
				missing = append(missing, "• Your phone number")
			}
			return &models.ChatReply{
				Text: fmt.Sprintf("I need a bit more information to complete your booking!\n\nStill need:\n%s\n\nExample: \"My name is Grace Mwangi, phone 0722123456\"",
					strings.Join(missing, "\n")),
				Type: ReplyBooking,
				Step: models.StepCustomerInfo,
			}
		}
		s.rememberContact(ctx, session.CustomerID, info)
		return s.summaryReply(draft, "Perfect! "+info.Name+", I've collected your details!")

	case models.StepConfirmation:
		return s.handleConfirmation(ctx, session, msg, lower, intent)

	case models.StepCompleted:
		session.Draft = models.ChatDraft{}
		return s.locationPrompt()

	default:
		session.Draft = models.ChatDraft{}
		return s.locationPrompt()
	}
}

func (s *DefaultChatService) handleConfirmation(ctx context.Context, session *models.ConversationSession, msg, lower string, intent Intent) *models.ChatReply {
	draft := &session.Draft

	if draft.AwaitingNote {
		draft.Notes = msg
		draft.AwaitingNote = false
		return s.summaryReply(draft, "Noted! I've added that to your booking.")
	}

	switch {
	case intent == IntentConfirmation || strings.Contains(lower, "confirm") || strings.Contains(lower, "book it") || strings.Contains(lower, "yes"):
		return s.confirmBooking(ctx, session)

	case strings.Contains(lower, "note"):
		draft.AwaitingNote = true
		return &models.ChatReply{
			Text: "What additional notes would you like to add to your appointment?\n\nCommon requests:\n• Hair texture/type preferences\n• Allergies or sensitivities\n• Special occasion details\n\nPlease share any special requests!",
			Type: ReplyBooking,
			Step: models.StepConfirmation,
		}

	case strings.Contains(lower, "modify") || strings.Contains(lower, "change"):
		return s.handleModify(ctx, session, lower)

	default:
		return s.summaryReply(draft, "Would you like to confirm your booking or make any changes?")
	}
}

// handleModify rewires the flow to the step the customer wants to redo. The
// rest of the draft is kept.
func (s *DefaultChatService) handleModify(ctx context.Context, session *models.ConversationSession, lower string) *models.ChatReply {
	draft := &session.Draft
	switch {
	case strings.Contains(lower, "date") || strings.Contains(lower, "day"):
		draft.Date = ""
		draft.Time = ""
		session.Step = models.StepDateSelect
	case strings.Contains(lower, "time"):
		draft.Time = ""
		session.Step = models.StepTimeSelect
	case strings.Contains(lower, "stylist") || strings.Contains(lower, "staff"):
		draft.Stylist = nil
		session.Step = models.StepStylistSelect
	case strings.Contains(lower, "service"):
		draft.Service = nil
		draft.Stylist = nil
		session.Step = models.StepServiceSelect
	case strings.Contains(lower, "location"):
		session.Step = models.StepLocationSelect
	case strings.Contains(lower, "name") || strings.Contains(lower, "phone") || strings.Contains(lower, "contact") || strings.Contains(lower, "detail"):
		draft.CustomerInfo = nil
		session.Step = models.StepCustomerInfo
	default:
		return &models.ChatReply{
			Text:         "What would you like to modify?\n\nYou can change:\n• Date & time\n• Stylist preference\n• Service selection\n• Location\n• Contact details",
			Type:         ReplyBooking,
			QuickActions: []string{"Change Date", "Change Time", "Change Stylist", "Change Service"},
			Step:         models.StepConfirmation,
		}
	}
	return s.promptForStep(ctx, session)
}

func (s *DefaultChatService) confirmBooking(ctx context.Context, session *models.ConversationSession) *models.ChatReply {
	draft := &session.Draft
	if draft.Service == nil || draft.Stylist == nil || draft.Date == "" || draft.Time == "" ||
		draft.CustomerInfo == nil || draft.CustomerInfo.Name == "" || draft.CustomerInfo.Phone == "" {
		session.Draft = models.ChatDraft{}
		return s.locationPrompt()
	}

	bd := models.BookingDraft{
		CustomerName:  draft.CustomerInfo.Name,
		CustomerPhone: draft.CustomerInfo.Phone,
		CustomerEmail: draft.CustomerInfo.Email,
		ServiceID:     draft.Service.ID,
		StaffID:       draft.Stylist.ID,
		Date:          draft.Date,
		Time:          draft.Time,
		Notes:         draft.Notes,
		BookingMethod: models.MethodAIChat,
		Price:         draft.Service.Price.Min,
	}
	created, err := s.BookingSvc.CreateBooking(ctx, bd)
	if err != nil && isTransient(err) {
		// One automatic retry before degrading.
		created, err = s.BookingSvc.CreateBooking(ctx, bd)
	}
	if err != nil {
		loc := s.location(draft.Location)
		var conflictErr *booking.ConflictError
		if errors.As(err, &conflictErr) {
			draft.Time = ""
			return &models.ChatReply{
				Text:         fmt.Sprintf("So sorry, that time was just taken! %s is still free at other times on %s.\n\nWhat other time works for you? Or call us on %s and we'll sort it out.", draft.Stylist.Name, displayDate(draft.Date), loc.Phone),
				Type:         ReplyEscalation,
				QuickActions: []string{"Morning", "Afternoon", "Evening"},
				Step:         models.StepTimeSelect,
			}
		}
		utils.GetLogger().Error("chat booking creation failed",
			zap.Error(err), zap.String("sessionId", session.ID))
		return &models.ChatReply{
			Text:         fmt.Sprintf("I apologize, there was an issue processing your booking. Please try again in a moment, or contact us directly:\n\nCall: %s\nWhatsApp: +%s\n\nYour details are saved, just say \"confirm\" to retry.", loc.Phone, loc.WhatsApp),
			Type:         ReplyError,
			QuickActions: []string{"Confirm Booking", "Call Salon"},
			Step:         models.StepConfirmation,
		}
	}

	s.rememberService(ctx, session.CustomerID, created.ServiceName)
	s.rememberStylist(ctx, session.CustomerID, created.StaffName)

	loc := s.location(draft.Location)
	return &models.ChatReply{
		Text: fmt.Sprintf(`BOOKING CONFIRMED!

Booking Reference: #%s
Customer: %s
Phone: %s
Service: %s
Stylist: %s
Date: %s
Time: %s
Location: %s
Estimated Cost: KES %d - %d

Salon Address:
%s, %s
Phone: %s
WhatsApp: +%s

Important reminders:
• Please arrive 10 minutes early
• Cancel 24hrs in advance if needed
• Payment accepted: Cash, M-Pesa, Card

Thank you for choosing GeeCurly Salon!`,
			created.ID, created.CustomerName, created.CustomerPhone,
			created.ServiceName, created.StaffName,
			displayDate(created.Date), availability.Format12Hour(mustMinutes(created.Time)),
			loc.Name, draft.Service.Price.Min, draft.Service.Price.Max,
			loc.Name, loc.Address, loc.Phone, loc.WhatsApp),
		Type:         ReplyConfirmation,
		QuickActions: []string{"Book Another", "Call Salon", "WhatsApp Us"},
		Step:         models.StepCompleted,
		BookingID:    created.ID,
	}
}

// promptForStep re-issues the entry prompt for the session's current step,
// used after "go back" and "modify".
func (s *DefaultChatService) promptForStep(ctx context.Context, session *models.ConversationSession) *models.ChatReply {
	draft := &session.Draft
	switch session.Step {
	case models.StepGreeting:
		return s.greetingReply(s.loadMemory(ctx, session.CustomerID))
	case models.StepLocationSelect:
		return s.locationPrompt()
	case models.StepServiceSelect:
		return s.servicePrompt(ctx, draft.Location)
	case models.StepStylistSelect:
		if draft.Service == nil {
			session.Step = models.StepServiceSelect
			return s.servicePrompt(ctx, draft.Location)
		}
		return s.stylistPrompt(ctx, session, draft.Service)
	case models.StepDateSelect:
		if draft.Stylist == nil {
			session.Step = models.StepServiceSelect
			return s.servicePrompt(ctx, draft.Location)
		}
		return s.datePrompt(draft.Stylist)
	case models.StepTimeSelect:
		return &models.ChatReply{
			Text:         "What time works best for you?",
			Type:         ReplyBooking,
			QuickActions: []string{"Morning", "Afternoon", "Evening"},
			Step:         models.StepTimeSelect,
		}
	case models.StepCustomerInfo:
		return &models.ChatReply{
			Text: "Please share your contact details.\n\nExample: \"My name is Sarah Wanjiku, phone 0712345678\"",
			Type: ReplyBooking,
			Step: models.StepCustomerInfo,
		}
	case models.StepConfirmation:
		return s.summaryReply(draft, "Here's your booking so far.")
	default:
		return s.locationPrompt()
	}
}

func isTransient(err error) bool {
	var transientErr *booking.TransientError
	return errors.As(err, &transientErr)
}

func mustMinutes(clock string) int {
	minutes, err := availability.TimeToMinutes(clock)
	if err != nil {
		return 0
	}
	return minutes
}
