package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"geecurly/models"
	"geecurly/services/availability"
	"geecurly/utils"

	"go.uber.org/zap"
)

func (s *DefaultChatService) location(key string) *models.Location {
	if loc := models.LocationByKey(key); loc != nil {
		return loc
	}
	return &models.Locations[0]
}

func displayDate(date string) string {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return day.Format("Monday, January 2")
}

func findService(services []models.Service, lower string) *models.Service {
	for i := range services {
		if strings.Contains(lower, strings.ToLower(services[i].Name)) ||
			strings.Contains(lower, strings.ToLower(services[i].Category)) {
			return &services[i]
		}
	}
	return nil
}

func findStaff(staff []models.StaffMember, lower string) *models.StaffMember {
	for i := range staff {
		if strings.Contains(lower, strings.ToLower(staff[i].Name)) ||
			strings.Contains(lower, strings.ToLower(staff[i].Role)) {
			return &staff[i]
		}
	}
	return nil
}

func staffList(staff []models.StaffMember) string {
	lines := make([]string, 0, len(staff))
	for _, member := range staff {
		lines = append(lines, fmt.Sprintf("• %s - %s", member.Name, member.Role))
	}
	return strings.Join(lines, "\n")
}

func staffNames(staff []models.StaffMember) []string {
	names := make([]string, 0, len(staff)+1)
	for _, member := range staff {
		names = append(names, member.Name)
	}
	return append(names, "Any available stylist")
}

func (s *DefaultChatService) greetingReply(memory *models.CustomerMemory) *models.ChatReply {
	if memory != nil && memory.Name != "" {
		text := fmt.Sprintf("Welcome back, %s! Great to see you again at GeeCurly Salon!", memory.Name)
		if len(memory.PreferredServices) > 0 {
			text += fmt.Sprintf("\n\nLast time you enjoyed %s. Would you like to book that again?",
				memory.PreferredServices[len(memory.PreferredServices)-1])
		}
		text += "\n\nHow can I help you today?"
		return &models.ChatReply{
			Text:         text,
			Type:         ReplyWelcome,
			QuickActions: []string{"Book appointment", "View services", "Check prices"},
			Step:         models.StepGreeting,
		}
	}
	return &models.ChatReply{
		Text:         "Hello! Welcome to GeeCurly Salon - Your Beauty, Our Passion!\n\nI'm your beauty assistant, here to help you:\n• Book appointments\n• Learn about our services\n• Meet our expert team\n• Get pricing information\n• Find our locations\n\nHow can I make you look and feel amazing today?",
		Type:         ReplyWelcome,
		QuickActions: []string{"Book appointment", "View services", "Check prices", "Location info"},
		Step:         models.StepGreeting,
	}
}

func (s *DefaultChatService) locationPrompt() *models.ChatReply {
	var b strings.Builder
	b.WriteString("Perfect! I'd love to help you book at GeeCurly Salon!\n\nChoose your location:\n")
	for _, loc := range models.Locations {
		fmt.Fprintf(&b, "\n%s\n%s\nPhone: %s\n", loc.Name, loc.Address, loc.Phone)
	}
	b.WriteString("\nWhich location works best for you?")
	return &models.ChatReply{
		Text:         b.String(),
		Type:         ReplyBooking,
		QuickActions: []string{"Kiambu Road", "Roysambu"},
		Step:         models.StepLocationSelect,
	}
}

func (s *DefaultChatService) servicePrompt(ctx context.Context, locationKey string) *models.ChatReply {
	loc := s.location(locationKey)
	services, err := s.Catalog.GetServices()
	if err != nil {
		return s.escalationReply(models.StepServiceSelect, locationKey, "I couldn't load our service list just now.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Excellent! You've chosen our %s location!\n\nOur services:\n", loc.Name)
	for _, svc := range services {
		fmt.Fprintf(&b, "\n• %s (%s) - KES %d - %d, %s", svc.Name, svc.Category, svc.Price.Min, svc.Price.Max, svc.Duration())
	}
	b.WriteString("\n\nWhich service would you like to book?")
	return &models.ChatReply{
		Text:         b.String(),
		Type:         ReplyBooking,
		QuickActions: []string{models.CategoryHairStyling, models.CategoryHairBraiding, models.CategoryTreatment, models.CategoryNails},
		Step:         models.StepServiceSelect,
	}
}

func (s *DefaultChatService) stylistPrompt(ctx context.Context, session *models.ConversationSession, svc *models.Service) *models.ChatReply {
	staff, err := s.Catalog.GetStaffBySpecialty(svc.Category)
	if err != nil {
		return s.escalationReply(models.StepStylistSelect, session.Draft.Location, "I couldn't load our stylist list just now.")
	}
	if len(staff) == 0 {
		loc := s.location(session.Draft.Location)
		return &models.ChatReply{
			Text: fmt.Sprintf("Hmm, none of our stylists currently offer %s. Please call us on %s and we'll find a way to help!", svc.Category, loc.Phone),
			Type: ReplyEscalation,
			Step: models.StepServiceSelect,
		}
	}
	return &models.ChatReply{
		Text: fmt.Sprintf("Perfect choice! %s\n\nService details:\n• Duration: %s\n• Price: KES %d - %d\n\nAvailable stylists:\n%s\n\nWho would you prefer?",
			svc.Name, svc.Duration(), svc.Price.Min, svc.Price.Max, staffList(staff)),
		Type:         ReplyBooking,
		QuickActions: staffNames(staff),
		Step:         models.StepStylistSelect,
	}
}

func (s *DefaultChatService) datePrompt(stylist *models.StaffMember) *models.ChatReply {
	now := s.Now()
	var b strings.Builder
	fmt.Fprintf(&b, "Perfect! %s it is!\n\nChoose your preferred day:\n\n", stylist.Name)
	quick := make([]string, 0, 4)
	for i := 1; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		fmt.Fprintf(&b, "%d. %s\n", i, day.Format("Monday, Jan 2"))
		if len(quick) < 4 {
			quick = append(quick, day.Format("Monday"))
		}
	}
	b.WriteString("\nTell me your preferred day like \"Monday\", \"Tomorrow\" or \"Day 3\".")
	return &models.ChatReply{
		Text:         b.String(),
		Type:         ReplyBooking,
		QuickActions: quick,
		Step:         models.StepDateSelect,
	}
}

func (s *DefaultChatService) timePrompt(date string, slots []string) *models.ChatReply {
	var b strings.Builder
	fmt.Fprintf(&b, "Great choice! %s is available!\n\nAvailable time slots:\n\n", displayDate(date))
	for i, slot := range slots {
		fmt.Fprintf(&b, "%d. %s\n", i+1, slot)
	}
	b.WriteString("\nTell me your preferred time like \"10am\", \"2:30pm\" or \"Morning\".")
	quick := slots
	if len(quick) > 4 {
		quick = quick[:4]
	}
	return &models.ChatReply{
		Text:         b.String(),
		Type:         ReplyBooking,
		QuickActions: quick,
		Step:         models.StepTimeSelect,
	}
}

func (s *DefaultChatService) summaryReply(draft *models.ChatDraft, lead string) *models.ChatReply {
	loc := s.location(draft.Location)
	var b strings.Builder
	b.WriteString(lead)
	b.WriteString("\n\nYour booking summary:\n")
	if draft.Service != nil {
		fmt.Fprintf(&b, "• Service: %s\n", draft.Service.Name)
		fmt.Fprintf(&b, "• Estimated price: KES %d - %d\n", draft.Service.Price.Min, draft.Service.Price.Max)
	}
	if draft.Stylist != nil {
		fmt.Fprintf(&b, "• Stylist: %s\n", draft.Stylist.Name)
	}
	if draft.Date != "" {
		fmt.Fprintf(&b, "• Date: %s\n", displayDate(draft.Date))
	}
	if draft.Time != "" {
		if minutes, err := availability.TimeToMinutes(draft.Time); err == nil {
			fmt.Fprintf(&b, "• Time: %s\n", availability.Format12Hour(minutes))
		}
	}
	fmt.Fprintf(&b, "• Location: %s\n", loc.Name)
	if draft.CustomerInfo != nil {
		fmt.Fprintf(&b, "• Customer: %s\n", draft.CustomerInfo.Name)
		fmt.Fprintf(&b, "• Phone: %s\n", draft.CustomerInfo.Phone)
		if draft.CustomerInfo.Email != "" {
			fmt.Fprintf(&b, "• Email: %s\n", draft.CustomerInfo.Email)
		}
	}
	if draft.Notes != "" {
		fmt.Fprintf(&b, "• Notes: %s\n", draft.Notes)
	}
	b.WriteString("\nReady to confirm your GeeCurly Salon appointment?")
	return &models.ChatReply{
		Text:         b.String(),
		Type:         ReplyConfirmation,
		QuickActions: []string{"Confirm Booking", "Add Notes", "Modify Details"},
		Step:         models.StepConfirmation,
	}
}

func (s *DefaultChatService) escalationReply(step models.ConversationStep, locationKey, lead string) *models.ChatReply {
	loc := s.location(locationKey)
	return &models.ChatReply{
		Text: fmt.Sprintf("%s Please try again in a moment, or contact us directly:\n\nCall: %s\nWhatsApp: +%s", lead, loc.Phone, loc.WhatsApp),
		Type: ReplyEscalation,
		Step: step,
	}
}

// handleInfo answers non-booking questions without leaving the greeting step.
func (s *DefaultChatService) handleInfo(ctx context.Context, session *models.ConversationSession, intent Intent) *models.ChatReply {
	switch intent {
	case IntentGreeting:
		return s.greetingReply(s.loadMemory(ctx, session.CustomerID))

	case IntentServices, IntentPricing:
		services, err := s.Catalog.GetServices()
		if err != nil {
			return s.escalationReply(models.StepGreeting, session.Draft.Location, "I couldn't load our service list just now.")
		}
		var b strings.Builder
		b.WriteString("GeeCurly Salon expert services:\n")
		for _, svc := range services {
			fmt.Fprintf(&b, "\n• %s - KES %d - %d (%s)", svc.Name, svc.Price.Min, svc.Price.Max, svc.Duration())
		}
		b.WriteString("\n\nWhich service interests you most?")
		return &models.ChatReply{
			Text:         b.String(),
			Type:         ReplyInfo,
			QuickActions: []string{"Book appointment", "Meet the team"},
			Step:         models.StepGreeting,
		}

	case IntentStaff:
		staff, err := s.Catalog.GetStaff()
		if err != nil {
			return s.escalationReply(models.StepGreeting, session.Draft.Location, "I couldn't load our team list just now.")
		}
		return &models.ChatReply{
			Text:         fmt.Sprintf("Meet the GeeCurly Salon team:\n\n%s\n\nWould you like to book with one of them?", staffList(staff)),
			Type:         ReplyInfo,
			QuickActions: []string{"Book appointment", "View services"},
			Step:         models.StepGreeting,
		}

	case IntentLocation:
		var b strings.Builder
		b.WriteString("Find us at either GeeCurly Salon location:\n")
		for _, loc := range models.Locations {
			fmt.Fprintf(&b, "\n%s\n%s\nPhone: %s\nWhatsApp: +%s\n", loc.Name, loc.Address, loc.Phone, loc.WhatsApp)
		}
		return &models.ChatReply{
			Text:         b.String(),
			Type:         ReplyInfo,
			QuickActions: []string{"Book appointment"},
			Step:         models.StepGreeting,
		}

	case IntentHours:
		return &models.ChatReply{
			Text:         "We're open Monday to Saturday, 6:00 AM - 10:00 PM, and Sunday for nail services. Walk-ins welcome, but booking ahead guarantees your slot!",
			Type:         ReplyInfo,
			QuickActions: []string{"Book appointment"},
			Step:         models.StepGreeting,
		}

	default:
		return &models.ChatReply{
			Text:         "I'm here to help you with GeeCurly Salon!\n\nI can assist with:\n• Booking appointments\n• Service information\n• Meeting our stylists\n• Pricing details\n• Location & directions\n\nWhat would you like to know?",
			Type:         ReplyInfo,
			QuickActions: []string{"Book appointment", "View services", "Check prices", "Get location"},
			Step:         models.StepGreeting,
		}
	}
}

// Memory helpers. Preference recording is best effort: failures are logged
// and never interrupt the conversation.

func (s *DefaultChatService) loadMemory(ctx context.Context, customerID string) *models.CustomerMemory {
	if customerID == "" || s.Memory == nil {
		return nil
	}
	memory, err := s.Memory.Get(ctx, customerID)
	if err != nil {
		utils.GetLogger().Warn("failed to load customer memory",
			zap.Error(err), zap.String("customerId", customerID))
		return nil
	}
	return memory
}

func (s *DefaultChatService) mutateMemory(ctx context.Context, customerID string, mutate func(*models.CustomerMemory)) {
	if customerID == "" || s.Memory == nil {
		return
	}
	memory := s.loadMemory(ctx, customerID)
	if memory == nil {
		memory = &models.CustomerMemory{ID: customerID}
	}
	mutate(memory)
	memory.UpdatedAt = s.Now().UTC()
	if err := s.Memory.Set(ctx, memory); err != nil {
		utils.GetLogger().Warn("failed to save customer memory",
			zap.Error(err), zap.String("customerId", customerID))
	}
}

func (s *DefaultChatService) rememberLocation(ctx context.Context, customerID, location string) {
	s.mutateMemory(ctx, customerID, func(m *models.CustomerMemory) {
		m.PreferredLocation = location
	})
}

func (s *DefaultChatService) rememberService(ctx context.Context, customerID, service string) {
	s.mutateMemory(ctx, customerID, func(m *models.CustomerMemory) {
		m.PreferredServices = models.Remember(m.PreferredServices, service)
	})
}

func (s *DefaultChatService) rememberStylist(ctx context.Context, customerID, stylist string) {
	s.mutateMemory(ctx, customerID, func(m *models.CustomerMemory) {
		m.PreferredStylists = models.Remember(m.PreferredStylists, stylist)
	})
}

func (s *DefaultChatService) rememberTime(ctx context.Context, customerID, displayTime string) {
	s.mutateMemory(ctx, customerID, func(m *models.CustomerMemory) {
		m.PreferredTimes = models.Remember(m.PreferredTimes, displayTime)
	})
}

func (s *DefaultChatService) rememberContact(ctx context.Context, customerID string, info models.CustomerInfo) {
	s.mutateMemory(ctx, customerID, func(m *models.CustomerMemory) {
		m.Name = info.Name
		m.Phone = info.Phone
		if info.Email != "" {
			m.Email = info.Email
		}
	})
}
