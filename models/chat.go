package models

import "time"

// ConversationStep names one state of the booking conversation.
type ConversationStep string

const (
	StepGreeting       ConversationStep = "greeting"
	StepLocationSelect ConversationStep = "location_selection"
	StepServiceSelect  ConversationStep = "service_selection"
	StepStylistSelect  ConversationStep = "stylist_selection"
	StepDateSelect     ConversationStep = "date_selection"
	StepTimeSelect     ConversationStep = "time_selection"
	StepCustomerInfo   ConversationStep = "customer_info"
	StepConfirmation   ConversationStep = "confirmation"
	StepCompleted      ConversationStep = "completed"
)

// StepOrder is the linear progression of the booking flow. "Go back" walks
// this list one entry toward greeting.
var StepOrder = []ConversationStep{
	StepGreeting,
	StepLocationSelect,
	StepServiceSelect,
	StepStylistSelect,
	StepDateSelect,
	StepTimeSelect,
	StepCustomerInfo,
	StepConfirmation,
	StepCompleted,
}

// CustomerInfo is the contact block collected before confirmation.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// ChatDraft is the partially-filled booking accumulated across steps.
// Fields stay nil/empty until their step has run.
type ChatDraft struct {
	Location     string        `json:"location,omitempty"`
	Service      *Service      `json:"service,omitempty"`
	Stylist      *StaffMember  `json:"stylist,omitempty"`
	Date         string        `json:"date,omitempty"` // "YYYY-MM-DD"
	Time         string        `json:"time,omitempty"` // "HH:MM" 24-hour
	CustomerInfo *CustomerInfo `json:"customerInfo,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	AwaitingNote bool          `json:"awaitingNote,omitempty"`
}

// MaxHistoryEntries bounds the per-session utterance history.
const MaxHistoryEntries = 50

// ConversationSession is one chat widget interaction, keyed by a generated
// id. CustomerID links the session to the widget's persistent identifier so
// preferences survive across sessions; it may be empty.
type ConversationSession struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customerId,omitempty"`
	Step       ConversationStep `json:"step"`
	Draft      ChatDraft        `json:"draft"`
	History    []string         `json:"history,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// AppendHistory records an utterance, discarding the oldest past the cap.
func (s *ConversationSession) AppendHistory(text string) {
	s.History = append(s.History, text)
	if len(s.History) > MaxHistoryEntries {
		s.History = s.History[len(s.History)-MaxHistoryEntries:]
	}
}

// CustomerMemory is the long-lived preference record keyed by an opaque
// session/customer identifier. Repeat sessions use it for personalized
// suggestions.
type CustomerMemory struct {
	ID                string    `json:"id"`
	Name              string    `json:"name,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Email             string    `json:"email,omitempty"`
	PreferredLocation string    `json:"preferredLocation,omitempty"`
	PreferredServices []string  `json:"preferredServices,omitempty"`
	PreferredStylists []string  `json:"preferredStylists,omitempty"`
	PreferredTimes    []string  `json:"preferredTimes,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Remember appends v to list if absent, returning the updated list.
func Remember(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// ChatReply is what the engine returns for one user message.
type ChatReply struct {
	Text         string           `json:"text"`
	Type         string           `json:"type"` // welcome|booking|info|confirmation|escalation|error
	QuickActions []string         `json:"quickActions,omitempty"`
	Step         ConversationStep `json:"step"`
	BookingID    string           `json:"bookingId,omitempty"`
}
