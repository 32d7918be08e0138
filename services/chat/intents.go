package chat

import "strings"

// Intent is the coarse classification of one user message.
type Intent string

const (
	IntentBooking      Intent = "booking"
	IntentServices     Intent = "services"
	IntentPricing      Intent = "pricing"
	IntentStaff        Intent = "staff"
	IntentLocation     Intent = "location"
	IntentHours        Intent = "hours"
	IntentGreeting     Intent = "greeting"
	IntentConfirmation Intent = "confirmation"
	IntentBack         Intent = "back"
	IntentReset        Intent = "reset"
	IntentDate         Intent = "date"
	IntentTime         Intent = "time"
	IntentGeneral      Intent = "general"
)

// intentKeywords is scanned in order; the first entry with a matching keyword
// wins, so the ordering is part of the classifier's behavior.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentBooking, []string{"book", "appointment", "schedule", "reserve", "available"}},
	{IntentServices, []string{"service", "treatment", "hair", "nails", "what do you offer"}},
	{IntentPricing, []string{"price", "cost", "how much", "rate", "fee", "charge"}},
	{IntentStaff, []string{"staff", "stylist", "who", "team"}},
	{IntentLocation, []string{"where", "location", "address", "direction", "kiambu", "roysambu"}},
	{IntentHours, []string{"hour", "time", "open", "close", "when"}},
	{IntentGreeting, []string{"hello", "hi", "hey", "good morning", "good afternoon"}},
	{IntentConfirmation, []string{"yes", "confirm", "proceed", "book it", "okay", "ok"}},
	{IntentBack, []string{"back", "previous", "go back"}},
	{IntentReset, []string{"start over", "reset", "new conversation", "restart"}},
	{IntentDate, []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday", "tomorrow", "today", "next week"}},
	{IntentTime, []string{"morning", "afternoon", "evening", "am", "pm", ":"}},
}

// DetectIntent classifies a message by keyword containment.
func DetectIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, entry := range intentKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.intent
			}
		}
	}
	return IntentGeneral
}
