package chat

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"geecurly/models"
)

var weekdayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ParseDate extracts a "YYYY-MM-DD" date from free text. Weekday names
// resolve to the next occurrence strictly after today, so "Monday" said on a
// Monday means next week. Returns "" when no date is recognized.
func ParseDate(message string, now time.Time) string {
	lower := strings.ToLower(message)

	for idx, day := range weekdayNames {
		if !strings.Contains(lower, day) {
			continue
		}
		ahead := (idx - int(now.Weekday()) + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return now.AddDate(0, 0, ahead).Format("2006-01-02")
	}
	if strings.Contains(lower, "tomorrow") {
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}
	if strings.Contains(lower, "today") {
		return now.Format("2006-01-02")
	}
	return ""
}

var dayNumberPattern = regexp.MustCompile(`(?i)day\s*(\d+)`)

// ParseDayNumber handles "day 3" style selections, meaning N days from today
// for N in 1..7. The second return reports whether a selection was found.
func ParseDayNumber(message string, now time.Time) (string, bool) {
	m := dayNumberPattern.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > 7 {
		return "", false
	}
	return now.AddDate(0, 0, n).Format("2006-01-02"), true
}

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(am|pm)`)

// ParseTime extracts a time of day from free text as minutes since midnight.
// Accepts "10am", "2:30pm" and the coarse words morning (10:00), afternoon
// (14:00) and evening (18:00). The second return reports success.
func ParseTime(message string) (int, bool) {
	if m := clockPattern.FindStringSubmatch(message); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil || hours < 1 || hours > 12 {
			return 0, false
		}
		mins := 0
		if m[2] != "" {
			mins, err = strconv.Atoi(m[2])
			if err != nil || mins > 59 {
				return 0, false
			}
		}
		if strings.EqualFold(m[3], "pm") && hours != 12 {
			hours += 12
		}
		if strings.EqualFold(m[3], "am") && hours == 12 {
			hours = 0
		}
		return hours*60 + mins, true
	}

	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "morning"):
		return 10 * 60, true
	case strings.Contains(lower, "afternoon"):
		return 14 * 60, true
	case strings.Contains(lower, "evening"):
		return 18 * 60, true
	}
	return 0, false
}

var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:my name is|i am|i'm|name is|name:)\s*([a-z\s]+?)(?:\s*,|\s*phone|\s*email|\s*$)`),
		regexp.MustCompile(`(?i)^([a-z\s]+?)(?:\s*,|\s*phone|\s*email)`),
	}
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:phone|number|tel|mobile|call)[\s:]*([+]?254\s*[0-9\s-]{8,})`),
		regexp.MustCompile(`(?i)(?:phone|number|tel|mobile|call)[\s:]*([0][0-9\s-]{8,})`),
		regexp.MustCompile(`([+]?254\s*[0-9\s-]{8,})`),
		regexp.MustCompile(`([0][0-9\s-]{8,})`),
	}
	emailPattern    = regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "")
)

// ParseCustomerInfo pulls name, Kenyan phone number, and optional email out of
// a free-text contact message. Fields not found stay empty.
func ParseCustomerInfo(message string) models.CustomerInfo {
	var info models.CustomerInfo

	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(message); m != nil && strings.TrimSpace(m[1]) != "" {
			info.Name = strings.TrimSpace(m[1])
			break
		}
	}
	for _, pattern := range phonePatterns {
		if m := pattern.FindStringSubmatch(message); m != nil {
			info.Phone = phoneSeparators.Replace(strings.TrimSpace(m[1]))
			break
		}
	}
	if m := emailPattern.FindStringSubmatch(message); m != nil {
		info.Email = strings.TrimSpace(m[1])
	}
	return info
}
