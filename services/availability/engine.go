// Package availability computes bookable time slots for one staff member on
// one calendar date. Everything here is a pure function of its inputs.
package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"geecurly/models"
)

const (
	// SlotStepMinutes is the spacing between candidate start times.
	SlotStepMinutes = 60
	// MaxSlots caps how many slots are returned. Display policy, not a
	// completeness guarantee.
	MaxSlots = 8
)

// ValidationError reports malformed input to the engine.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// TimeToMinutes converts a "HH:MM" 24-hour clock string to minutes since
// midnight.
func TimeToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, &ValidationError{Field: "time", Message: fmt.Sprintf("%q is not in HH:MM form", clock)}
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, &ValidationError{Field: "time", Message: fmt.Sprintf("non-numeric hour in %q", clock)}
	}
	mins, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, &ValidationError{Field: "time", Message: fmt.Sprintf("non-numeric minute in %q", clock)}
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, &ValidationError{Field: "time", Message: fmt.Sprintf("%q is out of range", clock)}
	}
	return hours*60 + mins, nil
}

// MinutesToClock converts minutes since midnight to "HH:MM".
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Format12Hour renders minutes since midnight as e.g. "6:00 AM" or "12:00 PM".
func Format12Hour(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	suffix := "AM"
	if hours >= 12 {
		suffix = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, mins, suffix)
}

// ParseClock accepts either "HH:MM" 24-hour or "H:MM AM/PM" / "H AM/PM"
// 12-hour input and returns minutes since midnight.
func ParseClock(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)

	var suffix string
	switch {
	case strings.HasSuffix(upper, "AM"):
		suffix = "AM"
	case strings.HasSuffix(upper, "PM"):
		suffix = "PM"
	default:
		return TimeToMinutes(trimmed)
	}

	body := strings.TrimSpace(strings.TrimSuffix(upper, suffix))
	hours := 0
	mins := 0
	var err error
	if strings.Contains(body, ":") {
		parts := strings.SplitN(body, ":", 2)
		hours, err = strconv.Atoi(strings.TrimSpace(parts[0]))
		if err == nil {
			mins, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		}
	} else {
		hours, err = strconv.Atoi(body)
	}
	if err != nil || hours < 1 || hours > 12 || mins < 0 || mins > 59 {
		return 0, &ValidationError{Field: "time", Message: fmt.Sprintf("cannot parse %q", s)}
	}
	if suffix == "PM" && hours != 12 {
		hours += 12
	}
	if suffix == "AM" && hours == 12 {
		hours = 0
	}
	return hours*60 + mins, nil
}

// ComputeSlots returns the ordered, display-formatted start times at which a
// booking of the requested duration fits inside the working hours without
// overlapping any existing booking. A weekday outside workingHours.Days yields
// an empty list, which is a normal outcome rather than an error.
func ComputeSlots(workingHours models.WorkingHours, existing []models.Interval, durationMinutes int, date string) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, &ValidationError{Field: "durationMinutes", Message: "must be positive"}
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date)}
	}
	if !workingHours.WorksOn(day.Weekday().String()) {
		return []string{}, nil
	}

	startMinutes, err := TimeToMinutes(workingHours.Start)
	if err != nil {
		return nil, &ValidationError{Field: "workingHours", Message: err.Error()}
	}
	endMinutes, err := TimeToMinutes(workingHours.End)
	if err != nil {
		return nil, &ValidationError{Field: "workingHours", Message: err.Error()}
	}

	slots := make([]string, 0, MaxSlots)
	for start := startMinutes; start <= endMinutes-durationMinutes; start += SlotStepMinutes {
		candidate := models.Interval{Start: start, End: start + durationMinutes}
		conflict := false
		for _, booked := range existing {
			if candidate.Overlaps(booked) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		slots = append(slots, Format12Hour(start))
		if len(slots) == MaxSlots {
			break
		}
	}
	return slots, nil
}
