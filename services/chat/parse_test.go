package chat

import (
	"testing"
	"time"
)

// base is Tuesday 2026-09-01.
var base = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"how about Friday?", "2026-09-04"},
		{"monday works", "2026-09-07"},
		// Same weekday as today means next week, never today.
		{"Tuesday please", "2026-09-08"},
		{"tomorrow", "2026-09-02"},
		{"today if possible", "2026-09-01"},
		{"whenever", ""},
	}
	for _, tt := range tests {
		if got := ParseDate(tt.in, base); got != tt.want {
			t.Errorf("ParseDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDayNumber(t *testing.T) {
	got, ok := ParseDayNumber("day 3", base)
	if !ok || got != "2026-09-04" {
		t.Errorf("ParseDayNumber(day 3) = %q, %v; want 2026-09-04, true", got, ok)
	}
	if _, ok := ParseDayNumber("day 9", base); ok {
		t.Error("ParseDayNumber(day 9) should be out of range")
	}
	if _, ok := ParseDayNumber("next week", base); ok {
		t.Error("ParseDayNumber(next week) should not match")
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"10am", 600, true},
		{"2:30pm", 870, true},
		{"12pm", 720, true},
		{"12am", 0, true},
		{"around 4 PM works", 960, true},
		{"morning", 600, true},
		{"afternoon", 840, true},
		{"evening", 1080, true},
		{"whenever", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseTime(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseTime(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseTime(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseCustomerInfo(t *testing.T) {
	info := ParseCustomerInfo("My name is Grace Mwangi, phone 0722123456, email grace@gmail.com")
	if info.Name != "Grace Mwangi" {
		t.Errorf("Name = %q, want Grace Mwangi", info.Name)
	}
	if info.Phone != "0722123456" {
		t.Errorf("Phone = %q, want 0722123456", info.Phone)
	}
	if info.Email != "grace@gmail.com" {
		t.Errorf("Email = %q, want grace@gmail.com", info.Email)
	}

	info = ParseCustomerInfo("Sarah Wanjiku, phone +254 712 345 678")
	if info.Name != "Sarah Wanjiku" {
		t.Errorf("Name = %q, want Sarah Wanjiku", info.Name)
	}
	if info.Phone != "+254712345678" {
		t.Errorf("Phone = %q, want +254712345678", info.Phone)
	}
	if info.Email != "" {
		t.Errorf("Email = %q, want empty", info.Email)
	}

	info = ParseCustomerInfo("just book it already")
	if info.Phone != "" {
		t.Errorf("Phone = %q, want empty for message without a number", info.Phone)
	}
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		in   string
		want Intent
	}{
		{"I want to book an appointment", IntentBooking},
		{"what services do you have", IntentServices},
		{"how much is a manicure", IntentPricing},
		{"who are your stylists", IntentStaff},
		{"where are you located", IntentLocation},
		{"hello there", IntentGreeting},
		{"can you do magic", IntentGeneral},
		// Ordering: "book" wins over the later confirmation keywords.
		{"yes book it", IntentBooking},
	}
	for _, tt := range tests {
		if got := DetectIntent(tt.in); got != tt.want {
			t.Errorf("DetectIntent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
