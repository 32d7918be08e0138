package models

import "testing"

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", Interval{600, 660}, Interval{600, 660}, true},
		{"partial", Interval{600, 660}, Interval{630, 690}, true},
		{"contained", Interval{600, 840}, Interval{660, 720}, true},
		{"back to back", Interval{600, 660}, Interval{660, 720}, false},
		{"disjoint", Interval{600, 660}, Interval{720, 780}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Overlaps(tt.a); got != tt.want {
			t.Errorf("%s (reversed): Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45 mins"},
		{60, "1 hour"},
		{90, "1 hour 30 mins"},
		{240, "4 hours"},
		{0, "0 mins"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestBookingTerminal(t *testing.T) {
	for status, want := range map[string]bool{
		StatusPending:   false,
		StatusConfirmed: false,
		StatusCompleted: true,
		StatusCancelled: true,
	} {
		b := Booking{Status: status}
		if b.Terminal() != want {
			t.Errorf("Terminal() for %s = %v, want %v", status, b.Terminal(), want)
		}
	}
}

func TestAppendHistoryCap(t *testing.T) {
	var s ConversationSession
	for i := 0; i < MaxHistoryEntries+10; i++ {
		s.AppendHistory("msg")
	}
	if len(s.History) != MaxHistoryEntries {
		t.Errorf("history length = %d, want %d", len(s.History), MaxHistoryEntries)
	}
}

func TestWorksOn(t *testing.T) {
	wh := WorkingHours{Days: []string{"Monday", "Saturday"}}
	if !wh.WorksOn("Monday") {
		t.Error("expected Monday to be a working day")
	}
	if wh.WorksOn("Sunday") {
		t.Error("Sunday should not be a working day")
	}
}
