package availability

import (
	"errors"
	"reflect"
	"testing"

	"geecurly/models"
)

var monToSat = models.WorkingHours{
	Start: "06:00",
	End:   "22:00",
	Days:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:00", 360, false},
		{"13:30", 810, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
	}
	for _, tt := range tests {
		got, err := TimeToMinutes(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("TimeToMinutes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormat12Hour(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{360, "6:00 AM"},
		{690, "11:30 AM"},
		{720, "12:00 PM"},
		{780, "1:00 PM"},
		{1290, "9:30 PM"},
	}
	for _, tt := range tests {
		if got := Format12Hour(tt.minutes); got != tt.want {
			t.Errorf("Format12Hour(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"14:30", 870, false},
		{"2:30 PM", 870, false},
		{"2:30pm", 870, false},
		{"10 AM", 600, false},
		{"12 AM", 0, false},
		{"12 PM", 720, false},
		{"13 PM", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestComputeSlotsFullDay(t *testing.T) {
	// 2026-09-07 is a Monday.
	slots, err := ComputeSlots(monToSat, nil, 60, "2026-09-07")
	if err != nil {
		t.Fatalf("ComputeSlots returned error: %v", err)
	}
	want := []string{"6:00 AM", "7:00 AM", "8:00 AM", "9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("ComputeSlots = %v, want %v", slots, want)
	}
}

func TestComputeSlotsSkipsBookedIntervals(t *testing.T) {
	booked := []models.Interval{{Start: 600, End: 660}} // 10:00-11:00
	slots, err := ComputeSlots(monToSat, booked, 60, "2026-09-07")
	if err != nil {
		t.Fatalf("ComputeSlots returned error: %v", err)
	}
	for _, slot := range slots {
		if slot == "10:00 AM" {
			t.Errorf("ComputeSlots offered the booked 10:00 AM slot: %v", slots)
		}
	}
	found := false
	for _, slot := range slots {
		if slot == "11:00 AM" {
			found = true
		}
	}
	if !found {
		t.Errorf("ComputeSlots should offer 11:00 AM after the booked interval ends: %v", slots)
	}
}

func TestComputeSlotsPartialOverlapBlocks(t *testing.T) {
	// A 10:30-11:30 booking blocks both the 10:00 and 11:00 candidates for a
	// 60 minute service.
	booked := []models.Interval{{Start: 630, End: 690}}
	slots, err := ComputeSlots(monToSat, booked, 60, "2026-09-07")
	if err != nil {
		t.Fatalf("ComputeSlots returned error: %v", err)
	}
	for _, slot := range slots {
		if slot == "10:00 AM" || slot == "11:00 AM" {
			t.Errorf("ComputeSlots offered a slot overlapping the booking: %v", slots)
		}
	}
}

func TestComputeSlotsOffDay(t *testing.T) {
	// 2026-09-06 is a Sunday, outside the working days.
	slots, err := ComputeSlots(monToSat, nil, 60, "2026-09-06")
	if err != nil {
		t.Fatalf("ComputeSlots returned error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on an off day, got %v", slots)
	}
}

func TestComputeSlotsLongDuration(t *testing.T) {
	// A 240 minute service must end by 22:00, so the last start is 18:00.
	slots, err := ComputeSlots(monToSat, nil, 240, "2026-09-07")
	if err != nil {
		t.Fatalf("ComputeSlots returned error: %v", err)
	}
	if len(slots) != MaxSlots {
		t.Fatalf("expected %d slots, got %d: %v", MaxSlots, len(slots), slots)
	}
	if slots[0] != "6:00 AM" {
		t.Errorf("first slot = %q, want 6:00 AM", slots[0])
	}
}

func TestComputeSlotsValidation(t *testing.T) {
	var ve *ValidationError

	if _, err := ComputeSlots(monToSat, nil, 0, "2026-09-07"); !errors.As(err, &ve) {
		t.Errorf("zero duration: expected ValidationError, got %v", err)
	}
	if _, err := ComputeSlots(monToSat, nil, 60, "07/09/2026"); !errors.As(err, &ve) {
		t.Errorf("bad date: expected ValidationError, got %v", err)
	}

	broken := models.WorkingHours{Start: "late", End: "22:00", Days: monToSat.Days}
	if _, err := ComputeSlots(broken, nil, 60, "2026-09-07"); !errors.As(err, &ve) {
		t.Errorf("malformed working hours: expected ValidationError, got %v", err)
	}
}
