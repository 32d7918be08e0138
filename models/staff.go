package models

// WorkingHours describes when a staff member is on shift.
// Start and End are wall-clock times in "HH:MM" 24-hour form; Days holds
// full weekday names ("Monday", ...).
type WorkingHours struct {
	Start string   `bson:"start" json:"start"`
	End   string   `bson:"end" json:"end"`
	Days  []string `bson:"days" json:"days"`
}

// WorksOn reports whether the weekday name is part of the schedule.
func (wh WorkingHours) WorksOn(weekday string) bool {
	for _, d := range wh.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// StaffMember represents a stylist or technician. Reference data; only the
// availability flag changes over time.
type StaffMember struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Role         string       `bson:"role" json:"role"`
	Phone        string       `bson:"phone,omitempty" json:"-"`
	Specialties  []string     `bson:"specialties" json:"specialties"`
	WorkingHours WorkingHours `bson:"working_hours" json:"workingHours"`
	Image        string       `bson:"image_url,omitempty" json:"image,omitempty"`
	IsAvailable  bool         `bson:"is_available" json:"isAvailable"`
}

// HasSpecialty reports whether the member covers the given service category.
func (m StaffMember) HasSpecialty(category string) bool {
	for _, s := range m.Specialties {
		if s == category {
			return true
		}
	}
	return false
}
