package models

import "fmt"

// PriceRange is an inclusive price band in KES.
type PriceRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

// Service represents one bookable salon service. Immutable reference data.
type Service struct {
	ID              string     `bson:"id" json:"id"`
	Name            string     `bson:"name" json:"name"`
	Category        string     `bson:"category" json:"category"`
	Price           PriceRange `bson:"price" json:"price"`
	DurationMinutes int        `bson:"duration_minutes" json:"durationMinutes"`
	Description     string     `bson:"description" json:"description"`
	IsActive        bool       `bson:"is_active" json:"-"`
}

// Service categories offered across both locations.
const (
	CategoryHairStyling  = "Hair Styling"
	CategoryHairBraiding = "Hair Braiding"
	CategoryTreatment    = "Hair Treatment"
	CategoryRelaxing     = "Hair Relaxing"
	CategoryNails        = "Nail Services"
)

// Duration renders the duration the way the site displays it, e.g. "1 hour 30 mins".
func (s Service) Duration() string {
	return FormatDuration(s.DurationMinutes)
}

// FormatDuration converts minutes to a human-readable duration string.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	rem := minutes % 60
	out := ""
	if hours > 0 {
		out = fmt.Sprintf("%d hour", hours)
		if hours != 1 {
			out += "s"
		}
	}
	if rem > 0 {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%d mins", rem)
	}
	if out == "" {
		out = "0 mins"
	}
	return out
}

// ServiceView is the wire shape for GET /services.
type ServiceView struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Price           PriceRange `json:"price"`
	Duration        string     `json:"duration"`
	DurationMinutes int        `json:"durationMinutes"`
	Description     string     `json:"description"`
}

// View converts a Service into its wire shape.
func (s Service) View() ServiceView {
	return ServiceView{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		Price:           s.Price,
		Duration:        s.Duration(),
		DurationMinutes: s.DurationMinutes,
		Description:     s.Description,
	}
}
