package catalogRepo

import (
	"fmt"
	"time"

	"geecurly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var weekdaysMonSat = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func seedServices() []models.Service {
	return []models.Service{
		{
			ID:              uuid.New().String(),
			Name:            "Basic Haircut & Styling",
			Category:        models.CategoryHairStyling,
			Price:           models.PriceRange{Min: 1500, Max: 2500},
			DurationMinutes: 90,
			Description:     "Professional haircut with styling",
			IsActive:        true,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Professional Blow Dry",
			Category:        models.CategoryHairStyling,
			Price:           models.PriceRange{Min: 1200, Max: 2000},
			DurationMinutes: 60,
			Description:     "Wash, blow dry and finish",
			IsActive:        true,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Box Braids",
			Category:        models.CategoryHairBraiding,
			Price:           models.PriceRange{Min: 3000, Max: 6000},
			DurationMinutes: 240,
			Description:     "Beautiful protective box braids",
			IsActive:        true,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Cornrows",
			Category:        models.CategoryHairBraiding,
			Price:           models.PriceRange{Min: 2000, Max: 4000},
			DurationMinutes: 180,
			Description:     "Neat cornrow patterns for any occasion",
			IsActive:        true,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Deep Conditioning Treatment",
			Category:        models.CategoryTreatment,
			Price:           models.PriceRange{Min: 1500, Max: 2500},
			DurationMinutes: 90,
			Description:     "Intensive moisture treatment",
			IsActive:        true,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Keratin Treatment",
			Category:        models.CategoryRelaxing,
			Price:           models.PriceRange{Min: 3500, Max: 6500},
			DurationMinutes: 150,
			Description:     "Smoothing keratin straightening treatment",
			IsActive:        true,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Gel Manicure",
			Category:        models.CategoryNails,
			Price:           models.PriceRange{Min: 1200, Max: 1800},
			DurationMinutes: 75,
			Description:     "Long-lasting gel manicure",
			IsActive:        true,
		},
	}
}

func seedStaff() []models.StaffMember {
	return []models.StaffMember{
		{
			ID:          uuid.New().String(),
			Name:        "Catherine",
			Role:        "Senior Stylist & Owner",
			Phone:       "0718779129",
			Specialties: []string{models.CategoryHairStyling, models.CategoryTreatment, models.CategoryRelaxing},
			WorkingHours: models.WorkingHours{
				Start: "06:00",
				End:   "22:00",
				Days:  weekdaysMonSat,
			},
			IsAvailable: true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Njeri",
			Role:        "Hair Specialist",
			Phone:       "0712345678",
			Specialties: []string{models.CategoryHairStyling, models.CategoryTreatment, models.CategoryRelaxing},
			WorkingHours: models.WorkingHours{
				Start: "06:00",
				End:   "22:00",
				Days:  weekdaysMonSat,
			},
			IsAvailable: true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Ann",
			Role:        "Braiding Expert",
			Phone:       "0723456789",
			Specialties: []string{models.CategoryHairBraiding},
			WorkingHours: models.WorkingHours{
				Start: "06:00",
				End:   "22:00",
				Days:  weekdaysMonSat,
			},
			IsAvailable: true,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Rachael",
			Role:        "Nail Technician",
			Phone:       "0734567890",
			Specialties: []string{models.CategoryNails},
			WorkingHours: models.WorkingHours{
				Start: "06:00",
				End:   "22:00",
				Days:  append(append([]string{}, weekdaysMonSat...), "Sunday"),
			},
			IsAvailable: true,
		},
	}
}

// EnsureSeedData inserts the reference catalog when the collections are empty.
// Existing data is never touched.
func (r *MongoCatalogRepo) EnsureSeedData() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	count, err := r.services.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if count == 0 {
		services := seedServices()
		docs := make([]interface{}, 0, len(services))
		for _, svc := range services {
			docs = append(docs, svc)
		}
		if _, err := r.services.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed services: %w", err)
		}
	}

	count, err = r.staff.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count staff: %w", err)
	}
	if count == 0 {
		members := seedStaff()
		docs := make([]interface{}, 0, len(members))
		for _, member := range members {
			docs = append(docs, member)
		}
		if _, err := r.staff.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed staff: %w", err)
		}
	}
	return nil
}
