package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"geecurly/database"
	"geecurly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services *mongo.Collection
	staff    *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &MongoCatalogRepo{
		services: db.Collection("services"),
		staff:    db.Collection("staff"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.services.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create services index: %w", err)
	}
	if _, err := r.staff.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create staff index: %w", err)
	}
	return nil
}

// GetServices returns all active services ordered by category then name.
func (r *MongoCatalogRepo) GetServices() ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.services.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// GetServiceByID returns the service with the given id, or nil when absent.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// GetStaff returns all available staff members ordered by name.
func (r *MongoCatalogRepo) GetStaff() ([]models.StaffMember, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.staff.Find(ctx, bson.M{"is_available": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.StaffMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return members, nil
}

// GetStaffByID returns the staff member with the given id, or nil when absent.
func (r *MongoCatalogRepo) GetStaffByID(id string) (*models.StaffMember, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var member models.StaffMember
	if err := r.staff.FindOne(ctx, bson.M{"id": id}).Decode(&member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &member, nil
}

// GetStaffBySpecialty returns available staff whose specialties include the
// given category, ordered by name.
func (r *MongoCatalogRepo) GetStaffBySpecialty(category string) ([]models.StaffMember, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"is_available": true, "specialties": category}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.staff.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff for category %s: %w", category, err)
	}
	defer cursor.Close(ctx)

	var members []models.StaffMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return members, nil
}
