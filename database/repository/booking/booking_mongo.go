package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"geecurly/database"
	"geecurly/models"
	"geecurly/services/availability"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "booking_date", Value: 1}, {Key: "staff_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}

// activeStatuses are the statuses that hold a slot against new bookings.
var activeStatuses = []string{models.StatusPending, models.StatusConfirmed}

// CreateIfNoConflict re-checks the slot and inserts the booking inside a
// single transaction, so two racing writers for the same interval cannot both
// succeed.
func (r *MongoBookingRepo) CreateIfNoConflict(ctx context.Context, booking *models.Booking) error {
	startMin, err := availability.TimeToMinutes(booking.Time)
	if err != nil {
		return fmt.Errorf("invalid booking time %q: %w", booking.Time, err)
	}
	endMin, err := availability.TimeToMinutes(booking.EndTime)
	if err != nil {
		return fmt.Errorf("invalid booking end time %q: %w", booking.EndTime, err)
	}
	requested := models.Interval{Start: startMin, End: endMin}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"staff_id":     booking.StaffID,
			"booking_date": booking.Date,
			"status":       bson.M{"$in": activeStatuses},
		}
		cursor, err := r.coll.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		var existing []models.Booking
		if err := cursor.All(sc, &existing); err != nil {
			return fmt.Errorf("failed to decode existing bookings: %w", err)
		}
		for _, other := range existing {
			otherStart, err := availability.TimeToMinutes(other.Time)
			if err != nil {
				continue
			}
			otherEnd, err := availability.TimeToMinutes(other.EndTime)
			if err != nil {
				continue
			}
			if requested.Overlaps(models.Interval{Start: otherStart, End: otherEnd}) {
				return ErrSlotConflict
			}
		}
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotConflict {
			return ErrSlotConflict
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}

// GetByID returns the booking with the given id, or nil when absent.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListByStaffDate returns bookings for one staff member on one date filtered
// by status, ordered by start time.
func (r *MongoBookingRepo) ListByStaffDate(staffID, date string, statuses []string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"staff_id":     staffID,
		"booking_date": date,
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	opts := options.Find().SetSort(bson.D{{Key: "booking_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// ListAll returns every booking, newest first.
func (r *MongoBookingRepo) ListAll() ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// UpdateFields applies the set fields of update and bumps updated_at,
// returning the updated booking. Nil is returned when the id is unknown.
func (r *MongoBookingRepo) UpdateFields(id string, update models.BookingUpdate) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return &booking, nil
}
