package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"espuma/database"
	"espuma/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	bookingsColl     = "bookings"
	reservationsColl = "reservations"
)

// MongoBookingStore is the production BookingStore backed by MongoDB.
type MongoBookingStore struct {
	bookings     *mongo.Collection
	reservations *mongo.Collection
	client       *mongo.Client
}

// NewMongoBookingStore returns a BookingStore over the global Mongo client.
func NewMongoBookingStore() *MongoBookingStore {
	return &MongoBookingStore{
		bookings:     database.Collection(bookingsColl),
		reservations: database.Collection(reservationsColl),
		client:       database.MongoClient,
	}
}

func (s *MongoBookingStore) InsertBooking(ctx context.Context, b models.ConfirmedBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := s.bookings.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("error inserting booking %s: %w", b.ID, err)
	}
	return nil
}

func (s *MongoBookingStore) GetBooking(ctx context.Context, id string) (*models.ConfirmedBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var b models.ConfirmedBooking
	err := s.bookings.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching booking %s: %w", id, err)
	}
	return &b, nil
}

func (s *MongoBookingStore) ListConfirmedBookings(ctx context.Context, locationID, date string) ([]models.ConfirmedBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{
		"location_id": locationID,
		"date":        date,
		"status":      models.BookingStatusConfirmed,
	}
	cursor, err := s.bookings.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for %s on %s: %w", locationID, date, err)
	}
	defer cursor.Close(ctx)

	var out []models.ConfirmedBooking
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return out, nil
}

func (s *MongoBookingStore) InsertReservation(ctx context.Context, r models.TemporaryReservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := s.reservations.InsertOne(ctx, r); err != nil {
		return fmt.Errorf("error inserting reservation %s: %w", r.ID, err)
	}
	return nil
}

func (s *MongoBookingStore) GetReservation(ctx context.Context, id string) (*models.TemporaryReservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var r models.TemporaryReservation
	err := s.reservations.FindOne(ctx, bson.M{"id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching reservation %s: %w", id, err)
	}
	return &r, nil
}

// ListActiveReservations applies the expiry filter in the query itself, so an
// expired hold is treated as absent even before the sweep removes it.
func (s *MongoBookingStore) ListActiveReservations(ctx context.Context, locationID, date string, now time.Time) ([]models.TemporaryReservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{
		"location_id":    locationID,
		"date":           date,
		"reserved_until": bson.M{"$gt": now},
	}
	cursor, err := s.reservations.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations for %s on %s: %w", locationID, date, err)
	}
	defer cursor.Close(ctx)

	var out []models.TemporaryReservation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return out, nil
}

func (s *MongoBookingStore) DeleteReservation(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := s.reservations.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting reservation %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoBookingStore) DeleteReservationOwned(ctx context.Context, id, sessionID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := s.reservations.DeleteOne(ctx, bson.M{"id": id, "reserved_by": sessionID})
	if err != nil {
		return false, fmt.Errorf("error deleting reservation %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoBookingStore) DeleteSessionServiceReservations(ctx context.Context, sessionID, serviceID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"reserved_by": sessionID, "service_id": serviceID}
	if _, err := s.reservations.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("error replacing reservations for session %s: %w", sessionID, err)
	}
	return nil
}

func (s *MongoBookingStore) DeleteExpiredReservations(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := s.reservations.DeleteMany(ctx, bson.M{"reserved_until": bson.M{"$lt": now}})
	if err != nil {
		return 0, fmt.Errorf("error sweeping expired reservations: %w", err)
	}
	return res.DeletedCount, nil
}

// ConvertReservation runs the booking insert and reservation delete in one
// Mongo transaction so a confirmed slot can never coexist with its hold.
func (s *MongoBookingStore) ConvertReservation(ctx context.Context, reservationID string, b models.ConfirmedBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("error starting mongo session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.reservations.DeleteOne(sc, bson.M{"id": reservationID})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, fmt.Errorf("reservation %s no longer exists", reservationID)
		}
		if _, err := s.bookings.InsertOne(sc, b); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("error converting reservation %s: %w", reservationID, err)
	}
	return nil
}
