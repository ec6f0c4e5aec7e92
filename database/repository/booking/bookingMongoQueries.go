// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ManasaGone/BookingService/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a booking by its unique ID. A missing document is not an
// error; it is reported as a nil booking.
func (r *MongoBookingRepo) GetByID(id int64) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"bookingId": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %d: %w", id, err)
	}
	return &booking, nil
}

// GetAll retrieves all booking documents.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return decodeBookings(ctx, cursor)
}

// GetByCustomerID retrieves all bookings made by the given customer.
func (r *MongoBookingRepo) GetByCustomerID(customerID int) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for customer %d: %w", customerID, err)
	}
	return decodeBookings(ctx, cursor)
}

// GetByVehicleNo retrieves all bookings for the given vehicle number.
func (r *MongoBookingRepo) GetByVehicleNo(vehicleNo string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"vehicleNo": vehicleNo})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for vehicle %s: %w", vehicleNo, err)
	}
	return decodeBookings(ctx, cursor)
}

func decodeBookings(ctx context.Context, cursor *mongo.Cursor) ([]models.Booking, error) {
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}
