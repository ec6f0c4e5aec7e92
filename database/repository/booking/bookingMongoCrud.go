// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"fmt"
	"time"

	"github.com/ManasaGone/BookingService/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save inserts a new booking document when the booking carries no ID yet,
// assigning the next identifier, and otherwise replaces the document at that
// ID field-for-field.
func (r *MongoBookingRepo) Save(booking *models.Booking) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if booking.BookingID == 0 {
		id, err := r.nextBookingID()
		if err != nil {
			return nil, err
		}
		booking.BookingID = id

		if _, err := r.coll.InsertOne(ctx, booking); err != nil {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
		return booking, nil
	}

	filter := bson.M{"bookingId": booking.BookingID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, booking, opts); err != nil {
		return nil, fmt.Errorf("failed to update booking with id %d: %w", booking.BookingID, err)
	}
	return booking, nil
}
