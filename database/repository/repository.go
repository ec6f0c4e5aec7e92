package repository

import (
	bookingRepo "github.com/ManasaGone/BookingService/database/repository/booking"
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo
