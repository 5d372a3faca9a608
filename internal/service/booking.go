package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/alejandrorivera22/great-travel/internal/model"
)

// newTicket builds an unpersisted ticket for a customer and flight.
// The id is a fresh random UUID, the price is the marked-up base price
// and the travel dates come from the configured strategy.  tourID is
// nil for standalone purchases.
func newTicket(dni string, fly *model.Flight, tourID *uint64, dates DateStrategy, now time.Time) *model.Ticket {
	departure, arrival := dates.TravelDates(now)
	return &model.Ticket{
		ID:            uuid.NewString(),
		CustomerDNI:   dni,
		FlyID:         fly.ID,
		TourID:        tourID,
		Price:         ChargedPrice(fly.Price),
		PurchaseDate:  now,
		DepartureDate: departure,
		ArrivalDate:   arrival,
	}
}

// newReservation builds an unpersisted reservation.  The stay starts on
// the booking day and ends totalDays later; totalDays is validated to
// [1,30] before this is reached.
func newReservation(dni string, hotel *model.Hotel, tourID *uint64, totalDays int, now time.Time) *model.Reservation {
	return &model.Reservation{
		ID:          uuid.NewString(),
		CustomerDNI: dni,
		HotelID:     hotel.ID,
		TourID:      tourID,
		Price:       ChargedPrice(hotel.Price),
		TotalDays:   totalDays,
		ReservedAt:  now,
		DateStart:   now,
		DateEnd:     now.AddDate(0, 0, totalDays),
	}
}
