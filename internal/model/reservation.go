package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation records a booked hotel stay, stored in the `reservations`
// table with a random UUID primary key.  The stay always starts on the
// booking day and runs TotalDays days (bounded 1–30 at the API).
// Lifecycle mirrors Ticket: TourID is nil for standalone bookings and is
// cleared when the reservation is detached from a tour.
//
// Fields:
//  ID          – UUID string primary key.
//  CustomerDNI – owning customer.
//  HotelID     – referenced hotel.
//  TourID      – owning tour, nil when standalone.
//  Price       – charged price (hotel base price × markup).
//  TotalDays   – stay length in days.
//  ReservedAt  – booking timestamp.
//  DateStart   – first day of the stay.
//  DateEnd     – DateStart + TotalDays.
type Reservation struct {
	ID          string          // reservations.id
	CustomerDNI string          // reservations.customer_dni
	HotelID     uint64          // reservations.hotel_id
	TourID      *uint64         // reservations.tour_id (nullable)
	Price       decimal.Decimal // reservations.price
	TotalDays   int             // reservations.total_days
	ReservedAt  time.Time       // reservations.reserved_at
	DateStart   time.Time       // reservations.date_start
	DateEnd     time.Time       // reservations.date_end
}
