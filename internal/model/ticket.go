package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket records a purchased seat on a flight, stored in the `tickets`
// table with a random UUID primary key.  TourID is nil for standalone
// purchases; when a ticket is detached from a tour the reference is
// cleared but the row survives.
//
// Fields:
//  ID            – UUID string primary key.
//  CustomerDNI   – owning customer.
//  FlyID         – referenced flight.
//  TourID        – owning tour, nil when standalone.
//  Price         – charged price (flight base price × markup).
//  PurchaseDate  – date the ticket was created.
//  DepartureDate – assigned departure date.
//  ArrivalDate   – assigned arrival date.
type Ticket struct {
	ID            string          // tickets.id
	CustomerDNI   string          // tickets.customer_dni
	FlyID         uint64          // tickets.fly_id
	TourID        *uint64         // tickets.tour_id (nullable)
	Price         decimal.Decimal // tickets.price
	PurchaseDate  time.Time       // tickets.purchase_date
	DepartureDate time.Time       // tickets.departure_date
	ArrivalDate   time.Time       // tickets.arrival_date
}
