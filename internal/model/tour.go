package model

import "time"

// Tour is an aggregate bundling a customer's tickets and reservations
// purchased together.  The row itself only carries the owner; membership
// lives on the children as tickets.tour_id / reservations.tour_id, and
// the aggregate service keeps both sides consistent on every add/remove.
//
// Fields:
//  ID             – surrogate primary key.
//  CustomerDNI    – owning customer, immutable after creation.
//  TicketIDs      – ids of member tickets.
//  ReservationIDs – ids of member reservations.
//  CreatedAt      – timestamp of creation.
type Tour struct {
	ID             uint64    // tours.id
	CustomerDNI    string    // tours.customer_dni
	TicketIDs      []string  // tickets with tour_id = ID
	ReservationIDs []string  // reservations with tour_id = ID
	CreatedAt      time.Time // tours.created_at
}
