// Package queue defines the booking event schema shared by the AMQP
// publisher and the background consumer.
package queue

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event kinds published on the booking queue.
const (
	KindTicketPurchased   = "ticket.purchased"
	KindReservationBooked = "reservation.booked"
	KindTourCreated       = "tour.created"
)

// QueueName is the durable queue booking events are published to.
const QueueName = "booking.events"

// BookingEvent is the JSON payload emitted after a successful booking
// write.  RefID is the id of the created record: a UUID for tickets and
// reservations, a numeric id rendered as text for tours.
type BookingEvent struct {
	Kind        string          `json:"kind"`
	CustomerDNI string          `json:"customer_dni"`
	RefID       string          `json:"ref_id"`
	Price       decimal.Decimal `json:"price"`
	At          time.Time       `json:"at"`
}
