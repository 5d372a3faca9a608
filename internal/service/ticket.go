package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/queue"
	"github.com/alejandrorivera22/great-travel/internal/repository"
)

// TicketService handles standalone ticket purchases.  Tickets created
// through a tour go through TourService instead; only standalone
// purchases bump the customer's total_flights counter.
type TicketService struct {
	store  repository.Store
	dates  DateStrategy
	events EventPublisher
}

// NewTicketService wires a ticket service.  events may be nil.
func NewTicketService(store repository.Store, dates DateStrategy, events EventPublisher) *TicketService {
	return &TicketService{store: store, dates: dates, events: events}
}

// Create purchases one ticket for the customer on the given flight.
// The ticket row and the counter increment commit together.
func (s *TicketService) Create(ctx context.Context, dni string, flyID uint64) (*model.Ticket, error) {
	var ticket *model.Ticket
	err := s.store.Transact(ctx, func(tx repository.Store) error {
		customer, err := tx.CustomerByDNI(ctx, dni)
		if err != nil {
			return err
		}
		fly, err := tx.FlightByID(ctx, flyID)
		if err != nil {
			return err
		}
		ticket = newTicket(customer.DNI, fly, nil, s.dates, time.Now().UTC())
		if err := tx.CreateTicket(ctx, ticket); err != nil {
			return err
		}
		return tx.IncrementCustomerCounter(ctx, customer.DNI, repository.CounterFlights)
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.events, queue.BookingEvent{
		Kind:        queue.KindTicketPurchased,
		CustomerDNI: ticket.CustomerDNI,
		RefID:       ticket.ID,
		Price:       ticket.Price,
		At:          ticket.PurchaseDate,
	})
	return ticket, nil
}

// Read returns one ticket by id.
func (s *TicketService) Read(ctx context.Context, id string) (*model.Ticket, error) {
	return s.store.TicketByID(ctx, id)
}

// Update re-points an existing ticket at a (possibly different) flight,
// recomputing its price and travel dates.  The purchase date and tour
// membership are untouched.
func (s *TicketService) Update(ctx context.Context, id string, flyID uint64) (*model.Ticket, error) {
	var ticket *model.Ticket
	err := s.store.Transact(ctx, func(tx repository.Store) error {
		var err error
		ticket, err = tx.TicketByID(ctx, id)
		if err != nil {
			return err
		}
		fly, err := tx.FlightByID(ctx, flyID)
		if err != nil {
			return err
		}
		ticket.FlyID = fly.ID
		ticket.Price = ChargedPrice(fly.Price)
		ticket.DepartureDate, ticket.ArrivalDate = s.dates.TravelDates(time.Now().UTC())
		return tx.UpdateTicket(ctx, ticket)
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// Delete removes a ticket.  The owning customer's counter stays as is.
func (s *TicketService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteTicket(ctx, id)
}

// FindPrice quotes the charged price for a flight without creating
// anything.
func (s *TicketService) FindPrice(ctx context.Context, flyID uint64) (decimal.Decimal, error) {
	fly, err := s.store.FlightByID(ctx, flyID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return ChargedPrice(fly.Price), nil
}
