package service

import (
	"context"
	"strconv"
	"time"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/queue"
	"github.com/alejandrorivera22/great-travel/internal/repository"
)

// TourService manages the tour aggregate: a customer's tickets and
// reservations purchased as one bundle.  Every mutation runs inside a
// single transaction with the tour row locked, so two concurrent
// add/remove cycles on the same tour serialize instead of losing
// updates.  Membership lives on the children (their tour reference);
// this service is the only write path that touches it.
type TourService struct {
	store  repository.Store
	dates  DateStrategy
	events EventPublisher
}

// NewTourService wires a tour service.  events may be nil.
func NewTourService(store repository.Store, dates DateStrategy, events EventPublisher) *TourService {
	return &TourService{store: store, dates: dates, events: events}
}

// Create bundles one ticket per flight id and one reservation per hotel
// stay into a new tour for the customer.  Resolution is fail-fast: the
// customer and every referenced flight and hotel are looked up before
// the first write, so an unresolvable id aborts with nothing persisted.
// The customer's total_tours counter moves by exactly one per tour, not
// per child, and the per-item counters are untouched.
func (s *TourService) Create(ctx context.Context, dni string, flyIDs []uint64, hotelStays map[uint64]int) (*model.Tour, error) {
	var tour *model.Tour
	err := s.store.Transact(ctx, func(tx repository.Store) error {
		customer, err := tx.CustomerByDNI(ctx, dni)
		if err != nil {
			return err
		}
		flights := make([]*model.Flight, 0, len(flyIDs))
		for _, id := range flyIDs {
			fly, err := tx.FlightByID(ctx, id)
			if err != nil {
				return err
			}
			flights = append(flights, fly)
		}
		type stay struct {
			hotel *model.Hotel
			days  int
		}
		stays := make([]stay, 0, len(hotelStays))
		for id, days := range hotelStays {
			hotel, err := tx.HotelByID(ctx, id)
			if err != nil {
				return err
			}
			stays = append(stays, stay{hotel: hotel, days: days})
		}

		tourID, err := tx.CreateTour(ctx, customer.DNI)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		tour = &model.Tour{ID: tourID, CustomerDNI: customer.DNI, CreatedAt: now}
		for _, fly := range flights {
			ticket := newTicket(customer.DNI, fly, &tourID, s.dates, now)
			if err := tx.CreateTicket(ctx, ticket); err != nil {
				return err
			}
			tour.TicketIDs = append(tour.TicketIDs, ticket.ID)
		}
		for _, st := range stays {
			reservation := newReservation(customer.DNI, st.hotel, &tourID, st.days, now)
			if err := tx.CreateReservation(ctx, reservation); err != nil {
				return err
			}
			tour.ReservationIDs = append(tour.ReservationIDs, reservation.ID)
		}
		return tx.IncrementCustomerCounter(ctx, customer.DNI, repository.CounterTours)
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.events, queue.BookingEvent{
		Kind:        queue.KindTourCreated,
		CustomerDNI: tour.CustomerDNI,
		RefID:       strconv.FormatUint(tour.ID, 10),
		At:          tour.CreatedAt,
	})
	return tour, nil
}

// Read returns a tour with the id sets of its children.  Child details
// are fetched through the ticket and reservation endpoints.
func (s *TourService) Read(ctx context.Context, id uint64) (*model.Tour, error) {
	return s.store.TourByID(ctx, id)
}

// Delete detaches every child of the tour and then removes the tour
// row.  The children survive as standalone tickets and reservations;
// no counter is decremented.
func (s *TourService) Delete(ctx context.Context, id uint64) error {
	return s.store.Transact(ctx, func(tx repository.Store) error {
		if _, err := tx.TourForUpdate(ctx, id); err != nil {
			return err
		}
		if err := tx.DetachTourChildren(ctx, id); err != nil {
			return err
		}
		return tx.DeleteTour(ctx, id)
	})
}

// AddTicket creates one ticket on the given flight for the tour's
// customer and attaches it to the tour, returning the new ticket id.
// Post-creation adds do not move any customer counter.
func (s *TourService) AddTicket(ctx context.Context, tourID, flyID uint64) (string, error) {
	var ticketID string
	err := s.store.Transact(ctx, func(tx repository.Store) error {
		tour, err := tx.TourForUpdate(ctx, tourID)
		if err != nil {
			return err
		}
		fly, err := tx.FlightByID(ctx, flyID)
		if err != nil {
			return err
		}
		ticket := newTicket(tour.CustomerDNI, fly, &tour.ID, s.dates, time.Now().UTC())
		if err := tx.CreateTicket(ctx, ticket); err != nil {
			return err
		}
		ticketID = ticket.ID
		return nil
	})
	return ticketID, err
}

// RemoveTicket detaches a ticket from the tour if it is a member.  The
// ticket keeps existing standalone.  Removing an id that is not in the
// tour's set is a no-op, not an error.
func (s *TourService) RemoveTicket(ctx context.Context, tourID uint64, ticketID string) error {
	return s.store.Transact(ctx, func(tx repository.Store) error {
		tour, err := tx.TourForUpdate(ctx, tourID)
		if err != nil {
			return err
		}
		if !contains(tour.TicketIDs, ticketID) {
			return nil
		}
		return tx.SetTicketTour(ctx, ticketID, nil)
	})
}

// AddReservation creates one reservation at the given hotel for the
// tour's customer and attaches it, returning the new reservation id.
func (s *TourService) AddReservation(ctx context.Context, tourID, hotelID uint64, totalDays int) (string, error) {
	var reservationID string
	err := s.store.Transact(ctx, func(tx repository.Store) error {
		tour, err := tx.TourForUpdate(ctx, tourID)
		if err != nil {
			return err
		}
		hotel, err := tx.HotelByID(ctx, hotelID)
		if err != nil {
			return err
		}
		reservation := newReservation(tour.CustomerDNI, hotel, &tour.ID, totalDays, time.Now().UTC())
		if err := tx.CreateReservation(ctx, reservation); err != nil {
			return err
		}
		reservationID = reservation.ID
		return nil
	})
	return reservationID, err
}

// RemoveReservation detaches a reservation from the tour, mirroring
// RemoveTicket's idempotence.
func (s *TourService) RemoveReservation(ctx context.Context, tourID uint64, reservationID string) error {
	return s.store.Transact(ctx, func(tx repository.Store) error {
		tour, err := tx.TourForUpdate(ctx, tourID)
		if err != nil {
			return err
		}
		if !contains(tour.ReservationIDs, reservationID) {
			return nil
		}
		return tx.SetReservationTour(ctx, reservationID, nil)
	})
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
