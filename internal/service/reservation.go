package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/queue"
	"github.com/alejandrorivera22/great-travel/internal/repository"
)

// ReservationService handles standalone hotel bookings, the mirror of
// TicketService.  Only standalone bookings bump total_lodgings.
type ReservationService struct {
	store  repository.Store
	events EventPublisher
}

// NewReservationService wires a reservation service.  events may be nil.
func NewReservationService(store repository.Store, events EventPublisher) *ReservationService {
	return &ReservationService{store: store, events: events}
}

// Create books a stay of totalDays at the given hotel.  totalDays is
// validated to [1,30] at the request boundary.
func (s *ReservationService) Create(ctx context.Context, dni string, hotelID uint64, totalDays int) (*model.Reservation, error) {
	var reservation *model.Reservation
	err := s.store.Transact(ctx, func(tx repository.Store) error {
		customer, err := tx.CustomerByDNI(ctx, dni)
		if err != nil {
			return err
		}
		hotel, err := tx.HotelByID(ctx, hotelID)
		if err != nil {
			return err
		}
		reservation = newReservation(customer.DNI, hotel, nil, totalDays, time.Now().UTC())
		if err := tx.CreateReservation(ctx, reservation); err != nil {
			return err
		}
		return tx.IncrementCustomerCounter(ctx, customer.DNI, repository.CounterLodgings)
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.events, queue.BookingEvent{
		Kind:        queue.KindReservationBooked,
		CustomerDNI: reservation.CustomerDNI,
		RefID:       reservation.ID,
		Price:       reservation.Price,
		At:          reservation.ReservedAt,
	})
	return reservation, nil
}

// Read returns one reservation by id.
func (s *ReservationService) Read(ctx context.Context, id string) (*model.Reservation, error) {
	return s.store.ReservationByID(ctx, id)
}

// Update re-points a reservation at a hotel and stay length,
// recomputing price and the date range from today.
func (s *ReservationService) Update(ctx context.Context, id string, hotelID uint64, totalDays int) (*model.Reservation, error) {
	var reservation *model.Reservation
	err := s.store.Transact(ctx, func(tx repository.Store) error {
		var err error
		reservation, err = tx.ReservationByID(ctx, id)
		if err != nil {
			return err
		}
		hotel, err := tx.HotelByID(ctx, hotelID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		reservation.HotelID = hotel.ID
		reservation.Price = ChargedPrice(hotel.Price)
		reservation.TotalDays = totalDays
		reservation.ReservedAt = now
		reservation.DateStart = now
		reservation.DateEnd = now.AddDate(0, 0, totalDays)
		return tx.UpdateReservation(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// Delete removes a reservation.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteReservation(ctx, id)
}

// FindPrice quotes the charged nightly price for a hotel.
func (s *ReservationService) FindPrice(ctx context.Context, hotelID uint64) (decimal.Decimal, error) {
	hotel, err := s.store.HotelByID(ctx, hotelID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return ChargedPrice(hotel.Price), nil
}
