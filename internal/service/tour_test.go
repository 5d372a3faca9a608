package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrorivera22/great-travel/internal/repository"
)

func newTourService(store *repository.MemStore) *TourService {
	return NewTourService(store, testDates, nil)
}

func TestTourCreate(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)
	ctx := context.Background()

	tour, err := tours.Create(ctx, testDNI, []uint64{1, 2}, map[uint64]int{1: 2, 2: 3})
	require.NoError(t, err)

	assert.Len(t, tour.TicketIDs, 2)
	assert.Len(t, tour.ReservationIDs, 2)

	customer, err := store.CustomerByDNI(ctx, testDNI)
	require.NoError(t, err)
	assert.Equal(t, 1, customer.TotalTours)
	// Tour children never move the per-item counters.
	assert.Equal(t, 0, customer.TotalFlights)
	assert.Equal(t, 0, customer.TotalLodgings)

	// Every child carries the tour back-reference.
	for _, id := range tour.TicketIDs {
		ticket, err := store.TicketByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, ticket.TourID)
		assert.Equal(t, tour.ID, *ticket.TourID)
	}
	for _, id := range tour.ReservationIDs {
		reservation, err := store.ReservationByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, reservation.TourID)
		assert.Equal(t, tour.ID, *reservation.TourID)
	}
}

func TestTourCreatePricesChildren(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)
	ctx := context.Background()

	tour, err := tours.Create(ctx, testDNI, []uint64{1}, map[uint64]int{1: 2})
	require.NoError(t, err)
	require.Len(t, tour.TicketIDs, 1)
	require.Len(t, tour.ReservationIDs, 1)

	ticket, err := store.TicketByID(ctx, tour.TicketIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "62.5", ticket.Price.String())

	reservation, err := store.ReservationByID(ctx, tour.ReservationIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "125", reservation.Price.String())
	assert.Equal(t, 2, reservation.TotalDays)
	assert.Equal(t, reservation.DateStart.AddDate(0, 0, 2), reservation.DateEnd)
}

func TestTourCreateAtomicOnMissingFlight(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)
	ctx := context.Background()

	_, err := tours.Create(ctx, testDNI, []uint64{1, 99}, map[uint64]int{1: 2})
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))

	// Nothing was persisted and the counter did not move.
	customer, err := store.CustomerByDNI(ctx, testDNI)
	require.NoError(t, err)
	assert.Equal(t, 0, customer.TotalTours)
	_, err = store.TourByID(ctx, 1)
	assert.True(t, repository.IsNotFound(err))
	ids, err := store.TicketIDsByTour(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTourCreateAtomicOnMissingHotel(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)
	ctx := context.Background()

	_, err := tours.Create(ctx, testDNI, []uint64{1}, map[uint64]int{99: 2})
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))

	customer, err := store.CustomerByDNI(ctx, testDNI)
	require.NoError(t, err)
	assert.Equal(t, 0, customer.TotalTours)
}

func TestTourCreateUnknownCustomer(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)

	_, err := tours.Create(context.Background(), "NOPE000000000000", []uint64{1}, map[uint64]int{1: 2})
	assert.True(t, repository.IsNotFound(err))
}

func TestTourAddThenRemoveTicketRoundTrip(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)
	ctx := context.Background()

	tour, err := tours.Create(ctx, testDNI, []uint64{1}, map[uint64]int{1: 2})
	require.NoError(t, err)
	before := append([]string(nil), tour.TicketIDs...)

	ticketID, err := tours.AddTicket(ctx, tour.ID, 2)
	require.NoError(t, err)
	require.NotEmpty(t, ticketID)

	mid, err := tours.Read(ctx, tour.ID)
	require.NoError(t, err)
	assert.Len(t, mid.TicketIDs, 2)
	assert.Contains(t, mid.TicketIDs, ticketID)

	require.NoError(t, tours.RemoveTicket(ctx, tour.ID, ticketID))

	after, err := tours.Read(ctx, tour.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, before, after.TicketIDs)

	// The removed ticket survives standalone with its reference cleared.
	ticket, err := store.TicketByID(ctx, ticketID)
	require.NoError(t, err)
	assert.Nil(t, ticket.TourID)
}

func TestTourAddTicketDoesNotBumpCounters(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)
	ctx := context.Background()

	tour, err := tours.Create(ctx, testDNI, []uint64{1}, map[uint64]int{1: 2})
	require.NoError(t, err)

	_, err = tours.AddTicket(ctx, tour.ID, 2)
	require.NoError(t, err)
	_, err = tours.AddReservation(ctx, tour.ID, 2, 5)
	require.NoError(t, err)

	customer, err := store.CustomerByDNI(ctx, testDNI)
	require.NoError(t, err)
	assert.Equal(t, 1, customer.TotalTours)
	assert.Equal(t, 0, customer.TotalFlights)
	assert.Equal(t, 0, customer.TotalLodgings)
}

func TestTourRemoveIsIdempotent(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)
	ctx := context.Background()

	tour, err := tours.Create(ctx, testDNI, []uint64{1}, map[uint64]int{1: 2})
	require.NoError(t, err)

	assert.NoError(t, tours.RemoveTicket(ctx, tour.ID, "not-a-member"))
	assert.NoError(t, tours.RemoveReservation(ctx, tour.ID, "not-a-member"))

	after, err := tours.Read(ctx, tour.ID)
	require.NoError(t, err)
	assert.Len(t, after.TicketIDs, 1)
	assert.Len(t, after.ReservationIDs, 1)
}

func TestTourRemoveFromUnknownTour(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)

	err := tours.RemoveTicket(context.Background(), 42, "whatever")
	assert.True(t, repository.IsNotFound(err))
}

func TestTourDeleteDetachesChildren(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)
	ctx := context.Background()

	tour, err := tours.Create(ctx, testDNI, []uint64{1, 2}, map[uint64]int{1: 2})
	require.NoError(t, err)

	require.NoError(t, tours.Delete(ctx, tour.ID))

	_, err = tours.Read(ctx, tour.ID)
	assert.True(t, repository.IsNotFound(err))

	for _, id := range tour.TicketIDs {
		ticket, err := store.TicketByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, ticket.TourID)
	}
	for _, id := range tour.ReservationIDs {
		reservation, err := store.ReservationByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, reservation.TourID)
	}

	// Deleting does not roll the counter back.
	customer, err := store.CustomerByDNI(ctx, testDNI)
	require.NoError(t, err)
	assert.Equal(t, 1, customer.TotalTours)
}

func TestTourReadUnknown(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)

	_, err := tours.Read(context.Background(), 42)
	assert.True(t, repository.IsNotFound(err))
}

func TestTourDeleteUnknown(t *testing.T) {
	store := newTestStore()
	tours := newTourService(store)

	err := tours.Delete(context.Background(), 42)
	assert.True(t, repository.IsNotFound(err))
}
