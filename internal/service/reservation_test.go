package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrorivera22/great-travel/internal/repository"
)

func TestReservationCreate(t *testing.T) {
	store := newTestStore()
	reservations := NewReservationService(store, nil)
	ctx := context.Background()

	reservation, err := reservations.Create(ctx, testDNI, 1, 3)
	require.NoError(t, err)

	assert.NotEmpty(t, reservation.ID)
	assert.Equal(t, testDNI, reservation.CustomerDNI)
	assert.Equal(t, uint64(1), reservation.HotelID)
	assert.Nil(t, reservation.TourID)
	assert.Equal(t, "125", reservation.Price.String())
	assert.Equal(t, 3, reservation.TotalDays)
	assert.Equal(t, reservation.DateStart.AddDate(0, 0, 3), reservation.DateEnd)

	customer, err := store.CustomerByDNI(ctx, testDNI)
	require.NoError(t, err)
	assert.Equal(t, 1, customer.TotalLodgings)
}

func TestReservationCreateUnknownHotel(t *testing.T) {
	store := newTestStore()
	reservations := NewReservationService(store, nil)
	ctx := context.Background()

	_, err := reservations.Create(ctx, testDNI, 99, 3)
	assert.True(t, repository.IsNotFound(err))

	customer, err := store.CustomerByDNI(ctx, testDNI)
	require.NoError(t, err)
	assert.Equal(t, 0, customer.TotalLodgings)
}

func TestReservationUpdateRecomputes(t *testing.T) {
	store := newTestStore()
	reservations := NewReservationService(store, nil)
	ctx := context.Background()

	reservation, err := reservations.Create(ctx, testDNI, 1, 3)
	require.NoError(t, err)

	updated, err := reservations.Update(ctx, reservation.ID, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, reservation.ID, updated.ID)
	assert.Equal(t, uint64(2), updated.HotelID)
	assert.Equal(t, "50", updated.Price.String()) // 40.00 × 1.25
	assert.Equal(t, 7, updated.TotalDays)
	assert.Equal(t, updated.DateStart.AddDate(0, 0, 7), updated.DateEnd)
}

func TestReservationDelete(t *testing.T) {
	store := newTestStore()
	reservations := NewReservationService(store, nil)
	ctx := context.Background()

	reservation, err := reservations.Create(ctx, testDNI, 1, 3)
	require.NoError(t, err)
	require.NoError(t, reservations.Delete(ctx, reservation.ID))

	_, err = reservations.Read(ctx, reservation.ID)
	assert.True(t, repository.IsNotFound(err))
}

func TestReservationFindPrice(t *testing.T) {
	store := newTestStore()
	reservations := NewReservationService(store, nil)

	price, err := reservations.FindPrice(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "50", price.String())

	_, err = reservations.FindPrice(context.Background(), 99)
	assert.True(t, repository.IsNotFound(err))
}
