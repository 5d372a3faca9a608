package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/repository"
)

func newCatalogStore() *repository.MemStore {
	store := repository.NewMemStore()
	prices := []string{"30.00", "10.00", "20.00", "40.00", "50.00"}
	for i, p := range prices {
		store.SeedFlight(model.Flight{
			ID:          uint64(i + 1),
			OriginName:  "A",
			DestinyName: "B",
			AeroLine:    model.LocalAir,
			Price:       decimal.RequireFromString(p),
		})
	}
	ratings := []int{1, 2, 3, 4, 5}
	for i, r := range ratings {
		store.SeedHotel(model.Hotel{
			ID:     uint64(i + 1),
			Name:   "H",
			Rating: r,
			Price:  decimal.RequireFromString(prices[i]),
		})
	}
	return store
}

func TestCatalogFlightsSorting(t *testing.T) {
	catalog := NewCatalogService(newCatalogStore())
	ctx := context.Background()

	asc, err := catalog.Flights(ctx, 0, 10, repository.SortLower)
	require.NoError(t, err)
	require.Len(t, asc, 5)
	assert.Equal(t, "10", asc[0].Price.String())
	assert.Equal(t, "50", asc[4].Price.String())

	desc, err := catalog.Flights(ctx, 0, 10, repository.SortUpper)
	require.NoError(t, err)
	assert.Equal(t, "50", desc[0].Price.String())

	unsorted, err := catalog.Flights(ctx, 0, 10, repository.SortNone)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), unsorted[0].ID)
}

func TestCatalogFlightsPaging(t *testing.T) {
	catalog := NewCatalogService(newCatalogStore())
	ctx := context.Background()

	first, err := catalog.Flights(ctx, 0, 2, repository.SortNone)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	last, err := catalog.Flights(ctx, 2, 2, repository.SortNone)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	beyond, err := catalog.Flights(ctx, 5, 2, repository.SortNone)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestCatalogPriceFilters(t *testing.T) {
	catalog := NewCatalogService(newCatalogStore())
	ctx := context.Background()

	cheap, err := catalog.FlightsCheaperThan(ctx, decimal.RequireFromString("30.00"))
	require.NoError(t, err)
	assert.Len(t, cheap, 2) // 10 and 20; the bound is exclusive

	between, err := catalog.HotelsBetweenPrice(ctx,
		decimal.RequireFromString("20.00"), decimal.RequireFromString("40.00"))
	require.NoError(t, err)
	assert.Len(t, between, 3) // 20, 30 and 40; both bounds inclusive
}

func TestCatalogFlightsByRoute(t *testing.T) {
	catalog := NewCatalogService(newCatalogStore())

	flights, err := catalog.FlightsByRoute(context.Background(), "A", "B")
	require.NoError(t, err)
	assert.Len(t, flights, 5)

	none, err := catalog.FlightsByRoute(context.Background(), "A", "C")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCatalogRatingClamp(t *testing.T) {
	catalog := NewCatalogService(newCatalogStore())
	ctx := context.Background()

	// rating=6 behaves exactly like rating=4.
	high, err := catalog.HotelsRatedAbove(ctx, 6)
	require.NoError(t, err)
	atFour, err := catalog.HotelsRatedAbove(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, atFour, high)
	require.Len(t, high, 1)
	assert.Equal(t, 5, high[0].Rating)

	// rating=0 behaves exactly like rating=1.
	low, err := catalog.HotelsRatedAbove(ctx, 0)
	require.NoError(t, err)
	atOne, err := catalog.HotelsRatedAbove(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, atOne, low)
	assert.Len(t, low, 4)
}
