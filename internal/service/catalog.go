package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/repository"
)

// Rating filters are clamped to this range regardless of the nominal
// 1–5 rating domain.
const (
	minRatingFilter = 1
	maxRatingFilter = 4
)

// CatalogService serves the public, read-only flight and hotel queries.
type CatalogService struct {
	store repository.Store
}

// NewCatalogService wires a catalog service.
func NewCatalogService(store repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

// Flights returns one page of the flight catalog, optionally ordered by
// price.
func (s *CatalogService) Flights(ctx context.Context, page, size int, sort repository.SortType) ([]model.Flight, error) {
	return s.store.Flights(ctx, page, size, sort)
}

// FlightsCheaperThan lists flights with a base price below the limit.
func (s *CatalogService) FlightsCheaperThan(ctx context.Context, price decimal.Decimal) ([]model.Flight, error) {
	return s.store.FlightsCheaperThan(ctx, price)
}

// FlightsBetweenPrice lists flights priced within [min, max].
func (s *CatalogService) FlightsBetweenPrice(ctx context.Context, min, max decimal.Decimal) ([]model.Flight, error) {
	return s.store.FlightsBetweenPrice(ctx, min, max)
}

// FlightsByRoute lists flights between two city names.
func (s *CatalogService) FlightsByRoute(ctx context.Context, origin, destiny string) ([]model.Flight, error) {
	return s.store.FlightsByRoute(ctx, origin, destiny)
}

// Hotels returns one page of the hotel catalog, optionally ordered by
// price.
func (s *CatalogService) Hotels(ctx context.Context, page, size int, sort repository.SortType) ([]model.Hotel, error) {
	return s.store.Hotels(ctx, page, size, sort)
}

// HotelsCheaperThan lists hotels with a base price below the limit.
func (s *CatalogService) HotelsCheaperThan(ctx context.Context, price decimal.Decimal) ([]model.Hotel, error) {
	return s.store.HotelsCheaperThan(ctx, price)
}

// HotelsBetweenPrice lists hotels priced within [min, max].
func (s *CatalogService) HotelsBetweenPrice(ctx context.Context, min, max decimal.Decimal) ([]model.Hotel, error) {
	return s.store.HotelsBetweenPrice(ctx, min, max)
}

// HotelsRatedAbove lists hotels rated above the given value.  The
// filter is clamped to [1,4]: rating=6 behaves like rating=4 and
// rating=0 like rating=1.
func (s *CatalogService) HotelsRatedAbove(ctx context.Context, rating int) ([]model.Hotel, error) {
	if rating < minRatingFilter {
		rating = minRatingFilter
	}
	if rating > maxRatingFilter {
		rating = maxRatingFilter
	}
	return s.store.HotelsRatedAbove(ctx, rating)
}
