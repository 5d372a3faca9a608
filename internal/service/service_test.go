package service

import (
	"github.com/shopspring/decimal"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/repository"
)

// Shared fixtures for the service tests.  The dni matches the stored
// format (18–20 characters).
const (
	testDNI      = "VIKI771012HMCRG093"
	testUsername = "john_doe"
)

func newTestStore() *repository.MemStore {
	store := repository.NewMemStore()
	store.SeedCustomer(model.Customer{
		DNI:         testDNI,
		Username:    testUsername,
		Email:       "john@example.com",
		CreditCard:  "6473-9486-9372-0921",
		PhoneNumber: "33-74-58-43",
		Enabled:     true,
		Roles:       []string{model.RoleCustomer},
	})
	store.SeedFlight(model.Flight{
		ID:          1,
		OriginName:  "Mexico",
		DestinyName: "Grecia",
		OriginLat:   19.40,
		OriginLng:   -99.13,
		DestinyLat:  37.98,
		DestinyLng:  23.72,
		AeroLine:    model.AeroGold,
		Price:       decimal.RequireFromString("50.00"),
	})
	store.SeedFlight(model.Flight{
		ID:          2,
		OriginName:  "Grecia",
		DestinyName: "Mexico",
		OriginLat:   37.98,
		OriginLng:   23.72,
		DestinyLat:  19.40,
		DestinyLng:  -99.13,
		AeroLine:    model.BlueSky,
		Price:       decimal.RequireFromString("35.50"),
	})
	store.SeedHotel(model.Hotel{
		ID:      1,
		Name:    "Hotel Neos",
		Address: "Athens",
		Rating:  4,
		Price:   decimal.RequireFromString("100.00"),
	})
	store.SeedHotel(model.Hotel{
		ID:      2,
		Name:    "Hotel Centro",
		Address: "CDMX",
		Rating:  2,
		Price:   decimal.RequireFromString("40.00"),
	})
	return store
}

var testDates = FixedDates{DepartureDays: 5, ArrivalDays: 15}
