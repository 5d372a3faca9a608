package model

import "github.com/shopspring/decimal"

// Flight is a catalog entry in the `flights` table.  Flights are
// read-only through the API; rows are loaded out of band.  Price is the
// base price before the booking markup.
//
// Fields:
//  ID          – surrogate primary key.
//  OriginName  – departure city name.
//  DestinyName – arrival city name.
//  OriginLat/OriginLng/DestinyLat/DestinyLng – route coordinates.
//  AeroLine    – operating carrier.
//  Price       – base price, DECIMAL(10,2).
type Flight struct {
	ID          uint64          // flights.id
	OriginName  string          // flights.origin_name
	DestinyName string          // flights.destiny_name
	OriginLat   float64         // flights.origin_lat
	OriginLng   float64         // flights.origin_lng
	DestinyLat  float64         // flights.destiny_lat
	DestinyLng  float64         // flights.destiny_lng
	AeroLine    string          // flights.aero_line
	Price       decimal.Decimal // flights.price
}

// Carrier names accepted in flights.aero_line.
const (
	AeroGold   = "AERO_GOLD"
	BlueSky    = "BLUE_SKY"
	LocalAir   = "LOCAL_AIR"
)
