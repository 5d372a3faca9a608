package model

import "github.com/shopspring/decimal"

// Hotel is a catalog entry in the `hotels` table.  Rating is nominally
// 1–5; the API clamps rating filters to [1,4] (see the catalog service).
//
// Fields:
//  ID      – surrogate primary key.
//  Name    – hotel name.
//  Address – street address.
//  Rating  – integer rating.
//  Price   – base nightly price, DECIMAL(10,2).
type Hotel struct {
	ID      uint64          // hotels.id
	Name    string          // hotels.name
	Address string          // hotels.address
	Rating  int             // hotels.rating
	Price   decimal.Decimal // hotels.price
}
