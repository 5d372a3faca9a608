// Package service holds the booking and account logic sitting between
// the HTTP handlers and the repository.  Every mutation that touches
// more than one row runs inside Store.Transact so partial writes never
// become visible.
package service

import "github.com/shopspring/decimal"

// chargerPrice is the markup applied to every catalog base price when a
// ticket or reservation is created: the customer pays base × 1.25.
var chargerPrice = decimal.NewFromFloat(1.25)

// ChargedPrice returns the price a customer is billed for a catalog
// entry with the given base price.  Decimal arithmetic keeps cents
// exact: a 100.00 base is always billed as 125.00, never 124.999....
func ChargedPrice(base decimal.Decimal) decimal.Decimal {
	return base.Mul(chargerPrice)
}
