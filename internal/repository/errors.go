// Package repository defines error types that are reused across the data
// access layer.  These values allow higher layers such as handlers to
// distinguish between failure scenarios: a NotFoundError names the table
// whose record was missing, while the conflict sentinels signal duplicate
// unique keys on registration.
package repository

import "errors"

// Table names used in NotFoundError messages.  They match the logical
// entity names exposed by the API, not necessarily the physical tables.
const (
	TableCustomer    = "customer"
	TableFly         = "fly"
	TableHotel       = "hotel"
	TableTicket      = "ticket"
	TableReservation = "reservation"
	TableTour        = "tour"
)

// NotFoundError is returned when a referenced id does not resolve.
// Handlers surface the table name in the response message.
type NotFoundError struct {
	Table string
}

func (e *NotFoundError) Error() string {
	return "record not found in " + e.Table
}

// NotFound builds a NotFoundError for the given table.
func NotFound(table string) error {
	return &NotFoundError{Table: table}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Conflict sentinels for duplicate unique keys on customer registration.
var (
	ErrDNIExists      = errors.New("dni already exists")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)
