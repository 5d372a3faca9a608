package repository

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.  Both
// *sql.DB and *sql.Tx satisfy it, which lets the same query methods run
// standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the persistence surface consumed by the service layer.  The
// SQL implementation below is the production store; tests use the
// in-memory store in memory.go.  Transact runs fn against a store bound
// to a single transaction and commits only when fn returns nil, so a
// service callback is all-or-nothing.
type Store interface {
	CustomerStore
	FlightStore
	HotelStore
	TicketStore
	ReservationStore
	TourStore

	Transact(ctx context.Context, fn func(Store) error) error
}

// SortType selects the price ordering for paged catalog queries.
type SortType string

const (
	SortNone  SortType = "NONE"
	SortLower SortType = "LOWER"
	SortUpper SortType = "UPPER"
)

// ParseSortType maps a request header value onto a SortType, defaulting
// to SortNone for anything unknown.
func ParseSortType(s string) SortType {
	switch SortType(s) {
	case SortLower, SortUpper:
		return SortType(s)
	}
	return SortNone
}

// SQLStore implements Store over MySQL.  The zero value is not usable;
// construct with NewStore.
type SQLStore struct {
	db   *sql.DB // nil when tx-bound
	conn DBTX
}

// NewStore returns a SQLStore bound to the given database handle.
func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, conn: db}
}

// Transact begins a transaction, runs fn against a tx-bound copy of the
// store and commits when fn succeeds.  Any error from fn rolls the whole
// transaction back.  Nested Transact calls reuse the ambient transaction
// so service helpers can be composed inside a single atomic write path.
func (s *SQLStore) Transact(ctx context.Context, fn func(Store) error) error {
	if s.db == nil {
		// Already tx-bound; run in the ambient transaction.
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(&SQLStore{conn: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
