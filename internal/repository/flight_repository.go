package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/alejandrorivera22/great-travel/internal/model"
)

// FlightStore provides read-only catalog access to flights.  Filtered
// queries back the public /fly endpoints; FlightByID is used by the
// booking services to resolve references before writing.
type FlightStore interface {
	FlightByID(ctx context.Context, id uint64) (*model.Flight, error)
	Flights(ctx context.Context, page, size int, sort SortType) ([]model.Flight, error)
	FlightsCheaperThan(ctx context.Context, price decimal.Decimal) ([]model.Flight, error)
	FlightsBetweenPrice(ctx context.Context, min, max decimal.Decimal) ([]model.Flight, error)
	FlightsByRoute(ctx context.Context, origin, destiny string) ([]model.Flight, error)
}

const flightColumns = `id, origin_name, destiny_name, origin_lat, origin_lng,
	destiny_lat, destiny_lng, aero_line, price`

// FlightByID returns a single flight or a fly NotFoundError.
func (s *SQLStore) FlightByID(ctx context.Context, id uint64) (*model.Flight, error) {
	row := s.conn.QueryRowContext(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = ?`, id)
	f, err := scanFlight(row)
	if err == sql.ErrNoRows {
		return nil, NotFound(TableFly)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Flights returns one page of the catalog, optionally ordered by price.
func (s *SQLStore) Flights(ctx context.Context, page, size int, sort SortType) ([]model.Flight, error) {
	q := `SELECT ` + flightColumns + ` FROM flights`
	switch sort {
	case SortLower:
		q += ` ORDER BY price ASC`
	case SortUpper:
		q += ` ORDER BY price DESC`
	default:
		q += ` ORDER BY id`
	}
	q += ` LIMIT ? OFFSET ?`
	return s.queryFlights(ctx, q, size, page*size)
}

// FlightsCheaperThan lists flights with a base price below the limit.
func (s *SQLStore) FlightsCheaperThan(ctx context.Context, price decimal.Decimal) ([]model.Flight, error) {
	return s.queryFlights(ctx,
		`SELECT `+flightColumns+` FROM flights WHERE price < ? ORDER BY id`, price)
}

// FlightsBetweenPrice lists flights priced within [min, max].
func (s *SQLStore) FlightsBetweenPrice(ctx context.Context, min, max decimal.Decimal) ([]model.Flight, error) {
	return s.queryFlights(ctx,
		`SELECT `+flightColumns+` FROM flights WHERE price BETWEEN ? AND ? ORDER BY id`, min, max)
}

// FlightsByRoute lists flights between two city names.
func (s *SQLStore) FlightsByRoute(ctx context.Context, origin, destiny string) ([]model.Flight, error) {
	return s.queryFlights(ctx,
		`SELECT `+flightColumns+` FROM flights WHERE origin_name = ? AND destiny_name = ? ORDER BY id`,
		origin, destiny)
}

func (s *SQLStore) queryFlights(ctx context.Context, q string, args ...any) ([]model.Flight, error) {
	rows, err := s.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlight(r rowScanner) (*model.Flight, error) {
	var f model.Flight
	err := r.Scan(&f.ID, &f.OriginName, &f.DestinyName, &f.OriginLat, &f.OriginLng,
		&f.DestinyLat, &f.DestinyLng, &f.AeroLine, &f.Price)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
