package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/alejandrorivera22/great-travel/internal/model"
)

// HotelStore provides read-only catalog access to hotels, symmetric to
// FlightStore.
type HotelStore interface {
	HotelByID(ctx context.Context, id uint64) (*model.Hotel, error)
	Hotels(ctx context.Context, page, size int, sort SortType) ([]model.Hotel, error)
	HotelsCheaperThan(ctx context.Context, price decimal.Decimal) ([]model.Hotel, error)
	HotelsBetweenPrice(ctx context.Context, min, max decimal.Decimal) ([]model.Hotel, error)
	HotelsRatedAbove(ctx context.Context, rating int) ([]model.Hotel, error)
}

const hotelColumns = `id, name, address, rating, price`

// HotelByID returns a single hotel or a hotel NotFoundError.
func (s *SQLStore) HotelByID(ctx context.Context, id uint64) (*model.Hotel, error) {
	row := s.conn.QueryRowContext(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id = ?`, id)
	var h model.Hotel
	err := row.Scan(&h.ID, &h.Name, &h.Address, &h.Rating, &h.Price)
	if err == sql.ErrNoRows {
		return nil, NotFound(TableHotel)
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Hotels returns one page of the catalog, optionally ordered by price.
func (s *SQLStore) Hotels(ctx context.Context, page, size int, sort SortType) ([]model.Hotel, error) {
	q := `SELECT ` + hotelColumns + ` FROM hotels`
	switch sort {
	case SortLower:
		q += ` ORDER BY price ASC`
	case SortUpper:
		q += ` ORDER BY price DESC`
	default:
		q += ` ORDER BY id`
	}
	q += ` LIMIT ? OFFSET ?`
	return s.queryHotels(ctx, q, size, page*size)
}

// HotelsCheaperThan lists hotels with a base price below the limit.
func (s *SQLStore) HotelsCheaperThan(ctx context.Context, price decimal.Decimal) ([]model.Hotel, error) {
	return s.queryHotels(ctx,
		`SELECT `+hotelColumns+` FROM hotels WHERE price < ? ORDER BY id`, price)
}

// HotelsBetweenPrice lists hotels priced within [min, max].
func (s *SQLStore) HotelsBetweenPrice(ctx context.Context, min, max decimal.Decimal) ([]model.Hotel, error) {
	return s.queryHotels(ctx,
		`SELECT `+hotelColumns+` FROM hotels WHERE price BETWEEN ? AND ? ORDER BY id`, min, max)
}

// HotelsRatedAbove lists hotels rated strictly above the given value.
// Clamping of the caller-supplied rating happens in the catalog service.
func (s *SQLStore) HotelsRatedAbove(ctx context.Context, rating int) ([]model.Hotel, error) {
	return s.queryHotels(ctx,
		`SELECT `+hotelColumns+` FROM hotels WHERE rating > ? ORDER BY id`, rating)
}

func (s *SQLStore) queryHotels(ctx context.Context, q string, args ...any) ([]model.Hotel, error) {
	rows, err := s.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Hotel, 0)
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Rating, &h.Price); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
