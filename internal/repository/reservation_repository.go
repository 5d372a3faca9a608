package repository

import (
	"context"
	"database/sql"

	"github.com/alejandrorivera22/great-travel/internal/model"
)

// ReservationStore covers reservation persistence, mirroring TicketStore.
type ReservationStore interface {
	CreateReservation(ctx context.Context, r *model.Reservation) error
	ReservationByID(ctx context.Context, id string) (*model.Reservation, error)
	UpdateReservation(ctx context.Context, r *model.Reservation) error
	DeleteReservation(ctx context.Context, id string) error
	SetReservationTour(ctx context.Context, reservationID string, tourID *uint64) error
	ReservationIDsByTour(ctx context.Context, tourID uint64) ([]string, error)
}

const reservationColumns = `id, customer_dni, hotel_id, tour_id, price, total_days, reserved_at, date_start, date_end`

// CreateReservation inserts a fully populated reservation row.
func (s *SQLStore) CreateReservation(ctx context.Context, r *model.Reservation) error {
	const q = `INSERT INTO reservations
		(id, customer_dni, hotel_id, tour_id, price, total_days, reserved_at, date_start, date_end)
		VALUES (?,?,?,?,?,?,?,?,?)`
	_, err := s.conn.ExecContext(ctx, q,
		r.ID, r.CustomerDNI, r.HotelID, nullableID(r.TourID), r.Price,
		r.TotalDays, r.ReservedAt, r.DateStart, r.DateEnd)
	return err
}

// ReservationByID returns a reservation or a reservation NotFoundError.
func (s *SQLStore) ReservationByID(ctx context.Context, id string) (*model.Reservation, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)
	var r model.Reservation
	var tourID sql.NullInt64
	err := row.Scan(&r.ID, &r.CustomerDNI, &r.HotelID, &tourID, &r.Price,
		&r.TotalDays, &r.ReservedAt, &r.DateStart, &r.DateEnd)
	if err == sql.ErrNoRows {
		return nil, NotFound(TableReservation)
	}
	if err != nil {
		return nil, err
	}
	r.TourID = fromNullableID(tourID)
	return &r, nil
}

// UpdateReservation rewrites the mutable fields of an existing reservation.
func (s *SQLStore) UpdateReservation(ctx context.Context, r *model.Reservation) error {
	const q = `UPDATE reservations
		SET hotel_id = ?, price = ?, total_days = ?, reserved_at = ?, date_start = ?, date_end = ?
		WHERE id = ?`
	res, err := s.conn.ExecContext(ctx, q,
		r.HotelID, r.Price, r.TotalDays, r.ReservedAt, r.DateStart, r.DateEnd, r.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, TableReservation)
}

// DeleteReservation removes a reservation row.
func (s *SQLStore) DeleteReservation(ctx context.Context, id string) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, TableReservation)
}

// SetReservationTour attaches (tourID non-nil) or detaches (nil) a reservation.
func (s *SQLStore) SetReservationTour(ctx context.Context, reservationID string, tourID *uint64) error {
	res, err := s.conn.ExecContext(ctx,
		`UPDATE reservations SET tour_id = ? WHERE id = ?`, nullableID(tourID), reservationID)
	if err != nil {
		return err
	}
	return requireAffected(res, TableReservation)
}

// ReservationIDsByTour lists the ids of the reservations belonging to a tour.
func (s *SQLStore) ReservationIDsByTour(ctx context.Context, tourID uint64) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id FROM reservations WHERE tour_id = ? ORDER BY id`, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
