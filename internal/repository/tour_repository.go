package repository

import (
	"context"
	"database/sql"

	"github.com/alejandrorivera22/great-travel/internal/model"
)

// TourStore covers the tour aggregate root.  All mutations of a tour's
// membership go through the service layer inside Transact; TourForUpdate
// locks the row so two concurrent add/remove cycles on the same tour
// serialize instead of losing updates.
type TourStore interface {
	CreateTour(ctx context.Context, customerDNI string) (uint64, error)
	TourByID(ctx context.Context, id uint64) (*model.Tour, error)
	TourForUpdate(ctx context.Context, id uint64) (*model.Tour, error)
	DeleteTour(ctx context.Context, id uint64) error
	DetachTourChildren(ctx context.Context, id uint64) error
}

// CreateTour inserts the aggregate row and returns its generated id.
func (s *SQLStore) CreateTour(ctx context.Context, customerDNI string) (uint64, error) {
	res, err := s.conn.ExecContext(ctx,
		`INSERT INTO tours (customer_dni) VALUES (?)`, customerDNI)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// TourByID loads a tour and the id sets of its children.
func (s *SQLStore) TourByID(ctx context.Context, id uint64) (*model.Tour, error) {
	return s.loadTour(ctx, id, false)
}

// TourForUpdate is TourByID with the tour row locked for the duration of
// the ambient transaction (SELECT ... FOR UPDATE).  Outside a
// transaction it behaves like TourByID.
func (s *SQLStore) TourForUpdate(ctx context.Context, id uint64) (*model.Tour, error) {
	return s.loadTour(ctx, id, true)
}

func (s *SQLStore) loadTour(ctx context.Context, id uint64, lock bool) (*model.Tour, error) {
	q := `SELECT id, customer_dni, created_at FROM tours WHERE id = ?`
	if lock && s.db == nil {
		q += ` FOR UPDATE`
	}
	var t model.Tour
	err := s.conn.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.CustomerDNI, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, NotFound(TableTour)
	}
	if err != nil {
		return nil, err
	}
	if t.TicketIDs, err = s.TicketIDsByTour(ctx, id); err != nil {
		return nil, err
	}
	if t.ReservationIDs, err = s.ReservationIDsByTour(ctx, id); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTour removes the aggregate row.  Children must have been
// detached first; the FK ON DELETE SET NULL is only a backstop.
func (s *SQLStore) DeleteTour(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM tours WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, TableTour)
}

// DetachTourChildren clears the tour reference on every child in one
// statement per table, leaving the children as standalone records.
func (s *SQLStore) DetachTourChildren(ctx context.Context, id uint64) error {
	if _, err := s.conn.ExecContext(ctx,
		`UPDATE tickets SET tour_id = NULL WHERE tour_id = ?`, id); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx,
		`UPDATE reservations SET tour_id = NULL WHERE tour_id = ?`, id)
	return err
}
