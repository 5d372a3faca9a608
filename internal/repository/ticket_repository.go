package repository

import (
	"context"
	"database/sql"

	"github.com/alejandrorivera22/great-travel/internal/model"
)

// TicketStore covers ticket persistence.  SetTicketTour maintains the
// child side of the tour aggregate: attaching sets tour_id, detaching
// clears it while the ticket row survives.
type TicketStore interface {
	CreateTicket(ctx context.Context, t *model.Ticket) error
	TicketByID(ctx context.Context, id string) (*model.Ticket, error)
	UpdateTicket(ctx context.Context, t *model.Ticket) error
	DeleteTicket(ctx context.Context, id string) error
	SetTicketTour(ctx context.Context, ticketID string, tourID *uint64) error
	TicketIDsByTour(ctx context.Context, tourID uint64) ([]string, error)
}

const ticketColumns = `id, customer_dni, fly_id, tour_id, price, purchase_date, departure_date, arrival_date`

// CreateTicket inserts a fully populated ticket row.  The id must be a
// freshly generated UUID supplied by the caller.
func (s *SQLStore) CreateTicket(ctx context.Context, t *model.Ticket) error {
	const q = `INSERT INTO tickets
		(id, customer_dni, fly_id, tour_id, price, purchase_date, departure_date, arrival_date)
		VALUES (?,?,?,?,?,?,?,?)`
	_, err := s.conn.ExecContext(ctx, q,
		t.ID, t.CustomerDNI, t.FlyID, nullableID(t.TourID), t.Price,
		t.PurchaseDate, t.DepartureDate, t.ArrivalDate)
	return err
}

// TicketByID returns a ticket or a ticket NotFoundError.
func (s *SQLStore) TicketByID(ctx context.Context, id string) (*model.Ticket, error) {
	row := s.conn.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = ?`, id)
	var t model.Ticket
	var tourID sql.NullInt64
	err := row.Scan(&t.ID, &t.CustomerDNI, &t.FlyID, &tourID, &t.Price,
		&t.PurchaseDate, &t.DepartureDate, &t.ArrivalDate)
	if err == sql.ErrNoRows {
		return nil, NotFound(TableTicket)
	}
	if err != nil {
		return nil, err
	}
	t.TourID = fromNullableID(tourID)
	return &t, nil
}

// UpdateTicket rewrites the mutable fields of an existing ticket.
func (s *SQLStore) UpdateTicket(ctx context.Context, t *model.Ticket) error {
	const q = `UPDATE tickets
		SET fly_id = ?, price = ?, departure_date = ?, arrival_date = ?
		WHERE id = ?`
	res, err := s.conn.ExecContext(ctx, q, t.FlyID, t.Price, t.DepartureDate, t.ArrivalDate, t.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, TableTicket)
}

// DeleteTicket removes a ticket row.
func (s *SQLStore) DeleteTicket(ctx context.Context, id string) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM tickets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res, TableTicket)
}

// SetTicketTour attaches (tourID non-nil) or detaches (nil) a ticket.
func (s *SQLStore) SetTicketTour(ctx context.Context, ticketID string, tourID *uint64) error {
	res, err := s.conn.ExecContext(ctx,
		`UPDATE tickets SET tour_id = ? WHERE id = ?`, nullableID(tourID), ticketID)
	if err != nil {
		return err
	}
	return requireAffected(res, TableTicket)
}

// TicketIDsByTour lists the ids of the tickets belonging to a tour.
func (s *SQLStore) TicketIDsByTour(ctx context.Context, tourID uint64) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id FROM tickets WHERE tour_id = ? ORDER BY id`, tourID)
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

func nullableID(id *uint64) any {
	if id == nil {
		return nil
	}
	return *id
}

func fromNullableID(v sql.NullInt64) *uint64 {
	if !v.Valid {
		return nil
	}
	id := uint64(v.Int64)
	return &id
}

func requireAffected(res sql.Result, table string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return NotFound(table)
	}
	return nil
}
