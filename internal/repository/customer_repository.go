package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alejandrorivera22/great-travel/internal/model"
)

// Counter identifies which of the three customer running totals a booking
// operation bumps.  Callers pass the counter explicitly; nothing is ever
// inferred from who is calling.
type Counter string

const (
	CounterFlights  Counter = "total_flights"
	CounterLodgings Counter = "total_lodgings"
	CounterTours    Counter = "total_tours"
)

// CustomerStore covers CRUD on customers, role grants and the counter
// increments performed by the booking services.
type CustomerStore interface {
	CreateCustomer(ctx context.Context, c *model.Customer, role string) error
	CustomerByDNI(ctx context.Context, dni string) (*model.Customer, error)
	CustomerByUsername(ctx context.Context, username string) (*model.Customer, error)
	UpdateCustomerContact(ctx context.Context, dni, creditCard, phoneNumber string) error
	UpdateCustomerUsername(ctx context.Context, dni, username string) error
	UpdateCustomerPassword(ctx context.Context, dni, passwordHash string) error
	GrantRole(ctx context.Context, dni, role string) error
	IncrementCustomerCounter(ctx context.Context, dni string, counter Counter) error
}

// CreateCustomer inserts a customer row and its initial role in one pass.
// Duplicate unique keys are mapped onto the conflict sentinels by probing
// which key collided; MySQL reports all of them as error 1062.
func (s *SQLStore) CreateCustomer(ctx context.Context, c *model.Customer, role string) error {
	const q = `INSERT INTO customers
		(dni, username, email, password_hash, credit_card, phone_number, enabled)
		VALUES (?,?,?,?,?,?,1)`
	_, err := s.conn.ExecContext(ctx, q,
		c.DNI, c.Username, c.Email, c.PasswordHash, c.CreditCard, c.PhoneNumber)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			switch {
			case strings.Contains(err.Error(), "uq_customers_username"):
				return ErrUsernameExists
			case strings.Contains(err.Error(), "uq_customers_email"):
				return ErrEmailExists
			default:
				return ErrDNIExists
			}
		}
		return err
	}
	return s.GrantRole(ctx, c.DNI, role)
}

// CustomerByDNI loads a customer and its role names.
func (s *SQLStore) CustomerByDNI(ctx context.Context, dni string) (*model.Customer, error) {
	const q = `SELECT dni, username, email, password_hash, credit_card, phone_number,
					  total_flights, total_lodgings, total_tours, enabled, created_at, updated_at
			   FROM customers WHERE dni = ?`
	return s.scanCustomer(ctx, s.conn.QueryRowContext(ctx, q, dni))
}

// CustomerByUsername loads a customer by its unique username.
func (s *SQLStore) CustomerByUsername(ctx context.Context, username string) (*model.Customer, error) {
	const q = `SELECT dni, username, email, password_hash, credit_card, phone_number,
					  total_flights, total_lodgings, total_tours, enabled, created_at, updated_at
			   FROM customers WHERE username = ?`
	return s.scanCustomer(ctx, s.conn.QueryRowContext(ctx, q, username))
}

func (s *SQLStore) scanCustomer(ctx context.Context, row *sql.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.DNI, &c.Username, &c.Email, &c.PasswordHash, &c.CreditCard, &c.PhoneNumber,
		&c.TotalFlights, &c.TotalLodgings, &c.TotalTours, &c.Enabled, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, NotFound(TableCustomer)
	}
	if err != nil {
		return nil, err
	}
	const rq = `SELECT r.name FROM roles r
				JOIN customer_roles cr ON cr.role_id = r.id
				WHERE cr.customer_dni = ?
				ORDER BY r.id`
	rows, err := s.conn.QueryContext(ctx, rq, c.DNI)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		c.Roles = append(c.Roles, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCustomerContact replaces the credit card and phone number.
func (s *SQLStore) UpdateCustomerContact(ctx context.Context, dni, creditCard, phoneNumber string) error {
	const q = `UPDATE customers SET credit_card = ?, phone_number = ? WHERE dni = ?`
	return s.execCustomerUpdate(ctx, q, creditCard, phoneNumber, dni)
}

// UpdateCustomerUsername replaces the username, keeping uniqueness.
func (s *SQLStore) UpdateCustomerUsername(ctx context.Context, dni, username string) error {
	const q = `UPDATE customers SET username = ? WHERE dni = ?`
	err := s.execCustomerUpdate(ctx, q, username, dni)
	if err != nil && strings.Contains(err.Error(), "1062") {
		return ErrUsernameExists
	}
	return err
}

// UpdateCustomerPassword replaces the stored password hash.
func (s *SQLStore) UpdateCustomerPassword(ctx context.Context, dni, passwordHash string) error {
	const q = `UPDATE customers SET password_hash = ? WHERE dni = ?`
	return s.execCustomerUpdate(ctx, q, passwordHash, dni)
}

func (s *SQLStore) execCustomerUpdate(ctx context.Context, q string, args ...any) error {
	res, err := s.conn.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return NotFound(TableCustomer)
	}
	return nil
}

// GrantRole attaches a role to a customer.  Granting an already held
// role is a no-op thanks to INSERT IGNORE on the join table.
func (s *SQLStore) GrantRole(ctx context.Context, dni, role string) error {
	var roleID uint8
	err := s.conn.QueryRowContext(ctx, `SELECT id FROM roles WHERE name = ?`, role).Scan(&roleID)
	if err == sql.ErrNoRows {
		return NotFound("role")
	}
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx,
		`INSERT IGNORE INTO customer_roles (customer_dni, role_id) VALUES (?,?)`, dni, roleID)
	return err
}

// IncrementCustomerCounter adds one to the selected running total.  The
// increment happens inside the UPDATE itself, so concurrent bookings for
// the same customer serialize on the row without a separate lock.
func (s *SQLStore) IncrementCustomerCounter(ctx context.Context, dni string, counter Counter) error {
	var q string
	switch counter {
	case CounterFlights:
		q = `UPDATE customers SET total_flights = total_flights + 1 WHERE dni = ?`
	case CounterLodgings:
		q = `UPDATE customers SET total_lodgings = total_lodgings + 1 WHERE dni = ?`
	case CounterTours:
		q = `UPDATE customers SET total_tours = total_tours + 1 WHERE dni = ?`
	default:
		return NotFound(TableCustomer)
	}
	return s.execCustomerUpdate(ctx, q, dni)
}
