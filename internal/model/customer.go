package model

import "time"

// Customer represents a registered traveller as stored in the
// `customers` table.  The national-id style DNI string is the primary
// key.  The three counters are running totals maintained by the booking
// services; they are bumped on creation of the matching record type and
// deliberately never decremented.
//
// Fields:
//  DNI           – national id, primary key.
//  Username      – unique login name.
//  Email         – unique email address.
//  PasswordHash  – bcrypt hashed password.
//  CreditCard    – card number in XXXX-XXXX-XXXX-XXXX form.
//  PhoneNumber   – phone in XX-XX-XX-XX form.
//  TotalFlights  – tickets purchased standalone.
//  TotalLodgings – reservations booked standalone.
//  TotalTours    – tours created.
//  Enabled       – whether the account may log in.
//  Roles         – role names granted (at least CUSTOMER).
//  CreatedAt     – timestamp of creation.
//  UpdatedAt     – timestamp of last update.
type Customer struct {
	DNI           string    // customers.dni
	Username      string    // customers.username
	Email         string    // customers.email
	PasswordHash  string    // customers.password_hash
	CreditCard    string    // customers.credit_card
	PhoneNumber   string    // customers.phone_number
	TotalFlights  int       // customers.total_flights
	TotalLodgings int       // customers.total_lodgings
	TotalTours    int       // customers.total_tours
	Enabled       bool      // customers.enabled
	Roles         []string  // joined through customer_roles
	CreatedAt     time.Time // customers.created_at
	UpdatedAt     time.Time // customers.updated_at
}

// HasRole reports whether the customer holds the given role name.
func (c *Customer) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Role represents a row in the `roles` table.
//
// Fields:
//  ID   – numeric identifier of the role.
//  Name – unique role name (CUSTOMER or ADMIN).
type Role struct {
	ID   uint8  // roles.id
	Name string // roles.name
}

// Known role names.  Role grants outside this set are rejected.
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)
