package service

import (
	"context"
	"errors"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/repository"
	"github.com/alejandrorivera22/great-travel/internal/utils"
)

// Account-level failures surfaced by the customer service.
var (
	// ErrBadCredentials covers unknown usernames and wrong passwords
	// alike, so login responses never reveal which one it was.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrAccountDisabled is returned when the password checks out but
	// the account's enabled flag is off.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrInvalidRole rejects role grants outside the known role set.
	ErrInvalidRole = errors.New("invalid role")
)

// CustomerService handles registration, profile updates and credential
// checks.  Passwords are bcrypt hashed before they reach the store.
type CustomerService struct {
	store      repository.Store
	bcryptCost int
}

// NewCustomerService wires a customer service with the configured
// bcrypt cost.
func NewCustomerService(store repository.Store, bcryptCost int) *CustomerService {
	return &CustomerService{store: store, bcryptCost: bcryptCost}
}

// Register creates a new enabled customer with the CUSTOMER role and
// zeroed counters.  Duplicate dni, username or email surface as the
// repository conflict sentinels.
func (s *CustomerService) Register(ctx context.Context, dni, username, email, password, creditCard, phoneNumber string) (*model.Customer, error) {
	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	c := &model.Customer{
		DNI:          dni,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreditCard:   creditCard,
		PhoneNumber:  phoneNumber,
	}
	if err := s.store.CreateCustomer(ctx, c, model.RoleCustomer); err != nil {
		return nil, err
	}
	return s.store.CustomerByDNI(ctx, dni)
}

// Authenticate checks a username/password pair and returns the matching
// customer.  Disabled accounts fail even with the right password.
func (s *CustomerService) Authenticate(ctx context.Context, username, password string) (*model.Customer, error) {
	c, err := s.store.CustomerByUsername(ctx, username)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(c.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	if !c.Enabled {
		return nil, ErrAccountDisabled
	}
	return c, nil
}

// Read returns a customer profile by dni.
func (s *CustomerService) Read(ctx context.Context, dni string) (*model.Customer, error) {
	return s.store.CustomerByDNI(ctx, dni)
}

// UpdateContact replaces the credit card and phone number and returns
// the updated profile.
func (s *CustomerService) UpdateContact(ctx context.Context, dni, creditCard, phoneNumber string) (*model.Customer, error) {
	if err := s.store.UpdateCustomerContact(ctx, dni, creditCard, phoneNumber); err != nil {
		return nil, err
	}
	return s.store.CustomerByDNI(ctx, dni)
}

// UpdateUsername changes the login name, keeping uniqueness.
func (s *CustomerService) UpdateUsername(ctx context.Context, dni, username string) (*model.Customer, error) {
	if err := s.store.UpdateCustomerUsername(ctx, dni, username); err != nil {
		return nil, err
	}
	return s.store.CustomerByDNI(ctx, dni)
}

// UpdatePassword hashes and stores a new password.
func (s *CustomerService) UpdatePassword(ctx context.Context, dni, password string) error {
	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.store.UpdateCustomerPassword(ctx, dni, hash)
}

// AddRole grants a role to the customer owning the username.  Only
// CUSTOMER and ADMIN are grantable; anything else is ErrInvalidRole.
// Granting an already held role is a no-op.
func (s *CustomerService) AddRole(ctx context.Context, username, role string) (*model.Customer, error) {
	if role != model.RoleCustomer && role != model.RoleAdmin {
		return nil, ErrInvalidRole
	}
	c, err := s.store.CustomerByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.store.GrantRole(ctx, c.DNI, role); err != nil {
		return nil, err
	}
	return s.store.CustomerByDNI(ctx, c.DNI)
}
