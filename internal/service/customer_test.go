package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/repository"
	"github.com/alejandrorivera22/great-travel/internal/utils"
)

func newCustomerService(store *repository.MemStore) *CustomerService {
	return NewCustomerService(store, bcrypt.MinCost)
}

func TestCustomerRegister(t *testing.T) {
	store := repository.NewMemStore()
	customers := newCustomerService(store)
	ctx := context.Background()

	c, err := customers.Register(ctx, testDNI, testUsername, "john@example.com",
		"password123", "6473-9486-9372-0921", "33-74-58-43")
	require.NoError(t, err)

	assert.Equal(t, testDNI, c.DNI)
	assert.Equal(t, []string{model.RoleCustomer}, c.Roles)
	assert.True(t, c.Enabled)
	assert.Equal(t, 0, c.TotalFlights)
	assert.Equal(t, 0, c.TotalLodgings)
	assert.Equal(t, 0, c.TotalTours)
	assert.NotEqual(t, "password123", c.PasswordHash)
	assert.True(t, utils.CheckPassword(c.PasswordHash, "password123"))
}

func TestCustomerRegisterDuplicates(t *testing.T) {
	store := repository.NewMemStore()
	customers := newCustomerService(store)
	ctx := context.Background()

	_, err := customers.Register(ctx, testDNI, testUsername, "john@example.com",
		"password123", "6473-9486-9372-0921", "33-74-58-43")
	require.NoError(t, err)

	_, err = customers.Register(ctx, testDNI, "other_user", "other@example.com",
		"password123", "1111-2222-3333-4444", "11-22-33-44")
	assert.ErrorIs(t, err, repository.ErrDNIExists)

	_, err = customers.Register(ctx, "OTRO771012HMCRG094", testUsername, "other@example.com",
		"password123", "1111-2222-3333-4444", "11-22-33-44")
	assert.ErrorIs(t, err, repository.ErrUsernameExists)

	_, err = customers.Register(ctx, "OTRO771012HMCRG094", "other_user", "john@example.com",
		"password123", "1111-2222-3333-4444", "11-22-33-44")
	assert.ErrorIs(t, err, repository.ErrEmailExists)
}

func TestCustomerAuthenticate(t *testing.T) {
	store := repository.NewMemStore()
	customers := newCustomerService(store)
	ctx := context.Background()

	_, err := customers.Register(ctx, testDNI, testUsername, "john@example.com",
		"password123", "6473-9486-9372-0921", "33-74-58-43")
	require.NoError(t, err)

	c, err := customers.Authenticate(ctx, testUsername, "password123")
	require.NoError(t, err)
	assert.Equal(t, testDNI, c.DNI)

	_, err = customers.Authenticate(ctx, testUsername, "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = customers.Authenticate(ctx, "who_is_this", "password123")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestCustomerAuthenticateDisabled(t *testing.T) {
	store := repository.NewMemStore()
	customers := newCustomerService(store)
	ctx := context.Background()

	hash, err := utils.HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	store.SeedCustomer(model.Customer{
		DNI:          "DISA000000000000DIS",
		Username:     "disabled_user",
		Email:        "disabled@example.com",
		PasswordHash: hash,
		Enabled:      false,
		Roles:        []string{model.RoleCustomer},
	})

	_, err = customers.Authenticate(ctx, "disabled_user", "password123")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestCustomerUpdateContact(t *testing.T) {
	store := newTestStore()
	customers := newCustomerService(store)
	ctx := context.Background()

	c, err := customers.UpdateContact(ctx, testDNI, "1111-2222-3333-4444", "33-99-88-77")
	require.NoError(t, err)
	assert.Equal(t, "1111-2222-3333-4444", c.CreditCard)
	assert.Equal(t, "33-99-88-77", c.PhoneNumber)

	_, err = customers.UpdateContact(ctx, "NOPE000000000000", "1111-2222-3333-4444", "33-99-88-77")
	assert.True(t, repository.IsNotFound(err))
}

func TestCustomerUpdateUsernameAndPassword(t *testing.T) {
	store := newTestStore()
	customers := newCustomerService(store)
	ctx := context.Background()

	c, err := customers.UpdateUsername(ctx, testDNI, "john_doe_updated")
	require.NoError(t, err)
	assert.Equal(t, "john_doe_updated", c.Username)

	require.NoError(t, customers.UpdatePassword(ctx, testDNI, "newPassword456"))
	updated, err := customers.Read(ctx, testDNI)
	require.NoError(t, err)
	assert.True(t, utils.CheckPassword(updated.PasswordHash, "newPassword456"))
}

func TestCustomerAddRole(t *testing.T) {
	store := newTestStore()
	customers := newCustomerService(store)
	ctx := context.Background()

	c, err := customers.AddRole(ctx, testUsername, model.RoleAdmin)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{model.RoleCustomer, model.RoleAdmin}, c.Roles)

	// Granting twice is a no-op.
	c, err = customers.AddRole(ctx, testUsername, model.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, c.Roles, 2)

	_, err = customers.AddRole(ctx, testUsername, "SUPERUSER")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = customers.AddRole(ctx, "who_is_this", model.RoleAdmin)
	assert.True(t, repository.IsNotFound(err))
}
