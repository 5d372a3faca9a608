package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alejandrorivera22/great-travel/internal/handler"
	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/repository"
	"github.com/alejandrorivera22/great-travel/internal/router"
	"github.com/alejandrorivera22/great-travel/internal/service"
	"github.com/alejandrorivera22/great-travel/internal/utils"
)

const (
	testSecret = "test-secret"
	testDNI    = "VIKI771012HMCRG093"
)

// newTestServer wires the full HTTP surface over an in-memory store
// seeded with one customer, one flight and one hotel.
func newTestServer(t *testing.T) (*echo.Echo, *repository.MemStore) {
	t.Helper()

	store := repository.NewMemStore()
	hash, err := utils.HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	store.SeedCustomer(model.Customer{
		DNI:          testDNI,
		Username:     "john_doe",
		Email:        "john@example.com",
		PasswordHash: hash,
		Enabled:      true,
		Roles:        []string{model.RoleCustomer},
	})
	store.SeedFlight(model.Flight{
		ID: 1, OriginName: "Mexico", DestinyName: "Grecia",
		AeroLine: model.AeroGold, Price: decimal.RequireFromString("50.00"),
	})
	store.SeedHotel(model.Hotel{
		ID: 1, Name: "Hotel Neos", Address: "Athens", Rating: 4,
		Price: decimal.RequireFromString("100.00"),
	})

	dates := service.FixedDates{DepartureDays: 5, ArrivalDays: 15}
	customers := service.NewCustomerService(store, bcrypt.MinCost)
	catalog := service.NewCatalogService(store)
	tickets := service.NewTicketService(store, dates, nil)
	reservations := service.NewReservationService(store, nil)
	tours := service.NewTourService(store, dates, nil)

	e := echo.New()
	e.Validator = handler.NewValidator()
	router.Register(e, router.Handlers{
		Auth:        handler.NewAuthHandler(customers, testSecret, 15),
		Customer:    handler.NewCustomerHandler(customers),
		Fly:         handler.NewFlyHandler(catalog),
		Hotel:       handler.NewHotelHandler(catalog),
		Ticket:      handler.NewTicketHandler(tickets),
		Reservation: handler.NewReservationHandler(reservations),
		Tour:        handler.NewTourHandler(tours),
	}, router.Middleware{}, testSecret)
	return e, store
}

func bearer(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, testDNI, "john_doe", roles, 15)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

func doJSON(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginAndRegister(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/login", "",
		`{"username":"john_doe","password":"password123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["token"])

	rec = doJSON(e, http.MethodPost, "/auth/login", "",
		`{"username":"john_doe","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/register", "",
		`{"dni":"OTRO771012HMCRG094","username":"jane_doe","email":"jane@example.com",
		  "password":"password123","creditCard":"1111-2222-3333-4444","phoneNumber":"11-22-33-44"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Same username again conflicts.
	rec = doJSON(e, http.MethodPost, "/auth/register", "",
		`{"dni":"TRES771012HMCRG095","username":"jane_doe","email":"jane2@example.com",
		  "password":"password123","creditCard":"1111-2222-3333-4444","phoneNumber":"11-22-33-44"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidationErrors(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"dni":"OTRO771012HMCRG094","username":"x","email":"not-an-email",
		  "password":"password123","creditCard":"garbage","phoneNumber":"11-22-33-44"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "BAD_REQUEST", body["status"])
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, errs)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tour", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/ticket/some-id", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCustomerRoleGates(t *testing.T) {
	e, _ := newTestServer(t)

	// Reading a profile requires ADMIN.
	rec := doJSON(e, http.MethodGet, "/customer/"+testDNI, bearer(t, model.RoleCustomer), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodGet, "/customer/"+testDNI, bearer(t, model.RoleAdmin), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, testDNI, body["dni"])
	// The card number is never exposed.
	_, leaked := body["creditCard"]
	assert.False(t, leaked)

	// Profile updates are open to both roles.
	rec = doJSON(e, http.MethodPut, "/customer/"+testDNI, bearer(t, model.RoleCustomer),
		`{"creditCard":"1111-2222-3333-4444","phoneNumber":"33-99-88-77"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Role grants are ADMIN only.
	rec = doJSON(e, http.MethodPatch, "/customer/add-role?username=john_doe&role=ADMIN",
		bearer(t, model.RoleCustomer), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/customer/add-role?username=john_doe&role=ADMIN",
		bearer(t, model.RoleAdmin), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/customer/add-role?username=john_doe&role=SUPERUSER",
		bearer(t, model.RoleAdmin), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/fly?page=0&size=10", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// An empty result set answers 204.
	rec = doJSON(e, http.MethodGet, "/fly/less_price?price=1.00", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/hotel/rating?rating=6", "", "")
	// Only a rating-4 hotel is seeded; clamped to 4 the filter is
	// strictly-above and finds nothing.
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/hotel/rating?rating=2", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/fly/origin_destiny?origin=Mexico&destiny=Grecia", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTicketLifecycleOverHTTP(t *testing.T) {
	e, _ := newTestServer(t)
	token := bearer(t, model.RoleCustomer)

	rec := doJSON(e, http.MethodPost, "/ticket", token,
		`{"clientId":"`+testDNI+`","flyId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "62.5", created["price"])

	rec = doJSON(e, http.MethodGet, "/ticket/"+id, token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/ticket?flyId=1", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "62.5", decodeBody(t, rec)["flyPrice"])

	rec = doJSON(e, http.MethodDelete, "/ticket/"+id, token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Reading it again is a client error naming the table.
	rec = doJSON(e, http.MethodGet, "/ticket/"+id, token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "BAD_REQUEST", body["status"])
	assert.Contains(t, body["message"], "ticket")
}

func TestTicketValidation(t *testing.T) {
	e, _ := newTestServer(t)
	token := bearer(t, model.RoleCustomer)

	// clientId too short plus missing flyId.
	rec := doJSON(e, http.MethodPost, "/ticket", token, `{"clientId":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := decodeBody(t, rec)["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestTourLifecycleOverHTTP(t *testing.T) {
	e, store := newTestServer(t)
	token := bearer(t, model.RoleCustomer)

	rec := doJSON(e, http.MethodPost, "/tour", token,
		`{"customerId":"`+testDNI+`","flights":[{"id":1}],"hotels":[{"id":1,"totalDays":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, float64(1), created["id"])
	ticketIDs := created["ticketIds"].([]any)
	require.Len(t, ticketIDs, 1)
	require.Len(t, created["reservationIds"].([]any), 1)

	rec = doJSON(e, http.MethodGet, "/tour/1", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/tour/1/add_ticket/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	newTicket := decodeBody(t, rec)["ticketId"].(string)

	rec = doJSON(e, http.MethodPatch, "/tour/1/remove_ticket/"+newTicket, token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/tour/1/add_reservation/1?totalDays=3", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPatch, "/tour/1/add_reservation/1?totalDays=31", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/tour/1", token, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Children survive the delete.
	ticket, err := store.TicketByID(context.Background(), ticketIDs[0].(string))
	require.NoError(t, err)
	assert.Nil(t, ticket.TourID)

	rec = doJSON(e, http.MethodGet, "/tour/1", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "tour")
}

func TestTourValidation(t *testing.T) {
	e, _ := newTestServer(t)
	token := bearer(t, model.RoleCustomer)

	// Empty flight and hotel sets are rejected before any lookup.
	rec := doJSON(e, http.MethodPost, "/tour", token,
		`{"customerId":"`+testDNI+`","flights":[],"hotels":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := decodeBody(t, rec)["errors"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, errs)

	// Unknown flight resolves to a 400 naming the table.
	rec = doJSON(e, http.MethodPost, "/tour", token,
		`{"customerId":"`+testDNI+`","flights":[{"id":99}],"hotels":[{"id":1,"totalDays":2}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "fly")
}

func TestReservationLifecycleOverHTTP(t *testing.T) {
	e, _ := newTestServer(t)
	token := bearer(t, model.RoleCustomer)

	rec := doJSON(e, http.MethodPost, "/reservation", token,
		`{"clientId":"`+testDNI+`","hotelId":1,"totalDays":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	id := created["id"].(string)
	assert.Equal(t, "125", created["price"])

	rec = doJSON(e, http.MethodPut, "/reservation/"+id, token,
		`{"clientId":"`+testDNI+`","hotelId":1,"totalDays":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), decodeBody(t, rec)["totalDays"])

	// totalDays out of range fails validation.
	rec = doJSON(e, http.MethodPost, "/reservation", token,
		`{"clientId":"`+testDNI+`","hotelId":1,"totalDays":31}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
