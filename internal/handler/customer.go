package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/service"
)

// CustomerHandler serves profile reads and updates.
type CustomerHandler struct {
	customers *service.CustomerService
}

// NewCustomerHandler wires the customer endpoints.
func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// CustomerUpdateRequest carries the mutable contact fields.
type CustomerUpdateRequest struct {
	CreditCard  string `json:"creditCard" validate:"required,cardformat"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phoneformat"`
}

// CustomerResponse is the public profile view.  The credit card and
// password hash are never exposed.
type CustomerResponse struct {
	DNI           string   `json:"dni"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Roles         []string `json:"roles"`
	PhoneNumber   string   `json:"phoneNumber"`
	TotalFlights  int      `json:"totalFlights"`
	TotalLodgings int      `json:"totalLodgings"`
	TotalTours    int      `json:"totalTours"`
}

func toCustomerResponse(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		DNI:           c.DNI,
		Username:      c.Username,
		Email:         c.Email,
		Roles:         c.Roles,
		PhoneNumber:   c.PhoneNumber,
		TotalFlights:  c.TotalFlights,
		TotalLodgings: c.TotalLodgings,
		TotalTours:    c.TotalTours,
	}
}

// GetByDNI returns one customer profile.
func (h *CustomerHandler) GetByDNI(c echo.Context) error {
	customer, err := h.customers.Read(c.Request().Context(), c.Param("dni"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Update replaces the credit card and phone number.
func (h *CustomerHandler) Update(c echo.Context) error {
	var req CustomerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if ok, err := validate(c, &req); !ok {
		return err
	}
	customer, err := h.customers.UpdateContact(c.Request().Context(), c.Param("dni"), req.CreditCard, req.PhoneNumber)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// UpdateUsername changes the login name, taken from the query string.
func (h *CustomerHandler) UpdateUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "username is mandatory")
	}
	customer, err := h.customers.UpdateUsername(c.Request().Context(), c.Param("dni"), username)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// UpdatePassword sets a new password, taken from the query string.
func (h *CustomerHandler) UpdatePassword(c echo.Context) error {
	password := c.QueryParam("password")
	if password == "" {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "password is mandatory")
	}
	dni := c.Param("dni")
	if err := h.customers.UpdatePassword(c.Request().Context(), dni, password); err != nil {
		return writeErr(c, err)
	}
	customer, err := h.customers.Read(c.Request().Context(), dni)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// AddRole grants a role, addressed by username.
func (h *CustomerHandler) AddRole(c echo.Context) error {
	username := c.QueryParam("username")
	role := c.QueryParam("role")
	if username == "" || role == "" {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "username and role are mandatory")
	}
	customer, err := h.customers.AddRole(c.Request().Context(), username, role)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}
