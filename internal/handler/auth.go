package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alejandrorivera22/great-travel/internal/service"
	"github.com/alejandrorivera22/great-travel/internal/utils"
)

// AuthHandler issues access tokens for registration and login.
type AuthHandler struct {
	customers *service.CustomerService
	secret    string
	ttlMin    int
}

// NewAuthHandler wires the auth endpoints.
func NewAuthHandler(customers *service.CustomerService, secret string, ttlMin int) *AuthHandler {
	return &AuthHandler{customers: customers, secret: secret, ttlMin: ttlMin}
}

// AuthRequest carries login credentials.
type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries a new customer profile.  Card and phone
// formats match the stored representation exactly.
type RegisterRequest struct {
	DNI         string `json:"dni" validate:"required"`
	Username    string `json:"username" validate:"required,min=5,max=30"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=5,max=40"`
	CreditCard  string `json:"creditCard" validate:"required,cardformat"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phoneformat"`
}

// TokenResponse is the success payload of both auth endpoints.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Login exchanges a username/password pair for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req AuthRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if ok, err := validate(c, &req); !ok {
		return err
	}
	customer, err := h.customers.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeErr(c, err)
	}
	token, err := utils.NewAccessToken(h.secret, customer.DNI, customer.Username, customer.Roles, h.ttlMin)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token.Token, ExpiresAt: token.Exp.Unix()})
}

// Register creates a customer and logs it straight in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if ok, err := validate(c, &req); !ok {
		return err
	}
	ctx := c.Request().Context()
	customer, err := h.customers.Register(ctx, req.DNI, req.Username, req.Email, req.Password, req.CreditCard, req.PhoneNumber)
	if err != nil {
		return writeErr(c, err)
	}
	token, err := utils.NewAccessToken(h.secret, customer.DNI, customer.Username, customer.Roles, h.ttlMin)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, TokenResponse{Token: token.Token, ExpiresAt: token.Exp.Unix()})
}
