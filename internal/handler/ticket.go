package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/service"
)

// TicketHandler serves standalone ticket purchases.
type TicketHandler struct {
	tickets *service.TicketService
}

// NewTicketHandler wires the ticket endpoints.
func NewTicketHandler(tickets *service.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// TicketRequest carries a purchase or update order.
type TicketRequest struct {
	ClientID string `json:"clientId" validate:"required,min=18,max=20"`
	FlyID    uint64 `json:"flyId" validate:"required,gt=0"`
}

// TicketResponse is the persisted ticket view.
type TicketResponse struct {
	ID            string          `json:"id"`
	ClientDNI     string          `json:"clientDni"`
	FlyID         uint64          `json:"flyId"`
	Price         decimal.Decimal `json:"price"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	DepartureDate time.Time       `json:"departureDate"`
	ArrivalDate   time.Time       `json:"arrivalDate"`
}

func toTicketResponse(t *model.Ticket) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		ClientDNI:     t.CustomerDNI,
		FlyID:         t.FlyID,
		Price:         t.Price,
		PurchaseDate:  t.PurchaseDate,
		DepartureDate: t.DepartureDate,
		ArrivalDate:   t.ArrivalDate,
	}
}

// Create purchases one ticket.
func (h *TicketHandler) Create(c echo.Context) error {
	var req TicketRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if ok, err := validate(c, &req); !ok {
		return err
	}
	ticket, err := h.tickets.Create(c.Request().Context(), req.ClientID, req.FlyID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

// Get returns one ticket by id.
func (h *TicketHandler) Get(c echo.Context) error {
	ticket, err := h.tickets.Read(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toTicketResponse(ticket))
}

// Update re-points a ticket at a flight, recomputing price and dates.
func (h *TicketHandler) Update(c echo.Context) error {
	var req TicketRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if ok, err := validate(c, &req); !ok {
		return err
	}
	ticket, err := h.tickets.Update(c.Request().Context(), c.Param("id"), req.FlyID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toTicketResponse(ticket))
}

// Delete removes a ticket.
func (h *TicketHandler) Delete(c echo.Context) error {
	if err := h.tickets.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Price quotes the charged price for ?flyId= without buying anything.
func (h *TicketHandler) Price(c echo.Context) error {
	flyID, err := strconv.ParseUint(c.QueryParam("flyId"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid flyId")
	}
	price, err := h.tickets.FindPrice(c.Request().Context(), flyID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"flyPrice": price})
}
