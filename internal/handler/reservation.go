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

// ReservationHandler serves standalone hotel bookings.
type ReservationHandler struct {
	reservations *service.ReservationService
}

// NewReservationHandler wires the reservation endpoints.
func NewReservationHandler(reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// ReservationRequest carries a booking or update order.
type ReservationRequest struct {
	ClientID  string `json:"clientId" validate:"required,min=18,max=20"`
	HotelID   uint64 `json:"hotelId" validate:"required,gt=0"`
	TotalDays int    `json:"totalDays" validate:"required,min=1,max=30"`
}

// ReservationResponse is the persisted reservation view.
type ReservationResponse struct {
	ID         string          `json:"id"`
	ClientDNI  string          `json:"clientDni"`
	HotelID    uint64          `json:"hotelId"`
	Price      decimal.Decimal `json:"price"`
	TotalDays  int             `json:"totalDays"`
	ReservedAt time.Time       `json:"reservedAt"`
	DateStart  time.Time       `json:"dateStart"`
	DateEnd    time.Time       `json:"dateEnd"`
}

func toReservationResponse(r *model.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		ClientDNI:  r.CustomerDNI,
		HotelID:    r.HotelID,
		Price:      r.Price,
		TotalDays:  r.TotalDays,
		ReservedAt: r.ReservedAt,
		DateStart:  r.DateStart,
		DateEnd:    r.DateEnd,
	}
}

// Create books a stay.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if ok, err := validate(c, &req); !ok {
		return err
	}
	reservation, err := h.reservations.Create(c.Request().Context(), req.ClientID, req.HotelID, req.TotalDays)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, toReservationResponse(reservation))
}

// Get returns one reservation by id.
func (h *ReservationHandler) Get(c echo.Context) error {
	reservation, err := h.reservations.Read(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toReservationResponse(reservation))
}

// Update re-points a reservation at a hotel and stay length.
func (h *ReservationHandler) Update(c echo.Context) error {
	var req ReservationRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if ok, err := validate(c, &req); !ok {
		return err
	}
	reservation, err := h.reservations.Update(c.Request().Context(), c.Param("id"), req.HotelID, req.TotalDays)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toReservationResponse(reservation))
}

// Delete removes a reservation.
func (h *ReservationHandler) Delete(c echo.Context) error {
	if err := h.reservations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Price quotes the charged nightly price for ?hotelId=.
func (h *ReservationHandler) Price(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.QueryParam("hotelId"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid hotelId")
	}
	price, err := h.reservations.FindPrice(c.Request().Context(), hotelID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"hotelPrice": price})
}
