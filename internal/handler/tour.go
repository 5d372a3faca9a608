package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/service"
)

// TourHandler serves the tour aggregate endpoints.
type TourHandler struct {
	tours *service.TourService
}

// NewTourHandler wires the tour endpoints.
func NewTourHandler(tours *service.TourService) *TourHandler {
	return &TourHandler{tours: tours}
}

// TourFly selects one flight for a new tour.
type TourFly struct {
	ID uint64 `json:"id" validate:"required,gt=0"`
}

// TourHotel selects one hotel stay for a new tour.
type TourHotel struct {
	ID        uint64 `json:"id" validate:"required,gt=0"`
	TotalDays int    `json:"totalDays" validate:"required,min=1,max=30"`
}

// TourRequest bundles at least one flight and one hotel stay.
type TourRequest struct {
	CustomerID string      `json:"customerId" validate:"required,min=18,max=20"`
	Flights    []TourFly   `json:"flights" validate:"required,min=1,dive"`
	Hotels     []TourHotel `json:"hotels" validate:"required,min=1,dive"`
}

// TourResponse carries the aggregate id and its child id sets.  Child
// details are read through /ticket/{id} and /reservation/{id}.
type TourResponse struct {
	ID             uint64   `json:"id"`
	TicketIDs      []string `json:"ticketIds"`
	ReservationIDs []string `json:"reservationIds"`
}

func toTourResponse(t *model.Tour) TourResponse {
	resp := TourResponse{ID: t.ID, TicketIDs: t.TicketIDs, ReservationIDs: t.ReservationIDs}
	if resp.TicketIDs == nil {
		resp.TicketIDs = []string{}
	}
	if resp.ReservationIDs == nil {
		resp.ReservationIDs = []string{}
	}
	return resp
}

// Create bundles the requested flights and hotel stays into a new tour.
func (h *TourHandler) Create(c echo.Context) error {
	var req TourRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if ok, err := validate(c, &req); !ok {
		return err
	}
	flyIDs := make([]uint64, 0, len(req.Flights))
	for _, f := range req.Flights {
		flyIDs = append(flyIDs, f.ID)
	}
	hotelStays := make(map[uint64]int, len(req.Hotels))
	for _, ht := range req.Hotels {
		hotelStays[ht.ID] = ht.TotalDays
	}
	tour, err := h.tours.Create(c.Request().Context(), req.CustomerID, flyIDs, hotelStays)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, toTourResponse(tour))
}

// Get returns a tour and its child id sets.
func (h *TourHandler) Get(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	tour, err := h.tours.Read(c.Request().Context(), id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toTourResponse(tour))
}

// Delete removes a tour; its children survive standalone.
func (h *TourHandler) Delete(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	if err := h.tours.Delete(c.Request().Context(), id); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddTicket books one more flight onto the tour.
func (h *TourHandler) AddTicket(c echo.Context) error {
	tourID, ok, err := pathID(c, "tourId")
	if !ok {
		return err
	}
	flyID, ok, err := pathID(c, "flyId")
	if !ok {
		return err
	}
	ticketID, err := h.tours.AddTicket(c.Request().Context(), tourID, flyID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ticketId": ticketID})
}

// RemoveTicket detaches a ticket from the tour.
func (h *TourHandler) RemoveTicket(c echo.Context) error {
	tourID, ok, err := pathID(c, "tourId")
	if !ok {
		return err
	}
	if err := h.tours.RemoveTicket(c.Request().Context(), tourID, c.Param("ticketId")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddReservation books one more hotel stay onto the tour, with the stay
// length taken from ?totalDays=.
func (h *TourHandler) AddReservation(c echo.Context) error {
	tourID, ok, err := pathID(c, "tourId")
	if !ok {
		return err
	}
	hotelID, ok, err := pathID(c, "hotelId")
	if !ok {
		return err
	}
	totalDays, err := strconv.Atoi(c.QueryParam("totalDays"))
	if err != nil || totalDays < 1 || totalDays > 30 {
		return c.JSON(http.StatusBadRequest, errorBody{
			Status: "BAD_REQUEST",
			Code:   http.StatusBadRequest,
			Errors: []FieldError{{Field: "totalDays", Error: "must be between 1 and 30"}},
		})
	}
	reservationID, err := h.tours.AddReservation(c.Request().Context(), tourID, hotelID, totalDays)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservationId": reservationID})
}

// RemoveReservation detaches a reservation from the tour.
func (h *TourHandler) RemoveReservation(c echo.Context) error {
	tourID, ok, err := pathID(c, "tourId")
	if !ok {
		return err
	}
	if err := h.tours.RemoveReservation(c.Request().Context(), tourID, c.Param("reservationId")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
