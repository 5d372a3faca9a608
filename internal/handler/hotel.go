package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/alejandrorivera22/great-travel/internal/model"
	"github.com/alejandrorivera22/great-travel/internal/repository"
	"github.com/alejandrorivera22/great-travel/internal/service"
)

// HotelHandler serves the public, read-only hotel catalog.
type HotelHandler struct {
	catalog *service.CatalogService
}

// NewHotelHandler wires the hotel catalog endpoints.
func NewHotelHandler(catalog *service.CatalogService) *HotelHandler {
	return &HotelHandler{catalog: catalog}
}

// HotelResponse is one catalog entry.
type HotelResponse struct {
	ID      uint64          `json:"id"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Rating  int             `json:"rating"`
	Price   decimal.Decimal `json:"price"`
}

func toHotelResponses(hotels []model.Hotel) []HotelResponse {
	out := make([]HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, HotelResponse{ID: h.ID, Name: h.Name, Address: h.Address, Rating: h.Rating, Price: h.Price})
	}
	return out
}

// List returns one page of hotels, honoring the Sort-Type header.
func (h *HotelHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	sort := repository.ParseSortType(c.Request().Header.Get("Sort-Type"))
	hotels, err := h.catalog.Hotels(c.Request().Context(), page, size, sort)
	if err != nil {
		return writeErr(c, err)
	}
	return catalogJSON(c, toHotelResponses(hotels))
}

// LessPrice lists hotels with a base price below ?price=.
func (h *HotelHandler) LessPrice(c echo.Context) error {
	price, ok, err := priceParam(c, "price")
	if !ok {
		return err
	}
	hotels, err := h.catalog.HotelsCheaperThan(c.Request().Context(), price)
	if err != nil {
		return writeErr(c, err)
	}
	return catalogJSON(c, toHotelResponses(hotels))
}

// BetweenPrice lists hotels priced within [?min=, ?max=].
func (h *HotelHandler) BetweenPrice(c echo.Context) error {
	min, ok, err := priceParam(c, "min")
	if !ok {
		return err
	}
	max, ok, err := priceParam(c, "max")
	if !ok {
		return err
	}
	hotels, err := h.catalog.HotelsBetweenPrice(c.Request().Context(), min, max)
	if err != nil {
		return writeErr(c, err)
	}
	return catalogJSON(c, toHotelResponses(hotels))
}

// Rating lists hotels rated above ?rating=.  The value is clamped to
// [1,4] in the catalog service.
func (h *HotelHandler) Rating(c echo.Context) error {
	rating, err := strconv.Atoi(c.QueryParam("rating"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid rating")
	}
	hotels, err := h.catalog.HotelsRatedAbove(c.Request().Context(), rating)
	if err != nil {
		return writeErr(c, err)
	}
	return catalogJSON(c, toHotelResponses(hotels))
}
