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

// FlyHandler serves the public, read-only flight catalog.
type FlyHandler struct {
	catalog *service.CatalogService
}

// NewFlyHandler wires the flight catalog endpoints.
func NewFlyHandler(catalog *service.CatalogService) *FlyHandler {
	return &FlyHandler{catalog: catalog}
}

// FlyResponse is one catalog entry.
type FlyResponse struct {
	ID          uint64          `json:"id"`
	OriginName  string          `json:"originName"`
	DestinyName string          `json:"destinyName"`
	OriginLat   float64         `json:"originLat"`
	OriginLng   float64         `json:"originLng"`
	DestinyLat  float64         `json:"destinyLat"`
	DestinyLng  float64         `json:"destinyLng"`
	AeroLine    string          `json:"aeroLine"`
	Price       decimal.Decimal `json:"price"`
}

func toFlyResponses(flights []model.Flight) []FlyResponse {
	out := make([]FlyResponse, 0, len(flights))
	for _, f := range flights {
		out = append(out, FlyResponse{
			ID:          f.ID,
			OriginName:  f.OriginName,
			DestinyName: f.DestinyName,
			OriginLat:   f.OriginLat,
			OriginLng:   f.OriginLng,
			DestinyLat:  f.DestinyLat,
			DestinyLng:  f.DestinyLng,
			AeroLine:    f.AeroLine,
			Price:       f.Price,
		})
	}
	return out
}

// List returns one page of flights.  The optional Sort-Type header
// (LOWER/UPPER) orders by price; an empty page answers 204.
func (h *FlyHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	sort := repository.ParseSortType(c.Request().Header.Get("Sort-Type"))
	flights, err := h.catalog.Flights(c.Request().Context(), page, size, sort)
	if err != nil {
		return writeErr(c, err)
	}
	return catalogJSON(c, toFlyResponses(flights))
}

// LessPrice lists flights with a base price below ?price=.
func (h *FlyHandler) LessPrice(c echo.Context) error {
	price, ok, err := priceParam(c, "price")
	if !ok {
		return err
	}
	flights, err := h.catalog.FlightsCheaperThan(c.Request().Context(), price)
	if err != nil {
		return writeErr(c, err)
	}
	return catalogJSON(c, toFlyResponses(flights))
}

// BetweenPrice lists flights priced within [?min=, ?max=].
func (h *FlyHandler) BetweenPrice(c echo.Context) error {
	min, ok, err := priceParam(c, "min")
	if !ok {
		return err
	}
	max, ok, err := priceParam(c, "max")
	if !ok {
		return err
	}
	flights, err := h.catalog.FlightsBetweenPrice(c.Request().Context(), min, max)
	if err != nil {
		return writeErr(c, err)
	}
	return catalogJSON(c, toFlyResponses(flights))
}

// OriginDestiny lists flights between ?origin= and ?destiny=.
func (h *FlyHandler) OriginDestiny(c echo.Context) error {
	origin := c.QueryParam("origin")
	destiny := c.QueryParam("destiny")
	if origin == "" || destiny == "" {
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", "origin and destiny are mandatory")
	}
	flights, err := h.catalog.FlightsByRoute(c.Request().Context(), origin, destiny)
	if err != nil {
		return writeErr(c, err)
	}
	return catalogJSON(c, toFlyResponses(flights))
}

// pageParams reads ?page= and ?size= with defaults and bounds.
func pageParams(c echo.Context) (page, size int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size < 1 {
		size = 10
	}
	if size > 50 {
		size = 50
	}
	return page, size
}

// priceParam parses a decimal query parameter, answering 400 when it
// is missing or not a number.
func priceParam(c echo.Context, name string) (decimal.Decimal, bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return decimal.Decimal{}, false, fail(c, http.StatusBadRequest, "BAD_REQUEST", name+" is mandatory")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false, fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid "+name)
	}
	return d, true, nil
}

// catalogJSON answers 204 for empty result sets, 200 otherwise.
func catalogJSON[T any](c echo.Context, items []T) error {
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}
