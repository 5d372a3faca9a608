// Package router maps the HTTP surface onto handlers and wires the
// auth, role, cache and rate-limit middleware per route group.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/alejandrorivera22/great-travel/internal/handler"
	"github.com/alejandrorivera22/great-travel/internal/middleware"
	"github.com/alejandrorivera22/great-travel/internal/model"
)

// Handlers bundles everything the router registers.
type Handlers struct {
	Auth        *handler.AuthHandler
	Customer    *handler.CustomerHandler
	Fly         *handler.FlyHandler
	Hotel       *handler.HotelHandler
	Ticket      *handler.TicketHandler
	Reservation *handler.ReservationHandler
	Tour        *handler.TourHandler
}

// Middleware bundles the per-group middleware built in main.
type Middleware struct {
	Cache     echo.MiddlewareFunc // catalog response cache, may be nil
	RateLimit echo.MiddlewareFunc // auth token bucket, may be nil
}

// Register wires every route.  Catalog and auth endpoints are public;
// booking endpoints require a token; customer administration carries
// extra role gates.
func Register(e *echo.Echo, h Handlers, mw Middleware, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	auth := e.Group("/auth")
	if mw.RateLimit != nil {
		auth.Use(mw.RateLimit)
	}
	auth.POST("/login", h.Auth.Login)
	auth.POST("/register", h.Auth.Register)

	fly := e.Group("/fly")
	if mw.Cache != nil {
		fly.Use(mw.Cache)
	}
	fly.GET("", h.Fly.List)
	fly.GET("/less_price", h.Fly.LessPrice)
	fly.GET("/between_price", h.Fly.BetweenPrice)
	fly.GET("/origin_destiny", h.Fly.OriginDestiny)

	hotel := e.Group("/hotel")
	if mw.Cache != nil {
		hotel.Use(mw.Cache)
	}
	hotel.GET("", h.Hotel.List)
	hotel.GET("/less_price", h.Hotel.LessPrice)
	hotel.GET("/between_price", h.Hotel.BetweenPrice)
	hotel.GET("/rating", h.Hotel.Rating)

	authed := middleware.JWTAuth(jwtSecret)

	ticket := e.Group("/ticket", authed)
	ticket.POST("", h.Ticket.Create)
	ticket.GET("", h.Ticket.Price)
	ticket.GET("/:id", h.Ticket.Get)
	ticket.PUT("/:id", h.Ticket.Update)
	ticket.DELETE("/:id", h.Ticket.Delete)

	reservation := e.Group("/reservation", authed)
	reservation.POST("", h.Reservation.Create)
	reservation.GET("", h.Reservation.Price)
	reservation.GET("/:id", h.Reservation.Get)
	reservation.PUT("/:id", h.Reservation.Update)
	reservation.DELETE("/:id", h.Reservation.Delete)

	tour := e.Group("/tour", authed)
	tour.POST("", h.Tour.Create)
	tour.GET("/:id", h.Tour.Get)
	tour.DELETE("/:id", h.Tour.Delete)
	tour.PATCH("/:tourId/add_ticket/:flyId", h.Tour.AddTicket)
	tour.PATCH("/:tourId/remove_ticket/:ticketId", h.Tour.RemoveTicket)
	tour.PATCH("/:tourId/add_reservation/:hotelId", h.Tour.AddReservation)
	tour.PATCH("/:tourId/remove_reservation/:reservationId", h.Tour.RemoveReservation)

	adminOnly := middleware.RequireRole(model.RoleAdmin)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleCustomer)

	customer := e.Group("/customer", authed)
	customer.GET("/:dni", h.Customer.GetByDNI, adminOnly)
	customer.PUT("/:dni", h.Customer.Update, anyRole)
	customer.PATCH("/:dni/username", h.Customer.UpdateUsername, anyRole)
	customer.PATCH("/:dni/password", h.Customer.UpdatePassword, anyRole)
	customer.PATCH("/add-role", h.Customer.AddRole, adminOnly)
}
