// Package middleware provides reusable HTTP middleware: bearer-token
// authentication, role gating, the catalog response cache and the auth
// rate limiter.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/alejandrorivera22/great-travel/internal/utils"
)

// Context keys set by JWTAuth for downstream middleware and handlers.
const (
	CtxDNI      = "dni"
	CtxUsername = "username"
	CtxRoles    = "roles"
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the authenticated customer's dni, username and
// roles into the request context.  The provided secret must match the
// one used when issuing tokens.  Protected routes wrap this so handlers
// can read the caller via c.Get(CtxDNI) and c.Get(CtxRoles).
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthorized(c, "missing bearer token")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return unauthorized(c, "invalid token")
			}
			c.Set(CtxDNI, claims.DNI)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRoles, claims.Roles)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"status":  "UNAUTHORIZED",
		"code":    http.StatusUnauthorized,
		"message": msg,
	})
}
