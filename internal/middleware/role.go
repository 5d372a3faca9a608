package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that enforces that the authenticated
// customer holds at least one of the given roles.  The role names
// correspond to the values stored in the token's "roles" claim.  It
// assumes JWTAuth already ran and stored the claim under CtxRoles; a
// request whose roles do not intersect the allowed set is aborted with
// 403 Forbidden.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			held, ok := c.Get(CtxRoles).([]string)
			if ok {
				for _, r := range held {
					if allowed[r] {
						return next(c)
					}
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{
				"status":  "FORBIDDEN",
				"code":    http.StatusForbidden,
				"message": "forbidden",
			})
		}
	}
}
