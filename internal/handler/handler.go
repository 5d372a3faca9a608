// Package handler contains the HTTP layer: request binding, validation
// and the translation of service errors into the uniform error
// envelope every endpoint shares.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/alejandrorivera22/great-travel/internal/repository"
	"github.com/alejandrorivera22/great-travel/internal/service"
)

// FieldError is one entry of a validation failure list.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// errorBody is the envelope every error response carries: a status
// name, the numeric code and either a message or a field-error list.
type errorBody struct {
	Status  string       `json:"status"`
	Code    int          `json:"code"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func fail(c echo.Context, code int, status, message string) error {
	return c.JSON(code, errorBody{Status: status, Code: code, Message: message})
}

// writeErr maps a service or repository error onto its response.
// Unresolvable ids are client mistakes, so NotFound answers 400 with
// the record's table name in the message.
func writeErr(c echo.Context, err error) error {
	switch {
	case repository.IsNotFound(err):
		return fail(c, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, repository.ErrDNIExists),
		errors.Is(err, repository.ErrUsernameExists),
		errors.Is(err, repository.ErrEmailExists),
		errors.Is(err, service.ErrInvalidRole):
		return fail(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, service.ErrBadCredentials),
		errors.Is(err, service.ErrAccountDisabled):
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal error")
	}
}

// validate binds nothing; it runs the request struct through the echo
// validator and, on failure, writes the per-field violation list.  The
// returned bool tells the handler whether to continue.
func validate(c echo.Context, req any) (bool, error) {
	err := c.Validate(req)
	if err == nil {
		return true, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid request")
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Error: violationMessage(fe)})
	}
	return false, c.JSON(http.StatusBadRequest, errorBody{
		Status: "BAD_REQUEST",
		Code:   http.StatusBadRequest,
		Errors: fields,
	})
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is mandatory"
	case "email":
		return "invalid email"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt", "gte":
		return "must be positive"
	case "cardformat":
		return "must be in the format XXXX-XXXX-XXXX-XXXX"
	case "phoneformat":
		return "must be in the format XX-XX-XX-XX"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// pathID parses a numeric path parameter, answering 400 on garbage.
func pathID(c echo.Context, name string) (uint64, bool, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false, fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid "+name)
	}
	return id, true, nil
}
