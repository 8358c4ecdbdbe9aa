package handler

import (
	"errors"
	"net/http"
	"strconv"

	"admin-dashboard/internal/api"
	"admin-dashboard/internal/database"
	"admin-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

// ParseID reads a positive :id path parameter.
func ParseID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// BindValid binds the JSON body into req and validates it. It returns the
// message of the 400 answer, or "" when req is usable.
func BindValid(c echo.Context, req any) string {
	if err := c.Bind(req); err != nil {
		return "cuerpo de la petición inválido"
	}
	if err := c.Validate(req); err != nil {
		return "datos inválidos: " + err.Error()
	}
	return ""
}

func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: message})
}

// StoreError maps a store failure to its HTTP answer. An empty conflict
// message disables the 409 mapping.
func StoreError(c echo.Context, err error, notFound, conflict string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFound})
	case conflict != "" && database.IsUniqueViolation(err):
		return c.JSON(http.StatusConflict, api.ErrorResponse{Message: conflict})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "error interno del servidor"})
	}
}
