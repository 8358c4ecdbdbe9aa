package handler

import (
	"net/http"
	"time"

	"admin-dashboard/internal/api"
	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/database"

	"github.com/labstack/echo/v4"
)

// PingHandler checks the database and the cache.
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與快取連線
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := cch.Set(ctx, "ping", "pong", time.Second).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
