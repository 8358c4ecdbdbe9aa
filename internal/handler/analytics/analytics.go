package analytics

import (
	"encoding/json"
	"net/http"
	"time"

	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/database"
	"admin-dashboard/internal/handler"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	topProductsLimit = 5
	activityLimit    = 10
)

var (
	salesChart     = store.SalesChart
	topProducts    = store.TopProducts
	recentActivity = store.RecentActivity
	summary        = store.Summary
)

// @Summary     Monthly sales and new users
// @Tags        analytics
// @Produce     json
// @Success     200 {array}  model.ChartPoint
// @Failure     500 {object} api.ErrorResponse
// @Router      /analytics/sales-data [get]
func SalesDataHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		points, err := salesChart(c.Request().Context(), db)
		if err != nil {
			return handler.StoreError(c, err, "", "")
		}
		return c.JSON(http.StatusOK, points)
	}
}

// @Summary     Best selling products
// @Tags        analytics
// @Produce     json
// @Success     200 {array}  model.TopProduct
// @Failure     500 {object} api.ErrorResponse
// @Router      /analytics/top-products [get]
func TopProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		top, err := topProducts(c.Request().Context(), db, topProductsLimit)
		if err != nil {
			return handler.StoreError(c, err, "", "")
		}
		return c.JSON(http.StatusOK, top)
	}
}

// @Summary     Latest activity
// @Tags        analytics
// @Produce     json
// @Success     200 {array}  model.ActivityEntry
// @Failure     500 {object} api.ErrorResponse
// @Router      /analytics/activity [get]
func ActivityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		entries, err := recentActivity(c.Request().Context(), db, activityLimit)
		if err != nil {
			return handler.StoreError(c, err, "", "")
		}
		return c.JSON(http.StatusOK, entries)
	}
}

// StatsHandler serves the totals from the cache, computing and caching
// them for ttl on a miss. A cache outage only costs the query.
// @Summary     Dashboard totals
// @Tags        analytics
// @Produce     json
// @Success     200 {object} model.Stats
// @Failure     500 {object} api.ErrorResponse
// @Router      /stats [get]
func StatsHandler(db database.DB, cch cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		cached, err := cch.Get(ctx, service.StatsCacheKey).Bytes()
		if err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}
		if !cache.IsMiss(err) {
			c.Logger().Warnf("stats cache read: %v", err)
		}

		stats, err := summary(ctx, db)
		if err != nil {
			return handler.StoreError(c, err, "", "")
		}
		body, err := json.Marshal(stats)
		if err != nil {
			return handler.StoreError(c, err, "", "")
		}
		if err := cch.Set(ctx, service.StatsCacheKey, body, ttl).Err(); err != nil {
			c.Logger().Warnf("stats cache write: %v", err)
		}
		return c.JSONBlob(http.StatusOK, body)
	}
}
