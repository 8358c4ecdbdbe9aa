package router

import (
	"time"

	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/database"
	"admin-dashboard/internal/handler"
	"admin-dashboard/internal/handler/analytics"
	"admin-dashboard/internal/handler/products"
	"admin-dashboard/internal/handler/sales"
	"admin-dashboard/internal/handler/users"
	"admin-dashboard/internal/middleware"
	"admin-dashboard/internal/service"

	"github.com/labstack/echo/v4"
)

// Setup registers the /api routes.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, rec service.Recorder, statsTTL time.Duration) {
	api := e.Group("/api", middleware.RequireJSON)

	api.GET("/ping", handler.PingHandler(db, cch))

	apiUsers := api.Group("/users")
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.POST("", users.CreateUserHandler(db, rec))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db, rec))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db, rec))

	apiProducts := api.Group("/products")
	apiProducts.GET("", products.ListProductsHandler(db))
	apiProducts.POST("", products.CreateProductHandler(db, rec))
	apiProducts.PUT("/:id", products.UpdateProductHandler(db, rec))
	apiProducts.DELETE("/:id", products.DeleteProductHandler(db, rec))

	api.GET("/sales", sales.ListSalesHandler(db))

	apiAnalytics := api.Group("/analytics")
	apiAnalytics.GET("/sales-data", analytics.SalesDataHandler(db))
	apiAnalytics.GET("/top-products", analytics.TopProductsHandler(db))
	apiAnalytics.GET("/activity", analytics.ActivityHandler(db))

	api.GET("/stats", analytics.StatsHandler(db, cch, statsTTL))
}
