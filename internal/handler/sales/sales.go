package sales

import (
	"net/http"

	"admin-dashboard/internal/database"
	"admin-dashboard/internal/handler"
	"admin-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

var listSales = store.ListSales

// @Summary     List sales
// @Description 銷售紀錄，最新的在前
// @Tags        sales
// @Produce     json
// @Success     200 {array}  model.Sale
// @Failure     500 {object} api.ErrorResponse
// @Router      /sales [get]
func ListSalesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sales, err := listSales(c.Request().Context(), db)
		if err != nil {
			return handler.StoreError(c, err, "venta no encontrada", "")
		}
		return c.JSON(http.StatusOK, sales)
	}
}
