package products

import (
	"fmt"
	"net/http"

	"admin-dashboard/internal/api"
	"admin-dashboard/internal/database"
	"admin-dashboard/internal/handler"
	"admin-dashboard/internal/model"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listProducts  = store.ListProducts
	createProduct = store.CreateProduct
	updateProduct = store.UpdateProduct
	deleteProduct = store.DeleteProduct
)

const msgNotFound = "producto no encontrado"

func payload(req api.ProductRequest) model.ProductPayload {
	return model.ProductPayload{Name: req.Name, Price: *req.Price, Stock: *req.Stock}
}

// @Summary     List products
// @Tags        products
// @Produce     json
// @Success     200 {array}  model.Product
// @Failure     500 {object} api.ErrorResponse
// @Router      /products [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := listProducts(c.Request().Context(), db)
		if err != nil {
			return handler.StoreError(c, err, msgNotFound, "")
		}
		return c.JSON(http.StatusOK, products)
	}
}

// @Summary     Create a product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       body body     api.ProductRequest true "商品資料"
// @Success     201  {object} model.Product
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /products [post]
func CreateProductHandler(db database.DB, rec service.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProductRequest
		if msg := handler.BindValid(c, &req); msg != "" {
			return handler.BadRequest(c, msg)
		}
		p, err := createProduct(c.Request().Context(), db, payload(req))
		if err != nil {
			return handler.StoreError(c, err, msgNotFound, "")
		}
		rec.Record("", "Producto creado: "+p.Name, fmt.Sprintf("$%s", p.Price))
		return c.JSON(http.StatusCreated, p)
	}
}

// @Summary     Update a product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id   path     int                true "商品 ID"
// @Param       body body     api.ProductRequest true "商品資料"
// @Success     200  {object} model.Product
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /products/{id} [put]
func UpdateProductHandler(db database.DB, rec service.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c)
		if !ok {
			return handler.BadRequest(c, "ID de producto inválido")
		}
		var req api.ProductRequest
		if msg := handler.BindValid(c, &req); msg != "" {
			return handler.BadRequest(c, msg)
		}
		p, err := updateProduct(c.Request().Context(), db, id, payload(req))
		if err != nil {
			return handler.StoreError(c, err, msgNotFound, "")
		}
		rec.Record("", "Producto actualizado: "+p.Name, "")
		return c.JSON(http.StatusOK, p)
	}
}

// @Summary     Delete a product
// @Tags        products
// @Param       id  path int true "商品 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [delete]
func DeleteProductHandler(db database.DB, rec service.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := handler.ParseID(c)
		if !ok {
			return handler.BadRequest(c, "ID de producto inválido")
		}
		if err := deleteProduct(c.Request().Context(), db, id); err != nil {
			return handler.StoreError(c, err, msgNotFound, "")
		}
		rec.Record("", "Producto eliminado", "")
		return c.NoContent(http.StatusNoContent)
	}
}
