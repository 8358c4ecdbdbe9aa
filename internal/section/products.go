package section

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"admin-dashboard/internal/apiclient"
	"admin-dashboard/internal/filter"
	"admin-dashboard/internal/form"
	"admin-dashboard/internal/liststate"
	"admin-dashboard/internal/model"
)

const (
	ProductsLoadError    = "No se pudieron cargar los productos."
	ProductsCreateError  = "No se pudo crear el producto."
	ProductsUpdateError  = "No se pudo editar el producto."
	ProductsDeleteError  = "No se pudo eliminar el producto."
	ProductsEmpty        = "No hay productos registrados."
	ProductsDeletePrompt = "¿Seguro que deseas eliminar este producto?"
)

// ProductSchema is the products form; one form serves create and edit.
var ProductSchema = form.Schema[model.Product, model.ProductPayload]{
	Fields: []form.Field{
		{Name: "name", Label: "Nombre"},
		{Name: "price", Label: "Precio"},
		{Name: "stock", Label: "Stock"},
	},
	Record: func(p model.Product) (int, form.Values) {
		return p.ID, form.Values{
			"name":  p.Name,
			"price": strconv.FormatFloat(float64(p.Price), 'f', -1, 64),
			"stock": strconv.Itoa(p.Stock),
		}
	},
	Build: func(_ form.Mode, v form.Values) (model.ProductPayload, error) {
		price, err := strconv.ParseFloat(v.Trimmed("price"), 64)
		if err != nil {
			return model.ProductPayload{}, fmt.Errorf("price: %w", err)
		}
		stock, err := strconv.Atoi(v.Trimmed("stock"))
		if err != nil {
			return model.ProductPayload{}, fmt.Errorf("stock: %w", err)
		}
		return model.ProductPayload{Name: v["name"], Price: price, Stock: stock}, nil
	},
}

// Products is the products section.
type Products struct {
	List *liststate.Controller[[]model.Product]
	Form *form.Controller[model.Product, model.ProductPayload]

	Search string
}

func NewProducts(client *apiclient.Client, logger *slog.Logger) *Products {
	resource := apiclient.NewResource[model.Product, model.ProductPayload](client, "products")
	list := liststate.New(resource.List,
		liststate.WithErrorMessage[[]model.Product](ProductsLoadError),
		liststate.WithLogger[[]model.Product](logger),
	)
	return &Products{
		List: list,
		Form: form.New(ProductSchema, resource, list, form.Messages{
			Create: form.Message{Fallback: ProductsCreateError},
			Update: form.Message{Fallback: ProductsUpdateError},
			Delete: form.Message{Fallback: ProductsDeleteError},
		}, logger),
	}
}

func (s *Products) ID() ID                   { return ProductsID }
func (s *Products) Load(ctx context.Context) { s.List.Reload(ctx) }
func (s *Products) Close()                   { s.List.Close() }

// Visible returns the products matching the search text.
func (s *Products) Visible() []model.Product {
	products, ok := s.List.State().Data()
	if !ok {
		return nil
	}
	return filter.Apply(products, filter.ProductSearch(s.Search))
}

// Find looks id up in the current snapshot.
func (s *Products) Find(id int) (model.Product, bool) {
	products, _ := s.List.State().Data()
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// SubmitLabel is the caption of the submit control.
func (s *Products) SubmitLabel() string {
	mode, _ := s.Form.Mode()
	switch {
	case s.Form.Submitting() && mode == form.ModeEdit:
		return "Editando..."
	case s.Form.Submitting():
		return "Creando..."
	case mode == form.ModeEdit:
		return "Guardar Cambios"
	default:
		return "Crear Producto"
	}
}
