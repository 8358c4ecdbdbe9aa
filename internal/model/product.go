// File: internal/model/product.go
package model

type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price Amount `json:"price"`
	Stock int    `json:"stock"`
}

// ProductPayload is the body of POST /products and PUT /products/{id}.
type ProductPayload struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}
