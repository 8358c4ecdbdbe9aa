package api

// ProductRequest is the body of both create and update.
// swagger:model api.ProductRequest
type ProductRequest struct {
	Name  string   `json:"name" validate:"required" example:"Widget"`
	Price *float64 `json:"price" validate:"required,gte=0" example:"9.99"`
	Stock *int     `json:"stock" validate:"required,gte=0" example:"5"`
}
