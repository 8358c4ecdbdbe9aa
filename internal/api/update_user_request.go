package api

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name   string `json:"name" validate:"required" example:"Ana Torres"`
	Email  string `json:"email" validate:"required,email" example:"ana@empresa.com"`
	Role   string `json:"role" validate:"required,oneof=Admin Moderador Cliente" example:"Admin"`
	Status string `json:"status" validate:"required,oneof=Activo Inactivo" example:"Inactivo"`
}
