package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required" example:"Ana Torres"`
	Email    string `json:"email" validate:"required,email" example:"ana@empresa.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	Role     string `json:"role" validate:"required,oneof=Admin Moderador Cliente" example:"Cliente"`
	Status   string `json:"status" validate:"required,oneof=Activo Inactivo" example:"Activo"`
}
