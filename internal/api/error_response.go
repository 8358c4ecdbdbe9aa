package api

// ErrorResponse is the body of every non-2xx answer.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"user not found"`
}
