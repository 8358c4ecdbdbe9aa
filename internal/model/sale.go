// File: internal/model/sale.go
package model

// Sale 銷售紀錄，唯讀
type Sale struct {
	ID            int    `json:"id"`
	Product       string `json:"product"`
	Customer      string `json:"customer"`
	CustomerEmail string `json:"customer_email"`
	Amount        Amount `json:"amount"`
	Date          string `json:"date"`
}
