package store

import (
	"context"
	"fmt"

	"admin-dashboard/internal/database"
	"admin-dashboard/internal/model"
)

// ListSales returns all sales, newest first.
func ListSales(ctx context.Context, db database.DB) ([]model.Sale, error) {
	rows, err := db.Query(ctx,
		`SELECT id, product_name, customer, customer_email, amount::float8,
		        to_char(sold_at, 'YYYY-MM-DD')
		 FROM sales ORDER BY sold_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListSales: %w", err)
	}
	defer rows.Close()

	sales := []model.Sale{}
	for rows.Next() {
		var (
			s      model.Sale
			amount float64
		)
		if err := rows.Scan(&s.ID, &s.Product, &s.Customer, &s.CustomerEmail, &amount, &s.Date); err != nil {
			return nil, fmt.Errorf("ListSales: %w", err)
		}
		s.Amount = model.Amount(amount)
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListSales: %w", err)
	}
	return sales, nil
}
