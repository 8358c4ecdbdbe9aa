package store

import (
	"context"
	"fmt"

	"admin-dashboard/internal/database"
	"admin-dashboard/internal/model"
)

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, price::float8, stock FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var (
			p     model.Product
			price float64
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &p.Stock); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		p.Price = model.Amount(price)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func CreateProduct(ctx context.Context, db database.DB, in model.ProductPayload) (*model.Product, error) {
	p := &model.Product{Name: in.Name, Price: model.Amount(in.Price), Stock: in.Stock}
	row := db.QueryRow(ctx,
		`INSERT INTO products (name, price, stock) VALUES ($1, $2, $3) RETURNING id`,
		in.Name,
		in.Price,
		in.Stock,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

func UpdateProduct(ctx context.Context, db database.DB, id int, in model.ProductPayload) (*model.Product, error) {
	tag, err := db.Exec(ctx,
		`UPDATE products SET name = $1, price = $2, stock = $3 WHERE id = $4`,
		in.Name,
		in.Price,
		in.Stock,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("UpdateProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("UpdateProduct: %w", ErrNotFound)
	}
	return &model.Product{ID: id, Name: in.Name, Price: model.Amount(in.Price), Stock: in.Stock}, nil
}

func DeleteProduct(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteProduct: %w", ErrNotFound)
	}
	return nil
}
