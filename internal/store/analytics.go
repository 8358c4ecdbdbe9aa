package store

import (
	"context"
	"fmt"

	"admin-dashboard/internal/database"
	"admin-dashboard/internal/model"
)

// SalesChart returns one point per month for the last six months: revenue
// and new users.
func SalesChart(ctx context.Context, db database.DB) ([]model.ChartPoint, error) {
	rows, err := db.Query(ctx,
		`WITH months AS (
		     SELECT date_trunc('month', CURRENT_DATE) - make_interval(months => n) AS month
		     FROM generate_series(5, 0, -1) AS n
		 )
		 SELECT to_char(m.month, 'Mon'),
		        COALESCE((SELECT SUM(s.amount) FROM sales s
		                  WHERE date_trunc('month', s.sold_at) = m.month), 0)::float8,
		        (SELECT COUNT(*) FROM users u
		         WHERE date_trunc('month', u.joined_date) = m.month)::float8
		 FROM months m ORDER BY m.month`,
	)
	if err != nil {
		return nil, fmt.Errorf("SalesChart: %w", err)
	}
	defer rows.Close()

	points := []model.ChartPoint{}
	for rows.Next() {
		var p model.ChartPoint
		if err := rows.Scan(&p.Name, &p.Ventas, &p.Usuarios); err != nil {
			return nil, fmt.Errorf("SalesChart: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SalesChart: %w", err)
	}
	return points, nil
}

// TopProducts returns the best sellers by number of sales.
func TopProducts(ctx context.Context, db database.DB, limit int) ([]model.TopProduct, error) {
	rows, err := db.Query(ctx,
		`SELECT product_name, COUNT(*)::float8 AS ventas
		 FROM sales GROUP BY product_name
		 ORDER BY ventas DESC, product_name
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("TopProducts: %w", err)
	}
	defer rows.Close()

	top := []model.TopProduct{}
	for rows.Next() {
		var p model.TopProduct
		if err := rows.Scan(&p.Name, &p.Ventas); err != nil {
			return nil, fmt.Errorf("TopProducts: %w", err)
		}
		top = append(top, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("TopProducts: %w", err)
	}
	return top, nil
}

// RecentActivity returns the latest activity entries, newest first.
func RecentActivity(ctx context.Context, db database.DB, limit int) ([]model.ActivityEntry, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_name, action, COALESCE(amount, ''),
		        to_char(created_at, 'YYYY-MM-DD HH24:MI')
		 FROM activity ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("RecentActivity: %w", err)
	}
	defer rows.Close()

	entries := []model.ActivityEntry{}
	for rows.Next() {
		var (
			a      model.ActivityEntry
			amount string
		)
		if err := rows.Scan(&a.ID, &a.User, &a.Action, &amount, &a.Time); err != nil {
			return nil, fmt.Errorf("RecentActivity: %w", err)
		}
		a.Amount = model.Display(amount)
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("RecentActivity: %w", err)
	}
	return entries, nil
}

// InsertActivity appends an entry. An empty amount is stored as NULL.
func InsertActivity(ctx context.Context, db database.DB, user, action, amount string) error {
	var amountArg any
	if amount != "" {
		amountArg = amount
	}
	if _, err := db.Exec(ctx,
		`INSERT INTO activity (user_name, action, amount) VALUES ($1, $2, $3)`,
		user,
		action,
		amountArg,
	); err != nil {
		return fmt.Errorf("InsertActivity: %w", err)
	}
	return nil
}

// Summary computes the totals of GET /stats.
func Summary(ctx context.Context, db database.DB) (model.Stats, error) {
	var s model.Stats
	row := db.QueryRow(ctx,
		`SELECT COALESCE((SELECT SUM(amount) FROM sales), 0)::float8,
		        (SELECT COUNT(*) FROM users)::int,
		        (SELECT COUNT(*) FROM sales)::int`,
	)
	if err := row.Scan(&s.TotalSales, &s.TotalUsers, &s.TotalOrders); err != nil {
		return model.Stats{}, fmt.Errorf("Summary: %w", err)
	}
	return s, nil
}
