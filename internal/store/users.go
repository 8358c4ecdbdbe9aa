package store

import (
	"context"
	"fmt"

	"admin-dashboard/internal/database"
	"admin-dashboard/internal/model"
)

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email, role, status, to_char(joined_date, 'YYYY-MM-DD')
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.JoinedDate); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

// CreateUser inserts u and fills in its id and joined date.
func CreateUser(ctx context.Context, db database.DB, u *model.User, passwordHash string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, to_char(joined_date, 'YYYY-MM-DD')`,
		u.Name,
		u.Email,
		passwordHash,
		u.Role,
		u.Status,
	)
	if err := row.Scan(&u.ID, &u.JoinedDate); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUser overwrites the profile of u.ID; the password is left alone.
func UpdateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET name = $1, email = $2, role = $3, status = $4
		 WHERE id = $5
		 RETURNING to_char(joined_date, 'YYYY-MM-DD')`,
		u.Name,
		u.Email,
		u.Role,
		u.Status,
		u.ID,
	)
	if err := row.Scan(&u.JoinedDate); err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("UpdateUser: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return u, nil
}

func DeleteUser(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteUser: %w", ErrNotFound)
	}
	return nil
}
