package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, mid, id int) (*Customer, error)
	FindByEmail(ctx context.Context, mid int, email string) (*Customer, error)
	List(ctx context.Context, mid, limit, offset int) ([]Customer, error)
	Count(ctx context.Context, mid int) (int, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, c *Customer) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO customers (mid, email, first_name, last_name, pass_hash, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
         RETURNING id, created_at, updated_at`,
		c.MID, c.Email, c.FirstName, c.LastName, c.PassHash,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, mid, id int) (*Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, mid, email, first_name, last_name, pass_hash, created_at, updated_at
         FROM customers WHERE mid = $1 AND id = $2`,
		mid, id,
	).Scan(&c.ID, &c.MID, &c.Email, &c.FirstName, &c.LastName, &c.PassHash, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// caller (handler) can turn this into 404
			return nil, nil
		}
		return nil, fmt.Errorf("select customer: %w", err)
	}
	return &c, nil
}

func (r *repo) FindByEmail(ctx context.Context, mid int, email string) (*Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, mid, email, first_name, last_name, pass_hash, created_at, updated_at
         FROM customers WHERE mid = $1 AND email = $2`,
		mid, email,
	).Scan(&c.ID, &c.MID, &c.Email, &c.FirstName, &c.LastName, &c.PassHash, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select customer by email: %w", err)
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, mid, limit, offset int) ([]Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mid, email, first_name, last_name, pass_hash, created_at, updated_at
         FROM customers WHERE mid = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		mid, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.MID, &c.Email, &c.FirstName, &c.LastName, &c.PassHash, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Count(ctx context.Context, mid int) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM customers WHERE mid = $1`, mid,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
