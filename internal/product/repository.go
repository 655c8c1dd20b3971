package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, mid, id int) (*Product, error)
	FindByProductCode(ctx context.Context, mid int, code string) (*Product, error)
	List(ctx context.Context, mid, limit, offset int) ([]Product, error)
	Count(ctx context.Context, mid int) (int, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, p *Product) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO products (mid, merchant, product_code, product_name, category, base_price, base_cost, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
         RETURNING id, created_at`,
		p.MID, p.Merchant, p.ProductCode, p.ProductName, p.Category, p.BasePrice, p.BaseCost,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, mid, id int) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, mid, merchant, product_code, product_name, category, base_price, base_cost, created_at
         FROM products WHERE mid = $1 AND id = $2`,
		mid, id,
	).Scan(&p.ID, &p.MID, &p.Merchant, &p.ProductCode, &p.ProductName, &p.Category, &p.BasePrice, &p.BaseCost, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &p, nil
}

func (r *repo) FindByProductCode(ctx context.Context, mid int, code string) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, mid, merchant, product_code, product_name, category, base_price, base_cost, created_at
         FROM products WHERE mid = $1 AND product_code = $2`,
		mid, code,
	).Scan(&p.ID, &p.MID, &p.Merchant, &p.ProductCode, &p.ProductName, &p.Category, &p.BasePrice, &p.BaseCost, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select product by code: %w", err)
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context, mid, limit, offset int) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mid, merchant, product_code, product_name, category, base_price, base_cost, created_at
         FROM products WHERE mid = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		mid, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.MID, &p.Merchant, &p.ProductCode, &p.ProductName, &p.Category, &p.BasePrice, &p.BaseCost, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Count(ctx context.Context, mid int) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE mid = $1`, mid,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
