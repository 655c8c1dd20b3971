package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, mid, id int) (*Order, error)
	List(ctx context.Context, mid, limit, offset int) ([]Order, error)
	Count(ctx context.Context, mid int) (int, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, o *Order) error {
	cartID := sql.NullString{String: o.CartID, Valid: o.CartID != ""}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO orders (mid, orderid, customer_id, order_total, cart_id, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
         RETURNING id, created_at, updated_at`,
		o.MID, o.OrderID, o.CustomerID, o.Total, cartID,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, mid, id int) (*Order, error) {
	var (
		o      Order
		cartID sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, mid, orderid, customer_id, order_total, cart_id, created_at, updated_at
         FROM orders WHERE mid = $1 AND id = $2`,
		mid, id,
	).Scan(&o.ID, &o.MID, &o.OrderID, &o.CustomerID, &o.Total, &cartID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order: %w", err)
	}
	o.CartID = cartID.String
	return &o, nil
}

func (r *repo) List(ctx context.Context, mid, limit, offset int) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, mid, orderid, customer_id, order_total, cart_id, created_at, updated_at
         FROM orders WHERE mid = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		mid, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var (
			o      Order
			cartID sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.MID, &o.OrderID, &o.CustomerID, &o.Total, &cartID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.CartID = cartID.String
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Count(ctx context.Context, mid int) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE mid = $1`, mid,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}
