package http_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/commercerack/commercerack-go/internal/cart"
	"github.com/commercerack/commercerack-go/internal/customer"
	"github.com/commercerack/commercerack-go/internal/order"
	"github.com/commercerack/commercerack-go/internal/product"
)

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

type orderRepoMock struct {
	CreateFunc  func(ctx context.Context, o *order.Order) error
	GetByIDFunc func(ctx context.Context, mid, id int) (*order.Order, error)
	ListFunc    func(ctx context.Context, mid, limit, offset int) ([]order.Order, error)
	CountFunc   func(ctx context.Context, mid int) (int, error)
}

func (m *orderRepoMock) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, o)
}

func (m *orderRepoMock) GetByID(ctx context.Context, mid, id int) (*order.Order, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, mid, id)
}

func (m *orderRepoMock) List(ctx context.Context, mid, limit, offset int) ([]order.Order, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx, mid, limit, offset)
}

func (m *orderRepoMock) Count(ctx context.Context, mid int) (int, error) {
	if m.CountFunc == nil {
		return 0, nil
	}
	return m.CountFunc(ctx, mid)
}

type customerRepoMock struct {
	CreateFunc      func(ctx context.Context, c *customer.Customer) error
	GetByIDFunc     func(ctx context.Context, mid, id int) (*customer.Customer, error)
	FindByEmailFunc func(ctx context.Context, mid int, email string) (*customer.Customer, error)
	ListFunc        func(ctx context.Context, mid, limit, offset int) ([]customer.Customer, error)
	CountFunc       func(ctx context.Context, mid int) (int, error)
}

func (m *customerRepoMock) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, c)
}

func (m *customerRepoMock) GetByID(ctx context.Context, mid, id int) (*customer.Customer, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, mid, id)
}

func (m *customerRepoMock) FindByEmail(ctx context.Context, mid int, email string) (*customer.Customer, error) {
	if m.FindByEmailFunc == nil {
		return nil, nil
	}
	return m.FindByEmailFunc(ctx, mid, email)
}

func (m *customerRepoMock) List(ctx context.Context, mid, limit, offset int) ([]customer.Customer, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx, mid, limit, offset)
}

func (m *customerRepoMock) Count(ctx context.Context, mid int) (int, error) {
	if m.CountFunc == nil {
		return 0, nil
	}
	return m.CountFunc(ctx, mid)
}

type productRepoMock struct {
	CreateFunc            func(ctx context.Context, p *product.Product) error
	GetByIDFunc           func(ctx context.Context, mid, id int) (*product.Product, error)
	FindByProductCodeFunc func(ctx context.Context, mid int, code string) (*product.Product, error)
	ListFunc              func(ctx context.Context, mid, limit, offset int) ([]product.Product, error)
	CountFunc             func(ctx context.Context, mid int) (int, error)
}

func (m *productRepoMock) Create(ctx context.Context, p *product.Product) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, p)
}

func (m *productRepoMock) GetByID(ctx context.Context, mid, id int) (*product.Product, error) {
	if m.GetByIDFunc == nil {
		return nil, nil
	}
	return m.GetByIDFunc(ctx, mid, id)
}

func (m *productRepoMock) FindByProductCode(ctx context.Context, mid int, code string) (*product.Product, error) {
	if m.FindByProductCodeFunc == nil {
		return nil, nil
	}
	return m.FindByProductCodeFunc(ctx, mid, code)
}

func (m *productRepoMock) List(ctx context.Context, mid, limit, offset int) ([]product.Product, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx, mid, limit, offset)
}

func (m *productRepoMock) Count(ctx context.Context, mid int) (int, error) {
	if m.CountFunc == nil {
		return 0, nil
	}
	return m.CountFunc(ctx, mid)
}

type publisherMock struct {
	PublishFunc func(ctx context.Context, c *cart.Cart, orderID string) error
	published   int
}

func (m *publisherMock) PublishCartCheckedOut(ctx context.Context, c *cart.Cart, orderID string) error {
	m.published++
	if m.PublishFunc == nil {
		return nil
	}
	return m.PublishFunc(ctx, c, orderID)
}
