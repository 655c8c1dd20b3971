package product

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	p := &Product{
		MID:         1,
		Merchant:    "acme",
		ProductCode: "WIDGET-1",
		ProductName: "Widget",
		Category:    "tools",
		BasePrice:   decimal.RequireFromString("19.99"),
		BaseCost:    decimal.RequireFromString("7.50"),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO products`)).
		WithArgs(1, "acme", "WIDGET-1", "Widget", "tools", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

	require.NoError(t, repo.Create(context.Background(), p))
	require.Equal(t, 3, p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFindByProductCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "mid", "merchant", "product_code", "product_name", "category", "base_price", "base_cost", "created_at"}).
		AddRow(3, 1, "acme", "WIDGET-1", "Widget", "tools", "19.99", "7.50", now)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE mid = $1 AND product_code = $2`)).
		WithArgs(1, "WIDGET-1").
		WillReturnRows(rows)

	p, err := repo.FindByProductCode(context.Background(), 1, "WIDGET-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.True(t, decimal.RequireFromString("19.99").Equal(p.BasePrice))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE mid = $1 AND id = $2`)).
		WithArgs(1, 42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	p, err := repo.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)
	require.Nil(t, p)
}
