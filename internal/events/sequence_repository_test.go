package events

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestNextSequenceRequiresPartitionKey(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSequenceRepository(db)
	_, err = repo.NextSequence(context.Background(), "")
	require.Error(t, err)
}

func TestNextSequenceIncrements(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSequenceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO event_sequences`)).
		WithArgs("cart-1").
		WillReturnRows(sqlmock.NewRows([]string{"last_sequence"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO event_sequences`)).
		WithArgs("cart-1").
		WillReturnRows(sqlmock.NewRows([]string{"last_sequence"}).AddRow(int64(2)))

	first, err := repo.NextSequence(context.Background(), "cart-1")
	require.NoError(t, err)
	require.Equal(t, int64(1), first)

	second, err := repo.NextSequence(context.Background(), "cart-1")
	require.NoError(t, err)
	require.Equal(t, int64(2), second)

	require.NoError(t, mock.ExpectationsWereMet())
}
