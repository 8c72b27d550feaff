package table

import (
	"context"
	"testing"

	bizerrors "github.com/SagarP2/Billing-Software/internal/errors"
	"github.com/SagarP2/Billing-Software/internal/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))
	return NewService(db, nil)
}

func TestListRejectsUnknownTable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, table := range []string{"users", "Customers", "customers; DROP TABLE customers"} {
		_, err := svc.List(ctx, table)
		assert.ErrorIs(t, err, bizerrors.ErrTableNotAllowed, "table %q", table)
	}
}

func TestEveryOperationRejectsUnknownTable(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "no_such_table", Row{"full_name": "x"})
	assert.ErrorIs(t, err, bizerrors.ErrTableNotAllowed)

	_, err = svc.Update(ctx, "no_such_table", 1, Row{"full_name": "x"})
	assert.ErrorIs(t, err, bizerrors.ErrTableNotAllowed)

	err = svc.Delete(ctx, "no_such_table", 1)
	assert.ErrorIs(t, err, bizerrors.ErrTableNotAllowed)

	_, err = svc.ListRelation(ctx, "no_such_table")
	assert.ErrorIs(t, err, bizerrors.ErrTableNotAllowed)
}

func TestCreateFiltersUnknownKeys(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	row, err := svc.Create(ctx, "customers", Row{
		"full_name": "Asha Traders",
		"city":      "Pune",
		"is_admin":  true, // not a registry field, must be dropped
	})
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "Asha Traders", row["full_name"])
	assert.Equal(t, "Pune", row["city"])
	assert.NotContains(t, row, "is_admin")
}

func TestCreateNoValidFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "card_details", Row{"bogus": 1, "also_bogus": "x"})
	assert.ErrorIs(t, err, bizerrors.ErrNoValidFields)

	_, err = svc.Create(ctx, "card_details", Row{})
	assert.ErrorIs(t, err, bizerrors.ErrNoValidFields)
}

func TestCreateThenListOrdersNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "customers", Row{"full_name": "First Customer"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, "customers", Row{"full_name": "Second Customer"})
	require.NoError(t, err)

	rows, err := svc.List(ctx, "customers")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.EqualValues(t, second["id"], rows[0]["id"])
	assert.EqualValues(t, first["id"], rows[1]["id"])
}

func TestCreateFillsDefaultTimestamps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	customer, err := svc.Create(ctx, "customers", Row{"full_name": "Dated"})
	require.NoError(t, err)
	assert.NotEmpty(t, customer["created_at"])

	tx, err := svc.Create(ctx, "transactions", Row{
		"customer_id":      customer["id"],
		"account_id":       1,
		"transaction_type": "credit",
		"amount":           250.0,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx["transaction_date"])
}

func TestUpdate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "customers", Row{"full_name": "Old Name", "city": "Pune"})
	require.NoError(t, err)

	t.Run("mutates matching row", func(t *testing.T) {
		updated, err := svc.Update(ctx, "customers", asID(t, created["id"]), Row{
			"city":    "Nashik",
			"unknown": "dropped",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Nashik", updated["city"])
		assert.Equal(t, "Old Name", updated["full_name"])
	})

	t.Run("no matching row returns nil", func(t *testing.T) {
		updated, err := svc.Update(ctx, "customers", 9999, Row{"city": "Nowhere"})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("empty filtered set fails", func(t *testing.T) {
		_, err := svc.Update(ctx, "customers", asID(t, created["id"]), Row{"bogus": true})
		assert.ErrorIs(t, err, bizerrors.ErrNoValidFields)
	})
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "customers", Row{"full_name": "Doomed"})
	require.NoError(t, err)
	id := asID(t, created["id"])

	require.NoError(t, svc.Delete(ctx, "customers", id))
	// repeating the delete on an already-deleted id still succeeds
	require.NoError(t, svc.Delete(ctx, "customers", id))

	rows, err := svc.List(ctx, "customers")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListRelation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "customers", Row{"full_name": "Picker Target"})
	require.NoError(t, err)

	rows, err := svc.ListRelation(ctx, "customers")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Picker Target", rows[0]["full_name"])
}

func asID(t *testing.T, v interface{}) int64 {
	t.Helper()
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		t.Fatalf("unexpected id type %T", v)
		return 0
	}
}
