package cascade

import (
	"context"
	"testing"

	"github.com/SagarP2/Billing-Software/internal/models"
	"github.com/SagarP2/Billing-Software/internal/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *models.Customer {
	t.Helper()
	c := &models.Customer{FullName: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestDeleteCustomerRemovesDependencySubgraph(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	target := seedCustomer(t, db, "Cascade Target")
	keeper := seedCustomer(t, db, "Unrelated Customer")

	account := &models.Account{CustomerID: target.ID, OpeningBalance: 100}
	require.NoError(t, db.Create(account).Error)

	require.NoError(t, db.Create(&models.Transaction{
		CustomerID: target.ID, AccountID: account.ID,
		TransactionType: models.TransactionTypeDebit, Amount: 4000,
	}).Error)
	require.NoError(t, db.Create(&models.Transaction{
		CustomerID: target.ID, AccountID: account.ID,
		TransactionType: models.TransactionTypeCredit, Amount: 1200,
	}).Error)
	require.NoError(t, db.Create(&models.CardDetail{
		CustomerID: target.ID, BankName: "HDFC Bank",
		CardType: models.CardTypeCredit, CardName: "HDFC Regalia Credit Card",
		CardNumber: "4111 1111 1111 1111",
	}).Error)

	keeperTx := &models.Transaction{
		CustomerID: keeper.ID, AccountID: account.ID,
		TransactionType: models.TransactionTypeCredit, Amount: 10,
	}
	require.NoError(t, db.Create(keeperTx).Error)

	require.NoError(t, svc.DeleteCustomer(ctx, int64(target.ID)))

	for _, table := range dependentTables {
		var count int64
		require.NoError(t, db.Raw(
			"SELECT COUNT(*) FROM "+table+" WHERE customer_id = ?", target.ID,
		).Scan(&count).Error)
		assert.Zero(t, count, "table %s still has rows for deleted customer", table)
	}

	var customers int64
	require.NoError(t, db.Model(&models.Customer{}).Where("id = ?", target.ID).Count(&customers).Error)
	assert.Zero(t, customers)

	// rows owned by other customers are untouched
	var keeperRows int64
	require.NoError(t, db.Model(&models.Transaction{}).Where("customer_id = ?", keeper.ID).Count(&keeperRows).Error)
	assert.EqualValues(t, 1, keeperRows)
}

func TestDeleteCustomerWithoutDependents(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	c := seedCustomer(t, db, "Lonely")
	require.NoError(t, svc.DeleteCustomer(context.Background(), int64(c.ID)))

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	err := svc.DeleteCustomer(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
