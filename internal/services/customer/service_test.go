package customer

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

func TestGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Customer{FullName: "Lookup Target"}).Error)

	ref, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lookup Target", ref.FullName)

	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardsWithOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	c := &models.Customer{FullName: "Card Owner"}
	require.NoError(t, db.Create(c).Error)
	for _, number := range []string{"4111 1111 1111 1111", "5500 0000 0000 0004"} {
		require.NoError(t, db.Create(&models.CardDetail{
			CustomerID: c.ID, BankName: "HDFC Bank",
			CardType: models.CardTypeCredit, CardName: "HDFC Regalia Credit Card",
			CardNumber: number,
		}).Error)
	}

	rows, err := svc.CardsWithOwner(ctx, int64(c.ID))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Card Owner", rows[0]["customer_name"])
	// newest card first
	assert.Equal(t, "5500 0000 0000 0004", rows[0]["card_number"])
	assert.Equal(t, "5500 0000 0000 0004", rows[0]["card_number_display"])

	empty, err := svc.CardsWithOwner(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCreateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	t.Run("full profile", func(t *testing.T) {
		cust, err := svc.CreateProfile(ctx, &ProfileInput{
			FullName: "Asha Traders",
			City:     "Pune",
			Tax: &TaxInput{
				PanNo:   "ABCDE1234F",
				GstNo:   "22ABCDE1234F1Z5",
				GstType: "Regular",
			},
			Document: &DocumentInput{
				DocumentType:   "Aadhaar Card",
				DocumentNumber: "123456789012",
			},
			Account: &AccountInput{OpeningBalance: 5000, CreditAllowed: true, CreditLimit: 20000},
		})
		require.NoError(t, err)
		require.NotZero(t, cust.ID)

		var tax models.CustomerTaxDetail
		require.NoError(t, db.Where("customer_id = ?", cust.ID).First(&tax).Error)
		assert.Equal(t, "ABCDE1234F", tax.PanNo)

		var acct models.Account
		require.NoError(t, db.Where("customer_id = ?", cust.ID).First(&acct).Error)
		assert.EqualValues(t, 5000, acct.OpeningBalance)
	})

	t.Run("customer only", func(t *testing.T) {
		cust, err := svc.CreateProfile(ctx, &ProfileInput{FullName: "Bare Customer"})
		require.NoError(t, err)
		assert.NotZero(t, cust.ID)
	})

	t.Run("validation failure writes nothing", func(t *testing.T) {
		var before int64
		require.NoError(t, db.Model(&models.Customer{}).Count(&before).Error)

		_, err := svc.CreateProfile(ctx, &ProfileInput{
			FullName: "Bad Tax",
			Tax: &TaxInput{
				PanNo:   "ABCDE1234F",
				GstNo:   "22FGHIJ5678K1Z5", // embedded PAN differs
				GstType: "Regular",
			},
		})
		var vErr *ValidationFailedError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "gst_no")

		var after int64
		require.NoError(t, db.Model(&models.Customer{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})

	t.Run("missing full name", func(t *testing.T) {
		_, err := svc.CreateProfile(ctx, &ProfileInput{})
		var vErr *ValidationFailedError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "full_name")
	})
}

func TestSaveTaxDetailKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	c := &models.Customer{FullName: "Tax Customer"}
	require.NoError(t, db.Create(c).Error)

	first, err := svc.SaveTaxDetail(ctx, int64(c.ID), &TaxInput{
		PanNo: "ABCDE1234F", GstNo: "22ABCDE1234F1Z5", GstType: "Regular",
	})
	require.NoError(t, err)

	second, err := svc.SaveTaxDetail(ctx, int64(c.ID), &TaxInput{
		PanNo: "FGHIJ5678K", GstNo: "27FGHIJ5678K1Z9", GstType: "SEZ",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.CustomerTaxDetail{}).
		Where("customer_id = ?", c.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = svc.SaveTaxDetail(ctx, 999, &TaxInput{
		PanNo: "ABCDE1234F", GstNo: "22ABCDE1234F1Z5", GstType: "Regular",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCard(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	c := &models.Customer{FullName: "Card Customer"}
	require.NoError(t, db.Create(c).Error)

	card, err := svc.AddCard(ctx, int64(c.ID), &CardInput{
		BankName:   "HDFC Bank",
		CardType:   models.CardTypeCredit,
		CardName:   "HDFC Regalia Credit Card",
		CardNumber: "4111 1111 1111 1111",
	})
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", card.CardNumber, "stored normalized")

	t.Run("name not in catalog", func(t *testing.T) {
		_, err := svc.AddCard(ctx, int64(c.ID), &CardInput{
			BankName:   "HDFC Bank",
			CardType:   models.CardTypeCredit,
			CardName:   "SBI SimplySAVE Credit Card",
			CardNumber: "4111111111111111",
		})
		var vErr *ValidationFailedError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "card_name")
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := svc.AddCard(ctx, 999, &CardInput{
			BankName:   "HDFC Bank",
			CardType:   models.CardTypeCredit,
			CardName:   "HDFC Regalia Credit Card",
			CardNumber: "4111111111111111",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
