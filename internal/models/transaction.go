package models

import "time"

// Transaction types
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// Point-of-sale channel categories. INJ and PH name the same channel:
// INJ is what rows persist, PH is what the fee rate table uses.
const (
	POSTypeMP  = "MP"
	POSTypeMOS = "MOS"
	POSTypeINJ = "INJ"
	POSTypePH  = "PH"
)

// Transaction records one billing movement against a customer account.
// Tax, Mdr, Charges and Profit are derived figures: present for debit
// transactions, absent for credits.
type Transaction struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	CustomerID      uint      `gorm:"not null;index" json:"customer_id"`
	AccountID       uint      `gorm:"not null;index" json:"account_id"`
	CardName        string    `json:"card_name"`
	CardNumber      string    `json:"card_number"`
	TransactionType string    `gorm:"not null" json:"transaction_type"`
	Amount          float64   `gorm:"not null" json:"amount"`
	PosType         string    `gorm:"column:pos_type" json:"pos_type"`
	TaxRate         *float64  `gorm:"column:tax_rate" json:"tax_rate"`
	Tax             *float64  `json:"tax"`
	Mdr             *float64  `gorm:"column:mdr" json:"mdr"`
	Charges         *float64  `json:"charges"`
	Profit          *float64  `json:"profit"`
	TransactionDate time.Time `json:"transaction_date"`
}

func (Transaction) TableName() string { return "transactions" }
