package models

import "time"

// Card types
const (
	CardTypeCredit = "Credit Card"
	CardTypeDebit  = "Debit Card"
)

// CardDetail is a payment card on file for a customer. CardNumber is
// stored as bare digits; display formatting happens on the way out.
type CardDetail struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	CustomerID uint       `gorm:"not null;index" json:"customer_id"`
	BankName   string     `gorm:"not null" json:"bank_name"`
	CardType   string     `gorm:"not null" json:"card_type"`
	CardName   string     `gorm:"not null" json:"card_name"`
	CardNumber string     `gorm:"not null" json:"card_number"`
	DueDate    *time.Time `json:"due_date"`
}

func (CardDetail) TableName() string { return "card_details" }
