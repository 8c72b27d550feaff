package models

import "time"

// Customer credit entry types
const (
	CreditTypeGiven     = "credit_given"
	CreditTypeRepayment = "repayment"
)

// CustomerCredit is a manual credit ledger entry against an account.
type CustomerCredit struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	AccountID  uint      `gorm:"not null;index" json:"account_id"`
	Type       string    `gorm:"not null" json:"type"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Date       time.Time `json:"date"`
	Note       string    `json:"note"`
}

func (CustomerCredit) TableName() string { return "customer_credits" }
