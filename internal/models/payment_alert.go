package models

import "time"

// PaymentAlert is a due-date reminder attached to an account.
type PaymentAlert struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	CustomerID   uint       `gorm:"not null;index" json:"customer_id"`
	AccountID    uint       `gorm:"not null;index" json:"account_id"`
	AlertMessage string     `json:"alert_message"`
	DueDate      *time.Time `json:"due_date"`
	IsPaid       bool       `gorm:"default:false" json:"is_paid"`
}

func (PaymentAlert) TableName() string { return "payment_alerts" }
