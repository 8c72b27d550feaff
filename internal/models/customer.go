package models

import "time"

// Customer is the root of ownership: every other billing entity
// references a customer by foreign key.
type Customer struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	FullName       string    `gorm:"not null" json:"full_name"`
	BillingAddress string    `json:"billing_address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	PinCode        string    `json:"pin_code"`
	Country        string    `json:"country"`
	EmailID        string    `gorm:"column:email_id" json:"email_id"`
	ContactNo      string    `json:"contact_no"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Customer) TableName() string { return "customers" }
