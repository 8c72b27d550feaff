package models

// Account carries the running balance figures for one customer.
// Received and PendingAmount are mutated by billing operations
// outside this service.
type Account struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	CustomerID     uint    `gorm:"not null;index" json:"customer_id"`
	OpeningBalance float64 `gorm:"default:0" json:"opening_balance"`
	CreditAllowed  bool    `gorm:"default:false" json:"credit_allowed"`
	CreditLimit    float64 `gorm:"default:0" json:"credit_limit"`
	PriceCategory  string  `json:"price_category"`
	Remark         string  `json:"remark"`
	Received       float64 `gorm:"default:0" json:"received"`
	PendingAmount  float64 `gorm:"default:0" json:"pending_amount"`
}

func (Account) TableName() string { return "accounts" }
