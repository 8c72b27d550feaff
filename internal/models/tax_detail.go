package models

// GST registration types
const (
	GSTTypeRegular     = "Regular"
	GSTTypeComposition = "Composition"
	GSTTypeCasual      = "Casual"
	GSTTypeNonResident = "Non-Resident"
	GSTTypeUNBody      = "UN Body"
	GSTTypeSEZ         = "SEZ"
)

// CustomerTaxDetail holds the tax identifiers for one customer.
// At most one record per customer is expected; the rule is enforced
// by application logic, not a database constraint.
type CustomerTaxDetail struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	CustomerID uint   `gorm:"not null;index" json:"customer_id"`
	PanNo      string `gorm:"column:pan_no;not null" json:"pan_no"`
	GstNo      string `gorm:"column:gst_no;not null" json:"gst_no"`
	GstType    string `gorm:"column:gst_type;not null" json:"gst_type"`
}

func (CustomerTaxDetail) TableName() string { return "customer_tax_details" }
