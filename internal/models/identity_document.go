package models

// Identity document types
const (
	DocumentTypeAadhaar = "Aadhaar Card"
	DocumentTypePAN     = "PAN Card"
	DocumentTypeVoterID = "Voter ID"
)

// IdentityDocument stores a proof-of-identity record for a customer.
// DocumentImage is a storage path produced by the external upload
// collaborator, never file contents.
type IdentityDocument struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	CustomerID     uint   `gorm:"not null;index" json:"customer_id"`
	DocumentType   string `gorm:"not null" json:"document_type"`
	DocumentNumber string `json:"document_number"`
	DocumentImage  string `json:"document_image"`
}

func (IdentityDocument) TableName() string { return "identity_documents" }
