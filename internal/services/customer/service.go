// Package customer implements the customer-specific operations that
// the generic table gateway cannot express: the combined profile
// create, single-customer lookups and the one-tax-detail-per-customer
// rule.
package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SagarP2/Billing-Software/internal/models"
	"github.com/SagarP2/Billing-Software/internal/validation"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("customer not found")

// ValidationFailedError carries the field → message map of a rejected
// form; nothing is written when it is returned.
type ValidationFailedError struct {
	Fields map[string]string
}

func (e *ValidationFailedError) Error() string { return "validation failed" }

// Ref is the minimal customer reference used by pickers and lookups.
type Ref struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

// TaxInput is the tax-detail section of the combined form.
type TaxInput struct {
	PanNo   string `json:"pan_no"`
	GstNo   string `json:"gst_no"`
	GstType string `json:"gst_type"`
}

// DocumentInput is the identity-document section. DocumentImage is a
// storage path from the external upload collaborator.
type DocumentInput struct {
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	DocumentImage  string `json:"document_image"`
}

// CardInput is the card form for a customer.
type CardInput struct {
	BankName   string     `json:"bank_name"`
	CardType   string     `json:"card_type"`
	CardName   string     `json:"card_name"`
	CardNumber string     `json:"card_number"`
	DueDate    *time.Time `json:"due_date"`
}

// AccountInput is the optional opening-account section.
type AccountInput struct {
	OpeningBalance float64 `json:"opening_balance"`
	CreditAllowed  bool    `json:"credit_allowed"`
	CreditLimit    float64 `json:"credit_limit"`
	PriceCategory  string  `json:"price_category"`
	Remark         string  `json:"remark"`
}

// ProfileInput is the combined customer form: the customer itself plus
// optional tax, document and account sections created alongside it.
type ProfileInput struct {
	FullName       string         `json:"full_name"`
	BillingAddress string         `json:"billing_address"`
	City           string         `json:"city"`
	State          string         `json:"state"`
	PinCode        string         `json:"pin_code"`
	Country        string         `json:"country"`
	EmailID        string         `json:"email_id"`
	ContactNo      string         `json:"contact_no"`
	Tax            *TaxInput      `json:"tax"`
	Document       *DocumentInput `json:"document"`
	Account        *AccountInput  `json:"account"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the customer reference or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Ref, error) {
	var ref Ref
	err := s.db.WithContext(ctx).
		Raw("SELECT id, full_name FROM customers WHERE id = ?", id).
		Scan(&ref).Error
	if err != nil {
		return nil, err
	}
	if ref.ID == 0 {
		return nil, ErrNotFound
	}
	return &ref, nil
}

// CardsWithOwner returns the customer's cards newest first, each row
// annotated with the owner's display name and the card number grouped
// for display.
func (s *Service) CardsWithOwner(ctx context.Context, customerID int64) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	err := s.db.WithContext(ctx).
		Raw("SELECT * FROM card_details WHERE customer_id = ? ORDER BY id DESC", customerID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []map[string]interface{}{}, nil
	}

	var fullName string
	err = s.db.WithContext(ctx).
		Raw("SELECT full_name FROM customers WHERE id = ?", customerID).
		Scan(&fullName).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row["customer_name"] = fullName
		if number, ok := row["card_number"].(string); ok {
			row["card_number_display"] = validation.FormatCardNumber(number)
		}
	}
	return rows, nil
}

// CreateProfile validates the combined form and creates the customer
// with its optional tax detail, identity document and account in one
// transaction. A validation failure writes nothing.
func (s *Service) CreateProfile(ctx context.Context, in *ProfileInput) (*models.Customer, error) {
	v := validation.New()
	v.Required("full_name", in.FullName)
	if in.Tax != nil {
		v.TaxDetail(in.Tax.PanNo, in.Tax.GstNo, in.Tax.GstType)
	}
	if in.Document != nil {
		v.IdentityDocument(in.Document.DocumentType, in.Document.DocumentNumber)
	}
	if !v.Valid() {
		return nil, &ValidationFailedError{Fields: v.FieldErrors()}
	}

	cust := &models.Customer{
		FullName:       in.FullName,
		BillingAddress: in.BillingAddress,
		City:           in.City,
		State:          in.State,
		PinCode:        in.PinCode,
		Country:        in.Country,
		EmailID:        in.EmailID,
		ContactNo:      in.ContactNo,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cust).Error; err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
		if in.Tax != nil {
			detail := &models.CustomerTaxDetail{
				CustomerID: cust.ID,
				PanNo:      in.Tax.PanNo,
				GstNo:      in.Tax.GstNo,
				GstType:    in.Tax.GstType,
			}
			if err := tx.Create(detail).Error; err != nil {
				return fmt.Errorf("create tax detail: %w", err)
			}
		}
		if in.Document != nil {
			doc := &models.IdentityDocument{
				CustomerID:     cust.ID,
				DocumentType:   in.Document.DocumentType,
				DocumentNumber: in.Document.DocumentNumber,
				DocumentImage:  in.Document.DocumentImage,
			}
			if err := tx.Create(doc).Error; err != nil {
				return fmt.Errorf("create identity document: %w", err)
			}
		}
		if in.Account != nil {
			acct := &models.Account{
				CustomerID:     cust.ID,
				OpeningBalance: in.Account.OpeningBalance,
				CreditAllowed:  in.Account.CreditAllowed,
				CreditLimit:    in.Account.CreditLimit,
				PriceCategory:  in.Account.PriceCategory,
				Remark:         in.Account.Remark,
			}
			if err := tx.Create(acct).Error; err != nil {
				return fmt.Errorf("create account: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cust, nil
}

// AddCard validates the card form against the catalog and stores the
// card with its number normalized to bare digits.
func (s *Service) AddCard(ctx context.Context, customerID int64, in *CardInput) (*models.CardDetail, error) {
	v := validation.New()
	v.CardDetail(in.BankName, in.CardType, in.CardName, in.CardNumber)
	if !v.Valid() {
		return nil, &ValidationFailedError{Fields: v.FieldErrors()}
	}

	if _, err := s.Get(ctx, customerID); err != nil {
		return nil, err
	}

	card := &models.CardDetail{
		CustomerID: uint(customerID),
		BankName:   in.BankName,
		CardType:   in.CardType,
		CardName:   in.CardName,
		CardNumber: validation.NormalizeCardNumber(in.CardNumber),
		DueDate:    in.DueDate,
	}
	if err := s.db.WithContext(ctx).Create(card).Error; err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return card, nil
}

// SaveTaxDetail inserts or replaces the customer's single tax record.
// At most one tax detail exists per customer; a second save updates
// the existing row instead of adding another.
func (s *Service) SaveTaxDetail(ctx context.Context, customerID int64, in *TaxInput) (*models.CustomerTaxDetail, error) {
	v := validation.New()
	v.TaxDetail(in.PanNo, in.GstNo, in.GstType)
	if !v.Valid() {
		return nil, &ValidationFailedError{Fields: v.FieldErrors()}
	}

	if _, err := s.Get(ctx, customerID); err != nil {
		return nil, err
	}

	var detail models.CustomerTaxDetail
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("customer_id = ?", customerID).Limit(1).Find(&detail)
		if result.Error != nil {
			return result.Error
		}
		detail.CustomerID = uint(customerID)
		detail.PanNo = in.PanNo
		detail.GstNo = in.GstNo
		detail.GstType = in.GstType
		return tx.Save(&detail).Error
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
