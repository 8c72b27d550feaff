// Package cascade deletes a customer together with every row that
// belongs to it. The whole sweep runs inside one database transaction,
// so a failure part-way leaves the dependency subgraph intact instead
// of orphaning rows.
package cascade

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/SagarP2/Billing-Software/internal/schema"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

// dependentTables is the delete order: dependents before the owning
// customer row. The ordering is a correctness requirement, not a
// performance choice.
var dependentTables = []string{
	"transactions",
	"card_details",
	"customer_credits",
	"payment_alerts",
	"accounts",
	"customer_tax_details",
	"identity_documents",
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// DeleteCustomer removes the customer and all rows referencing it,
// all-or-nothing. Each run is tagged in the log for tracing.
func (s *Service) DeleteCustomer(ctx context.Context, customerID int64) error {
	runID := uuid.NewString()
	log.Printf("cascade %s: deleting customer %d and dependents", runID, customerID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Raw("SELECT COUNT(*) FROM customers WHERE id = ?", customerID).Scan(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCustomerNotFound
		}

		for _, table := range dependentTables {
			if !schema.Allowed(table) {
				return fmt.Errorf("cascade table %s is not registry-known", table)
			}
			res := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE customer_id = ?", table), customerID)
			if res.Error != nil {
				return fmt.Errorf("cascade %s: delete from %s failed: %w", runID, table, res.Error)
			}
			if res.RowsAffected > 0 {
				log.Printf("cascade %s: removed %d row(s) from %s", runID, res.RowsAffected, table)
			}
		}

		if err := tx.Exec("DELETE FROM customers WHERE id = ?", customerID).Error; err != nil {
			return fmt.Errorf("cascade %s: delete customer failed: %w", runID, err)
		}
		log.Printf("cascade %s: customer %d deleted", runID, customerID)
		return nil
	})
}
