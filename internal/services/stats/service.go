// Package stats builds the dashboard summary: entity counts, the
// outstanding pending total, signed revenue and the latest
// transactions. Everything is recomputed on every call; nothing here
// is cached.
package stats

import (
	"context"

	"gorm.io/gorm"
)

// Totals are the headline dashboard figures. Counts and sums default
// to zero when no rows exist.
type Totals struct {
	Customers    int64   `json:"customers"`
	Accounts     int64   `json:"accounts"`
	Transactions int64   `json:"transactions"`
	Pending      float64 `json:"pending"`
	Revenue      float64 `json:"revenue"`
}

// Summary is the full /api/stats payload.
type Summary struct {
	Stats  Totals                   `json:"stats"`
	Recent []map[string]interface{} `json:"recent"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Summary runs the aggregate queries and assembles the dashboard
// payload. Revenue counts credits positive and debits negative.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	db := s.db.WithContext(ctx)
	var out Summary

	if err := db.Raw("SELECT COUNT(*) FROM customers").Scan(&out.Stats.Customers).Error; err != nil {
		return nil, err
	}
	if err := db.Raw("SELECT COUNT(*) FROM accounts").Scan(&out.Stats.Accounts).Error; err != nil {
		return nil, err
	}
	if err := db.Raw("SELECT COUNT(*) FROM transactions").Scan(&out.Stats.Transactions).Error; err != nil {
		return nil, err
	}
	if err := db.Raw("SELECT COALESCE(SUM(pending_amount), 0) FROM accounts").Scan(&out.Stats.Pending).Error; err != nil {
		return nil, err
	}
	if err := db.Raw(
		"SELECT COALESCE(SUM(CASE WHEN transaction_type = 'credit' THEN amount ELSE -amount END), 0) FROM transactions",
	).Scan(&out.Stats.Revenue).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(`
		SELECT t.*, c.full_name AS customer_name
		FROM transactions t
		LEFT JOIN customers c ON c.id = t.customer_id
		ORDER BY t.transaction_date DESC
		LIMIT 5`).Scan(&out.Recent).Error; err != nil {
		return nil, err
	}
	if out.Recent == nil {
		out.Recent = []map[string]interface{}{}
	}
	return &out, nil
}
