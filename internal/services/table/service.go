// Package table implements the generic table gateway: CRUD over any
// registry-known table, driven by path parameters and JSON bodies.
//
// The load-bearing rule of this package is the identifier/value split:
// table and column names reach SQL text only after the schema registry
// admits them, and user-supplied values only ever travel as bind
// parameters. Neither side may cross over.
package table

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	bizerrors "github.com/SagarP2/Billing-Software/internal/errors"
	"github.com/SagarP2/Billing-Software/internal/repositories/cache"
	"github.com/SagarP2/Billing-Software/internal/schema"

	"gorm.io/gorm"
)

// listLimit caps every list and relation lookup. There is no further
// pagination or filtering on the generic surface.
const listLimit = 1000

// Row is one table row keyed by column name.
type Row = map[string]interface{}

type Service struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewService returns a gateway over db. cacheService may be nil, in
// which case relation lookups always hit the database.
func NewService(db *gorm.DB, cacheService *cache.CacheService) *Service {
	return &Service{db: db, cache: cacheService}
}

// List returns up to listLimit rows ordered by descending id.
func (s *Service) List(ctx context.Context, table string) ([]Row, error) {
	if !schema.Allowed(table) {
		return nil, bizerrors.ErrTableNotAllowed
	}
	var rows []Row
	q := fmt.Sprintf("SELECT * FROM %s ORDER BY id DESC LIMIT %d", table, listLimit)
	if err := s.db.WithContext(ctx).Raw(q).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// ListRelation returns raw rows for foreign-key pickers. Results are
// served from cache when one is configured; gateway writes invalidate
// the table's entry.
func (s *Service) ListRelation(ctx context.Context, table string) ([]Row, error) {
	if !schema.Allowed(table) {
		return nil, bizerrors.ErrTableNotAllowed
	}
	if s.cache != nil {
		var cached []Row
		if hit, err := s.cache.Get(ctx, cache.RelationKey(table), &cached); err == nil && hit {
			return cached, nil
		}
	}
	var rows []Row
	q := fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, listLimit)
	if err := s.db.WithContext(ctx).Raw(q).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.RelationKey(table), rows); err != nil {
			log.Printf("relation cache set failed for %s: %v", table, err)
		}
	}
	return rows, nil
}

// Create inserts one row built from the body keys that survive the
// schema field filter. Unknown keys are dropped silently; an empty
// filtered set is a client error. Returns the created row.
func (s *Service) Create(ctx context.Context, table string, body Row) (Row, error) {
	if !schema.Allowed(table) {
		return nil, bizerrors.ErrTableNotAllowed
	}
	ts, ok := schema.Lookup(table)
	if !ok {
		return nil, bizerrors.ErrSchemaNotFound
	}

	columns, values := filterFields(ts, body)
	if len(columns) == 0 {
		return nil, bizerrors.ErrNoValidFields
	}
	for _, f := range ts.Fields {
		if f.DefaultNow && !contains(columns, f.Name) {
			columns = append(columns, f.Name)
			values = append(values, time.Now())
		}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table, strings.Join(columns, ", "), placeholders)

	var rows []Row
	if err := s.db.WithContext(ctx).Raw(q, values...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	s.invalidateRelation(ctx, table)
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Update mutates the row with the given id using the same field filter
// as Create. Returns the updated row, or nil when no row matched.
func (s *Service) Update(ctx context.Context, table string, id int64, body Row) (Row, error) {
	if !schema.Allowed(table) {
		return nil, bizerrors.ErrTableNotAllowed
	}
	ts, ok := schema.Lookup(table)
	if !ok {
		return nil, bizerrors.ErrSchemaNotFound
	}

	columns, values := filterFields(ts, body)
	if len(columns) == 0 {
		return nil, bizerrors.ErrNoValidFields
	}

	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = col + " = ?"
	}
	values = append(values, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = ? RETURNING *",
		table, strings.Join(assignments, ", "))

	var rows []Row
	if err := s.db.WithContext(ctx).Raw(q, values...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	s.invalidateRelation(ctx, table)
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Delete removes the row with the given id. Deleting an id that does
// not exist is not an error; the operation is idempotent.
func (s *Service) Delete(ctx context.Context, table string, id int64) error {
	if !schema.Allowed(table) {
		return bizerrors.ErrTableNotAllowed
	}
	q := fmt.Sprintf("DELETE FROM %s WHERE id = ?", table)
	if err := s.db.WithContext(ctx).Exec(q, id).Error; err != nil {
		return err
	}
	s.invalidateRelation(ctx, table)
	return nil
}

// filterFields projects body onto the schema's field list, preserving
// the registry's field order so generated SQL is deterministic.
func filterFields(ts *schema.TableSchema, body Row) ([]string, []interface{}) {
	var columns []string
	var values []interface{}
	for _, f := range ts.Fields {
		if v, ok := body[f.Name]; ok {
			columns = append(columns, f.Name)
			values = append(values, v)
		}
	}
	return columns, values
}

func (s *Service) invalidateRelation(ctx context.Context, table string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.RelationKey(table)); err != nil {
		log.Printf("relation cache invalidation failed for %s: %v", table, err)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
