// Package postgres implements ports.KeyValueStore on a single PostgreSQL
// table of JSONB documents.
//
// Every record lives in kv_records keyed by (tbl, record_key). Writes are
// single statements, so conditional semantics come from the WHERE clause:
//
//	PutIfAbsent      INSERT ... ON CONFLICT DO NOTHING
//	UpdateIfMatches  UPDATE ... SET doc = doc || patch WHERE ... RETURNING doc
//	Delete           DELETE ... WHERE ...
//
// When a conditional statement touches no row, a second lookup decides
// between ports.ErrNotFound and ports.ErrPreconditionFailed.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordDTO is one stored document.
type RecordDTO struct {
	Table string `gorm:"column:tbl;primaryKey;size:64"`
	Key   string `gorm:"column:record_key;primaryKey;size:128"`
	Doc   string `gorm:"column:doc;type:jsonb;not null"`
}

func (RecordDTO) TableName() string {
	return "kv_records"
}

// GormKeyValueStore implements ports.KeyValueStore using GORM.
type GormKeyValueStore struct {
	db *gorm.DB
}

var _ ports.KeyValueStore = (*GormKeyValueStore)(nil)

func NewGormKeyValueStore(db *gorm.DB) (*GormKeyValueStore, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	return &GormKeyValueStore{db: db}, nil
}

// Migrate creates the kv_records table if needed.
func (s *GormKeyValueStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&RecordDTO{})
}

func (s *GormKeyValueStore) PutIfAbsent(ctx context.Context, table ports.Table, key string, doc []byte) error {
	if !json.Valid(doc) {
		return errs.NewValueIsInvalidError("doc")
	}

	rec := RecordDTO{Table: string(table), Key: key, Doc: string(doc)}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s/%s: %w", table, key, ports.ErrAlreadyExists)
	}
	return nil
}

func (s *GormKeyValueStore) UpdateIfMatches(
	ctx context.Context,
	table ports.Table,
	key string,
	cond ports.Condition,
	mut ports.Mutation,
) ([]byte, error) {
	patch, err := json.Marshal(mut.Attributes())
	if err != nil {
		return nil, err
	}

	query, err := s.conditioned(s.db.WithContext(ctx), table, key, cond)
	if err != nil {
		return nil, err
	}

	var updated []RecordDTO
	result := query.Model(&updated).
		Clauses(clause.Returning{}).
		Update("doc", gorm.Expr("doc || ?::jsonb", string(patch)))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		return nil, s.explainMiss(ctx, table, key)
	}
	return []byte(updated[0].Doc), nil
}

func (s *GormKeyValueStore) Get(ctx context.Context, table ports.Table, key string) ([]byte, error) {
	var rec RecordDTO
	err := s.db.WithContext(ctx).First(&rec, "tbl = ? AND record_key = ?", string(table), key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s/%s: %w", table, key, ports.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return []byte(rec.Doc), nil
}

// Scan returns at most limit documents; limit <= 0 means no bound.
func (s *GormKeyValueStore) Scan(ctx context.Context, table ports.Table, limit int) ([][]byte, error) {
	return s.ScanMatching(ctx, table, ports.MustExist(), limit)
}

// ScanMatching filters on the condition's attribute, if any; limit <= 0
// means no bound.
func (s *GormKeyValueStore) ScanMatching(ctx context.Context, table ports.Table, cond ports.Condition, limit int) ([][]byte, error) {
	query, err := matching(s.db.WithContext(ctx).Where("tbl = ?", string(table)), cond)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recs []RecordDTO
	if err := query.Find(&recs).Error; err != nil {
		return nil, err
	}

	docs := make([][]byte, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, []byte(rec.Doc))
	}
	return docs, nil
}

func (s *GormKeyValueStore) Delete(ctx context.Context, table ports.Table, key string, cond ports.Condition) error {
	query, err := s.conditioned(s.db.WithContext(ctx), table, key, cond)
	if err != nil {
		return err
	}

	result := query.Delete(&RecordDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return s.explainMiss(ctx, table, key)
	}
	return nil
}

func (s *GormKeyValueStore) conditioned(db *gorm.DB, table ports.Table, key string, cond ports.Condition) (*gorm.DB, error) {
	return matching(db.Where("tbl = ? AND record_key = ?", string(table), key), cond)
}

// matching adds the condition's attribute comparison to query.
func matching(query *gorm.DB, cond ports.Condition) (*gorm.DB, error) {
	name, value, ok := cond.Attribute()
	if !ok {
		return query, nil
	}
	expected, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return query.Where("doc -> ?::text = ?::jsonb", name, string(expected)), nil
}

func (s *GormKeyValueStore) explainMiss(ctx context.Context, table ports.Table, key string) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("tbl = ? AND record_key = ?", string(table), key).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s/%s: %w", table, key, ports.ErrNotFound)
	}
	return fmt.Errorf("%s/%s: %w", table, key, ports.ErrPreconditionFailed)
}
