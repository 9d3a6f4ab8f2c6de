package repository

import (
	"context"
	"fmt"

	"companydata/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultImportRepository is the only writer of the store. Each call runs in
// its own transaction, so a file is either fully loaded or not at all.
type DefaultImportRepository struct {
	db        *gorm.DB
	batchSize int
}

func NewImportRepository(db *gorm.DB, batchSize int) *DefaultImportRepository {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &DefaultImportRepository{db: db, batchSize: batchSize}
}

// UpsertCompanies inserts the companies, overwriting the fields of the ones
// already stored under the same DUNS.
func (r *DefaultImportRepository) UpsertCompanies(ctx context.Context, companies []*entity.Company) error {
	if len(companies) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "duns"}},
				UpdateAll: true,
			}).
			CreateInBatches(companies, r.batchSize).Error
	})
}

func (r *DefaultImportRepository) InsertStatementLines(ctx context.Context, kind entity.StatementKind, lines []*entity.StatementLine) error {
	table := kind.Table()
	if table == "" {
		return fmt.Errorf("unknown statement kind %q", kind)
	}
	return r.insert(ctx, table, lines)
}

func (r *DefaultImportRepository) InsertIndustries(ctx context.Context, industries []*entity.Industry) error {
	return r.insert(ctx, "", industries)
}

func (r *DefaultImportRepository) InsertOperations(ctx context.Context, operations []*entity.Operation) error {
	return r.insert(ctx, "", operations)
}

func (r *DefaultImportRepository) InsertPeople(ctx context.Context, people []*entity.Person) error {
	return r.insert(ctx, "", people)
}

// insert bulk-loads rows in one transaction. table overrides the table of
// the row type when set.
func (r *DefaultImportRepository) insert(ctx context.Context, table string, rows any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if table != "" {
			tx = tx.Table(table)
		}
		return tx.CreateInBatches(rows, r.batchSize).Error
	})
}

// Truncate removes every row, dependents before companies.
func (r *DefaultImportRepository) Truncate(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		models := entity.Models()
		for i := len(models) - 1; i >= 0; i-- {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(models[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
