package repository

import (
	"context"

	"companydata/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type StatementFilter struct {
	Year     *int
	LineItem string
}

type LineItemCount struct {
	LineItem    string
	RecordCount int64
}

// DefaultStatementRepository reads the lines of one kind of financial
// statement. The three statement tables share a layout, so a single
// implementation serves all of them.
type DefaultStatementRepository struct {
	db    *gorm.DB
	table string
}

func NewStatementRepository(db *gorm.DB, kind entity.StatementKind) *DefaultStatementRepository {
	return &DefaultStatementRepository{db: db, table: kind.Table()}
}

func (r *DefaultStatementRepository) lines(ctx context.Context, f StatementFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Table(r.table)
	if f.Year != nil {
		query = query.Where("year = ?", *f.Year)
	}
	if f.LineItem != "" {
		query = query.Where(ilike("line_item"), containsPattern(f.LineItem))
	}
	return query
}

// FindAll lists lines of every company in insertion order.
func (r *DefaultStatementRepository) FindAll(ctx context.Context, f StatementFilter, page Page) ([]*entity.StatementLine, int64, error) {
	query := reusable(r.lines(ctx, f))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := []*entity.StatementLine{}
	err := page.apply(query).Order("id").Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// FindByDUNS lists the lines of one company, latest year first and line items
// alphabetically within a year.
func (r *DefaultStatementRepository) FindByDUNS(ctx context.Context, duns string, f StatementFilter) ([]*entity.StatementLine, error) {
	records := []*entity.StatementLine{}
	err := r.lines(ctx, f).
		Where("duns = ?", duns).
		Order("year DESC").
		Order("line_item ASC").
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *DefaultStatementRepository) LineItems(ctx context.Context) ([]*LineItemCount, error) {
	items := []*LineItemCount{}
	err := r.db.WithContext(ctx).
		Table(r.table).
		Select("line_item, COUNT(id) AS record_count").
		Group("line_item").
		Order("line_item").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *DefaultStatementRepository) Years(ctx context.Context) ([]int, error) {
	years := []int{}
	err := r.db.WithContext(ctx).
		Table(r.table).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}
