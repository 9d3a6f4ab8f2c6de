package repository

import (
	"context"

	"companydata/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type Counts struct {
	Companies        int64
	BalanceSheets    int64
	CashFlows        int64
	IncomeStatements int64
	Industries       int64
	Operations       int64
	People           int64
}

type DefaultStatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *DefaultStatsRepository {
	return &DefaultStatsRepository{db: db}
}

func (r *DefaultStatsRepository) Counts(ctx context.Context) (*Counts, error) {
	var c Counts
	targets := []struct {
		table string
		dest  *int64
	}{
		{entity.Company{}.TableName(), &c.Companies},
		{entity.KindBalanceSheet.Table(), &c.BalanceSheets},
		{entity.KindCashFlow.Table(), &c.CashFlows},
		{entity.KindIncomeStatement.Table(), &c.IncomeStatements},
		{entity.Industry{}.TableName(), &c.Industries},
		{entity.Operation{}.TableName(), &c.Operations},
		{entity.Person{}.TableName(), &c.People},
	}

	db := r.db.WithContext(ctx)
	for _, t := range targets {
		if err := db.Table(t.table).Count(t.dest).Error; err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (r *DefaultStatsRepository) CountCompanies(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Company{}).Count(&count).Error
	return count, err
}
