package repository

import (
	"context"

	"companydata/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type IndustryFilter struct {
	Code        string
	Description string
	PrimaryOnly bool
}

type IndustryCodeCount struct {
	Code         string
	Description  *string
	CompanyCount int64
}

type DefaultIndustryRepository struct {
	db *gorm.DB
}

func NewIndustryRepository(db *gorm.DB) *DefaultIndustryRepository {
	return &DefaultIndustryRepository{db: db}
}

func (r *DefaultIndustryRepository) FindAll(ctx context.Context, f IndustryFilter) ([]*entity.Industry, error) {
	query := r.db.WithContext(ctx).Model(&entity.Industry{})
	if f.Code != "" {
		query = query.Where("industry_code = ?", f.Code)
	}
	if f.Description != "" {
		query = query.Where(ilike("industry_description"), containsPattern(f.Description))
	}
	if f.PrimaryOnly {
		query = query.Where("is_primary = ?", true)
	}

	industries := []*entity.Industry{}
	if err := query.Order("id").Find(&industries).Error; err != nil {
		return nil, err
	}
	return industries, nil
}

func (r *DefaultIndustryRepository) FindByDUNS(ctx context.Context, duns string) ([]*entity.Industry, error) {
	industries := []*entity.Industry{}
	err := r.db.WithContext(ctx).
		Where("duns = ?", duns).
		Order("id").
		Find(&industries).Error
	if err != nil {
		return nil, err
	}
	return industries, nil
}

// Codes groups classifications by code and description, counting distinct
// companies, most used first. Rows without a code are left out.
func (r *DefaultIndustryRepository) Codes(ctx context.Context) ([]*IndustryCodeCount, error) {
	codes := []*IndustryCodeCount{}
	err := r.db.WithContext(ctx).
		Model(&entity.Industry{}).
		Select("industry_code AS code, industry_description AS description, COUNT(DISTINCT duns) AS company_count").
		Where("industry_code IS NOT NULL AND industry_code <> ''").
		Group("industry_code, industry_description").
		Order("company_count DESC").
		Order("code ASC").
		Scan(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}
