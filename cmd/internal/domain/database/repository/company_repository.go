package repository

import (
	"context"
	"errors"

	"companydata/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type CompanyFilter struct {
	// IndustryCode keeps companies with at least one matching classification.
	IndustryCode string
	CompanyType  string
	// Search matches the physical address or the primary SIC label.
	Search string
}

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (r *DefaultCompanyRepository) FindAll(ctx context.Context, f CompanyFilter, page Page) ([]*entity.Company, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Company{})

	if f.IndustryCode != "" {
		codes := r.db.Model(&entity.Industry{}).
			Select("duns").
			Where("industry_code = ?", f.IndustryCode)
		query = query.Where("duns IN (?)", codes)
	}
	if f.CompanyType != "" {
		query = query.Where(ilike("company_type"), containsPattern(f.CompanyType))
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		query = query.Where("("+ilike("physical_address")+" OR "+ilike("primary_sic")+")", pattern, pattern)
	}

	query = reusable(query)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	companies := []*entity.Company{}
	err := page.apply(query).Order("duns").Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

// FindByDUNS returns nil when no company has this key.
func (r *DefaultCompanyRepository) FindByDUNS(ctx context.Context, duns string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.WithContext(ctx).
		Where("duns = ?", duns).
		First(&company).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

// FindDetailByDUNS is FindByDUNS with industries, operations and people loaded.
func (r *DefaultCompanyRepository) FindDetailByDUNS(ctx context.Context, duns string) (*entity.Company, error) {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id") }

	var company entity.Company
	err := r.db.WithContext(ctx).
		Preload("Industries", byID).
		Preload("Operations", byID).
		Preload("People", byID).
		Where("duns = ?", duns).
		First(&company).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) ExistsByDUNS(ctx context.Context, duns string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Company{}).
		Where("duns = ?", duns).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
