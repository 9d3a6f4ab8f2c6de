package repository

import (
	"context"

	"companydata/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultOperationRepository struct {
	db *gorm.DB
}

func NewOperationRepository(db *gorm.DB) *DefaultOperationRepository {
	return &DefaultOperationRepository{db: db}
}

func (r *DefaultOperationRepository) FindByDUNS(ctx context.Context, duns string) ([]*entity.Operation, error) {
	operations := []*entity.Operation{}
	err := r.db.WithContext(ctx).
		Where("duns = ?", duns).
		Order("id").
		Find(&operations).Error
	if err != nil {
		return nil, err
	}
	return operations, nil
}
