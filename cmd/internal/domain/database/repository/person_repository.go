package repository

import (
	"context"

	"companydata/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type PersonFilter struct {
	// DUNS restricts the listing to one company when set.
	DUNS             string
	Title            string
	Name             string
	Responsibilities string
}

type TitleCount struct {
	Title string
	Count int64 `gorm:"column:occurrences"`
}

type DefaultPersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *DefaultPersonRepository {
	return &DefaultPersonRepository{db: db}
}

func (r *DefaultPersonRepository) FindAll(ctx context.Context, f PersonFilter, page Page) ([]*entity.Person, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Person{})
	if f.DUNS != "" {
		query = query.Where("duns = ?", f.DUNS)
	}
	if f.Title != "" {
		query = query.Where(ilike("title"), containsPattern(f.Title))
	}
	if f.Name != "" {
		query = query.Where(ilike("person_name"), containsPattern(f.Name))
	}
	if f.Responsibilities != "" {
		query = query.Where(ilike("responsibilities"), containsPattern(f.Responsibilities))
	}

	query = reusable(query)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	people := []*entity.Person{}
	err := page.apply(query).Order("id").Find(&people).Error
	if err != nil {
		return nil, 0, err
	}
	return people, total, nil
}

// Titles counts people per non-empty title, most common first.
func (r *DefaultPersonRepository) Titles(ctx context.Context) ([]*TitleCount, error) {
	titles := []*TitleCount{}
	err := r.db.WithContext(ctx).
		Model(&entity.Person{}).
		Select("title, COUNT(id) AS occurrences").
		Where("title IS NOT NULL AND title <> ''").
		Group("title").
		Order("occurrences DESC").
		Order("title ASC").
		Scan(&titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

// Responsibilities returns the raw comma-joined responsibilities of every
// person that has some.
func (r *DefaultPersonRepository) Responsibilities(ctx context.Context) ([]string, error) {
	var joined []string
	err := r.db.WithContext(ctx).
		Model(&entity.Person{}).
		Where("responsibilities IS NOT NULL AND responsibilities <> ''").
		Order("id").
		Pluck("responsibilities", &joined).Error
	if err != nil {
		return nil, err
	}
	return joined, nil
}
