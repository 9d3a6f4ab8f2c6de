package entity

import "strings"

// Company is the root of every record in the store, keyed by its DUNS number.
//
// Every dependent row belongs to exactly one company; deleting a company
// cascades to all of them.
type Company struct {
	DUNS            string  `gorm:"primaryKey;column:duns;size:20"`
	PhysicalAddress *string `gorm:"type:text"`
	TelephoneNumber *string `gorm:"size:50"`
	ACN             *string `gorm:"column:acn;size:20"`
	CompanyType     *string `gorm:"size:100"`
	PrimarySIC      *string `gorm:"column:primary_sic;size:200"`

	// Relationships
	BalanceSheets    []*BalanceSheet      `gorm:"foreignKey:DUNS;references:DUNS;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CashFlows        []*CashFlowStatement `gorm:"foreignKey:DUNS;references:DUNS;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	IncomeStatements []*IncomeStatement   `gorm:"foreignKey:DUNS;references:DUNS;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Industries       []*Industry          `gorm:"foreignKey:DUNS;references:DUNS;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Operations       []*Operation         `gorm:"foreignKey:DUNS;references:DUNS;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	People           []*Person            `gorm:"foreignKey:DUNS;references:DUNS;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Company) TableName() string {
	return "companies"
}

// Industry is one SIC classification of a company. Nothing prevents a
// company from having several primary classifications; the flag is taken
// from the source data as-is.
type Industry struct {
	ID                  int64   `gorm:"primaryKey"`
	DUNS                string  `gorm:"column:duns;size:20;not null;index"`
	IndustryCode        *string `gorm:"size:20;index"`
	IndustryDescription *string `gorm:"size:200"`
	IsPrimary           bool    `gorm:"not null;default:false"`
}

func (Industry) TableName() string {
	return "industries"
}

// Operation is a free-form descriptive field attached to a company.
type Operation struct {
	ID         int64   `gorm:"primaryKey"`
	DUNS       string  `gorm:"column:duns;size:20;not null;index"`
	FieldName  *string `gorm:"size:100"`
	FieldValue *string `gorm:"type:text"`
}

func (Operation) TableName() string {
	return "operations"
}

// Person is an executive or director of a company.
//
// Responsibilities keeps the comma-joined form found in the source files.
// Use SplitResponsibilities to get the individual values.
type Person struct {
	ID               int64   `gorm:"primaryKey"`
	DUNS             string  `gorm:"column:duns;size:20;not null;index"`
	PersonName       string  `gorm:"size:200;not null;index"`
	Title            *string `gorm:"size:200"`
	Responsibilities *string `gorm:"type:text"`
}

func (Person) TableName() string {
	return "people"
}

// SplitResponsibilities splits comma-joined responsibilities into trimmed,
// non-empty tags, in their original order.
func SplitResponsibilities(joined string) []string {
	var tags []string
	for _, tag := range strings.Split(joined, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Models lists every table of the store, parents first.
func Models() []any {
	return []any{
		&Company{},
		&BalanceSheet{},
		&CashFlowStatement{},
		&IncomeStatement{},
		&Industry{},
		&Operation{},
		&Person{},
	}
}
