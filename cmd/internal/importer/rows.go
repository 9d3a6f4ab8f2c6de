package importer

import (
	"strconv"
	"strings"

	"companydata/cmd/internal/domain/entity"
	"companydata/cmd/internal/utils/finvalue"
)

type companyFieldRow struct {
	Field string `csv:"field"`
	Value string `csv:"value"`
}

type statementRow struct {
	LineItem string `csv:"line_item"`
	Year     string `csv:"year"`
	Value    string `csv:"value"`
}

type industryRow struct {
	Code        string `csv:"industry_code"`
	Description string `csv:"industry_description"`
	IsPrimary   string `csv:"is_primary"`
}

// operationRow accepts both the field_name/field_value header and the
// field/value one used by company_info.
type operationRow struct {
	FieldName  string `csv:"field_name"`
	FieldValue string `csv:"field_value"`
	Field      string `csv:"field"`
	Value      string `csv:"value"`
}

type personRow struct {
	Name             string `csv:"person_name"`
	Title            string `csv:"title"`
	Responsibilities string `csv:"responsibilities"`
}

// applyCompanyField sets the company attribute labelled field. Unknown
// labels are ignored.
func applyCompanyField(c *entity.Company, field, value string) {
	v := optional(value)
	switch strings.TrimSpace(field) {
	case "Physical Address":
		c.PhysicalAddress = v
	case "Telephone Number":
		c.TelephoneNumber = v
	case "ACN":
		c.ACN = v
	case "Company Type":
		c.CompanyType = v
	case "Primary SIC":
		c.PrimarySIC = v
	}
}

// toStatementLine returns false when the year is not an integer.
func (r *statementRow) toStatementLine(duns string) (*entity.StatementLine, bool) {
	year, err := strconv.Atoi(strings.TrimSpace(r.Year))
	if err != nil {
		return nil, false
	}

	line := &entity.StatementLine{
		DUNS:     duns,
		LineItem: strings.TrimSpace(r.LineItem),
		Year:     year,
	}
	if r.Value != "" {
		value := r.Value
		line.Value = &value
		line.NumericValue = finvalue.Parse(value)
	}
	return line, true
}

func (r *industryRow) toIndustry(duns string) *entity.Industry {
	return &entity.Industry{
		DUNS:                duns,
		IndustryCode:        optional(r.Code),
		IndustryDescription: optional(r.Description),
		IsPrimary:           parseFlag(r.IsPrimary),
	}
}

func (r *operationRow) toOperation(duns string) *entity.Operation {
	name, value := r.FieldName, r.FieldValue
	if strings.TrimSpace(name) == "" && strings.TrimSpace(value) == "" {
		name, value = r.Field, r.Value
	}
	return &entity.Operation{
		DUNS:       duns,
		FieldName:  optional(name),
		FieldValue: optional(value),
	}
}

// toPerson returns false for rows without a name.
func (r *personRow) toPerson(duns string) (*entity.Person, bool) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, false
	}
	return &entity.Person{
		DUNS:             duns,
		PersonName:       name,
		Title:            optional(r.Title),
		Responsibilities: optional(r.Responsibilities),
	}, true
}

// parseFlag reads an integer flag (non-zero is true). The words true and
// false are accepted too; anything else is false.
func parseFlag(s string) bool {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0
	}
	return strings.EqualFold(s, "true")
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
