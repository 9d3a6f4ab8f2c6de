package entity

// StatementKind identifies one of the three financial statements. All of
// them share the StatementLine layout and only differ by table.
type StatementKind string

const (
	KindBalanceSheet    StatementKind = "balance_sheet"
	KindCashFlow        StatementKind = "cash_flow_statement"
	KindIncomeStatement StatementKind = "income_statement"
)

// StatementKinds is the import order of the financial statements.
var StatementKinds = []StatementKind{KindBalanceSheet, KindCashFlow, KindIncomeStatement}

// Table returns the table holding the lines of this statement.
func (k StatementKind) Table() string {
	switch k {
	case KindBalanceSheet:
		return BalanceSheet{}.TableName()
	case KindCashFlow:
		return CashFlowStatement{}.TableName()
	case KindIncomeStatement:
		return IncomeStatement{}.TableName()
	default:
		return ""
	}
}

// StatementLine is a single line item of a financial statement for a given
// fiscal year.
//
// Value keeps the text exactly as it was found in the source (e.g. "$43,079"
// or "(12.5%)"). NumericValue is only set when Value could be parsed
// unambiguously.
type StatementLine struct {
	ID           int64    `gorm:"primaryKey"`
	DUNS         string   `gorm:"column:duns;size:20;not null;index"`
	LineItem     string   `gorm:"size:200;index"`
	Year         int      `gorm:"index"`
	Value        *string  `gorm:"size:100"`
	NumericValue *float64
}

type BalanceSheet struct {
	StatementLine
}

func (BalanceSheet) TableName() string {
	return "balance_sheets"
}

type CashFlowStatement struct {
	StatementLine
}

func (CashFlowStatement) TableName() string {
	return "cash_flow_statements"
}

type IncomeStatement struct {
	StatementLine
}

func (IncomeStatement) TableName() string {
	return "income_statements"
}
