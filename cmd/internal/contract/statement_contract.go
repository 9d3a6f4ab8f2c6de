package contract

// StatementParams filters the lines of one company's statement.
type StatementParams struct {
	Year     *int   `query:"year"`
	LineItem string `query:"line_item"`
}

// StatementListParams filters the lines of a statement across companies.
type StatementListParams struct {
	StatementParams
	Limit  int `query:"limit" validate:"gte=1,lte=1000"`
	Offset int `query:"offset" validate:"gte=0"`
}

func NewStatementListParams() *StatementListParams {
	return &StatementListParams{Limit: DefaultLimit}
}

type StatementRecordResponse struct {
	ID           int64    `json:"id"`
	DUNS         string   `json:"duns"`
	LineItem     string   `json:"line_item"`
	Year         int      `json:"year"`
	Value        *string  `json:"value"`
	NumericValue *float64 `json:"numeric_value"`
}

// StatementListResponse has a null DUNS for listings across companies.
type StatementListResponse struct {
	Total   int64                      `json:"total"`
	DUNS    *string                    `json:"duns"`
	Year    *int                       `json:"year"`
	Records []*StatementRecordResponse `json:"records"`
}

type LineItemResponse struct {
	LineItem    string `json:"line_item"`
	RecordCount int64  `json:"record_count"`
}

type LineItemListResponse struct {
	Total     int                 `json:"total"`
	LineItems []*LineItemResponse `json:"line_items"`
}

type YearListResponse struct {
	Years []int `json:"years"`
}
