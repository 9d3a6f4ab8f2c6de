package contract

type RootResponse struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type StatsResponse struct {
	Companies              int64 `json:"companies"`
	BalanceSheetRecords    int64 `json:"balance_sheet_records"`
	CashFlowRecords        int64 `json:"cash_flow_records"`
	IncomeStatementRecords int64 `json:"income_statement_records"`
	IndustryRecords        int64 `json:"industry_records"`
	OperationRecords       int64 `json:"operation_records"`
	PeopleRecords          int64 `json:"people_records"`
}
