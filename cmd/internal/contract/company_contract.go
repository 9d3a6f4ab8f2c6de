package contract

type CompanyListParams struct {
	PageParams
	IndustryCode string `query:"industry_code"`
	CompanyType  string `query:"company_type"`
	Search       string `query:"search"`
}

func NewCompanyListParams() *CompanyListParams {
	return &CompanyListParams{PageParams: DefaultPageParams()}
}

type CompanyResponse struct {
	DUNS            string  `json:"duns"`
	PhysicalAddress *string `json:"physical_address"`
	TelephoneNumber *string `json:"telephone_number"`
	ACN             *string `json:"acn"`
	CompanyType     *string `json:"company_type"`
	PrimarySIC      *string `json:"primary_sic"`
}

type CompanyListResponse struct {
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
	Companies []*CompanyResponse `json:"companies"`
}

type CompanyDetailResponse struct {
	CompanyResponse
	Industries []*IndustryResponse  `json:"industries"`
	Operations []*OperationResponse `json:"operations"`
	People     []*PersonResponse    `json:"people"`
}

type OperationResponse struct {
	ID         int64   `json:"id"`
	DUNS       string  `json:"duns"`
	FieldName  *string `json:"field_name"`
	FieldValue *string `json:"field_value"`
}

type OperationListResponse struct {
	Total      int                  `json:"total"`
	Operations []*OperationResponse `json:"operations"`
}
