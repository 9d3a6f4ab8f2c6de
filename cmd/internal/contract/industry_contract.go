package contract

type IndustryListParams struct {
	Code        string `query:"code"`
	Description string `query:"description"`
	PrimaryOnly bool   `query:"primary_only"`
}

type IndustryResponse struct {
	ID                  int64   `json:"id"`
	DUNS                string  `json:"duns"`
	IndustryCode        *string `json:"industry_code"`
	IndustryDescription *string `json:"industry_description"`
	IsPrimary           bool    `json:"is_primary"`
}

type IndustryListResponse struct {
	Total      int                 `json:"total"`
	Industries []*IndustryResponse `json:"industries"`
}

type IndustryCodeResponse struct {
	Code         string  `json:"code"`
	Description  *string `json:"description"`
	CompanyCount int64   `json:"company_count"`
}

type IndustryCodeListResponse struct {
	Total int                     `json:"total"`
	Codes []*IndustryCodeResponse `json:"codes"`
}
