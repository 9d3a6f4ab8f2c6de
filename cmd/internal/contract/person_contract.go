package contract

type PersonListParams struct {
	PageParams
	Title            string `query:"title"`
	Name             string `query:"name"`
	Responsibilities string `query:"responsibilities"`
}

func NewPersonListParams() *PersonListParams {
	return &PersonListParams{PageParams: DefaultPageParams()}
}

type PersonResponse struct {
	ID               int64   `json:"id"`
	DUNS             string  `json:"duns"`
	PersonName       string  `json:"person_name"`
	Title            *string `json:"title"`
	Responsibilities *string `json:"responsibilities"`
}

type PersonListResponse struct {
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	People   []*PersonResponse `json:"people"`
}

type TitleCountResponse struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}

type TitleListResponse struct {
	Total  int                   `json:"total"`
	Titles []*TitleCountResponse `json:"titles"`
}

type ResponsibilityCountResponse struct {
	Responsibility string `json:"responsibility"`
	Count          int    `json:"count"`
}

type ResponsibilityListResponse struct {
	Total            int                            `json:"total"`
	Responsibilities []*ResponsibilityCountResponse `json:"responsibilities"`
}
