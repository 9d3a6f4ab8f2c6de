package contract

const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100

	DefaultLimit = 100
	MaxLimit     = 1000
)

// PageParams selects a 1-indexed page of a listing.
type PageParams struct {
	Page     int `query:"page" validate:"gte=1"`
	PageSize int `query:"page_size" validate:"gte=1,lte=100"`
}

func DefaultPageParams() PageParams {
	return PageParams{Page: DefaultPage, PageSize: DefaultPageSize}
}
