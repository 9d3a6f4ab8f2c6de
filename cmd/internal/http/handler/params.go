package handler

import (
	"strconv"
	"strings"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// Empty query values count as absent, so "?year=" leaves the filter unset.

func queryInt(c echo.Context, name string, dst *int) apierror.ErrorResponse {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return apierror.NewInvalidParamTypeError(name, "int")
	}
	*dst = n
	return nil
}

func queryOptionalInt(c echo.Context, name string) (*int, apierror.ErrorResponse) {
	if strings.TrimSpace(c.QueryParam(name)) == "" {
		return nil, nil
	}

	var n int
	if apierr := queryInt(c, name, &n); apierr != nil {
		return nil, apierr
	}
	return &n, nil
}

func queryBool(c echo.Context, name string, dst *bool) apierror.ErrorResponse {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return apierror.NewInvalidParamTypeError(name, "bool")
	}
	*dst = b
	return nil
}

func bindPage(c echo.Context, page *contract.PageParams) apierror.ErrorResponse {
	if apierr := queryInt(c, "page", &page.Page); apierr != nil {
		return apierr
	}
	return queryInt(c, "page_size", &page.PageSize)
}
