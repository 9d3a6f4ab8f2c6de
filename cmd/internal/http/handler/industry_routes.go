package handler

import (
	"context"
	"net/http"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type IndustryService interface {
	GetIndustries(ctx context.Context, params *contract.IndustryListParams) (*contract.IndustryListResponse, apierror.ErrorResponse)
	GetIndustryCodes(ctx context.Context) (*contract.IndustryCodeListResponse, apierror.ErrorResponse)
}

type DefaultIndustryRoute struct {
	IndustryService IndustryService
}

func NewIndustryDefault(industryService IndustryService) *DefaultIndustryRoute {
	return &DefaultIndustryRoute{IndustryService: industryService}
}

func (r *DefaultIndustryRoute) GetIndustries(c echo.Context) error {
	params := contract.IndustryListParams{
		Code:        c.QueryParam("code"),
		Description: c.QueryParam("description"),
	}
	if apierr := queryBool(c, "primary_only", &params.PrimaryOnly); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	industries, apierr := r.IndustryService.GetIndustries(c.Request().Context(), &params)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, industries)
}

func (r *DefaultIndustryRoute) GetIndustryCodes(c echo.Context) error {
	codes, apierr := r.IndustryService.GetIndustryCodes(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, codes)
}
