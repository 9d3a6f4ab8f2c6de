package handler

import (
	"context"
	"net/http"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CompanyService interface {
	GetCompanies(ctx context.Context, params *contract.CompanyListParams) (*contract.CompanyListResponse, apierror.ErrorResponse)
	GetCompany(ctx context.Context, duns string) (*contract.CompanyDetailResponse, apierror.ErrorResponse)
	GetCompanyIndustries(ctx context.Context, duns string) (*contract.IndustryListResponse, apierror.ErrorResponse)
	GetCompanyOperations(ctx context.Context, duns string) (*contract.OperationListResponse, apierror.ErrorResponse)
	GetCompanyPeople(ctx context.Context, duns string, params *contract.PageParams) (*contract.PersonListResponse, apierror.ErrorResponse)
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyDefault(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (r *DefaultCompanyRoute) GetCompanies(c echo.Context) error {
	params := contract.NewCompanyListParams()
	if apierr := bindPage(c, &params.PageParams); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	params.IndustryCode = c.QueryParam("industry_code")
	params.CompanyType = c.QueryParam("company_type")
	params.Search = c.QueryParam("search")

	companies, apierr := r.CompanyService.GetCompanies(c.Request().Context(), params)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, companies)
}

func (r *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	company, apierr := r.CompanyService.GetCompany(c.Request().Context(), c.Param("duns"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, company)
}

func (r *DefaultCompanyRoute) GetCompanyIndustries(c echo.Context) error {
	industries, apierr := r.CompanyService.GetCompanyIndustries(c.Request().Context(), c.Param("duns"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, industries)
}

func (r *DefaultCompanyRoute) GetCompanyOperations(c echo.Context) error {
	operations, apierr := r.CompanyService.GetCompanyOperations(c.Request().Context(), c.Param("duns"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, operations)
}

func (r *DefaultCompanyRoute) GetCompanyPeople(c echo.Context) error {
	params := contract.DefaultPageParams()
	if apierr := bindPage(c, &params); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	people, apierr := r.CompanyService.GetCompanyPeople(c.Request().Context(), c.Param("duns"), &params)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, people)
}
