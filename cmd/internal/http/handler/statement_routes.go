package handler

import (
	"context"
	"net/http"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type StatementService interface {
	GetStatements(ctx context.Context, params *contract.StatementListParams) (*contract.StatementListResponse, apierror.ErrorResponse)
	GetCompanyStatement(ctx context.Context, duns string, params *contract.StatementParams) (*contract.StatementListResponse, apierror.ErrorResponse)
	GetLineItems(ctx context.Context) (*contract.LineItemListResponse, apierror.ErrorResponse)
	GetYears(ctx context.Context) (*contract.YearListResponse, apierror.ErrorResponse)
}

// DefaultStatementRoute serves the routes of one kind of statement.
type DefaultStatementRoute struct {
	StatementService StatementService
}

func NewStatementDefault(statementService StatementService) *DefaultStatementRoute {
	return &DefaultStatementRoute{StatementService: statementService}
}

func (r *DefaultStatementRoute) GetStatements(c echo.Context) error {
	params := contract.NewStatementListParams()
	if apierr := bindStatementParams(c, &params.StatementParams); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	if apierr := queryInt(c, "limit", &params.Limit); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	if apierr := queryInt(c, "offset", &params.Offset); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	records, apierr := r.StatementService.GetStatements(c.Request().Context(), params)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, records)
}

func (r *DefaultStatementRoute) GetCompanyStatement(c echo.Context) error {
	var params contract.StatementParams
	if apierr := bindStatementParams(c, &params); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	records, apierr := r.StatementService.GetCompanyStatement(c.Request().Context(), c.Param("duns"), &params)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, records)
}

func (r *DefaultStatementRoute) GetLineItems(c echo.Context) error {
	items, apierr := r.StatementService.GetLineItems(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, items)
}

func (r *DefaultStatementRoute) GetYears(c echo.Context) error {
	years, apierr := r.StatementService.GetYears(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, years)
}

func bindStatementParams(c echo.Context, params *contract.StatementParams) apierror.ErrorResponse {
	year, apierr := queryOptionalInt(c, "year")
	if apierr != nil {
		return apierr
	}
	params.Year = year
	params.LineItem = c.QueryParam("line_item")
	return nil
}
