package handler

import (
	"context"
	"net/http"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type PersonService interface {
	GetPeople(ctx context.Context, params *contract.PersonListParams) (*contract.PersonListResponse, apierror.ErrorResponse)
	GetTitles(ctx context.Context) (*contract.TitleListResponse, apierror.ErrorResponse)
	GetResponsibilities(ctx context.Context) (*contract.ResponsibilityListResponse, apierror.ErrorResponse)
}

type DefaultPersonRoute struct {
	PersonService PersonService
}

func NewPersonDefault(personService PersonService) *DefaultPersonRoute {
	return &DefaultPersonRoute{PersonService: personService}
}

func (r *DefaultPersonRoute) GetPeople(c echo.Context) error {
	params := contract.NewPersonListParams()
	if apierr := bindPage(c, &params.PageParams); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	params.Title = c.QueryParam("title")
	params.Name = c.QueryParam("name")
	params.Responsibilities = c.QueryParam("responsibilities")

	people, apierr := r.PersonService.GetPeople(c.Request().Context(), params)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, people)
}

func (r *DefaultPersonRoute) GetTitles(c echo.Context) error {
	titles, apierr := r.PersonService.GetTitles(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, titles)
}

func (r *DefaultPersonRoute) GetResponsibilities(c echo.Context) error {
	responsibilities, apierr := r.PersonService.GetResponsibilities(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, responsibilities)
}
