package handler

import (
	"context"
	"net/http"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type MiscService interface {
	GetRoot() *contract.RootResponse
	CheckHealth(ctx context.Context) (*contract.HealthResponse, apierror.ErrorResponse)
	GetStats(ctx context.Context) (*contract.StatsResponse, apierror.ErrorResponse)
}

type DefaultMiscRoute struct {
	MiscService MiscService
}

func NewMiscDefault(miscService MiscService) *DefaultMiscRoute {
	return &DefaultMiscRoute{MiscService: miscService}
}

func (r *DefaultMiscRoute) GetRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, r.MiscService.GetRoot())
}

// HealthCheck backs the container health probe.
func (r *DefaultMiscRoute) HealthCheck(c echo.Context) error {
	health, apierr := r.MiscService.CheckHealth(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, health)
}

func (r *DefaultMiscRoute) GetStats(c echo.Context) error {
	stats, apierr := r.MiscService.GetStats(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, stats)
}
