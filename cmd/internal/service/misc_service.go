package service

import (
	"context"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

const (
	APIName    = "Company Financial Data API"
	APIVersion = "1.0.0"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type MiscService struct {
	StatsRepo StatsRepository
	DB        Pinger
}

func NewMiscService(statsRepo StatsRepository, db Pinger) *MiscService {
	return &MiscService{StatsRepo: statsRepo, DB: db}
}

func (m *MiscService) GetRoot() *contract.RootResponse {
	return &contract.RootResponse{
		Name:        APIName,
		Version:     APIVersion,
		Description: "API for accessing company financial data",
		Endpoints: map[string]string{
			"companies":         "/companies",
			"balance_sheets":    "/balance-sheets",
			"cash_flows":        "/cash-flows",
			"income_statements": "/income-statements",
			"people":            "/people",
			"industries":        "/industries",
			"stats":             "/stats",
			"health":            "/health",
			"metrics":           "/metrics",
		},
	}
}

func (m *MiscService) CheckHealth(ctx context.Context) (*contract.HealthResponse, apierror.ErrorResponse) {
	if err := m.DB.Ping(ctx); err != nil {
		log.Errorf("health check failed: %v", err)
		return nil, apierror.DatabaseUnavailable
	}
	return &contract.HealthResponse{Status: "healthy"}, nil
}

func (m *MiscService) GetStats(ctx context.Context) (*contract.StatsResponse, apierror.ErrorResponse) {
	counts, err := m.StatsRepo.Counts(ctx)
	if err != nil {
		log.Errorf("failed to count records: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.StatsResponse{
		Companies:              counts.Companies,
		BalanceSheetRecords:    counts.BalanceSheets,
		CashFlowRecords:        counts.CashFlows,
		IncomeStatementRecords: counts.IncomeStatements,
		IndustryRecords:        counts.Industries,
		OperationRecords:       counts.Operations,
		PeopleRecords:          counts.People,
	}, nil
}
