package jobs

import (
	"context"
	"fmt"

	"companydata/cmd/internal/importer"

	"github.com/labstack/gommon/log"
)

type CompanyCounter interface {
	CountCompanies(ctx context.Context) (int64, error)
}

type ImportRunner interface {
	Run(ctx context.Context) (*importer.Summary, error)
}

// StartupImport fills an empty store before the server starts listening.
// A store that already holds companies is left untouched.
type StartupImport struct {
	companies CompanyCounter
	runner    ImportRunner
}

func NewStartupImport(companies CompanyCounter, runner ImportRunner) *StartupImport {
	return &StartupImport{companies: companies, runner: runner}
}

// Run reports whether an import took place.
func (s *StartupImport) Run(ctx context.Context) (bool, error) {
	count, err := s.companies.CountCompanies(ctx)
	if err != nil {
		return false, fmt.Errorf("count companies: %w", err)
	}

	if count > 0 {
		log.Infof("Startup import: store already holds %d companies, skipping", count)
		return false, nil
	}

	log.Info("Startup import: store is empty, importing...")
	summary, err := s.runner.Run(ctx)
	if err != nil {
		return false, err
	}

	log.Infof("Startup import: %d rows loaded in %s", summary.Rows(), summary.Duration)
	return true, nil
}
