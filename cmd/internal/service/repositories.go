package service

import (
	"context"

	"companydata/cmd/internal/domain/database/repository"
	"companydata/cmd/internal/domain/entity"
)

type CompanyRepository interface {
	FindAll(ctx context.Context, f repository.CompanyFilter, page repository.Page) ([]*entity.Company, int64, error)
	FindDetailByDUNS(ctx context.Context, duns string) (*entity.Company, error)
	ExistsByDUNS(ctx context.Context, duns string) (bool, error)
}

type StatementRepository interface {
	FindAll(ctx context.Context, f repository.StatementFilter, page repository.Page) ([]*entity.StatementLine, int64, error)
	FindByDUNS(ctx context.Context, duns string, f repository.StatementFilter) ([]*entity.StatementLine, error)
	LineItems(ctx context.Context) ([]*repository.LineItemCount, error)
	Years(ctx context.Context) ([]int, error)
}

type IndustryRepository interface {
	FindAll(ctx context.Context, f repository.IndustryFilter) ([]*entity.Industry, error)
	FindByDUNS(ctx context.Context, duns string) ([]*entity.Industry, error)
	Codes(ctx context.Context) ([]*repository.IndustryCodeCount, error)
}

type OperationRepository interface {
	FindByDUNS(ctx context.Context, duns string) ([]*entity.Operation, error)
}

type PersonRepository interface {
	FindAll(ctx context.Context, f repository.PersonFilter, page repository.Page) ([]*entity.Person, int64, error)
	Titles(ctx context.Context) ([]*repository.TitleCount, error)
	Responsibilities(ctx context.Context) ([]string, error)
}

type StatsRepository interface {
	Counts(ctx context.Context) (*repository.Counts, error)
}
