package service

import (
	"context"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/domain/database/repository"
	"companydata/cmd/internal/domain/entity"
	"companydata/cmd/internal/utils"
	"companydata/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// DefaultStatementService serves one kind of financial statement. The API
// runs one instance per kind.
type DefaultStatementService struct {
	Kind          entity.StatementKind
	StatementRepo StatementRepository
	CompanyRepo   CompanyRepository
	Validate      *validator.Validate
}

func NewStatementService(
	kind entity.StatementKind,
	statementRepo StatementRepository,
	companyRepo CompanyRepository,
	validate *validator.Validate,
) *DefaultStatementService {
	return &DefaultStatementService{
		Kind:          kind,
		StatementRepo: statementRepo,
		CompanyRepo:   companyRepo,
		Validate:      validate,
	}
}

func (s *DefaultStatementService) GetStatements(ctx context.Context, params *contract.StatementListParams) (*contract.StatementListResponse, apierror.ErrorResponse) {
	utils.Sanitize(params)
	if valerr := s.Validate.Struct(params); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	page := repository.Page{Offset: params.Offset, Limit: params.Limit}
	lines, total, err := s.StatementRepo.FindAll(ctx, toStatementFilter(&params.StatementParams), page)
	if err != nil {
		log.Errorf("failed to list %s lines: %v", s.Kind, err)
		return nil, apierror.InternalServerError
	}
	return &contract.StatementListResponse{
		Total:   total,
		Year:    params.Year,
		Records: toRecordsResponse(lines),
	}, nil
}

func (s *DefaultStatementService) GetCompanyStatement(ctx context.Context, duns string, params *contract.StatementParams) (*contract.StatementListResponse, apierror.ErrorResponse) {
	utils.Sanitize(params)
	if valerr := s.Validate.Struct(params); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := requireCompany(ctx, s.CompanyRepo, duns); apierr != nil {
		return nil, apierr
	}

	lines, err := s.StatementRepo.FindByDUNS(ctx, duns, toStatementFilter(params))
	if err != nil {
		log.Errorf("failed to fetch %s of %s: %v", s.Kind, duns, err)
		return nil, apierror.InternalServerError
	}
	return &contract.StatementListResponse{
		Total:   int64(len(lines)),
		DUNS:    &duns,
		Year:    params.Year,
		Records: toRecordsResponse(lines),
	}, nil
}

func (s *DefaultStatementService) GetLineItems(ctx context.Context) (*contract.LineItemListResponse, apierror.ErrorResponse) {
	items, err := s.StatementRepo.LineItems(ctx)
	if err != nil {
		log.Errorf("failed to list %s line items: %v", s.Kind, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.LineItemResponse, len(items))
	for i, item := range items {
		resp[i] = &contract.LineItemResponse{LineItem: item.LineItem, RecordCount: item.RecordCount}
	}
	return &contract.LineItemListResponse{Total: len(resp), LineItems: resp}, nil
}

func (s *DefaultStatementService) GetYears(ctx context.Context) (*contract.YearListResponse, apierror.ErrorResponse) {
	years, err := s.StatementRepo.Years(ctx)
	if err != nil {
		log.Errorf("failed to list %s years: %v", s.Kind, err)
		return nil, apierror.InternalServerError
	}
	return &contract.YearListResponse{Years: years}, nil
}

func toStatementFilter(params *contract.StatementParams) repository.StatementFilter {
	return repository.StatementFilter{Year: params.Year, LineItem: params.LineItem}
}
