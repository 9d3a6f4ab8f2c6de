package service

import (
	"context"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/domain/database/repository"
	"companydata/cmd/internal/utils"
	"companydata/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DefaultCompanyService struct {
	CompanyRepo   CompanyRepository
	IndustryRepo  IndustryRepository
	OperationRepo OperationRepository
	PersonRepo    PersonRepository
	Validate      *validator.Validate
}

func NewCompanyService(
	companyRepo CompanyRepository,
	industryRepo IndustryRepository,
	operationRepo OperationRepository,
	personRepo PersonRepository,
	validate *validator.Validate,
) *DefaultCompanyService {
	return &DefaultCompanyService{
		CompanyRepo:   companyRepo,
		IndustryRepo:  industryRepo,
		OperationRepo: operationRepo,
		PersonRepo:    personRepo,
		Validate:      validate,
	}
}

func (s *DefaultCompanyService) GetCompanies(ctx context.Context, params *contract.CompanyListParams) (*contract.CompanyListResponse, apierror.ErrorResponse) {
	utils.Sanitize(params)
	if valerr := s.Validate.Struct(params); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	filter := repository.CompanyFilter{
		IndustryCode: params.IndustryCode,
		CompanyType:  params.CompanyType,
		Search:       params.Search,
	}
	companies, total, err := s.CompanyRepo.FindAll(ctx, filter, repository.PageNumber(params.Page, params.PageSize))
	if err != nil {
		log.Errorf("failed to list companies: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = toCompanyResponse(c)
	}
	return &contract.CompanyListResponse{
		Total:     total,
		Page:      params.Page,
		PageSize:  params.PageSize,
		Companies: resp,
	}, nil
}

func (s *DefaultCompanyService) GetCompany(ctx context.Context, duns string) (*contract.CompanyDetailResponse, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindDetailByDUNS(ctx, duns)
	if err != nil {
		log.Errorf("failed to fetch company %s: %v", duns, err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.NewCompanyNotFoundError(duns)
	}
	return toCompanyDetailResponse(company), nil
}

func (s *DefaultCompanyService) GetCompanyIndustries(ctx context.Context, duns string) (*contract.IndustryListResponse, apierror.ErrorResponse) {
	if apierr := requireCompany(ctx, s.CompanyRepo, duns); apierr != nil {
		return nil, apierr
	}

	industries, err := s.IndustryRepo.FindByDUNS(ctx, duns)
	if err != nil {
		log.Errorf("failed to fetch industries of %s: %v", duns, err)
		return nil, apierror.InternalServerError
	}
	return &contract.IndustryListResponse{
		Total:      len(industries),
		Industries: toIndustriesResponse(industries),
	}, nil
}

func (s *DefaultCompanyService) GetCompanyOperations(ctx context.Context, duns string) (*contract.OperationListResponse, apierror.ErrorResponse) {
	if apierr := requireCompany(ctx, s.CompanyRepo, duns); apierr != nil {
		return nil, apierr
	}

	operations, err := s.OperationRepo.FindByDUNS(ctx, duns)
	if err != nil {
		log.Errorf("failed to fetch operations of %s: %v", duns, err)
		return nil, apierror.InternalServerError
	}
	return &contract.OperationListResponse{
		Total:      len(operations),
		Operations: toOperationsResponse(operations),
	}, nil
}

func (s *DefaultCompanyService) GetCompanyPeople(ctx context.Context, duns string, params *contract.PageParams) (*contract.PersonListResponse, apierror.ErrorResponse) {
	utils.Sanitize(params)
	if valerr := s.Validate.Struct(params); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := requireCompany(ctx, s.CompanyRepo, duns); apierr != nil {
		return nil, apierr
	}

	people, total, err := s.PersonRepo.FindAll(ctx, repository.PersonFilter{DUNS: duns}, repository.PageNumber(params.Page, params.PageSize))
	if err != nil {
		log.Errorf("failed to fetch people of %s: %v", duns, err)
		return nil, apierror.InternalServerError
	}
	return &contract.PersonListResponse{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		People:   toPeopleResponse(people),
	}, nil
}

type companyChecker interface {
	ExistsByDUNS(ctx context.Context, duns string) (bool, error)
}

// requireCompany guards every company scoped lookup: rows stored under a
// DUNS without a company are never served.
func requireCompany(ctx context.Context, companies companyChecker, duns string) apierror.ErrorResponse {
	exists, err := companies.ExistsByDUNS(ctx, duns)
	if err != nil {
		log.Errorf("failed to check company %s: %v", duns, err)
		return apierror.InternalServerError
	}

	if !exists {
		return apierror.NewCompanyNotFoundError(duns)
	}
	return nil
}
