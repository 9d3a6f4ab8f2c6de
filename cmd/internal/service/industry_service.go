package service

import (
	"context"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/domain/database/repository"
	"companydata/cmd/internal/utils"
	"companydata/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type DefaultIndustryService struct {
	IndustryRepo IndustryRepository
}

func NewIndustryService(industryRepo IndustryRepository) *DefaultIndustryService {
	return &DefaultIndustryService{IndustryRepo: industryRepo}
}

func (s *DefaultIndustryService) GetIndustries(ctx context.Context, params *contract.IndustryListParams) (*contract.IndustryListResponse, apierror.ErrorResponse) {
	utils.Sanitize(params)

	filter := repository.IndustryFilter{
		Code:        params.Code,
		Description: params.Description,
		PrimaryOnly: params.PrimaryOnly,
	}
	industries, err := s.IndustryRepo.FindAll(ctx, filter)
	if err != nil {
		log.Errorf("failed to list industries: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.IndustryListResponse{
		Total:      len(industries),
		Industries: toIndustriesResponse(industries),
	}, nil
}

func (s *DefaultIndustryService) GetIndustryCodes(ctx context.Context) (*contract.IndustryCodeListResponse, apierror.ErrorResponse) {
	codes, err := s.IndustryRepo.Codes(ctx)
	if err != nil {
		log.Errorf("failed to list industry codes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.IndustryCodeResponse, len(codes))
	for i, c := range codes {
		resp[i] = &contract.IndustryCodeResponse{
			Code:         c.Code,
			Description:  c.Description,
			CompanyCount: c.CompanyCount,
		}
	}
	return &contract.IndustryCodeListResponse{Total: len(resp), Codes: resp}, nil
}
