package service

import (
	"cmp"
	"context"
	"slices"

	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/domain/database/repository"
	"companydata/cmd/internal/domain/entity"
	"companydata/cmd/internal/utils"
	"companydata/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DefaultPersonService struct {
	PersonRepo PersonRepository
	Validate   *validator.Validate
}

func NewPersonService(personRepo PersonRepository, validate *validator.Validate) *DefaultPersonService {
	return &DefaultPersonService{PersonRepo: personRepo, Validate: validate}
}

func (s *DefaultPersonService) GetPeople(ctx context.Context, params *contract.PersonListParams) (*contract.PersonListResponse, apierror.ErrorResponse) {
	utils.Sanitize(params)
	if valerr := s.Validate.Struct(params); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	filter := repository.PersonFilter{
		Title:            params.Title,
		Name:             params.Name,
		Responsibilities: params.Responsibilities,
	}
	people, total, err := s.PersonRepo.FindAll(ctx, filter, repository.PageNumber(params.Page, params.PageSize))
	if err != nil {
		log.Errorf("failed to list people: %v", err)
		return nil, apierror.InternalServerError
	}
	return &contract.PersonListResponse{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		People:   toPeopleResponse(people),
	}, nil
}

func (s *DefaultPersonService) GetTitles(ctx context.Context) (*contract.TitleListResponse, apierror.ErrorResponse) {
	titles, err := s.PersonRepo.Titles(ctx)
	if err != nil {
		log.Errorf("failed to list titles: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.TitleCountResponse, len(titles))
	for i, t := range titles {
		resp[i] = &contract.TitleCountResponse{Title: t.Title, Count: t.Count}
	}
	return &contract.TitleListResponse{Total: len(resp), Titles: resp}, nil
}

// GetResponsibilities counts every responsibility tag across people, most
// common first.
func (s *DefaultPersonService) GetResponsibilities(ctx context.Context) (*contract.ResponsibilityListResponse, apierror.ErrorResponse) {
	joined, err := s.PersonRepo.Responsibilities(ctx)
	if err != nil {
		log.Errorf("failed to list responsibilities: %v", err)
		return nil, apierror.InternalServerError
	}

	counts := map[string]int{}
	for _, j := range joined {
		for _, tag := range entity.SplitResponsibilities(j) {
			counts[tag]++
		}
	}

	resp := make([]*contract.ResponsibilityCountResponse, 0, len(counts))
	for tag, count := range counts {
		resp = append(resp, &contract.ResponsibilityCountResponse{Responsibility: tag, Count: count})
	}
	slices.SortFunc(resp, func(a, b *contract.ResponsibilityCountResponse) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Responsibility, b.Responsibility)
	})

	return &contract.ResponsibilityListResponse{Total: len(resp), Responsibilities: resp}, nil
}
