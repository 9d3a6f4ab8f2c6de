package service

import (
	"companydata/cmd/internal/contract"
	"companydata/cmd/internal/domain/entity"
)

func toCompanyResponse(c *entity.Company) *contract.CompanyResponse {
	return &contract.CompanyResponse{
		DUNS:            c.DUNS,
		PhysicalAddress: c.PhysicalAddress,
		TelephoneNumber: c.TelephoneNumber,
		ACN:             c.ACN,
		CompanyType:     c.CompanyType,
		PrimarySIC:      c.PrimarySIC,
	}
}

func toCompanyDetailResponse(c *entity.Company) *contract.CompanyDetailResponse {
	return &contract.CompanyDetailResponse{
		CompanyResponse: *toCompanyResponse(c),
		Industries:      toIndustriesResponse(c.Industries),
		Operations:      toOperationsResponse(c.Operations),
		People:          toPeopleResponse(c.People),
	}
}

func toIndustriesResponse(is []*entity.Industry) []*contract.IndustryResponse {
	industries := make([]*contract.IndustryResponse, len(is))
	for i, industry := range is {
		industries[i] = &contract.IndustryResponse{
			ID:                  industry.ID,
			DUNS:                industry.DUNS,
			IndustryCode:        industry.IndustryCode,
			IndustryDescription: industry.IndustryDescription,
			IsPrimary:           industry.IsPrimary,
		}
	}
	return industries
}

func toOperationsResponse(ops []*entity.Operation) []*contract.OperationResponse {
	operations := make([]*contract.OperationResponse, len(ops))
	for i, op := range ops {
		operations[i] = &contract.OperationResponse{
			ID:         op.ID,
			DUNS:       op.DUNS,
			FieldName:  op.FieldName,
			FieldValue: op.FieldValue,
		}
	}
	return operations
}

func toPeopleResponse(ps []*entity.Person) []*contract.PersonResponse {
	people := make([]*contract.PersonResponse, len(ps))
	for i, p := range ps {
		people[i] = &contract.PersonResponse{
			ID:               p.ID,
			DUNS:             p.DUNS,
			PersonName:       p.PersonName,
			Title:            p.Title,
			Responsibilities: p.Responsibilities,
		}
	}
	return people
}

func toRecordsResponse(lines []*entity.StatementLine) []*contract.StatementRecordResponse {
	records := make([]*contract.StatementRecordResponse, len(lines))
	for i, l := range lines {
		records[i] = &contract.StatementRecordResponse{
			ID:           l.ID,
			DUNS:         l.DUNS,
			LineItem:     l.LineItem,
			Year:         l.Year,
			Value:        l.Value,
			NumericValue: l.NumericValue,
		}
	}
	return records
}
