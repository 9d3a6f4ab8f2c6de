package handler

import "github.com/labstack/echo/v4"

// Routes holds every route handler of the API.
type Routes struct {
	Companies        *DefaultCompanyRoute
	BalanceSheets    *DefaultStatementRoute
	CashFlows        *DefaultStatementRoute
	IncomeStatements *DefaultStatementRoute
	Industries       *DefaultIndustryRoute
	People           *DefaultPersonRoute
	Misc             *DefaultMiscRoute
}

func (r *Routes) Register(e *echo.Echo) {
	// Misc
	e.GET("/", r.Misc.GetRoot)
	e.GET("/health", r.Misc.HealthCheck)
	e.GET("/stats", r.Misc.GetStats)

	// Companies
	e.GET("/companies", r.Companies.GetCompanies)
	e.GET("/companies/:duns", r.Companies.GetCompany)
	e.GET("/companies/:duns/industries", r.Companies.GetCompanyIndustries)
	e.GET("/companies/:duns/operations", r.Companies.GetCompanyOperations)
	e.GET("/companies/:duns/people", r.Companies.GetCompanyPeople)

	// Financial statements
	registerStatement(e, "/balance-sheets", "/companies/:duns/balance-sheet", r.BalanceSheets)
	registerStatement(e, "/cash-flows", "/companies/:duns/cash-flow", r.CashFlows)
	registerStatement(e, "/income-statements", "/companies/:duns/income-statement", r.IncomeStatements)

	// Industries
	e.GET("/industries", r.Industries.GetIndustries)
	e.GET("/industries/codes", r.Industries.GetIndustryCodes)

	// People
	e.GET("/people", r.People.GetPeople)
	e.GET("/people/titles", r.People.GetTitles)
	e.GET("/people/responsibilities", r.People.GetResponsibilities)
}

func registerStatement(e *echo.Echo, listPath, companyPath string, route *DefaultStatementRoute) {
	e.GET(listPath, route.GetStatements)
	e.GET(listPath+"/line-items", route.GetLineItems)
	e.GET(listPath+"/years", route.GetYears)
	e.GET(companyPath, route.GetCompanyStatement)
}
