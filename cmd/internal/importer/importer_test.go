package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"companydata/cmd/internal/domain/database/dbtest"
	"companydata/cmd/internal/domain/database/repository"
	"companydata/cmd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func run(t *testing.T, db *gorm.DB, root string, opts Options) *Summary {
	t.Helper()

	summary, err := New(NewDirSource(root), repository.NewImportRepository(db, 2), opts).Run(context.Background())
	require.NoError(t, err)
	return summary
}

var sampleTree = map[string]string{
	"company_info/123456789.csv": "field,value\n" +
		"Physical Address,\"1 Harbour St, Sydney NSW\"\n" +
		"ACN,000111222\n" +
		"Company Type, Public Company \n" +
		"Favourite Colour,Blue\n",

	"company_info/987654321.csv": "field,value\nPrimary SIC,Gold Ores\n",

	"balance_sheet/123456789.csv": "line_item,year,value\n" +
		"Cash,2024,\"$1,000\"\n" +
		"Debt,2024,\"($250)\"\n" +
		"Cash,2023,-\n" +
		"Cash,FY23,$5\n",

	"balance_sheet/555555555.csv": "line_item,year,value\nCash,2024,$9\n",

	"income_statement/987654321.csv": "line_item,year,value\nMargin,2024,12.5%\n",

	"industries/123456789.csv": "industry_code,industry_description,is_primary\n" +
		"1041,Gold Ores,1\n" +
		"1311,Crude Petroleum,0\n" +
		"1000,Metal Mining,true\n" +
		"1099,Other,yes\n",

	"operations/123456789.csv": "field_name,field_value\nEmployees,\"1,200\"\n",

	"operations/987654321.csv": "field,value\nAuditor,KPMG\n",

	"people/123456789.csv": "\xEF\xBB\xBFperson_name,title,responsibilities\n" +
		"Jane Doe,Director,\"Finance, Audit\"\n" +
		"John Roe,Chief Executive Officer,\n" +
		",Secretary,\n",

	"people/555555555.csv": "person_name,title,responsibilities\nGhost,Director,\n",
}

func TestRunEndToEnd(t *testing.T) {
	db := dbtest.Open(t)
	summary := run(t, db, writeTree(t, sampleTree), Options{})
	ctx := context.Background()

	assert.NotEqual(t, uuid.Nil, summary.RunID)

	company, err := repository.NewCompanyRepository(db).FindDetailByDUNS(ctx, "123456789")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "000111222", *company.ACN)
	assert.Equal(t, "1 Harbour St, Sydney NSW", *company.PhysicalAddress)
	assert.Equal(t, "Public Company", *company.CompanyType)
	assert.Nil(t, company.TelephoneNumber)

	year := 2024
	balance := repository.NewStatementRepository(db, entity.KindBalanceSheet)
	records, total, err := balance.FindAll(ctx, repository.StatementFilter{Year: &year, LineItem: "cash"}, repository.Page{Limit: 100})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, records, 1)
	assert.Equal(t, "$1,000", *records[0].Value)
	require.NotNil(t, records[0].NumericValue)
	assert.Equal(t, 1000.0, *records[0].NumericValue)

	lines, err := balance.FindByDUNS(ctx, "123456789", repository.StatementFilter{})
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, -250.0, *lines[1].NumericValue)
	assert.Equal(t, "-", *lines[2].Value)
	assert.Nil(t, lines[2].NumericValue)

	income, err := repository.NewStatementRepository(db, entity.KindIncomeStatement).FindByDUNS(ctx, "987654321", repository.StatementFilter{})
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, 12.5, *income[0].NumericValue)

	var flags []bool
	for _, industry := range company.Industries {
		flags = append(flags, industry.IsPrimary)
	}
	assert.Equal(t, []bool{true, false, true, false}, flags)

	require.Len(t, company.People, 2)
	assert.Equal(t, "Jane Doe", company.People[0].PersonName)
	require.NotNil(t, company.People[0].Responsibilities)
	assert.Equal(t, "Finance, Audit", *company.People[0].Responsibilities)
	assert.Nil(t, company.People[1].Responsibilities)

	operations, err := repository.NewOperationRepository(db).FindByDUNS(ctx, "987654321")
	require.NoError(t, err)
	require.Len(t, operations, 1)
	assert.Equal(t, "Auditor", *operations[0].FieldName)
	assert.Equal(t, "KPMG", *operations[0].FieldValue)
}

func TestRunSummary(t *testing.T) {
	db := dbtest.Open(t)
	summary := run(t, db, writeTree(t, sampleTree), Options{})

	var entities []string
	for _, e := range summary.Entities {
		entities = append(entities, e.Entity)
	}
	assert.Equal(t, []string{
		DirCompanies, DirBalanceSheets, DirCashFlows, DirIncomeStatements, DirIndustries, DirOperations, DirPeople,
	}, entities)

	assert.Equal(t, 2, summary.Entity(DirCompanies).Rows)

	balance := summary.Entity(DirBalanceSheets)
	assert.Equal(t, 3, balance.Rows)
	assert.Equal(t, 1, balance.OrphanFiles)
	assert.Equal(t, 1, balance.DroppedRows)

	assert.Zero(t, summary.Entity(DirCashFlows).Rows)

	people := summary.Entity(DirPeople)
	assert.Equal(t, 2, people.Rows)
	assert.Equal(t, 1, people.OrphanFiles)
	assert.Equal(t, 1, people.DroppedRows)

	assert.Equal(t, 2+3+1+4+2+2, summary.Rows())
	assert.Nil(t, summary.Entity("ledgers"))
}

func TestRunSkipsOrphans(t *testing.T) {
	db := dbtest.Open(t)
	run(t, db, writeTree(t, sampleTree), Options{})
	ctx := context.Background()

	people, total, err := repository.NewPersonRepository(db).FindAll(ctx, repository.PersonFilter{Name: "ghost"}, repository.PageNumber(1, 50))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, people)

	lines, err := repository.NewStatementRepository(db, entity.KindBalanceSheet).FindByDUNS(ctx, "555555555", repository.StatementFilter{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRunTwiceKeepsCompanies(t *testing.T) {
	db := dbtest.Open(t)
	root := writeTree(t, sampleTree)
	ctx := context.Background()
	stats := repository.NewStatsRepository(db)

	run(t, db, root, Options{})
	first, err := stats.Counts(ctx)
	require.NoError(t, err)

	run(t, db, root, Options{})
	second, err := stats.Counts(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Companies, second.Companies)
	assert.Equal(t, 2*first.People, second.People)

	company, err := repository.NewCompanyRepository(db).FindByDUNS(ctx, "123456789")
	require.NoError(t, err)
	assert.Equal(t, "000111222", *company.ACN)

	run(t, db, root, Options{Truncate: true})
	third, err := stats.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestRunMissingDirectories(t *testing.T) {
	db := dbtest.Open(t)
	summary := run(t, db, writeTree(t, map[string]string{
		"company_info/123456789.csv": "field,value\nACN,1\n",
	}), Options{})

	assert.Equal(t, 1, summary.Rows())
	for _, e := range summary.Entities[1:] {
		assert.Zero(t, e.Files, e.Entity)
	}
}

func TestRunUnreadableRoot(t *testing.T) {
	db := dbtest.Open(t)
	root := filepath.Join(t.TempDir(), "missing")

	_, err := New(NewDirSource(root), repository.NewImportRepository(db, 0), Options{}).Run(context.Background())
	assert.ErrorContains(t, err, "read import source")

	file := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = New(NewDirSource(file), repository.NewImportRepository(db, 0), Options{}).Run(context.Background())
	assert.ErrorContains(t, err, "is not a directory")
}

type failingStore struct {
	*repository.DefaultImportRepository
}

func (failingStore) InsertPeople(context.Context, []*entity.Person) error {
	return errors.New("disk full")
}

func TestRunStoreErrorIsFatal(t *testing.T) {
	db := dbtest.Open(t)
	store := failingStore{repository.NewImportRepository(db, 0)}

	_, err := New(NewDirSource(writeTree(t, sampleTree)), store, Options{}).Run(context.Background())
	assert.EqualError(t, err, "import people/123456789.csv: disk full")
}

type countingRecorder struct {
	rows    map[string]int
	orphans map[string]int
}

func (r *countingRecorder) RowsImported(entity string, n int) { r.rows[entity] += n }
func (r *countingRecorder) OrphanFileSkipped(entity string) { r.orphans[entity]++ }

func TestRunReportsToRecorder(t *testing.T) {
	db := dbtest.Open(t)
	recorder := &countingRecorder{rows: map[string]int{}, orphans: map[string]int{}}
	run(t, db, writeTree(t, sampleTree), Options{Recorder: recorder})

	assert.Equal(t, 2, recorder.rows[DirCompanies])
	assert.Equal(t, 3, recorder.rows[DirBalanceSheets])
	assert.Equal(t, 4, recorder.rows[DirIndustries])
	assert.Equal(t, map[string]int{DirBalanceSheets: 1, DirPeople: 1}, recorder.orphans)
}

func TestDependentOrder(t *testing.T) {
	var dirs []string
	for _, dep := range dependents {
		dirs = append(dirs, dep.dir)
	}
	assert.Equal(t, []string{
		DirBalanceSheets, DirCashFlows, DirIncomeStatements,
		DirIndustries, DirOperations, DirPeople,
	}, dirs)
}
