// Package importer loads the per-company CSV extracts into the store.
//
// A run has two phases. Companies are read first and upserted in a single
// transaction; the DUNS numbers seen there are the only keys dependent rows
// may reference. Dependent files of unknown companies are skipped, so the
// store never holds orphans.
package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"companydata/cmd/internal/domain/entity"

	"github.com/labstack/gommon/log"
)

// Source directory of each entity.
const (
	DirCompanies        = "company_info"
	DirBalanceSheets    = string(entity.KindBalanceSheet)
	DirCashFlows        = string(entity.KindCashFlow)
	DirIncomeStatements = string(entity.KindIncomeStatement)
	DirIndustries       = "industries"
	DirOperations       = "operations"
	DirPeople           = "people"
)

type Store interface {
	Truncate(ctx context.Context) error
	UpsertCompanies(ctx context.Context, companies []*entity.Company) error
	InsertStatementLines(ctx context.Context, kind entity.StatementKind, lines []*entity.StatementLine) error
	InsertIndustries(ctx context.Context, industries []*entity.Industry) error
	InsertOperations(ctx context.Context, operations []*entity.Operation) error
	InsertPeople(ctx context.Context, people []*entity.Person) error
}

// Recorder receives import progress, e.g. to export it as metrics.
type Recorder interface {
	RowsImported(entity string, n int)
	OrphanFileSkipped(entity string)
}

type Options struct {
	// Truncate empties the store before loading.
	Truncate bool
	Recorder Recorder
}

type Importer struct {
	source Source
	store  Store
	opts   Options
}

func New(source Source, store Store, opts Options) *Importer {
	if opts.Recorder == nil {
		opts.Recorder = noopRecorder{}
	}
	return &Importer{source: source, store: store, opts: opts}
}

// dependent is an entity owned by a company. load stores the rows of one
// file and returns how many were stored and how many were dropped.
type dependent struct {
	dir  string
	load func(ctx context.Context, im *Importer, file *fileRef) (int, int, error)
}

// dependents lists the statements first, in entity.StatementKinds order.
var dependents = append(statementDependents(),
	dependent{DirIndustries, loadIndustries},
	dependent{DirOperations, loadOperations},
	dependent{DirPeople, loadPeople},
)

func statementDependents() []dependent {
	deps := make([]dependent, len(entity.StatementKinds))
	for i, kind := range entity.StatementKinds {
		deps[i] = dependent{string(kind), statementLoader(kind)}
	}
	return deps
}

// Run imports the whole source. Unreadable or malformed files and rows are
// skipped and reported in the summary; only an unreadable source root or a
// failing store aborts the run.
func (im *Importer) Run(ctx context.Context) (*Summary, error) {
	summary := newSummary()
	log.Infof("import %s: reading from %v", summary.RunID, im.source)

	if err := im.source.Check(ctx); err != nil {
		return nil, fmt.Errorf("read import source: %w", err)
	}

	if im.opts.Truncate {
		if err := im.store.Truncate(ctx); err != nil {
			return nil, fmt.Errorf("truncate store: %w", err)
		}
		log.Infof("import %s: store truncated", summary.RunID)
	}

	keys, err := im.importCompanies(ctx, summary.entity(DirCompanies))
	if err != nil {
		return nil, err
	}

	for _, dep := range dependents {
		if err := im.importDependent(ctx, dep, keys, summary.entity(dep.dir)); err != nil {
			return nil, err
		}
	}

	summary.Duration = time.Since(summary.StartedAt)
	summary.log()
	return summary, nil
}

func (im *Importer) importCompanies(ctx context.Context, stats *EntitySummary) (map[string]struct{}, error) {
	stems := im.list(ctx, DirCompanies)

	companies := make([]*entity.Company, 0, len(stems))
	for _, duns := range stems {
		file := &fileRef{dir: DirCompanies, stem: duns}
		rows, dropped, err := readFile[companyFieldRow](ctx, im.source, file)
		stats.DroppedRows += dropped
		if err != nil {
			log.Warnf("skipping %s: %v", file, err)
			stats.UnreadableFiles++
			continue
		}

		company := &entity.Company{DUNS: duns}
		for _, row := range rows {
			applyCompanyField(company, row.Field, row.Value)
		}
		companies = append(companies, company)
	}

	if err := im.store.UpsertCompanies(ctx, companies); err != nil {
		return nil, fmt.Errorf("upsert companies: %w", err)
	}

	keys := make(map[string]struct{}, len(companies))
	for _, c := range companies {
		keys[c.DUNS] = struct{}{}
	}

	stats.Files = len(companies)
	stats.Rows = len(companies)
	im.opts.Recorder.RowsImported(DirCompanies, len(companies))
	log.Infof("imported %d companies", len(companies))
	return keys, nil
}

func (im *Importer) importDependent(ctx context.Context, dep dependent, keys map[string]struct{}, stats *EntitySummary) error {
	for _, duns := range im.list(ctx, dep.dir) {
		if _, ok := keys[duns]; !ok {
			stats.OrphanFiles++
			im.opts.Recorder.OrphanFileSkipped(dep.dir)
			continue
		}

		file := &fileRef{dir: dep.dir, stem: duns}
		stored, dropped, err := dep.load(ctx, im, file)
		stats.DroppedRows += dropped
		if err != nil {
			if isReadError(err) {
				log.Warnf("skipping %s: %v", file, err)
				stats.UnreadableFiles++
				continue
			}
			return fmt.Errorf("import %s: %w", file, err)
		}

		stats.Files++
		stats.Rows += stored
	}

	im.opts.Recorder.RowsImported(dep.dir, stats.Rows)
	log.Infof("imported %d %s rows (%d orphan files skipped)", stats.Rows, dep.dir, stats.OrphanFiles)
	return nil
}

// list treats an unlistable directory like a missing one.
func (im *Importer) list(ctx context.Context, dir string) []string {
	stems, err := im.source.List(ctx, dir)
	if err != nil {
		log.Warnf("cannot list %s, skipping it: %v", dir, err)
		return nil
	}
	return stems
}

type fileRef struct {
	dir  string
	stem string
}

func (f *fileRef) String() string {
	return f.dir + "/" + f.stem + fileExt
}

// readError marks failures to open or decode a file, as opposed to store
// failures.
type readError struct {
	err error
}

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

func isReadError(err error) bool {
	var re *readError
	return errors.As(err, &re)
}

func readFile[T any](ctx context.Context, source Source, file *fileRef) ([]*T, int, error) {
	body, err := source.Open(ctx, file.dir, file.stem)
	if err != nil {
		return nil, 0, &readError{err}
	}
	defer body.Close()

	rows, dropped, err := decodeRows[T](body)
	if err != nil {
		return nil, dropped, &readError{err}
	}
	return rows, dropped, nil
}

func statementLoader(kind entity.StatementKind) func(context.Context, *Importer, *fileRef) (int, int, error) {
	return func(ctx context.Context, im *Importer, file *fileRef) (int, int, error) {
		rows, dropped, err := readFile[statementRow](ctx, im.source, file)
		if err != nil {
			return 0, dropped, err
		}

		lines := make([]*entity.StatementLine, 0, len(rows))
		for _, row := range rows {
			line, ok := row.toStatementLine(file.stem)
			if !ok {
				dropped++
				continue
			}
			lines = append(lines, line)
		}

		if len(lines) == 0 {
			return 0, dropped, nil
		}
		return len(lines), dropped, im.store.InsertStatementLines(ctx, kind, lines)
	}
}

func loadIndustries(ctx context.Context, im *Importer, file *fileRef) (int, int, error) {
	rows, dropped, err := readFile[industryRow](ctx, im.source, file)
	if err != nil {
		return 0, dropped, err
	}

	industries := make([]*entity.Industry, 0, len(rows))
	for _, row := range rows {
		industries = append(industries, row.toIndustry(file.stem))
	}

	if len(industries) == 0 {
		return 0, dropped, nil
	}
	return len(industries), dropped, im.store.InsertIndustries(ctx, industries)
}

func loadOperations(ctx context.Context, im *Importer, file *fileRef) (int, int, error) {
	rows, dropped, err := readFile[operationRow](ctx, im.source, file)
	if err != nil {
		return 0, dropped, err
	}

	operations := make([]*entity.Operation, 0, len(rows))
	for _, row := range rows {
		operations = append(operations, row.toOperation(file.stem))
	}

	if len(operations) == 0 {
		return 0, dropped, nil
	}
	return len(operations), dropped, im.store.InsertOperations(ctx, operations)
}

func loadPeople(ctx context.Context, im *Importer, file *fileRef) (int, int, error) {
	rows, dropped, err := readFile[personRow](ctx, im.source, file)
	if err != nil {
		return 0, dropped, err
	}

	people := make([]*entity.Person, 0, len(rows))
	for _, row := range rows {
		person, ok := row.toPerson(file.stem)
		if !ok {
			dropped++
			continue
		}
		people = append(people, person)
	}

	if len(people) == 0 {
		return 0, dropped, nil
	}
	return len(people), dropped, im.store.InsertPeople(ctx, people)
}

type noopRecorder struct{}

func (noopRecorder) RowsImported(string, int) {}
func (noopRecorder) OrphanFileSkipped(string) {}
