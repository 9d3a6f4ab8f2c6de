package jobs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"companydata/cmd/internal/domain/database/dbtest"
	"companydata/cmd/internal/domain/database/repository"
	"companydata/cmd/internal/importer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	count int64
	err   error
}

func (f *fakeCounter) CountCompanies(context.Context) (int64, error) {
	return f.count, f.err
}

type fakeRunner struct {
	calls int
	err   error
}

func (f *fakeRunner) Run(context.Context) (*importer.Summary, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &importer.Summary{}, nil
}

func TestStartupImportSkipsFilledStore(t *testing.T) {
	runner := &fakeRunner{}

	ran, err := NewStartupImport(&fakeCounter{count: 3}, runner).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Zero(t, runner.calls)
}

func TestStartupImportErrors(t *testing.T) {
	_, err := NewStartupImport(&fakeCounter{err: errors.New("locked")}, &fakeRunner{}).Run(context.Background())
	assert.EqualError(t, err, "count companies: locked")

	_, err = NewStartupImport(&fakeCounter{}, &fakeRunner{err: errors.New("no source")}).Run(context.Background())
	assert.EqualError(t, err, "no source")
}

func TestStartupImportFillsEmptyStore(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, importer.DirCompanies), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, importer.DirCompanies, "123456789.csv"),
		[]byte("field,value\nACN,000111222\n"),
		0o644,
	))

	db := dbtest.Open(t)
	stats := repository.NewStatsRepository(db)
	job := NewStartupImport(stats, importer.New(
		importer.NewDirSource(root),
		repository.NewImportRepository(db, 0),
		importer.Options{},
	))
	ctx := context.Background()

	ran, err := job.Run(ctx)
	require.NoError(t, err)
	assert.True(t, ran)

	count, err := stats.CountCompanies(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	ran, err = job.Run(ctx)
	require.NoError(t, err)
	assert.False(t, ran)
}
