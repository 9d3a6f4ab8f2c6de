package main

import (
	"os"
	"path/filepath"
	"testing"

	"companydata/cmd/internal/config"
	"companydata/cmd/internal/domain/database"
	"companydata/cmd/internal/domain/database/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCommand(t *testing.T) {
	root := t.TempDir()
	companies := filepath.Join(root, "company_info")
	require.NoError(t, os.MkdirAll(companies, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(companies, "123456789.csv"), []byte("field,value\nACN,000111222\n"), 0o644))

	dsn := filepath.Join(t.TempDir(), "import.db")
	cfg := &config.Config{DBDriver: config.DriverSQLite, ImportBatchSize: 500}

	cmd := newImportCmd(cfg)
	cmd.SetArgs([]string{"--source", root, "--dsn", dsn, "--truncate"})
	require.NoError(t, cmd.Execute())

	db, err := database.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	count, err := repository.NewStatsRepository(db).CountCompanies(t.Context())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestImportCommandRejectsMissingSource(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, DatabaseDSN: filepath.Join(t.TempDir(), "import.db")}

	cmd := newImportCmd(cfg)
	cmd.SetArgs([]string{"--source", filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, cmd.Execute())
}
