package config

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GO_ENV", "DB_DRIVER", "DATABASE_DSN", "DATA_SOURCE", "AWS_S3_REGION", "IMPORT_ON_START", "IMPORT_BATCH_SIZE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "company_data.db", cfg.DatabaseDSN)
	assert.Equal(t, "CompanyData", cfg.DataSource)
	assert.Equal(t, "us-east-1", cfg.S3Region)
	assert.False(t, cfg.ImportOnStart)
	assert.Equal(t, 500, cfg.ImportBatchSize)
	assert.Equal(t, log.INFO, cfg.LogLevel)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GO_ENV", "production")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "postgres://localhost/companies")
	t.Setenv("DATA_SOURCE", "s3://bucket/extracts")
	t.Setenv("IMPORT_ON_START", "true")
	t.Setenv("IMPORT_BATCH_SIZE", "50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/companies", cfg.DatabaseDSN)
	assert.Equal(t, "s3://bucket/extracts", cfg.DataSource)
	assert.True(t, cfg.ImportOnStart)
	assert.Equal(t, 50, cfg.ImportBatchSize)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("IMPORT_ON_START", "maybe")
	t.Setenv("IMPORT_BATCH_SIZE", "-3")
	t.Setenv("LOG_LEVEL", "verbose")

	cfg := Load()
	assert.False(t, cfg.ImportOnStart)
	assert.Equal(t, 500, cfg.ImportBatchSize)
	assert.Equal(t, log.INFO, cfg.LogLevel)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, LoadDotEnv())
}

type fakeParameterStore struct {
	pages [][]types.Parameter
	err   error
	calls int
}

func (f *fakeParameterStore) GetParametersByPath(_ context.Context, in *ssm.GetParametersByPathInput, _ ...func(*ssm.Options)) (*ssm.GetParametersByPathOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	page := f.pages[f.calls]
	f.calls++

	out := &ssm.GetParametersByPathOutput{Parameters: page}
	if f.calls < len(f.pages) {
		out.NextToken = aws.String("next")
	}
	return out, nil
}

func TestExportParameters(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("PORT", "")

	store := &fakeParameterStore{pages: [][]types.Parameter{
		{{Name: aws.String(ParamsPrefix + "DATABASE_DSN"), Value: aws.String("postgres://prod")}},
		{{Name: aws.String(ParamsPrefix + "PORT"), Value: aws.String("8081")}},
	}}

	require.NoError(t, exportParameters(context.Background(), store, ParamsPrefix))
	assert.Equal(t, 2, store.calls)
	assert.Equal(t, "postgres://prod", os.Getenv("DATABASE_DSN"))
	assert.Equal(t, "8081", os.Getenv("PORT"))
}

func TestExportParametersError(t *testing.T) {
	store := &fakeParameterStore{err: errors.New("access denied")}
	err := exportParameters(context.Background(), store, ParamsPrefix)
	assert.ErrorContains(t, err, "access denied")
}
