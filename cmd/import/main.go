package main

import (
	"context"
	"os"

	"companydata/cmd/internal/config"
	"companydata/cmd/internal/domain/database"
	"companydata/cmd/internal/domain/database/repository"
	"companydata/cmd/internal/importer"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	if err := newImportCmd(config.Load()).Execute(); err != nil {
		os.Exit(1)
	}
}

// newImportCmd builds the command on top of cfg, so flags override the
// environment.
func newImportCmd(cfg *config.Config) *cobra.Command {
	var truncate bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load company CSV files into the store",
		Long: `import reads the company data tree (company_info, balance_sheet,
cash_flow_statement, income_statement, industries, operations and people
directories of <DUNS>.csv files) from a local directory or an s3://bucket/prefix
location and loads it into the configured store.

Companies are upserted first. Dependent files whose DUNS has no company are
skipped. Run with --truncate to rebuild the store from scratch.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.SetLevel(cfg.LogLevel)
			return runImport(cmd.Context(), cfg, truncate)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.DataSource, "source", cfg.DataSource, "import root, a directory or s3://bucket/prefix")
	flags.StringVar(&cfg.S3Region, "region", cfg.S3Region, "AWS region of the S3 source")
	flags.StringVar(&cfg.DBDriver, "driver", cfg.DBDriver, "store driver, sqlite or postgres")
	flags.StringVar(&cfg.DatabaseDSN, "dsn", cfg.DatabaseDSN, "store DSN or SQLite file")
	flags.IntVar(&cfg.ImportBatchSize, "batch-size", cfg.ImportBatchSize, "rows per INSERT statement")
	flags.BoolVar(&truncate, "truncate", false, "empty the store before loading")

	return cmd
}

func runImport(ctx context.Context, cfg *config.Config, truncate bool) error {
	source, err := importer.NewSource(ctx, cfg.DataSource, cfg.S3Region)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	imp := importer.New(source, repository.NewImportRepository(db, cfg.ImportBatchSize), importer.Options{Truncate: truncate})
	if _, err = imp.Run(ctx); err != nil {
		log.Errorf("import failed: %v", err)
		return err
	}
	return nil
}
