package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port string
	Env  string

	DBDriver    string
	DatabaseDSN string

	// DataSource is the import root: a local directory or s3://bucket/prefix.
	DataSource      string
	S3Region        string
	ImportOnStart   bool
	ImportBatchSize int

	LogLevel log.Lvl
}

// Load reads the configuration from the environment with defaults.
// Precedence: explicit env var > .env file (see LoadDotEnv) > default.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "7070"),
		Env:             getEnv("GO_ENV", "development"),
		DBDriver:        strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DatabaseDSN:     getEnv("DATABASE_DSN", "company_data.db"),
		DataSource:      getEnv("DATA_SOURCE", "CompanyData"),
		S3Region:        getEnv("AWS_S3_REGION", "us-east-1"),
		ImportOnStart:   parseBool("IMPORT_ON_START", false),
		ImportBatchSize: parseInt("IMPORT_BATCH_SIZE", 500),
		LogLevel:        parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadDotEnv exports the variables of a local .env file, if there is one.
func LoadDotEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("invalid boolean for %s: %s", key, v)
		return def
	}
	return b
}

func parseInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warnf("invalid positive integer for %s: %s", key, v)
		return def
	}
	return n
}

func parseLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
