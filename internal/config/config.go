// Package config loads the backend configuration.
//
// Values are read from an optional YAML file referenced by CONFIG_FILE first,
// environment variables override anything set in the file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// SQLiteFile is the database file used when no DSN is configured.
const SQLiteFile = "data/fundkeeper.db"

var (
	ErrAPIURLNotSet      = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid     = errors.New("API_URL must be a valid URL")
	ErrDriverUnsupported = errors.New("unsupported database driver, must be one of sqlite, mysql")
	ErrCurrencyInvalid   = errors.New("CURRENCY must be an ISO 4217 currency code")
	ErrMaxRetriesInvalid = errors.New("LEDGER_MAX_RETRIES must be a positive integer")
)

type Config struct {
	APIURL           string   `yaml:"apiUrl"`
	GinMode          string   `yaml:"ginMode"`
	LogFormat        string   `yaml:"logFormat"`
	CORSAllowOrigins []string `yaml:"corsAllowOrigins"`
	EnablePprof      bool     `yaml:"enablePprof"`
	Currency         string   `yaml:"currency"`
	Database         Database `yaml:"database"`
	Ledger           Ledger   `yaml:"ledger"`
}

type Database struct {
	Driver string `yaml:"driver"` // sqlite or mysql
	DSN    string `yaml:"dsn"`    // Used as is when set, otherwise built from the driver settings
	MySQL  MySQL  `yaml:"mysql"`
}

// MySQL holds the connection settings used when Driver is mysql and no DSN is set.
type MySQL struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

// DSN builds the data source name.
// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=UTC
func (m MySQL) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		m.User,
		m.Password,
		m.Host,
		m.Port,
		m.DBName,
	)
}

type Ledger struct {
	Atomic     bool `yaml:"atomic"`     // Run every ledger operation in one database transaction
	MaxRetries int  `yaml:"maxRetries"` // Attempts for a version conflicted balance update
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Currency: "EUR",
		Database: Database{
			Driver: DriverSQLite,
			MySQL: MySQL{
				Host: "localhost",
				Port: 3306,
			},
		},
		Ledger: Ledger{
			Atomic:     true,
			MaxRetries: 5,
		},
	}
}

// Load reads the configuration file named by CONFIG_FILE, if any, applies
// environment overrides and validates the result.
func Load() (Config, error) {
	cfg := Default()

	if path, ok := os.LookupEnv("CONFIG_FILE"); ok {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("could not read configuration file: %w", err)
		}

		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not parse configuration file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	stringVars := map[string]*string{
		"API_URL":        &c.APIURL,
		"GIN_MODE":       &c.GinMode,
		"LOG_FORMAT":     &c.LogFormat,
		"CURRENCY":       &c.Currency,
		"DB_DRIVER":      &c.Database.Driver,
		"DB_DSN":         &c.Database.DSN,
		"MYSQL_HOST":     &c.Database.MySQL.Host,
		"MYSQL_USER":     &c.Database.MySQL.User,
		"MYSQL_PASSWORD": &c.Database.MySQL.Password,
		"MYSQL_DATABASE": &c.Database.MySQL.DBName,
	}

	for name, target := range stringVars {
		if value, ok := os.LookupEnv(name); ok {
			*target = value
		}
	}

	if value, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		c.CORSAllowOrigins = strings.Fields(value)
	}

	if value, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		c.EnablePprof = value == "true"
	}

	if value, ok := os.LookupEnv("LEDGER_ATOMIC"); ok {
		c.Ledger.Atomic = value != "false"
	}

	if value, ok := os.LookupEnv("MYSQL_PORT"); ok {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("MYSQL_PORT must be a number: %w", err)
		}
		c.Database.MySQL.Port = port
	}

	if value, ok := os.LookupEnv("LEDGER_MAX_RETRIES"); ok {
		retries, err := strconv.Atoi(value)
		if err != nil {
			return ErrMaxRetriesInvalid
		}
		c.Ledger.MaxRetries = retries
	}

	return nil
}

// Validate checks the configuration for values the backend cannot start with.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return ErrAPIURLNotSet
	}

	if _, err := c.URL(); err != nil {
		return err
	}

	if c.Database.Driver != DriverSQLite && c.Database.Driver != DriverMySQL {
		return fmt.Errorf("%w: %s", ErrDriverUnsupported, c.Database.Driver)
	}

	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("%w: %s", ErrCurrencyInvalid, c.Currency)
	}

	if c.Ledger.MaxRetries < 1 {
		return ErrMaxRetriesInvalid
	}

	return nil
}

// URL returns the parsed API_URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrAPIURLInvalid
	}

	return u, nil
}

// DSN returns the data source name for the configured driver.
func (c Config) DSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}

	if c.Database.Driver == DriverMySQL {
		return c.Database.MySQL.DSN()
	}

	return SQLiteFile
}
