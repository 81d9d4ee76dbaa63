// Package cli contains the sub commands of the backend binary.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fundkeeper/backend/internal/config"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Commands lists all sub commands.
var Commands = []subcommands.Command{
	&serveCmd{},
	&migrateCmd{},
	&auditCmd{},
}

// setup loads the configuration, configures gin and the logger and
// connects to the database.
func setup(out io.Writer) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	setupLogging(cfg, out)

	if cfg.Database.Driver == config.DriverSQLite {
		// Create data directory
		err := os.MkdirAll(filepath.Dir(cfg.DSN()), os.ModePerm)
		if err != nil {
			return config.Config{}, fmt.Errorf("could not create data directory: %w", err)
		}
	}

	err = models.Open(cfg.Database.Driver, cfg.DSN())
	if err != nil {
		return config.Config{}, err
	}

	log.Debug().Str("driver", cfg.Database.Driver).Msg("Database")
	return cfg, nil
}

// setupLogging sets the gin mode and the global logger.
func setupLogging(cfg config.Config, out io.Writer) {
	// gin uses debug as the default mode, we use release for
	// security reasons
	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(out).With().Timestamp().Logger()
}

func closeDB() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Database")
	}
}
