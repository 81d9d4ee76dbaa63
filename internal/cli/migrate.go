package cli

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "migrate the database schema and exit" }
func (*migrateCmd) Usage() string {
	return `migrate

  Creates or updates the tables for banks, goals, allocations and
  transactions in the configured database.
`
}

func (*migrateCmd) SetFlags(_ *flag.FlagSet) {}

func (*migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	// Connecting migrates the schema
	_, err := setup(os.Stdout)
	if err != nil {
		log.Error().Err(err).Msg("Migration")
		return subcommands.ExitFailure
	}
	defer closeDB()

	log.Info().Msg("Migration complete")
	return subcommands.ExitSuccess
}
