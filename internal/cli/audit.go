package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/fundkeeper/backend/pkg/shell"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type auditCmd struct {
	json bool
	out  io.Writer
}

func (*auditCmd) Name() string     { return "audit" }
func (*auditCmd) Synopsis() string { return "list banks whose allocations exceed their balance" }
func (*auditCmd) Usage() string {
	return `audit [-json]

  Compares the balance of every bank with the sum of its allocations.
  Exits with status 1 when at least one bank is over-allocated.
`
}

func (a *auditCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&a.json, "json", false, "Print the result as JSON.")
}

func (a *auditCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	out := a.out
	if out == nil {
		out = os.Stdout
	}

	cfg, err := setup(os.Stderr)
	if err != nil {
		log.Error().Err(err).Msg("Audit")
		return subcommands.ExitFailure
	}
	defer closeDB()

	discrepancies, err := ledger.Audit(ctx, models.DB)
	if err != nil {
		log.Error().Err(err).Msg("Audit")
		return subcommands.ExitFailure
	}

	if a.json {
		if err := json.NewEncoder(out).Encode(discrepancies); err != nil {
			log.Error().Err(err).Msg("Audit")
			return subcommands.ExitFailure
		}
	} else {
		for _, d := range discrepancies {
			fmt.Fprintf(out, "%s\t%s\tbalance %s\tallocated %s\n", d.BankID, d.Name, shell.Format(d.Balance, cfg.Currency), shell.Format(d.Allocated, cfg.Currency))
		}
	}

	if len(discrepancies) > 0 {
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
