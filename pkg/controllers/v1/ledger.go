package v1

import (
	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/fundkeeper/backend/pkg/shell"
	"github.com/fundkeeper/backend/pkg/store"
)

// Settings for the ledger operations.
type Settings struct {
	Atomic     bool   // Run every operation in a database transaction
	MaxRetries int    // Attempts for each compare-and-swap update
	Currency   string // ISO 4217 code used in user messages
}

var settings = Settings{
	Atomic:     true,
	MaxRetries: ledger.DefaultMaxRetries,
	Currency:   "EUR",
}

// Configure sets the ledger settings for all following requests.
func Configure(s Settings) {
	settings = s
}

func newLedger() *ledger.Ledger {
	var s ledger.Store = store.New(models.DB)
	if !settings.Atomic {
		s = store.Sequential(s)
	}

	return ledger.New(s, ledger.WithMaxRetries(settings.MaxRetries))
}

// interactive returns the ledger operations for one request. Confirmations
// are answered with confirmed, notifications are collected by the recorder.
func interactive(confirmed bool) (ledger.Interactive, *shell.Recorder) {
	recorder := shell.NewRecorder(confirmed)

	return ledger.Interactive{
		Ledger:   newLedger(),
		Shell:    shell.Logged{Shell: recorder},
		Currency: settings.Currency,
	}, recorder
}
