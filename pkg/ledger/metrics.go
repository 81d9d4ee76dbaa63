package ledger

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opWithdraw    = "withdraw"
	opReturn      = "return"
	opReturnBatch = "return_batch"
)

var operations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "How many ledger operations were executed, partitioned by operation and result.",
	},
	[]string{"operation", "result"},
)

var retries = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_conflict_retries_total",
		Help: "How many compare-and-swap updates were retried after a concurrent modification, partitioned by record.",
	},
	[]string{"record"},
)

// Collectors returns the Prometheus collectors of the ledger.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{operations, retries}
}

// observe counts an operation by its outcome.
func observe(operation string, err error) {
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, ErrCancelled):
		result = "cancelled"
	case IsValidation(err):
		result = "rejected"
	case errors.Is(err, ErrConflict):
		result = "conflict"
	default:
		result = "failed"
	}

	operations.WithLabelValues(operation, result).Inc()
}
