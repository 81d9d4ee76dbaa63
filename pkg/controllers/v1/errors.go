package v1

import (
	"errors"
	"net/http"

	"github.com/fundkeeper/backend/pkg/history"
	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// ledgerStatus returns the status for an error returned by a ledger operation.
func ledgerStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrBankNotFound),
		errors.Is(err, ledger.ErrAllocationNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound):
		return http.StatusNotFound
	case ledger.IsValidation(err), errors.Is(err, history.ErrInvalidPage):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrConflict):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

var (
	errBalanceBelowAllocations = errors.New("the balance must not be lower than the sum of the bank's allocations")
	errNoTransactionIDs        = errors.New("the ids of the transactions to return must be set")
)
