package ledger

import "errors"

// Validation errors. Nothing has been written when one of these is returned.
var (
	ErrAmountNotPositive      = errors.New("the amount must be greater than zero")
	ErrInsufficientBalance    = errors.New("the amount exceeds the balance of the bank")
	ErrInsufficientAllocation = errors.New("the amount exceeds the allocation of the goal at this bank")
	ErrNotWithdrawal          = errors.New("only withdrawals can be returned")
	ErrReturnAmountInvalid    = errors.New("the return amount must be greater than zero and must not exceed the withdrawn amount")
	ErrBankNotFound           = errors.New("there is no bank with this ID")
	ErrAllocationNotFound     = errors.New("there is no allocation for this goal at this bank")
	ErrTransactionNotFound    = errors.New("there is no transaction with this ID")
	ErrCancelled              = errors.New("the operation was cancelled")
)

// Gateway errors.
var (
	ErrTransactionFailed = errors.New("the transaction could not be recorded")
	ErrConflict          = errors.New("the record was modified concurrently, please try again")
)

// titles holds the short, user facing title for each error.
var titles = []struct {
	err   error
	title string
}{
	{ErrAmountNotPositive, "Invalid Amount"},
	{ErrInsufficientBalance, "Insufficient Balance"},
	{ErrInsufficientAllocation, "Insufficient Allocation"},
	{ErrNotWithdrawal, "Not A Withdrawal"},
	{ErrReturnAmountInvalid, "Invalid Return Amount"},
	{ErrBankNotFound, "Bank Not Found"},
	{ErrAllocationNotFound, "Allocation Not Found"},
	{ErrTransactionNotFound, "Transaction Not Found"},
	{ErrCancelled, "Cancelled"},
	{ErrTransactionFailed, "Transaction Failed"},
	{ErrConflict, "Conflict"},
}

// Title returns the title used when notifying the user about err.
func Title(err error) string {
	for _, t := range titles {
		if errors.Is(err, t.err) {
			return t.title
		}
	}

	return "Error"
}

// IsValidation reports whether err is a rejection that happened before any write.
func IsValidation(err error) bool {
	for _, e := range []error{
		ErrAmountNotPositive, ErrInsufficientBalance, ErrInsufficientAllocation,
		ErrNotWithdrawal, ErrReturnAmountInvalid, ErrBankNotFound,
		ErrAllocationNotFound, ErrTransactionNotFound, ErrCancelled,
	} {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
