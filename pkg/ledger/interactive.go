package ledger

import (
	"context"
	"fmt"

	"github.com/fundkeeper/backend/pkg/models"
	"github.com/fundkeeper/backend/pkg/shell"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Interactive runs ledger operations as user actions: the user confirms
// the operation first and is notified about its result.
type Interactive struct {
	Ledger   *Ledger
	Shell    shell.Shell
	Currency string // ISO 4217 code used to display amounts
}

func (i Interactive) format(amount decimal.Decimal) string {
	return shell.Format(amount, i.Currency)
}

func (i Interactive) fail(err error) error {
	i.Shell.NotifyError(Title(err), err.Error())
	return err
}

// Withdraw asks for confirmation and withdraws in.Amount.
func (i Interactive) Withdraw(ctx context.Context, in WithdrawInput) (models.Transaction, error) {
	if !i.Shell.Confirm("Confirm Withdrawal", fmt.Sprintf("Withdraw %s from this allocation?", i.format(in.Amount))) {
		observe(opWithdraw, ErrCancelled)
		return models.Transaction{}, ErrCancelled
	}

	transaction, err := i.Ledger.Withdraw(ctx, in)
	if err != nil {
		return models.Transaction{}, i.fail(err)
	}

	i.Shell.NotifySuccess("Withdrawal Recorded", fmt.Sprintf("Withdrew %s.", i.format(in.Amount)))
	return transaction, nil
}

// Return asks for confirmation and returns amount of a withdrawal.
func (i Interactive) Return(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (ReturnResult, error) {
	if !i.Shell.Confirm("Confirm Return", fmt.Sprintf("Return %s to its allocation?", i.format(amount))) {
		observe(opReturn, ErrCancelled)
		return ReturnResult{}, ErrCancelled
	}

	result, err := i.Ledger.Return(ctx, id, amount)
	if err != nil {
		return ReturnResult{}, i.fail(err)
	}

	message := fmt.Sprintf("Returned %s.", i.format(result.Returned))
	if result.Remainder != nil {
		message = fmt.Sprintf("Returned %s, %s remain withdrawn.", i.format(result.Returned), i.format(result.Remainder.Amount.Abs()))
	}

	i.Shell.NotifySuccess("Money Returned", message)
	return result, nil
}

// ReturnBatch asks for confirmation and fully returns the withdrawals with
// the given IDs.
//
// total is only displayed to the user. The ledger reloads the transactions
// by their IDs.
func (i Interactive) ReturnBatch(ctx context.Context, ids []uuid.UUID, total decimal.Decimal) (BatchResult, error) {
	if !i.Shell.Confirm("Confirm Return", fmt.Sprintf("Return %d transactions totalling %s?", len(ids), i.format(total))) {
		observe(opReturnBatch, ErrCancelled)
		return BatchResult{Returned: decimal.Zero}, ErrCancelled
	}

	result, err := i.Ledger.ReturnBatch(ctx, ids)
	if err != nil {
		// Groups that succeeded are reported along with the failure
		if len(result.Groups) > 0 {
			i.Shell.NotifySuccess("Money Returned", fmt.Sprintf("Returned %s.", i.format(result.Returned)))
		}
		return result, i.fail(err)
	}

	i.Shell.NotifySuccess("Money Returned", fmt.Sprintf("Returned %s.", i.format(result.Returned)))
	return result, nil
}
