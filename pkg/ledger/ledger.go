// Package ledger keeps bank balances, goal allocations and the transaction
// log consistent while money is withdrawn from and returned to allocations.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundkeeper/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DefaultMaxRetries is the number of attempts for a compare-and-swap update
// before ErrConflict is returned to the caller.
const DefaultMaxRetries = 5

// Ledger executes withdrawals and returns against a Store.
type Ledger struct {
	store      Store
	maxRetries int
}

type Option func(*Ledger)

// WithMaxRetries sets the number of compare-and-swap attempts. Values below
// one are ignored.
func WithMaxRetries(n int) Option {
	return func(l *Ledger) {
		if n >= 1 {
			l.maxRetries = n
		}
	}
}

func New(store Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:      store,
		maxRetries: DefaultMaxRetries,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// run executes fn as one unit if the store supports it. Otherwise, fn runs
// directly against the store and writes made before a failing step stay.
func (l *Ledger) run(ctx context.Context, fn func(Store) error) error {
	if t, ok := l.store.(Transactor); ok {
		return t.Atomic(ctx, fn)
	}

	return fn(l.store)
}

// Atomic reports whether operations are executed as one unit.
func (l *Ledger) Atomic() bool {
	_, ok := l.store.(Transactor)
	return ok
}

type WithdrawInput struct {
	GoalID      uuid.UUID
	BankID      uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// Withdraw takes in.Amount out of the allocation of the goal at the bank.
//
// It records a transaction with the negated amount, then lowers the bank
// balance and the allocation amount by the same value.
func (l *Ledger) Withdraw(ctx context.Context, in WithdrawInput) (transaction models.Transaction, err error) {
	defer func() { observe(opWithdraw, err) }()

	if !in.Amount.IsPositive() {
		return models.Transaction{}, ErrAmountNotPositive
	}

	err = l.run(ctx, func(s Store) error {
		bank, allocation, err := load(ctx, s, in.BankID, in.GoalID)
		if err != nil {
			return err
		}

		if in.Amount.GreaterThan(bank.Balance) {
			return ErrInsufficientBalance
		}

		if in.Amount.GreaterThan(allocation.Amount) {
			return ErrInsufficientAllocation
		}

		transaction = models.Transaction{
			OwnerID:     bank.OwnerID,
			GoalID:      in.GoalID,
			BankID:      in.BankID,
			Amount:      in.Amount.Neg(),
			Description: in.Description,
		}

		if err := s.InsertTransaction(ctx, &transaction); err != nil {
			return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
		}

		return l.adjust(ctx, s, bank, allocation, in.Amount.Neg())
	})
	if err != nil {
		log.Error().Err(err).Str("operation", opWithdraw).Str("bank", in.BankID.String()).Str("goal", in.GoalID.String()).Str("amount", in.Amount.String()).Msg("Ledger")
		return models.Transaction{}, err
	}

	log.Debug().Str("operation", opWithdraw).Str("bank", in.BankID.String()).Str("goal", in.GoalID.String()).Str("amount", in.Amount.String()).Msg("Ledger")
	return transaction, nil
}

type ReturnResult struct {
	Returned  decimal.Decimal
	Remainder *models.Transaction // Withdrawal carrying the amount that was not returned, if any
}

// Return gives amount of the withdrawal with the given ID back to its
// allocation.
//
// The withdrawal is deleted. When only part of it is returned, a new
// withdrawal for the outstanding amount is recorded in its place. It keeps
// the original creation time and references the first withdrawal of the
// chain as its parent.
func (l *Ledger) Return(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (result ReturnResult, err error) {
	defer func() { observe(opReturn, err) }()

	err = l.run(ctx, func(s Store) error {
		transactions, err := s.GetTransactions(ctx, []uuid.UUID{id})
		if err != nil {
			return err
		}

		if len(transactions) == 0 {
			return ErrTransactionNotFound
		}
		original := transactions[0]

		if !original.IsWithdrawal() {
			return ErrNotWithdrawal
		}

		if !amount.IsPositive() || amount.GreaterThan(original.Amount.Abs()) {
			return ErrReturnAmountInvalid
		}

		bank, allocation, err := load(ctx, s, original.BankID, original.GoalID)
		if err != nil {
			return err
		}

		if err := s.DeleteTransactions(ctx, []uuid.UUID{original.ID}); err != nil {
			return deleteFailed(err)
		}

		if remaining := original.Amount.Add(amount); !remaining.IsZero() {
			parent := original.ID
			if original.ParentID != nil {
				parent = *original.ParentID
			}

			remainder := models.Transaction{
				DefaultModel: models.DefaultModel{
					Timestamps: models.Timestamps{CreatedAt: original.CreatedAt},
				},
				OwnerID:     original.OwnerID,
				GoalID:      original.GoalID,
				BankID:      original.BankID,
				ParentID:    &parent,
				Amount:      remaining,
				Description: original.Description,
			}

			if err := s.InsertTransaction(ctx, &remainder); err != nil {
				return fmt.Errorf("recording remainder: %w", err)
			}
			result.Remainder = &remainder
		}

		if err := l.adjust(ctx, s, bank, allocation, amount); err != nil {
			return err
		}

		result.Returned = amount
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("operation", opReturn).Str("transaction", id.String()).Str("amount", amount.String()).Msg("Ledger")
		return ReturnResult{}, err
	}

	log.Debug().Str("operation", opReturn).Str("transaction", id.String()).Str("amount", amount.String()).Msg("Ledger")
	return result, nil
}

// Group is a set of withdrawals from the same allocation.
type Group struct {
	BankID uuid.UUID
	GoalID uuid.UUID
	Total  decimal.Decimal // Sum of the absolute amounts
	IDs    []uuid.UUID
}

// GroupWithdrawals groups the withdrawals in transactions by bank and goal.
// Groups are ordered by the first appearance of their bank and goal pair.
// Transactions with a non-negative amount are ignored.
func GroupWithdrawals(transactions []models.Transaction) []Group {
	type key struct{ bank, goal uuid.UUID }

	index := make(map[key]int)
	groups := make([]Group, 0)

	for _, t := range transactions {
		if !t.IsWithdrawal() {
			continue
		}

		k := key{t.BankID, t.GoalID}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{BankID: t.BankID, GoalID: t.GoalID, Total: decimal.Zero})
		}

		groups[i].Total = groups[i].Total.Add(t.Amount.Abs())
		groups[i].IDs = append(groups[i].IDs, t.ID)
	}

	return groups
}

type BatchResult struct {
	Groups   []Group         // Groups that were returned
	Failed   []Group         // Groups that could not be returned
	Returned decimal.Decimal // Total amount returned over all successful groups
}

// ReturnBatch fully returns all withdrawals with the given IDs.
//
// IDs that do not identify a withdrawal are skipped. Every group of
// withdrawals from the same allocation is processed on its own. A failing
// group does not stop the processing of the following ones and groups
// that succeeded stay committed. The returned error joins the errors of
// all failed groups.
func (l *Ledger) ReturnBatch(ctx context.Context, ids []uuid.UUID) (result BatchResult, err error) {
	defer func() { observe(opReturnBatch, err) }()

	result.Returned = decimal.Zero
	if len(ids) == 0 {
		return result, nil
	}

	transactions, err := l.store.GetTransactions(ctx, ids)
	if err != nil {
		return result, err
	}

	var errs []error
	for _, group := range GroupWithdrawals(transactions) {
		err := l.run(ctx, func(s Store) error {
			bank, allocation, err := load(ctx, s, group.BankID, group.GoalID)
			if err != nil {
				return err
			}

			if err := s.DeleteTransactions(ctx, group.IDs); err != nil {
				return deleteFailed(err)
			}

			return l.adjust(ctx, s, bank, allocation, group.Total)
		})
		if err != nil {
			log.Error().Err(err).Str("operation", opReturnBatch).Str("bank", group.BankID.String()).Str("goal", group.GoalID.String()).Str("amount", group.Total.String()).Msg("Ledger")
			errs = append(errs, fmt.Errorf("bank %s, goal %s: %w", group.BankID, group.GoalID, err))
			result.Failed = append(result.Failed, group)
			continue
		}

		log.Debug().Str("operation", opReturnBatch).Str("bank", group.BankID.String()).Str("goal", group.GoalID.String()).Str("amount", group.Total.String()).Int("transactions", len(group.IDs)).Msg("Ledger")
		result.Groups = append(result.Groups, group)
		result.Returned = result.Returned.Add(group.Total)
	}

	return result, errors.Join(errs...)
}

// deleteFailed wraps the error of a failed delete. A conflict means another
// request returned the same withdrawal first and is passed on as is.
func deleteFailed(err error) error {
	if errors.Is(err, ErrConflict) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
}

// load reads the bank and the allocation of the goal at that bank.
func load(ctx context.Context, s Store, bankID, goalID uuid.UUID) (models.Bank, models.Allocation, error) {
	bank, err := s.GetBank(ctx, bankID)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Bank{}, models.Allocation{}, ErrBankNotFound
		}
		return models.Bank{}, models.Allocation{}, fmt.Errorf("reading bank: %w", err)
	}

	allocation, err := s.GetAllocation(ctx, goalID, bankID)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Bank{}, models.Allocation{}, ErrAllocationNotFound
		}
		return models.Bank{}, models.Allocation{}, fmt.Errorf("reading allocation: %w", err)
	}

	return bank, allocation, nil
}

// adjust adds delta to the bank balance and then to the allocation amount.
func (l *Ledger) adjust(ctx context.Context, s Store, bank models.Bank, allocation models.Allocation, delta decimal.Decimal) error {
	if err := l.adjustBank(ctx, s, bank, delta); err != nil {
		return fmt.Errorf("updating bank balance: %w", err)
	}

	if err := l.adjustAllocation(ctx, s, allocation, delta); err != nil {
		return fmt.Errorf("updating allocation: %w", err)
	}

	return nil
}

func (l *Ledger) adjustBank(ctx context.Context, s Store, bank models.Bank, delta decimal.Decimal) error {
	for attempt := 1; ; attempt++ {
		balance := bank.Balance.Add(delta)
		if balance.IsNegative() {
			return ErrInsufficientBalance
		}

		err := s.UpdateBankBalance(ctx, bank.ID, bank.Version, balance)
		if !errors.Is(err, ErrConflict) || attempt >= l.maxRetries {
			return err
		}
		retries.WithLabelValues("bank").Inc()

		bank, err = s.GetBank(ctx, bank.ID)
		if err != nil {
			return err
		}
	}
}

func (l *Ledger) adjustAllocation(ctx context.Context, s Store, allocation models.Allocation, delta decimal.Decimal) error {
	for attempt := 1; ; attempt++ {
		amount := allocation.Amount.Add(delta)
		if amount.IsNegative() {
			return ErrInsufficientAllocation
		}

		err := s.UpdateAllocationAmount(ctx, allocation.ID, allocation.Version, amount)
		if !errors.Is(err, ErrConflict) || attempt >= l.maxRetries {
			return err
		}
		retries.WithLabelValues("allocation").Inc()

		allocation, err = s.GetAllocation(ctx, allocation.GoalID, allocation.BankID)
		if err != nil {
			return err
		}
	}
}
