package ledger_test

import (
	"context"

	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/fundkeeper/backend/pkg/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// faults configures the failures injected by faultyStore.
type faults struct {
	insert           error
	delete           error
	updateBank       error
	updateAllocation error

	// Number of bank balance updates that report a concurrent modification
	bankConflicts int
}

// faultyStore wraps a ledger.Store and fails the configured calls.
type faultyStore struct {
	ledger.Store
	f *faults
}

func (s faultyStore) InsertTransaction(ctx context.Context, transaction *models.Transaction) error {
	if s.f.insert != nil {
		return s.f.insert
	}
	return s.Store.InsertTransaction(ctx, transaction)
}

func (s faultyStore) DeleteTransactions(ctx context.Context, ids []uuid.UUID) error {
	if s.f.delete != nil {
		return s.f.delete
	}
	return s.Store.DeleteTransactions(ctx, ids)
}

func (s faultyStore) UpdateBankBalance(ctx context.Context, id uuid.UUID, version uint, balance decimal.Decimal) error {
	if s.f.updateBank != nil {
		return s.f.updateBank
	}

	if s.f.bankConflicts > 0 {
		s.f.bankConflicts--
		return ledger.ErrConflict
	}

	return s.Store.UpdateBankBalance(ctx, id, version, balance)
}

func (s faultyStore) UpdateAllocationAmount(ctx context.Context, id uuid.UUID, version uint, amount decimal.Decimal) error {
	if s.f.updateAllocation != nil {
		return s.f.updateAllocation
	}
	return s.Store.UpdateAllocationAmount(ctx, id, version, amount)
}

// atomicFaultyStore injects failures into the store used inside a
// database transaction.
type atomicFaultyStore struct {
	faultyStore
	inner *store.Store
}

func (s atomicFaultyStore) Atomic(ctx context.Context, fn func(ledger.Store) error) error {
	return s.inner.Atomic(ctx, func(tx ledger.Store) error {
		return fn(faultyStore{Store: tx, f: s.f})
	})
}

func newAtomicFaulty(inner *store.Store, f *faults) ledger.Store {
	return atomicFaultyStore{faultyStore: faultyStore{Store: inner, f: f}, inner: inner}
}

func newSequentialFaulty(inner *store.Store, f *faults) ledger.Store {
	return faultyStore{Store: store.Sequential(inner), f: f}
}

// racingStore runs race once, right after the first transactions were
// read, the way a second client acting on the same records would.
type racingStore struct {
	*store.Store
	race func()
}

func (s *racingStore) GetTransactions(ctx context.Context, ids []uuid.UUID) ([]models.Transaction, error) {
	transactions, err := s.Store.GetTransactions(ctx, ids)
	if race := s.race; race != nil {
		s.race = nil
		race()
	}
	return transactions, err
}
