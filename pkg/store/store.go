// Package store implements the ledger's persistence gateway on gorm.
package store

import (
	"context"

	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store reads and writes ledger records with gorm.
type Store struct {
	db   *gorm.DB
	lock bool // Lock the banks and allocations that are read, set inside Atomic
}

// New returns a Store using db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// read returns the query for bank and allocation lookups. Inside a
// transaction the rows are read with SELECT ... FOR UPDATE, so a lookup
// after a version conflict sees the latest committed row and not the
// snapshot of the transaction. SQLite ignores the locking clause.
func (s *Store) read(ctx context.Context) *gorm.DB {
	db := s.db.WithContext(ctx)
	if s.lock {
		db = db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	return db
}

func (s *Store) GetBank(ctx context.Context, id uuid.UUID) (models.Bank, error) {
	var bank models.Bank
	err := s.read(ctx).First(&bank, "id = ?", id).Error
	return bank, err
}

func (s *Store) GetAllocation(ctx context.Context, goalID, bankID uuid.UUID) (models.Allocation, error) {
	var allocation models.Allocation
	err := s.read(ctx).First(&allocation, "goal_id = ? AND bank_id = ?", goalID, bankID).Error
	return allocation, err
}

// GetTransactions returns the transactions with the given IDs in the order
// of ids. IDs without a transaction are skipped.
func (s *Store) GetTransactions(ctx context.Context, ids []uuid.UUID) ([]models.Transaction, error) {
	if len(ids) == 0 {
		return []models.Transaction{}, nil
	}

	var found []models.Transaction
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&found).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Transaction, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	transactions := make([]models.Transaction, 0, len(found))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			transactions = append(transactions, t)
			delete(byID, id)
		}
	}

	return transactions, nil
}

func (s *Store) InsertTransaction(ctx context.Context, transaction *models.Transaction) error {
	return s.db.WithContext(ctx).Create(transaction).Error
}

// UpdateBankBalance sets the balance if the bank is still at version.
func (s *Store) UpdateBankBalance(ctx context.Context, id uuid.UUID, version uint, balance decimal.Decimal) error {
	return s.compareAndSwap(ctx, &models.Bank{}, id, version, "balance", balance)
}

// UpdateAllocationAmount sets the amount if the allocation is still at version.
func (s *Store) UpdateAllocationAmount(ctx context.Context, id uuid.UUID, version uint, amount decimal.Decimal) error {
	return s.compareAndSwap(ctx, &models.Allocation{}, id, version, "amount", amount)
}

func (s *Store) compareAndSwap(ctx context.Context, model any, id uuid.UUID, version uint, column string, value decimal.Decimal) error {
	res := s.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(model).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]any{
			column:    value,
			"version": version + 1,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ledger.ErrConflict
	}

	return nil
}

// DeleteTransactions deletes the transactions with the given IDs. When one of
// them is already gone, ErrConflict is returned.
func (s *Store) DeleteTransactions(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	res := s.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Transaction{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected != int64(len(unique)) {
		return ledger.ErrConflict
	}

	return nil
}

// Atomic runs fn in a database transaction. The transaction is rolled back
// when fn returns an error.
func (s *Store) Atomic(ctx context.Context, fn func(ledger.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, lock: true})
	})
}

type sequential struct {
	ledger.Store
}

// Sequential returns a view of s without support for atomic execution.
// Every write of an operation is committed on its own.
func Sequential(s ledger.Store) ledger.Store {
	return sequential{Store: s}
}
