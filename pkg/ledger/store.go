package ledger

import (
	"context"

	"github.com/fundkeeper/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the persistence gateway the ledger writes through.
//
// Lookups of missing records return an error wrapping
// models.ErrResourceNotFound. The update methods only write when the
// stored version equals version and return ErrConflict otherwise. They
// increment the stored version on success. DeleteTransactions returns
// ErrConflict when not every transaction was deleted.
type Store interface {
	GetBank(ctx context.Context, id uuid.UUID) (models.Bank, error)
	GetAllocation(ctx context.Context, goalID, bankID uuid.UUID) (models.Allocation, error)
	GetTransactions(ctx context.Context, ids []uuid.UUID) ([]models.Transaction, error)
	InsertTransaction(ctx context.Context, transaction *models.Transaction) error
	UpdateBankBalance(ctx context.Context, id uuid.UUID, version uint, balance decimal.Decimal) error
	UpdateAllocationAmount(ctx context.Context, id uuid.UUID, version uint, amount decimal.Decimal) error
	DeleteTransactions(ctx context.Context, ids []uuid.UUID) error
}

// Transactor is implemented by stores that can run several writes as one
// unit. When fn returns an error, none of the writes made through the Store
// passed to fn are kept.
type Transactor interface {
	Atomic(ctx context.Context, fn func(Store) error) error
}
