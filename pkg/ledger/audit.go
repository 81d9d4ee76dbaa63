package ledger

import (
	"context"

	"github.com/fundkeeper/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Discrepancy is a bank whose allocations exceed its balance.
type Discrepancy struct {
	BankID    uuid.UUID       `json:"bankId"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Allocated decimal.Decimal `json:"allocated"`
}

// Audit returns all banks where the sum of the allocation amounts is
// greater than the balance. This state is the result of interrupted
// operations or concurrent writes outside of the ledger.
func Audit(ctx context.Context, db *gorm.DB) ([]Discrepancy, error) {
	var banks []models.Bank
	err := db.WithContext(ctx).Order("name ASC").Find(&banks).Error
	if err != nil {
		return nil, err
	}

	var allocations []models.Allocation
	err = db.WithContext(ctx).Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	allocated := make(map[uuid.UUID]decimal.Decimal, len(banks))
	for _, a := range allocations {
		allocated[a.BankID] = allocated[a.BankID].Add(a.Amount)
	}

	discrepancies := make([]Discrepancy, 0)
	for _, b := range banks {
		if sum := allocated[b.ID]; sum.GreaterThan(b.Balance) {
			discrepancies = append(discrepancies, Discrepancy{
				BankID:    b.ID,
				Name:      b.Name,
				Balance:   b.Balance,
				Allocated: sum,
			})
		}
	}

	return discrepancies, nil
}
