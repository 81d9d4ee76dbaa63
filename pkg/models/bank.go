package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bank is an account holding a spendable balance.
type Bank struct {
	DefaultModel
	OwnerID uuid.UUID       `gorm:"type:char(36);uniqueIndex:bank_owner_name"`
	Name    string          `gorm:"size:255;uniqueIndex:bank_owner_name"`
	Note    string
	Balance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Version uint            // Incremented with every balance change by the ledger
}

func (b Bank) Self() string {
	return "Bank"
}

func (b *Bank) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)

	if b.Balance.IsNegative() {
		return ErrBankBalanceNegative
	}

	return nil
}

// Allocated returns the sum of all allocation amounts for the bank.
func (b Bank) Allocated(db *gorm.DB) (decimal.Decimal, error) {
	var allocations []Allocation
	err := db.Where(&Allocation{BankID: b.ID}).Find(&allocations).Error
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, a := range allocations {
		sum = sum.Add(a.Amount)
	}

	return sum, nil
}
