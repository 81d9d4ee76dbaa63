package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allocation is the part of a Bank's balance earmarked for a Goal.
type Allocation struct {
	DefaultModel
	GoalID  uuid.UUID       `gorm:"type:char(36);uniqueIndex:allocation_goal_bank"`
	Goal    Goal            `gorm:"constraint:OnDelete:CASCADE"`
	BankID  uuid.UUID       `gorm:"type:char(36);uniqueIndex:allocation_goal_bank"`
	Bank    Bank            `gorm:"constraint:OnDelete:CASCADE"`
	Amount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Version uint            // Incremented with every amount change by the ledger
}

func (a Allocation) Self() string {
	return "Allocation"
}

func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	if a.Amount.IsNegative() {
		return ErrAllocationAmountNegative
	}

	return nil
}

// Fits verifies that the allocation, together with all other allocations
// of its bank, does not exceed the bank's balance.
func (a Allocation) Fits(db *gorm.DB) error {
	var bank Bank
	err := db.First(&bank, "id = ?", a.BankID).Error
	if err != nil {
		return err
	}

	var others []Allocation
	err = db.Where("bank_id = ? AND id != ?", a.BankID, a.ID).Find(&others).Error
	if err != nil {
		return err
	}

	sum := a.Amount
	for _, o := range others {
		sum = sum.Add(o.Amount)
	}

	if sum.GreaterThan(bank.Balance) {
		return ErrAllocationExceedsBalance
	}

	return nil
}
