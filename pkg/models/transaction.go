package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction records money moving out of or back into an allocation.
//
// A negative amount is a withdrawal. Transactions reference their bank and
// goal without a foreign key so that history survives their deletion.
type Transaction struct {
	DefaultModel
	OwnerID     uuid.UUID       `gorm:"type:char(36);index"`
	GoalID      uuid.UUID       `gorm:"type:char(36);index:transaction_goal_bank"`
	BankID      uuid.UUID       `gorm:"type:char(36);index:transaction_goal_bank"`
	ParentID    *uuid.UUID      `gorm:"type:char(36)"` // Root withdrawal this remainder was split from
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
}

func (t Transaction) Self() string {
	return "Transaction"
}

// IsWithdrawal reports whether the transaction moved money out of its allocation.
func (t Transaction) IsWithdrawal() bool {
	return t.Amount.IsNegative()
}

// BeforeSave trims whitespace, normalizes the parent ID and rejects zero amounts.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.ParentID != nil && *t.ParentID == uuid.Nil {
		t.ParentID = nil
	}

	if t.Amount.IsZero() {
		return ErrTransactionAmountZero
	}

	return nil
}
