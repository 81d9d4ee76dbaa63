package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a named savings target that funds can be allocated toward.
type Goal struct {
	DefaultModel
	OwnerID uuid.UUID       `gorm:"type:char(36);uniqueIndex:goal_owner_name"`
	Name    string          `gorm:"size:255;uniqueIndex:goal_owner_name"`
	Note    string
	Target  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount to save
}

func (g Goal) Self() string {
	return "Goal"
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.Target.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	return nil
}
