package models_test

import (
	"testing"

	"github.com/fundkeeper/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestAllocationSelf() {
	assert.Equal(suite.T(), "Allocation", models.Allocation{}.Self())
}

func (suite *TestSuiteStandard) TestAllocationNegative() {
	a := models.Allocation{
		Amount: decimal.NewFromFloat(-1),
	}

	err := a.BeforeSave(&gorm.DB{})
	assert.Equal(suite.T(), models.ErrAllocationAmountNegative, err)
}

func (suite *TestSuiteStandard) TestAllocationUniquePerGoalAndBank() {
	bank := suite.createTestBank(models.Bank{Name: "Bank", Balance: decimal.NewFromFloat(100)})
	goal := suite.createTestGoal(models.Goal{Name: "Goal"})
	_ = suite.createTestAllocation(models.Allocation{GoalID: goal.ID, BankID: bank.ID, Amount: decimal.NewFromFloat(10)})

	err := models.DB.Create(&models.Allocation{GoalID: goal.ID, BankID: bank.ID, Amount: decimal.NewFromFloat(20)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAllocationNotUnique)
}

func (suite *TestSuiteStandard) TestAllocationFits() {
	bank := suite.createTestBank(models.Bank{Name: "Bank", Balance: decimal.NewFromFloat(500)})
	first := suite.createTestGoal(models.Goal{Name: "First"})
	second := suite.createTestGoal(models.Goal{Name: "Second"})

	existing := suite.createTestAllocation(models.Allocation{GoalID: first.ID, BankID: bank.ID, Amount: decimal.NewFromFloat(300)})

	tests := []struct {
		name       string
		allocation models.Allocation
		err        error
	}{
		{"Fits exactly", models.Allocation{GoalID: second.ID, BankID: bank.ID, Amount: decimal.NewFromFloat(200)}, nil},
		{"Exceeds", models.Allocation{GoalID: second.ID, BankID: bank.ID, Amount: decimal.NewFromFloat(200.01)}, models.ErrAllocationExceedsBalance},
		{"Existing allocation is not counted twice", models.Allocation{DefaultModel: existing.DefaultModel, GoalID: first.ID, BankID: bank.ID, Amount: decimal.NewFromFloat(500)}, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(_ *testing.T) {
			assert.Equal(suite.T(), tt.err, tt.allocation.Fits(models.DB))
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationCascadeOnBankDelete() {
	bank := suite.createTestBank(models.Bank{Name: "Bank", Balance: decimal.NewFromFloat(100)})
	goal := suite.createTestGoal(models.Goal{Name: "Goal"})
	allocation := suite.createTestAllocation(models.Allocation{GoalID: goal.ID, BankID: bank.ID, Amount: decimal.NewFromFloat(10)})

	assert.Nil(suite.T(), models.DB.Delete(&bank).Error)

	err := models.DB.First(&models.Allocation{}, "id = ?", allocation.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
