package models_test

import (
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBankSelf() {
	assert.Equal(suite.T(), "Bank", models.Bank{}.Self())
}

func (suite *TestSuiteStandard) TestBankBeforeSave() {
	tests := []struct {
		balance decimal.Decimal
		err     error
	}{
		{decimal.NewFromFloat(-0.01), models.ErrBankBalanceNegative},
		{decimal.Zero, nil},
		{decimal.NewFromFloat(1000), nil},
	}

	for _, tt := range tests {
		b := models.Bank{Name: " Savings\t", Balance: tt.balance}

		err := b.BeforeSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
		assert.Equal(suite.T(), "Savings", b.Name)
	}
}

func (suite *TestSuiteStandard) TestBankNameUniquePerOwner() {
	owner := uuid.New()
	_ = suite.createTestBank(models.Bank{OwnerID: owner, Name: "Checking"})

	err := models.DB.Create(&models.Bank{OwnerID: owner, Name: "Checking"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBankNameNotUnique)

	// Another owner can use the same name
	err = models.DB.Create(&models.Bank{OwnerID: uuid.New(), Name: "Checking"}).Error
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestBankAllocated() {
	bank := suite.createTestBank(models.Bank{Name: "Main", Balance: decimal.NewFromFloat(1000)})

	for _, amount := range []float64{100, 250.5} {
		goal := suite.createTestGoal(models.Goal{Name: decimal.NewFromFloat(amount).String()})
		_ = suite.createTestAllocation(models.Allocation{GoalID: goal.ID, BankID: bank.ID, Amount: decimal.NewFromFloat(amount)})
	}

	allocated, err := bank.Allocated(models.DB)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), allocated.Equal(decimal.NewFromFloat(350.5)), "Allocated is %s", allocated)
}
