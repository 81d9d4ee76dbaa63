package models_test

import (
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestTransactionSelf() {
	assert.Equal(suite.T(), "Transaction", models.Transaction{}.Self())
}

func (suite *TestSuiteStandard) TestTransactionIsWithdrawal() {
	assert.True(suite.T(), models.Transaction{Amount: decimal.NewFromFloat(-1)}.IsWithdrawal())
	assert.False(suite.T(), models.Transaction{Amount: decimal.NewFromFloat(1)}.IsWithdrawal())
}

func (suite *TestSuiteStandard) TestTransactionBeforeSave() {
	nilID := uuid.Nil
	transaction := models.Transaction{
		Amount:      decimal.NewFromFloat(-12),
		Description: "  Groceries ",
		ParentID:    &nilID,
	}

	assert.Nil(suite.T(), transaction.BeforeSave(&gorm.DB{}))
	assert.Equal(suite.T(), "Groceries", transaction.Description)
	assert.Nil(suite.T(), transaction.ParentID)

	zero := models.Transaction{}
	assert.Equal(suite.T(), models.ErrTransactionAmountZero, zero.BeforeSave(&gorm.DB{}))
}

// TestTransactionSurvivesBankDeletion verifies that transactions do not
// reference their bank with a foreign key.
func (suite *TestSuiteStandard) TestTransactionSurvivesBankDeletion() {
	bank := suite.createTestBank(models.Bank{Name: "Gone soon", Balance: decimal.NewFromFloat(100)})
	transaction := models.Transaction{
		BankID: bank.ID,
		GoalID: uuid.New(),
		Amount: decimal.NewFromFloat(-10),
	}
	assert.Nil(suite.T(), models.DB.Create(&transaction).Error)

	assert.Nil(suite.T(), models.DB.Delete(&bank).Error)

	var found models.Transaction
	assert.Nil(suite.T(), models.DB.First(&found, "id = ?", transaction.ID).Error)
	assert.True(suite.T(), found.Amount.Equal(decimal.NewFromFloat(-10)))
}
