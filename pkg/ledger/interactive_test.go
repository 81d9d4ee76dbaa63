package ledger_test

import (
	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/shell"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) interactive(confirmed bool) (ledger.Interactive, *shell.Recorder) {
	recorder := shell.NewRecorder(confirmed)
	return ledger.Interactive{
		Ledger:   suite.atomicLedger(),
		Shell:    recorder,
		Currency: "EUR",
	}, recorder
}

func (suite *TestSuiteStandard) TestInteractiveDeclined() {
	i, recorder := suite.interactive(false)

	_, err := i.Withdraw(suite.ctx, ledger.WithdrawInput{GoalID: suite.goal.ID, BankID: suite.bank.ID, Amount: decimal.NewFromFloat(150)})
	assert.ErrorIs(suite.T(), err, ledger.ErrCancelled)
	assert.Equal(suite.T(), []string{"Confirm Withdrawal: Withdraw €150.00 from this allocation?"}, recorder.Prompts())
	assert.Empty(suite.T(), recorder.Messages())

	suite.assertState(suite.bank, suite.allocation, "1000", "400")
	assert.Empty(suite.T(), suite.transactions())
}

func (suite *TestSuiteStandard) TestInteractiveWithdrawAndReturn() {
	i, recorder := suite.interactive(true)

	transaction, err := i.Withdraw(suite.ctx, ledger.WithdrawInput{GoalID: suite.goal.ID, BankID: suite.bank.ID, Amount: decimal.NewFromFloat(150)})
	require.Nil(suite.T(), err)

	_, err = i.Return(suite.ctx, transaction.ID, decimal.NewFromFloat(50))
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), []shell.Message{
		{Level: shell.LevelSuccess, Title: "Withdrawal Recorded", Message: "Withdrew €150.00."},
		{Level: shell.LevelSuccess, Title: "Money Returned", Message: "Returned €50.00, €100.00 remain withdrawn."},
	}, recorder.Messages())
}

func (suite *TestSuiteStandard) TestInteractiveError() {
	i, recorder := suite.interactive(true)

	_, err := i.Withdraw(suite.ctx, ledger.WithdrawInput{GoalID: suite.goal.ID, BankID: suite.bank.ID, Amount: decimal.NewFromFloat(500)})
	assert.ErrorIs(suite.T(), err, ledger.ErrInsufficientAllocation)

	messages := recorder.Messages()
	require.Len(suite.T(), messages, 1)
	assert.Equal(suite.T(), shell.LevelError, messages[0].Level)
	assert.Equal(suite.T(), "Insufficient Allocation", messages[0].Title)
	assert.Equal(suite.T(), ledger.ErrInsufficientAllocation.Error(), messages[0].Message)
}

func (suite *TestSuiteStandard) TestInteractiveReturnBatch() {
	i, recorder := suite.interactive(true)
	first := suite.withdraw(i.Ledger, suite.bank, suite.goal, 100)
	second := suite.withdraw(i.Ledger, suite.bank, suite.goal, 50)

	result, err := i.ReturnBatch(suite.ctx, []uuid.UUID{first.ID, second.ID}, decimal.NewFromFloat(150))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), result.Returned.Equal(decimal.NewFromFloat(150)))

	assert.Equal(suite.T(), []string{"Confirm Return: Return 2 transactions totalling €150.00?"}, recorder.Prompts())
	assert.Equal(suite.T(), "Returned €150.00.", recorder.Messages()[0].Message)
	suite.assertState(suite.bank, suite.allocation, "1000", "400")
}
