package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/fundkeeper/backend/pkg/controllers/v1"
	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/fundkeeper/backend/pkg/shell"
	"github.com/fundkeeper/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestWithdrawalsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/withdrawals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestWithdrawalsCreate() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{Amount: decimal.NewFromFloat(400)})

	response := createTestWithdrawal(suite.T(), v1.WithdrawalRequest{
		GoalID:      allocation.Data.GoalID,
		BankID:      allocation.Data.BankID,
		Amount:      decimal.NewFromFloat(150),
		Description: "  New tent ",
		Confirm:     true,
	})

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(-150)), "amount is %s", response.Data.Amount)
	assert.Equal(suite.T(), "New tent", response.Data.Description)
	assert.Equal(suite.T(), testOwner, response.Data.OwnerID)
	assert.Nil(suite.T(), response.Data.ParentID)
	assert.True(suite.T(), response.Data.Selectable)
	assert.NotEqual(suite.T(), "", response.Data.BankName)
	assert.Equal(suite.T(), []shell.Message{
		{Level: shell.LevelSuccess, Title: "Withdrawal Recorded", Message: "Withdrew €150.00."},
	}, response.Messages)

	assert.True(suite.T(), getBank(suite.T(), allocation.Data.BankID).Balance.Equal(decimal.NewFromFloat(850)))
	assert.True(suite.T(), getAllocation(suite.T(), allocation.Data.ID).Amount.Equal(decimal.NewFromFloat(250)))
}

func (suite *TestSuiteStandard) TestWithdrawalsCreateFails() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{Amount: decimal.NewFromFloat(400)})

	tests := []struct {
		name    string
		request v1.WithdrawalRequest
		status  int
		err     error
		title   string // Title of the error message, empty when no message is sent
	}{
		{
			"Not confirmed",
			v1.WithdrawalRequest{GoalID: allocation.Data.GoalID, BankID: allocation.Data.BankID, Amount: decimal.NewFromFloat(10)},
			http.StatusBadRequest,
			ledger.ErrCancelled,
			"",
		},
		{
			"Zero amount",
			v1.WithdrawalRequest{GoalID: allocation.Data.GoalID, BankID: allocation.Data.BankID, Amount: decimal.Zero, Confirm: true},
			http.StatusBadRequest,
			ledger.ErrAmountNotPositive,
			"Invalid Amount",
		},
		{
			"More than allocated",
			v1.WithdrawalRequest{GoalID: allocation.Data.GoalID, BankID: allocation.Data.BankID, Amount: decimal.NewFromFloat(400.01), Confirm: true},
			http.StatusBadRequest,
			ledger.ErrInsufficientAllocation,
			"Insufficient Allocation",
		},
		{
			"Bank does not exist",
			v1.WithdrawalRequest{GoalID: allocation.Data.GoalID, BankID: uuid.New(), Amount: decimal.NewFromFloat(10), Confirm: true},
			http.StatusNotFound,
			ledger.ErrBankNotFound,
			"Bank Not Found",
		},
		{
			"No allocation for the goal",
			v1.WithdrawalRequest{GoalID: uuid.New(), BankID: allocation.Data.BankID, Amount: decimal.NewFromFloat(10), Confirm: true},
			http.StatusNotFound,
			ledger.ErrAllocationNotFound,
			"Allocation Not Found",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := createTestWithdrawal(t, tt.request, tt.status)

			assert.Nil(t, response.Data)
			assert.Equal(t, tt.err.Error(), *response.Error)

			if tt.title == "" {
				assert.Empty(t, response.Messages)
				return
			}

			require.Len(t, response.Messages, 1)
			assert.Equal(t, shell.LevelError, response.Messages[0].Level)
			assert.Equal(t, tt.title, response.Messages[0].Title)
		})
	}

	// Nothing was written
	assert.True(suite.T(), getBank(suite.T(), allocation.Data.BankID).Balance.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), getAllocation(suite.T(), allocation.Data.ID).Amount.Equal(decimal.NewFromFloat(400)))

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestWithdrawalsCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/withdrawals", `{ "amount": [] }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/withdrawals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
