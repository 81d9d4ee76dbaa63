package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fundkeeper/backend/pkg/controllers/v1"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/fundkeeper/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAllocationsCreate() {
	bank := createTestBank(suite.T(), v1.BankEditable{Balance: decimal.NewFromFloat(1000)})
	goal := createTestGoal(suite.T(), v1.GoalEditable{})
	other := createTestGoal(suite.T(), v1.GoalEditable{})

	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{BankID: bank.Data.ID, GoalID: goal.Data.ID, Amount: decimal.NewFromFloat(600)})
	assert.True(suite.T(), allocation.Data.Amount.Equal(decimal.NewFromFloat(600)))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/banks/%s", bank.Data.ID), allocation.Data.Links.Bank)

	tests := []struct {
		name       string
		allocation v1.AllocationEditable
		status     int
		err        error
	}{
		{"Same goal and bank", v1.AllocationEditable{BankID: bank.Data.ID, GoalID: goal.Data.ID, Amount: decimal.NewFromFloat(1)}, http.StatusBadRequest, models.ErrAllocationNotUnique},
		{"Exceeds balance", v1.AllocationEditable{BankID: bank.Data.ID, GoalID: other.Data.ID, Amount: decimal.NewFromFloat(400.01)}, http.StatusBadRequest, models.ErrAllocationExceedsBalance},
		{"Negative amount", v1.AllocationEditable{BankID: bank.Data.ID, GoalID: other.Data.ID, Amount: decimal.NewFromFloat(-1)}, http.StatusBadRequest, models.ErrAllocationAmountNegative},
		{"Bank does not exist", v1.AllocationEditable{BankID: uuid.New(), GoalID: other.Data.ID, Amount: decimal.NewFromFloat(1)}, http.StatusNotFound, models.ErrResourceNotFound},
		{"Goal does not exist", v1.AllocationEditable{BankID: bank.Data.ID, GoalID: uuid.New(), Amount: decimal.NewFromFloat(1)}, http.StatusBadRequest, models.ErrReferenceNotFound},
		{"Fills the balance", v1.AllocationEditable{BankID: bank.Data.ID, GoalID: other.Data.ID, Amount: decimal.NewFromFloat(400)}, http.StatusCreated, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/allocations", []v1.AllocationEditable{tt.allocation})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AllocationCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)

			if tt.err != nil {
				assert.Contains(t, *response.Data[0].Error, tt.err.Error())
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetFilter() {
	bank := createTestBank(suite.T(), v1.BankEditable{Balance: decimal.NewFromFloat(1000)})
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	_ = createTestAllocation(suite.T(), v1.AllocationEditable{BankID: bank.Data.ID, GoalID: goal.Data.ID, Amount: decimal.NewFromFloat(100)})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{BankID: bank.Data.ID, Amount: decimal.NewFromFloat(100)})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{GoalID: goal.Data.ID, Amount: decimal.NewFromFloat(100)})

	tests := []struct {
		name   string
		query  string
		len    int
		status int
	}{
		{"All", "", 3, http.StatusOK},
		{"Bank", fmt.Sprintf("bank=%s", bank.Data.ID), 2, http.StatusOK},
		{"Goal", fmt.Sprintf("goal=%s", goal.Data.ID), 2, http.StatusOK},
		{"Bank and goal", fmt.Sprintf("bank=%s&goal=%s", bank.Data.ID, goal.Data.ID), 1, http.StatusOK},
		{"Invalid bank", "bank=NoUUID", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.AllocationListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsUpdate() {
	bank := createTestBank(suite.T(), v1.BankEditable{Balance: decimal.NewFromFloat(1000)})
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{BankID: bank.Data.ID, Amount: decimal.NewFromFloat(400)})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{BankID: bank.Data.ID, Amount: decimal.NewFromFloat(500)})

	tests := []struct {
		name   string
		body   any
		status int
		amount float64 // Amount after the request
	}{
		{"Increase within balance", map[string]any{"amount": "500"}, http.StatusOK, 500},
		{"Exceeds balance", map[string]any{"amount": "500.01"}, http.StatusBadRequest, 500},
		{"Negative", map[string]any{"amount": "-1"}, http.StatusBadRequest, 500},
		{"Bank does not exist", map[string]any{"bankId": uuid.New()}, http.StatusNotFound, 500},
		{"Decrease", map[string]any{"amount": "100"}, http.StatusOK, 100},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, allocation.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			updated := getAllocation(t, allocation.Data.ID)
			assert.True(t, updated.Amount.Equal(decimal.NewFromFloat(tt.amount)), "amount is %s", updated.Amount)
		})
	}

	// Two successful amount changes
	assert.Equal(suite.T(), allocation.Data.Version+2, getAllocation(suite.T(), allocation.Data.ID).Version)
}

func (suite *TestSuiteStandard) TestAllocationsDelete() {
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{Amount: decimal.NewFromFloat(10)})

	r := test.Request(suite.T(), http.MethodDelete, allocation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodOptions, allocation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Bank and goal stay
	getBank(suite.T(), allocation.Data.BankID)
}
