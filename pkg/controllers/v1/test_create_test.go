package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fundkeeper/backend/pkg/controllers/v1"
	"github.com/fundkeeper/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// testOwner owns all resources created without an explicit owner.
var testOwner = uuid.MustParse("0192f1a6-0000-7000-8000-000000000001")

func createTestBank(t *testing.T, bank v1.BankEditable, expectedStatus ...int) v1.BankResponse {
	if bank.OwnerID == uuid.Nil {
		bank.OwnerID = testOwner
	}

	if bank.Name == "" {
		bank.Name = fmt.Sprintf("Bank %s", uuid.NewString())
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/banks", []v1.BankEditable{bank})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BankCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BankResponse{}
}

func createTestGoal(t *testing.T, goal v1.GoalEditable, expectedStatus ...int) v1.GoalResponse {
	if goal.OwnerID == uuid.Nil {
		goal.OwnerID = testOwner
	}

	if goal.Name == "" {
		goal.Name = fmt.Sprintf("Goal %s", uuid.NewString())
	}

	if goal.Target.IsZero() {
		goal.Target = decimal.NewFromFloat(1000)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{goal})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.GoalCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.GoalResponse{}
}

// createTestAllocation creates an allocation. A bank with a balance of 1000
// and a goal are created when the IDs are not set.
func createTestAllocation(t *testing.T, allocation v1.AllocationEditable, expectedStatus ...int) v1.AllocationResponse {
	if allocation.BankID == uuid.Nil {
		allocation.BankID = createTestBank(t, v1.BankEditable{Balance: decimal.NewFromFloat(1000)}).Data.ID
	}

	if allocation.GoalID == uuid.Nil {
		allocation.GoalID = createTestGoal(t, v1.GoalEditable{}).Data.ID
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/allocations", []v1.AllocationEditable{allocation})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.AllocationCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.AllocationResponse{}
}

func createTestWithdrawal(t *testing.T, withdrawal v1.WithdrawalRequest, expectedStatus ...int) v1.WithdrawalResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/withdrawals", withdrawal)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.WithdrawalResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func getBank(t *testing.T, id uuid.UUID) v1.Bank {
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/banks/%s", id), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.BankResponse
	test.DecodeResponse(t, &r, &response)
	return *response.Data
}

func getAllocation(t *testing.T, id uuid.UUID) v1.Allocation {
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/allocations/%s", id), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(t, &r, &response)
	return *response.Data
}
