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

// TestBanksDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBanksDBClosed() {
	tests := []struct {
		name string
		test func(t *testing.T)
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestBank(t, v1.BankEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/banks", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.BankListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestBanksOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No bank with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Bank exists", createTestBank(suite.T(), v1.BankEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/banks/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/banks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBanksCreate() {
	tests := []struct {
		name   string
		bank   v1.BankEditable
		status int
	}{
		{"Valid", v1.BankEditable{Name: "Checking", Balance: decimal.NewFromFloat(150.25)}, http.StatusCreated},
		{"Negative balance", v1.BankEditable{Name: "Overdrawn", Balance: decimal.NewFromFloat(-1)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			bank := createTestBank(t, tt.bank, tt.status)
			if tt.status != http.StatusCreated {
				return
			}

			assert.Equal(t, tt.bank.Name, bank.Data.Name)
			assert.True(t, bank.Data.Balance.Equal(tt.bank.Balance))
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/banks/%s", bank.Data.ID), bank.Data.Links.Self)
		})
	}
}

func (suite *TestSuiteStandard) TestBanksCreateDuplicateName() {
	_ = createTestBank(suite.T(), v1.BankEditable{Name: "Savings"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/banks", []v1.BankEditable{
		{OwnerID: testOwner, Name: "Savings"},
		{OwnerID: uuid.New(), Name: "Savings"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BankCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), models.ErrBankNameNotUnique.Error(), *response.Data[0].Error)
	assert.Nil(suite.T(), response.Data[1].Error, "A bank with the same name for another owner must be created")
}

func (suite *TestSuiteStandard) TestBanksCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/banks", `{ "name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBanksGetSingle() {
	b := createTestBank(suite.T(), v1.BankEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing bank", b.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No bank with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No bank with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/banks/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBanksGetFilter() {
	other := uuid.New()

	_ = createTestBank(suite.T(), v1.BankEditable{Name: "Checking", Note: "Salary goes here"})
	_ = createTestBank(suite.T(), v1.BankEditable{Name: "Savings", Note: "Long term"})
	_ = createTestBank(suite.T(), v1.BankEditable{OwnerID: other, Name: "Checking"})

	tests := []struct {
		name   string
		query  string
		len    int
		total  int64 // Matching banks regardless of offset and limit
		status int
	}{
		{"All", "", 3, 3, http.StatusOK},
		{"Owner", fmt.Sprintf("owner=%s", testOwner), 2, 2, http.StatusOK},
		{"Other owner", fmt.Sprintf("owner=%s", other), 1, 1, http.StatusOK},
		{"Name", "name=Checking", 2, 2, http.StatusOK},
		{"Search in note", "search=salary", 1, 1, http.StatusOK},
		{"Search in name", "search=ing", 3, 3, http.StatusOK},
		{"Limit", "limit=1", 1, 3, http.StatusOK},
		{"Offset", "offset=2", 1, 3, http.StatusOK},
		{"Invalid owner", "owner=NoUUID", 0, 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.BankListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/banks?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				return
			}

			assert.Len(t, response.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestBanksUpdate() {
	bank := createTestBank(suite.T(), v1.BankEditable{Name: "Checking", Note: "Keep me", Balance: decimal.NewFromFloat(500)})

	r := test.Request(suite.T(), http.MethodPatch, bank.Data.Links.Self, map[string]any{
		"name": "Main",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BankResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Main", response.Data.Name)
	assert.Equal(suite.T(), "Keep me", response.Data.Note)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromFloat(500)))
	assert.Equal(suite.T(), bank.Data.Version, response.Data.Version, "Version must not change without a balance change")

	r = test.Request(suite.T(), http.MethodPatch, bank.Data.Links.Self, map[string]any{
		"balance": "750",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromFloat(750)))
	assert.Equal(suite.T(), bank.Data.Version+1, response.Data.Version)
}

func (suite *TestSuiteStandard) TestBanksUpdateFails() {
	bank := createTestBank(suite.T(), v1.BankEditable{Balance: decimal.NewFromFloat(500)})
	_ = createTestAllocation(suite.T(), v1.AllocationEditable{BankID: bank.Data.ID, Amount: decimal.NewFromFloat(400)})

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, ""},
		{"Negative balance", map[string]any{"balance": "-5"}, http.StatusBadRequest, models.ErrBankBalanceNegative.Error()},
		{"Balance below allocations", map[string]any{"balance": "399.99"}, http.StatusBadRequest, "the balance must not be lower than the sum of the bank's allocations"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, bank.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}

	// Nothing was changed by the failed updates
	unchanged := getBank(suite.T(), bank.Data.ID)
	assert.True(suite.T(), unchanged.Balance.Equal(decimal.NewFromFloat(500)), "balance is %s", unchanged.Balance)
	assert.Equal(suite.T(), bank.Data.Version, unchanged.Version)
}

func (suite *TestSuiteStandard) TestBanksDelete() {
	bank := createTestBank(suite.T(), v1.BankEditable{Balance: decimal.NewFromFloat(500)})
	allocation := createTestAllocation(suite.T(), v1.AllocationEditable{BankID: bank.Data.ID, Amount: decimal.NewFromFloat(100)})

	r := test.Request(suite.T(), http.MethodDelete, bank.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, bank.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Allocations are deleted with their bank
	r = test.Request(suite.T(), http.MethodGet, allocation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
