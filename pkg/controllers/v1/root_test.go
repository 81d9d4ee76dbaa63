package v1_test

import (
	"net/http"

	v1 "github.com/fundkeeper/backend/pkg/controllers/v1"
	"github.com/fundkeeper/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Allocations:  "http://example.com/v1/allocations",
		Banks:        "http://example.com/v1/banks",
		Goals:        "http://example.com/v1/goals",
		Transactions: "http://example.com/v1/transactions",
		Withdrawals:  "http://example.com/v1/withdrawals",
	}, response.Links)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}
