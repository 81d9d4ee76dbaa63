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
)

func (suite *TestSuiteStandard) TestGoalsCreate() {
	tests := []struct {
		name   string
		goal   v1.GoalEditable
		status int
		err    string
	}{
		{"Valid", v1.GoalEditable{Name: "Vacation", Target: decimal.NewFromFloat(2500)}, http.StatusCreated, ""},
		{"Negative target", v1.GoalEditable{Name: "Debt", Target: decimal.NewFromFloat(-5)}, http.StatusBadRequest, models.ErrGoalTargetNotPositive.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{{OwnerID: testOwner, Name: tt.goal.Name, Target: tt.goal.Target}})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.GoalCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.err != "" {
				assert.Equal(t, tt.err, *response.Data[0].Error)
				return
			}

			assert.Equal(t, tt.goal.Name, response.Data[0].Data.Name)
			assert.True(t, response.Data[0].Data.Target.Equal(tt.goal.Target))
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsDuplicateName() {
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "House"})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "House"}, http.StatusBadRequest)
	_ = createTestGoal(suite.T(), v1.GoalEditable{OwnerID: uuid.New(), Name: "House"})
}

func (suite *TestSuiteStandard) TestGoalsGetSingle() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing goal", g.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No goal with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"OPTIONS Existing goal", g.Data.ID.String(), http.StatusNoContent, http.MethodOptions},
		{"OPTIONS No goal with this ID", uuid.New().String(), http.StatusNotFound, http.MethodOptions},
		{"PATCH Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Vacation", Note: "Two weeks at the sea"})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Car"})
	_ = createTestGoal(suite.T(), v1.GoalEditable{OwnerID: uuid.New(), Name: "Vacation"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Owner", fmt.Sprintf("owner=%s", testOwner), 2},
		{"Name", "name=Vacation", 2},
		{"Search", "search=sea", 1},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.GoalListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Vacation", Target: decimal.NewFromFloat(2000)})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Name", map[string]any{"name": "Holiday"}, http.StatusOK},
		{"Target", map[string]any{"target": "3000"}, http.StatusOK},
		{"Zero target", map[string]any{"target": "0"}, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, goal.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, goal.Data.Links.Self, "")
	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Holiday", response.Data.Name)
	assert.True(suite.T(), response.Data.Target.Equal(decimal.NewFromFloat(3000)), "target is %s", response.Data.Target)
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	r := test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
