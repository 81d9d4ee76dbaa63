package v1

import (
	"fmt"

	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationEditable struct {
	GoalID uuid.UUID       `json:"goalId" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12"`                                                        // ID of the goal
	BankID uuid.UUID       `json:"bankId" example:"0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11"`                                                        // ID of the bank holding the money
	Amount decimal.Decimal `json:"amount" example:"400" default:"0" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Part of the bank's balance set aside for the goal
}

// model returns the database resource for the editable fields
func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		GoalID: editable.GoalID,
		BankID: editable.BankID,
		Amount: editable.Amount,
	}
}

type AllocationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/allocations/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f14"` // The allocation itself
	Goal string `json:"goal" example:"https://example.com/api/v1/goals/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12"`       // The goal
	Bank string `json:"bank" example:"https://example.com/api/v1/banks/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f11"`       // The bank
}

// Allocation is the API v1 representation of an Allocation.
type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Version uint            `json:"version" example:"2"` // Incremented with every amount change
	Links   AllocationLinks `json:"links"`
}

func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			GoalID: model.GoalID,
			BankID: model.BankID,
			Amount: model.Amount,
		},
		Version: model.Version,
		Links: AllocationLinks{
			Self: fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Goal: fmt.Sprintf("%s/v1/goals/%s", url, model.GoalID),
			Bank: fmt.Sprintf("%s/v1/banks/%s", url, model.BankID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                                          // List of allocations
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                                          // List of created allocations
}

func (a *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                          // Data for the allocation
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationQueryFilter struct {
	GoalID string `form:"goal"`                       // By goal ID
	BankID string `form:"bank"`                       // By bank ID
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first allocation returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of allocations to return. Defaults to 50.
}

func (f AllocationQueryFilter) model() (models.Allocation, error) {
	goalID, err := httputil.UUIDFromString(f.GoalID)
	if err != nil {
		return models.Allocation{}, err
	}

	bankID, err := httputil.UUIDFromString(f.BankID)
	if err != nil {
		return models.Allocation{}, err
	}

	return models.Allocation{
		GoalID: goalID,
		BankID: bankID,
	}, nil
}
