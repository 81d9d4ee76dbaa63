package v1

import (
	"fmt"

	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	OwnerID uuid.UUID       `json:"ownerId" example:"0192f1a6-0000-7000-8000-000000000001"`                                                            // ID of the owner of the goal
	Name    string          `json:"name" example:"Vacation" default:""`                                                                                // Name of the goal. Unique per owner.
	Note    string          `json:"note" example:"Two weeks at the sea" default:""`                                                                    // A longer description for the goal
	Target  decimal.Decimal `json:"target" example:"2500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount of money to save for the goal
}

// model returns the database resource for the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		OwnerID: editable.OwnerID,
		Name:    editable.Name,
		Note:    editable.Note,
		Target:  editable.Target,
	}
}

type GoalLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/goals/0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12"`                   // The goal itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?goal=0192f1a6-6f9e-7c3a-b0e4-2d5b2c1a9f12"` // Allocations for this goal
}

// Goal is the API v1 representation of a Goal.
type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			OwnerID: model.OwnerID,
			Name:    model.Name,
			Note:    model.Note,
			Target:  model.Target,
		},
		Links: GoalLinks{
			Self:        fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?goal=%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created goals
}

func (g *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	g.Data = append(g.Data, GoalResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	OwnerID string `form:"owner"`                      // By owner ID
	Name    string `form:"name"`                       // By name
	Search  string `form:"search" filterField:"false"` // By string in name or note
	Offset  uint   `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit   int    `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() (models.Goal, error) {
	ownerID, err := httputil.UUIDFromString(f.OwnerID)
	if err != nil {
		return models.Goal{}, err
	}

	return models.Goal{
		OwnerID: ownerID,
		Name:    f.Name,
	}, nil
}
