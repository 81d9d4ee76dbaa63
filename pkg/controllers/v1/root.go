package v1

import (
	"net/http"

	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Allocations  string `json:"allocations" example:"https://example.com/api/v1/allocations"`   // URL of Allocation collection endpoint
	Banks        string `json:"banks" example:"https://example.com/api/v1/banks"`               // URL of Bank collection endpoint
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals"`               // URL of Goal collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of Transaction collection endpoint
	Withdrawals  string `json:"withdrawals" example:"https://example.com/api/v1/withdrawals"`   // URL of the withdrawal endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Allocations:  url + "/v1/allocations",
			Banks:        url + "/v1/banks",
			Goals:        url + "/v1/goals",
			Transactions: url + "/v1/transactions",
			Withdrawals:  url + "/v1/withdrawals",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
