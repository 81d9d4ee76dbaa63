// Package root serves the entrypoint of the API. Clients start here and
// follow the links to the ledger and the operational endpoints.
package root

import (
	"net/http"

	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

// Links are absolute URLs, built from the externally reachable URL of the API.
type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Interactive documentation of every route
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Database reachability
	Version string `json:"version" example:"https://example.com/api/version"`      // Build of the running backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus scrape target
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // Banks, goals, allocations and transactions
}

func links(base string) Links {
	return Links{
		Docs:    base + "/docs/index.html",
		Healthz: base + "/healthz",
		Version: base + "/version",
		Metrics: base + "/metrics",
		V1:      base + "/v1",
	}
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, linking the ledger and the operational endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Links: links(c.GetString(string(models.DBContextURL)))})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
