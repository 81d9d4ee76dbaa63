// Package version reports which build of the backend is running.
package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/fundkeeper/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Object `json:"data"` // Build of the running backend
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`                                    // Release version
	GoVersion string `json:"goVersion" example:"go1.25.5"`                               // Go release the binary was built with
	Revision  string `json:"revision" example:"4b825dc642cb6eb9a060e54bf8d69288fbee4904"` // VCS revision, empty if the build carries none
}

var build = describe("0.0.0")

// describe completes the release version with the build information
// embedded into the binary.
func describe(release string) Object {
	o := Object{
		Version:   release,
		GoVersion: runtime.Version(),
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				o.Revision = setting.Value
			}
		}
	}

	return o
}

func RegisterRoutes(r *gin.RouterGroup, release string) {
	build = describe(release)

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the release, the Go version and the VCS revision of the running backend
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: build})
}
