package healthz

import (
	"net/http"

	"github.com/envelope-zero/budget-helpers/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Gatherer is checked by Get. It is the Prometheus default gatherer
// unless replaced.
var Gatherer prometheus.Gatherer = prometheus.DefaultGatherer

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if _, err := Gatherer.Gather(); err != nil {
		httputil.InternalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
