package v1

import (
	"net/http"

	"github.com/envelope-zero/budget-helpers/internal/httputil"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type RootResponse struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Selector     string `json:"selector" example:"https://example.com/api/v1/selector"`         // URL of the month selector endpoint
	Calculations string `json:"calculations" example:"https://example.com/api/v1/calculations"` // URL of the calculation list endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	RootResponse
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.BaseURL(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: Links{
			Selector:     url + "/v1/selector",
			Calculations: url + "/v1/calculations",
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
