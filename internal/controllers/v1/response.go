package v1

import (
	"net/http"

	"github.com/envelope-zero/budget-helpers/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Response is the response for all endpoints that return a single object.
type Response[T any] struct {
	Data  *T      `json:"data"`                                 // Data for the request
	Error *string `json:"error" example:"unknown month: \"x\""` // The error, if any occurred
}

// respond writes data and err with the matching status.
//
// data is only written when it is not nil. Errors the client is not
// responsible for are logged and replaced with a generic message.
func respond[T any](c *gin.Context, data *T, err error) {
	if err == nil {
		c.JSON(http.StatusOK, Response[T]{Data: data})
		return
	}

	s := status(err)
	if s == http.StatusInternalServerError {
		httputil.InternalError(c, err)
		return
	}

	e := err.Error()
	c.JSON(s, Response[T]{Data: data, Error: &e})
}
