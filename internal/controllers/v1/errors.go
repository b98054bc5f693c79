package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/budget-helpers/internal/budget"
	"github.com/envelope-zero/budget-helpers/internal/httputil"
	"github.com/envelope-zero/budget-helpers/internal/selector"
)

var (
	errNothingToPick = errors.New("at least one of pickMonth and pickYear must be set")
	errMissingMonth  = errors.New("one of value and month must be set")
	errInvalidValue  = errors.New("value must be a month in YYYY-MM format")
)

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, selector.ErrUnknownMonth),
		errors.Is(err, selector.ErrInvalidYear),
		errors.Is(err, budget.ErrUnknownTransactionType),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidQuery),
		errors.Is(err, httputil.ErrValidation),
		errors.Is(err, errNothingToPick),
		errors.Is(err, errMissingMonth),
		errors.Is(err, errInvalidValue):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
