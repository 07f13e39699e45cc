package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/financeflow/backend/internal/types"
	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/services"
	"github.com/financeflow/backend/pkg/storage"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the amount must be positive"`
}

// Status returns the HTTP status code for an error.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrGeneral), errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	}

	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError

	switch {
	case errors.Is(err, ErrRequestBodyEmpty),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrInvalidQueryString),
		errors.Is(err, types.ErrInvalidTimeframe),
		errors.Is(err, services.ErrInvalidBackup),
		errors.As(err, &syntaxError),
		errors.As(err, &typeError):
		return http.StatusBadRequest
	}

	// Validation errors of the models
	for _, e := range []error{
		models.ErrIDMissing,
		models.ErrDateMissing,
		models.ErrAmountNotPositive,
		models.ErrTransactionTypeInvalid,
		models.ErrCategoryRequired,
		models.ErrNameRequired,
		models.ErrGoalPriorityInvalid,
		models.ErrGoalDeadlineNotFuture,
		models.ErrUnknownSetting,
		models.ErrDateFormatInvalid,
		models.ErrCurrencyInvalid,
	} {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// NewError writes err with the status code matching it. Internal errors are
// logged and replaced with a generic message referencing the request ID.
func NewError(c *gin.Context, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		err = fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c))
	}

	c.AbortWithStatusJSON(status, HTTPError{Error: err.Error()})
}

// NotFound writes a 404 response for a missing resource.
func NotFound(c *gin.Context, resource string) {
	NewError(c, fmt.Errorf("%w %s with this id", models.ErrResourceNotFound, resource))
}
