package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// TimeQuery parses the query parameter name as RFC 3339 timestamp or as
// date in the YYYY-MM-DD format. A missing parameter yields the zero time.
//
// For dates, endOfDay selects the last instead of the first instant of the
// day.
func TimeQuery(c *gin.Context, name string, endOfDay bool) (time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, ErrInvalidQueryString
	}

	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return t, nil
}

// BoolQuery parses the query parameter name as boolean. A missing parameter
// yields false.
func BoolQuery(c *gin.Context, name string) (bool, error) {
	value := c.Query(name)
	if value == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, ErrInvalidQueryString
	}

	return b, nil
}
