package httputil

import "errors"

var (
	ErrRequestBodyEmpty   = errors.New("the request body must not be empty")
	ErrInvalidBody        = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrInvalidQueryString = errors.New("the query string contains unparseable data. Please check the values")
)
