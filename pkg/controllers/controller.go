package controllers

import (
	"sync"

	"github.com/financeflow/backend/pkg/services"
	"github.com/gin-gonic/gin"
)

// percentPlaces is the number of decimal places percentages are rounded to
// in responses.
const percentPlaces = 2

// Controller serves the HTTP API on top of a Service.
//
// The Service is not safe for concurrent use, so all requests are handled
// one after another.
type Controller struct {
	Service *services.Service
	mu      *sync.Mutex
}

func New(s *services.Service) Controller {
	return Controller{
		Service: s,
		mu:      &sync.Mutex{},
	}
}

// Serialize is a middleware that lets only one request access the service
// at a time.
func (co Controller) Serialize() gin.HandlerFunc {
	return func(c *gin.Context) {
		co.mu.Lock()
		defer co.mu.Unlock()

		c.Next()
	}
}

// errorString returns a pointer to the error text for use in responses.
func errorString(err error) *string {
	s := err.Error()
	return &s
}
