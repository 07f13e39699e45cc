package controllers

import (
	"net/http"

	"github.com/financeflow/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterHealthzRoutes registers the routes for the healthz endpoint.
func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetHealthz)
}

// GetHealthz returns data about the application health
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Success		204
//	@Failure		500	{object}	httputil.HTTPError
//	@Router			/healthz [get]
func (co Controller) GetHealthz(c *gin.Context) {
	if err := co.Service.Ping(); err != nil {
		httputil.NewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
