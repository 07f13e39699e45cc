package controllers

import (
	"bytes"
	"net/http"

	"github.com/financeflow/backend/pkg/export"
	"github.com/financeflow/backend/pkg/httputil"
	"github.com/financeflow/backend/pkg/services"
	"github.com/gin-gonic/gin"
)

type BackupResponse struct {
	Data  *services.Backup `json:"data"`                                  // All stored data
	Error *string          `json:"error" example:"the backup is invalid"` // The error, if any occurred
}

// RegisterDataRoutes registers the routes for backup, restore and export
// with the RouterGroup that is passed.
func (co Controller) RegisterDataRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPostDelete)
	r.GET("", co.GetBackup)
	r.POST("", co.RestoreBackup)
	r.DELETE("", co.DeleteAll)

	r.OPTIONS("/transactions.xlsx", httputil.OptionsGet)
	r.GET("/transactions.xlsx", co.GetTransactionsXLSX)
}

// @Summary		Backup
// @Description	Returns all stored data
// @Tags			Data
// @Produce		json
// @Success		200	{object}	BackupResponse
// @Router			/v1/data [get]
func (co Controller) GetBackup(c *gin.Context) {
	backup := co.Service.Export()
	c.JSON(http.StatusOK, BackupResponse{Data: &backup})
}

// @Summary		Restore
// @Description	Replaces all stored data with a backup. Nothing is changed if the backup is invalid.
// @Tags			Data
// @Accept			json
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			backup	body		services.Backup	true	"Backup"
// @Router			/v1/data [post]
func (co Controller) RestoreBackup(c *gin.Context) {
	var backup services.Backup
	if err := httputil.BindData(c, &backup); err != nil {
		httputil.NewError(c, err)
		return
	}

	if err := co.Service.Import(backup); err != nil {
		httputil.NewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Delete all data
// @Description	Removes all transactions, budget categories and goals and resets the settings
// @Tags			Data
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/data [delete]
func (co Controller) DeleteAll(c *gin.Context) {
	if err := co.Service.Clear(); err != nil {
		httputil.NewError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Export transactions
// @Description	Returns all transactions as spreadsheet
// @Tags			Data
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/data/transactions.xlsx [get]
func (co Controller) GetTransactionsXLSX(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteTransactionsXLSX(&buf, co.Service.GetTransactions(), co.Service.GetSettings()); err != nil {
		httputil.NewError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
