package controllers

import (
	"net/http"

	"github.com/financeflow/backend/pkg/httputil"
	"github.com/financeflow/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SettingsResponse struct {
	Data  *models.UserSettings `json:"data"`                            // The user settings
	Error *string              `json:"error" example:"unknown setting"` // The error, if any occurred
}

// SettingUpdate sets a single setting.
type SettingUpdate struct {
	Key   models.SettingKey `json:"key" example:"currency"` // One of currency, dateFormat, language
	Value string            `json:"value" example:"EUR"`
}

// FormattedAmount is an amount formatted for display.
type FormattedAmount struct {
	Currency  string `json:"currency" example:"EUR"`
	Symbol    string `json:"symbol" example:"€"`
	Formatted string `json:"formatted" example:"€1,234.50"`
	Language  string `json:"language" example:"en-US"` // The language used for formatting
}

type FormattedAmountResponse struct {
	Data  *FormattedAmount `json:"data"`
	Error *string          `json:"error" example:"the query string contains unparseable data"` // The error, if any occurred
}

// RegisterSettingsRoutes registers the routes for settings with
// the RouterGroup that is passed.
func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetSettings)
	r.PATCH("", co.UpdateSetting)

	r.OPTIONS("/format", httputil.OptionsGet)
	r.GET("/format", co.GetFormattedAmount)
}

// @Summary		Get settings
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Router			/v1/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	settings := co.Service.GetSettings()
	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update setting
// @Description	Sets a single setting and returns all settings
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettingsResponse
// @Failure		400		{object}	SettingsResponse
// @Param			setting	body		SettingUpdate	true	"Setting"
// @Router			/v1/settings [patch]
func (co Controller) UpdateSetting(c *gin.Context) {
	var data SettingUpdate
	if err := httputil.BindData(c, &data); err != nil {
		c.JSON(httputil.Status(err), SettingsResponse{Error: errorString(err)})
		return
	}

	settings, err := co.Service.UpdateSetting(data.Key, data.Value)
	if err != nil {
		c.JSON(httputil.Status(err), SettingsResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Format amount
// @Description	Formats an amount in a currency with the configured language
// @Tags			Settings
// @Produce		json
// @Success		200			{object}	FormattedAmountResponse
// @Failure		400			{object}	FormattedAmountResponse
// @Param			amount		query		string	true	"The amount"
// @Param			currency	query		string	false	"ISO 4217 currency code, defaults to the configured currency"
// @Router			/v1/settings/format [get]
func (co Controller) GetFormattedAmount(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		err = httputil.ErrInvalidQueryString
		c.JSON(httputil.Status(err), FormattedAmountResponse{Error: errorString(err)})
		return
	}

	code := c.Query("currency")
	if code == "" {
		code = co.Service.GetSettings().Currency
	}

	c.JSON(http.StatusOK, FormattedAmountResponse{Data: &FormattedAmount{
		Currency:  code,
		Symbol:    co.Service.GetCurrencySymbol(code),
		Formatted: co.Service.FormatCurrency(amount, code),
		Language:  co.Service.CurrentLanguage(),
	}})
}
