package services_test

import (
	"testing"
	"time"

	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetSettingsDefault() {
	suite.Assert().Equal(models.DefaultSettings(), suite.service.GetSettings())

	suite.Require().Nil(suite.storage.Set(storage.KeySettings, "{broken"))
	suite.Assert().Equal(models.DefaultSettings(), suite.service.GetSettings())
}

func (suite *TestSuiteStandard) TestUpdateSetting() {
	settings, err := suite.service.UpdateSetting(models.SettingCurrency, "USD")
	suite.Require().Nil(err)
	suite.Assert().Equal("USD", settings.Currency)
	suite.Assert().Equal(models.DateFormatDayFirst, settings.DateFormat)

	value, err := suite.service.GetSetting(models.SettingCurrency)
	suite.Require().Nil(err)
	suite.Assert().Equal("USD", value)

	_, err = suite.service.UpdateSetting("theme", "dark")
	suite.Assert().ErrorIs(err, models.ErrUnknownSetting)
	suite.Assert().Equal("USD", suite.service.GetSettings().Currency)
}

func (suite *TestSuiteStandard) TestUpdateLanguageSyncsCache() {
	_, err := suite.service.UpdateSetting(models.SettingLanguage, "ta-IN")
	suite.Require().Nil(err)

	cached, ok, err := suite.storage.Get(storage.KeyLanguage)
	suite.Require().Nil(err)
	suite.Assert().True(ok)
	suite.Assert().Equal("ta-IN", cached)
	suite.Assert().Equal("ta-IN", suite.service.CurrentLanguage())
}

func (suite *TestSuiteStandard) TestCurrentLanguage() {
	suite.Assert().Equal("en-US", suite.service.CurrentLanguage())

	// Unsupported cached languages are ignored
	suite.Require().Nil(suite.storage.Set(storage.KeyLanguage, "de-DE"))
	suite.Assert().Equal("en-US", suite.service.CurrentLanguage())

	// The settings language is written back to the cache
	settings := models.DefaultSettings()
	settings.Language = "ta-IN"
	suite.service.SaveSettings(settings)
	suite.Assert().Equal("ta-IN", suite.service.CurrentLanguage())

	cached, _, _ := suite.storage.Get(storage.KeyLanguage)
	suite.Assert().Equal("ta-IN", cached)
}

func (suite *TestSuiteStandard) TestFormatCurrencyFallback() {
	suite.Assert().Equal("XXX 1234.5", suite.service.FormatCurrency(amount("1234.5"), "XXX"))
	suite.Assert().Equal("NOPE 12", suite.service.FormatCurrency(amount("12"), "NOPE"))
}

func (suite *TestSuiteStandard) TestFormatCurrency() {
	formatted := suite.service.FormatCurrency(amount("1234.5"), "USD")
	suite.Assert().Contains(formatted, "$")
	suite.Assert().Contains(formatted, "234.50")

	suite.Assert().Contains(suite.service.FormatCurrency(amount("-3"), "USD"), "-")

	// Without a code, the configured currency is used
	suite.Assert().NotContains(suite.service.FormatCurrency(amount("10"), ""), "XXX")
}

func (suite *TestSuiteStandard) TestGetCurrencySymbol() {
	suite.Assert().Contains(suite.service.GetCurrencySymbol("USD"), "$")
	suite.Assert().Contains(suite.service.GetCurrencySymbol("EUR"), "€")
	suite.Assert().NotContains(suite.service.GetCurrencySymbol("USD"), "0")
	suite.Assert().Equal("XXX", suite.service.GetCurrencySymbol("XXX"))
	suite.Assert().NotEmpty(suite.service.GetCurrencySymbol(""))
}

func (suite *TestSuiteStandard) TestFormatDate() {
	date := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		format   models.DateFormat
		expected string
	}{
		{models.DateFormatMonthFirst, "03/07/2024"},
		{models.DateFormatDayFirst, "07/03/2024"},
		{models.DateFormatISO, "2024-03-07"},
		{"unknown", "07/03/2024"},
	}

	for _, tt := range tests {
		suite.T().Run(string(tt.format), func(t *testing.T) {
			settings := models.DefaultSettings()
			settings.DateFormat = tt.format
			suite.service.SaveSettings(settings)

			assert.Equal(t, tt.expected, suite.service.FormatDate(date))
		})
	}
}
