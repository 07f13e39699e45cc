package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/financeflow/backend/pkg/models"
	"github.com/financeflow/backend/pkg/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const defaultLanguage = "en-US"

// SupportedLanguages are the locales the user interface is translated to.
var SupportedLanguages = []string{"en-US", "ta-IN"}

// fallbackSymbols are used when the locale data cannot produce a symbol.
var fallbackSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CNY": "¥",
	"INR": "₹",
}

// GetSettings returns the stored settings, or the defaults if there are none
// or they cannot be parsed.
func (s *Service) GetSettings() models.UserSettings {
	raw, ok, err := s.storage.Get(storage.KeySettings)
	if err != nil {
		s.log.Error().Err(err).Msg("reading settings failed, using defaults")
		return models.DefaultSettings()
	}

	if !ok {
		return models.DefaultSettings()
	}

	var settings models.UserSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.log.Error().Err(err).Msg("stored settings are malformed, using defaults")
		return models.DefaultSettings()
	}

	return settings
}

// SaveSettings overwrites all settings.
func (s *Service) SaveSettings(settings models.UserSettings) {
	if err := s.writeSettings(settings); err != nil {
		s.log.Error().Err(err).Msg("saving settings failed")
	}
}

func (s *Service) writeSettings(settings models.UserSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return s.storage.Set(storage.KeySettings, string(data))
}

// UpdateSetting sets a single setting and returns the full updated settings.
func (s *Service) UpdateSetting(key models.SettingKey, value string) (models.UserSettings, error) {
	settings, err := s.GetSettings().With(key, value)
	if err != nil {
		return settings, fmt.Errorf("updating setting '%s': %w", key, err)
	}

	s.SaveSettings(settings)

	if key == models.SettingLanguage {
		s.setLanguage(settings.Language)
	}

	return settings, nil
}

// GetSetting returns the value of a single setting.
func (s *Service) GetSetting(key models.SettingKey) (string, error) {
	return s.GetSettings().Get(key)
}

func (s *Service) setLanguage(lang string) {
	if err := s.storage.Set(storage.KeyLanguage, lang); err != nil {
		s.log.Error().Err(err).Msg("saving language failed")
	}
}

func supportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}

	return false
}

// CurrentLanguage returns the language the user interface is displayed in.
//
// The cached language key takes precedence. If it is missing, the language
// from the settings is used and written back to the cache.
func (s *Service) CurrentLanguage() string {
	cached, ok, err := s.storage.Get(storage.KeyLanguage)
	if err != nil {
		s.log.Error().Err(err).Msg("reading language failed")
	}

	if ok && supportedLanguage(cached) {
		return cached
	}

	lang := s.GetSettings().Language
	if supportedLanguage(lang) {
		s.setLanguage(lang)
		return lang
	}

	return defaultLanguage
}

// effectiveCurrency returns code, or the configured currency if code is empty.
func effectiveCurrency(code string, settings models.UserSettings) string {
	if code = strings.TrimSpace(code); code != "" {
		return code
	}

	return settings.Currency
}

// currencyUnit parses code. Codes without a real currency behind them are
// rejected.
func currencyUnit(code string) (currency.Unit, bool) {
	unit, err := currency.ParseISO(code)
	if err != nil || unit == currency.XXX || unit == currency.XTS {
		return currency.Unit{}, false
	}

	return unit, true
}

func printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	return message.NewPrinter(tag)
}

// FormatCurrency formats amount in the given currency, or the configured one
// if code is empty, using the configured language as locale.
//
// Amounts in currencies that cannot be formatted are returned as
// "<code> <amount>".
func (s *Service) FormatCurrency(amount decimal.Decimal, code string) string {
	settings := s.GetSettings()
	code = effectiveCurrency(code, settings)

	unit, ok := currencyUnit(code)
	if !ok {
		s.log.Debug().Str("currency", code).Msg("formatting currency failed, using fallback")
		return fmt.Sprintf("%s %s", code, amount.String())
	}

	p := printer(settings.Language)
	scale, _ := currency.Standard.Rounding(unit)
	value, _ := amount.Abs().Round(int32(scale)).Float64()

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	return sign + p.Sprint(currency.Symbol(unit)) + p.Sprint(number.Decimal(value, number.Scale(scale)))
}

// GetCurrencySymbol returns the symbol of the given currency, or of the
// configured one if code is empty.
func (s *Service) GetCurrencySymbol(code string) string {
	settings := s.GetSettings()
	code = effectiveCurrency(code, settings)

	if unit, ok := currencyUnit(code); ok {
		symbol := strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.' || r == ',' {
				return -1
			}
			return r
		}, printer(settings.Language).Sprint(currency.Symbol(unit)))

		if symbol != "" {
			return symbol
		}
	}

	if symbol, ok := fallbackSymbols[strings.ToUpper(code)]; ok {
		return symbol
	}

	return code
}

// FormatDate formats t according to the configured date format.
func (s *Service) FormatDate(t time.Time) string {
	return FormatDate(t, s.GetSettings().DateFormat)
}

// FormatDate formats t in the given date format. Unknown formats are
// treated as DD/MM/YYYY.
func FormatDate(t time.Time, format models.DateFormat) string {
	switch format {
	case models.DateFormatMonthFirst:
		return t.Format("01/02/2006")
	case models.DateFormatISO:
		return t.Format("2006-01-02")
	default:
		return t.Format("02/01/2006")
	}
}
