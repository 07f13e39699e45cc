package models

import (
	"regexp"
	"strings"
)

// DateFormat is one of the supported date display patterns.
type DateFormat string

const (
	DateFormatMonthFirst DateFormat = "MM/DD/YYYY"
	DateFormatDayFirst   DateFormat = "DD/MM/YYYY"
	DateFormatISO        DateFormat = "YYYY-MM-DD"
)

// Valid reports whether f is a supported date format.
func (f DateFormat) Valid() bool {
	return f == DateFormatMonthFirst || f == DateFormatDayFirst || f == DateFormatISO
}

// SettingKey names a single field of UserSettings.
type SettingKey string

const (
	SettingCurrency   SettingKey = "currency"
	SettingDateFormat SettingKey = "dateFormat"
	SettingLanguage   SettingKey = "language"
)

// UserSettings are the process-wide user preferences.
type UserSettings struct {
	Currency   string     `json:"currency" example:"INR"`          // ISO 4217 currency code
	DateFormat DateFormat `json:"dateFormat" example:"DD/MM/YYYY"` // Date display pattern
	Language   string     `json:"language" example:"en-US"`        // BCP 47 locale tag
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() UserSettings {
	return UserSettings{
		Currency:   "INR",
		DateFormat: DateFormatDayFirst,
		Language:   "en-US",
	}
}

var currencyCode = regexp.MustCompile(`^[A-Za-z]{3}$`)

// With returns a copy of the settings with the field named by key set to value.
func (s UserSettings) With(key SettingKey, value string) (UserSettings, error) {
	value = strings.TrimSpace(value)

	switch key {
	case SettingCurrency:
		if !currencyCode.MatchString(value) {
			return s, ErrCurrencyInvalid
		}
		s.Currency = strings.ToUpper(value)
	case SettingDateFormat:
		if !DateFormat(value).Valid() {
			return s, ErrDateFormatInvalid
		}
		s.DateFormat = DateFormat(value)
	case SettingLanguage:
		s.Language = value
	default:
		return s, ErrUnknownSetting
	}

	return s, nil
}

// Get returns the value of the field named by key.
func (s UserSettings) Get(key SettingKey) (string, error) {
	switch key {
	case SettingCurrency:
		return s.Currency, nil
	case SettingDateFormat:
		return string(s.DateFormat), nil
	case SettingLanguage:
		return s.Language, nil
	}

	return "", ErrUnknownSetting
}
