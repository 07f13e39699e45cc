package models

import (
	"errors"
)

var (
	ErrGeneral                = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound       = errors.New("there is no")
	ErrIDMissing              = errors.New("the id must be set")
	ErrDateMissing            = errors.New("the date must be set")
	ErrAmountNotPositive      = errors.New("the amount must be positive")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be one of 'income', 'expense'")
	ErrCategoryRequired       = errors.New("the category must not be empty")
	ErrNameRequired           = errors.New("the name must not be empty")
	ErrGoalPriorityInvalid    = errors.New("the goal priority must be one of 'low', 'medium', 'high'")
	ErrGoalDeadlineNotFuture  = errors.New("the goal deadline must be in the future")
	ErrUnknownSetting         = errors.New("there is no setting with this key, valid keys are 'currency', 'dateFormat', 'language'")
	ErrDateFormatInvalid      = errors.New("the date format must be one of 'MM/DD/YYYY', 'DD/MM/YYYY', 'YYYY-MM-DD'")
	ErrCurrencyInvalid        = errors.New("the currency must be a three letter code")
)
