package domain

import "errors"

var ErrCurrencyNotFound = errors.New("currency not found in rate table")
