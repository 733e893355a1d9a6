package domain

import (
	"maps"
	"slices"
)

// Code is a canonical 3-letter currency code.
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	CNY Code = "CNY"
	JPY Code = "JPY"
	CHF Code = "CHF"
	TRY Code = "TRY"
	KZT Code = "KZT"
	RUB Code = "RUB"
)

// SupportedCurrencies maps every supported code to its Russian display name.
var SupportedCurrencies = map[Code]string{
	USD: "Доллар США",
	EUR: "Евро",
	GBP: "Фунт стерлингов",
	CNY: "Китайский юань",
	JPY: "Японская иена",
	CHF: "Швейцарский франк",
	TRY: "Турецкая лира",
	KZT: "Казахстанский тенге",
	RUB: "Российский рубль",
}

func IsSupported(code Code) bool {
	_, ok := SupportedCurrencies[code]
	return ok
}

// Name returns the display name for a code, falling back to the code itself.
func Name(code Code) string {
	if name, ok := SupportedCurrencies[code]; ok {
		return name
	}
	return string(code)
}

// SupportedCodes returns all supported codes in sorted order.
func SupportedCodes() []Code {
	codes := slices.Collect(maps.Keys(SupportedCurrencies))
	slices.Sort(codes)
	return codes
}
