package convert

import (
	"strings"

	"kursbot/internal/domain"
)

// currencyAliases maps free-text currency mentions to canonical codes:
// symbols, Russian inflected forms and English names.
var currencyAliases = map[string]domain.Code{
	// Symbols
	"$": domain.USD,
	"€": domain.EUR,
	"₽": domain.RUB,

	// Russian forms
	"рубль": domain.RUB, "рубля": domain.RUB, "рубли": domain.RUB, "рублей": domain.RUB,
	"руб": domain.RUB, "р": domain.RUB,
	"доллар": domain.USD, "доллара": domain.USD, "доллары": domain.USD, "долларов": domain.USD,
	"евро":  domain.EUR,
	"юань":  domain.CNY, "юаня": domain.CNY, "юани": domain.CNY, "юаней": domain.CNY,
	"фунт":  domain.GBP, "фунта": domain.GBP, "фунты": domain.GBP, "фунтов": domain.GBP,
	"иена":  domain.JPY, "иены": domain.JPY, "иен": domain.JPY,
	"франк": domain.CHF, "франка": domain.CHF, "франки": domain.CHF, "франков": domain.CHF,
	"лира":  domain.TRY, "лиры": domain.TRY, "лир": domain.TRY,
	"тенге": domain.KZT,

	// English forms
	"ruble": domain.RUB, "rubles": domain.RUB,
	"dollar": domain.USD, "dollars": domain.USD,
	"euro": domain.EUR, "euros": domain.EUR,
	"yuan":  domain.CNY,
	"pound": domain.GBP, "pounds": domain.GBP,
	"yen":  domain.JPY,
	"franc": domain.CHF, "francs": domain.CHF,
	"lira":  domain.TRY,
	"tenge": domain.KZT,
}

// Normalize maps a free-text currency token to its canonical code.
// Matching is exact: fuzzy matching would turn stray words into currencies.
// Raw ISO codes ("usd", "RUB") resolve through the supported-code set.
func Normalize(token string) (domain.Code, bool) {
	clean := strings.ToLower(strings.TrimSpace(token))
	if code, ok := currencyAliases[clean]; ok {
		return code, true
	}
	if code := domain.Code(strings.ToUpper(clean)); domain.IsSupported(code) {
		return code, true
	}
	return "", false
}
