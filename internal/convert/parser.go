package convert

import (
	"regexp"
	"strconv"
	"strings"

	"kursbot/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	amountGroup = `(\d+(?:[.,]\d+)?)`
	tokenGroup  = `([a-zа-яё]{2,})`
)

// rule is one matcher/extractor pair. Rules are evaluated in listed order
// and the first rule that both matches and extracts wins.
type rule struct {
	re      *regexp.Regexp
	extract func(match []string, original string) (domain.ConversionRequest, bool)
}

// Parser detects conversion intent in free-form text. A denylist of the
// bot's own menu labels is checked before any pattern so button presses are
// never parsed as requests.
type Parser struct {
	denylist map[string]struct{}
	rules    []rule
}

func NewParser(denylist []string) *Parser {
	banned := make(map[string]struct{}, len(denylist))
	for _, label := range denylist {
		banned[strings.TrimSpace(label)] = struct{}{}
	}
	return &Parser{denylist: banned, rules: conversionRules}
}

// Parse returns the extracted request and true on a match. False means
// "no conversion intent": the caller continues to other handlers.
func (p *Parser) Parse(text string) (domain.ConversionRequest, bool) {
	trimmed := strings.TrimSpace(text)
	if _, banned := p.denylist[trimmed]; banned {
		return domain.ConversionRequest{}, false
	}

	lower := strings.ToLower(trimmed)
	for _, r := range p.rules {
		match := r.re.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		req, ok := r.extract(match, trimmed)
		if !ok {
			// Matched shape but tokens did not resolve; try the next rule.
			logrus.WithField("text", trimmed).Debug("Pattern matched but currency tokens did not resolve")
			continue
		}
		return req, true
	}
	return domain.ConversionRequest{}, false
}

// conversionRules: special-case pair patterns first. The most frequent
// pairs hard-code both codes so they resolve deterministically without the
// normalizer; general token extraction runs only after them.
var conversionRules = []rule{
	{
		re:      regexp.MustCompile(amountGroup + `\s*\$?\s*(?:доллар[а-яё]*|usd|\$)\s*(?:в|to)\s*(?:рубл[а-яё]*|rub)`),
		extract: fixedPair(domain.USD, domain.RUB),
	},
	{
		re:      regexp.MustCompile(amountGroup + `\s*(?:евро|eur)\s*(?:в|to)\s*(?:рубл[а-яё]*|rub)`),
		extract: fixedPair(domain.EUR, domain.RUB),
	},
	{
		re:      regexp.MustCompile(amountGroup + `\s*(?:рубл[а-яё]*|rub)\s*(?:в|to)\s*(?:доллар[а-яё]*|\$|usd)`),
		extract: fixedPair(domain.RUB, domain.USD),
	},
	{
		re:      regexp.MustCompile(amountGroup + `\s*(?:рубл[а-яё]*|rub)\s*(?:в|to)\s*(?:евро|eur)`),
		extract: fixedPair(domain.RUB, domain.EUR),
	},
	{
		re:      regexp.MustCompile(amountGroup + `\s*` + tokenGroup + `\s+(?:в|to|->)\s+` + tokenGroup),
		extract: normalizedPair,
	},
	{
		re:      regexp.MustCompile(`(?:конвертировать|перевести)\s+` + amountGroup + `\s+` + tokenGroup + `\s+в\s+` + tokenGroup),
		extract: normalizedPair,
	},
}

func fixedPair(from, to domain.Code) func([]string, string) (domain.ConversionRequest, bool) {
	return func(match []string, original string) (domain.ConversionRequest, bool) {
		amount, ok := parseAmount(match[1])
		if !ok {
			return domain.ConversionRequest{}, false
		}
		return domain.ConversionRequest{Amount: amount, From: from, To: to, OriginalText: original}, true
	}
}

func normalizedPair(match []string, original string) (domain.ConversionRequest, bool) {
	amount, ok := parseAmount(match[1])
	if !ok {
		return domain.ConversionRequest{}, false
	}
	from, ok := Normalize(match[2])
	if !ok {
		return domain.ConversionRequest{}, false
	}
	to, ok := Normalize(match[3])
	if !ok {
		return domain.ConversionRequest{}, false
	}
	return domain.ConversionRequest{Amount: amount, From: from, To: to, OriginalText: original}, true
}

// parseAmount converts a matched numeric group, accepting "," as the
// decimal separator. A non-positive or unparseable amount rejects the rule.
func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
