package convert

import (
	"fmt"
	"strings"
	"time"

	"kursbot/internal/domain"

	"github.com/leekchan/accounting"
)

var currencyFlags = map[domain.Code]string{
	domain.USD: "🇺🇸",
	domain.EUR: "🇪🇺",
	domain.CNY: "🇨🇳",
	domain.GBP: "🇬🇧",
	domain.JPY: "🇯🇵",
	domain.CHF: "🇨🇭",
	domain.TRY: "🇹🇷",
	domain.KZT: "🇰🇿",
	domain.RUB: "🇷🇺",
}

func flag(code domain.Code) string {
	if f, ok := currencyFlags[code]; ok {
		return f
	}
	return "💱"
}

// formatAmount renders to two decimals with no thousand separator, so
// replies read "9150.00 RUB".
func formatAmount(v float64) string {
	return accounting.FormatNumber(v, 2, "", ".")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// FormatConversion renders a conversion result as a Markdown reply.
func FormatConversion(res domain.ConversionResult) string {
	req := res.Request

	var b strings.Builder
	b.WriteString("💱 *Результат конвертации:*\n\n")
	fmt.Fprintf(&b, "💰 *%s %s* (%s) = *%s %s* (%s)\n\n",
		formatAmount(req.Amount), req.From, domain.Name(req.From),
		formatAmount(res.ResultAmount), req.To, domain.Name(req.To))

	if req.From != domain.RUB {
		fmt.Fprintf(&b, "📊 Курс %s: %s RUB\n", req.From, formatAmount(res.FromRate))
	}
	if req.To != domain.RUB {
		fmt.Fprintf(&b, "📊 Курс %s: %s RUB\n", req.To, formatAmount(res.ToRate))
	}

	fmt.Fprintf(&b, "\n🕐 *Курсы ЦБ РФ на %s*", orNA(res.AsOfDate))
	return b.String()
}

var fiatBoardCodes = []domain.Code{domain.USD, domain.EUR, domain.CNY, domain.GBP}

// FormatFiatRates renders the main-currencies board.
func FormatFiatRates(table *domain.RateTable, now time.Time) string {
	var b strings.Builder
	b.WriteString("💵 *Курсы ЦБ РФ на сегодня*\n\n")
	for _, code := range fiatBoardCodes {
		entry, ok := table.Entry(code)
		if !ok {
			fmt.Fprintf(&b, "%s *%s:* N/A\n", flag(code), code)
			continue
		}
		fmt.Fprintf(&b, "%s *%s:* %s ₽ (%+.2f)\n", flag(code), code, formatAmount(entry.Value), entry.Change)
	}
	fmt.Fprintf(&b, "\n🕐 *Обновлено:* %s\n📅 *Дата:* %s", now.Format("15:04"), orNA(table.Date))
	return b.String()
}

var allRatesCodes = []domain.Code{
	domain.USD, domain.EUR, domain.CNY, domain.GBP,
	domain.JPY, domain.CHF, domain.TRY, domain.KZT,
}

// FormatAllRates renders the full rate list.
func FormatAllRates(table *domain.RateTable, now time.Time) string {
	var b strings.Builder
	b.WriteString("📊 *Все курсы ЦБ РФ*\n\n")
	for _, code := range allRatesCodes {
		entry, ok := table.Entry(code)
		if !ok {
			fmt.Fprintf(&b, "• %s *%s:* N/A\n", flag(code), code)
			continue
		}
		fmt.Fprintf(&b, "• %s *%s:* %s ₽\n", flag(code), code, formatAmount(entry.Value))
	}
	fmt.Fprintf(&b, "\n🕐 *Обновлено:* %s\n📅 *Дата:* %s", now.Format("15:04"), orNA(table.Date))
	return b.String()
}

var changesCodes = []domain.Code{domain.USD, domain.EUR, domain.CNY}

// FormatChanges renders day-over-day movement with trend markers.
func FormatChanges(table *domain.RateTable, now time.Time) string {
	var b strings.Builder
	b.WriteString("📈 *Изменения курсов за сутки*\n\n")
	for _, code := range changesCodes {
		entry, ok := table.Entry(code)
		if !ok {
			continue
		}
		trend := "➡️"
		if entry.Change > 0 {
			trend = "📈"
		} else if entry.Change < 0 {
			trend = "📉"
		}
		fmt.Fprintf(&b, "%s %s *%s:* %+.2f ₽ (%+.1f%%)\n", trend, flag(code), code, entry.Change, entry.ChangePercent)
	}
	fmt.Fprintf(&b, "\n🕐 *Обновлено:* %s", now.Format("15:04"))
	return b.String()
}
