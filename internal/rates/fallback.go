package rates

import (
	"time"

	"kursbot/internal/domain"
)

// FallbackTable is the static snapshot served when the rate source is
// unreachable. Values are plausible, not live; the table is never cached,
// so a fresh fetch is attempted on the next miss.
func FallbackTable(now time.Time) *domain.RateTable {
	entries := map[domain.Code]domain.RateEntry{
		domain.USD: newEntry(domain.USD, 91.5, 90.8),
		domain.EUR: newEntry(domain.EUR, 99.2, 98.5),
		domain.CNY: newEntry(domain.CNY, 12.8, 12.7),
		domain.GBP: newEntry(domain.GBP, 115.3, 114.9),
		domain.JPY: newEntry(domain.JPY, 0.61, 0.60),
		domain.CHF: newEntry(domain.CHF, 105.2, 104.8),
		domain.TRY: newEntry(domain.TRY, 2.8, 2.7),
		domain.KZT: newEntry(domain.KZT, 0.19, 0.19),
		domain.RUB: {Code: domain.RUB, Value: 1, Previous: 1},
	}
	return &domain.RateTable{Date: now.Format("2006-01-02"), Entries: entries}
}
