package rates

import (
	"context"
	"time"

	"kursbot/internal/adapters/httpclient"
	"kursbot/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

type RateSource interface {
	GetDailyRates(ctx context.Context) (*httpclient.DailyRates, error)
}

type TableCache interface {
	Get() (*domain.RateTable, bool)
	Set(table *domain.RateTable)
}

const fetchKey = "cbr_rates"

// Provider serves the current rate table: cached snapshot first, then a
// fresh fetch, then the static fallback. It never fails outward.
type Provider struct {
	source RateSource
	cache  TableCache
	group  singleflight.Group
}

func NewProvider(source RateSource, cache TableCache) *Provider {
	return &Provider{source: source, cache: cache}
}

// GetRates always returns a usable table. Concurrent cache misses are
// collapsed into one upstream fetch; a failed fetch serves the fallback
// table without caching it, so the next miss retries the source.
func (p *Provider) GetRates(ctx context.Context) *domain.RateTable {
	if table, ok := p.cache.Get(); ok {
		logrus.Debug("Serving cached rate table")
		return table
	}

	v, _, _ := p.group.Do(fetchKey, func() (interface{}, error) {
		table, err := p.Refresh(ctx)
		if err != nil {
			logrus.WithError(err).Warn("Rate source unavailable, serving fallback table")
			return FallbackTable(time.Now()), nil
		}
		return table, nil
	})
	return v.(*domain.RateTable)
}

// Refresh fetches a fresh snapshot from the source and stores it in the
// cache. Used by GetRates on a miss and by the warm-refresh scheduler.
func (p *Provider) Refresh(ctx context.Context) (*domain.RateTable, error) {
	daily, err := p.source.GetDailyRates(ctx)
	if err != nil {
		return nil, err
	}
	table := buildTable(daily)
	p.cache.Set(table)
	logrus.WithField("date", table.Date).Info("Rate table refreshed from source")
	return table, nil
}

func buildTable(daily *httpclient.DailyRates) *domain.RateTable {
	entries := make(map[domain.Code]domain.RateEntry, len(domain.SupportedCurrencies))
	for code, quote := range daily.Valute {
		c := domain.Code(code)
		if !domain.IsSupported(c) || c == domain.RUB {
			continue
		}
		entries[c] = newEntry(c, quote.Value, quote.Previous)
	}
	// RUB is the base currency and never appears in the source payload.
	entries[domain.RUB] = domain.RateEntry{Code: domain.RUB, Value: 1, Previous: 1}

	date := daily.Date
	if len(date) > 10 {
		date = date[:10]
	}
	return &domain.RateTable{Date: date, Entries: entries}
}

// newEntry computes day-over-day movement. A non-positive previous value
// clamps the movement to zero instead of dividing by it.
func newEntry(code domain.Code, value, previous float64) domain.RateEntry {
	e := domain.RateEntry{Code: code, Value: value, Previous: previous}
	if previous > 0 {
		e.Change = value - previous
		e.ChangePercent = e.Change / previous * 100
	}
	return e
}
