package convert

import (
	"fmt"

	"kursbot/internal/domain"
)

// Convert computes amount in the target currency, routing through RUB as
// the base. The three-branch dispatch is deliberate: RUB carries an
// implicit rate of 1.0 and its entry must never be looked up, so a table
// without a RUB row still converts correctly.
func Convert(amount float64, from, to domain.Code, table *domain.RateTable) (domain.ConversionResult, error) {
	fromRate := 1.0
	if from != domain.RUB {
		entry, ok := table.Entry(from)
		if !ok {
			return domain.ConversionResult{}, fmt.Errorf("%s: %w", from, domain.ErrCurrencyNotFound)
		}
		fromRate = entry.Value
	}

	toRate := 1.0
	if to != domain.RUB {
		entry, ok := table.Entry(to)
		if !ok {
			return domain.ConversionResult{}, fmt.Errorf("%s: %w", to, domain.ErrCurrencyNotFound)
		}
		toRate = entry.Value
	}

	var result float64
	switch {
	case from == domain.RUB:
		result = amount / toRate
	case to == domain.RUB:
		result = amount * fromRate
	default:
		result = (amount * fromRate) / toRate
	}

	return domain.ConversionResult{
		Request:      domain.ConversionRequest{Amount: amount, From: from, To: to},
		ResultAmount: result,
		FromRate:     fromRate,
		ToRate:       toRate,
		AsOfDate:     table.Date,
	}, nil
}
