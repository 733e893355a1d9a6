package convert

import (
	"testing"

	"kursbot/internal/domain"

	"github.com/stretchr/testify/require"
)

func rateTable() *domain.RateTable {
	return &domain.RateTable{
		Date: "2026-08-25",
		Entries: map[domain.Code]domain.RateEntry{
			domain.USD: {Code: domain.USD, Value: 91.5, Previous: 90.8},
			domain.EUR: {Code: domain.EUR, Value: 99.2, Previous: 98.5},
			domain.CNY: {Code: domain.CNY, Value: 12.8, Previous: 12.7},
			domain.RUB: {Code: domain.RUB, Value: 1, Previous: 1},
		},
	}
}

func TestConvert_RubToRub_Identity(t *testing.T) {
	res, err := Convert(100, domain.RUB, domain.RUB, rateTable())
	require.NoError(t, err)
	require.InDelta(t, 100, res.ResultAmount, 1e-9)
}

func TestConvert_ToRub_MultipliesByFromRate(t *testing.T) {
	res, err := Convert(100, domain.USD, domain.RUB, rateTable())
	require.NoError(t, err)
	require.InDelta(t, 9150, res.ResultAmount, 1e-9)
	require.InDelta(t, 91.5, res.FromRate, 1e-9)
	require.Equal(t, "2026-08-25", res.AsOfDate)
}

func TestConvert_FromRub_DividesByToRate(t *testing.T) {
	res, err := Convert(1000, domain.RUB, domain.EUR, rateTable())
	require.NoError(t, err)
	require.InDelta(t, 1000/99.2, res.ResultAmount, 1e-9)
}

func TestConvert_CrossPair_RoutesThroughRub(t *testing.T) {
	res, err := Convert(50, domain.EUR, domain.USD, rateTable())
	require.NoError(t, err)
	require.InDelta(t, 54.21, res.ResultAmount, 0.01)
}

func TestConvert_RoundTrip(t *testing.T) {
	table := rateTable()
	pairs := []struct{ a, b domain.Code }{
		{domain.USD, domain.EUR},
		{domain.EUR, domain.CNY},
		{domain.RUB, domain.USD},
		{domain.CNY, domain.RUB},
	}
	for _, p := range pairs {
		there, err := Convert(123.45, p.a, p.b, table)
		require.NoError(t, err)
		back, err := Convert(there.ResultAmount, p.b, p.a, table)
		require.NoError(t, err)
		require.InDelta(t, 123.45, back.ResultAmount, 0.01, "%s<->%s", p.a, p.b)
	}
}

func TestConvert_MissingCurrency(t *testing.T) {
	_, err := Convert(10, domain.KZT, domain.RUB, rateTable())
	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)

	_, err = Convert(10, domain.USD, domain.KZT, rateTable())
	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
}

func TestConvert_WorksWithoutRubEntry(t *testing.T) {
	// RUB carries an implicit rate: a fetched table missing the RUB row
	// must still convert to and from RUB.
	table := &domain.RateTable{
		Date: "2026-08-25",
		Entries: map[domain.Code]domain.RateEntry{
			domain.USD: {Code: domain.USD, Value: 91.5, Previous: 90.8},
		},
	}

	res, err := Convert(100, domain.USD, domain.RUB, table)
	require.NoError(t, err)
	require.InDelta(t, 9150, res.ResultAmount, 1e-9)

	res, err = Convert(915, domain.RUB, domain.USD, table)
	require.NoError(t, err)
	require.InDelta(t, 10, res.ResultAmount, 1e-9)
}
