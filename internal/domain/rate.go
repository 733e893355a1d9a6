package domain

// RateEntry is the rate of one currency against RUB, with its previous value
// and the resulting day-over-day movement. The RUB entry itself is synthetic
// and always carries Value == Previous == 1.
type RateEntry struct {
	Code          Code
	Value         float64
	Previous      float64
	Change        float64
	ChangePercent float64
}

// RateTable is an immutable snapshot of rates keyed by currency code, plus
// the source's as-of date (YYYY-MM-DD). Snapshots are replaced wholesale on
// refresh, never mutated in place.
type RateTable struct {
	Date    string
	Entries map[Code]RateEntry
}

func (t *RateTable) Entry(code Code) (RateEntry, bool) {
	e, ok := t.Entries[code]
	return e, ok
}
