package handler

import (
	"encoding/json"
	"net/http"

	"kursbot/internal/domain"
)

type RateView struct {
	Code          string  `json:"code"`
	Value         float64 `json:"value"`
	Previous      float64 `json:"previous"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

type GetRatesResponse struct {
	Date  string     `json:"date"`
	Rates []RateView `json:"rates"`
}

// GetRates returns the current rate table. The provider never fails, so
// this endpoint always answers 200 with a usable table.
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	table := h.rates.GetRates(r.Context())

	views := make([]RateView, 0, len(table.Entries))
	for _, code := range domain.SupportedCodes() {
		entry, ok := table.Entry(code)
		if !ok {
			continue
		}
		views = append(views, RateView{
			Code:          string(entry.Code),
			Value:         entry.Value,
			Previous:      entry.Previous,
			Change:        entry.Change,
			ChangePercent: entry.ChangePercent,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(GetRatesResponse{Date: table.Date, Rates: views})
}
