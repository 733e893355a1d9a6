package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kursbot/internal/bot"
	"kursbot/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Handle(ctx context.Context, text string) bot.Result {
	args := m.Called(ctx, text)
	res, _ := args.Get(0).(bot.Result)
	return res
}

type stubRates struct {
	table *domain.RateTable
}

func (s *stubRates) GetRates(_ context.Context) *domain.RateTable {
	return s.table
}

type errorJSON struct {
	Error string `json:"error"`
}

// --- HandleMessage ---

func TestHandler_HandleMessage_Handled(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Handle", mock.Anything, "100 USD to RUB").
		Return(bot.Result{Status: bot.StatusHandled, Reply: "9150.00 RUB"}).Once()
	h := NewBotHandler(dispatcher, &stubRates{})

	body, _ := json.Marshal(HandleMessageRequest{Text: "100 USD to RUB"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleMessage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HandleMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "handled", resp.Status)
	require.Equal(t, "9150.00 RUB", resp.Reply)
	dispatcher.AssertExpectations(t)
}

func TestHandler_HandleMessage_NotMatched(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Handle", mock.Anything, "привет").
		Return(bot.Result{Status: bot.StatusNotMatched}).Once()
	h := NewBotHandler(dispatcher, &stubRates{})

	body, _ := json.Marshal(HandleMessageRequest{Text: "привет"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleMessage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HandleMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "not_matched", resp.Status)
	require.Empty(t, resp.Reply)
}

func TestHandler_HandleMessage_EmptyText(t *testing.T) {
	h := NewBotHandler(new(MockDispatcher), &stubRates{})

	body, _ := json.Marshal(HandleMessageRequest{Text: "   "})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleMessage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "text is required", resp.Error)
}

func TestHandler_HandleMessage_InvalidBody(t *testing.T) {
	h := NewBotHandler(new(MockDispatcher), &stubRates{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	h.HandleMessage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// --- GetRates ---

func TestHandler_GetRates(t *testing.T) {
	rates := &stubRates{table: &domain.RateTable{
		Date: "2026-08-25",
		Entries: map[domain.Code]domain.RateEntry{
			domain.USD: {Code: domain.USD, Value: 91.5, Previous: 90.8, Change: 0.7, ChangePercent: 0.77},
			domain.RUB: {Code: domain.RUB, Value: 1, Previous: 1},
		},
	}}
	h := NewBotHandler(new(MockDispatcher), rates)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil)
	rec := httptest.NewRecorder()

	h.GetRates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GetRatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2026-08-25", resp.Date)
	require.Len(t, resp.Rates, 2)
	// SupportedCodes is sorted, so RUB comes before USD.
	require.Equal(t, "RUB", resp.Rates[0].Code)
	require.Equal(t, "USD", resp.Rates[1].Code)
	require.InDelta(t, 91.5, resp.Rates[1].Value, 1e-9)
}
