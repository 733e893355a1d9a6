package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"kursbot/internal/bot"
)

type Dispatcher interface {
	Handle(ctx context.Context, text string) bot.Result
}

type Handler struct {
	dispatcher Dispatcher
	rates      bot.RateProvider
}

func NewBotHandler(dispatcher Dispatcher, rates bot.RateProvider) *Handler {
	return &Handler{dispatcher: dispatcher, rates: rates}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}
