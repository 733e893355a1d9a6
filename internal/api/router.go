package api

import (
	"kursbot/internal/bot/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(botHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Post("/api/v1/messages", botHandler.HandleMessage)
	router.Get("/api/v1/rates", botHandler.GetRates)
	return router
}
