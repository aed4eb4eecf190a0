package api

import (
	_ "inrwatch/docs"
	"inrwatch/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/latest-rate", rateHandler.GetLatestRate)
	router.Get("/api/rates", rateHandler.GetRates)
	router.Get("/api/cron-status", rateHandler.GetCronStatus)
	return router
}
