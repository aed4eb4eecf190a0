package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"inrwatch/internal/domain"
)

type RateService interface {
	Latest(ctx context.Context) (*domain.RateObservation, error)
	History(ctx context.Context) ([]domain.RateObservation, error)
}

type StatusJournal interface {
	Tail(n int) ([]string, error)
}

type Handler struct {
	service RateService
	journal StatusJournal
}

func NewRateHandler(service RateService, journal StatusJournal) *Handler {
	return &Handler{service: service, journal: journal}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Success: false,
		Message: errorMsg,
	})
}
