package handler

import (
	"net/http"

	"inrwatch/internal/domain"

	"github.com/sirupsen/logrus"
)

type RatesResponse struct {
	Success bool                     `json:"success"`
	Data    []domain.RateObservation `json:"data"`
}

func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	observations, err := h.service.History(r.Context())
	if err != nil {
		msg := "ups, couldn't get rate history this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetRates"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	if observations == nil {
		observations = []domain.RateObservation{}
	}
	writeJSON(w, http.StatusOK, RatesResponse{Success: true, Data: observations})
}
