package handler

import (
	"errors"
	"net/http"

	"inrwatch/internal/domain"

	"github.com/sirupsen/logrus"
)

type LatestRateResponse struct {
	Success bool                    `json:"success"`
	Data    *domain.RateObservation `json:"data"`
}

// GetLatestRate godoc
// @Summary Get the latest stored USD/INR rate
// @Description Returns the most recently inserted observation
// @Tags Rates
// @Produce json
// @Success 200 {object} LatestRateResponse
// @Failure 404 {object} errorResponse "no data available"
// @Failure 500 {object} errorResponse
// @Router /latest-rate [get]
func (h *Handler) GetLatestRate(w http.ResponseWriter, r *http.Request) {
	obs, err := h.service.Latest(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoObservations) {
			writeError(w, http.StatusNotFound, "No data available")
			return
		}
		msg := "ups, couldn't get the latest rate this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetLatestRate"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, LatestRateResponse{Success: true, Data: obs})
}
