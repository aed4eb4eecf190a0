package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

const statusLines = 10

type CronStatusResponse struct {
	Success bool     `json:"success"`
	Logs    []string `json:"logs"`
}

// GetCronStatus returns the last entries of the ingestion journal, oldest first.
func (h *Handler) GetCronStatus(w http.ResponseWriter, r *http.Request) {
	lines, err := h.journal.Tail(statusLines)
	if err != nil {
		msg := "ups, couldn't read the cron journal this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetCronStatus"}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, CronStatusResponse{Success: true, Logs: lines})
}
