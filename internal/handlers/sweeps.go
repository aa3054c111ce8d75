package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/service"
	"go.uber.org/zap"
)

func (h *Handler) RunFundingSweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.sweeps.RunFundingSweep(r.Context())
	h.writeSweepReport(w, report, err, "funding sweep")
}

func (h *Handler) RunReceiptSweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.sweeps.RunReceiptSweep(r.Context())
	h.writeSweepReport(w, report, err, "receipt sweep")
}

func (h *Handler) writeSweepReport(w http.ResponseWriter, report service.SweepReport, err error, name string) {
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error(name+" failed", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		logger.Log.Error("failed to encode sweep report", zap.Error(err))
	}
}
