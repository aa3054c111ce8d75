package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/middleware"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"go.uber.org/zap"
)

func (h *Handler) GetWalletOverview(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	accountID, ok := requestIDParam(r)
	if !ok {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	overview, err := h.spendingService.GetWalletOverview(r.Context(), accountID)
	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("wallet overview error", zap.Error(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(overview); err != nil {
		logger.Log.Error("failed to encode overview json", zap.Error(err))
	}
}

func (h *Handler) AcknowledgeFirstDrawdown(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	accountID, ok := requestIDParam(r)
	if !ok {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}

	err := h.accountService.AcknowledgeFirstDrawdown(r.Context(), accountID, userID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrAccountNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrWrongRole):
		http.Error(w, "only the account parent may acknowledge", http.StatusForbidden)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("acknowledge error", zap.Error(err))
	}
}

// CreateAccount is called by the onboarding flow, not end users.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ParentID     int64  `json:"parent_id"`
		StudentID    int64  `json:"student_id"`
		ProcessorRef string `json:"processor_account_ref"`
		DateOfBirth  string `json:"date_of_birth"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	id, err := h.accountService.CreateAccount(r.Context(), req.ParentID, req.StudentID, req.ProcessorRef, req.DateOfBirth)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]int64{"id": id})
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid account payload", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create account error", zap.Error(err))
	}
}

// AddFunds is invoked by the upstream milestone drawdown flow when project
// funds are released into the custodial wallet.
func (h *Handler) AddFunds(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID int64 `json:"custodial_account_id"`
		ProjectID int64 `json:"project_id"`
		Amount    int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.ledgerService.AddFunds(r.Context(), req.AccountID, req.ProjectID, req.Amount)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "amount must be positive", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("add funds error", zap.Error(err))
	}
}

// ProcessorEvent applies payment-processor callbacks (KYC status changes).
func (h *Handler) ProcessorEvent(w http.ResponseWriter, r *http.Request) {
	var event struct {
		Type         string `json:"type"`
		ProcessorRef string `json:"processor_account_ref"`
		KYCStatus    string `json:"kyc_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if event.Type != "kyc.updated" {
		// Unknown event types are acknowledged so the processor stops retrying.
		w.WriteHeader(http.StatusOK)
		return
	}

	err := h.accountService.UpdateKYCStatus(r.Context(), event.ProcessorRef, models.KYCStatus(event.KYCStatus))
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "unknown kyc status", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrAccountNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("processor event error", zap.Error(err))
	}
}
