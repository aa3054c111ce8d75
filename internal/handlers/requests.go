package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/middleware"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func requestIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) CreateSpendingRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	id, err := h.spendingService.Create(r.Context(), userID, req)

	var policyErr *apperrors.PolicyError
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]int64{"id": id})
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrMissingVendor):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &policyErr):
		http.Error(w, policyErr.Reason, http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrAccountNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "not permitted for this account", http.StatusForbidden)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create spending request error", zap.Error(err))
	}
}

func (h *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	role, ok := middleware.GetRole(r.Context())
	if !ok || (role != string(models.RoleParent) && role != string(models.RoleMentor)) {
		http.Error(w, "role not permitted to decide", http.StatusForbidden)
		return
	}

	requestID, ok := requestIDParam(r)
	if !ok {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	var req models.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.spendingService.Decide(r.Context(), requestID, userID, models.ApproverRole(role), req.Decision, req.Reason)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrRequestNotFound):
		http.Error(w, "request not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrWrongRole):
		http.Error(w, "decision not permitted for this role", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrAlreadyProcessed):
		http.Error(w, "decision already processed", http.StatusConflict)
	case errors.Is(err, apperrors.ErrAckRequired):
		http.Error(w, "first drawdown acknowledgement required", http.StatusPreconditionFailed)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid decision", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("decide error", zap.Error(err))
	}
}

func (h *Handler) Reverse(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	requestID, ok := requestIDParam(r)
	if !ok {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	err := h.spendingService.Reverse(r.Context(), requestID, userID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrRequestNotFound):
		http.Error(w, "request not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrWrongRole):
		http.Error(w, "not an approver on this request", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrNotReversible):
		http.Error(w, "request can only be reversed while approved", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("reverse error", zap.Error(err))
	}
}

func (h *Handler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	requestID, ok := requestIDParam(r)
	if !ok {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.spendingService.UploadReceipt(r.Context(), requestID, userID, req.URL)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrRequestNotFound):
		http.Error(w, "request not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrWrongRole):
		http.Error(w, "only the requesting student may upload the receipt", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "receipt not accepted in the current state", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("upload receipt error", zap.Error(err))
	}
}

func (h *Handler) ListApprovals(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	requestID, ok := requestIDParam(r)
	if !ok {
		http.Error(w, "invalid request id", http.StatusBadRequest)
		return
	}

	logs, err := h.spendingService.ListApprovals(r.Context(), requestID)
	switch {
	case errors.Is(err, apperrors.ErrRequestNotFound):
		http.Error(w, "request not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("list approvals error", zap.Error(err))
		return
	}

	if len(logs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(logs); err != nil {
		logger.Log.Error("failed to encode approvals json", zap.Error(err))
	}
}
