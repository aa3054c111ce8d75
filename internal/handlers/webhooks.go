package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
	"go.uber.org/zap"
)

// CardAuthorization answers the card network's synchronous authorization
// request. The provider times out fast, so this path does lookups only and
// always returns a decision body on success.
func (h *Handler) CardAuthorization(w http.ResponseWriter, r *http.Request) {
	var req models.AuthorizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	decision, err := h.authorizer.Authorize(r.Context(), req)
	if err != nil {
		// Fail closed: an infrastructure error must never approve a charge.
		logger.Log.Error("authorization decision error", zap.Error(err))
		decision = models.AuthorizationDecision{Approved: false, Reason: "authorization unavailable"}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(decision); err != nil {
		logger.Log.Error("failed to encode decision json", zap.Error(err))
	}
}

// CardEvent applies asynchronous card-network events. Bookkeeping happens
// here, never in the synchronous decision path.
func (h *Handler) CardEvent(w http.ResponseWriter, r *http.Request) {
	var event models.CardEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	var err error
	switch event.Type {
	case "authorization.created":
		err = h.authorizer.HandleAuthorizationCreated(r.Context(), event.CardRef, event.AuthorizationRef)
	case "transaction.completed":
		err = h.authorizer.HandleTransactionCompleted(r.Context(), event.AuthorizationRef)
	case "card.issued":
		_, err = h.cardService.RegisterCard(r.Context(), event.AccountID, event.ProjectID, event.CardRef, event.LastFour)
	default:
		w.WriteHeader(http.StatusOK)
		return
	}

	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, repository.ErrNoCard), errors.Is(err, apperrors.ErrRequestNotFound):
		// Nothing to apply the event to; acknowledge so the provider stops
		// retrying a permanently unmatchable event.
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		http.Error(w, "invalid event payload", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("card event error", zap.String("type", event.Type), zap.Error(err))
	}
}
