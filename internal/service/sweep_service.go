package service

import (
	"context"
	"errors"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/metrics"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/Stratton1/futurepreneurs-sub002/internal/notification"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
	"go.uber.org/zap"
)

const (
	receiptReminderAfter = 24 * time.Hour
	receiptEscalateAfter = 48 * time.Hour
)

// SweepReport summarizes one sweep invocation.
type SweepReport struct {
	Funded    int `json:"funded"`
	Completed int `json:"completed"`
	Expired   int `json:"expired"`
	Reminded  int `json:"reminded"`
}

// SweepService runs the periodic reconciliation passes. Both passes are
// idempotent and safe to run concurrently with themselves: every transition
// is a row-level guard-and-set, so a request is only ever advanced once.
type SweepService interface {
	RunFundingSweep(ctx context.Context) (SweepReport, error)
	RunReceiptSweep(ctx context.Context) (SweepReport, error)
}

type sweepService struct {
	requestRepo repository.RequestRepository
	ledger      LedgerService
	cards       CardService
	notifier    notification.Notifier
}

func NewSweepService(requestRepo repository.RequestRepository, ledger LedgerService, cards CardService, notifier notification.Notifier) SweepService {
	return &sweepService{
		requestRepo: requestRepo,
		ledger:      ledger,
		cards:       cards,
		notifier:    notifier,
	}
}

func (s *sweepService) RunFundingSweep(ctx context.Context) (SweepReport, error) {
	var report SweepReport
	now := time.Now()

	ready, err := s.requestRepo.ListApprovedReadyForFunding(ctx, now)
	if err != nil {
		return report, err
	}
	for _, req := range ready {
		if s.fundRequest(ctx, req) {
			report.Funded++
		}
	}

	lapsed, err := s.requestRepo.ListFundedWindowExpired(ctx, now)
	if err != nil {
		return report, err
	}
	for _, req := range lapsed {
		completed, expired := s.closeLapsedRequest(ctx, req)
		if completed {
			report.Completed++
		}
		if expired {
			report.Expired++
		}
	}

	return report, nil
}

// fundRequest moves one cooled-off approval to funded: hold funds, unfreeze
// the card, then commit the transition. Any failure unwinds the hold and
// leaves the request approved for the next pass.
func (s *sweepService) fundRequest(ctx context.Context, req models.SpendingRequest) bool {
	balance, err := s.ledger.GetBalance(ctx, req.CustodialAccountID, req.ProjectID)
	if err != nil {
		logger.Log.Error("funding sweep: failed to load balance",
			zap.Int64("request_id", req.ID), zap.Error(err))
		return false
	}

	if err := s.ledger.Hold(ctx, balance.ID, req.Amount); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			// An approved request should always be covered; this points at an
			// upstream bug and needs manual reconciliation.
			logger.Log.Error("funding sweep: insufficient balance for approved request",
				zap.Int64("request_id", req.ID),
				zap.Int64("amount", req.Amount),
				zap.Int64("available", balance.AvailableBalance))
		} else {
			logger.Log.Error("funding sweep: hold failed",
				zap.Int64("request_id", req.ID), zap.Error(err))
		}
		return false
	}

	activation, err := s.cards.Activate(ctx, req.CustodialAccountID, req.ProjectID)
	if err != nil {
		// Provider unreachable: unwind the hold, retry next pass.
		s.releaseHold(ctx, balance.ID, req.Amount, req.ID)
		return false
	}

	funded, err := s.requestRepo.MarkFunded(ctx, req.ID, time.Now(), activation.UnfrozenAt, activation.WindowExpiresAt)
	if err != nil || !funded {
		if err != nil {
			logger.Log.Error("funding sweep: mark funded failed",
				zap.Int64("request_id", req.ID), zap.Error(err))
		}
		s.undoAbortedFunding(ctx, req, balance.ID)
		return false
	}

	metrics.SweepTransitions.WithLabelValues("funded").Inc()
	s.notifier.Notify(ctx, req.StudentID, "window_open",
		"Your spending window is open",
		"Your card is unlocked for a limited time, complete your purchase now", "")
	return true
}

// undoAbortedFunding unwinds a funding attempt that lost the MarkFunded
// guard. The duplicate hold always comes back, but the card refreezes only
// when the request did not end up funded: a concurrent sweep that won the
// race owns an open window and the card must stay active for it.
func (s *sweepService) undoAbortedFunding(ctx context.Context, req models.SpendingRequest, balanceID int64) {
	current, err := s.requestRepo.GetByID(ctx, req.ID)
	if err != nil {
		logger.Log.Error("funding sweep: failed to re-read request after lost race",
			zap.Int64("request_id", req.ID), zap.Error(err))
	}
	if err != nil || current.Status != models.StatusFunded {
		if deactivateErr := s.cards.Deactivate(ctx, req.CustodialAccountID, req.ProjectID); deactivateErr != nil {
			logger.Log.Error("funding sweep: refreeze after lost race failed",
				zap.Int64("request_id", req.ID), zap.Error(deactivateErr))
		}
	}
	s.releaseHold(ctx, balanceID, req.Amount, req.ID)
}

// closeLapsedRequest handles a funded request whose window has passed:
// refreeze first, then either complete (authorization occurred, funds are
// spent) or expire (no authorization, funds return to available).
func (s *sweepService) closeLapsedRequest(ctx context.Context, req models.SpendingRequest) (completed, expired bool) {
	if err := s.cards.Deactivate(ctx, req.CustodialAccountID, req.ProjectID); err != nil {
		// Never expire a request while its card may still be active.
		logger.Log.Warn("expiry sweep: refreeze failed, retrying next pass",
			zap.Int64("request_id", req.ID), zap.Error(err))
		return false, false
	}

	balance, err := s.ledger.GetBalance(ctx, req.CustodialAccountID, req.ProjectID)
	if err != nil {
		logger.Log.Error("expiry sweep: failed to load balance",
			zap.Int64("request_id", req.ID), zap.Error(err))
		return false, false
	}

	if req.AuthorizationRef != "" {
		// Settle before the status flips: if it fails the row stays funded
		// and the next pass retries. A duplicate settle after losing the
		// completion race to the webhook is clamped to the remaining hold.
		if err := s.ledger.Settle(ctx, balance.ID, req.Amount); err != nil {
			logger.Log.Error("expiry sweep: settle failed",
				zap.Int64("request_id", req.ID), zap.Error(err))
			return false, false
		}
		ok, err := s.requestRepo.MarkCompleted(ctx, req.ID, time.Now())
		if err != nil {
			logger.Log.Error("expiry sweep: mark completed failed",
				zap.Int64("request_id", req.ID), zap.Error(err))
			return false, false
		}
		if !ok {
			return false, false
		}
		metrics.SweepTransitions.WithLabelValues("completed").Inc()
		return true, false
	}

	// The guard re-checks the authorization ref: a charge stamped between
	// the listing and this update means the money is spent, and the next
	// pass must settle it instead of refunding the hold.
	ok, err := s.requestRepo.MarkExpired(ctx, req.ID)
	if err != nil {
		logger.Log.Error("expiry sweep: mark expired failed",
			zap.Int64("request_id", req.ID), zap.Error(err))
		return false, false
	}
	if !ok {
		return false, false
	}

	if err := s.ledger.Release(ctx, balance.ID, req.Amount); err != nil {
		logger.Log.Error("expiry sweep: release failed",
			zap.Int64("request_id", req.ID), zap.Error(err))
	}

	metrics.SweepTransitions.WithLabelValues("expired").Inc()
	s.notifier.Notify(ctx, req.StudentID, "window_expired",
		"Spending window expired",
		"Your purchase window lapsed, the funds are back in your wallet", "")
	return false, true
}

func (s *sweepService) releaseHold(ctx context.Context, balanceID, amount, requestID int64) {
	if err := s.ledger.Release(ctx, balanceID, amount); err != nil {
		logger.Log.Error("failed to release hold after aborted funding",
			zap.Int64("request_id", requestID), zap.Error(err))
	}
}

func (s *sweepService) RunReceiptSweep(ctx context.Context) (SweepReport, error) {
	var report SweepReport
	now := time.Now()

	missing, err := s.requestRepo.ListCompletedMissingReceipt(ctx, now.Add(-receiptReminderAfter))
	if err != nil {
		return report, err
	}

	for _, req := range missing {
		title := "Receipt needed"
		message := "Please upload the receipt for your recent purchase"
		if req.CompletedAt != nil && now.Sub(*req.CompletedAt) >= receiptEscalateAfter {
			title = "Receipt overdue"
			message = "Your receipt is more than two days overdue, upload it to keep your wallet in good standing"
		}
		s.notifier.Notify(ctx, req.StudentID, "receipt_reminder", title, message, "")
		metrics.NotificationsSent.WithLabelValues("receipt_reminder").Inc()
		report.Reminded++
	}

	return report, nil
}
