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

// AuthorizerService answers the card network's synchronous authorization
// request. Authorize reads already-committed state only; all bookkeeping
// happens in the asynchronous event handlers, never in the decision path,
// because the provider times out in low hundreds of milliseconds.
type AuthorizerService interface {
	Authorize(ctx context.Context, req models.AuthorizationRequest) (models.AuthorizationDecision, error)
	HandleAuthorizationCreated(ctx context.Context, cardRef, authRef string) error
	HandleTransactionCompleted(ctx context.Context, authRef string) error
}

type authorizerService struct {
	requestRepo  repository.RequestRepository
	cardRepo     repository.CardRepository
	balanceRepo  repository.BalanceRepository
	vendorPolicy VendorPolicyService
	cards        CardService
	notifier     notification.Notifier
}

func NewAuthorizerService(
	requestRepo repository.RequestRepository,
	cardRepo repository.CardRepository,
	balanceRepo repository.BalanceRepository,
	vendorPolicy VendorPolicyService,
	cards CardService,
	notifier notification.Notifier,
) AuthorizerService {
	return &authorizerService{
		requestRepo:  requestRepo,
		cardRepo:     cardRepo,
		balanceRepo:  balanceRepo,
		vendorPolicy: vendorPolicy,
		cards:        cards,
		notifier:     notifier,
	}
}

func (s *authorizerService) deny(reason, metricReason string) (models.AuthorizationDecision, error) {
	metrics.AuthorizationDecisions.WithLabelValues("denied", metricReason).Inc()
	return models.AuthorizationDecision{Approved: false, Reason: reason}, nil
}

func (s *authorizerService) Authorize(ctx context.Context, req models.AuthorizationRequest) (models.AuthorizationDecision, error) {
	mccResult, err := s.vendorPolicy.CheckMCC(ctx, req.MCC)
	if err != nil {
		return models.AuthorizationDecision{}, err
	}
	if !mccResult.Valid {
		return s.deny(mccResult.Reason, "blocked_category")
	}

	card, err := s.cardRepo.GetByCardRef(ctx, req.CardRef)
	if errors.Is(err, repository.ErrNoCard) {
		return s.deny("card not recognized", "unknown_card")
	}
	if err != nil {
		return models.AuthorizationDecision{}, err
	}

	request, err := s.requestRepo.FindActiveFunded(ctx, card.CustodialAccountID, card.ProjectID, time.Now())
	if errors.Is(err, apperrors.ErrRequestNotFound) {
		return s.deny("no active spending window", "no_window")
	}
	if err != nil {
		return models.AuthorizationDecision{}, err
	}

	if req.Amount > request.Amount {
		return s.deny("amount exceeds approved amount", "over_amount")
	}

	metrics.AuthorizationDecisions.WithLabelValues("approved", "").Inc()
	return models.AuthorizationDecision{Approved: true}, nil
}

// HandleAuthorizationCreated stamps the authorization reference on the
// active funded request. Metadata only, the status does not move here.
func (s *authorizerService) HandleAuthorizationCreated(ctx context.Context, cardRef, authRef string) error {
	if authRef == "" {
		return apperrors.ErrInvalidRequest
	}

	card, err := s.cardRepo.GetByCardRef(ctx, cardRef)
	if err != nil {
		return err
	}

	request, err := s.requestRepo.FindActiveFunded(ctx, card.CustodialAccountID, card.ProjectID, time.Now())
	if err != nil {
		return err
	}

	stamped, err := s.requestRepo.StampAuthorizationRef(ctx, request.ID, authRef)
	if err != nil {
		return err
	}
	if !stamped {
		logger.Log.Warn("authorization ref already stamped",
			zap.Int64("request_id", request.ID), zap.String("auth_ref", authRef))
	}
	return nil
}

// HandleTransactionCompleted closes the funded request: held funds are
// settled (spent, not returned) and the card refreezes. The guarded
// funded->completed update means a racing expiry sweep cannot also win.
func (s *authorizerService) HandleTransactionCompleted(ctx context.Context, authRef string) error {
	request, err := s.requestRepo.GetFundedByAuthRef(ctx, authRef)
	if errors.Is(err, apperrors.ErrRequestNotFound) {
		// Already completed by the sweep, or an unknown reference.
		return nil
	}
	if err != nil {
		return err
	}

	balance, err := s.balanceRepo.GetOrCreate(ctx, request.CustodialAccountID, request.ProjectID)
	if err != nil {
		return err
	}

	// Settle before the status flips: if it fails the request stays funded,
	// GetFundedByAuthRef still matches and the provider's retry lands here
	// again. A duplicate settle after losing the completion race to the
	// sweep is clamped to the remaining hold.
	if err := s.balanceRepo.Settle(ctx, balance.ID, request.Amount); err != nil {
		logger.Log.Error("failed to settle held funds",
			zap.Int64("request_id", request.ID), zap.Error(err))
		return err
	}

	completed, err := s.requestRepo.MarkCompleted(ctx, request.ID, time.Now())
	if err != nil {
		return err
	}
	if !completed {
		// The expiry sweep completed it first; the settle above was a no-op
		// or covered the same hold.
		return nil
	}

	if err := s.cards.Deactivate(ctx, request.CustodialAccountID, request.ProjectID); err != nil {
		// The expiry sweep will retry the refreeze.
		logger.Log.Warn("failed to refreeze card after completion",
			zap.Int64("request_id", request.ID), zap.Error(err))
	}

	s.notifier.Notify(ctx, request.StudentID, "purchase_completed",
		"Purchase complete", "Remember to upload your receipt", "")
	return nil
}
