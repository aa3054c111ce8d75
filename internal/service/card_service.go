package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/cardnetwork"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
	"go.uber.org/zap"
)

// ActivationResult reports the spending window opened for a funded request.
type ActivationResult struct {
	UnfrozenAt      time.Time
	WindowExpiresAt time.Time
	HasCard         bool
}

// CardService keeps issued cards frozen by default and unfreezes them only
// for a bounded window once a request is funded. It is the single writer of
// card_status.
type CardService interface {
	Activate(ctx context.Context, accountID, projectID int64) (ActivationResult, error)
	Deactivate(ctx context.Context, accountID, projectID int64) error
	RegisterCard(ctx context.Context, accountID, projectID int64, cardRef, lastFour string) (int64, error)
}

type cardService struct {
	cardRepo repository.CardRepository
	provider cardnetwork.ProviderInterface
	window   time.Duration
	defaults VelocityLimits
}

func NewCardService(cardRepo repository.CardRepository, provider cardnetwork.ProviderInterface, window time.Duration, defaults VelocityLimits) CardService {
	return &cardService{
		cardRepo: cardRepo,
		provider: provider,
		window:   window,
		defaults: defaults,
	}
}

// Activate unfreezes the card for the spending window. When no card exists
// the manual payout path still gets a window. A provider failure leaves the
// card frozen and the caller must not advance the request.
func (s *cardService) Activate(ctx context.Context, accountID, projectID int64) (ActivationResult, error) {
	now := time.Now()
	result := ActivationResult{UnfrozenAt: now, WindowExpiresAt: now.Add(s.window)}

	card, err := s.cardRepo.GetByAccountProject(ctx, accountID, projectID)
	if errors.Is(err, repository.ErrNoCard) {
		return result, nil
	}
	if err != nil {
		return ActivationResult{}, err
	}

	if err := s.provider.UnfreezeCard(ctx, card.CardRef); err != nil {
		logger.Log.Warn("card unfreeze failed, leaving request for next sweep",
			zap.Int64("card_id", card.ID), zap.Error(err))
		return ActivationResult{}, fmt.Errorf("%w: %v", apperrors.ErrCardUnavailable, err)
	}

	if err := s.cardRepo.UpdateStatus(ctx, card.ID, models.CardActive); err != nil {
		// Provider unfroze but our row did not update; refreeze so state
		// cannot drift to an unfrozen card with no funded request.
		if freezeErr := s.provider.FreezeCard(ctx, card.CardRef); freezeErr != nil {
			logger.Log.Error("failed to refreeze card after status update failure",
				zap.Int64("card_id", card.ID), zap.Error(freezeErr))
		}
		return ActivationResult{}, err
	}

	result.HasCard = true
	return result, nil
}

// Deactivate refreezes idempotently; freezing an already-frozen card is safe.
func (s *cardService) Deactivate(ctx context.Context, accountID, projectID int64) error {
	card, err := s.cardRepo.GetByAccountProject(ctx, accountID, projectID)
	if errors.Is(err, repository.ErrNoCard) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.provider.FreezeCard(ctx, card.CardRef); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrCardUnavailable, err)
	}

	return s.cardRepo.UpdateStatus(ctx, card.ID, models.CardFrozen)
}

// RegisterCard records a card issued by the provider. Cards start frozen
// with the platform default limits.
func (s *cardService) RegisterCard(ctx context.Context, accountID, projectID int64, cardRef, lastFour string) (int64, error) {
	if cardRef == "" {
		return 0, apperrors.ErrInvalidRequest
	}

	card := &models.IssuedCard{
		CustodialAccountID: accountID,
		ProjectID:          projectID,
		CardRef:            cardRef,
		Status:             models.CardFrozen,
		LastFour:           lastFour,
		PerTxLimit:         s.defaults.PerTx,
		DailyLimit:         s.defaults.Daily,
		WeeklyLimit:        s.defaults.Weekly,
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return 0, err
	}
	return card.ID, nil
}
