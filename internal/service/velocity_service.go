package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
)

// VelocityLimits are the platform defaults applied when a project has no
// issued card yet. Amounts are minor units.
type VelocityLimits struct {
	PerTx  int64
	Daily  int64
	Weekly int64
}

// VelocityService is a pure read-then-decide predicate over persisted
// requests; it never mutates anything and is safe to call concurrently.
// Limits come from durable records, not in-memory counters, so they hold
// across process restarts.
type VelocityService interface {
	Check(ctx context.Context, accountID, projectID, amount int64) (models.VelocityResult, error)
}

type velocityService struct {
	requestRepo repository.RequestRepository
	cardRepo    repository.CardRepository
	defaults    VelocityLimits
}

func NewVelocityService(requestRepo repository.RequestRepository, cardRepo repository.CardRepository, defaults VelocityLimits) VelocityService {
	return &velocityService{
		requestRepo: requestRepo,
		cardRepo:    cardRepo,
		defaults:    defaults,
	}
}

func (s *velocityService) Check(ctx context.Context, accountID, projectID, amount int64) (models.VelocityResult, error) {
	if amount <= 0 {
		return models.VelocityResult{}, apperrors.ErrInvalidAmount
	}

	limits := s.defaults
	card, err := s.cardRepo.GetByAccountProject(ctx, accountID, projectID)
	switch {
	case err == nil:
		limits = VelocityLimits{PerTx: card.PerTxLimit, Daily: card.DailyLimit, Weekly: card.WeeklyLimit}
	case errors.Is(err, repository.ErrNoCard):
		// no card issued yet, platform defaults apply
	default:
		return models.VelocityResult{}, err
	}

	result := models.VelocityResult{
		DailyLimit:  limits.Daily,
		WeeklyLimit: limits.Weekly,
	}

	if amount > limits.PerTx {
		result.Reason = fmt.Sprintf("Amount exceeds the per-transaction limit of %s", formatAmount(limits.PerTx))
		return result, nil
	}

	now := time.Now()

	dailyUsed, err := s.requestRepo.SumAmountsSince(ctx, accountID, projectID, now.Add(-24*time.Hour))
	if err != nil {
		return models.VelocityResult{}, err
	}
	result.DailyUsed = dailyUsed

	weeklyUsed, err := s.requestRepo.SumAmountsSince(ctx, accountID, projectID, now.Add(-7*24*time.Hour))
	if err != nil {
		return models.VelocityResult{}, err
	}
	result.WeeklyUsed = weeklyUsed

	if dailyUsed+amount > limits.Daily {
		result.Reason = fmt.Sprintf("Would exceed daily spending limit of %s", formatAmount(limits.Daily))
		return result, nil
	}

	if weeklyUsed+amount > limits.Weekly {
		result.Reason = fmt.Sprintf("Would exceed weekly spending limit of %s", formatAmount(limits.Weekly))
		return result, nil
	}

	result.Allowed = true
	return result, nil
}

// formatAmount renders minor units as pounds for user-facing reasons.
func formatAmount(minor int64) string {
	if minor%100 == 0 {
		return fmt.Sprintf("£%d", minor/100)
	}
	return fmt.Sprintf("£%d.%02d", minor/100, minor%100)
}
