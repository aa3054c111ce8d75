package service

import (
	"context"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
)

// LedgerService is the only way funds move on a wallet balance. Hold and
// Release/Settle are serializable per balance row via guarded SQL updates.
type LedgerService interface {
	AddFunds(ctx context.Context, accountID, projectID, amount int64) error
	Hold(ctx context.Context, balanceID, amount int64) error
	Release(ctx context.Context, balanceID, amount int64) error
	Settle(ctx context.Context, balanceID, amount int64) error
	GetBalance(ctx context.Context, accountID, projectID int64) (models.WalletBalance, error)
}

type ledgerService struct {
	repo repository.BalanceRepository
}

func NewLedgerService(repo repository.BalanceRepository) LedgerService {
	return &ledgerService{repo: repo}
}

func (s *ledgerService) AddFunds(ctx context.Context, accountID, projectID, amount int64) error {
	if amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	return s.repo.AddFunds(ctx, accountID, projectID, amount)
}

func (s *ledgerService) Hold(ctx context.Context, balanceID, amount int64) error {
	if amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	return s.repo.Hold(ctx, balanceID, amount)
}

func (s *ledgerService) Release(ctx context.Context, balanceID, amount int64) error {
	if amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	return s.repo.Release(ctx, balanceID, amount)
}

func (s *ledgerService) Settle(ctx context.Context, balanceID, amount int64) error {
	if amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	return s.repo.Settle(ctx, balanceID, amount)
}

func (s *ledgerService) GetBalance(ctx context.Context, accountID, projectID int64) (models.WalletBalance, error) {
	return s.repo.GetOrCreate(ctx, accountID, projectID)
}
