package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/mocks/repository_mocks"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLedgerService_Hold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name     string
		amount   int64
		mockRepo func(m *repository_mocks.MockBalanceRepository)
		wantErr  error
	}{
		{
			name:   "successful hold",
			amount: 2500,
			mockRepo: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().Hold(ctx, int64(7), int64(2500)).Return(nil).Times(1)
			},
		},
		{
			name:     "non-positive amount is rejected",
			amount:   0,
			mockRepo: func(m *repository_mocks.MockBalanceRepository) {},
			wantErr:  apperrors.ErrInvalidAmount,
		},
		{
			name:   "insufficient funds propagates",
			amount: 2500,
			mockRepo: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().Hold(ctx, int64(7), int64(2500)).Return(apperrors.ErrInsufficientFunds).Times(1)
			},
			wantErr: apperrors.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)
			tt.mockRepo(mockRepo)

			svc := NewLedgerService(mockRepo)
			err := svc.Hold(ctx, 7, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLedgerService_ReleaseAndSettle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("release returns held funds", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)
		mockRepo.EXPECT().Release(ctx, int64(7), int64(1200)).Return(nil).Times(1)

		svc := NewLedgerService(mockRepo)
		assert.NoError(t, svc.Release(ctx, 7, 1200))
	})

	t.Run("settle removes held funds", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)
		mockRepo.EXPECT().Settle(ctx, int64(7), int64(1200)).Return(nil).Times(1)

		svc := NewLedgerService(mockRepo)
		assert.NoError(t, svc.Settle(ctx, 7, 1200))
	})

	t.Run("release rejects non-positive amount", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)

		svc := NewLedgerService(mockRepo)
		assert.ErrorIs(t, svc.Release(ctx, 7, -1), apperrors.ErrInvalidAmount)
	})

	t.Run("settle rejects non-positive amount", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)

		svc := NewLedgerService(mockRepo)
		assert.ErrorIs(t, svc.Settle(ctx, 7, 0), apperrors.ErrInvalidAmount)
	})
}

func TestLedgerService_AddFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("successful top-up", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)
		mockRepo.EXPECT().AddFunds(ctx, int64(1), int64(10), int64(30000)).Return(nil).Times(1)

		svc := NewLedgerService(mockRepo)
		assert.NoError(t, svc.AddFunds(ctx, 1, 10, 30000))
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)

		svc := NewLedgerService(mockRepo)
		assert.ErrorIs(t, svc.AddFunds(ctx, 1, 10, 0), apperrors.ErrInvalidAmount)
	})
}

func TestLedgerService_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("returns the balance row", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)
		mockRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{
			ID:               7,
			AvailableBalance: 30000,
			HeldBalance:      2500,
		}, nil).Times(1)

		svc := NewLedgerService(mockRepo)
		balance, err := svc.GetBalance(ctx, 1, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(30000), balance.AvailableBalance)
		assert.Equal(t, int64(2500), balance.HeldBalance)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)
		mockRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{}, errors.New("db error")).Times(1)

		svc := NewLedgerService(mockRepo)
		_, err := svc.GetBalance(ctx, 1, 10)

		assert.Error(t, err)
	})
}
