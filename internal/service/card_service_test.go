package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/mocks/cardnetwork_mocks"
	"github.com/Stratton1/futurepreneurs-sub002/internal/mocks/repository_mocks"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func issuedCard() models.IssuedCard {
	return models.IssuedCard{
		ID:                 3,
		CustodialAccountID: 1,
		ProjectID:          10,
		CardRef:            "card_abc123",
		Status:             models.CardFrozen,
		LastFour:           "4242",
	}
}

func TestCardService_Activate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	window := 30 * time.Minute

	t.Run("unfreezes the card and opens a window", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockCardRepository(ctrl)
		mockProvider := cardnetwork_mocks.NewMockProviderInterface(ctrl)

		mockRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		mockProvider.EXPECT().UnfreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		mockRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardActive).Return(nil).Times(1)

		svc := NewCardService(mockRepo, mockProvider, window, defaultLimits())
		result, err := svc.Activate(ctx, 1, 10)

		assert.NoError(t, err)
		assert.True(t, result.HasCard)
		assert.WithinDuration(t, result.UnfrozenAt.Add(window), result.WindowExpiresAt, time.Second)
	})

	t.Run("no issued card still opens a window for manual payout", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockCardRepository(ctrl)
		mockProvider := cardnetwork_mocks.NewMockProviderInterface(ctrl)

		mockRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(models.IssuedCard{}, repository.ErrNoCard).Times(1)

		svc := NewCardService(mockRepo, mockProvider, window, defaultLimits())
		result, err := svc.Activate(ctx, 1, 10)

		assert.NoError(t, err)
		assert.False(t, result.HasCard)
		assert.False(t, result.WindowExpiresAt.IsZero())
	})

	t.Run("provider failure leaves the card frozen", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockCardRepository(ctrl)
		mockProvider := cardnetwork_mocks.NewMockProviderInterface(ctrl)

		mockRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		mockProvider.EXPECT().UnfreezeCard(ctx, "card_abc123").Return(errors.New("provider timeout")).Times(1)

		svc := NewCardService(mockRepo, mockProvider, window, defaultLimits())
		_, err := svc.Activate(ctx, 1, 10)

		assert.ErrorIs(t, err, apperrors.ErrCardUnavailable)
	})

	t.Run("status update failure refreezes the card", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockCardRepository(ctrl)
		mockProvider := cardnetwork_mocks.NewMockProviderInterface(ctrl)

		mockRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		mockProvider.EXPECT().UnfreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		mockRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardActive).Return(errors.New("db error")).Times(1)
		mockProvider.EXPECT().FreezeCard(ctx, "card_abc123").Return(nil).Times(1)

		svc := NewCardService(mockRepo, mockProvider, window, defaultLimits())
		_, err := svc.Activate(ctx, 1, 10)

		assert.Error(t, err)
	})
}

func TestCardService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("refreezes the card", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockCardRepository(ctrl)
		mockProvider := cardnetwork_mocks.NewMockProviderInterface(ctrl)

		mockRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		mockProvider.EXPECT().FreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		mockRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardFrozen).Return(nil).Times(1)

		svc := NewCardService(mockRepo, mockProvider, time.Minute, defaultLimits())
		assert.NoError(t, svc.Deactivate(ctx, 1, 10))
	})

	t.Run("no issued card is a no-op", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockCardRepository(ctrl)
		mockProvider := cardnetwork_mocks.NewMockProviderInterface(ctrl)

		mockRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(models.IssuedCard{}, repository.ErrNoCard).Times(1)

		svc := NewCardService(mockRepo, mockProvider, time.Minute, defaultLimits())
		assert.NoError(t, svc.Deactivate(ctx, 1, 10))
	})

	t.Run("provider failure is surfaced", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockCardRepository(ctrl)
		mockProvider := cardnetwork_mocks.NewMockProviderInterface(ctrl)

		mockRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		mockProvider.EXPECT().FreezeCard(ctx, "card_abc123").Return(errors.New("provider timeout")).Times(1)

		svc := NewCardService(mockRepo, mockProvider, time.Minute, defaultLimits())
		assert.ErrorIs(t, svc.Deactivate(ctx, 1, 10), apperrors.ErrCardUnavailable)
	})
}

func TestCardService_RegisterCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("new cards start frozen with default limits", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockCardRepository(ctrl)
		mockProvider := cardnetwork_mocks.NewMockProviderInterface(ctrl)

		mockRepo.EXPECT().Create(ctx, gomock.AssignableToTypeOf(&models.IssuedCard{})).DoAndReturn(
			func(_ context.Context, c *models.IssuedCard) error {
				assert.Equal(t, models.CardFrozen, c.Status)
				assert.Equal(t, int64(10000), c.PerTxLimit)
				assert.Equal(t, int64(5000), c.DailyLimit)
				assert.Equal(t, int64(20000), c.WeeklyLimit)
				c.ID = 3
				return nil
			}).Times(1)

		svc := NewCardService(mockRepo, mockProvider, time.Minute, defaultLimits())
		id, err := svc.RegisterCard(ctx, 1, 10, "card_abc123", "4242")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("empty card ref is rejected", func(t *testing.T) {
		mockRepo := repository_mocks.NewMockCardRepository(ctrl)
		mockProvider := cardnetwork_mocks.NewMockProviderInterface(ctrl)

		svc := NewCardService(mockRepo, mockProvider, time.Minute, defaultLimits())
		_, err := svc.RegisterCard(ctx, 1, 10, "", "4242")

		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}
