package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/mocks/cardnetwork_mocks"
	"github.com/Stratton1/futurepreneurs-sub002/internal/mocks/notification_mocks"
	"github.com/Stratton1/futurepreneurs-sub002/internal/mocks/repository_mocks"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type sweepMocks struct {
	requestRepo *repository_mocks.MockRequestRepository
	balanceRepo *repository_mocks.MockBalanceRepository
	cardRepo    *repository_mocks.MockCardRepository
	provider    *cardnetwork_mocks.MockProviderInterface
	notifier    *notification_mocks.MockNotifier
}

func newSweepService(ctrl *gomock.Controller) (SweepService, sweepMocks) {
	m := sweepMocks{
		requestRepo: repository_mocks.NewMockRequestRepository(ctrl),
		balanceRepo: repository_mocks.NewMockBalanceRepository(ctrl),
		cardRepo:    repository_mocks.NewMockCardRepository(ctrl),
		provider:    cardnetwork_mocks.NewMockProviderInterface(ctrl),
		notifier:    notification_mocks.NewMockNotifier(ctrl),
	}
	ledger := NewLedgerService(m.balanceRepo)
	cards := NewCardService(m.cardRepo, m.provider, 30*time.Minute, defaultLimits())
	svc := NewSweepService(m.requestRepo, ledger, cards, m.notifier)
	return svc, m
}

func approvedRequestRow() models.SpendingRequest {
	return models.SpendingRequest{
		ID:                 42,
		CustodialAccountID: 1,
		ProjectID:          10,
		StudentID:          200,
		Amount:             2500,
		Status:             models.StatusApproved,
	}
}

func TestSweepService_RunFundingSweep_Funds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("funds a cooled-off approval", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return([]models.SpendingRequest{approvedRequestRow()}, nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7, AvailableBalance: 30000}, nil).Times(1)
		m.balanceRepo.EXPECT().Hold(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().UnfreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		m.cardRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardActive).Return(nil).Times(1)
		m.requestRepo.EXPECT().MarkFunded(ctx, int64(42), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
		m.notifier.EXPECT().Notify(ctx, int64(200), "window_open", gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return(nil, nil).Times(1)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Funded)
	})

	t.Run("insufficient balance skips the request", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return([]models.SpendingRequest{approvedRequestRow()}, nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7, AvailableBalance: 100}, nil).Times(1)
		m.balanceRepo.EXPECT().Hold(ctx, int64(7), int64(2500)).Return(apperrors.ErrInsufficientFunds).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return(nil, nil).Times(1)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Funded)
	})

	t.Run("provider failure unwinds the hold", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return([]models.SpendingRequest{approvedRequestRow()}, nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7, AvailableBalance: 30000}, nil).Times(1)
		m.balanceRepo.EXPECT().Hold(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().UnfreezeCard(ctx, "card_abc123").Return(errors.New("provider timeout")).Times(1)
		m.balanceRepo.EXPECT().Release(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return(nil, nil).Times(1)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Funded)
	})

	t.Run("race lost to a concurrent sweep keeps the window open", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		fundedByWinner := approvedRequestRow()
		fundedByWinner.Status = models.StatusFunded

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return([]models.SpendingRequest{approvedRequestRow()}, nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7, AvailableBalance: 30000}, nil).Times(1)
		m.balanceRepo.EXPECT().Hold(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().UnfreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		m.cardRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardActive).Return(nil).Times(1)
		m.requestRepo.EXPECT().MarkFunded(ctx, int64(42), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
		m.requestRepo.EXPECT().GetByID(ctx, int64(42)).Return(fundedByWinner, nil).Times(1)
		m.balanceRepo.EXPECT().Release(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return(nil, nil).Times(1)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Funded)
	})

	t.Run("race lost to a reversal refreezes and releases", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		reversed := approvedRequestRow()
		reversed.Status = models.StatusReversed

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return([]models.SpendingRequest{approvedRequestRow()}, nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7, AvailableBalance: 30000}, nil).Times(1)
		m.balanceRepo.EXPECT().Hold(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(2)
		m.provider.EXPECT().UnfreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		m.cardRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardActive).Return(nil).Times(1)
		m.requestRepo.EXPECT().MarkFunded(ctx, int64(42), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)
		m.requestRepo.EXPECT().GetByID(ctx, int64(42)).Return(reversed, nil).Times(1)
		m.provider.EXPECT().FreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		m.cardRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardFrozen).Return(nil).Times(1)
		m.balanceRepo.EXPECT().Release(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return(nil, nil).Times(1)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Funded)
	})
}

func TestSweepService_RunFundingSweep_ClosesLapsedWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	lapsedRequest := func(authRef string) models.SpendingRequest {
		request := approvedRequestRow()
		request.Status = models.StatusFunded
		request.AuthorizationRef = authRef
		return request
	}

	t.Run("expires an unused window and refunds the hold", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return(nil, nil).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return([]models.SpendingRequest{lapsedRequest("")}, nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().FreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		m.cardRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardFrozen).Return(nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7, HeldBalance: 2500}, nil).Times(1)
		m.requestRepo.EXPECT().MarkExpired(ctx, int64(42)).Return(true, nil).Times(1)
		m.balanceRepo.EXPECT().Release(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.notifier.EXPECT().Notify(ctx, int64(200), "window_expired", gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Expired)
		assert.Equal(t, 0, report.Completed)
	})

	t.Run("completes a window that saw an authorization", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return(nil, nil).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return([]models.SpendingRequest{lapsedRequest("auth_777")}, nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().FreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		m.cardRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardFrozen).Return(nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7, HeldBalance: 2500}, nil).Times(1)
		gomock.InOrder(
			m.balanceRepo.EXPECT().Settle(ctx, int64(7), int64(2500)).Return(nil).Times(1),
			m.requestRepo.EXPECT().MarkCompleted(ctx, int64(42), gomock.Any()).Return(true, nil).Times(1),
		)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Completed)
		assert.Equal(t, 0, report.Expired)
	})

	t.Run("settle failure leaves the request funded for a retry", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return(nil, nil).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return([]models.SpendingRequest{lapsedRequest("auth_777")}, nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().FreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		m.cardRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardFrozen).Return(nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7, HeldBalance: 2500}, nil).Times(1)
		m.balanceRepo.EXPECT().Settle(ctx, int64(7), int64(2500)).Return(errors.New("db error")).Times(1)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Completed)
	})

	t.Run("charge stamped after the listing defers to the next pass", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return(nil, nil).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return([]models.SpendingRequest{lapsedRequest("")}, nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().FreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		m.cardRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardFrozen).Return(nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7, HeldBalance: 2500}, nil).Times(1)
		m.requestRepo.EXPECT().MarkExpired(ctx, int64(42)).Return(false, nil).Times(1)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Expired)
		assert.Equal(t, 0, report.Completed)
	})

	t.Run("refreeze failure defers the request to the next pass", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListApprovedReadyForFunding(ctx, gomock.Any()).Return(nil, nil).Times(1)
		m.requestRepo.EXPECT().ListFundedWindowExpired(ctx, gomock.Any()).Return([]models.SpendingRequest{lapsedRequest("")}, nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().FreezeCard(ctx, "card_abc123").Return(errors.New("provider timeout")).Times(1)

		report, err := svc.RunFundingSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, report.Expired)
	})
}

func TestSweepService_RunReceiptSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	completedRequest := func(age time.Duration) models.SpendingRequest {
		request := approvedRequestRow()
		request.Status = models.StatusCompleted
		completedAt := time.Now().Add(-age)
		request.CompletedAt = &completedAt
		return request
	}

	t.Run("reminds for a missing receipt", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListCompletedMissingReceipt(ctx, gomock.Any()).Return([]models.SpendingRequest{completedRequest(25 * time.Hour)}, nil).Times(1)
		m.notifier.EXPECT().Notify(ctx, int64(200), "receipt_reminder", "Receipt needed", gomock.Any(), gomock.Any()).Times(1)

		report, err := svc.RunReceiptSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Reminded)
	})

	t.Run("escalates after two days", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListCompletedMissingReceipt(ctx, gomock.Any()).Return([]models.SpendingRequest{completedRequest(49 * time.Hour)}, nil).Times(1)
		m.notifier.EXPECT().Notify(ctx, int64(200), "receipt_reminder", "Receipt overdue", gomock.Any(), gomock.Any()).Times(1)

		report, err := svc.RunReceiptSweep(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, report.Reminded)
	})

	t.Run("listing failure propagates", func(t *testing.T) {
		svc, m := newSweepService(ctrl)

		m.requestRepo.EXPECT().ListCompletedMissingReceipt(ctx, gomock.Any()).Return(nil, errors.New("db error")).Times(1)

		_, err := svc.RunReceiptSweep(ctx)
		assert.Error(t, err)
	})
}
