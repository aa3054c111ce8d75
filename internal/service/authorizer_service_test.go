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
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type authorizerMocks struct {
	requestRepo *repository_mocks.MockRequestRepository
	cardRepo    *repository_mocks.MockCardRepository
	balanceRepo *repository_mocks.MockBalanceRepository
	vendorRepo  *repository_mocks.MockVendorRepository
	provider    *cardnetwork_mocks.MockProviderInterface
	notifier    *notification_mocks.MockNotifier
}

func newAuthorizerService(ctrl *gomock.Controller) (AuthorizerService, authorizerMocks) {
	m := authorizerMocks{
		requestRepo: repository_mocks.NewMockRequestRepository(ctrl),
		cardRepo:    repository_mocks.NewMockCardRepository(ctrl),
		balanceRepo: repository_mocks.NewMockBalanceRepository(ctrl),
		vendorRepo:  repository_mocks.NewMockVendorRepository(ctrl),
		provider:    cardnetwork_mocks.NewMockProviderInterface(ctrl),
		notifier:    notification_mocks.NewMockNotifier(ctrl),
	}
	vendorPolicy := NewVendorPolicyService(m.vendorRepo)
	cards := NewCardService(m.cardRepo, m.provider, 30*time.Minute, defaultLimits())
	svc := NewAuthorizerService(m.requestRepo, m.cardRepo, m.balanceRepo, vendorPolicy, cards, m.notifier)
	return svc, m
}

func fundedRequestRow() models.SpendingRequest {
	return models.SpendingRequest{
		ID:                 42,
		CustodialAccountID: 1,
		ProjectID:          10,
		StudentID:          200,
		Amount:             2500,
		Status:             models.StatusFunded,
	}
}

func TestAuthorizerService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	swipe := func(amount int64) models.AuthorizationRequest {
		return models.AuthorizationRequest{CardRef: "card_abc123", Amount: amount, MCC: "5945"}
	}

	tests := []struct {
		name         string
		req          models.AuthorizationRequest
		setup        func(m authorizerMocks)
		wantApproved bool
		wantReason   string
		wantErr      bool
	}{
		{
			name: "approves a swipe inside the window and amount",
			req:  swipe(2500),
			setup: func(m authorizerMocks) {
				m.vendorRepo.EXPECT().GetBlockedCategory(ctx, "5945").Return(nil, nil).Times(1)
				m.cardRepo.EXPECT().GetByCardRef(ctx, "card_abc123").Return(issuedCard(), nil).Times(1)
				m.requestRepo.EXPECT().FindActiveFunded(ctx, int64(1), int64(10), gomock.Any()).Return(fundedRequestRow(), nil).Times(1)
			},
			wantApproved: true,
		},
		{
			name: "denies a blocked merchant category before any lookup",
			req:  models.AuthorizationRequest{CardRef: "card_abc123", Amount: 2500, MCC: "7995"},
			setup: func(m authorizerMocks) {
				m.vendorRepo.EXPECT().GetBlockedCategory(ctx, "7995").Return(&models.BlockedMCCCategory{
					MCC: "7995", Category: "Gambling", Reason: "Not permitted for minors",
				}, nil).Times(1)
			},
			wantApproved: false,
			wantReason:   "Gambling: Not permitted for minors",
		},
		{
			name: "denies an unknown card",
			req:  swipe(2500),
			setup: func(m authorizerMocks) {
				m.vendorRepo.EXPECT().GetBlockedCategory(ctx, "5945").Return(nil, nil).Times(1)
				m.cardRepo.EXPECT().GetByCardRef(ctx, "card_abc123").Return(models.IssuedCard{}, repository.ErrNoCard).Times(1)
			},
			wantApproved: false,
			wantReason:   "card not recognized",
		},
		{
			name: "denies when no spending window is open",
			req:  swipe(2500),
			setup: func(m authorizerMocks) {
				m.vendorRepo.EXPECT().GetBlockedCategory(ctx, "5945").Return(nil, nil).Times(1)
				m.cardRepo.EXPECT().GetByCardRef(ctx, "card_abc123").Return(issuedCard(), nil).Times(1)
				m.requestRepo.EXPECT().FindActiveFunded(ctx, int64(1), int64(10), gomock.Any()).Return(models.SpendingRequest{}, apperrors.ErrRequestNotFound).Times(1)
			},
			wantApproved: false,
			wantReason:   "no active spending window",
		},
		{
			name: "denies a swipe above the approved amount",
			req:  swipe(2501),
			setup: func(m authorizerMocks) {
				m.vendorRepo.EXPECT().GetBlockedCategory(ctx, "5945").Return(nil, nil).Times(1)
				m.cardRepo.EXPECT().GetByCardRef(ctx, "card_abc123").Return(issuedCard(), nil).Times(1)
				m.requestRepo.EXPECT().FindActiveFunded(ctx, int64(1), int64(10), gomock.Any()).Return(fundedRequestRow(), nil).Times(1)
			},
			wantApproved: false,
			wantReason:   "amount exceeds approved amount",
		},
		{
			name: "infrastructure error is returned, not silently approved",
			req:  swipe(2500),
			setup: func(m authorizerMocks) {
				m.vendorRepo.EXPECT().GetBlockedCategory(ctx, "5945").Return(nil, nil).Times(1)
				m.cardRepo.EXPECT().GetByCardRef(ctx, "card_abc123").Return(models.IssuedCard{}, errors.New("db error")).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthorizerService(ctrl)
			tt.setup(m)

			decision, err := svc.Authorize(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantApproved, decision.Approved)
			assert.Equal(t, tt.wantReason, decision.Reason)
		})
	}
}

func TestAuthorizerService_HandleAuthorizationCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("stamps the reference on the active request", func(t *testing.T) {
		svc, m := newAuthorizerService(ctrl)

		m.cardRepo.EXPECT().GetByCardRef(ctx, "card_abc123").Return(issuedCard(), nil).Times(1)
		m.requestRepo.EXPECT().FindActiveFunded(ctx, int64(1), int64(10), gomock.Any()).Return(fundedRequestRow(), nil).Times(1)
		m.requestRepo.EXPECT().StampAuthorizationRef(ctx, int64(42), "auth_777").Return(true, nil).Times(1)

		assert.NoError(t, svc.HandleAuthorizationCreated(ctx, "card_abc123", "auth_777"))
	})

	t.Run("already stamped is not an error", func(t *testing.T) {
		svc, m := newAuthorizerService(ctrl)

		m.cardRepo.EXPECT().GetByCardRef(ctx, "card_abc123").Return(issuedCard(), nil).Times(1)
		m.requestRepo.EXPECT().FindActiveFunded(ctx, int64(1), int64(10), gomock.Any()).Return(fundedRequestRow(), nil).Times(1)
		m.requestRepo.EXPECT().StampAuthorizationRef(ctx, int64(42), "auth_777").Return(false, nil).Times(1)

		assert.NoError(t, svc.HandleAuthorizationCreated(ctx, "card_abc123", "auth_777"))
	})

	t.Run("empty reference is rejected", func(t *testing.T) {
		svc, _ := newAuthorizerService(ctrl)

		assert.ErrorIs(t, svc.HandleAuthorizationCreated(ctx, "card_abc123", ""), apperrors.ErrInvalidRequest)
	})
}

func TestAuthorizerService_HandleTransactionCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("settles funds, refreezes the card and notifies", func(t *testing.T) {
		svc, m := newAuthorizerService(ctrl)

		m.requestRepo.EXPECT().GetFundedByAuthRef(ctx, "auth_777").Return(fundedRequestRow(), nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7}, nil).Times(1)
		gomock.InOrder(
			m.balanceRepo.EXPECT().Settle(ctx, int64(7), int64(2500)).Return(nil).Times(1),
			m.requestRepo.EXPECT().MarkCompleted(ctx, int64(42), gomock.Any()).Return(true, nil).Times(1),
		)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().FreezeCard(ctx, "card_abc123").Return(nil).Times(1)
		m.cardRepo.EXPECT().UpdateStatus(ctx, int64(3), models.CardFrozen).Return(nil).Times(1)
		m.notifier.EXPECT().Notify(ctx, int64(200), "purchase_completed", gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

		assert.NoError(t, svc.HandleTransactionCompleted(ctx, "auth_777"))
	})

	t.Run("settle failure leaves the request funded for a retry", func(t *testing.T) {
		svc, m := newAuthorizerService(ctrl)

		m.requestRepo.EXPECT().GetFundedByAuthRef(ctx, "auth_777").Return(fundedRequestRow(), nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7}, nil).Times(1)
		m.balanceRepo.EXPECT().Settle(ctx, int64(7), int64(2500)).Return(errors.New("db error")).Times(1)

		assert.Error(t, svc.HandleTransactionCompleted(ctx, "auth_777"))
	})

	t.Run("unknown reference is acknowledged silently", func(t *testing.T) {
		svc, m := newAuthorizerService(ctrl)

		m.requestRepo.EXPECT().GetFundedByAuthRef(ctx, "auth_777").Return(models.SpendingRequest{}, apperrors.ErrRequestNotFound).Times(1)

		assert.NoError(t, svc.HandleTransactionCompleted(ctx, "auth_777"))
	})

	t.Run("lost completion race does not refreeze or notify", func(t *testing.T) {
		svc, m := newAuthorizerService(ctrl)

		m.requestRepo.EXPECT().GetFundedByAuthRef(ctx, "auth_777").Return(fundedRequestRow(), nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7}, nil).Times(1)
		m.balanceRepo.EXPECT().Settle(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.requestRepo.EXPECT().MarkCompleted(ctx, int64(42), gomock.Any()).Return(false, nil).Times(1)

		assert.NoError(t, svc.HandleTransactionCompleted(ctx, "auth_777"))
	})

	t.Run("refreeze failure does not fail the completion", func(t *testing.T) {
		svc, m := newAuthorizerService(ctrl)

		m.requestRepo.EXPECT().GetFundedByAuthRef(ctx, "auth_777").Return(fundedRequestRow(), nil).Times(1)
		m.requestRepo.EXPECT().MarkCompleted(ctx, int64(42), gomock.Any()).Return(true, nil).Times(1)
		m.balanceRepo.EXPECT().GetOrCreate(ctx, int64(1), int64(10)).Return(models.WalletBalance{ID: 7}, nil).Times(1)
		m.balanceRepo.EXPECT().Settle(ctx, int64(7), int64(2500)).Return(nil).Times(1)
		m.cardRepo.EXPECT().GetByAccountProject(ctx, int64(1), int64(10)).Return(issuedCard(), nil).Times(1)
		m.provider.EXPECT().FreezeCard(ctx, "card_abc123").Return(errors.New("provider timeout")).Times(1)
		m.notifier.EXPECT().Notify(ctx, int64(200), "purchase_completed", gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

		assert.NoError(t, svc.HandleTransactionCompleted(ctx, "auth_777"))
	})
}
