package service

import (
	"context"
	"strings"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"github.com/Stratton1/futurepreneurs-sub002/internal/notification"
	"github.com/Stratton1/futurepreneurs-sub002/internal/repository"
	"go.uber.org/zap"
)

// SpendingService owns the spending request lifecycle from creation through
// dual approval. Every transition is a guard-and-set update keyed on the
// current status, so two racing decisions cannot both win.
type SpendingService interface {
	Create(ctx context.Context, studentID int64, req models.CreateRequest) (int64, error)
	Decide(ctx context.Context, requestID, deciderID int64, role models.ApproverRole, decision models.Decision, reason string) error
	Reverse(ctx context.Context, requestID, userID int64) error
	UploadReceipt(ctx context.Context, requestID, studentID int64, url string) error
	GetWalletOverview(ctx context.Context, accountID int64) (models.WalletOverview, error)
	ListApprovals(ctx context.Context, requestID int64) ([]models.ApprovalLog, error)
}

type spendingService struct {
	requestRepo  repository.RequestRepository
	accountRepo  repository.AccountRepository
	balanceRepo  repository.BalanceRepository
	cardRepo     repository.CardRepository
	approvalRepo repository.ApprovalRepository
	velocity     VelocityService
	vendorPolicy VendorPolicyService
	notifier     notification.Notifier
	coolingOff   time.Duration
}

func NewSpendingService(
	requestRepo repository.RequestRepository,
	accountRepo repository.AccountRepository,
	balanceRepo repository.BalanceRepository,
	cardRepo repository.CardRepository,
	approvalRepo repository.ApprovalRepository,
	velocity VelocityService,
	vendorPolicy VendorPolicyService,
	notifier notification.Notifier,
	coolingOff time.Duration,
) SpendingService {
	return &spendingService{
		requestRepo:  requestRepo,
		accountRepo:  accountRepo,
		balanceRepo:  balanceRepo,
		cardRepo:     cardRepo,
		approvalRepo: approvalRepo,
		velocity:     velocity,
		vendorPolicy: vendorPolicy,
		notifier:     notifier,
		coolingOff:   coolingOff,
	}
}

func (s *spendingService) Create(ctx context.Context, studentID int64, req models.CreateRequest) (int64, error) {
	if req.Amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}
	if strings.TrimSpace(req.VendorName) == "" {
		return 0, apperrors.ErrMissingVendor
	}

	account, err := s.accountRepo.GetByID(ctx, req.CustodialAccountID)
	if err != nil {
		return 0, err
	}
	if !account.Active || account.StudentID != studentID {
		return 0, apperrors.ErrInvalidRequest
	}

	velocityRes, err := s.velocity.Check(ctx, req.CustodialAccountID, req.ProjectID, req.Amount)
	if err != nil {
		return 0, err
	}
	if !velocityRes.Allowed {
		return 0, apperrors.NewPolicyError(apperrors.ErrVelocityExceeded, velocityRes.Reason)
	}

	policyRes, err := s.vendorPolicy.Validate(ctx, req.ProjectID, req.VendorName, req.VendorMCC)
	if err != nil {
		return 0, err
	}
	if !policyRes.Valid {
		return 0, apperrors.NewPolicyError(apperrors.ErrVendorNotAllowed, policyRes.Reason)
	}

	balance, err := s.balanceRepo.GetOrCreate(ctx, req.CustodialAccountID, req.ProjectID)
	if err != nil {
		return 0, err
	}

	request := &models.SpendingRequest{
		CustodialAccountID: req.CustodialAccountID,
		ProjectID:          req.ProjectID,
		MilestoneID:        req.MilestoneID,
		StudentID:          studentID,
		ParentID:           account.ParentID,
		MentorID:           req.MentorID,
		VendorName:         strings.TrimSpace(req.VendorName),
		VendorURL:          req.VendorURL,
		VendorMCC:          req.VendorMCC,
		Amount:             req.Amount,
		Currency:           balance.Currency,
		Reason:             req.Reason,
		Status:             models.StatusPendingParent,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return 0, err
	}

	s.notifier.Notify(ctx, request.ParentID, "spending_request",
		"New spending request", "A spending request is waiting for your approval", "")

	logger.Log.Info("spending request created",
		zap.Int64("request_id", request.ID),
		zap.Int64("account_id", request.CustodialAccountID),
		zap.Int64("amount", request.Amount))

	return request.ID, nil
}

func (s *spendingService) Decide(ctx context.Context, requestID, deciderID int64, role models.ApproverRole, decision models.Decision, reason string) error {
	if decision != models.DecisionApprove && decision != models.DecisionDecline {
		return apperrors.ErrInvalidRequest
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	now := time.Now()

	switch role {
	case models.RoleParent:
		if deciderID != request.ParentID {
			return apperrors.ErrWrongRole
		}
		if request.Status != models.StatusPendingParent {
			return apperrors.ErrAlreadyProcessed
		}
		err = s.decideParent(ctx, &request, deciderID, decision, reason, now)
	case models.RoleMentor:
		if deciderID != request.MentorID {
			return apperrors.ErrWrongRole
		}
		if request.Status != models.StatusPendingMentor {
			return apperrors.ErrAlreadyProcessed
		}
		err = s.decideMentor(ctx, &request, deciderID, decision, reason, now)
	default:
		return apperrors.ErrWrongRole
	}

	if err != nil {
		return err
	}

	s.appendApproval(ctx, requestID, deciderID, role, decision, reason, now)
	return nil
}

func (s *spendingService) decideParent(ctx context.Context, request *models.SpendingRequest, deciderID int64, decision models.Decision, reason string, now time.Time) error {
	if decision == models.DecisionApprove {
		account, err := s.accountRepo.GetByID(ctx, request.CustodialAccountID)
		if err != nil {
			return err
		}
		// The first ever drawdown for a parent-student pair needs an explicit
		// one-time acknowledgement recorded by the onboarding flow.
		if !account.FirstDrawdownAcked {
			s.notifier.Notify(ctx, request.ParentID, "ack_required",
				"Acknowledgement needed",
				"Please complete the first drawdown acknowledgement before approving", "")
			return apperrors.ErrAckRequired
		}
	}

	to := models.StatusPendingMentor
	if decision == models.DecisionDecline {
		to = models.StatusDeclinedParent
	}

	applied, err := s.requestRepo.ApplyParentDecision(ctx, request.ID, to, now)
	if err != nil {
		return err
	}
	if !applied {
		return apperrors.ErrAlreadyProcessed
	}

	if to == models.StatusPendingMentor {
		s.notifier.Notify(ctx, request.MentorID, "spending_request",
			"Spending request needs your review", "A parent-approved spending request is waiting for you", "")
	} else {
		s.notifier.Notify(ctx, request.StudentID, "request_declined",
			"Spending request declined", reason, "")
	}
	return nil
}

func (s *spendingService) decideMentor(ctx context.Context, request *models.SpendingRequest, deciderID int64, decision models.Decision, reason string, now time.Time) error {
	to := models.StatusApproved
	var coolingOffEndsAt *time.Time
	if decision == models.DecisionDecline {
		to = models.StatusDeclinedMentor
	} else {
		ends := now.Add(s.coolingOff)
		coolingOffEndsAt = &ends
	}

	applied, err := s.requestRepo.ApplyMentorDecision(ctx, request.ID, to, now, coolingOffEndsAt)
	if err != nil {
		return err
	}
	if !applied {
		return apperrors.ErrAlreadyProcessed
	}

	if to == models.StatusApproved {
		s.notifier.Notify(ctx, request.StudentID, "request_approved",
			"Spending request approved", "Your card will unlock after the cooling-off period", "")
	} else {
		s.notifier.Notify(ctx, request.StudentID, "request_declined",
			"Spending request declined", reason, "")
	}
	return nil
}

func (s *spendingService) appendApproval(ctx context.Context, requestID, deciderID int64, role models.ApproverRole, decision models.Decision, reason string, decidedAt time.Time) {
	entry := &models.ApprovalLog{
		SpendingRequestID: requestID,
		DeciderID:         deciderID,
		Role:              role,
		Decision:          decision,
		Reason:            reason,
		DecidedAt:         decidedAt,
	}
	// The decision already committed; a failed audit write is logged for
	// manual reconciliation rather than rolling the decision back.
	if err := s.approvalRepo.Append(ctx, entry); err != nil {
		logger.Log.Error("failed to append approval log",
			zap.Int64("request_id", requestID), zap.Error(err))
	}
}

// Reverse is the only backward-looking edge: a parent or mentor may cancel an
// approved request before the funding sweep picks it up. No funds are held
// yet at that point, so the ledger is untouched.
func (s *spendingService) Reverse(ctx context.Context, requestID, userID int64) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if userID != request.ParentID && userID != request.MentorID {
		return apperrors.ErrWrongRole
	}

	applied, err := s.requestRepo.MarkReversed(ctx, requestID)
	if err != nil {
		return err
	}
	if !applied {
		return apperrors.ErrNotReversible
	}

	s.notifier.Notify(ctx, request.StudentID, "request_reversed",
		"Spending request reversed", "An approver reversed this request before funding", "")
	return nil
}

func (s *spendingService) UploadReceipt(ctx context.Context, requestID, studentID int64, url string) error {
	if strings.TrimSpace(url) == "" {
		return apperrors.ErrInvalidRequest
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.StudentID != studentID {
		return apperrors.ErrWrongRole
	}

	applied, err := s.requestRepo.SetReceipt(ctx, requestID, url, time.Now())
	if err != nil {
		return err
	}
	if !applied {
		return apperrors.ErrInvalidRequest
	}
	return nil
}

func (s *spendingService) GetWalletOverview(ctx context.Context, accountID int64) (models.WalletOverview, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return models.WalletOverview{}, err
	}

	balances, err := s.balanceRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return models.WalletOverview{}, err
	}

	cards, err := s.cardRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return models.WalletOverview{}, err
	}

	pending, err := s.requestRepo.CountPendingByAccount(ctx, accountID)
	if err != nil {
		return models.WalletOverview{}, err
	}

	return models.WalletOverview{
		Balances:     balances,
		Cards:        cards,
		PendingCount: pending,
	}, nil
}

func (s *spendingService) ListApprovals(ctx context.Context, requestID int64) ([]models.ApprovalLog, error) {
	if _, err := s.requestRepo.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return s.approvalRepo.ListByRequest(ctx, requestID)
}
