package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"go.uber.org/zap"
)

type RequestRepository interface {
	Create(ctx context.Context, req *models.SpendingRequest) error
	GetByID(ctx context.Context, id int64) (models.SpendingRequest, error)
	SumAmountsSince(ctx context.Context, accountID, projectID int64, since time.Time) (int64, error)
	CountPendingByAccount(ctx context.Context, accountID int64) (int, error)

	ApplyParentDecision(ctx context.Context, id int64, to models.RequestStatus, decidedAt time.Time) (bool, error)
	ApplyMentorDecision(ctx context.Context, id int64, to models.RequestStatus, decidedAt time.Time, coolingOffEndsAt *time.Time) (bool, error)
	MarkReversed(ctx context.Context, id int64) (bool, error)
	MarkFunded(ctx context.Context, id int64, fundedAt, unfrozenAt, windowExpiresAt time.Time) (bool, error)
	MarkCompleted(ctx context.Context, id int64, completedAt time.Time) (bool, error)
	MarkExpired(ctx context.Context, id int64) (bool, error)
	StampAuthorizationRef(ctx context.Context, id int64, authRef string) (bool, error)
	SetReceipt(ctx context.Context, id int64, url string, uploadedAt time.Time) (bool, error)

	FindActiveFunded(ctx context.Context, accountID, projectID int64, now time.Time) (models.SpendingRequest, error)
	GetFundedByAuthRef(ctx context.Context, authRef string) (models.SpendingRequest, error)
	ListApprovedReadyForFunding(ctx context.Context, now time.Time) ([]models.SpendingRequest, error)
	ListFundedWindowExpired(ctx context.Context, now time.Time) ([]models.SpendingRequest, error)
	ListCompletedMissingReceipt(ctx context.Context, olderThan time.Time) ([]models.SpendingRequest, error)
}

type requestRepo struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) RequestRepository {
	return &requestRepo{db: db}
}

const requestColumns = `id, custodial_account_id, project_id, milestone_id, student_id, parent_id, mentor_id,
	vendor_name, vendor_url, vendor_mcc, amount, currency, reason, status,
	receipt_url, receipt_uploaded_at, parent_decided_at, mentor_decided_at,
	cooling_off_ends_at, funded_at, completed_at, authorization_ref,
	card_unfrozen_at, card_window_expires_at, created_at`

func scanRequest(s interface {
	Scan(dest ...any) error
}) (models.SpendingRequest, error) {
	var r models.SpendingRequest
	err := s.Scan(&r.ID, &r.CustodialAccountID, &r.ProjectID, &r.MilestoneID, &r.StudentID,
		&r.ParentID, &r.MentorID, &r.VendorName, &r.VendorURL, &r.VendorMCC,
		&r.Amount, &r.Currency, &r.Reason, &r.Status,
		&r.ReceiptURL, &r.ReceiptUploadedAt, &r.ParentDecidedAt, &r.MentorDecidedAt,
		&r.CoolingOffEndsAt, &r.FundedAt, &r.CompletedAt, &r.AuthorizationRef,
		&r.CardUnfrozenAt, &r.CardWindowExpires, &r.CreatedAt)
	return r, err
}

func (r *requestRepo) Create(ctx context.Context, req *models.SpendingRequest) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO spending_requests
			(custodial_account_id, project_id, milestone_id, student_id, parent_id, mentor_id,
			 vendor_name, vendor_url, vendor_mcc, amount, currency, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`, req.CustodialAccountID, req.ProjectID, req.MilestoneID, req.StudentID, req.ParentID,
		req.MentorID, req.VendorName, req.VendorURL, req.VendorMCC, req.Amount,
		req.Currency, req.Reason, req.Status).
		Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		logger.Log.Error("failed to create spending request", zap.Error(err))
	}
	return err
}

func (r *requestRepo) GetByID(ctx context.Context, id int64) (models.SpendingRequest, error) {
	req, err := scanRequest(r.db.QueryRowContext(ctx, `
		SELECT `+requestColumns+` FROM spending_requests WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SpendingRequest{}, apperrors.ErrRequestNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get spending request", zap.Error(err))
		return models.SpendingRequest{}, err
	}
	return req, nil
}

// SumAmountsSince totals requests that count against velocity limits:
// anything dual-approved or further along, created inside the window.
func (r *requestRepo) SumAmountsSince(ctx context.Context, accountID, projectID int64, since time.Time) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM spending_requests
		WHERE custodial_account_id = $1 AND project_id = $2
		  AND status IN ('approved', 'funded', 'completed')
		  AND created_at >= $3
	`, accountID, projectID, since).Scan(&sum)
	return sum, err
}

func (r *requestRepo) CountPendingByAccount(ctx context.Context, accountID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM spending_requests
		WHERE custodial_account_id = $1
		  AND status IN ('pending_parent', 'pending_mentor')
	`, accountID).Scan(&count)
	return count, err
}

func (r *requestRepo) guardedUpdate(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *requestRepo) ApplyParentDecision(ctx context.Context, id int64, to models.RequestStatus, decidedAt time.Time) (bool, error) {
	return r.guardedUpdate(ctx, `
		UPDATE spending_requests
		SET status = $1, parent_decided_at = $2
		WHERE id = $3 AND status = 'pending_parent'
	`, to, decidedAt, id)
}

func (r *requestRepo) ApplyMentorDecision(ctx context.Context, id int64, to models.RequestStatus, decidedAt time.Time, coolingOffEndsAt *time.Time) (bool, error) {
	return r.guardedUpdate(ctx, `
		UPDATE spending_requests
		SET status = $1, mentor_decided_at = $2, cooling_off_ends_at = $3
		WHERE id = $4 AND status = 'pending_mentor'
	`, to, decidedAt, coolingOffEndsAt, id)
}

func (r *requestRepo) MarkReversed(ctx context.Context, id int64) (bool, error) {
	return r.guardedUpdate(ctx, `
		UPDATE spending_requests
		SET status = 'reversed'
		WHERE id = $1 AND status = 'approved'
	`, id)
}

func (r *requestRepo) MarkFunded(ctx context.Context, id int64, fundedAt, unfrozenAt, windowExpiresAt time.Time) (bool, error) {
	return r.guardedUpdate(ctx, `
		UPDATE spending_requests
		SET status = 'funded', funded_at = $1, card_unfrozen_at = $2, card_window_expires_at = $3
		WHERE id = $4 AND status = 'approved'
	`, fundedAt, unfrozenAt, windowExpiresAt, id)
}

func (r *requestRepo) MarkCompleted(ctx context.Context, id int64, completedAt time.Time) (bool, error) {
	return r.guardedUpdate(ctx, `
		UPDATE spending_requests
		SET status = 'completed', completed_at = $1
		WHERE id = $2 AND status = 'funded'
	`, completedAt, id)
}

// MarkExpired only fires while no authorization is stamped. A request whose
// charge already landed must close through MarkCompleted so the held funds
// are settled, never refunded.
func (r *requestRepo) MarkExpired(ctx context.Context, id int64) (bool, error) {
	return r.guardedUpdate(ctx, `
		UPDATE spending_requests
		SET status = 'expired'
		WHERE id = $1 AND status = 'funded' AND authorization_ref = ''
	`, id)
}

// StampAuthorizationRef records the card-network authorization against the
// active funded request. It is bookkeeping metadata only and never moves the
// status; the guard keeps the first authorization that lands.
func (r *requestRepo) StampAuthorizationRef(ctx context.Context, id int64, authRef string) (bool, error) {
	return r.guardedUpdate(ctx, `
		UPDATE spending_requests
		SET authorization_ref = $1
		WHERE id = $2 AND status = 'funded' AND authorization_ref = ''
	`, authRef, id)
}

func (r *requestRepo) SetReceipt(ctx context.Context, id int64, url string, uploadedAt time.Time) (bool, error) {
	return r.guardedUpdate(ctx, `
		UPDATE spending_requests
		SET receipt_url = $1, receipt_uploaded_at = $2
		WHERE id = $3 AND status IN ('funded', 'completed')
	`, url, uploadedAt, id)
}

func (r *requestRepo) FindActiveFunded(ctx context.Context, accountID, projectID int64, now time.Time) (models.SpendingRequest, error) {
	req, err := scanRequest(r.db.QueryRowContext(ctx, `
		SELECT `+requestColumns+` FROM spending_requests
		WHERE custodial_account_id = $1 AND project_id = $2
		  AND status = 'funded' AND card_window_expires_at > $3
	`, accountID, projectID, now))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SpendingRequest{}, apperrors.ErrRequestNotFound
	}
	if err != nil {
		logger.Log.Error("failed to find active funded request", zap.Error(err))
		return models.SpendingRequest{}, err
	}
	return req, nil
}

func (r *requestRepo) GetFundedByAuthRef(ctx context.Context, authRef string) (models.SpendingRequest, error) {
	req, err := scanRequest(r.db.QueryRowContext(ctx, `
		SELECT `+requestColumns+` FROM spending_requests
		WHERE authorization_ref = $1 AND status = 'funded'
	`, authRef))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SpendingRequest{}, apperrors.ErrRequestNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get request by authorization ref", zap.Error(err))
		return models.SpendingRequest{}, err
	}
	return req, nil
}

func (r *requestRepo) listRequests(ctx context.Context, query string, args ...any) ([]models.SpendingRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query spending requests", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var requests []models.SpendingRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			logger.Log.Error("failed to scan spending request", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *requestRepo) ListApprovedReadyForFunding(ctx context.Context, now time.Time) ([]models.SpendingRequest, error) {
	return r.listRequests(ctx, `
		SELECT `+requestColumns+` FROM spending_requests
		WHERE status = 'approved' AND cooling_off_ends_at <= $1
		ORDER BY cooling_off_ends_at
	`, now)
}

func (r *requestRepo) ListFundedWindowExpired(ctx context.Context, now time.Time) ([]models.SpendingRequest, error) {
	return r.listRequests(ctx, `
		SELECT `+requestColumns+` FROM spending_requests
		WHERE status = 'funded' AND card_window_expires_at <= $1
		ORDER BY card_window_expires_at
	`, now)
}

func (r *requestRepo) ListCompletedMissingReceipt(ctx context.Context, olderThan time.Time) ([]models.SpendingRequest, error) {
	return r.listRequests(ctx, `
		SELECT `+requestColumns+` FROM spending_requests
		WHERE status = 'completed' AND receipt_url = '' AND completed_at <= $1
		ORDER BY completed_at
	`, olderThan)
}
