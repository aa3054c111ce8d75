package repository

import (
	"context"
	"database/sql"

	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"go.uber.org/zap"
)

// ApprovalRepository is append-only: decisions are never updated or deleted.
type ApprovalRepository interface {
	Append(ctx context.Context, log *models.ApprovalLog) error
	ListByRequest(ctx context.Context, requestID int64) ([]models.ApprovalLog, error)
}

type approvalRepo struct {
	db *sql.DB
}

func NewApprovalRepository(db *sql.DB) ApprovalRepository {
	return &approvalRepo{db: db}
}

func (r *approvalRepo) Append(ctx context.Context, log *models.ApprovalLog) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO approval_logs (spending_request_id, decider_id, role, decision, reason, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, log.SpendingRequestID, log.DeciderID, log.Role, log.Decision, log.Reason, log.DecidedAt).
		Scan(&log.ID)
	if err != nil {
		logger.Log.Error("failed to append approval log", zap.Error(err))
	}
	return err
}

func (r *approvalRepo) ListByRequest(ctx context.Context, requestID int64) ([]models.ApprovalLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, spending_request_id, decider_id, role, decision, reason, decided_at
		FROM approval_logs
		WHERE spending_request_id = $1
		ORDER BY decided_at
	`, requestID)
	if err != nil {
		logger.Log.Error("failed to query approval logs", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var logs []models.ApprovalLog
	for rows.Next() {
		var l models.ApprovalLog
		if err := rows.Scan(&l.ID, &l.SpendingRequestID, &l.DeciderID, &l.Role,
			&l.Decision, &l.Reason, &l.DecidedAt); err != nil {
			logger.Log.Error("failed to scan approval log", zap.Error(err))
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
