package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Stratton1/futurepreneurs-sub002/internal/apperrors"
	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/Stratton1/futurepreneurs-sub002/internal/models"
	"go.uber.org/zap"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.CustodialAccount) error
	GetByID(ctx context.Context, id int64) (models.CustodialAccount, error)
	UpdateKYCStatusByRef(ctx context.Context, processorRef string, status models.KYCStatus) error
	SetFirstDrawdownAcked(ctx context.Context, id int64) error
}

type accountRepo struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepo{db: db}
}

func (r *accountRepo) Create(ctx context.Context, account *models.CustodialAccount) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO custodial_accounts (parent_id, student_id, processor_account_ref, kyc_status, relationship_verified, encrypted_dob)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, account.ParentID, account.StudentID, account.ProcessorAccountRef,
		account.KYCStatus, account.RelationshipVerified, account.EncryptedDOB).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		logger.Log.Error("failed to create custodial account", zap.Error(err))
	}
	return err
}

func (r *accountRepo) GetByID(ctx context.Context, id int64) (models.CustodialAccount, error) {
	var a models.CustodialAccount
	err := r.db.QueryRowContext(ctx, `
		SELECT id, parent_id, student_id, processor_account_ref, kyc_status,
		       relationship_verified, first_drawdown_acked, encrypted_dob, active, created_at
		FROM custodial_accounts
		WHERE id = $1
	`, id).Scan(&a.ID, &a.ParentID, &a.StudentID, &a.ProcessorAccountRef, &a.KYCStatus,
		&a.RelationshipVerified, &a.FirstDrawdownAcked, &a.EncryptedDOB, &a.Active, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CustodialAccount{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get custodial account", zap.Error(err))
		return models.CustodialAccount{}, err
	}
	return a, nil
}

func (r *accountRepo) UpdateKYCStatusByRef(ctx context.Context, processorRef string, status models.KYCStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE custodial_accounts
		SET kyc_status = $1
		WHERE processor_account_ref = $2
	`, status, processorRef)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepo) SetFirstDrawdownAcked(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE custodial_accounts
		SET first_drawdown_acked = TRUE
		WHERE id = $1
	`, id)
	return err
}
